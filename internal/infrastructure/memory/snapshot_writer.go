package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
	"github.com/jhoicas/inventario-stock/pkg/logger"
)

const defaultPutTimeout = 5 * time.Second

// SnapshotWriter reescribe colecciones completas en el SnapshotStore en segundo plano.
// Las escrituras pendientes de una misma clave se fusionan: solo se guarda la última
// (last write wins). Un fallo se registra y se conserva en LastError, nunca revierte memoria.
type SnapshotWriter struct {
	store repository.SnapshotStore
	log   *logger.Logger

	mu      sync.Mutex
	pending map[string][]byte
	lastErr error

	flushMu sync.Mutex
	signal  chan struct{}
	quit    chan struct{}
	done    chan struct{}
	once    sync.Once
	timeout time.Duration
}

// NewSnapshotWriter inicia el escritor; llamar Close para vaciar lo pendiente al apagar.
func NewSnapshotWriter(store repository.SnapshotStore, log *logger.Logger) *SnapshotWriter {
	if log == nil {
		log = logger.Nop()
	}
	w := &SnapshotWriter{
		store:   store,
		log:     log.Component("snapshot"),
		pending: make(map[string][]byte),
		signal:  make(chan struct{}, 1),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
		timeout: defaultPutTimeout,
	}
	go w.loop()
	return w
}

// Enqueue serializa v de inmediato (para fijar el estado confirmado) y programa su escritura.
func (w *SnapshotWriter) Enqueue(key string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		err = fmt.Errorf("%w: serializar %s: %v", domain.ErrPersistence, key, err)
		w.log.Error().Err(err).Str("key", key).Msg("serialización del estado")
		w.setErr(err)
		return
	}

	w.mu.Lock()
	w.pending[key] = payload
	w.mu.Unlock()

	select {
	case w.signal <- struct{}{}:
	default:
	}
}

func (w *SnapshotWriter) loop() {
	defer close(w.done)
	for {
		select {
		case <-w.signal:
			w.Flush(context.Background())
		case <-w.quit:
			w.Flush(context.Background())
			return
		}
	}
}

// Flush escribe de forma síncrona todo lo pendiente.
func (w *SnapshotWriter) Flush(ctx context.Context) {
	w.flushMu.Lock()
	defer w.flushMu.Unlock()

	w.mu.Lock()
	batch := w.pending
	w.pending = make(map[string][]byte)
	w.mu.Unlock()

	if len(batch) == 0 {
		return
	}
	keys := make([]string, 0, len(batch))
	for k := range batch {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var failed error
	for _, key := range keys {
		putCtx, cancel := context.WithTimeout(ctx, w.timeout)
		err := w.store.Put(putCtx, key, batch[key])
		cancel()
		if err != nil {
			failed = fmt.Errorf("%w: %s: %v", domain.ErrPersistence, key, err)
			w.log.Error().Err(err).Str("key", key).Msg("persistir colección")
			continue
		}
		w.log.Debug().Str("key", key).Int("bytes", len(batch[key])).Msg("colección persistida")
	}
	w.setErr(failed)
}

func (w *SnapshotWriter) setErr(err error) {
	w.mu.Lock()
	w.lastErr = err
	w.mu.Unlock()
}

// LastError devuelve el error de la última escritura (nil si fue exitosa).
func (w *SnapshotWriter) LastError() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}

// Close vacía lo pendiente y detiene el escritor. No cierra el store.
func (w *SnapshotWriter) Close() error {
	w.once.Do(func() { close(w.quit) })
	<-w.done
	return w.LastError()
}
