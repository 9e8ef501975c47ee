package messaging

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/inventario-stock/internal/application/inventory"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/pkg/logger"
)

// DefaultQueueSize eventos en espera antes de descartar.
const DefaultQueueSize = 1024

var (
	// ErrQueueFull la cola de eventos está llena; el evento se descarta.
	ErrQueueFull = errors.New("cola de eventos llena")
	// ErrPublisherClosed el publicador ya fue cerrado.
	ErrPublisherClosed = errors.New("publicador de eventos cerrado")
)

var _ inventory.EventPublisher = (*AsyncPublisher)(nil)

// AsyncPublisher encola los eventos y los entrega a next desde una goroutine, fuera del camino
// de la petición. Publish nunca bloquea: con la cola llena devuelve ErrQueueFull.
type AsyncPublisher struct {
	next  inventory.EventPublisher
	log   *logger.Logger
	queue chan entity.InventoryEvent
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

// NewAsyncPublisher inicia el despachador; llamar Close para entregar lo pendiente al apagar.
func NewAsyncPublisher(next inventory.EventPublisher, size int, log *logger.Logger) *AsyncPublisher {
	if size <= 0 {
		size = DefaultQueueSize
	}
	if log == nil {
		log = logger.Nop()
	}
	p := &AsyncPublisher{
		next:  next,
		log:   log.Component("events"),
		queue: make(chan entity.InventoryEvent, size),
		done:  make(chan struct{}),
	}
	go p.loop()
	return p
}

// Publish encola el evento. ctx no se propaga: la entrega ocurre después de responder.
func (p *AsyncPublisher) Publish(_ context.Context, event entity.InventoryEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}
	select {
	case p.queue <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

func (p *AsyncPublisher) loop() {
	defer close(p.done)
	for ev := range p.queue {
		if err := p.next.Publish(context.Background(), ev); err != nil {
			p.log.Warn().Err(err).
				Str("event", ev.Type).
				Str("product_id", ev.ProductID).
				Msg("entrega de evento")
		}
	}
}

// Close deja de aceptar eventos y espera a que se entreguen los encolados.
func (p *AsyncPublisher) Close() error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()
	<-p.done
	return nil
}
