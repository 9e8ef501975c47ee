// Package memory mantiene el estado completo del inventario en el proceso: productos y libro de
// movimientos detrás de un único mutex, con persistencia asíncrona de cada colección.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/inventario-stock/internal/application/inventory"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
)

var _ inventory.TxRunner = (*State)(nil)

// State es el dueño de ambas colecciones. Toda mutación pasa por Run.
type State struct {
	mu        sync.RWMutex
	products  []entity.Product
	movements []*entity.Movement
	writer    *SnapshotWriter
}

// NewState construye el estado; writer puede ser nil (sin persistencia).
func NewState(products []entity.Product, movements []*entity.Movement, writer *SnapshotWriter) *State {
	return &State{
		products:  append([]entity.Product(nil), products...),
		movements: append([]*entity.Movement(nil), movements...),
		writer:    writer,
	}
}

// Run ejecuta fn sobre copias de ambas colecciones y las confirma solo si fn devuelve nil,
// de modo que un error deja productos y movimientos intactos. Tras confirmar encola la
// escritura de las colecciones modificadas.
func (s *State) Run(ctx context.Context, fn func(
	products repository.ProductRepository,
	movements repository.MovementRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	prodRepo := NewProductRepository(s.products)
	movRepo := NewMovementRepository(s.movements)

	if err := fn(prodRepo, movRepo); err != nil {
		return err
	}

	s.products = prodRepo.items
	s.movements = movRepo.items

	if s.writer != nil {
		if prodRepo.dirty {
			s.writer.Enqueue(repository.KeyProducts, s.products)
		}
		if movRepo.dirty {
			s.writer.Enqueue(repository.KeyMovements, s.movements)
		}
	}
	return nil
}

// View ejecuta fn con acceso de solo lectura al estado confirmado.
func (s *State) View(ctx context.Context, fn func(
	products repository.ProductReader,
	movements repository.MovementReader,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&ProductRepo{items: s.products}, &MovementRepo{items: s.movements})
}

// PersistError devuelve el último error de persistencia, o nil.
func (s *State) PersistError() error {
	if s.writer == nil {
		return nil
	}
	return s.writer.LastError()
}

// Counts tamaño actual de ambas colecciones.
func (s *State) Counts() (products, movements int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products), len(s.movements)
}
