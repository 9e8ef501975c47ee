package memory

import (
	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo libro de movimientos, del más reciente al más antiguo.
// Los movimientos son inmutables, así que se comparten punteros entre copias del libro.
type MovementRepo struct {
	items []*entity.Movement
	dirty bool
}

// NewMovementRepository construye el libro sobre los movimientos dados (más reciente primero).
func NewMovementRepository(items []*entity.Movement) *MovementRepo {
	return &MovementRepo{items: append([]*entity.Movement(nil), items...)}
}

// Create inserta el movimiento al inicio del libro.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement == nil || movement.ID == "" {
		return domain.ErrInvalidInput
	}
	m := *movement
	items := make([]*entity.Movement, 0, len(r.items)+1)
	items = append(items, &m)
	r.items = append(items, r.items...)
	r.dirty = true
	return nil
}

// DeleteByProduct elimina los movimientos del producto (cascada) y devuelve cuántos eran.
func (r *MovementRepo) DeleteByProduct(productID string) (int, error) {
	kept := make([]*entity.Movement, 0, len(r.items))
	for _, m := range r.items {
		if m.ProductID != productID {
			kept = append(kept, m)
		}
	}
	removed := len(r.items) - len(kept)
	if removed > 0 {
		r.items = kept
		r.dirty = true
	}
	return removed, nil
}

// List devuelve copias de todos los movimientos.
func (r *MovementRepo) List() ([]*entity.Movement, error) {
	return r.filter(func(*entity.Movement) bool { return true }), nil
}

// ListByProduct devuelve los movimientos de un producto.
func (r *MovementRepo) ListByProduct(productID string) ([]*entity.Movement, error) {
	return r.filter(func(m *entity.Movement) bool { return m.ProductID == productID }), nil
}

// Count número de movimientos.
func (r *MovementRepo) Count() int { return len(r.items) }

func (r *MovementRepo) filter(keep func(*entity.Movement) bool) []*entity.Movement {
	out := make([]*entity.Movement, 0, len(r.items))
	for _, m := range r.items {
		if keep(m) {
			c := *m
			out = append(out, &c)
		}
	}
	return out
}
