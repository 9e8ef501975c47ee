package repository

import "github.com/jhoicas/inventario-stock/internal/domain/entity"

// MovementReader consultas de solo lectura sobre el libro de movimientos.
type MovementReader interface {
	// List devuelve los movimientos del más reciente al más antiguo.
	List() ([]*entity.Movement, error)
	ListByProduct(productID string) ([]*entity.Movement, error)
	Count() int
}

// MovementRepository define el puerto del libro de movimientos. Los movimientos no se editan;
// solo se eliminan en cascada al borrar su producto.
type MovementRepository interface {
	MovementReader
	// Create inserta el movimiento al inicio del libro.
	Create(movement *entity.Movement) error
	// DeleteByProduct elimina todos los movimientos del producto y devuelve cuántos eran.
	DeleteByProduct(productID string) (int, error)
}
