package repository

import "github.com/jhoicas/inventario-stock/internal/domain/entity"

// ProductReader consultas de solo lectura sobre productos.
type ProductReader interface {
	// GetByID devuelve una copia del producto, o nil si no existe.
	GetByID(id string) (*entity.Product, error)
	// List devuelve copias en orden de inserción.
	List() ([]*entity.Product, error)
	Count() int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	ProductReader
	Create(product *entity.Product) error
	Update(product *entity.Product) error
	Delete(id string) error
}
