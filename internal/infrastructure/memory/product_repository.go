package memory

import (
	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo colección de productos en orden de inserción. Devuelve copias para que ningún
// llamador modifique el estado fuera de una transacción.
type ProductRepo struct {
	items []entity.Product
	dirty bool
}

// NewProductRepository construye el repositorio sobre los productos dados (se copian).
func NewProductRepository(items []entity.Product) *ProductRepo {
	return &ProductRepo{items: append([]entity.Product(nil), items...)}
}

func (r *ProductRepo) indexOf(id string) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Create agrega el producto al final.
func (r *ProductRepo) Create(product *entity.Product) error {
	if product == nil || product.ID == "" {
		return domain.ErrInvalidInput
	}
	r.items = append(r.items, *product)
	r.dirty = true
	return nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	i := r.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	p := r.items[i]
	return &p, nil
}

// Update reemplaza el producto en su misma posición.
func (r *ProductRepo) Update(product *entity.Product) error {
	i := r.indexOf(product.ID)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.items[i] = *product
	r.dirty = true
	return nil
}

// Delete elimina el producto conservando el orden del resto.
func (r *ProductRepo) Delete(id string) error {
	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.items = append(r.items[:i:i], r.items[i+1:]...)
	r.dirty = true
	return nil
}

// List devuelve copias en orden de inserción.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, len(r.items))
	for i := range r.items {
		p := r.items[i]
		out[i] = &p
	}
	return out, nil
}

// Count número de productos.
func (r *ProductRepo) Count() int { return len(r.items) }
