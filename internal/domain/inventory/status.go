package inventory

import "github.com/jhoicas/inventario-stock/internal/domain/entity"

// DeriveStatus calcula el estado de disponibilidad (servicio de dominio, puro).
// Stock 0 siempre es agotado; hasta MinStock inclusive es stock bajo.
func DeriveStatus(stock, minStock int) entity.ProductStatus {
	switch {
	case stock <= 0:
		return entity.StatusOutOfStock
	case stock <= minStock:
		return entity.StatusLowStock
	default:
		return entity.StatusInStock
	}
}

// Refresh re-deriva el estado del producto a partir de su stock actual.
func Refresh(p *entity.Product) {
	p.Status = DeriveStatus(p.Stock, p.MinStock)
}
