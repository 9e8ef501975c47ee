package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductStatus estado de disponibilidad derivado de Stock y MinStock.
type ProductStatus string

const (
	StatusInStock    ProductStatus = "in-stock"
	StatusLowStock   ProductStatus = "low-stock"
	StatusOutOfStock ProductStatus = "out-of-stock"
)

// Label devuelve la etiqueta visible del estado.
func (s ProductStatus) Label() string {
	switch s {
	case StatusInStock:
		return "En Stock"
	case StatusLowStock:
		return "Stock Bajo"
	case StatusOutOfStock:
		return "Agotado"
	default:
		return "Desconocido"
	}
}

// Product representa un producto del inventario.
// Status nunca se asigna directamente: se deriva de (Stock, MinStock) en cada mutación.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"minStock"`
	Price       decimal.Decimal `json:"price"`
	Supplier    string          `json:"supplier"`
	LastUpdated time.Time       `json:"lastUpdated"`
	Status      ProductStatus   `json:"status"`
	Description string          `json:"description,omitempty"`
}

// TotalValue devuelve Stock × Price.
func (p Product) TotalValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}
