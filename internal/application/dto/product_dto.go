package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest borrador de producto. Los campos numéricos llegan como texto y se
// validan en el caso de uso.
type CreateProductRequest struct {
	Name        string        `json:"name" validate:"max=200"`
	SKU         string        `json:"sku" validate:"max=100"`
	Category    string        `json:"category" validate:"max=100"`
	Stock       NumericString `json:"stock"`
	MinStock    NumericString `json:"min_stock"`
	Price       NumericString `json:"price"`
	Supplier    string        `json:"supplier" validate:"max=200"`
	Description string        `json:"description" validate:"max=1000"`
}

// UpdateProductRequest cambios parciales; solo se aplican los campos presentes.
type UpdateProductRequest struct {
	Name        *string        `json:"name" validate:"omitempty,max=200"`
	SKU         *string        `json:"sku" validate:"omitempty,max=100"`
	Category    *string        `json:"category" validate:"omitempty,max=100"`
	Stock       *NumericString `json:"stock"`
	MinStock    *NumericString `json:"min_stock"`
	Price       *NumericString `json:"price"`
	Supplier    *string        `json:"supplier" validate:"omitempty,max=200"`
	Description *string        `json:"description" validate:"omitempty,max=1000"`
}

// ProductFilter parámetros de búsqueda de GET /api/products.
type ProductFilter struct {
	Search   string `query:"search"`
	Category string `query:"category"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"min_stock"`
	Price       decimal.Decimal `json:"price"`
	TotalValue  decimal.Decimal `json:"total_value"`
	Supplier    string          `json:"supplier"`
	Description string          `json:"description,omitempty"`
	Status      string          `json:"status"`
	StatusLabel string          `json:"status_label"`
	LastUpdated time.Time       `json:"last_updated"`
}

// ProductListResponse lista filtrada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// DeleteProductResponse resultado del borrado en cascada.
type DeleteProductResponse struct {
	ID               string `json:"id"`
	RemovedMovements int    `json:"removed_movements"`
}

// BatchResult resultado de una creación masiva.
type BatchResult struct {
	Created []ProductResponse `json:"created"`
	Skipped int               `json:"skipped"`
}
