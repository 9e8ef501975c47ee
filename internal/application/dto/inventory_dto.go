package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/inventory/movements.
type RegisterMovementRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=entrada salida"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
	Notes     string `json:"notes" validate:"max=500"`
}

// MovementFilter parámetros de GET /api/inventory/movements.
type MovementFilter struct {
	ProductID string `query:"product_id"`
}

// MovementResponse salida de un movimiento del libro.
type MovementResponse struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"product_id"`
	ProductName    string    `json:"product_name"`
	Type           string    `json:"type"`
	TypeLabel      string    `json:"type_label"`
	Quantity       int       `json:"quantity"`
	SignedQuantity int       `json:"signed_quantity"`
	Date           time.Time `json:"date"`
	User           string    `json:"user"`
	Notes          string    `json:"notes"`
	PreviousStock  int       `json:"previous_stock"`
	NewStock       int       `json:"new_stock"`
}

// ReplenishmentSuggestionDTO sugerencia de reposición para un producto con stock bajo o agotado.
type ReplenishmentSuggestionDTO struct {
	ProductID          string          `json:"product_id"`
	SKU                string          `json:"sku"`
	ProductName        string          `json:"product_name"`
	Category           string          `json:"category"`
	Supplier           string          `json:"supplier"`
	Status             string          `json:"status"`
	CurrentStock       int             `json:"current_stock"`
	MinStock           int             `json:"min_stock"`
	IdealStock         int             `json:"ideal_stock"`         // ceil(MinStock * 1.5)
	SuggestedOrderQty  int             `json:"suggested_order_qty"` // IdealStock - CurrentStock
	UnitPrice          decimal.Decimal `json:"unit_price"`
	EstimatedOrderCost decimal.Decimal `json:"estimated_order_cost"` // SuggestedOrderQty * UnitPrice
	Priority           int             `json:"priority"`             // 1 = más urgente
}
