package entity

import "time"

// Tipos de evento publicados tras un cambio confirmado.
const (
	EventMovementRegistered = "movement.registered"
	EventStockLow           = "stock.low"
	EventStockOut           = "stock.out"
	EventProductDeleted     = "product.deleted"
)

// InventoryEvent notificación hacia sistemas externos (no forma parte de la transacción).
type InventoryEvent struct {
	Type       string        `json:"type"`
	ProductID  string        `json:"product_id"`
	SKU        string        `json:"sku,omitempty"`
	MovementID string        `json:"movement_id,omitempty"`
	Stock      int           `json:"stock"`
	MinStock   int           `json:"min_stock"`
	Status     ProductStatus `json:"status,omitempty"`
	Timestamp  time.Time     `json:"timestamp"`
}
