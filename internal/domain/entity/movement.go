package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIn  = "entrada"
	MovementTypeOut = "salida"
)

// MovementTypeLabel devuelve la etiqueta visible del tipo.
func MovementTypeLabel(t string) string {
	if t == MovementTypeIn {
		return "Entrada"
	}
	return "Salida"
}

// Movement es un hecho histórico inmutable: una entrada o salida aplicada a un producto.
// NewStock = PreviousStock ± Quantity y nunca es negativo.
type Movement struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"productId"`
	ProductName   string    `json:"productName"` // nombre al momento del movimiento
	Type          string    `json:"type"`
	Quantity      int       `json:"quantity"` // siempre positivo
	Date          time.Time `json:"date"`
	User          string    `json:"user"`
	Notes         string    `json:"notes"`
	PreviousStock int       `json:"previousStock"`
	NewStock      int       `json:"newStock"`
}

// SignedQuantity devuelve la cantidad con signo según el tipo.
func (m Movement) SignedQuantity() int {
	if m.Type == MovementTypeOut {
		return -m.Quantity
	}
	return m.Quantity
}
