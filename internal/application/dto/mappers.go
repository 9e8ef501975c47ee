package dto

import "github.com/jhoicas/inventario-stock/internal/domain/entity"

// NewProductResponse mapea la entidad a su representación HTTP.
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		Category:    p.Category,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		Price:       p.Price,
		TotalValue:  p.TotalValue(),
		Supplier:    p.Supplier,
		Description: p.Description,
		Status:      string(p.Status),
		StatusLabel: p.Status.Label(),
		LastUpdated: p.LastUpdated,
	}
}

// NewMovementResponse mapea un movimiento del libro.
func NewMovementResponse(m *entity.Movement) MovementResponse {
	return MovementResponse{
		ID:             m.ID,
		ProductID:      m.ProductID,
		ProductName:    m.ProductName,
		Type:           m.Type,
		TypeLabel:      entity.MovementTypeLabel(m.Type),
		Quantity:       m.Quantity,
		SignedQuantity: m.SignedQuantity(),
		Date:           m.Date,
		User:           m.User,
		Notes:          m.Notes,
		PreviousStock:  m.PreviousStock,
		NewStock:       m.NewStock,
	}
}

// NewMovementResponses mapea una lista conservando el orden.
func NewMovementResponses(list []*entity.Movement) []MovementResponse {
	out := make([]MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, NewMovementResponse(m))
	}
	return out
}
