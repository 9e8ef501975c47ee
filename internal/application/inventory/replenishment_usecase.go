package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-stock/internal/application/dto"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
)

// ReplenishmentUseCase genera la lista de reposición a partir del estado actual del registro.
type ReplenishmentUseCase struct {
	txRunner TxRunner
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(txRunner TxRunner) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{txRunner: txRunner}
}

// GenerateReplenishmentList devuelve los productos con stock bajo o agotado con la cantidad
// sugerida de pedido. Stock ideal = ceil(MinStock * 1.5).
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context) ([]dto.ReplenishmentSuggestionDTO, error) {
	var rawItems []*entity.Product
	err := uc.txRunner.View(ctx, func(products repository.ProductReader, _ repository.MovementReader) error {
		list, err := products.List()
		if err != nil {
			return err
		}
		for _, p := range list {
			if p.Status == entity.StatusLowStock || p.Status == entity.StatusOutOfStock {
				rawItems = append(rawItems, p)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(rawItems) == 0 {
		return []dto.ReplenishmentSuggestionDTO{}, nil
	}

	factor := decimal.NewFromFloat(1.5)
	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0, len(rawItems))
	for _, item := range rawItems {
		idealStock := int(decimal.NewFromInt(int64(item.MinStock)).Mul(factor).Ceil().IntPart())
		suggestedQty := idealStock - item.Stock
		if suggestedQty < 0 {
			suggestedQty = 0
		}
		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			ProductID:          item.ID,
			SKU:                item.SKU,
			ProductName:        item.Name,
			Category:           item.Category,
			Supplier:           item.Supplier,
			Status:             string(item.Status),
			CurrentStock:       item.Stock,
			MinStock:           item.MinStock,
			IdealStock:         idealStock,
			SuggestedOrderQty:  suggestedQty,
			UnitPrice:          item.Price,
			EstimatedOrderCost: item.Price.Mul(decimal.NewFromInt(int64(suggestedQty))),
		})
	}

	// Primero agotados; luego menor cobertura stock/mínimo.
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		aOut, bOut := a.CurrentStock <= 0, b.CurrentStock <= 0
		if aOut != bOut {
			return aOut
		}
		return coverage(a).LessThan(coverage(b))
	})

	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}

func coverage(s dto.ReplenishmentSuggestionDTO) decimal.Decimal {
	if s.MinStock <= 0 {
		return decimal.NewFromInt(int64(s.CurrentStock))
	}
	return decimal.NewFromInt(int64(s.CurrentStock)).Div(decimal.NewFromInt(int64(s.MinStock)))
}
