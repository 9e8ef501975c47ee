// Package analytics contiene los agregados del dashboard y de analítica de inventario.
// Todo se recalcula en cada consulta a partir del estado confirmado.
package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-stock/internal/application/dto"
	"github.com/jhoicas/inventario-stock/internal/application/inventory"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
)

const (
	dashboardAlerts = 5 // productos en el widget de alertas
	dashboardRecent = 5 // movimientos recientes
	defaultTopN     = 5
)

// DashboardUseCase calcula los KPIs del inventario.
type DashboardUseCase struct {
	txRunner inventory.TxRunner
	now      inventory.Clock
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(txRunner inventory.TxRunner) *DashboardUseCase {
	return &DashboardUseCase{txRunner: txRunner, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *DashboardUseCase) WithClock(c inventory.Clock) *DashboardUseCase {
	uc.now = c
	return uc
}

// GetSummary construye el DashboardSummaryDTO.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()
	out := &dto.DashboardSummaryDTO{
		TotalValue:      decimal.Zero,
		AveragePrice:    decimal.Zero,
		Alerts:          []dto.ProductResponse{},
		RecentMovements: []dto.MovementResponse{},
		GeneratedAt:     now,
		DateLabel:       monthLabel(now),
	}

	err := uc.txRunner.View(ctx, func(products repository.ProductReader, movements repository.MovementReader) error {
		list, err := products.List()
		if err != nil {
			return fmt.Errorf("dashboard: productos: %w", err)
		}
		ledger, err := movements.List()
		if err != nil {
			return fmt.Errorf("dashboard: movimientos: %w", err)
		}

		priceSum := decimal.Zero
		for _, p := range list {
			switch p.Status {
			case entity.StatusInStock:
				out.InStock++
			case entity.StatusLowStock:
				out.LowStock++
			case entity.StatusOutOfStock:
				out.OutOfStock++
			}
			if p.Status != entity.StatusInStock && len(out.Alerts) < dashboardAlerts {
				out.Alerts = append(out.Alerts, dto.NewProductResponse(p))
			}
			out.TotalUnits += p.Stock
			out.TotalValue = out.TotalValue.Add(p.TotalValue())
			priceSum = priceSum.Add(p.Price)
		}
		out.TotalProducts = len(list)
		if n := len(list); n > 0 {
			out.AverageStock = int(math.Round(float64(out.TotalUnits) / float64(n)))
			out.AveragePrice = priceSum.Div(decimal.NewFromInt(int64(n))).Round(2)
		}

		y, m, d := now.Date()
		for i, mv := range ledger {
			if mv.Type == entity.MovementTypeIn {
				out.UnitsIn += mv.Quantity
			} else {
				out.UnitsOut += mv.Quantity
			}
			if my, mm, md := mv.Date.In(now.Location()).Date(); my == y && mm == m && md == d {
				out.MovementsToday++
			}
			if i < dashboardRecent {
				out.RecentMovements = append(out.RecentMovements, dto.NewMovementResponse(mv))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CategoryStats agrega por categoría en el orden en que aparecen en el registro.
func (uc *DashboardUseCase) CategoryStats(ctx context.Context) ([]dto.CategoryStatDTO, error) {
	stats := make([]dto.CategoryStatDTO, 0)
	err := uc.txRunner.View(ctx, func(products repository.ProductReader, _ repository.MovementReader) error {
		list, err := products.List()
		if err != nil {
			return err
		}
		index := make(map[string]int)
		for _, p := range list {
			i, ok := index[p.Category]
			if !ok {
				i = len(stats)
				index[p.Category] = i
				stats = append(stats, dto.CategoryStatDTO{Category: p.Category, TotalValue: decimal.Zero})
			}
			stats[i].ProductCount++
			stats[i].TotalStock += p.Stock
			stats[i].TotalValue = stats[i].TotalValue.Add(p.TotalValue())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	for i := range stats {
		stats[i].AverageUnitValue = decimal.Zero
		if stats[i].TotalStock > 0 {
			stats[i].AverageUnitValue = stats[i].TotalValue.Div(decimal.NewFromInt(int64(stats[i].TotalStock))).Round(2)
		}
	}
	return stats, nil
}

// TopProducts devuelve los n productos de mayor valor de inventario (stock * precio).
// El orden es estable: empates conservan el orden del registro. n <= 0 usa 5.
func (uc *DashboardUseCase) TopProducts(ctx context.Context, n int) ([]dto.TopProductDTO, error) {
	if n <= 0 {
		n = defaultTopN
	}
	var list []*entity.Product
	err := uc.txRunner.View(ctx, func(products repository.ProductReader, _ repository.MovementReader) error {
		var err error
		list, err = products.List()
		return err
	})
	if err != nil {
		return nil, err
	}

	// list ya es una copia: ordenarla no toca el registro.
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].TotalValue().GreaterThan(list[j].TotalValue())
	})
	if len(list) > n {
		list = list[:n]
	}
	out := make([]dto.TopProductDTO, 0, len(list))
	for i, p := range list {
		out = append(out, dto.TopProductDTO{
			Rank:       i + 1,
			ProductID:  p.ID,
			SKU:        p.SKU,
			Name:       p.Name,
			Category:   p.Category,
			Stock:      p.Stock,
			Price:      p.Price,
			TotalValue: p.TotalValue(),
		})
	}
	return out, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
