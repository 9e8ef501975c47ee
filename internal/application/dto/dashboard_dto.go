package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary. Se recalcula en cada consulta.
type DashboardSummaryDTO struct {
	TotalProducts int `json:"total_products"`
	InStock       int `json:"in_stock"`
	LowStock      int `json:"low_stock"`
	OutOfStock    int `json:"out_of_stock"`

	TotalValue   decimal.Decimal `json:"total_value"` // suma de stock * precio
	TotalUnits   int             `json:"total_units"`
	AverageStock int             `json:"average_stock"` // unidades por producto, redondeado
	AveragePrice decimal.Decimal `json:"average_price"`

	UnitsIn        int `json:"units_in"`
	UnitsOut       int `json:"units_out"`
	MovementsToday int `json:"movements_today"`

	Alerts          []ProductResponse  `json:"alerts"`           // hasta 5 productos bajos o agotados
	RecentMovements []MovementResponse `json:"recent_movements"` // últimos 5
	GeneratedAt     time.Time          `json:"generated_at"`
	DateLabel       string             `json:"date_label"` // ej: "Febrero 2026"
}

// CategoryStatDTO agregados de una categoría.
type CategoryStatDTO struct {
	Category         string          `json:"category"`
	ProductCount     int             `json:"product_count"`
	TotalStock       int             `json:"total_stock"`
	TotalValue       decimal.Decimal `json:"total_value"`
	AverageUnitValue decimal.Decimal `json:"average_unit_value"` // TotalValue / TotalStock; 0 sin stock
}

// TopProductDTO producto del ranking por valor de inventario.
type TopProductDTO struct {
	Rank       int             `json:"rank"`
	ProductID  string          `json:"product_id"`
	SKU        string          `json:"sku"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Stock      int             `json:"stock"`
	Price      decimal.Decimal `json:"price"`
	TotalValue decimal.Decimal `json:"total_value"`
}
