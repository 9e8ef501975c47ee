package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
)

// TxRunner ejecuta una función con acceso exclusivo a productos y movimientos a la vez.
// Run confirma los cambios solo si fn devuelve nil; View es de solo lectura.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		movements repository.MovementRepository,
	) error) error
	View(ctx context.Context, fn func(
		products repository.ProductReader,
		movements repository.MovementReader,
	) error) error
}

// EventPublisher notifica eventos de inventario a sistemas externos.
type EventPublisher interface {
	Publish(ctx context.Context, event entity.InventoryEvent) error
}

// Metrics contadores de negocio.
type Metrics interface {
	MovementRegistered(movementType string, quantity int)
	MovementRejected(reason string)
	ProductChanged(operation string)
	ProductsImported(imported, skipped int)
}

// Clock devuelve la hora actual; inyectable en tests.
type Clock func() time.Time

// NopPublisher descarta los eventos.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, entity.InventoryEvent) error { return nil }

// NopMetrics descarta las métricas.
type NopMetrics struct{}

func (NopMetrics) MovementRegistered(string, int) {}
func (NopMetrics) MovementRejected(string)        {}
func (NopMetrics) ProductChanged(string)          {}
func (NopMetrics) ProductsImported(int, int)      {}
