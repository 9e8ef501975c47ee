// Package metrics expone métricas de negocio y HTTP en formato Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/inventario-stock/internal/application/inventory"
)

// Nombres de métricas.
const (
	MetricMovementsTotal      = "inventory_movements_total"
	MetricMovementUnitsTotal  = "inventory_movement_units_total"
	MetricMovementsRejected   = "inventory_movements_rejected_total"
	MetricProductChangesTotal = "inventory_product_changes_total"
	MetricImportedRowsTotal   = "inventory_import_rows_total"
	MetricHTTPRequestsTotal   = "inventory_http_requests_total"
	MetricHTTPDurationSeconds = "inventory_http_request_duration_seconds"
	MetricProductsGauge       = "inventory_products"
	MetricLedgerGauge         = "inventory_ledger_movements"
)

var _ inventory.Metrics = (*Registry)(nil)

// Registry agrupa las métricas en un registro propio para no chocar con el global.
type Registry struct {
	registry *prometheus.Registry

	movements      *prometheus.CounterVec
	movementUnits  *prometheus.CounterVec
	rejected       *prometheus.CounterVec
	productChanges *prometheus.CounterVec
	importedRows   *prometheus.CounterVec
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
}

// NewRegistry registra todas las métricas más las del runtime de Go.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		movements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricMovementsTotal,
			Help: "Movimientos registrados por tipo.",
		}, []string{"type"}),
		movementUnits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricMovementUnitsTotal,
			Help: "Unidades movidas por tipo.",
		}, []string{"type"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricMovementsRejected,
			Help: "Movimientos rechazados por motivo.",
		}, []string{"reason"}),
		productChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricProductChangesTotal,
			Help: "Altas, cambios y bajas de productos.",
		}, []string{"operation"}),
		importedRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricImportedRowsTotal,
			Help: "Filas de carga masiva por resultado.",
		}, []string{"result"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricHTTPRequestsTotal,
			Help: "Peticiones HTTP por método, ruta y código.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    MetricHTTPDurationSeconds,
			Help:    "Duración de las peticiones HTTP.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	r.registry.MustRegister(
		r.movements, r.movementUnits, r.rejected, r.productChanges, r.importedRows,
		r.httpRequests, r.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// MovementRegistered implementa inventory.Metrics.
func (r *Registry) MovementRegistered(movementType string, quantity int) {
	r.movements.WithLabelValues(movementType).Inc()
	r.movementUnits.WithLabelValues(movementType).Add(float64(quantity))
}

// MovementRejected implementa inventory.Metrics.
func (r *Registry) MovementRejected(reason string) {
	r.rejected.WithLabelValues(reason).Inc()
}

// ProductChanged implementa inventory.Metrics.
func (r *Registry) ProductChanged(operation string) {
	r.productChanges.WithLabelValues(operation).Inc()
}

// ProductsImported implementa inventory.Metrics.
func (r *Registry) ProductsImported(imported, skipped int) {
	r.importedRows.WithLabelValues("imported").Add(float64(imported))
	r.importedRows.WithLabelValues("skipped").Add(float64(skipped))
}

// ObserveRequest registra una petición HTTP terminada.
func (r *Registry) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RegisterStateGauges expone el tamaño del registro y del libro; counts se evalúa en cada scrape.
func (r *Registry) RegisterStateGauges(counts func() (products, movements int)) {
	r.registry.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: MetricProductsGauge,
			Help: "Productos en el registro.",
		}, func() float64 {
			p, _ := counts()
			return float64(p)
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: MetricLedgerGauge,
			Help: "Movimientos en el libro.",
		}, func() float64 {
			_, m := counts()
			return float64(m)
		}),
	)
}

// Handler endpoint de scrape.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Gatherer acceso al registro (tests).
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
