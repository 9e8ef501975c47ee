package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-stock/internal/infrastructure/metrics"
)

func TestRegistry_ContadoresDeNegocio(t *testing.T) {
	reg := metrics.NewRegistry()
	reg.MovementRegistered("entrada", 10)
	reg.MovementRegistered("entrada", 5)
	reg.MovementRegistered("salida", 2)
	reg.MovementRejected("insufficient_stock")
	reg.ProductsImported(3, 1)
	reg.RegisterStateGauges(func() (int, int) { return 15, 3 })

	count, err := testutil.GatherAndCount(reg.Gatherer(), metrics.MetricMovementsTotal)
	require.NoError(t, err)
	assert.Equal(t, 2, count) // una serie por tipo

	n, err := testutil.GatherAndCount(reg.Gatherer(), metrics.MetricProductsGauge, metrics.MetricLedgerGauge)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRegistry_Handler(t *testing.T) {
	reg := metrics.NewRegistry()
	reg.ObserveRequest("GET", "/api/products", 200, 15*time.Millisecond)
	reg.ProductChanged("create")

	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), `inventory_http_requests_total{method="GET",route="/api/products",status="200"} 1`)
	assert.Contains(t, string(body), `inventory_product_changes_total{operation="create"} 1`)
}
