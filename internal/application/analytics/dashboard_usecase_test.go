package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-stock/internal/application/analytics"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
	"github.com/jhoicas/inventario-stock/internal/infrastructure/memory"
)

func seededState() *memory.State {
	return memory.NewState(memory.SeedProducts(), memory.SeedMovements(), nil)
}

func TestGetSummary_DatasetSemilla(t *testing.T) {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.Local)
	uc := analytics.NewDashboardUseCase(seededState()).WithClock(func() time.Time { return now })

	s, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 15, s.TotalProducts)
	assert.Equal(t, 13, s.InStock)
	assert.Equal(t, 1, s.LowStock)
	assert.Equal(t, 1, s.OutOfStock)
	assert.Equal(t, 187, s.TotalUnits)
	assert.Equal(t, 12, s.AverageStock)
	assert.Equal(t, "193420000", s.TotalValue.String())
	assert.Equal(t, 15, s.UnitsIn)
	assert.Equal(t, 8, s.UnitsOut)
	assert.Equal(t, 1, s.MovementsToday)
	assert.Len(t, s.Alerts, 2)
	assert.Len(t, s.RecentMovements, 3)
	assert.Equal(t, "Enero 2025", s.DateLabel)
}

func TestGetSummary_RegistroVacio(t *testing.T) {
	uc := analytics.NewDashboardUseCase(memory.NewState(nil, nil, nil))
	s, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, s.TotalProducts)
	assert.True(t, s.TotalValue.IsZero())
	assert.True(t, s.AveragePrice.IsZero())
	assert.NotNil(t, s.Alerts)
}

func TestCategoryStats(t *testing.T) {
	stats, err := analytics.NewDashboardUseCase(seededState()).CategoryStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 7)

	assert.Equal(t, "Electrónicos", stats[0].Category)
	assert.Equal(t, 3, stats[0].ProductCount)
	assert.Equal(t, 33, stats[0].TotalStock)
	assert.Equal(t, "98500000", stats[0].TotalValue.String())
	assert.Equal(t, "2984848.48", stats[0].AverageUnitValue.String())

	assert.Equal(t, "Accesorios", stats[1].Category)
	assert.Equal(t, "23650000", stats[1].TotalValue.String())
}

func TestTopProducts_OrdenEstableYSinMutar(t *testing.T) {
	state := seededState()
	uc := analytics.NewDashboardUseCase(state)

	top, err := uc.TopProducts(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, []string{"1", "6", "5"}, []string{top[0].ProductID, top[1].ProductID, top[2].ProductID})
	assert.Equal(t, 1, top[0].Rank)

	def, err := uc.TopProducts(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, def, 5)

	// el registro conserva su orden de inserción
	require.NoError(t, state.View(context.Background(), func(products repository.ProductReader, _ repository.MovementReader) error {
		list, err := products.List()
		require.NoError(t, err)
		assert.Equal(t, "1", list[0].ID)
		assert.Equal(t, "2", list[1].ID)
		return nil
	}))
}
