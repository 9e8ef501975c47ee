package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
	"github.com/jhoicas/inventario-stock/internal/infrastructure/kvstore"
	"github.com/jhoicas/inventario-stock/internal/infrastructure/memory"
)

func TestLoad_StoreVacioUsaSemilla(t *testing.T) {
	products, movements := memory.Load(context.Background(), kvstore.NewMemoryStore(), nil)

	assert.Len(t, products, 15)
	assert.Len(t, movements, 3)
	assert.Equal(t, entity.StatusOutOfStock, products[2].Status)
	assert.Equal(t, entity.StatusLowStock, products[1].Status)
}

func TestLoad_CadaColeccionCaePorSeparado(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, repository.KeyProducts,
		[]byte(`[{"id":"p1","name":"Cable","sku":"CAB-VAR-001","category":"Varios","stock":2,"minStock":5,"price":"1000","supplier":"X","lastUpdated":"2025-01-10T00:00:00Z","status":"in-stock"}]`)))
	require.NoError(t, store.Put(ctx, repository.KeyMovements, []byte(`{no es json`)))

	products, movements := memory.Load(ctx, store, nil)

	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
	// el estado guardado se vuelve a derivar
	assert.Equal(t, entity.StatusLowStock, products[0].Status)
	assert.Len(t, movements, 3)
}

func TestLoad_ErrorDeLecturaUsaSemilla(t *testing.T) {
	products, movements := memory.Load(context.Background(), &failingStore{}, nil)
	assert.Len(t, products, 15)
	assert.Len(t, movements, 3)
}

func TestLoad_AceptaFechasSinHora(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, repository.KeyProducts,
		[]byte(`[{"id":"1738368000000","name":"Cable HDMI","sku":"CAB-ACC-042","category":"Accesorios","stock":4,"minStock":10,"price":25000,"supplier":"Varios","lastUpdated":"2025-02-01","status":"low-stock"}]`)))
	require.NoError(t, store.Put(ctx, repository.KeyMovements,
		[]byte(`[{"id":"m1","productId":"1738368000000","productName":"Cable HDMI","type":"entrada","quantity":4,"date":"2025-02-01","user":"Usuario Demo","notes":"","previousStock":0,"newStock":4}]`)))

	products, movements := memory.Load(ctx, store, nil)

	require.Len(t, products, 1)
	assert.Equal(t, "Cable HDMI", products[0].Name)
	assert.Equal(t, "2025-02-01", products[0].LastUpdated.Format(time.DateOnly))
	require.Len(t, movements, 1)
	assert.Equal(t, "2025-02-01", movements[0].Date.Format(time.DateOnly))
}

func TestLoad_DescartaEntradasNulas(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, repository.KeyProducts,
		[]byte(`[null,{"id":"p1","name":"Cable","category":"Varios","stock":2,"minStock":1,"price":"1000","lastUpdated":"2025-01-10T00:00:00Z"}]`)))
	require.NoError(t, store.Put(ctx, repository.KeyMovements,
		[]byte(`[null,{"id":"m1","productId":"p1","type":"entrada","quantity":2,"date":"2025-01-10T00:00:00Z","previousStock":0,"newStock":2}]`)))

	products, movements := memory.Load(ctx, store, nil)
	require.Len(t, products, 1)
	require.Len(t, movements, 1)

	state := memory.NewState(products, movements, nil)
	var ledger []*entity.Movement
	require.NotPanics(t, func() {
		require.NoError(t, state.View(ctx, func(_ repository.ProductReader, mr repository.MovementReader) error {
			var err error
			ledger, err = mr.List()
			return err
		}))
	})
	require.Len(t, ledger, 1)
	assert.Equal(t, "m1", ledger[0].ID)
}
