package memory_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
	"github.com/jhoicas/inventario-stock/internal/infrastructure/kvstore"
	"github.com/jhoicas/inventario-stock/internal/infrastructure/memory"
)

type failingStore struct {
	mu    sync.Mutex
	calls int
}

func (s *failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("sin conexión")
}

func (s *failingStore) Put(context.Context, string, []byte) error {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return errors.New("disco lleno")
}

func (s *failingStore) Close() error { return nil }

func sampleProduct(id string, stock int) entity.Product {
	return entity.Product{ID: id, Name: "Producto " + id, SKU: "SKU-" + id, Category: "Varios", Stock: stock, MinStock: 5, Price: decimal.NewFromInt(1000)}
}

func TestState_RunConfirmaCambios(t *testing.T) {
	state := memory.NewState([]entity.Product{sampleProduct("1", 10)}, nil, nil)
	ctx := context.Background()

	err := state.Run(ctx, func(products repository.ProductRepository, movements repository.MovementRepository) error {
		p, err := products.GetByID("1")
		require.NoError(t, err)
		p.Stock = 4
		if err := products.Update(p); err != nil {
			return err
		}
		return movements.Create(&entity.Movement{ID: "m1", ProductID: "1", Type: entity.MovementTypeOut, Quantity: 6})
	})
	require.NoError(t, err)

	require.NoError(t, state.View(ctx, func(products repository.ProductReader, movements repository.MovementReader) error {
		p, _ := products.GetByID("1")
		assert.Equal(t, 4, p.Stock)
		assert.Equal(t, 1, movements.Count())
		return nil
	}))
}

func TestState_RunRevierteSiHayError(t *testing.T) {
	state := memory.NewState([]entity.Product{sampleProduct("1", 10)}, nil, nil)
	ctx := context.Background()
	boom := errors.New("falla")

	err := state.Run(ctx, func(products repository.ProductRepository, movements repository.MovementRepository) error {
		p, _ := products.GetByID("1")
		p.Stock = 0
		_ = products.Update(p)
		_ = products.Create(&entity.Product{ID: "2", Name: "Nuevo"})
		_ = movements.Create(&entity.Movement{ID: "m1", ProductID: "1"})
		return boom
	})
	assert.ErrorIs(t, err, boom)

	require.NoError(t, state.View(ctx, func(products repository.ProductReader, movements repository.MovementReader) error {
		p, _ := products.GetByID("1")
		assert.Equal(t, 10, p.Stock)
		assert.Equal(t, 1, products.Count())
		assert.Equal(t, 0, movements.Count())
		return nil
	}))
}

func TestState_RunContextoCancelado(t *testing.T) {
	state := memory.NewState(nil, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := state.Run(ctx, func(repository.ProductRepository, repository.MovementRepository) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestState_PersisteSoloColeccionesModificadas(t *testing.T) {
	store := kvstore.NewMemoryStore()
	writer := memory.NewSnapshotWriter(store, nil)
	state := memory.NewState([]entity.Product{sampleProduct("1", 10)}, nil, writer)
	ctx := context.Background()

	require.NoError(t, state.Run(ctx, func(products repository.ProductRepository, _ repository.MovementRepository) error {
		return products.Create(&entity.Product{ID: "2", Name: "Cable HDMI", Price: decimal.NewFromInt(20000)})
	}))
	require.NoError(t, writer.Close())

	raw, err := store.Get(ctx, repository.KeyProducts)
	require.NoError(t, err)
	var saved []entity.Product
	require.NoError(t, json.Unmarshal(raw, &saved))
	assert.Len(t, saved, 2)

	_, err = store.Get(ctx, repository.KeyMovements)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, state.PersistError())
}

func TestState_FalloDePersistenciaNoRevierteMemoria(t *testing.T) {
	store := &failingStore{}
	writer := memory.NewSnapshotWriter(store, nil)
	state := memory.NewState(nil, nil, writer)
	ctx := context.Background()

	require.NoError(t, state.Run(ctx, func(products repository.ProductRepository, _ repository.MovementRepository) error {
		return products.Create(&entity.Product{ID: "1", Name: "Teclado"})
	}))
	err := writer.Close()
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.ErrorIs(t, state.PersistError(), domain.ErrPersistence)

	require.NoError(t, state.View(ctx, func(products repository.ProductReader, _ repository.MovementReader) error {
		assert.Equal(t, 1, products.Count())
		return nil
	}))
}

func TestMovementRepo_CreaAlInicioYBorraEnCascada(t *testing.T) {
	repo := memory.NewMovementRepository(nil)
	require.NoError(t, repo.Create(&entity.Movement{ID: "a", ProductID: "1"}))
	require.NoError(t, repo.Create(&entity.Movement{ID: "b", ProductID: "2"}))
	require.NoError(t, repo.Create(&entity.Movement{ID: "c", ProductID: "1"}))

	all, _ := repo.List()
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].ID)
	assert.Equal(t, "a", all[2].ID)

	removed, err := repo.DeleteByProduct("1")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, repo.Count())

	removed, _ = repo.DeleteByProduct("inexistente")
	assert.Zero(t, removed)
}

func TestProductRepo_DevuelveCopias(t *testing.T) {
	repo := memory.NewProductRepository([]entity.Product{sampleProduct("1", 3)})
	p, _ := repo.GetByID("1")
	p.Stock = 99

	again, _ := repo.GetByID("1")
	assert.Equal(t, 3, again.Stock)

	missing, err := repo.GetByID("x")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	assert.ErrorIs(t, repo.Delete("x"), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Update(&entity.Product{ID: "x"}), domain.ErrNotFound)
}
