package usecase_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-stock/internal/application/dto"
	"github.com/jhoicas/inventario-stock/internal/application/inventory"
	"github.com/jhoicas/inventario-stock/internal/application/usecase"
	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/infrastructure/memory"
)

var fixedNow = time.Date(2025, 1, 20, 9, 30, 0, 0, time.UTC)

func newProductUseCase(state *memory.State) *usecase.ProductUseCase {
	return usecase.NewProductUseCase(state,
		usecase.WithRandom(rand.New(rand.NewPCG(1, 2))),
		usecase.WithProductClock(func() time.Time { return fixedNow }),
	)
}

func draft() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:     "Cable HDMI 2m",
		Category: "Accesorios",
		Stock:    "12",
		Price:    "25000",
	}
}

func strPtr(s string) *string { return &s }

func numPtr(s string) *dto.NumericString {
	n := dto.NumericString(s)
	return &n
}

func TestCreate_AplicaValoresPorDefecto(t *testing.T) {
	uc := newProductUseCase(memory.NewState(nil, nil, nil))

	out, err := uc.Create(context.Background(), draft())
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Regexp(t, `^CAB-ACC-\d{3}$`, out.SKU)
	assert.Equal(t, usecase.DefaultMinStock, out.MinStock)
	assert.Equal(t, usecase.DefaultSupplier, out.Supplier)
	assert.Equal(t, string(entity.StatusInStock), out.Status)
	assert.Equal(t, "300000", out.TotalValue.String())
	assert.Equal(t, fixedNow, out.LastUpdated)
}

func TestCreate_BorradoresIdenticosTienenIDsDistintos(t *testing.T) {
	uc := newProductUseCase(memory.NewState(nil, nil, nil))
	ctx := context.Background()

	a, err := uc.Create(ctx, draft())
	require.NoError(t, err)
	b, err := uc.Create(ctx, draft())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	list, err := uc.List(ctx, dto.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
}

func TestCreate_ValidaCamposObligatorios(t *testing.T) {
	uc := newProductUseCase(memory.NewState(nil, nil, nil))

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Stock: "abc", Price: "-1"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"name", "category", "stock", "price"}, verr.Fields)
}

func TestCreate_StockMinimo(t *testing.T) {
	uc := newProductUseCase(memory.NewState(nil, nil, nil))
	ctx := context.Background()

	in := draft()
	in.MinStock = "0"
	out, err := uc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 0, out.MinStock)

	in.MinStock = "muchos"
	out, err = uc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, usecase.DefaultMinStock, out.MinStock)

	in.MinStock = "-3"
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_StockCeroQuedaAgotado(t *testing.T) {
	uc := newProductUseCase(memory.NewState(nil, nil, nil))
	in := draft()
	in.Stock = "0"
	in.SKU = "MI-SKU"
	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "MI-SKU", out.SKU)
	assert.Equal(t, string(entity.StatusOutOfStock), out.Status)
	assert.Equal(t, "Agotado", out.StatusLabel)
}

func TestCreateBatch_OmiteInvalidos(t *testing.T) {
	uc := newProductUseCase(memory.NewState(nil, nil, nil))
	bad := draft()
	bad.Name = ""

	res, err := uc.CreateBatch(context.Background(), []dto.CreateProductRequest{draft(), bad, draft()})
	require.NoError(t, err)
	assert.Len(t, res.Created, 2)
	assert.Equal(t, 1, res.Skipped)
}

func TestUpdate_RederivaEstadoYSella(t *testing.T) {
	state := memory.NewState(nil, nil, nil)
	uc := newProductUseCase(state)
	ctx := context.Background()
	created, err := uc.Create(ctx, draft())
	require.NoError(t, err)

	out, err := uc.Update(ctx, created.ID, dto.UpdateProductRequest{Stock: numPtr("3"), Supplier: strPtr("Logitech")})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Stock)
	assert.Equal(t, "Logitech", out.Supplier)
	assert.Equal(t, string(entity.StatusLowStock), out.Status)
	assert.Equal(t, created.Name, out.Name)

	_, err = uc.Update(ctx, created.ID, dto.UpdateProductRequest{Name: strPtr("  ")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(ctx, "no-existe", dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_CamposVaciosUsanLosValoresPorDefecto(t *testing.T) {
	state := memory.NewState(nil, nil, nil)
	uc := newProductUseCase(state)
	ctx := context.Background()
	in := draft()
	in.SKU = "MANUAL-001"
	in.Supplier = "Logitech"
	created, err := uc.Create(ctx, in)
	require.NoError(t, err)

	out, err := uc.Update(ctx, created.ID, dto.UpdateProductRequest{
		Supplier: strPtr("  "),
		SKU:      strPtr(""),
		Category: strPtr("Redes"),
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.DefaultSupplier, out.Supplier)
	assert.Regexp(t, `^CAB-RED-\d{3}$`, out.SKU)

	out, err = uc.Update(ctx, created.ID, dto.UpdateProductRequest{SKU: strPtr(" NUEVO-9 ")})
	require.NoError(t, err)
	assert.Equal(t, "NUEVO-9", out.SKU)
}

func TestDelete_EliminaSusMovimientosEnCascada(t *testing.T) {
	state := memory.NewState(nil, nil, nil)
	uc := newProductUseCase(state)
	movements := inventory.NewRegisterMovementUseCase(state, nil, nil, nil)
	ctx := context.Background()

	a, err := uc.Create(ctx, draft())
	require.NoError(t, err)
	b, err := uc.Create(ctx, draft())
	require.NoError(t, err)

	for _, id := range []string{a.ID, b.ID, a.ID} {
		_, err := movements.RegisterMovement(ctx, inventory.MovementInputDTO{ProductID: id, Type: entity.MovementTypeIn, Quantity: 1})
		require.NoError(t, err)
	}

	res, err := uc.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, res.RemovedMovements)

	left, err := movements.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, b.ID, left[0].ProductID)

	got, err := uc.GetByID(ctx, a.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)

	_, err = uc.Delete(ctx, a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_FiltraPorTextoYCategoria(t *testing.T) {
	state := memory.NewState(memory.SeedProducts(), nil, nil)
	uc := newProductUseCase(state)
	ctx := context.Background()

	res, err := uc.List(ctx, dto.ProductFilter{Search: "samsung"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)

	res, err = uc.List(ctx, dto.ProductFilter{Search: "samsung", Category: "Almacenamiento"})
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "SAM-970EVO-1T", res.Items[0].SKU)

	res, err = uc.List(ctx, dto.ProductFilter{Category: "all"})
	require.NoError(t, err)
	assert.Equal(t, 15, res.Total)
}

func TestCategories_OrdenDeAparicion(t *testing.T) {
	uc := newProductUseCase(memory.NewState(memory.SeedProducts(), nil, nil))
	cats, err := uc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Electrónicos", "Accesorios", "Oficina", "Almacenamiento", "Redes", "Software", "Componentes"}, cats)
}
