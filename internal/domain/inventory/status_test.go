package inventory_test

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/domain/inventory"
)

func TestDeriveStatus_Grilla(t *testing.T) {
	cases := []struct {
		stock, min int
		want       entity.ProductStatus
	}{
		{0, 0, entity.StatusOutOfStock},
		{0, 5, entity.StatusOutOfStock},
		{1, 0, entity.StatusInStock},
		{1, 5, entity.StatusLowStock},
		{5, 0, entity.StatusInStock},
		{5, 5, entity.StatusLowStock},
		{6, 0, entity.StatusInStock},
		{6, 5, entity.StatusInStock},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("q=%d_m=%d", tc.stock, tc.min), func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.DeriveStatus(tc.stock, tc.min))
		})
	}
}

func TestRefresh_ReDerivaEstado(t *testing.T) {
	p := &entity.Product{Stock: 15, MinStock: 10, Status: entity.StatusLowStock}
	inventory.Refresh(p)
	assert.Equal(t, entity.StatusInStock, p.Status)

	p.Stock = 0
	inventory.Refresh(p)
	assert.Equal(t, entity.StatusOutOfStock, p.Status)
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "En Stock", entity.StatusInStock.Label())
	assert.Equal(t, "Stock Bajo", entity.StatusLowStock.Label())
	assert.Equal(t, "Agotado", entity.StatusOutOfStock.Label())
}

var skuPattern = regexp.MustCompile(`^[A-ZÁÉÍÓÚÑ]{3}-[A-ZÁÉÍÓÚÑ]{3}-\d{3}$`)

func TestGenerateSKU_Forma(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 50; i++ {
		sku := inventory.GenerateSKU("Monitor Samsung", "Electrónicos", rng)
		assert.Regexp(t, skuPattern, sku)
		assert.Equal(t, "MON-ELE-", sku[:8])
	}
}

func TestGenerateSKU_Determinista(t *testing.T) {
	a := inventory.GenerateSKU("teclado", "accesorios", rand.New(rand.NewPCG(7, 7)))
	b := inventory.GenerateSKU("teclado", "accesorios", rand.New(rand.NewPCG(7, 7)))
	assert.Equal(t, a, b, "misma semilla, mismo SKU")
}

func TestGenerateSKU_NombreCorto(t *testing.T) {
	sku := inventory.GenerateSKU("Tv", "Ok", rand.New(rand.NewPCG(1, 1)))
	assert.Regexp(t, `^TV-OK-\d{3}$`, sku)
}
