package entity_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-stock/internal/domain/entity"
)

func TestParseDate(t *testing.T) {
	d, err := entity.ParseDate("2025-02-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local), d)

	d, err = entity.ParseDate("2025-02-01T13:45:00.123Z")
	require.NoError(t, err)
	assert.True(t, d.Equal(time.Date(2025, 2, 1, 13, 45, 0, 123000000, time.UTC)))

	_, err = entity.ParseDate("01/02/2025")
	assert.Error(t, err)
}

func TestProduct_DecodificaFechaSola(t *testing.T) {
	var p entity.Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","name":"Cable","stock":3,"minStock":5,"price":1500,"lastUpdated":"2025-02-01"}`), &p))
	assert.Equal(t, "Cable", p.Name)
	assert.Equal(t, 5, p.MinStock)
	assert.Equal(t, "1500", p.Price.String())
	assert.Equal(t, "2025-02-01", p.LastUpdated.Format(time.DateOnly))
}

func TestProduct_IdaYVueltaConservaLaFecha(t *testing.T) {
	in := entity.Product{ID: "1", Name: "Cable", LastUpdated: time.Date(2025, 2, 1, 9, 30, 0, 0, time.UTC)}
	raw, err := json.Marshal(in)
	require.NoError(t, err)

	var out entity.Product
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.True(t, in.LastUpdated.Equal(out.LastUpdated))
}

func TestMovement_DecodificaFechaSola(t *testing.T) {
	var m entity.Movement
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","productId":"2","type":"salida","quantity":8,"date":"2025-01-14","previousStock":13,"newStock":5}`), &m))
	assert.Equal(t, "2", m.ProductID)
	assert.Equal(t, 5, m.NewStock)
	assert.Equal(t, "2025-01-14", m.Date.Format(time.DateOnly))
}

func TestMovement_FechaInvalidaEsError(t *testing.T) {
	var m entity.Movement
	assert.Error(t, json.Unmarshal([]byte(`{"id":"1","date":"ayer"}`), &m))
}
