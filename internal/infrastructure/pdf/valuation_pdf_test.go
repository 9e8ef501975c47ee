package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-stock/internal/application/report"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/infrastructure/csvreport"
	"github.com/jhoicas/inventario-stock/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-stock/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-stock/pkg/money"
)

func TestGenerateValuationPDF(t *testing.T) {
	seed := memory.SeedProducts()
	products := make([]*entity.Product, len(seed))
	for i := range seed {
		products[i] = &seed[i]
	}
	rows, total := csvreport.ValuationRows(products)

	gen := pdf.NewMarotoPDFGenerator("Inventario Demo", money.MustFormatter("es-CO", "$"))
	out, err := gen.GenerateValuationPDF(context.Background(), report.ValuationReport{
		GeneratedAt: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
		Products:    len(products),
		Rows:        rows,
		Total:       total,
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un documento PDF")
}
