// Package pdf genera el reporte de valorización de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + empresa     │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Productos / Unidades / Valor total                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | SKU | Categoría | Stock | P.Unit | Valor | %│
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL INVENTARIO                                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/inventario-stock/internal/application/report"
	"github.com/jhoicas/inventario-stock/internal/infrastructure/csvreport"
	"github.com/jhoicas/inventario-stock/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ report.ValuationPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa report.ValuationPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	company string
	money   *money.Formatter
}

// NewMarotoPDFGenerator construye el generador; company aparece en el encabezado.
func NewMarotoPDFGenerator(company string, f *money.Formatter) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{company: company, money: f}
}

// GenerateValuationPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateValuationPDF(_ context.Context, rep report.ValuationReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Valorización de Inventario", true).
		WithAuthor(g.company, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.summaryRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range rep.Rows {
		m.AddRows(g.detailRow(r, false))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.detailRow(rep.Total, true))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoPDFGenerator) headerRow(rep report.ValuationReport) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("REPORTE DE VALORIZACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(g.company, "Inventario"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+rep.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func (g *MarotoPDFGenerator) summaryRow(rep report.ValuationReport) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 6, Align: align.Center}),
		)
	}
	return row.New(14).Add(
		kpi("Productos", strconv.Itoa(rep.Products)),
		kpi("Unidades en stock", strconv.Itoa(rep.Total.Stock)),
		kpi("Valor total", g.money.Format(rep.Total.TotalValue)),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 3, align.Left),
		h("SKU", 2, align.Left),
		h("Categoría", 2, align.Left),
		h("Stock", 1, align.Center),
		h("P. Unit.", 1, align.Right),
		h("Valor Total", 2, align.Right),
		h("%", 1, align.Right),
	)
}

func (g *MarotoPDFGenerator) detailRow(r csvreport.ValuationRow, total bool) core.Row {
	style := fontstyle.Normal
	if total {
		style = fontstyle.Bold
	}
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Style: style, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	unit := ""
	if !total {
		unit = g.money.Format(r.UnitPrice)
	}
	return row.New(7).Add(
		cell(r.Name, 3, align.Left),
		cell(r.SKU, 2, align.Left),
		cell(r.Category, 2, align.Left),
		cell(strconv.Itoa(r.Stock), 1, align.Center),
		cell(unit, 1, align.Right),
		cell(g.money.Format(r.TotalValue), 2, align.Right),
		cell(r.Percent, 1, align.Right),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
