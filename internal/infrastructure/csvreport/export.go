// Package csvreport genera los reportes CSV del inventario y lee archivos de productos.
// Formato: UTF-8, separado por comas, encabezado sin comillas, cada campo de datos entre comillas
// dobles (las comillas internas se duplican), filas unidas con "\n" y sin salto final.
package csvreport

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/pkg/money"
)

// Tipos de reporte; forman parte del nombre de archivo.
const (
	KindStock     = "stock"
	KindMovements = "movimientos"
	KindValuation = "valorizacion"
)

// TotalLabel etiqueta de la fila resumen del reporte de valorización.
const TotalLabel = "--- TOTAL INVENTARIO ---"

// Encabezados de cada reporte.
var (
	StockHeader = []string{
		"Producto", "SKU", "Categoría", "Stock Actual", "Stock Mínimo", "Estado",
		"Precio Unitario", "Valor Total", "Proveedor", "Última Actualización",
	}
	MovementsHeader = []string{
		"Fecha", "Producto", "Tipo", "Cantidad", "Stock Anterior", "Stock Nuevo", "Usuario", "Notas",
	}
	ValuationHeader = []string{
		"Producto", "SKU", "Categoría", "Stock", "Precio Unitario", "Valor Total", "Porcentaje del Total",
	}
)

// Filename arma reporte_<tipo>_<YYYY-MM-DD>.csv.
func Filename(kind string, date time.Time) string {
	return "reporte_" + kind + "_" + date.Format(time.DateOnly) + ".csv"
}

// Exporter serializa colecciones a CSV con los montos en el formato de moneda configurado.
type Exporter struct {
	money *money.Formatter
}

// NewExporter construye el exportador.
func NewExporter(f *money.Formatter) *Exporter {
	return &Exporter{money: f}
}

// Stock una fila por producto en el orden del registro.
func (e *Exporter) Stock(products []*entity.Product) []byte {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			p.Name,
			p.SKU,
			p.Category,
			strconv.Itoa(p.Stock),
			strconv.Itoa(p.MinStock),
			p.Status.Label(),
			e.money.Format(p.Price),
			e.money.Format(p.TotalValue()),
			p.Supplier,
			p.LastUpdated.Format(time.DateOnly),
		})
	}
	return encode(StockHeader, rows)
}

// Movements una fila por movimiento en el orden del libro (más reciente primero).
// La cantidad lleva signo: +10 entrada, -8 salida.
func (e *Exporter) Movements(movements []*entity.Movement) []byte {
	rows := make([][]string, 0, len(movements))
	for _, m := range movements {
		rows = append(rows, []string{
			m.Date.Format(time.DateOnly),
			m.ProductName,
			entity.MovementTypeLabel(m.Type),
			signed(m.SignedQuantity()),
			strconv.Itoa(m.PreviousStock),
			strconv.Itoa(m.NewStock),
			m.User,
			m.Notes,
		})
	}
	return encode(MovementsHeader, rows)
}

// ValuationRow fila del reporte de valorización, compartida con el PDF.
type ValuationRow struct {
	Name       string
	SKU        string
	Category   string
	Stock      int
	UnitPrice  decimal.Decimal
	TotalValue decimal.Decimal
	Percent    string
}

// ValuationRows calcula las filas por producto y la fila de totales. Cada valor se redondea a pesos
// una sola vez y el total suma esos valores, de modo que coincide con las filas mostradas. El
// porcentaje de cada fila es su valor sobre el valor total del inventario.
func ValuationRows(products []*entity.Product) (rows []ValuationRow, total ValuationRow) {
	values := make([]decimal.Decimal, len(products))
	grand := decimal.Zero
	units := 0
	for i, p := range products {
		values[i] = p.TotalValue().Round(0)
		grand = grand.Add(values[i])
		units += p.Stock
	}
	rows = make([]ValuationRow, 0, len(products))
	for i, p := range products {
		rows = append(rows, ValuationRow{
			Name:       p.Name,
			SKU:        p.SKU,
			Category:   p.Category,
			Stock:      p.Stock,
			UnitPrice:  p.Price,
			TotalValue: values[i],
			Percent:    money.Percent(values[i], grand),
		})
	}
	total = ValuationRow{Name: TotalLabel, Stock: units, TotalValue: grand, Percent: "100.00%"}
	return rows, total
}

// Valuation reporte de valorización con la fila de totales al final.
func (e *Exporter) Valuation(products []*entity.Product) []byte {
	rows, total := ValuationRows(products)
	out := make([][]string, 0, len(rows)+1)
	for _, r := range rows {
		out = append(out, []string{
			r.Name, r.SKU, r.Category, strconv.Itoa(r.Stock),
			e.money.Format(r.UnitPrice), e.money.Format(r.TotalValue), r.Percent,
		})
	}
	out = append(out, []string{
		total.Name, "", "", strconv.Itoa(total.Stock), "", e.money.Format(total.TotalValue), total.Percent,
	})
	return encode(ValuationHeader, out)
}

func signed(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// encode escribe el encabezado sin comillas y los datos siempre entre comillas.
// encoding/csv solo entrecomilla cuando hace falta, por eso se escribe a mano.
func encode(header []string, rows [][]string) []byte {
	var b strings.Builder
	b.WriteString(strings.Join(header, ","))
	for _, row := range rows {
		b.WriteByte('\n')
		for i, field := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(field, `"`, `""`))
			b.WriteByte('"')
		}
	}
	return []byte(b.String())
}
