package csvreport

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/inventario-stock/internal/application/dto"
	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/pkg/money"
)

// Etiquetas que el importador busca en el encabezado; el orden de las columnas no importa.
const (
	colName     = "Producto"
	colSKU      = "SKU"
	colCategory = "Categoría"
	colStock    = "Stock Actual"
	colMinStock = "Stock Mínimo"
	colPrice    = "Precio Unitario"
	colSupplier = "Proveedor"
)

// DefaultImportCategory categoría de las filas sin columna o valor de categoría.
const DefaultImportCategory = "Sin categoría"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseStats conteo de filas leídas.
type ParseStats struct {
	Rows    int // filas de datos leídas
	Ignored int // filas con menos campos que el encabezado
}

// Importer lee archivos CSV de productos.
type Importer struct {
	money *money.Formatter
}

// NewImporter construye el importador.
func NewImporter(f *money.Formatter) *Importer {
	return &Importer{money: f}
}

// ParseProducts convierte cada fila en un borrador de producto. Las filas con menos campos que
// el encabezado se ignoran. Un archivo vacío, sin encabezado o con CSV mal formado devuelve
// domain.ErrImportParse y no se importa nada.
func (i *Importer) ParseProducts(r io.Reader) ([]dto.CreateProductRequest, ParseStats, error) {
	var stats ParseStats

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, stats, fmt.Errorf("%w: %v", domain.ErrImportParse, err)
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, stats, fmt.Errorf("%w: archivo vacío", domain.ErrImportParse)
	}
	if !utf8.Valid(raw) {
		// Exportaciones de Excel en Windows.
		if raw, err = charmap.Windows1252.NewDecoder().Bytes(raw); err != nil {
			return nil, stats, fmt.Errorf("%w: codificación: %v", domain.ErrImportParse, err)
		}
	}

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, stats, fmt.Errorf("%w: falta el encabezado", domain.ErrImportParse)
	}
	if err != nil {
		return nil, stats, fmt.Errorf("%w: encabezado: %v", domain.ErrImportParse, err)
	}
	index := make(map[string]int, len(header))
	for pos, label := range header {
		label = strings.TrimSpace(label)
		if _, dup := index[label]; !dup {
			index[label] = pos
		}
	}

	drafts := make([]dto.CreateProductRequest, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("%w: %v", domain.ErrImportParse, err)
		}
		stats.Rows++
		if len(record) < len(header) {
			stats.Ignored++
			continue
		}
		get := func(label string) string {
			pos, ok := index[label]
			if !ok {
				return ""
			}
			return strings.TrimSpace(record[pos])
		}

		category := get(colCategory)
		if category == "" {
			category = DefaultImportCategory
		}
		drafts = append(drafts, dto.CreateProductRequest{
			Name:     get(colName),
			SKU:      get(colSKU),
			Category: category,
			Stock:    dto.NumericString(strconv.Itoa(i.integer(get(colStock), 0))),
			MinStock: i.minStock(get(colMinStock)),
			Price:    dto.NumericString(i.amount(get(colPrice))),
			Supplier: get(colSupplier),
		})
	}
	return drafts, stats, nil
}

// integer lee una cantidad; vacío o ilegible usa def.
func (i *Importer) integer(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := i.money.ParseInt(s)
	if err != nil {
		return def
	}
	return n
}

// minStock vacío deja que el registro aplique su mínimo por defecto.
func (i *Importer) minStock(s string) dto.NumericString {
	if s == "" {
		return ""
	}
	n, err := i.money.ParseInt(s)
	if err != nil {
		return ""
	}
	return dto.NumericString(strconv.Itoa(n))
}

// amount lee un precio como "$ 2.500.000"; ilegible vale 0.
func (i *Importer) amount(s string) string {
	if s == "" {
		return "0"
	}
	d, err := i.money.Parse(s)
	if err != nil {
		return "0"
	}
	return d.String()
}
