// Package report orquesta las descargas de reportes y la importación de productos.
package report

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jhoicas/inventario-stock/internal/application/dto"
	"github.com/jhoicas/inventario-stock/internal/application/inventory"
	"github.com/jhoicas/inventario-stock/internal/application/usecase"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
	"github.com/jhoicas/inventario-stock/internal/infrastructure/csvreport"
	"github.com/jhoicas/inventario-stock/pkg/logger"
)

const (
	contentTypeCSV = "text/csv; charset=utf-8"
	contentTypePDF = "application/pdf"
)

// ValuationReport datos del reporte de valorización para el PDF.
type ValuationReport struct {
	GeneratedAt time.Time
	Products    int
	Rows        []csvreport.ValuationRow
	Total       csvreport.ValuationRow
}

// ValuationPDFGenerator genera el PDF del reporte de valorización.
type ValuationPDFGenerator interface {
	GenerateValuationPDF(ctx context.Context, report ValuationReport) ([]byte, error)
}

// ReportUseCase genera los tres reportes CSV, el PDF de valorización y la importación.
type ReportUseCase struct {
	txRunner inventory.TxRunner
	products *usecase.ProductUseCase
	exporter *csvreport.Exporter
	importer *csvreport.Importer
	pdf      ValuationPDFGenerator
	log      *logger.Logger
	now      inventory.Clock
}

// NewReportUseCase construye el caso de uso. pdf puede ser nil si no se expone el PDF.
func NewReportUseCase(
	txRunner inventory.TxRunner,
	products *usecase.ProductUseCase,
	exporter *csvreport.Exporter,
	importer *csvreport.Importer,
	pdf ValuationPDFGenerator,
	log *logger.Logger,
) *ReportUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ReportUseCase{
		txRunner: txRunner,
		products: products,
		exporter: exporter,
		importer: importer,
		pdf:      pdf,
		log:      log.Component("reports"),
		now:      time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *ReportUseCase) WithClock(c inventory.Clock) *ReportUseCase {
	uc.now = c
	return uc
}

// StockReport reporte_stock_<fecha>.csv.
func (uc *ReportUseCase) StockReport(ctx context.Context) (*dto.ReportFile, error) {
	products, _, err := uc.snapshot(ctx, false)
	if err != nil {
		return nil, err
	}
	return uc.csvFile(csvreport.KindStock, uc.exporter.Stock(products)), nil
}

// MovementsReport reporte_movimientos_<fecha>.csv en el orden del libro.
func (uc *ReportUseCase) MovementsReport(ctx context.Context) (*dto.ReportFile, error) {
	_, movements, err := uc.snapshot(ctx, true)
	if err != nil {
		return nil, err
	}
	return uc.csvFile(csvreport.KindMovements, uc.exporter.Movements(movements)), nil
}

// ValuationReport reporte_valorizacion_<fecha>.csv con la fila de totales.
func (uc *ReportUseCase) ValuationReport(ctx context.Context) (*dto.ReportFile, error) {
	products, _, err := uc.snapshot(ctx, false)
	if err != nil {
		return nil, err
	}
	return uc.csvFile(csvreport.KindValuation, uc.exporter.Valuation(products)), nil
}

// ValuationPDF mismo contenido que ValuationReport en PDF.
func (uc *ReportUseCase) ValuationPDF(ctx context.Context) (*dto.ReportFile, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("reporte: generador PDF no configurado")
	}
	products, _, err := uc.snapshot(ctx, false)
	if err != nil {
		return nil, err
	}
	rows, total := csvreport.ValuationRows(products)
	now := uc.now()
	content, err := uc.pdf.GenerateValuationPDF(ctx, ValuationReport{
		GeneratedAt: now,
		Products:    len(products),
		Rows:        rows,
		Total:       total,
	})
	if err != nil {
		return nil, fmt.Errorf("reporte: pdf de valorización: %w", err)
	}
	name := strings.TrimSuffix(csvreport.Filename(csvreport.KindValuation, now), ".csv") + ".pdf"
	return &dto.ReportFile{Filename: name, ContentType: contentTypePDF, Content: content}, nil
}

// ImportProducts lee el CSV y agrega los productos válidos al registro, sin reemplazar los
// existentes. Un archivo ilegible devuelve domain.ErrImportParse y no agrega nada.
func (uc *ReportUseCase) ImportProducts(ctx context.Context, r io.Reader) (*dto.ImportResult, error) {
	drafts, stats, err := uc.importer.ParseProducts(r)
	if err != nil {
		uc.log.Warn().Err(err).Msg("importación rechazada")
		return nil, err
	}
	batch, err := uc.products.CreateBatch(ctx, drafts)
	if err != nil {
		return nil, err
	}
	return &dto.ImportResult{
		Imported: len(batch.Created),
		Skipped:  batch.Skipped,
		Ignored:  stats.Ignored,
	}, nil
}

func (uc *ReportUseCase) csvFile(kind string, content []byte) *dto.ReportFile {
	return &dto.ReportFile{
		Filename:    csvreport.Filename(kind, uc.now()),
		ContentType: contentTypeCSV,
		Content:     content,
	}
}

// snapshot copia el estado confirmado; withMovements evita copiar el libro cuando no se usa.
func (uc *ReportUseCase) snapshot(ctx context.Context, withMovements bool) ([]*entity.Product, []*entity.Movement, error) {
	var (
		products  []*entity.Product
		movements []*entity.Movement
	)
	err := uc.txRunner.View(ctx, func(pr repository.ProductReader, mr repository.MovementReader) error {
		var err error
		if products, err = pr.List(); err != nil {
			return err
		}
		if withMovements {
			movements, err = mr.List()
		}
		return err
	})
	if err != nil {
		return nil, nil, fmt.Errorf("reporte: leer estado: %w", err)
	}
	return products, movements, nil
}
