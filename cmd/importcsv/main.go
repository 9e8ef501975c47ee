// importcsv importa productos desde un CSV al almacenamiento configurado y/o escribe los
// reportes de stock, movimientos y valorización en un directorio.
//
// Uso: go run ./cmd/importcsv --file productos.csv --out ./reportes [--pdf]
// Usa las mismas variables de entorno que la API (STORE_DRIVER, STORE_DIR, ...).
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/jhoicas/inventario-stock/internal/application/dto"
	"github.com/jhoicas/inventario-stock/internal/application/report"
	"github.com/jhoicas/inventario-stock/internal/application/usecase"
	"github.com/jhoicas/inventario-stock/internal/infrastructure/csvreport"
	"github.com/jhoicas/inventario-stock/internal/infrastructure/kvstore"
	"github.com/jhoicas/inventario-stock/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/inventario-stock/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-stock/pkg/config"
	"github.com/jhoicas/inventario-stock/pkg/logger"
	"github.com/jhoicas/inventario-stock/pkg/money"
)

func main() {
	file := pflag.StringP("file", "f", "", "CSV de productos a importar")
	outDir := pflag.StringP("out", "o", "", "directorio donde escribir los reportes")
	withPDF := pflag.Bool("pdf", false, "incluir el reporte de valorización en PDF")
	pflag.Parse()

	if *file == "" && *outDir == "" {
		fmt.Fprintln(os.Stderr, "Indique --file y/o --out")
		pflag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: cfg.App.Name})

	if err := run(context.Background(), cfg, log, *file, *outDir, *withPDF); err != nil {
		log.Error().Err(err).Msg("importcsv")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger, file, outDir string, withPDF bool) error {
	store, err := kvstore.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("abrir almacenamiento: %w", err)
	}
	defer store.Close()

	products, movements := memory.Load(ctx, store, log)
	writer := memory.NewSnapshotWriter(store, log)
	state := memory.NewState(products, movements, writer)

	formatter, err := money.NewFormatter(cfg.Inventory.CurrencyLocale, cfg.Inventory.CurrencySymbol)
	if err != nil {
		return err
	}
	productUC := usecase.NewProductUseCase(state,
		usecase.WithProductLogger(log),
		usecase.WithDefaultMinStock(cfg.Inventory.DefaultMinStock),
	)
	reportUC := report.NewReportUseCase(
		state, productUC,
		csvreport.NewExporter(formatter), csvreport.NewImporter(formatter),
		infrapdf.NewMarotoPDFGenerator(cfg.App.Name, formatter), log,
	)

	if file != "" {
		if err := importFile(ctx, reportUC, file, log); err != nil {
			_ = writer.Close()
			return err
		}
	}
	// Close espera a que la importación quede persistida.
	if err := writer.Close(); err != nil {
		return fmt.Errorf("persistir: %w", err)
	}

	if outDir == "" {
		return nil
	}
	return writeReports(ctx, reportUC, outDir, withPDF, log)
}

func importFile(ctx context.Context, uc *report.ReportUseCase, path string, log *logger.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("abrir CSV: %w", err)
	}
	defer f.Close()

	res, err := uc.ImportProducts(ctx, f)
	if err != nil {
		return err
	}
	log.Info().
		Str("file", path).
		Int("imported", res.Imported).
		Int("skipped", res.Skipped).
		Int("ignored", res.Ignored).
		Msg("importación completada")
	return nil
}

func writeReports(ctx context.Context, uc *report.ReportUseCase, dir string, withPDF bool, log *logger.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio: %w", err)
	}
	builders := []func(context.Context) (*dto.ReportFile, error){
		uc.StockReport, uc.MovementsReport, uc.ValuationReport,
	}
	if withPDF {
		builders = append(builders, uc.ValuationPDF)
	}
	for _, build := range builders {
		rep, err := build(ctx)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, rep.Filename)
		if err := os.WriteFile(path, rep.Content, 0o644); err != nil {
			return fmt.Errorf("escribir %s: %w", rep.Filename, err)
		}
		log.Info().Str("path", path).Int("bytes", len(rep.Content)).Msg("reporte escrito")
	}
	return nil
}
