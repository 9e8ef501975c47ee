package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/inventario-stock/docs"
	appanalytics "github.com/jhoicas/inventario-stock/internal/application/analytics"
	"github.com/jhoicas/inventario-stock/internal/application/inventory"
	"github.com/jhoicas/inventario-stock/internal/application/report"
	"github.com/jhoicas/inventario-stock/internal/application/usecase"
	"github.com/jhoicas/inventario-stock/internal/infrastructure/csvreport"
	"github.com/jhoicas/inventario-stock/internal/infrastructure/kvstore"
	"github.com/jhoicas/inventario-stock/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-stock/internal/infrastructure/messaging"
	"github.com/jhoicas/inventario-stock/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/inventario-stock/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/inventario-stock/internal/interfaces/http"
	"github.com/jhoicas/inventario-stock/pkg/config"
	"github.com/jhoicas/inventario-stock/pkg/logger"
	"github.com/jhoicas/inventario-stock/pkg/money"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := kvstore.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}

	products, movements := memory.Load(ctx, store, log)
	writer := memory.NewSnapshotWriter(store, log)
	state := memory.NewState(products, movements, writer)

	var (
		publisher inventory.EventPublisher = inventory.NopPublisher{}
		events    *messaging.AsyncPublisher
		producer  *messaging.KafkaProducer
	)
	if cfg.Kafka.Enabled() {
		// La entrega a Kafka corre en segundo plano; un broker caído no demora las peticiones.
		producer = messaging.NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		events = messaging.NewAsyncPublisher(producer, messaging.DefaultQueueSize, log)
		publisher = events
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("publicación de eventos activa")
	}

	reg := metrics.NewRegistry()
	reg.RegisterStateGauges(state.Counts)

	formatter, err := money.NewFormatter(cfg.Inventory.CurrencyLocale, cfg.Inventory.CurrencySymbol)
	if err != nil {
		log.Fatal().Err(err).Msg("formato de moneda")
	}

	productUC := usecase.NewProductUseCase(state,
		usecase.WithProductPublisher(publisher),
		usecase.WithProductMetrics(reg),
		usecase.WithProductLogger(log),
		usecase.WithDefaultMinStock(cfg.Inventory.DefaultMinStock),
	)
	registerMovementUC := inventory.NewRegisterMovementUseCase(state, publisher, reg, log).
		WithDefaultUser(cfg.Inventory.DefaultUser)
	replenishmentUC := inventory.NewReplenishmentUseCase(state)
	dashboardUC := appanalytics.NewDashboardUseCase(state)

	// PDF: reporte de valorización con el mismo formato de moneda que los CSV
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name, formatter)
	reportUC := report.NewReportUseCase(
		state, productUC,
		csvreport.NewExporter(formatter), csvreport.NewImporter(formatter),
		pdfGenerator, log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    12 << 20,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.HTTP.SwaggerPath != "" {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerPath,
			Path:     "docs",
			Title:    "Inventario Stock API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ServiceName:      cfg.App.Name,
		ProductUC:        productUC,
		RegisterMovement: registerMovementUC,
		Replenishment:    replenishmentUC,
		DashboardUC:      dashboardUC,
		ReportUC:         reportUC,
		Metrics:          reg,
		PersistError:     state.PersistError,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	// Vacía las escrituras pendientes antes de cerrar el almacén.
	if err := writer.Close(); err != nil {
		log.Error().Err(err).Msg("persistencia pendiente")
	}
	if events != nil {
		_ = events.Close()
		if err := producer.Close(); err != nil {
			log.Error().Err(err).Msg("cierre del productor Kafka")
		}
	}
	if err := store.Close(); err != nil {
		log.Error().Err(err).Msg("cierre del almacenamiento")
	}

	log.Info().Msg("aplicación detenida")
}
