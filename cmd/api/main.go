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

	"github.com/jhoicas/conteo-api/internal/application/inventory"
	"github.com/jhoicas/conteo-api/internal/application/scanner"
	"github.com/jhoicas/conteo-api/internal/domain/repository"
	"github.com/jhoicas/conteo-api/internal/infrastructure/excel"
	"github.com/jhoicas/conteo-api/internal/infrastructure/pdf"
	"github.com/jhoicas/conteo-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/conteo-api/internal/interfaces/http"
	"github.com/jhoicas/conteo-api/pkg/config"
	"github.com/jhoicas/conteo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var kv repository.KV
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		pool, err := storage.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		pg := storage.NewPostgres(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("esquema app_state")
		}
		kv = pg
	case config.BackendFile:
		fileStore, err := storage.NewFile(cfg.Storage.DataDir)
		if err != nil {
			log.Fatal().Err(err).Msg("almacenamiento en archivos")
		}
		kv = fileStore
	default:
		kv = storage.NewMemory()
	}

	svc, err := inventory.NewService(ctx, kv)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar estado del conteo")
	}

	guard := scanner.NewDebouncer(time.Duration(cfg.Scan.CooldownMs) * time.Millisecond)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Conteo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Service:   svc,
		ScanGuard: guard,
		Importer:  excel.NewImporter(),
		Exporter:  excel.NewExporter(),
		PDF:       pdf.NewReportGenerator(),
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

	log.Info().Msg("aplicación detenida")
}
