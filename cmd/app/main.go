package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/wichananm65/sports-store/internal/category"
	"github.com/wichananm65/sports-store/internal/config"
	"github.com/wichananm65/sports-store/internal/logger"
	"github.com/wichananm65/sports-store/internal/product"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
	slog.SetDefault(log)

	repo, reloader, closeCatalog, err := openCatalog(cfg)
	if err != nil {
		log.Error("failed to open catalog", "source", cfg.CatalogSource, "error", err)
		os.Exit(1)
	}
	defer closeCatalog()

	app := newApp(cfg, log, repo, reloader)

	go func() {
		log.Info("starting server", "addr", cfg.Addr, "source", cfg.CatalogSource)
		if err := app.Listen(cfg.Addr); err != nil {
			log.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}
}

// newApp wires handlers and middleware onto a fresh fiber app.
func newApp(cfg config.Config, log *slog.Logger, repo product.Repository, reloader product.Reloader) *fiber.App {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.Middleware(log))
	setupCORS(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	productService := product.NewService(repo, cfg.PageSize)
	productHandler := product.NewHandler(productService, reloader)
	productHandler.RegisterPublicRoutes(app)
	log.Info("catalog listing ready", "page_size", productService.PageSize())

	categoryHandler := category.NewHandler(category.NewService(repo))
	categoryHandler.RegisterPublicRoutes(app)

	return app
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

// openCatalog builds the product repository selected by CATALOG_SOURCE. The
// returned reloader is nil for sources that cannot be reloaded.
func openCatalog(cfg config.Config) (product.Repository, product.Reloader, func(), error) {
	noop := func() {}
	switch cfg.CatalogSource {
	case config.SourcePostgres:
		db, err := openDB(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, noop, err
		}
		return product.NewPostgresRepository(db), nil, func() { _ = db.Close() }, nil
	case config.SourceXLSX:
		repo, err := product.NewXLSXRepository(cfg.CatalogXLSX)
		if err != nil {
			return nil, nil, noop, err
		}
		return repo, repo, noop, nil
	default:
		return product.NewInMemoryRepository(product.SampleProducts()), nil, noop, nil
	}
}

func openDB(dbURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
