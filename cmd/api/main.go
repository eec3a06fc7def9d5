package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"complyapi/internal/cache"
	"complyapi/internal/config"
	"complyapi/internal/database"
	"complyapi/internal/database/migration"
	handlers "complyapi/internal/http/handler"
	"complyapi/internal/http/middleware"
	"complyapi/internal/logger"
	"complyapi/internal/metrics"
	"complyapi/internal/otel"
	"complyapi/internal/perceiver"
	"complyapi/internal/repository"
	"complyapi/internal/repository/postgres"
	"complyapi/internal/service"
	"complyapi/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// @title        Compliance API
// @version      1.0
// @description  Checks financial advertisements against ASCI, AMFI and exchange guidelines.
// @BasePath     /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("config_load_failed", zap.Error(err))
	}

	log := logger.New(cfg.LogLevel, cfg.Location())
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal("tracing_init_failed", zap.Error(err))
	}

	// History needs PostgreSQL; without it checks are evaluated but not recorded
	var (
		db   *sql.DB
		repo repository.CheckRepository
	)
	if cfg.Database.Enabled() {
		db, err = database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			log.Fatal("database_connect_failed", zap.Error(err))
		}
		defer db.Close()

		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			log.Fatal("database_migration_failed", zap.Error(err))
		}
		repo = postgres.NewCheckPostgres(db)
	} else {
		log.Info("history_disabled", zap.String("reason", "DB_HOST not set"))
	}

	var store storage.Storage
	if cfg.MinIO.Enabled() {
		store, err = storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			log.Fatal("object_storage_init_failed", zap.Error(err))
		}
	}

	reportCache, closeCache, err := newCache(ctx, cfg.Cache)
	if err != nil {
		log.Fatal("cache_init_failed", zap.Error(err))
	}
	defer closeCache()

	var perc perceiver.Perceiver = perceiver.NewDisabled()
	if cfg.LLM.Enabled() {
		perc = perceiver.NewOpenAI(cfg.LLM, log)
	}
	log.Info("perceiver_configured",
		zap.Bool("llm_enabled", perc.Enabled()),
		zap.String("model", cfg.LLM.Model),
		zap.String("cache_backend", cfg.Cache.Backend),
		zap.Bool("archive_enabled", store != nil),
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	complianceMetrics, err := metrics.NewCompliance(reg)
	if err != nil {
		log.Fatal("metrics_init_failed", zap.Error(err))
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg, "/health", "/healthz")
	if err != nil {
		log.Fatal("metrics_init_failed", zap.Error(err))
	}

	svc := service.NewComplianceService(service.Dependencies{
		Perceiver: perc,
		Repo:      repo,
		Store:     store,
		Cache:     reportCache,
		Metrics:   complianceMetrics,
		Log:       log,
	}, service.Options{
		ChunkSize:         cfg.Engine.ChunkSize,
		ChunkOverlap:      cfg.Engine.ChunkOverlap,
		ClassifyChunkSize: cfg.Engine.ClassifyChunkSize,
		MaxUploadBytes:    cfg.Engine.MaxUploadBytes,
		Workers:           cfg.Engine.Workers,
		CacheTTL:          cfg.Cache.TTL,
	})

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		BodyLimit:             cfg.BodyLimit,
		DisableStartupMessage: true,
	})

	// CORS runs first so even recovered panics and error responses carry the headers
	app.Use(middleware.CORS())
	app.Use(recover.New())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger(log))
	app.Use(httpMetrics.Handler())

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:         db,
		LLMEnabled: perc.Enabled(),
		Compliance: svc,
		Metrics:    promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	})

	go func() {
		<-ctx.Done()
		log.Info("server_shutdown_started")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.Error("server_shutdown_failed", zap.Error(err))
		}
	}()

	addr := ":" + cfg.Port
	log.Info("server_starting", zap.String("addr", addr), zap.String("app_host", cfg.AppHost))
	if err := app.Listen(addr); err != nil {
		log.Error("server_listen_failed", zap.Error(err))
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		log.Error("tracing_shutdown_failed", zap.Error(err))
	}
	log.Info("server_stopped")
}

// newCache builds the report cache selected by CACHE_BACKEND.
func newCache(ctx context.Context, c config.CacheConfig) (cache.Cache, func(), error) {
	switch c.Backend {
	case "redis":
		r, err := cache.NewRedisFromURL(ctx, c.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return r, func() { _ = r.Close() }, nil
	case "memory":
		m, err := cache.NewMemory(c.Size)
		if err != nil {
			return nil, nil, err
		}
		return m, func() {}, nil
	default:
		return cache.NewNoop(), func() {}, nil
	}
}
