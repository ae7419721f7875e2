// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/ammerola/bakery-be/internal/adapters/db"
	redis_a "github.com/ammerola/bakery-be/internal/adapters/redis_adapter"
	"github.com/ammerola/bakery-be/internal/core/ports"
	"github.com/ammerola/bakery-be/internal/core/services"
	"github.com/ammerola/bakery-be/internal/handlers"
	"github.com/ammerola/bakery-be/internal/handlers/middleware"
	"github.com/ammerola/bakery-be/internal/pkg/config"
	"github.com/ammerola/bakery-be/internal/pkg/logger"
	"github.com/ammerola/bakery-be/internal/workers"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

func main() {
	slogger := logger.SetupLogger("debug", "json").Logger

	slogger.Info("starting bakery listing API",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("go_version", GoVersion),
	)

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat).Logger
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
		slog.String("db_driver", cfg.Database.Driver),
	)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	sm, err := config.NewSecretsManager(ctx, cfg.Secrets, slogger)
	if err != nil {
		slogger.Error("failed to create secrets manager", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := cfg.ResolveSecrets(ctx, sm); err != nil {
		slogger.Error("failed to resolve secrets", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.Database.AutoMigrate {
		if err := runMigrations(ctx, cfg, slogger); err != nil {
			slogger.Error("failed to run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	server := setupHTTPServer(ctx, cfg, deps, slogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()))
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received",
			slog.String("signal", sig.String()),
		)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	database       *db.Database
	redisClient    *redis.Client
	asynqClient    *asynq.Client
	asynqInspector *asynq.Inspector
	handlers       handlers.Handlers
}

func (d *dependencies) cleanup() {
	if d.asynqInspector != nil {
		d.asynqInspector.Close()
	}
	if d.asynqClient != nil {
		d.asynqClient.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
	if d.database != nil {
		d.database.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	// The one process-wide database handle
	database, err := db.NewDatabase(ctx, db.ConfigFrom(cfg.Database), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	store := db.NewItemStore(database, logger)

	admin, err := services.NewAdminController(ctx, store, logger)
	if err != nil {
		deps.cleanup()
		return nil, err
	}
	buyer, err := services.NewBuyerController(ctx, store, logger)
	if err != nil {
		deps.cleanup()
		return nil, err
	}

	var cache ports.MenuCache
	if cfg.Redis.Enabled {
		logger.Info("connecting to Redis", slog.String("addr", cfg.GetRedisAddress()))

		client, err := redis_a.NewClient(ctx, redisClientConfig(cfg))
		if err != nil {
			deps.cleanup()
			return nil, err
		}
		deps.redisClient = client
		cache = redis_a.NewMenuCache(client, cfg.Redis.MenuTTL, logger)
	}

	var queue ports.ExportQueue
	var inspector handlers.QueueInspector
	if cfg.Export.Enabled {
		logger.Info("initializing Asynq client", slog.String("queue", cfg.Export.Queue))

		redisOpt := asynqRedisOpt(cfg)
		deps.asynqClient = asynq.NewClient(redisOpt)
		deps.asynqInspector = asynq.NewInspector(redisOpt)
		inspector = deps.asynqInspector

		queue = workers.NewExportQueue(deps.asynqClient, workers.QueueConfig{
			Queue:     cfg.Export.Queue,
			MaxRetry:  cfg.Export.MaxRetry,
			Timeout:   cfg.Export.Timeout,
			Retention: 24 * time.Hour,
		}, logger)
	}

	deps.handlers = handlers.Handlers{
		Items:  handlers.NewItemsHandler(admin, store, cache, logger),
		Menu:   handlers.NewMenuHandler(buyer, cache, logger),
		Export: handlers.NewExportHandler(store, queue, logger),
		Import: handlers.NewImportHandler(admin, cache, handlers.DefaultImportMaxSize, logger),
		Health: handlers.NewHealthHandler(database, store, deps.redisClient, inspector, cfg, logger),
	}

	logger.Info("all dependencies initialized successfully",
		slog.Bool("menu_cache", cache != nil),
		slog.Bool("background_export", queue != nil))
	return deps, nil
}

func setupHTTPServer(ctx context.Context, cfg *config.Config, deps *dependencies, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	handlers.RegisterRoutes(mux, deps.handlers)

	chain := []func(http.Handler) http.Handler{
		middleware.Recovery(logger),
		middleware.RequestID(cfg.Security.RequestIDHeader),
		middleware.Logger(logger),
	}
	if cfg.Security.SecureHeaders {
		chain = append(chain, middleware.SecureHeaders)
	}
	if len(cfg.Security.AllowedOrigins) > 0 {
		chain = append(chain, middleware.CORS(cfg.Security.AllowedOrigins))
	}
	if cfg.Security.RateLimitRequests > 0 {
		chain = append(chain, middleware.RateLimit(ctx, cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration))
	}
	if cfg.Server.RequestTimeout > 0 {
		chain = append(chain, middleware.Timeout(cfg.Server.RequestTimeout))
	}
	chain = append(chain, middleware.ContentTypeJSON)

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        middleware.Chain(mux, chain...),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}

func redisClientConfig(cfg *config.Config) redis_a.ClientConfig {
	return redis_a.ClientConfig{
		Addr:         cfg.GetRedisAddress(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	}
}

func asynqRedisOpt(cfg *config.Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.GetRedisAddress(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
}

func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("running database migrations", slog.String("driver", cfg.Database.Driver))

	migrationConfig := db.MigrationConfigFor(db.ConfigFrom(cfg.Database))
	return db.RunMigrationsWithRetry(ctx, migrationConfig, logger, 3)
}
