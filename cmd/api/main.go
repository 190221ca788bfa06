package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/invyfy/invyfy-api/internal/api/http"
	"github.com/invyfy/invyfy-api/internal/api/http/handlers"
	"github.com/invyfy/invyfy-api/internal/auth"
	"github.com/invyfy/invyfy-api/internal/config"
	"github.com/invyfy/invyfy-api/internal/events"
	"github.com/invyfy/invyfy-api/internal/observability"
	"github.com/invyfy/invyfy-api/internal/persistence"
	"github.com/invyfy/invyfy-api/internal/repository"
	"github.com/invyfy/invyfy-api/internal/service"
	"github.com/invyfy/invyfy-api/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	projectRepo := repository.NewProjectRepository(pool)
	invoiceRepo := repository.NewInvoiceRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	statsCache := service.NewStatsCache(redis.ClientHandle(), cfg.Redis.StatsTTL(), logger)
	statsCache.RegisterInvalidation(dispatcher)

	authService := service.NewAuthService(cfg.Auth, userRepo)
	projectService := service.NewProjectService(projectRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, dispatcher, statsCache)
	authMiddleware := auth.NewMiddleware(authService.TokenManager(), userRepo)

	if cfg.Worker.OverdueEnabled {
		overdue := worker.NewOverdueWorker(invoiceRepo, dispatcher, logger, cfg.Worker.OverdueInterval())
		overdue.Start(ctx)
	}

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, cfg.App, logger, metrics)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Projects:       handlers.NewProjectsHandler(projectService),
		Invoices:       handlers.NewInvoicesHandler(invoiceService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
