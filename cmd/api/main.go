package main

import (
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/field-tracker/internal/api/http"
	"github.com/spec-kit/field-tracker/internal/api/http/handlers"
	"github.com/spec-kit/field-tracker/internal/auth"
	"github.com/spec-kit/field-tracker/internal/config"
	"github.com/spec-kit/field-tracker/internal/events"
	"github.com/spec-kit/field-tracker/internal/observability"
	"github.com/spec-kit/field-tracker/internal/service"
	"github.com/spec-kit/field-tracker/internal/store"
	"github.com/spec-kit/field-tracker/internal/worker"
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

	metrics := observability.NewMetrics()

	memStore := store.NewMemStore()
	if cfg.Seed.Enabled {
		seed := cfg.Seed.RandomSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		memStore.Seed(rand.New(rand.NewSource(seed)))
		logger.Info("seeded sample employees",
			zap.Int("count", len(memStore.AllEmployees())),
			zap.Int64("seed", seed))
	}

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(dispatcher, logger)

	employeeService := service.NewEmployeeService(memStore, dispatcher)
	authService := service.NewAuthService(*cfg, memStore)
	authMiddleware := auth.NewMiddleware(authService.TokenManager(), memStore)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, memStore, metrics),
		Employees:      handlers.NewEmployeesHandler(employeeService),
		Locations:      handlers.NewLocationsHandler(),
		Users:          handlers.NewUsersHandler(authService),
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
