package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/kezig/logistics-service/internal/api/http"
	"github.com/kezig/logistics-service/internal/api/http/handlers"
	"github.com/kezig/logistics-service/internal/auth"
	"github.com/kezig/logistics-service/internal/config"
	"github.com/kezig/logistics-service/internal/events"
	"github.com/kezig/logistics-service/internal/observability"
	"github.com/kezig/logistics-service/internal/persistence"
	"github.com/kezig/logistics-service/internal/repository"
	"github.com/kezig/logistics-service/internal/service"
	"github.com/kezig/logistics-service/internal/worker"
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
	waybillRepo := repository.NewWaybillRepository(pool)
	trackingRepo := repository.NewTrackingRepository(pool)
	operationLogRepo := repository.NewOperationLogRepository(pool)

	codec := auth.NewTokenCodec(cfg.Auth.TokenSecret, cfg.Auth.AccessTokenTTL())
	sessions := auth.NewSessionRegistry()
	limiter := service.NewRedisLoginLimiter(redis.Client,
		cfg.Auth.LoginWindow(), cfg.Auth.LoginMaxAttempts)

	authService := service.NewAuthService(service.AuthDependencies{
		UserRepo: userRepo,
		Codec:    codec,
		Sessions: sessions,
		Limiter:  limiter,
	}, cfg.Auth.BcryptCost, logger)

	if err := authService.EnsureRootCredential(ctx); err != nil {
		logger.Fatal("failed to bootstrap root credential", zap.Error(err))
	}

	userService := service.NewUserService(userRepo, cfg.Auth.BcryptCost)
	waybillService := service.NewWaybillService(waybillRepo)
	trackingService := service.NewTrackingService(trackingRepo)
	auditService := service.NewAuditService(operationLogRepo, logger)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(auditService, dispatcher)

	authMiddleware := auth.NewMiddleware(authService)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	app.Use(httptransport.AuditInterceptor(authService, dispatcher))

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Sessions:       handlers.NewSessionHandler(authService),
		Users:          handlers.NewUsersHandler(userService),
		Waybills:       handlers.NewWaybillsHandler(waybillService),
		Trackings:      handlers.NewTrackingsHandler(trackingService),
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
