package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/yvonlcy/wanderlust-api/internal/api/http"
	"github.com/yvonlcy/wanderlust-api/internal/api/http/handlers"
	"github.com/yvonlcy/wanderlust-api/internal/auth"
	"github.com/yvonlcy/wanderlust-api/internal/config"
	"github.com/yvonlcy/wanderlust-api/internal/events"
	"github.com/yvonlcy/wanderlust-api/internal/observability"
	"github.com/yvonlcy/wanderlust-api/internal/persistence"
	"github.com/yvonlcy/wanderlust-api/internal/repository"
	"github.com/yvonlcy/wanderlust-api/internal/service"
	"github.com/yvonlcy/wanderlust-api/internal/worker"
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

	if err := observability.InitSentry(cfg.Sentry.DSN, cfg.App.Env); err != nil {
		logger.Warn("failed to init sentry", zap.Error(err))
	}
	defer observability.FlushSentry()

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
	accountRepo := repository.NewAccountRepository(pool)
	hotelRepo := repository.NewHotelRepository(pool)
	messageRepo := repository.NewMessageRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, redis, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(cfg.Auth, accountRepo, dispatcher)
	memberService := service.NewMemberService(accountRepo, dispatcher)
	hotelService := service.NewHotelService(hotelRepo, dispatcher)
	messageService := service.NewMessageService(messageRepo, dispatcher)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Members:        handlers.NewMembersHandler(authService, memberService, cfg.Upload),
		Operators:      handlers.NewOperatorsHandler(authService),
		Profile:        handlers.NewProfileHandler(authService),
		Hotels:         handlers.NewHotelsHandler(hotelService),
		Messages:       handlers.NewMessagesHandler(messageService),
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
