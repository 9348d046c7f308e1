package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/piresc/roadbuddy/internal/pkg/config"
	"github.com/piresc/roadbuddy/internal/pkg/database"
	"github.com/piresc/roadbuddy/internal/pkg/health"
	"github.com/piresc/roadbuddy/internal/pkg/logger"
	"github.com/piresc/roadbuddy/internal/pkg/middleware"
	"github.com/piresc/roadbuddy/internal/pkg/nats"
	nrpkg "github.com/piresc/roadbuddy/internal/pkg/newrelic"
	"github.com/piresc/roadbuddy/internal/pkg/requestcontext"
	"github.com/piresc/roadbuddy/internal/pkg/server"
	"github.com/piresc/roadbuddy/services/notification"
	"github.com/piresc/roadbuddy/services/notification/handler"
	"github.com/piresc/roadbuddy/services/notification/repository"
	"github.com/piresc/roadbuddy/services/notification/usecase"
)

func main() {
	appName := "notifications-service"
	configPath := "config/notifications.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs, appName)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	e := echo.New()
	e.HideBanner = true

	healthService := health.NewService(zapLogger)
	srv := server.NewGracefulServer(e, zapLogger, configs.Server)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	srv.OnShutdown(func(context.Context) error { return postgresClient.Close() })
	healthService.AddChecker("postgres", health.PostgresChecker(postgresClient))

	// Unread counters are a cache; Postgres stays authoritative without Redis
	var counter notification.UnreadCounter
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, unread counts read from Postgres", logger.Err(err))
	} else {
		srv.OnShutdown(func(context.Context) error { return redisClient.Close() })
		healthService.AddChecker("redis", health.RedisChecker(redisClient))
		counter = repository.NewUnreadCounter(redisClient)
	}

	// Initialize JetStream-enabled NATS client
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS with JetStream", logger.Err(err))
	}
	srv.OnShutdown(func(context.Context) error {
		natsClient.Close()
		return nil
	})
	healthService.AddChecker("nats", health.NATSChecker(natsClient))

	notificationUC, err := usecase.NewNotificationUC(repository.NewNotificationRepository(postgresClient.GetDB()), counter)
	if err != nil {
		zapLogger.Fatal("Failed to initialize notification use case", logger.Err(err))
	}

	notificationHandler := handler.NewHandler(notificationUC, natsClient, configs)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := notificationHandler.InitNATSConsumers(ctx); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}
	srv.OnShutdown(func(context.Context) error {
		notificationHandler.StopNATSConsumers()
		return nil
	})

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(requestcontext.Middleware(appName))
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)
	notificationHandler.RegisterRoutes(e)

	if err := srv.Run(ctx); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	if nrApp != nil {
		zapLogger.Info("Shutting down New Relic...")
		nrApp.Shutdown(10 * time.Second)
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
