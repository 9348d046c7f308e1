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
	chatrepo "github.com/piresc/roadbuddy/services/chat/repository"
	chatuc "github.com/piresc/roadbuddy/services/chat/usecase"
	"github.com/piresc/roadbuddy/services/notification/dispatcher"
	notifgw "github.com/piresc/roadbuddy/services/notification/gateway"
	"github.com/piresc/roadbuddy/services/payment"
	paymentgw "github.com/piresc/roadbuddy/services/payment/gateway"
	paymentrepo "github.com/piresc/roadbuddy/services/payment/repository"
	paymentuc "github.com/piresc/roadbuddy/services/payment/usecase"
	"github.com/piresc/roadbuddy/services/rides"
	"github.com/piresc/roadbuddy/services/rides/handler"
	"github.com/piresc/roadbuddy/services/rides/registry"
	riderepo "github.com/piresc/roadbuddy/services/rides/repository"
	"github.com/piresc/roadbuddy/services/rides/usecase"
	"github.com/piresc/roadbuddy/services/vehicle"
	vehiclehandler "github.com/piresc/roadbuddy/services/vehicle/handler"
	vehiclerepo "github.com/piresc/roadbuddy/services/vehicle/repository"
	vehicleuc "github.com/piresc/roadbuddy/services/vehicle/usecase"
)

const memoryDriver = "memory"

func main() {
	appName := "rides-service"
	configPath := "config/rides.env"
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
		logger.String("store", configs.Database.Driver),
		logger.String("payment_provider", configs.Payment.Provider),
	)

	e := echo.New()
	e.HideBanner = true

	healthService := health.NewService(zapLogger)
	srv := server.NewGracefulServer(e, zapLogger, configs.Server)

	// Ride, payment and car stores
	var (
		rideRepo    rides.RideRepo
		paymentRepo payment.PaymentRepo
		vehicleRepo vehicle.VehicleRepo
	)
	if configs.Database.Driver == memoryDriver {
		logger.Warn("Using in-memory stores; state is lost on restart")
		rideRepo = riderepo.NewMemoryRideRepository()
		paymentRepo = paymentrepo.NewMemoryPaymentRepository()
		vehicleRepo = vehiclerepo.NewMemoryVehicleRepository()
	} else {
		postgresClient, err := database.NewPostgresClient(configs.Database)
		if err != nil {
			zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
		}
		srv.OnShutdown(func(context.Context) error { return postgresClient.Close() })
		healthService.AddChecker("postgres", health.PostgresChecker(postgresClient))

		rideRepo = riderepo.NewRideRepository(configs, postgresClient.GetDB())
		paymentRepo = paymentrepo.NewPaymentRepository(postgresClient.GetDB())
		vehicleRepo = vehiclerepo.NewVehicleRepository(postgresClient.GetDB())
	}

	vehicleUC, err := vehicleuc.NewVehicleUC(vehicleRepo)
	if err != nil {
		zapLogger.Fatal("Failed to initialize vehicle use case", logger.Err(err))
	}

	// Chat rooms live in Redis; the service runs without chat when it is down
	var chatGW rides.ChatGW
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, ride chat disabled", logger.Err(err))
	} else {
		srv.OnShutdown(func(context.Context) error { return redisClient.Close() })
		healthService.AddChecker("redis", health.RedisChecker(redisClient))

		chatUC, err := chatuc.NewChatUC(chatrepo.NewChatRepository(redisClient))
		if err != nil {
			zapLogger.Fatal("Failed to initialize chat use case", logger.Err(err))
		}
		chatGW = chatUC
	}

	// Initialize JetStream-enabled NATS client
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS with JetStream", logger.Err(err))
	}
	healthService.AddChecker("nats", health.NATSChecker(natsClient))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := nats.EnsureNotificationStream(ctx, natsClient, configs.Notification.StreamName); err != nil {
		zapLogger.Fatal("Failed to ensure notification stream", logger.Err(err))
	}

	eventGW, err := notifgw.NewJetStreamGW(natsClient)
	if err != nil {
		zapLogger.Fatal("Failed to initialize notification gateway", logger.Err(err))
	}
	notifier := dispatcher.NewDispatcher(configs.Notification, eventGW)
	notifier.Start()

	// Settlement gateway
	var settlementGW payment.SettlementGW
	switch configs.Payment.Provider {
	case "processor":
		settlementGW = paymentgw.NewProcessorGW(configs.Payment, zapLogger)
	default:
		logger.Warn("Using sandbox settlement gateway; no real money moves")
		settlementGW = paymentgw.NewSandboxGW()
	}

	ledger, err := paymentuc.NewLedgerUC(configs, paymentRepo, settlementGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize payment ledger", logger.Err(err))
	}

	rideRegistry, err := registry.NewRideRegistry(configs, rideRepo)
	if err != nil {
		zapLogger.Fatal("Failed to initialize ride registry", logger.Err(err))
	}

	rideUC, err := usecase.NewRideUC(configs, rideRegistry, ledger, notifier, chatGW, usecase.WithVehicles(vehicleUC))
	if err != nil {
		zapLogger.Fatal("Failed to initialize ride use case", logger.Err(err))
	}

	sweeper := usecase.NewSweeper(rideUC, time.Duration(configs.Rides.SweepIntervalSec)*time.Second)
	go sweeper.Run(ctx)

	// Cleanups run last-registered first: stop sweeping, flush queued
	// notifications, then close NATS
	srv.OnShutdown(func(context.Context) error {
		natsClient.Close()
		return nil
	})
	srv.OnShutdown(notifier.Stop)
	srv.OnShutdown(func(context.Context) error {
		cancel()
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
	handler.NewHandler(rideUC, configs).RegisterRoutes(e)
	vehiclehandler.NewHandler(vehicleUC, configs).RegisterRoutes(e)

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
