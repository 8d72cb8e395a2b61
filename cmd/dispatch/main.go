package main

import (
	"context"
	"log"
	"time"

	"github.com/ciatoslog/dispatch/internal/pkg/circuitbreaker"
	"github.com/ciatoslog/dispatch/internal/pkg/config"
	"github.com/ciatoslog/dispatch/internal/pkg/database"
	"github.com/ciatoslog/dispatch/internal/pkg/health"
	"github.com/ciatoslog/dispatch/internal/pkg/logger"
	"github.com/ciatoslog/dispatch/internal/pkg/middleware"
	natspkg "github.com/ciatoslog/dispatch/internal/pkg/nats"
	nrpkg "github.com/ciatoslog/dispatch/internal/pkg/newrelic"
	"github.com/ciatoslog/dispatch/internal/pkg/requestcontext"
	"github.com/ciatoslog/dispatch/internal/pkg/server"
	"github.com/ciatoslog/dispatch/internal/pkg/store"
	"github.com/ciatoslog/dispatch/services/drivers"
	driverGateway "github.com/ciatoslog/dispatch/services/drivers/gateway"
	driverHandler "github.com/ciatoslog/dispatch/services/drivers/handler"
	driverUsecase "github.com/ciatoslog/dispatch/services/drivers/usecase"
	"github.com/ciatoslog/dispatch/services/loads"
	loadGateway "github.com/ciatoslog/dispatch/services/loads/gateway"
	loadHandler "github.com/ciatoslog/dispatch/services/loads/handler"
	loadRepository "github.com/ciatoslog/dispatch/services/loads/repository"
	loadUsecase "github.com/ciatoslog/dispatch/services/loads/usecase"
	matchingHandler "github.com/ciatoslog/dispatch/services/matching/handler"
	matchingUsecase "github.com/ciatoslog/dispatch/services/matching/usecase"
	referenceHandler "github.com/ciatoslog/dispatch/services/reference/handler"
	referenceUsecase "github.com/ciatoslog/dispatch/services/reference/usecase"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	appName := "dispatch-service"
	configPath := "config/dispatch.env"
	configs := config.InitConfig(configPath)
	if configs.App.Name == "" {
		configs.App.Name = appName
	}

	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)

	seed, err := config.LoadSeed(configs.Dispatch.SeedPath)
	if err != nil {
		logger.Fatal("Failed to load seed data",
			logger.String("path", configs.Dispatch.SeedPath),
			logger.Err(err))
	}
	entityStore := store.NewMemoryStore(seed.Reference, seed.Drivers, seed.Loads)
	logger.Info("Entity store seeded",
		logger.Int("loads", len(seed.Loads)),
		logger.Int("drivers", len(seed.Drivers)))

	// components close in reverse registration order, the logger last
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register("logger", func(context.Context) error { return zapLogger.Close() })
	if nrApp != nil {
		shutdownManager.Register("newrelic", func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}
	healthService := health.NewHealthService()

	// Optional PostgreSQL load event journal
	var loadRepo loads.LoadRepo
	if configs.Database.Host != "" {
		postgresClient, err := database.NewPostgresClient(configs.Database)
		if err != nil {
			logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
		}
		journal := loadRepository.NewLoadJournal(postgresClient.GetDB())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = journal.EnsureSchema(ctx)
		cancel()
		if err != nil {
			logger.Fatal("Failed to prepare load journal", logger.Err(err))
		}
		loadRepo = journal
		healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
		shutdownManager.Register("postgres", func(context.Context) error { return postgresClient.Close() })
	}

	// Optional Redis for idempotency and rate limiting
	var redisClient *database.RedisClient
	if configs.Redis.Host != "" {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
		shutdownManager.Register("redis", func(context.Context) error { return redisClient.Close() })
	}

	// Optional NATS event publishing
	var (
		loadGW   loads.LoadGW
		driverGW drivers.DriverGW
	)
	if configs.NATS.URL != "" {
		natsClient, err := natspkg.NewClient(configs.NATS.URL, configs.App.Name)
		if err != nil {
			logger.Fatal("Failed to connect to NATS", logger.Err(err))
		}
		publisher := natspkg.NewGuardedPublisher(natsClient, circuitbreaker.New(circuitbreaker.Config{
			Name:             "nats-events",
			FailureThreshold: configs.NATS.BreakerThreshold,
			OpenTimeout:      time.Duration(configs.NATS.BreakerTimeout) * time.Second,
		}))
		loadGW = loadGateway.NewLoadGW(publisher)
		driverGW = driverGateway.NewDriverGW(publisher)
		healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
		shutdownManager.Register("nats", func(context.Context) error {
			natsClient.Close()
			return nil
		})
	}

	// Initialize usecases
	loadUC, err := loadUsecase.NewLoadUC(configs, entityStore, loadRepo, loadGW)
	if err != nil {
		logger.Fatal("Failed to initialize load usecase", logger.Err(err))
	}
	driverUC := driverUsecase.NewDriverUC(entityStore, driverGW)
	matchingUC := matchingUsecase.NewMatchingUC(configs, entityStore)
	referenceUC := referenceUsecase.NewReferenceUC(entityStore)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.RequestID())
	e.Use(requestcontext.Middleware())
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, configs.App.Name, configs.App.Version, healthService)

	api := e.Group("/api/v1")
	var commandMW []echo.MiddlewareFunc
	if redisClient != nil {
		if configs.Dispatch.RateLimit > 0 {
			api.Use(middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
				Redis:    redisClient,
				Resource: configs.App.Name,
				Limit:    configs.Dispatch.RateLimit,
				Period:   time.Duration(configs.Dispatch.RateLimitPeriod) * time.Second,
			}))
		}
		commandMW = append(commandMW, middleware.IdempotencyMiddleware(middleware.IdempotencyConfig{
			Redis: redisClient,
			TTL:   time.Duration(configs.Dispatch.IdempotencyTTL) * time.Second,
		}))
	}

	// Register service routes
	loadHandler.NewHandler(loadUC).RegisterRoutes(api, commandMW...)
	matchingHandler.NewHandler(matchingUC).RegisterRoutes(api)
	driverHandler.NewHandler(driverUC).RegisterRoutes(api, commandMW...)
	referenceHandler.NewHandler(referenceUC).RegisterRoutes(api, commandMW...)

	logger.Info("Dispatch service configured",
		logger.String("transition_policy", configs.Dispatch.TransitionPolicy),
		logger.Bool("journal", loadRepo != nil),
		logger.Bool("events", loadGW != nil),
		logger.Bool("redis", redisClient != nil))

	srv := server.NewGracefulServer(e, zapLogger, configs.Server, shutdownManager)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server stopped with error", logger.Err(err))
	}
}
