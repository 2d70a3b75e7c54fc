package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/footmanhq/dispatch/internal/pkg/config"
	"github.com/footmanhq/dispatch/internal/pkg/database"
	"github.com/footmanhq/dispatch/internal/pkg/health"
	"github.com/footmanhq/dispatch/internal/pkg/logger"
	"github.com/footmanhq/dispatch/internal/pkg/middleware"
	nsqpkg "github.com/footmanhq/dispatch/internal/pkg/nsq"
	"github.com/footmanhq/dispatch/internal/pkg/retry"
	"github.com/footmanhq/dispatch/internal/pkg/server"
	"github.com/footmanhq/dispatch/services/gateway"
	"github.com/footmanhq/dispatch/services/matching"
	"github.com/footmanhq/dispatch/services/presence"
	"github.com/footmanhq/dispatch/services/request"
	requestGW "github.com/footmanhq/dispatch/services/request/gateway"
	httpHandler "github.com/footmanhq/dispatch/services/request/handler/http"
	"github.com/footmanhq/dispatch/services/request/repository"
	"github.com/footmanhq/dispatch/services/request/usecase"
)

const (
	// Searching requests older than this are swept to cancelled.
	staleSearchingMaxAge = 300 * time.Second
	sweepInterval        = time.Minute
)

func main() {
	appName := "dispatch-service"
	configPath := "config/dispatch.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NSQ producer for push notifications
	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer producer.Stop()

	// Presence registry: in-memory, owned by the websocket gateway
	registry := presence.NewRegistry()

	// Initialize repository
	requestRepo := repository.NewRequestRepository(configs, postgresClient.GetDB())

	// Initialize gateway and matcher
	pushGW := requestGW.NewRequestGW(producer, retry.NewWithDefaults(zapLogger))
	matcher := matching.NewMatcher(registry, requestRepo, configs.Match)

	// Initialize use case
	requestUC, err := usecase.NewRequestUC(configs, requestRepo, pushGW, matcher, registry)
	if err != nil {
		zapLogger.Fatal("Failed to initialize request use case", logger.Err(err))
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.RequestLoggerMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register REST routes
	httpHandler.NewRequestHandler(requestUC).RegisterRoutes(e)

	// WebSocket gateway
	pairs := gateway.NewPairCache(redisClient, requestUC)
	manager := gateway.NewManager(configs, requestUC, registry, pairs)
	e.GET("/ws", manager.HandleWebSocket)

	// Background sweeper for requests stuck in a searching state
	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	go runStaleRequestSweeper(sweepCtx, requestUC)

	// Start server and block until shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}

// runStaleRequestSweeper periodically cancels searching requests no partner
// has picked up. Sweep failures are logged and retried on the next tick.
func runStaleRequestSweeper(ctx context.Context, uc request.RequestUC) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			swept, err := uc.SweepStaleSearching(ctx, int(staleSearchingMaxAge.Seconds()))
			if err != nil {
				logger.Error("Stale request sweep failed", logger.Err(err))
				continue
			}
			if len(swept) > 0 {
				logger.Info("Swept stale searching requests",
					logger.Int("count", len(swept)),
					logger.Strings("request_ids", swept))
			}
		}
	}
}
