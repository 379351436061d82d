package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/seu-repo/concierge-bot/internal/adapter/dialogflow"
	"github.com/seu-repo/concierge-bot/internal/adapter/http/fiber/handlers"
	"github.com/seu-repo/concierge-bot/internal/adapter/http/fiber/middleware"
	"github.com/seu-repo/concierge-bot/internal/adapter/queue"
	"github.com/seu-repo/concierge-bot/internal/dialog"
	"github.com/seu-repo/concierge-bot/internal/observability/telemetry"
	"github.com/seu-repo/concierge-bot/internal/service/chat"
	"github.com/seu-repo/concierge-bot/internal/service/fulfillment"
	"github.com/seu-repo/concierge-bot/internal/service/health"
	"github.com/seu-repo/concierge-bot/pkg/config"
	applogger "github.com/seu-repo/concierge-bot/pkg/logger"
)

const serviceName = "concierge-bot"

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	// 2. Initialize Logger
	logger, err := applogger.New(cfg.Logging)
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer logger.Sync()

	logger.Info("Starting concierge bot",
		zap.String("service", serviceName),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	// 3. Tracing
	if cfg.OpenTelemetry.Enabled {
		tp, err := telemetry.InitTracer(serviceName, cfg.App.Version, cfg.OpenTelemetry.JaegerEndpoint)
		if err != nil {
			logger.Fatal("Failed to initialize tracer", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Error("Error shutting down tracer provider", zap.Error(err))
			}
		}()
	}

	// 4. Intent router
	loc, err := time.LoadLocation(cfg.Region.Timezone)
	if err != nil {
		logger.Fatal("Invalid timezone", zap.String("timezone", cfg.Region.Timezone), zap.Error(err))
	}
	router := dialog.DefaultRouter(dialog.Options{
		Location: loc,
		Now:      time.Now,
		Price:    dialog.PricePerChar(cfg.Pricing.PerChar),
	})

	// 5. Message Queue
	messageQueue, err := queue.New(cfg.Queue, logger)
	if err != nil {
		logger.Fatal("Failed to connect to message queue", zap.String("driver", cfg.Queue.Driver), zap.Error(err))
	}
	defer messageQueue.Close()

	// 6. Services
	fulfillmentService := fulfillment.NewService(router, messageQueue, fulfillment.Config{
		Subject:        cfg.Queue.Subject,
		PublishTimeout: cfg.Queue.PublishTimeout,
	}, logger)

	healthService := health.NewService(health.Config{
		Version: cfg.App.Version,
		Intents: fulfillmentService.Intents(),
	}, logger)
	healthService.RegisterPing("queue", true, func(ctx context.Context) error {
		return messageQueue.Ping()
	})

	var chatService *chat.Service
	if cfg.Dialogflow.ProjectID != "" {
		dfClient, err := dialogflow.NewClient(context.Background(), cfg.Dialogflow, logger)
		if err != nil {
			logger.Fatal("Failed to create Dialogflow client", zap.Error(err))
		}
		defer dfClient.Close()

		chatService = chat.NewService(dfClient, cfg.Dialogflow.Timeout, cfg.CircuitBreaker, logger)
		healthService.RegisterPing("dialog", false, chatService.Ping)
	} else {
		logger.Warn("dialogflow.project_id not set, /chat is disabled")
	}

	// 7. Fiber HTTP Server
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		ServerHeader:          serviceName,
		DisableStartupMessage: true,
		ReadTimeout:           cfg.HTTP.ReadTimeout,
		WriteTimeout:          cfg.HTTP.WriteTimeout,
		IdleTimeout:           cfg.HTTP.IdleTimeout,
		BodyLimit:             cfg.HTTP.BodyLimit,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(middleware.NewCORS(cfg.CORS))

	health.NewFiberHandler(healthService).RegisterRoutes(app)

	app.Get("/metrics", telemetry.MetricsHandler())

	fulfillmentHandler := handlers.NewFulfillmentHandler(fulfillmentService, logger)
	app.Post("/fulfillment", fulfillmentHandler.Handle)

	if chatService != nil {
		chatHandler := handlers.NewChatHandler(chatService, logger)
		app.Post("/chat", chatHandler.Post)
	}

	// 8. Start HTTP Server
	go func() {
		logger.Info("Starting HTTP Server",
			zap.Int("port", cfg.HTTP.Port),
			zap.Strings("intents", fulfillmentService.Intents()),
		)
		if err := app.Listen(fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
			logger.Fatal("HTTP Server failed", zap.Error(err))
		}
	}()

	// 9. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}
