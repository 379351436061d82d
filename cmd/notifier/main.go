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
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/seu-repo/concierge-bot/internal/adapter/cache"
	"github.com/seu-repo/concierge-bot/internal/adapter/http/fiber/middleware"
	"github.com/seu-repo/concierge-bot/internal/adapter/queue"
	"github.com/seu-repo/concierge-bot/internal/adapter/sms"
	"github.com/seu-repo/concierge-bot/internal/observability/telemetry"
	"github.com/seu-repo/concierge-bot/internal/ports"
	"github.com/seu-repo/concierge-bot/internal/service/health"
	"github.com/seu-repo/concierge-bot/internal/service/notify"
	"github.com/seu-repo/concierge-bot/pkg/config"
	applogger "github.com/seu-repo/concierge-bot/pkg/logger"
)

const serviceName = "concierge-notifier"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	logger, err := applogger.New(cfg.Logging)
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer logger.Sync()

	sender, err := sms.NewTwilioSender(cfg.Twilio, logger)
	if err != nil {
		logger.Fatal("Failed to create SMS sender", zap.Error(err))
	}

	var dedupe ports.Cache
	if cfg.Redis.URL != "" {
		dedupe, err = cache.NewRedisCache(cfg.Redis, logger)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
	} else {
		logger.Warn("redis.url not set, using in-process dedupe cache")
		dedupe = cache.NewLocalCache(time.Minute, logger)
	}
	defer dedupe.Close()

	messageQueue, err := queue.New(cfg.Queue, logger)
	if err != nil {
		logger.Fatal("Failed to connect to message queue", zap.String("driver", cfg.Queue.Driver), zap.Error(err))
	}
	defer messageQueue.Close()

	notifier := notify.NewService(sender, dedupe, notify.Config{
		DedupeTTL:   cfg.Notifier.DedupeTTL,
		SendTimeout: cfg.Notifier.SendTimeout,
	}, logger)
	if err := notifier.Start(messageQueue, cfg.Queue.Subject); err != nil {
		logger.Fatal("Failed to start notifier", zap.Error(err))
	}

	// Probes and metrics
	healthService := health.NewService(health.Config{Version: cfg.App.Version}, logger)
	healthService.RegisterPing("queue", true, func(ctx context.Context) error {
		return messageQueue.Ping()
	})
	healthService.RegisterPing("cache", false, func(ctx context.Context) error {
		return dedupe.Ping()
	})

	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})
	app.Use(recover.New())
	health.NewFiberHandler(healthService).RegisterRoutes(app)
	app.Get("/metrics", telemetry.MetricsHandler())

	go func() {
		logger.Info("Starting notifier HTTP listener", zap.Int("port", cfg.Notifier.HTTPPort))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.Notifier.HTTPPort)); err != nil {
			logger.Fatal("Notifier HTTP listener failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Notifier shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("Notifier HTTP listener forced to shutdown", zap.Error(err))
	}
}
