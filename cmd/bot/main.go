package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inncheck/internal/config"
	"inncheck/internal/domain"
	"inncheck/internal/handler"
	"inncheck/internal/health"
	"inncheck/internal/middleware"
	"inncheck/internal/modestore"
	"inncheck/internal/provider"
	"inncheck/internal/service"
	"inncheck/internal/telegram"
	"inncheck/internal/tin"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting inncheck bot")

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized", zap.String("bot_name", cfg.BotName))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire the update pipeline
	reportProvider := provider.NewClient(cfg.ReportProviderURL, logger)
	modes := modestore.New()
	tins := tin.NewParser(cfg.BotName)
	router := service.NewRouter(modes, reportProvider, tins, logger)

	transport := telegram.NewTelebotAdapter(bot)
	interpreter := handler.NewInterpreter(transport, logger)

	notifications := domain.Chat{ID: cfg.NotificationsChatID, TopicID: cfg.NotificationsTopic}

	h := handler.NewHandler(ctx, bot, router, interpreter, transport, notifications, logger)
	bot.Use(middleware.Observe(logger))
	h.RegisterHandlers()

	if err := h.SetupCommands(); err != nil {
		logger.Fatal("Failed to register bot commands", zap.Error(err))
	}

	logger.Info("Handlers registered")

	// Start operational HTTP server in background
	healthServer := health.NewServer(func() error {
		_, err := bot.Raw("getMe", nil)
		return err
	}, logger)

	go func() {
		if err := healthServer.Start(cfg.HTTPPort); err != nil {
			logger.Error("Health server error", zap.Error(err))
		}
	}()

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()

	if err := healthServer.Shutdown(); err != nil {
		logger.Error("Health server shutdown error", zap.Error(err))
	}

	logger.Info("Bot stopped gracefully")
}

func initLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()

	switch level {
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	return cfg.Build()
}
