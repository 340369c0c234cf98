package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLogger := logrus.New()
		bootLogger.SetOutput(os.Stdout)
		var missing *config.MissingError
		if errors.As(err, &missing) {
			for _, name := range missing.Names {
				// Log does not exit, unlike Fatal.
				bootLogger.WithField("variable", name).Log(logrus.FatalLevel, "Required environment variable is not set")
			}
		}
		bootLogger.WithError(err).Fatal("Could not load application configuration, polling not started")
	}

	log := logger.New(cfg)
	mainLogger := logger.Component(log, "main")
	mainLogger.WithFields(logrus.Fields{
		"environment":     cfg.Environment,
		"endpoint":        cfg.Endpoint,
		"retry_interval":  cfg.RetryInterval.String(),
		"lookback_window": cfg.LookbackWindow.String(),
	}).Info("Configuration loaded")

	bot, err := telegram.NewBot(cfg.TelegramToken, cfg.HTTPTimeout)
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create Telegram bot")
	}
	notifier := app.NewNotifier(telegram.NewTelebotAdapter(bot), cfg.TelegramChatID, logger.Component(log, "notifier"))

	apiClient := practicum.NewClient(cfg.Endpoint, cfg.PracticumToken, cfg.HTTPTimeout)
	waiter := scheduler.NewIntervalWaiter(cfg.RetryInterval, logger.Component(log, "scheduler"))
	poller := app.NewPoller(cfg, apiClient, notifier, waiter, logger.Component(log, "poller"))

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mainLogger.Info("Homework status bot started")
	poller.Run(ctx)
	mainLogger.Info("Application shut down gracefully.")
}
