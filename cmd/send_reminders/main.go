// Command send_reminders runs one streak reminder sweep. Schedule it hourly.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"quiz-forge/internal/app"
	"quiz-forge/internal/config"
	"quiz-forge/internal/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := app.New(ctx, cfg, l, app.Options{Notifications: true})
	if err != nil {
		l.Fatal("Failed to initialize application", zap.Error(err))
	}
	defer container.Close()

	report, err := container.Services.Reminders.SendReminders(ctx)
	if err != nil {
		l.Error("Reminder sweep failed", zap.Error(err))
		container.Close()
		logger.Sync()
		os.Exit(1)
	}
	l.Info("Reminder sweep finished", zap.Int("sent", report.Sent), zap.String("message", report.Message))
}
