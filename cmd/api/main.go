// @title Quiz Forge API
// @version 1.0
// @description Question generation and player notification API.
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quiz-forge/internal/app"
	"quiz-forge/internal/config"
	"quiz-forge/internal/handler"
	"quiz-forge/internal/logger"

	_ "quiz-forge/cmd/api/docs"

	"github.com/gofiber/swagger"
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
	appLogger := logger.Get()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := app.New(ctx, cfg, appLogger, app.Options{Generation: true, Notifications: true})
	if err != nil {
		appLogger.Fatal("Failed to initialize application", zap.Error(err))
	}
	defer container.Close()

	server := handler.NewApp(
		cfg.Server,
		handler.NewGenerationHandler(container.Services.Generation),
		handler.NewNotificationHandler(container.Services.Notifications, container.Services.Reminders),
		handler.NewHealthHandler(container.DB, container.Cache),
	)
	server.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := server.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Error("Server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
