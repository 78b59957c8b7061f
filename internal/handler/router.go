package handler

import (
	"quiz-forge/internal/config"
	"quiz-forge/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const (
	corsAllowHeaders = "authorization, x-client-info, apikey, content-type"
	corsAllowMethods = "POST, OPTIONS"
)

// NewApp builds the fiber app with middleware and every API route.
func NewApp(cfg config.ServerConfig, generation *GenerationHandler, notifications *NotificationHandler, health *HealthHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: corsAllowMethods,
		AllowHeaders: corsAllowHeaders,
	}))

	app.Get("/health", health.Health)

	api := app.Group("/api")
	api.Post("/generate-questions", generation.GenerateQuestions)
	api.Get("/generation/last", generation.LastRun)
	api.Post("/notifications/send", notifications.SendNotification)
	api.Post("/notifications/streak-reminders", notifications.SendStreakReminders)

	return app
}
