// Command generate runs the question-generation pipeline once, for use from a
// scheduler.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"quiz-forge/internal/app"
	"quiz-forge/internal/config"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/logger"

	"go.uber.org/zap"
)

func main() {
	concept := flag.String("concept", "", "force this concept instead of asking the model")
	conceptFR := flag.String("concept-fr", "", "French name of the forced concept")
	theme := flag.String("theme", "", "theme id to generate for instead of the least populated one")
	flag.Parse()

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

	container, err := app.New(ctx, cfg, l, app.Options{Generation: true})
	if err != nil {
		l.Fatal("Failed to initialize application", zap.Error(err))
	}
	defer container.Close()

	result, err := container.Services.Generation.Generate(ctx, domain.GenerateRequest{
		Concept:   *concept,
		ConceptFR: *conceptFR,
		ThemeID:   *theme,
	})
	if err != nil {
		l.Error("Generation failed", zap.String("code", string(domain.CodeOf(err))), zap.Error(err))
		container.Close()
		logger.Sync()
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		l.Error("Failed to write result", zap.Error(err))
	}
}
