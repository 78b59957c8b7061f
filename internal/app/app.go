// Package app wires configuration, storage, adapters and services into one
// container shared by the binaries.
package app

import (
	"context"
	"fmt"
	"net/http"

	"quiz-forge/internal/adapter"
	"quiz-forge/internal/adapter/llm"
	"quiz-forge/internal/adapter/push"
	"quiz-forge/internal/adapter/quizgen"
	"quiz-forge/internal/cache"
	"quiz-forge/internal/config"
	"quiz-forge/internal/database"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/repository"
	"quiz-forge/internal/service"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Repos struct {
	Themes     domain.ThemeRepository
	Concepts   domain.ConceptRepository
	Questions  domain.QuestionRepository
	UserStats  domain.UserStatsRepository
	PushTokens domain.PushTokenRepository
}

type Services struct {
	Generation    domain.GenerationService
	Notifications *service.NotificationService
	Reminders     *service.StreakReminderService
}

type App struct {
	Cfg      *config.Config
	Log      *zap.Logger
	DB       *sqlx.DB
	Cache    domain.Cache
	Repos    Repos
	Services Services

	redis *redis.Client
}

// Options selects which optional adapters New builds.
type Options struct {
	Generation    bool
	Notifications bool
}

// New connects to the database and, when configured, Redis, then wires the
// services requested by opts. Redis is optional: without it caching is off.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger, opts Options) (*App, error) {
	db, err := database.NewSQLXOracleDB(ctx, database.DSN(cfg.DB))
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	a := &App{Cfg: cfg, Log: log, DB: db}

	if cfg.Redis.Address != "" {
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn("Redis unavailable, caching disabled", zap.Error(err))
		} else {
			a.redis = client
			a.Cache = adapter.NewRedisCacheAdapter(client)
		}
	}

	a.Repos = Repos{
		Themes:     repository.NewThemeDatabaseAdapter(db),
		Concepts:   repository.NewConceptDatabaseAdapter(db),
		Questions:  repository.NewQuestionDatabaseAdapter(db),
		UserStats:  repository.NewUserStatsDatabaseAdapter(db),
		PushTokens: repository.NewPushTokenDatabaseAdapter(db),
	}

	if opts.Generation {
		if err := a.wireGeneration(); err != nil {
			a.Close()
			return nil, err
		}
	}
	if opts.Notifications {
		a.wireNotifications(ctx)
	}
	return a, nil
}

func (a *App) wireGeneration() error {
	textGen, err := llm.NewTextGenerator(a.Cfg.LLM)
	if err != nil {
		return fmt.Errorf("init llm: %w", err)
	}
	generator, err := quizgen.NewQuizGenerator(textGen, quizgen.Options{
		MaxConceptsToAvoid: a.Cfg.Generation.MaxConceptsToAvoid,
		MaxTokensConcept:   a.Cfg.LLM.MaxTokensConcept,
		MaxTokensQuestions: a.Cfg.LLM.MaxTokensQuestions,
	}, a.Log)
	if err != nil {
		return fmt.Errorf("init quiz generator: %w", err)
	}

	selector := service.NewConceptSelector(
		a.Repos.Themes, a.Repos.Concepts, a.Repos.Questions, generator,
		a.Cache, a.Cfg.CacheTTLs.ThemeName, a.Log)
	coordinator := service.NewPersistenceCoordinator(a.Repos.Concepts, a.Repos.Questions, a.Log)
	a.Services.Generation = service.NewGenerationService(selector, generator, coordinator, a.Cache, a.Cfg.Generation, a.Log)
	a.Log.Info("Generation pipeline wired", zap.String("llm_provider", a.Cfg.LLM.Provider), zap.String("model", a.Cfg.LLM.Model))
	return nil
}

// wireNotifications leaves the gateway nil when no service account is
// configured; sends then fail with PUSH_NOT_CONFIGURED.
func (a *App) wireNotifications(ctx context.Context) {
	var gateway domain.PushGateway
	raw, err := a.Cfg.ServiceAccount()
	if err != nil {
		a.Log.Warn("Push gateway disabled", zap.Error(err))
	} else {
		fcm, err := push.NewFCMGateway(ctx, raw, http.DefaultClient, a.Log)
		if err != nil {
			a.Log.Warn("Push gateway disabled", zap.Error(err))
		} else {
			gateway = fcm
		}
	}

	a.Services.Notifications = service.NewNotificationService(a.Repos.PushTokens, gateway, a.Log)
	a.Services.Reminders = service.NewStreakReminderService(
		a.Repos.UserStats, a.Repos.PushTokens, gateway, a.Cache, a.Cfg.Notification, a.Log)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.Log.Warn("Failed to close redis", zap.Error(err))
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Log.Warn("Failed to close database", zap.Error(err))
		}
	}
}
