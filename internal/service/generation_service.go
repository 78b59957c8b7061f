package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"quiz-forge/internal/cache"
	"quiz-forge/internal/config"
	"quiz-forge/internal/domain"

	"go.uber.org/zap"
)

const (
	msgForcedDuplicate    = "Concept already exists for this theme"
	msgAutomaticDuplicate = "Concept already exists, will retry tomorrow"
)

// generationRun accumulates the state of a single Generate call.
type generationRun struct {
	selection *ConceptSelection
	split     domain.DifficultySplit
	report    *PersistenceReport
}

func (r *generationRun) declined() *domain.GenerationResult {
	res := r.base()
	res.Outcome = domain.OutcomeDeclinedDuplicate
	if r.selection.Mode == domain.ModeManual {
		res.Message = msgForcedDuplicate
		res.ExistingConcepts = r.selection.ExistingConcepts
	} else {
		res.Message = msgAutomaticDuplicate
	}
	return res
}

func (r *generationRun) succeeded() *domain.GenerationResult {
	res := r.base()
	res.Outcome = domain.OutcomeSuccess
	res.QuestionsGenerated = r.report.Persisted
	res.Distribution = r.report.Distribution
	res.TotalConceptsForTheme = len(r.selection.ExistingConcepts) + 1
	res.Rejected = r.report.Rejected
	res.Duplicates = r.report.Duplicates
	res.Failed = r.report.Failed
	return res
}

func (r *generationRun) base() *domain.GenerationResult {
	return &domain.GenerationResult{
		Mode:      r.selection.Mode,
		ThemeID:   r.selection.Theme.ID,
		ThemeName: r.selection.ThemeName,
		ThemeIcon: r.selection.Theme.Icon,
		Concept:   r.selection.Concept.Concept,
	}
}

type generationService struct {
	selector    *ConceptSelector
	generator   domain.QuizGenerationService
	coordinator *PersistenceCoordinator
	cache       domain.Cache
	cfg         config.GenerationConfig
	logger      *zap.Logger
}

func NewGenerationService(
	selector *ConceptSelector,
	generator domain.QuizGenerationService,
	coordinator *PersistenceCoordinator,
	cache domain.Cache,
	cfg config.GenerationConfig,
	logger *zap.Logger,
) domain.GenerationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &generationService{
		selector:    selector,
		generator:   generator,
		coordinator: coordinator,
		cache:       cache,
		cfg:         cfg,
		logger:      logger,
	}
}

func lastRunKey(themeID string) string {
	return cache.GenerateCacheKey("generation", "last_run", themeID)
}

func (s *generationService) Generate(ctx context.Context, req domain.GenerateRequest) (*domain.GenerationResult, error) {
	run := &generationRun{}

	sel, err := s.selector.Select(ctx, req)
	if err != nil {
		return nil, err
	}
	run.selection = sel

	if sel.Duplicate {
		s.logger.Info("Concept already exists, skipping generation",
			zap.String("theme_id", sel.Theme.ID),
			zap.String("concept", sel.Concept.Concept),
			zap.String("mode", string(sel.Mode)))
		return run.declined(), nil
	}

	run.split = domain.NewDifficultySplit(s.cfg.QuestionsPerConcept, s.cfg.EasyCount, s.cfg.HardCount)
	candidates, err := s.generator.GenerateQuestions(ctx, sel.Concept.Concept, sel.ThemeName, run.split)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Questions generated",
		zap.String("concept", sel.Concept.Concept),
		zap.Int("requested", run.split.Total()),
		zap.Int("received", len(candidates)))

	report, err := s.coordinator.Persist(ctx, sel.Theme.ID, sel.Concept, candidates)
	if err != nil {
		return nil, err
	}
	run.report = report

	result := run.succeeded()
	s.storeLastRun(ctx, result)
	return result, nil
}

func (s *generationService) storeLastRun(ctx context.Context, result *domain.GenerationResult) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(result)
	if err != nil {
		s.logger.Warn("Failed to encode run summary", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, lastRunKey(result.ThemeID), string(payload), s.cfg.LastRunTTL); err != nil {
		s.logger.Warn("Failed to store run summary", zap.String("theme_id", result.ThemeID), zap.Error(err))
	}
}

func (s *generationService) LastRun(ctx context.Context, themeID string) (*domain.GenerationResult, error) {
	themeID = strings.TrimSpace(themeID)
	if themeID == "" {
		return nil, domain.NewInvalidInputError("theme_id is required")
	}
	if s.cache == nil {
		return nil, nil
	}
	raw, err := s.cache.Get(ctx, lastRunKey(themeID))
	if errors.Is(err, domain.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewInternalError("Failed to read run summary", err)
	}
	var result domain.GenerationResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, domain.NewInternalError("Failed to decode run summary", err)
	}
	return &result, nil
}
