package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"quiz-forge/internal/cache"
	"quiz-forge/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// DefaultThemeName is used when a theme has no English translation.
const DefaultThemeName = "General"

// ConceptSelection is the theme and concept a run will generate questions for.
type ConceptSelection struct {
	Mode             domain.GenerationMode
	Theme            *domain.Theme
	ThemeName        string
	Concept          domain.ConceptProposal
	ExistingConcepts []string
	Duplicate        bool
}

// ConceptSelector picks the least populated theme and a concept for it.
type ConceptSelector struct {
	themes       domain.ThemeRepository
	concepts     domain.ConceptRepository
	questions    domain.QuestionRepository
	generator    domain.QuizGenerationService
	cache        domain.Cache
	themeNameTTL time.Duration
	group        singleflight.Group
	logger       *zap.Logger
}

func NewConceptSelector(
	themes domain.ThemeRepository,
	concepts domain.ConceptRepository,
	questions domain.QuestionRepository,
	generator domain.QuizGenerationService,
	cache domain.Cache,
	themeNameTTL time.Duration,
	logger *zap.Logger,
) *ConceptSelector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConceptSelector{
		themes:       themes,
		concepts:     concepts,
		questions:    questions,
		generator:    generator,
		cache:        cache,
		themeNameTTL: themeNameTTL,
		logger:       logger,
	}
}

// Select resolves the theme, then takes the forced concept of req or asks the
// model for a new one, and flags it when it overlaps an existing concept.
func (s *ConceptSelector) Select(ctx context.Context, req domain.GenerateRequest) (*ConceptSelection, error) {
	theme, err := s.SelectTheme(ctx, strings.TrimSpace(req.ThemeID))
	if err != nil {
		return nil, err
	}

	name, err := s.ThemeName(ctx, theme.ID)
	if err != nil {
		return nil, err
	}

	existing, err := s.concepts.ListConceptNamesByTheme(ctx, theme.ID)
	if err != nil {
		return nil, domain.NewStoreError("Failed to load existing concepts", err)
	}

	sel := &ConceptSelection{
		Mode:             domain.ModeAutomatic,
		Theme:            theme,
		ThemeName:        name,
		ExistingConcepts: existing,
	}

	if forced := strings.TrimSpace(req.Concept); forced != "" {
		sel.Mode = domain.ModeManual
		sel.Concept = domain.ConceptProposal{Concept: forced, ConceptFR: strings.TrimSpace(req.ConceptFR)}
		if sel.Concept.ConceptFR == "" {
			sel.Concept.ConceptFR = forced
		}
	} else {
		proposal, err := s.generator.ProposeConcept(ctx, name, existing)
		if err != nil {
			return nil, err
		}
		sel.Concept = *proposal
	}

	sel.Duplicate = IsDuplicateConcept(sel.Concept.Concept, existing)

	s.logger.Info("Concept selected",
		zap.String("theme_id", theme.ID),
		zap.String("theme", name),
		zap.String("concept", sel.Concept.Concept),
		zap.String("mode", string(sel.Mode)),
		zap.Int("existing_concepts", len(existing)),
		zap.Bool("duplicate", sel.Duplicate))
	return sel, nil
}

// SelectTheme returns the forced theme, or the theme with the fewest
// questions. Ties go to the earliest theme in id order.
func (s *ConceptSelector) SelectTheme(ctx context.Context, themeID string) (*domain.Theme, error) {
	themes, err := s.themes.ListThemes(ctx, themeID)
	if err != nil {
		return nil, domain.NewStoreError("Failed to load themes", err)
	}
	if len(themes) == 0 {
		return nil, domain.NewNoThemesFoundError()
	}
	if themeID != "" || len(themes) == 1 {
		return themes[0], nil
	}

	counts := make([]int, len(themes))
	g, gctx := errgroup.WithContext(ctx)
	for i, t := range themes {
		g.Go(func() error {
			n, err := s.questions.CountQuestionsByTheme(gctx, t.ID)
			if err != nil {
				return err
			}
			counts[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, domain.NewStoreError("Failed to count questions per theme", err)
	}

	best := 0
	for i := 1; i < len(counts); i++ {
		if counts[i] < counts[best] {
			best = i
		}
	}
	s.logger.Debug("Theme picked by question count",
		zap.String("theme_id", themes[best].ID),
		zap.Int("question_count", counts[best]))
	return themes[best], nil
}

// ThemeName returns the English display name of the theme, or
// DefaultThemeName when none is recorded.
func (s *ConceptSelector) ThemeName(ctx context.Context, themeID string) (string, error) {
	key := cache.GenerateCacheKey("theme", "name", themeID, domain.LangEN)
	if s.cache != nil {
		if name, err := s.cache.Get(ctx, key); err == nil && name != "" {
			return name, nil
		} else if err != nil && !errors.Is(err, domain.ErrCacheMiss) {
			s.logger.Warn("Theme name cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		name, err := s.themes.GetThemeName(ctx, themeID, domain.LangEN)
		if err != nil {
			return "", domain.NewStoreError("Failed to load theme name", err)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			name = DefaultThemeName
		}
		if s.cache != nil {
			if err := s.cache.Set(ctx, key, name, s.themeNameTTL); err != nil {
				s.logger.Warn("Theme name cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
		return name, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// IsDuplicateConcept reports whether concept contains, or is contained in, any
// existing concept, ignoring case.
func IsDuplicateConcept(concept string, existing []string) bool {
	c := strings.ToLower(strings.TrimSpace(concept))
	if c == "" {
		return false
	}
	for _, e := range existing {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if strings.Contains(c, e) || strings.Contains(e, c) {
			return true
		}
	}
	return false
}
