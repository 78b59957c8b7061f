package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"quiz-forge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type selectorMocks struct {
	themes    *MockThemeRepository
	concepts  *MockConceptRepository
	questions *MockQuestionRepository
	generator *MockQuizGenerationService
}

func newTestSelector(c domain.Cache) (*ConceptSelector, selectorMocks) {
	m := selectorMocks{
		themes:    new(MockThemeRepository),
		concepts:  new(MockConceptRepository),
		questions: new(MockQuestionRepository),
		generator: new(MockQuizGenerationService),
	}
	return NewConceptSelector(m.themes, m.concepts, m.questions, m.generator, c, time.Hour, nil), m
}

func TestSelectTheme_PicksFewestQuestions(t *testing.T) {
	selector, m := newTestSelector(nil)
	ctx := context.Background()

	m.themes.On("ListThemes", ctx, "").Return([]*domain.Theme{{ID: "science"}, {ID: "history"}}, nil)
	m.questions.On("CountQuestionsByTheme", mock.Anything, "science").Return(10, nil)
	m.questions.On("CountQuestionsByTheme", mock.Anything, "history").Return(3, nil)

	theme, err := selector.SelectTheme(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "history", theme.ID)
}

func TestSelectTheme_TieGoesToEarliest(t *testing.T) {
	selector, m := newTestSelector(nil)
	ctx := context.Background()

	m.themes.On("ListThemes", ctx, "").Return([]*domain.Theme{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil)
	m.questions.On("CountQuestionsByTheme", mock.Anything, "a").Return(5, nil)
	m.questions.On("CountQuestionsByTheme", mock.Anything, "b").Return(2, nil)
	m.questions.On("CountQuestionsByTheme", mock.Anything, "c").Return(2, nil)

	theme, err := selector.SelectTheme(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "b", theme.ID)
}

func TestSelectTheme_SingleOrForcedThemeSkipsCounting(t *testing.T) {
	selector, m := newTestSelector(nil)
	ctx := context.Background()

	m.themes.On("ListThemes", ctx, "").Return([]*domain.Theme{{ID: "only"}}, nil)
	m.themes.On("ListThemes", ctx, "7").Return([]*domain.Theme{{ID: "7"}}, nil)

	theme, err := selector.SelectTheme(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "only", theme.ID)

	theme, err = selector.SelectTheme(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, "7", theme.ID)

	m.questions.AssertNotCalled(t, "CountQuestionsByTheme", mock.Anything, mock.Anything)
}

func TestSelectTheme_Errors(t *testing.T) {
	t.Run("no themes", func(t *testing.T) {
		selector, m := newTestSelector(nil)
		m.themes.On("ListThemes", mock.Anything, "").Return([]*domain.Theme{}, nil)

		_, err := selector.SelectTheme(context.Background(), "")
		assert.Equal(t, domain.ErrNoThemesFound, domain.CodeOf(err))
	})

	t.Run("count fails", func(t *testing.T) {
		selector, m := newTestSelector(nil)
		m.themes.On("ListThemes", mock.Anything, "").Return([]*domain.Theme{{ID: "a"}, {ID: "b"}}, nil)
		m.questions.On("CountQuestionsByTheme", mock.Anything, "a").Return(1, nil)
		m.questions.On("CountQuestionsByTheme", mock.Anything, "b").Return(0, errors.New("boom"))

		_, err := selector.SelectTheme(context.Background(), "")
		assert.Equal(t, domain.ErrStore, domain.CodeOf(err))
	})
}

func TestThemeName(t *testing.T) {
	t.Run("defaults to General", func(t *testing.T) {
		selector, m := newTestSelector(nil)
		m.themes.On("GetThemeName", mock.Anything, "t1", domain.LangEN).Return("", nil)

		name, err := selector.ThemeName(context.Background(), "t1")
		require.NoError(t, err)
		assert.Equal(t, DefaultThemeName, name)
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		c := new(MockCache)
		selector, m := newTestSelector(c)
		c.On("Get", mock.Anything, "quizforge:theme:name:t1:en").Return("Science", nil)

		name, err := selector.ThemeName(context.Background(), "t1")
		require.NoError(t, err)
		assert.Equal(t, "Science", name)
		m.themes.AssertNotCalled(t, "GetThemeName", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cache miss fills the cache", func(t *testing.T) {
		c := new(MockCache)
		selector, m := newTestSelector(c)
		c.On("Get", mock.Anything, "quizforge:theme:name:t1:en").Return("", domain.ErrCacheMiss)
		c.On("Set", mock.Anything, "quizforge:theme:name:t1:en", "History", time.Hour).Return(nil)
		m.themes.On("GetThemeName", mock.Anything, "t1", domain.LangEN).Return("History", nil)

		name, err := selector.ThemeName(context.Background(), "t1")
		require.NoError(t, err)
		assert.Equal(t, "History", name)
		c.AssertExpectations(t)
	})
}

func TestSelect_AutomaticMode(t *testing.T) {
	selector, m := newTestSelector(nil)
	existing := []string{"Volcanoes", "Tides"}

	m.themes.On("ListThemes", mock.Anything, "").Return([]*domain.Theme{{ID: "geo", Icon: "🌍"}}, nil)
	m.themes.On("GetThemeName", mock.Anything, "geo", domain.LangEN).Return("Geography", nil)
	m.concepts.On("ListConceptNamesByTheme", mock.Anything, "geo").Return(existing, nil)
	m.generator.On("ProposeConcept", mock.Anything, "Geography", existing).
		Return(&domain.ConceptProposal{Concept: "Deserts", ConceptFR: "Déserts"}, nil)

	sel, err := selector.Select(context.Background(), domain.GenerateRequest{})
	require.NoError(t, err)
	assert.Equal(t, domain.ModeAutomatic, sel.Mode)
	assert.Equal(t, "Geography", sel.ThemeName)
	assert.Equal(t, "Deserts", sel.Concept.Concept)
	assert.False(t, sel.Duplicate)
}

func TestSelect_ForcedModeDuplicate(t *testing.T) {
	selector, m := newTestSelector(nil)

	m.themes.On("ListThemes", mock.Anything, "").Return([]*domain.Theme{{ID: "space"}}, nil)
	m.themes.On("GetThemeName", mock.Anything, "space", domain.LangEN).Return("Space", nil)
	m.concepts.On("ListConceptNamesByTheme", mock.Anything, "space").Return([]string{"The Solar System"}, nil)

	sel, err := selector.Select(context.Background(), domain.GenerateRequest{Concept: "Solar System"})
	require.NoError(t, err)
	assert.Equal(t, domain.ModeManual, sel.Mode)
	assert.Equal(t, "Solar System", sel.Concept.ConceptFR)
	assert.True(t, sel.Duplicate)
	m.generator.AssertNotCalled(t, "ProposeConcept", mock.Anything, mock.Anything, mock.Anything)
}

func TestSelect_ModelErrorIsFatal(t *testing.T) {
	selector, m := newTestSelector(nil)

	m.themes.On("ListThemes", mock.Anything, "").Return([]*domain.Theme{{ID: "space"}}, nil)
	m.themes.On("GetThemeName", mock.Anything, "space", domain.LangEN).Return("Space", nil)
	m.concepts.On("ListConceptNamesByTheme", mock.Anything, "space").Return([]string{}, nil)
	m.generator.On("ProposeConcept", mock.Anything, "Space", []string{}).
		Return(nil, domain.NewMalformedModelOutputError("no concept", nil))

	_, err := selector.Select(context.Background(), domain.GenerateRequest{})
	assert.Equal(t, domain.ErrMalformedModelOutput, domain.CodeOf(err))
}

func TestIsDuplicateConcept(t *testing.T) {
	tests := []struct {
		concept  string
		existing []string
		want     bool
	}{
		{"Solar System", []string{"The Solar System"}, true},
		{"the solar system and beyond", []string{"Solar System"}, true},
		{"SOLAR SYSTEM", []string{"solar system"}, true},
		{"Art", []string{"Renaissance Art"}, true},
		{"Volcanoes", []string{"Tides", "Deserts"}, false},
		{"Volcanoes", nil, false},
		{"", []string{"Tides"}, false},
		{"Tides", []string{"  "}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsDuplicateConcept(tt.concept, tt.existing), "%q vs %v", tt.concept, tt.existing)
	}
}
