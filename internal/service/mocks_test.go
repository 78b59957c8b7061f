package service

import (
	"context"
	"time"

	"quiz-forge/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockThemeRepository ---
type MockThemeRepository struct {
	mock.Mock
}

func (m *MockThemeRepository) ListThemes(ctx context.Context, themeID string) ([]*domain.Theme, error) {
	args := m.Called(ctx, themeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Theme), args.Error(1)
}

func (m *MockThemeRepository) GetThemeName(ctx context.Context, themeID, lang string) (string, error) {
	args := m.Called(ctx, themeID, lang)
	return args.String(0), args.Error(1)
}

// --- MockConceptRepository ---
type MockConceptRepository struct {
	mock.Mock
}

func (m *MockConceptRepository) ListConceptNamesByTheme(ctx context.Context, themeID string) ([]string, error) {
	args := m.Called(ctx, themeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockConceptRepository) InsertConcept(ctx context.Context, concept *domain.Concept) error {
	args := m.Called(ctx, concept)
	return args.Error(0)
}

func (m *MockConceptRepository) DeleteConcept(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- MockQuestionRepository ---
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) CountQuestionsByTheme(ctx context.Context, themeID string) (int, error) {
	args := m.Called(ctx, themeID)
	return args.Int(0), args.Error(1)
}

func (m *MockQuestionRepository) FindQuestionIDByText(ctx context.Context, lang, text string) (string, error) {
	args := m.Called(ctx, lang, text)
	return args.String(0), args.Error(1)
}

func (m *MockQuestionRepository) InsertQuestion(ctx context.Context, q *domain.Question) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *MockQuestionRepository) InsertQuestionTranslations(ctx context.Context, rows []*domain.QuestionTranslation) (int64, error) {
	args := m.Called(ctx, rows)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuestionRepository) InsertAnswers(ctx context.Context, rows []*domain.Answer) (int64, error) {
	args := m.Called(ctx, rows)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuestionRepository) InsertAnswerTranslations(ctx context.Context, rows []*domain.AnswerTranslation) (int64, error) {
	args := m.Called(ctx, rows)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuestionRepository) DeleteQuestion(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuestionRepository) DeleteQuestionTranslations(ctx context.Context, questionID string) error {
	args := m.Called(ctx, questionID)
	return args.Error(0)
}

func (m *MockQuestionRepository) DeleteAnswers(ctx context.Context, questionID string) error {
	args := m.Called(ctx, questionID)
	return args.Error(0)
}

func (m *MockQuestionRepository) DeleteAnswerTranslations(ctx context.Context, answerIDs []string) error {
	args := m.Called(ctx, answerIDs)
	return args.Error(0)
}

// --- MockQuizGenerationService ---
type MockQuizGenerationService struct {
	mock.Mock
}

func (m *MockQuizGenerationService) ProposeConcept(ctx context.Context, themeName string, usedConcepts []string) (*domain.ConceptProposal, error) {
	args := m.Called(ctx, themeName, usedConcepts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConceptProposal), args.Error(1)
}

func (m *MockQuizGenerationService) GenerateQuestions(ctx context.Context, concept, themeName string, split domain.DifficultySplit) ([]*domain.CandidateQuestion, error) {
	args := m.Called(ctx, concept, themeName, split)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CandidateQuestion), args.Error(1)
}

// --- MockUserStatsRepository ---
type MockUserStatsRepository struct {
	mock.Mock
}

func (m *MockUserStatsRepository) ListStreakCandidates(ctx context.Context, minStreak int, offsets []int) ([]*domain.UserStats, error) {
	args := m.Called(ctx, minStreak, offsets)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.UserStats), args.Error(1)
}

// --- MockPushTokenRepository ---
type MockPushTokenRepository struct {
	mock.Mock
}

func (m *MockPushTokenRepository) ListTokens(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// --- MockPushGateway ---
type MockPushGateway struct {
	mock.Mock
}

func (m *MockPushGateway) Send(ctx context.Context, msg domain.PushMessage) (*domain.PushResult, error) {
	args := m.Called(ctx, msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PushResult), args.Error(1)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) SetNX(ctx context.Context, key string, value string, expiration time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, expiration)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
