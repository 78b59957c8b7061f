package quizgen

import (
	"context"
	"errors"
	"quiz-forge/internal/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	args := m.Called(ctx, prompt, maxTokens)
	return args.String(0), args.Error(1)
}

const oneQuestionReply = "```json\n" + `{
  "questions": [
    {
      "question_en": "Which planet is known as the Red Planet?",
      "question_fr": "Quelle planète est surnommée la planète rouge ?",
      "explanation_en": "Iron oxide gives Mars its color.",
      "explanation_fr": "L'oxyde de fer donne sa couleur à Mars.",
      "difficulty": "easy",
      "answers_en": [
        {"text": "Venus", "is_correct": false},
        {"text": "Mars", "is_correct": true},
        {"text": "Jupiter", "is_correct": false},
        {"text": "Mercury", "is_correct": false}
      ],
      "answers_fr": [
        {"text": "Vénus", "is_correct": false},
        {"text": "Mars", "is_correct": true},
        {"text": "Jupiter", "is_correct": false},
        {"text": "Mercure", "is_correct": false}
      ]
    }
  ]
}` + "\n```"

func newTestGenerator(t *testing.T, llm domain.TextGenerator) *QuizGenerator {
	t.Helper()
	g, err := NewQuizGenerator(llm, Options{MaxConceptsToAvoid: 100, MaxTokensConcept: 500, MaxTokensQuestions: 16000}, zap.NewNop())
	require.NoError(t, err)
	return g
}

func TestNewQuizGenerator_RequiresLLM(t *testing.T) {
	_, err := NewQuizGenerator(nil, Options{}, nil)
	assert.Error(t, err)
}

func TestProposeConcept_Success(t *testing.T) {
	llm := new(MockTextGenerator)
	g := newTestGenerator(t, llm)
	ctx := context.Background()

	llm.On("Generate", ctx, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "1. The Solar System") && strings.Contains(p, `"Science"`)
	}), 500).Return(`{"concept": "Volcanoes", "concept_fr": "Les volcans"}`, nil).Once()

	p, err := g.ProposeConcept(ctx, "Science", []string{"The Solar System"})
	require.NoError(t, err)
	assert.Equal(t, "Volcanoes", p.Concept)
	assert.Equal(t, "Les volcans", p.ConceptFR)
	llm.AssertExpectations(t)
}

func TestProposeConcept_ModelError(t *testing.T) {
	llm := new(MockTextGenerator)
	g := newTestGenerator(t, llm)

	llm.On("Generate", mock.Anything, mock.Anything, 500).Return("", errors.New("503 overloaded")).Once()

	_, err := g.ProposeConcept(context.Background(), "Science", nil)
	require.Error(t, err)
	assert.Equal(t, domain.ErrLLMServiceError, domain.CodeOf(err))
}

func TestProposeConcept_Malformed(t *testing.T) {
	llm := new(MockTextGenerator)
	g := newTestGenerator(t, llm)

	llm.On("Generate", mock.Anything, mock.Anything, 500).Return("I think volcanoes would be nice.", nil).Once()

	_, err := g.ProposeConcept(context.Background(), "Science", nil)
	require.Error(t, err)
	assert.Equal(t, domain.ErrMalformedModelOutput, domain.CodeOf(err))
}

func TestGenerateQuestions_Success(t *testing.T) {
	llm := new(MockTextGenerator)
	g := newTestGenerator(t, llm)
	ctx := context.Background()
	split := domain.NewDifficultySplit(15, 6, 3)

	llm.On("Generate", ctx, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "6 EASY, 6 MEDIUM, 3 HARD") && strings.Contains(p, `"Mars"`)
	}), 16000).Return(oneQuestionReply, nil).Once()

	candidates, err := g.GenerateQuestions(ctx, "Mars", "Science", split)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Which planet is known as the Red Planet?", candidates[0].QuestionEN)
	assert.Len(t, candidates[0].AnswersFR, 4)
	assert.True(t, candidates[0].AnswersEN[1].IsCorrect)
	llm.AssertExpectations(t)
}

func TestGenerateQuestions_NoArray(t *testing.T) {
	llm := new(MockTextGenerator)
	g := newTestGenerator(t, llm)

	llm.On("Generate", mock.Anything, mock.Anything, 16000).Return(`{"questions": {"question_en": "x"}}`, nil).Once()

	_, err := g.GenerateQuestions(context.Background(), "Mars", "Science", domain.NewDifficultySplit(15, 6, 3))
	require.Error(t, err)
	assert.Equal(t, domain.ErrMalformedModelOutput, domain.CodeOf(err))
}
