package quizgen

import (
	"context"
	"errors"
	"quiz-forge/internal/domain"

	"go.uber.org/zap"
)

// Options bounds the size of the prompts and replies.
type Options struct {
	MaxConceptsToAvoid int
	MaxTokensConcept   int
	MaxTokensQuestions int
}

// QuizGenerator implements domain.QuizGenerationService over any TextGenerator.
type QuizGenerator struct {
	llm    domain.TextGenerator
	opts   Options
	logger *zap.Logger
}

// NewQuizGenerator creates a new instance of QuizGenerator.
func NewQuizGenerator(llm domain.TextGenerator, opts Options, logger *zap.Logger) (*QuizGenerator, error) {
	if llm == nil {
		return nil, errors.New("quiz generator needs a text generator")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuizGenerator{llm: llm, opts: opts, logger: logger}, nil
}

// ProposeConcept asks the model for a concept not in usedConcepts.
func (g *QuizGenerator) ProposeConcept(ctx context.Context, themeName string, usedConcepts []string) (*domain.ConceptProposal, error) {
	prompt := BuildConceptPrompt(themeName, usedConcepts, g.opts.MaxConceptsToAvoid)
	g.logger.Debug("Requesting concept proposal",
		zap.String("theme", themeName),
		zap.Int("used_concepts", len(usedConcepts)))

	reply, err := g.llm.Generate(ctx, prompt, g.opts.MaxTokensConcept)
	if err != nil {
		return nil, wrapModelError(err)
	}

	proposal, err := ParseConcept(reply)
	if err != nil {
		g.logger.Error("Failed to parse concept reply", zap.Error(err), zap.String("reply", reply))
		return nil, err
	}
	return proposal, nil
}

// GenerateQuestions asks the model for one batch of questions about concept.
func (g *QuizGenerator) GenerateQuestions(ctx context.Context, concept, themeName string, split domain.DifficultySplit) ([]*domain.CandidateQuestion, error) {
	prompt := BuildQuestionsPrompt(concept, themeName, split)
	g.logger.Info("Requesting question batch",
		zap.String("concept", concept),
		zap.Int("easy", split.Easy),
		zap.Int("medium", split.Medium),
		zap.Int("hard", split.Hard))

	reply, err := g.llm.Generate(ctx, prompt, g.opts.MaxTokensQuestions)
	if err != nil {
		return nil, wrapModelError(err)
	}

	candidates, err := ParseQuestions(reply)
	if err != nil {
		g.logger.Error("Failed to parse questions reply", zap.Error(err), zap.Int("reply_length", len(reply)))
		return nil, err
	}
	if len(candidates) != split.Total() {
		g.logger.Warn("Model returned a different number of questions than requested",
			zap.Int("requested", split.Total()),
			zap.Int("returned", len(candidates)))
	}
	return candidates, nil
}

func wrapModelError(err error) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	return domain.NewLLMServiceError(err)
}

var _ domain.QuizGenerationService = (*QuizGenerator)(nil)
