package domain

import "context"

// TextGenerator is a single-turn generative model: one prompt in, free-form text out.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// QuizGenerationService turns model calls into structured proposals.
type QuizGenerationService interface {
	// ProposeConcept asks the model for one new concept for themeName that is
	// not among usedConcepts.
	ProposeConcept(ctx context.Context, themeName string, usedConcepts []string) (*ConceptProposal, error)

	// GenerateQuestions asks the model for split.Total() questions about concept.
	// The returned candidates are untrusted.
	GenerateQuestions(ctx context.Context, concept, themeName string, split DifficultySplit) ([]*CandidateQuestion, error)
}
