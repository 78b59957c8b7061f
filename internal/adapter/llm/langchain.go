package llm

import (
	"context"
	"errors"
	"strings"

	"quiz-forge/internal/domain"

	"github.com/tmc/langchaingo/llms"
)

// LangchainGenerator adapts any langchaingo model (Ollama, OpenAI) to
// domain.TextGenerator.
type LangchainGenerator struct {
	model llms.Model
}

func NewLangchainGenerator(model llms.Model) (*LangchainGenerator, error) {
	if model == nil {
		return nil, errors.New("langchain model cannot be nil")
	}
	return &LangchainGenerator{model: model}, nil
}

func (g *LangchainGenerator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	opts := []llms.CallOption{}
	if maxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(maxTokens))
	}
	out, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt, opts...)
	if err != nil {
		return "", domain.NewLLMServiceError(err)
	}
	return strings.TrimSpace(out), nil
}

var _ domain.TextGenerator = (*LangchainGenerator)(nil)
