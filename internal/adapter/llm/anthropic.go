package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"quiz-forge/internal/domain"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicGenerator calls the Anthropic Messages API with a single user turn.
type AnthropicGenerator struct {
	client *anthropic.Client
	model  string
}

// NewAnthropicGenerator creates a generator for model. Extra request options
// are appended after the API key and HTTP client.
func NewAnthropicGenerator(apiKey, model string, httpClient *http.Client, opts ...option.RequestOption) (*AnthropicGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("anthropic API key cannot be empty")
	}
	if model == "" {
		return nil, errors.New("anthropic model cannot be empty")
	}

	reqOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if httpClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(httpClient))
	}
	reqOpts = append(reqOpts, opts...)

	client := anthropic.NewClient(reqOpts...)
	return &AnthropicGenerator{client: &client, model: model}, nil
}

// Generate returns the first text block of the reply.
func (g *AnthropicGenerator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	message, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", domain.NewLLMServiceError(err)
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			return strings.TrimSpace(block.Text), nil
		}
	}
	return "", domain.NewLLMServiceError(errors.New("no text content in API response"))
}

var _ domain.TextGenerator = (*AnthropicGenerator)(nil)
