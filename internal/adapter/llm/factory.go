package llm

import (
	"fmt"
	"net/http"

	"quiz-forge/internal/config"
	"quiz-forge/internal/domain"

	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

// NewTextGenerator builds the generator selected by cfg.Provider.
func NewTextGenerator(cfg config.LLMConfig) (domain.TextGenerator, error) {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	switch cfg.Provider {
	case "anthropic":
		return NewAnthropicGenerator(cfg.AnthropicAPIKey, cfg.Model, httpClient)
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("openai API key cannot be empty")
		}
		model, err := openai.New(
			openai.WithToken(cfg.OpenAIAPIKey),
			openai.WithModel(cfg.Model),
			openai.WithHTTPClient(httpClient),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
		}
		return NewLangchainGenerator(model)
	case "ollama":
		model, err := ollama.New(
			ollama.WithServerURL(cfg.OllamaServerURL),
			ollama.WithModel(cfg.Model),
			ollama.WithHTTPClient(httpClient),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Ollama client: %w", err)
		}
		return NewLangchainGenerator(model)
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}
