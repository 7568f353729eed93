package llm

import (
	"context"
	"fmt"

	"github.com/credo-scan/credo/internal/model"
)

// Provider is a chat completion backend
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete sends the prompts and returns the generated text
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Config holds provider configuration
type Config struct {
	// Provider name: "openai" or "" (disabled)
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for the provider
	APIKey string

	// BaseURL for custom endpoints
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int
}

// ConfigFromModel converts the application LLM configuration
func ConfigFromModel(cfg model.LLMConfig) Config {
	return Config{
		Provider:  cfg.Provider,
		Model:     cfg.Model,
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		MaxTokens: cfg.MaxTokens,
	}
}

// NewProvider creates the provider named in the configuration.
// An empty provider name means summaries are disabled.
func NewProvider(config Config) (Provider, error) {
	switch config.Provider {
	case "":
		return nil, nil
	case "openai":
		return NewOpenAIProvider(config)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q (supported: openai)", config.Provider)
	}
}
