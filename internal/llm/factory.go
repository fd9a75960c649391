package llm

import (
	"context"
	"fmt"
)

// NewProvider builds the configured provider wrapped with retry and,
// when log is non-nil, request logging.
//
// The middleware order is caller → retry → logging → SDK adapter, so
// every attempt is logged individually.
func NewProvider(ctx context.Context, cfg Config, log RequestLog) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenAIProvider(openRouterAsOpenAI(cfg.OpenRouter))
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if log != nil {
		base = WithLogging(base, cfg.Provider, log)
	}
	return WithRetry(base, cfg.Retry), nil
}

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouter speaks the OpenAI wire protocol, so it reuses that adapter
// with its own gateway URL.
func openRouterAsOpenAI(cfg OpenRouterConfig) OpenAIConfig {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}
	return OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: baseURL,
	}
}
