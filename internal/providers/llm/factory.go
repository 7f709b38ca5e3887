package llm

import (
	"context"
	"strings"

	"github.com/example/carecompanion/internal/config"
)

// New returns a Client based on configuration.
// Supported providers:
// - LLM_PROVIDER=openai|anthropic|gemini
// - For OpenAI:    OPENAI_API_KEY, optional OPENAI_API_BASE and LLM_MODEL
// - For Anthropic: ANTHROPIC_API_KEY, optional LLM_MODEL
// - For Gemini:    GOOGLE_API_KEY, optional LLM_MODEL
// Without a provider the first configured key wins. If nothing is configured,
// returns a MockClient.
func New(ctx context.Context, cfg config.LLMConfig) (Client, error) {
	switch cfg.Provider {
	case "openai":
		if key := strings.TrimSpace(cfg.OpenAIAPIKey); key != "" {
			return newOpenAI(cfg), nil
		}
	case "anthropic":
		if key := strings.TrimSpace(cfg.AnthropicAPIKey); key != "" {
			return newAnthropic(cfg), nil
		}
	case "gemini":
		if key := strings.TrimSpace(cfg.GoogleAPIKey); key != "" {
			return newGemini(ctx, cfg)
		}
	}

	if strings.TrimSpace(cfg.OpenAIAPIKey) != "" {
		return newOpenAI(cfg), nil
	}
	if strings.TrimSpace(cfg.AnthropicAPIKey) != "" {
		return newAnthropic(cfg), nil
	}
	if strings.TrimSpace(cfg.GoogleAPIKey) != "" {
		return newGemini(ctx, cfg)
	}
	return &MockClient{}, nil
}

func newOpenAI(cfg config.LLMConfig) Client {
	return NewOpenAIClient(strings.TrimSpace(cfg.OpenAIAPIKey), modelOrDefault(cfg.Model, "gpt-4o-mini"), cfg.OpenAIBaseURL, cfg.HTTPTimeout)
}

func newAnthropic(cfg config.LLMConfig) Client {
	return NewAnthropicClient(strings.TrimSpace(cfg.AnthropicAPIKey), modelOrDefault(cfg.Model, "claude-3-5-sonnet-latest"), cfg.HTTPTimeout)
}

func newGemini(ctx context.Context, cfg config.LLMConfig) (Client, error) {
	return NewGeminiClient(ctx, strings.TrimSpace(cfg.GoogleAPIKey), modelOrDefault(cfg.Model, "gemini-1.5-flash"))
}

func modelOrDefault(model, def string) string {
	if v := strings.TrimSpace(model); v != "" {
		return v
	}
	return def
}
