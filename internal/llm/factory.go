package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/abhisek/quizforge/internal/store"
)

// NewTextProvider creates the text Provider selected by cfg.TextProvider,
// wrapped with logging middleware. Generation is never retried.
func NewTextProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	hc := newHTTPClient(cfg)

	var base Provider
	var err error

	switch cfg.TextProvider {
	case "bedrock":
		base, err = NewBedrockProvider(ctx, cfg.Bedrock, hc)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic, hc)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI, hc)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter, hc)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini, hc)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown text provider: %q", cfg.TextProvider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s text provider: %w", cfg.TextProvider, err)
	}

	return WithLogging(base, cfg.TextProvider, eventRepo), nil
}

// NewImageProvider creates the ImageProvider selected by cfg.ImageProvider,
// wrapped with logging middleware.
func NewImageProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (ImageProvider, error) {
	hc := newHTTPClient(cfg)

	var base ImageProvider
	var err error

	switch cfg.ImageProvider {
	case "bedrock":
		base, err = NewBedrockImageProvider(ctx, cfg.Bedrock, hc)
	case "openai":
		base, err = NewOpenAIImageProvider(cfg.OpenAI, hc)
	case "gemini":
		base, err = NewGeminiImageProvider(ctx, cfg.Gemini, hc)
	case "mock":
		base = NewMockImageProvider()
	default:
		return nil, fmt.Errorf("unknown image provider: %q", cfg.ImageProvider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s image provider: %w", cfg.ImageProvider, err)
	}

	return WithImageLogging(base, cfg.ImageProvider, eventRepo), nil
}

func newHTTPClient(cfg Config) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}
