package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all model provider configuration.
type Config struct {
	// TextProvider selects the backend for quiz content.
	// Values: "bedrock", "anthropic", "openai", "openrouter", "gemini", "mock"
	TextProvider string

	// ImageProvider selects the backend for illustrations.
	// Values: "bedrock", "openai", "gemini", "mock"
	ImageProvider string

	Bedrock    BedrockConfig
	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig

	// Timeout bounds a single upstream HTTP exchange. Zero means no limit.
	// Default: 120s.
	Timeout time.Duration
}

// BedrockConfig holds Amazon Bedrock configuration. Credentials are
// optional; when unset the default AWS credential chain is used (task
// role, shared config, etc.).
type BedrockConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string

	// TextModel is the model ID or inference profile ARN of an Anthropic
	// messages-API model.
	TextModel string

	// ImageModel is the model ID or ARN of a Nova Canvas model.
	ImageModel string
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-sonnet"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey     string
	Model      string // Default: "gpt-4o-mini"
	ImageModel string // Default: "dall-e-3"
	BaseURL    string // Optional. Override for compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey     string
	Model      string // Default: "gemini-flash"
	ImageModel string // Default: "imagen-3.0-generate-002"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "anthropic/claude-sonnet-4"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TextProvider:  "bedrock",
		ImageProvider: "bedrock",
		Anthropic: AnthropicConfig{
			Model: "claude-sonnet",
		},
		OpenAI: OpenAIConfig{
			Model:      "gpt-4o-mini",
			ImageModel: "dall-e-3",
		},
		Gemini: GeminiConfig{
			Model:      "gemini-flash",
			ImageModel: "imagen-3.0-generate-002",
		},
		OpenRouter: OpenRouterConfig{
			Model: "anthropic/claude-sonnet-4",
		},
		Timeout: 120 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("QUIZFORGE_TEXT_PROVIDER"); p != "" {
		cfg.TextProvider = p
	}
	if p := os.Getenv("QUIZFORGE_IMAGE_PROVIDER"); p != "" {
		cfg.ImageProvider = p
	}
	if t := os.Getenv("QUIZFORGE_LLM_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			cfg.Timeout = d
		}
	}

	cfg.Bedrock.Region = os.Getenv("AWS_REGION")
	cfg.Bedrock.AccessKeyID = os.Getenv("AWS_ACCESS_KEY_ID")
	cfg.Bedrock.SecretAccessKey = os.Getenv("AWS_SECRET_ACCESS_KEY")
	cfg.Bedrock.TextModel = os.Getenv("BEDROCK_MODEL_ARN")
	cfg.Bedrock.ImageModel = os.Getenv("BEDROCK_IMAGE_MODEL_ARN")

	if k := os.Getenv("QUIZFORGE_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("QUIZFORGE_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := os.Getenv("QUIZFORGE_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("QUIZFORGE_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if m := os.Getenv("QUIZFORGE_OPENAI_IMAGE_MODEL"); m != "" {
		cfg.OpenAI.ImageModel = m
	}
	if u := os.Getenv("QUIZFORGE_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("QUIZFORGE_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("QUIZFORGE_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}
	if m := os.Getenv("QUIZFORGE_GEMINI_IMAGE_MODEL"); m != "" {
		cfg.Gemini.ImageModel = m
	}

	if k := os.Getenv("QUIZFORGE_OPENROUTER_API_KEY"); k != "" {
		cfg.OpenRouter.APIKey = k
	}
	if m := os.Getenv("QUIZFORGE_OPENROUTER_MODEL"); m != "" {
		cfg.OpenRouter.Model = m
	}

	return cfg
}

// Validate checks that both selected providers have what they need to
// start. A failure here is a startup error, never a per-request one.
func (c Config) Validate() error {
	if err := c.ValidateText(); err != nil {
		return err
	}
	return c.ValidateImage()
}

// ValidateText checks the text provider settings only.
func (c Config) ValidateText() error {
	switch c.TextProvider {
	case "bedrock":
		if c.Bedrock.TextModel == "" {
			return fmt.Errorf("BEDROCK_MODEL_ARN is required for the bedrock text provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("QUIZFORGE_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("QUIZFORGE_OPENAI_API_KEY is required for the openai provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("QUIZFORGE_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("QUIZFORGE_GEMINI_API_KEY is required for the gemini provider")
		}
	case "mock":
		// No configuration needed.
	default:
		return fmt.Errorf("unknown text provider: %q", c.TextProvider)
	}
	return nil
}

// ValidateImage checks the image provider settings only.
func (c Config) ValidateImage() error {
	switch c.ImageProvider {
	case "bedrock":
		if c.Bedrock.ImageModel == "" {
			return fmt.Errorf("BEDROCK_IMAGE_MODEL_ARN is required for the bedrock image provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("QUIZFORGE_OPENAI_API_KEY is required for the openai image provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("QUIZFORGE_GEMINI_API_KEY is required for the gemini image provider")
		}
	case "mock":
	default:
		return fmt.Errorf("unknown image provider: %q", c.ImageProvider)
	}
	return nil
}
