package llm

import (
	"context"
	"errors"
	"testing"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: `{"a":1}`, Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Text: "```json\n{\"b\":2}\n```"},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp1.Text != `{"a":1}` {
		t.Fatalf("expected {\"a\":1}, got %s", resp1.Text)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp2.Text != "```json\n{\"b\":2}\n```" {
		t.Fatalf("expected fenced text verbatim, got %q", resp2.Text)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: `{}`})

	req := Request{
		Messages:    []Message{{Role: RoleUser, Content: "hello"}},
		MaxTokens:   8192,
		Temperature: 0.7,
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].MaxTokens != 8192 {
		t.Fatalf("expected max tokens 8192, got %d", mock.Calls[0].MaxTokens)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 0}},
	)

	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestMockImageProvider_EchoesSeed(t *testing.T) {
	mock := NewMockImageProvider(MockImageResponse{Images: []string{"aGVsbG8="}})

	resp, err := mock.GenerateImage(context.Background(), ImageRequest{Prompt: "fox", Seed: 42})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Seed == nil || *resp.Seed != 42 {
		t.Fatalf("expected seed 42, got %v", resp.Seed)
	}
	if mock.CallCount() != 1 || mock.Calls[0].Prompt != "fox" {
		t.Fatalf("unexpected calls: %+v", mock.Calls)
	}

	if _, err := mock.GenerateImage(context.Background(), ImageRequest{}); err == nil {
		t.Fatal("expected error from empty queue")
	}
}

func TestMockProvider_ModelID(t *testing.T) {
	if NewMockProvider().ModelID() != "mock" {
		t.Fatal("expected 'mock'")
	}
	if NewMockImageProvider().ModelID() != "mock" {
		t.Fatal("expected 'mock'")
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, "quiz-content")
	if p := PurposeFrom(ctx); p != "quiz-content" {
		t.Fatalf("expected 'quiz-content', got %q", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	mockImage := func(c Config) Config {
		c.ImageProvider = "mock"
		return c
	}

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "bedrock without model ARN",
			cfg:     mockImage(Config{TextProvider: "bedrock"}),
			wantErr: true,
		},
		{
			name:    "bedrock with model ARN",
			cfg:     mockImage(Config{TextProvider: "bedrock", Bedrock: BedrockConfig{TextModel: "arn:aws:bedrock:text"}}),
			wantErr: false,
		},
		{
			name:    "bedrock image without model ARN",
			cfg:     Config{TextProvider: "mock", ImageProvider: "bedrock", Bedrock: BedrockConfig{TextModel: "arn:aws:bedrock:text"}},
			wantErr: true,
		},
		{
			name:    "anthropic without key",
			cfg:     mockImage(Config{TextProvider: "anthropic"}),
			wantErr: true,
		},
		{
			name:    "anthropic with key",
			cfg:     mockImage(Config{TextProvider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}),
			wantErr: false,
		},
		{
			name:    "openai image with key",
			cfg:     Config{TextProvider: "mock", ImageProvider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "openrouter without key",
			cfg:     mockImage(Config{TextProvider: "openrouter"}),
			wantErr: true,
		},
		{
			name:    "mock needs no key",
			cfg:     Config{TextProvider: "mock", ImageProvider: "mock"},
			wantErr: false,
		},
		{
			name:    "unknown text provider",
			cfg:     mockImage(Config{TextProvider: "unknown"}),
			wantErr: true,
		},
		{
			name:    "unknown image provider",
			cfg:     Config{TextProvider: "mock", ImageProvider: "anthropic"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("QUIZFORGE_TEXT_PROVIDER", "openai")
	t.Setenv("QUIZFORGE_IMAGE_PROVIDER", "gemini")
	t.Setenv("QUIZFORGE_LLM_TIMEOUT", "30s")
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("BEDROCK_MODEL_ARN", "arn:text")
	t.Setenv("BEDROCK_IMAGE_MODEL_ARN", "arn:image")
	t.Setenv("QUIZFORGE_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.TextProvider != "openai" || cfg.ImageProvider != "gemini" {
		t.Fatalf("providers = %q/%q", cfg.TextProvider, cfg.ImageProvider)
	}
	if cfg.Timeout.String() != "30s" {
		t.Fatalf("timeout = %s, want 30s", cfg.Timeout)
	}
	if cfg.Bedrock.Region != "us-east-1" || cfg.Bedrock.TextModel != "arn:text" || cfg.Bedrock.ImageModel != "arn:image" {
		t.Fatalf("unexpected bedrock config: %+v", cfg.Bedrock)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Fatalf("openai model = %q", cfg.OpenAI.Model)
	}
	if cfg.Gemini.ImageModel != "imagen-3.0-generate-002" {
		t.Fatalf("gemini image model default lost: %q", cfg.Gemini.ImageModel)
	}
}
