package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
)

const bedrockAnthropicVersion = "bedrock-2023-05-31"

// bedrockInvoker is the subset of the Bedrock runtime client we use.
type bedrockInvoker interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// BedrockProvider implements Provider by invoking an Anthropic model
// hosted on Amazon Bedrock with the messages API body format.
type BedrockProvider struct {
	client bedrockInvoker
	model  string
}

// NewBedrockProvider creates a text provider for cfg.TextModel.
func NewBedrockProvider(ctx context.Context, cfg BedrockConfig, hc *http.Client) (*BedrockProvider, error) {
	if cfg.TextModel == "" {
		return nil, fmt.Errorf("bedrock text model is required")
	}
	client, err := newBedrockClient(ctx, cfg, hc)
	if err != nil {
		return nil, err
	}
	return &BedrockProvider{client: client, model: cfg.TextModel}, nil
}

// newBedrockClient loads the AWS configuration once per provider. Static
// keys are used only when both halves are set.
func newBedrockClient(ctx context.Context, cfg BedrockConfig, hc *http.Client) (*bedrockruntime.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		// One attempt per generation.
		awsconfig.WithRetryMaxAttempts(1),
	}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	if hc != nil {
		opts = append(opts, awsconfig.WithHTTPClient(hc))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return bedrockruntime.NewFromConfig(awsCfg), nil
}

type bedrockMessagesRequest struct {
	AnthropicVersion string           `json:"anthropic_version"`
	MaxTokens        int              `json:"max_tokens"`
	Temperature      float64          `json:"temperature,omitempty"`
	System           string           `json:"system,omitempty"`
	Messages         []bedrockMessage `json:"messages"`
}

type bedrockMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type bedrockMessagesResponse struct {
	Model   string `json:"model"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

func (p *BedrockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	body := bedrockMessagesRequest{
		AnthropicVersion: bedrockAnthropicVersion,
		MaxTokens:        req.MaxTokens,
		Temperature:      req.Temperature,
		System:           req.System,
		Messages:         make([]bedrockMessage, len(req.Messages)),
	}
	for i, m := range req.Messages {
		body.Messages[i] = bedrockMessage{Role: string(m.Role), Content: m.Content}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal bedrock request: %w", err)
	}

	raw, err := invokeBedrock(ctx, p.client, p.model, payload)
	if err != nil {
		return nil, err
	}

	var out bedrockMessagesResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &ErrProviderUnavailable{Err: fmt.Errorf("decode bedrock envelope: %w", err)}
	}

	text, ok := firstBedrockText(out)
	if !ok {
		return nil, &ErrEmptyResponse{Detail: "no text content in Bedrock response"}
	}

	model := out.Model
	if model == "" {
		model = p.model
	}

	return &Response{
		Text: text,
		Usage: Usage{
			InputTokens:  out.Usage.InputTokens,
			OutputTokens: out.Usage.OutputTokens,
			TotalTokens:  out.Usage.InputTokens + out.Usage.OutputTokens,
		},
		Model:      model,
		StopReason: mapAnthropicStopReason(out.StopReason),
	}, nil
}

func (p *BedrockProvider) ModelID() string {
	return p.model
}

func firstBedrockText(out bedrockMessagesResponse) (string, bool) {
	for _, block := range out.Content {
		if block.Type == "text" {
			return block.Text, true
		}
	}
	return "", false
}

// invokeBedrock performs the single InvokeModel call shared by the text and
// image providers and returns the raw response body.
func invokeBedrock(ctx context.Context, client bedrockInvoker, model string, payload []byte) ([]byte, error) {
	out, err := client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(model),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        payload,
	})
	if err != nil {
		return nil, mapBedrockError(err)
	}
	if out == nil || len(out.Body) == 0 {
		return nil, &ErrProviderUnavailable{Err: errors.New("empty response body from Bedrock")}
	}
	return out.Body, nil
}

func mapBedrockError(err error) error {
	var throttled *types.ThrottlingException
	if errors.As(err, &throttled) {
		return &ErrRateLimit{Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}
