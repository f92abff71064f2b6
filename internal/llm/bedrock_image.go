package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// BedrockImageProvider implements ImageProvider with Amazon Nova Canvas
// TEXT_IMAGE generation.
type BedrockImageProvider struct {
	client bedrockInvoker
	model  string
}

// NewBedrockImageProvider creates an image provider for cfg.ImageModel.
func NewBedrockImageProvider(ctx context.Context, cfg BedrockConfig, hc *http.Client) (*BedrockImageProvider, error) {
	if cfg.ImageModel == "" {
		return nil, fmt.Errorf("bedrock image model is required")
	}
	client, err := newBedrockClient(ctx, cfg, hc)
	if err != nil {
		return nil, err
	}
	return &BedrockImageProvider{client: client, model: cfg.ImageModel}, nil
}

type novaCanvasRequest struct {
	TaskType              string                `json:"taskType"`
	TextToImageParams     novaTextToImageParams `json:"textToImageParams"`
	ImageGenerationConfig novaGenerationConfig  `json:"imageGenerationConfig"`
}

type novaTextToImageParams struct {
	Text string `json:"text"`
}

type novaGenerationConfig struct {
	NumberOfImages int    `json:"numberOfImages"`
	Quality        string `json:"quality"`
	Height         int    `json:"height"`
	Width          int    `json:"width"`
	Seed           int64  `json:"seed"`
}

type novaCanvasResponse struct {
	Images []string `json:"images"`
	Error  string   `json:"error"`
}

func (p *BedrockImageProvider) GenerateImage(ctx context.Context, req ImageRequest) (*ImageResponse, error) {
	payload, err := json.Marshal(novaCanvasRequest{
		TaskType:          "TEXT_IMAGE",
		TextToImageParams: novaTextToImageParams{Text: req.Prompt},
		ImageGenerationConfig: novaGenerationConfig{
			NumberOfImages: req.NumberOfImages,
			Quality:        req.Quality,
			Height:         req.Height,
			Width:          req.Width,
			Seed:           req.Seed,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal nova canvas request: %w", err)
	}

	raw, err := invokeBedrock(ctx, p.client, p.model, payload)
	if err != nil {
		return nil, err
	}

	var out novaCanvasResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &ErrProviderUnavailable{Err: fmt.Errorf("decode nova canvas envelope: %w", err)}
	}
	if out.Error != "" && len(out.Images) == 0 {
		return nil, &ErrProviderUnavailable{Err: errors.New(out.Error)}
	}

	seed := req.Seed
	return &ImageResponse{
		Images: out.Images,
		Seed:   &seed,
		Model:  p.model,
	}, nil
}

func (p *BedrockImageProvider) ModelID() string {
	return p.model
}
