package llm

import (
	"context"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIImageProvider implements ImageProvider with the OpenAI images API.
// Images are requested as b64_json so no second download is needed.
type OpenAIImageProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIImageProvider creates a new OpenAI image provider.
func NewOpenAIImageProvider(cfg OpenAIConfig, hc *http.Client) (*OpenAIImageProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}
	return &OpenAIImageProvider{
		client: newOpenAIClient(cfg, hc),
		model:  cfg.ImageModel,
	}, nil
}

func (p *OpenAIImageProvider) GenerateImage(ctx context.Context, req ImageRequest) (*ImageResponse, error) {
	resp, err := p.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         req.Prompt,
		Model:          p.model,
		N:              req.NumberOfImages,
		Size:           fmt.Sprintf("%dx%d", req.Width, req.Height),
		Quality:        req.Quality,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return nil, mapOpenAIError(err)
	}

	images := make([]string, 0, len(resp.Data))
	for _, d := range resp.Data {
		images = append(images, d.B64JSON)
	}

	// The images API has no seed parameter.
	return &ImageResponse{Images: images, Model: p.model}, nil
}

func (p *OpenAIImageProvider) ModelID() string {
	return p.model
}
