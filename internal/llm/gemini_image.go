package llm

import (
	"context"
	"encoding/base64"
	"net/http"

	"google.golang.org/genai"
)

// GeminiImageProvider implements ImageProvider with Imagen models served
// through the Gemini API. Imagen returns raw bytes; they are re-encoded to
// base64 so every image provider hands back the same shape.
type GeminiImageProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiImageProvider creates a new Imagen provider.
func NewGeminiImageProvider(ctx context.Context, cfg GeminiConfig, hc *http.Client) (*GeminiImageProvider, error) {
	client, err := newGeminiClient(ctx, cfg, hc)
	if err != nil {
		return nil, err
	}
	return &GeminiImageProvider{client: client, model: cfg.ImageModel}, nil
}

func (p *GeminiImageProvider) GenerateImage(ctx context.Context, req ImageRequest) (*ImageResponse, error) {
	config := &genai.GenerateImagesConfig{
		NumberOfImages: int32(req.NumberOfImages),
		OutputMIMEType: "image/png",
	}
	if req.Width > 0 && req.Width == req.Height {
		config.AspectRatio = "1:1"
	}

	result, err := p.client.Models.GenerateImages(ctx, p.model, req.Prompt, config)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	images := make([]string, 0, len(result.GeneratedImages))
	for _, gi := range result.GeneratedImages {
		if gi == nil || gi.Image == nil {
			continue
		}
		images = append(images, base64.StdEncoding.EncodeToString(gi.Image.ImageBytes))
	}

	// Seeding is not offered on the Gemini API backend.
	return &ImageResponse{Images: images, Model: p.model}, nil
}

func (p *GeminiImageProvider) ModelID() string {
	return p.model
}
