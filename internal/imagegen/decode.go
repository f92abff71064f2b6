package imagegen

import (
	"encoding/base64"
	"fmt"

	"github.com/abhisek/quizforge/internal/llm"
)

// Result is the structured outcome of an image generation call.
type Result struct {
	// Images are base64-encoded PNGs in provider order.
	Images []string `json:"images"`

	// Seed echoes the seed sent with the request, when the provider
	// supports one.
	Seed *int64 `json:"seed,omitempty"`
}

func decodeResult(resp *llm.ImageResponse) (*Result, error) {
	if resp == nil || len(resp.Images) == 0 {
		return nil, &llm.ErrEmptyResponse{Detail: "no images in response"}
	}
	return &Result{Images: resp.Images, Seed: resp.Seed}, nil
}

// firstImageBytes decodes the first image of r.
func firstImageBytes(r *Result) ([]byte, error) {
	if len(r.Images) == 0 || r.Images[0] == "" {
		return nil, &llm.ErrEmptyResponse{Detail: "first image is empty"}
	}

	data, err := base64.StdEncoding.DecodeString(r.Images[0])
	if err != nil {
		return nil, &llm.ErrInvalidResponse{Err: fmt.Errorf("decode base64 image: %w", err)}
	}
	return data, nil
}
