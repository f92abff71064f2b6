package llm

import "context"

// ImageProvider is the abstraction for image-model interaction.
type ImageProvider interface {
	// GenerateImage sends one generation request and returns the images the
	// provider produced, base64-encoded. A reply without images is not an
	// error at this level; callers classify it.
	GenerateImage(ctx context.Context, req ImageRequest) (*ImageResponse, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// ImageRequest describes a text-to-image generation call.
type ImageRequest struct {
	Prompt         string
	NumberOfImages int
	Width          int
	Height         int

	// Quality is a provider quality tier, e.g. "standard" or "premium".
	Quality string

	// Seed makes generation reproducible on providers that honor it.
	Seed int64
}

// ImageResponse holds the image model's output.
type ImageResponse struct {
	// Images are base64-encoded payloads in provider order.
	Images []string

	// Seed echoes the seed the provider used, when it supports seeding.
	Seed *int64

	Model string
}
