package imagegen

import (
	"context"

	"github.com/abhisek/quizforge/internal/llm"
	"github.com/abhisek/quizforge/internal/logging"
)

// Purpose labels image generation calls in the event log.
const Purpose = "result-image"

// Generator produces illustrations from a free-text prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (*Result, error)
	GenerateBinary(ctx context.Context, prompt string) ([]byte, error)
}

// Service implements Generator on top of an ImageProvider.
type Service struct {
	provider llm.ImageProvider
	config   Config
}

// NewService creates a Service with the given provider and config.
func NewService(provider llm.ImageProvider, cfg Config) *Service {
	return &Service{provider: provider, config: cfg}
}

// Generate makes one image call with a fresh random seed and returns the
// base64 images.
func (s *Service) Generate(ctx context.Context, prompt string) (*Result, error) {
	ctx = llm.WithPurpose(ctx, Purpose)
	log := logging.WithContext(ctx)

	req, err := buildRequest(prompt, s.config)
	if err != nil {
		return nil, llm.Wrap(err)
	}

	resp, err := s.provider.GenerateImage(ctx, req)
	if err != nil {
		log.WithError(err).Error("image generation call failed")
		return nil, llm.Wrap(err)
	}

	result, err := decodeResult(resp)
	if err != nil {
		log.WithError(err).Error("image response has no images")
		return nil, llm.Wrap(err)
	}

	log.WithField("images", len(result.Images)).WithField("seed", req.Seed).Info("image generated")
	return result, nil
}

// GenerateBinary is Generate followed by base64 decoding of the first
// image.
func (s *Service) GenerateBinary(ctx context.Context, prompt string) ([]byte, error) {
	result, err := s.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	data, err := firstImageBytes(result)
	if err != nil {
		logging.WithContext(ctx).WithError(err).Error("could not decode image")
		return nil, llm.Wrap(err)
	}
	return data, nil
}
