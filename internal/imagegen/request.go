package imagegen

import (
	"math/rand/v2"
	"strings"

	"github.com/abhisek/quizforge/internal/llm"
)

// Config holds the fixed image generation parameters.
type Config struct {
	NumberOfImages int
	Width          int
	Height         int
	Quality        string

	// MaxSeed is the exclusive upper bound of the per-call random seed.
	// It stays below the largest seed Nova Canvas accepts.
	MaxSeed int64
}

// DefaultConfig returns one standard-quality 1024x1024 image per call.
func DefaultConfig() Config {
	return Config{
		NumberOfImages: 1,
		Width:          1024,
		Height:         1024,
		Quality:        "standard",
		MaxSeed:        858993460,
	}
}

// buildRequest encodes prompt with a fresh seed in [0, MaxSeed).
func buildRequest(prompt string, cfg Config) (llm.ImageRequest, error) {
	if strings.TrimSpace(prompt) == "" {
		return llm.ImageRequest{}, &llm.ErrInvalidRequest{Reason: "image prompt is required"}
	}

	return llm.ImageRequest{
		Prompt:         prompt,
		NumberOfImages: cfg.NumberOfImages,
		Width:          cfg.Width,
		Height:         cfg.Height,
		Quality:        cfg.Quality,
		Seed:           newSeed(cfg.MaxSeed),
	}, nil
}

func newSeed(max int64) int64 {
	if max <= 0 {
		return 0
	}
	return rand.Int64N(max)
}
