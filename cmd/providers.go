package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/quizforge/internal/imagegen"
	"github.com/abhisek/quizforge/internal/llm"
	"github.com/abhisek/quizforge/internal/quizgen"
	"github.com/abhisek/quizforge/internal/store"
)

// newQuizService builds the quiz pipeline from the environment, logging
// model calls into repo.
func newQuizService(ctx context.Context, repo store.EventRepo, quizCfg quizgen.Config) (*quizgen.Service, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.ValidateText(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	text, err := llm.NewTextProvider(ctx, cfg, repo)
	if err != nil {
		return nil, err
	}
	return quizgen.NewService(text, quizCfg), nil
}

// newImageService builds the image pipeline from the environment.
func newImageService(ctx context.Context, repo store.EventRepo) (*imagegen.Service, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.ValidateImage(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	image, err := llm.NewImageProvider(ctx, cfg, repo)
	if err != nil {
		return nil, err
	}
	return imagegen.NewService(image, imagegen.DefaultConfig()), nil
}
