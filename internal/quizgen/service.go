package quizgen

import (
	"context"

	"github.com/abhisek/quizforge/internal/llm"
	"github.com/abhisek/quizforge/internal/logging"
	"github.com/sirupsen/logrus"
)

// Purpose labels quiz generation calls in the event log.
const Purpose = "quiz-content"

// Generator produces quiz content from a Spec.
type Generator interface {
	// Generate makes exactly one model call. Every failure is a
	// *llm.GenerationError.
	Generate(ctx context.Context, spec Spec) (*Content, error)
}

// Service implements Generator on top of a text Provider. It holds no
// per-request state and is safe for concurrent use.
type Service struct {
	provider llm.Provider
	config   Config
}

// NewService creates a Service with the given provider and config.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, config: cfg}
}

// Generate encodes spec, invokes the model once and decodes its answer.
// The returned content is exactly what the model produced; counts and
// weights are not corrected.
func (s *Service) Generate(ctx context.Context, spec Spec) (*Content, error) {
	ctx = llm.WithPurpose(ctx, Purpose)
	log := logging.WithContext(ctx).WithFields(logrus.Fields{
		"title":     spec.Title,
		"types":     len(spec.Types),
		"questions": spec.QuestionsCount,
	})

	req, err := buildRequest(spec, s.config)
	if err != nil {
		log.WithError(err).Warn("rejected quiz request")
		return nil, llm.Wrap(err)
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		log.WithError(err).Error("quiz generation call failed")
		return nil, llm.Wrap(err)
	}

	content, err := decodeContent(resp.Text, spec, s.config)
	if err != nil {
		log.WithError(err).WithField("stop_reason", resp.StopReason).Error("could not decode quiz content")
		return nil, llm.Wrap(err)
	}

	log.WithFields(logrus.Fields{
		"elements": len(content.QuizElements),
		"results":  len(content.QuizResults),
	}).Info("quiz generated")

	return content, nil
}
