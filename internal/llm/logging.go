package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/quizforge/internal/logging"
	"github.com/abhisek/quizforge/internal/store"
	"github.com/sirupsen/logrus"
)

// LoggingProvider is a decorator that records every text invocation as an
// event and a log line.
type LoggingProvider struct {
	inner     Provider
	name      string
	eventRepo store.EventRepo
}

// WithLogging wraps a Provider with event logging. repo may be nil, in
// which case only log lines are written.
func WithLogging(p Provider, name string, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, name: name, eventRepo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)
	latencyMs := time.Since(start).Milliseconds()

	data := store.LLMRequestEventData{
		RequestID:   logging.RequestIDFrom(ctx),
		Kind:        store.KindText,
		Provider:    l.name,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   latencyMs,
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			data.Model = resp.Model
		}
		data.ResponseBody = resp.Text
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	record(ctx, l.eventRepo, data)
	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// LoggingImageProvider is the ImageProvider counterpart of LoggingProvider.
// Image payloads are not stored; only their count and sizes are.
type LoggingImageProvider struct {
	inner     ImageProvider
	name      string
	eventRepo store.EventRepo
}

// WithImageLogging wraps an ImageProvider with event logging.
func WithImageLogging(p ImageProvider, name string, repo store.EventRepo) ImageProvider {
	return &LoggingImageProvider{inner: p, name: name, eventRepo: repo}
}

func (l *LoggingImageProvider) GenerateImage(ctx context.Context, req ImageRequest) (*ImageResponse, error) {
	start := time.Now()
	resp, err := l.inner.GenerateImage(ctx, req)
	latencyMs := time.Since(start).Milliseconds()

	data := store.LLMRequestEventData{
		RequestID: logging.RequestIDFrom(ctx),
		Kind:      store.KindImage,
		Provider:  l.name,
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: latencyMs,
		Success:   err == nil,
		RequestBody: fmt.Sprintf("[prompt]\n%s\n\n[params]\nimages=%d size=%dx%d quality=%s seed=%d",
			req.Prompt, req.NumberOfImages, req.Width, req.Height, req.Quality, req.Seed),
	}
	if resp != nil {
		data.ResponseBody = summarizeImages(resp)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	record(ctx, l.eventRepo, data)
	return resp, err
}

func (l *LoggingImageProvider) ModelID() string {
	return l.inner.ModelID()
}

// record writes the event and a log line. A failed write never fails the
// invocation.
func record(ctx context.Context, repo store.EventRepo, data store.LLMRequestEventData) {
	log := logging.WithContext(ctx).WithFields(logrus.Fields{
		"provider":   data.Provider,
		"model":      data.Model,
		"purpose":    data.Purpose,
		"kind":       data.Kind,
		"latency_ms": data.LatencyMs,
	})

	if data.Success {
		log.WithField("output_tokens", data.OutputTokens).Info("model invocation succeeded")
	} else {
		log.WithField("error", data.ErrorMessage).Warn("model invocation failed")
	}

	if repo == nil {
		return
	}
	if err := repo.AppendLLMRequest(ctx, data); err != nil {
		log.WithError(err).Warn("failed to record model invocation event")
	}
}

// serializeRequest builds a readable representation of a text request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n", m.Role)
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "[params]\nmax_tokens=%d temperature=%.2f\n", req.MaxTokens, req.Temperature)
	return b.String()
}

func summarizeImages(resp *ImageResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "images=%d", len(resp.Images))
	for i, img := range resp.Images {
		fmt.Fprintf(&b, "\n[%d] %d base64 chars", i, len(img))
	}
	if resp.Seed != nil {
		fmt.Fprintf(&b, "\nseed=%d", *resp.Seed)
	}
	return b.String()
}
