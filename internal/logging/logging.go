// Package logging owns the process-wide logrus logger and the request id
// carried through contexts.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var base = newLogger(os.Stderr)

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// Options configures the shared logger.
type Options struct {
	Level  string // logrus level name; default "info"
	Format string // "text" or "json"; default "text"
	Output io.Writer
}

// Configure applies opts to the shared logger.
func Configure(opts Options) error {
	if opts.Output != nil {
		base.SetOutput(opts.Output)
	}

	if opts.Level != "" {
		lvl, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return fmt.Errorf("parse log level: %w", err)
		}
		base.SetLevel(lvl)
	}

	switch strings.ToLower(opts.Format) {
	case "", "text":
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		base.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", opts.Format)
	}
	return nil
}

// Logger returns the shared logger.
func Logger() *logrus.Logger {
	return base
}

type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID attaches a request id to ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// NewRequestID attaches a freshly generated request id to ctx.
func NewRequestID(ctx context.Context) context.Context {
	return WithRequestID(ctx, uuid.NewString())
}

// RequestIDFrom returns the request id on ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// WithContext returns a logger annotated with the request id on ctx.
func WithContext(ctx context.Context) logrus.FieldLogger {
	if id := RequestIDFrom(ctx); id != "" {
		return base.WithField("request_id", id)
	}
	return base
}
