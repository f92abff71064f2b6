// Package server exposes quiz and image generation over HTTP.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/quizforge/internal/imagegen"
	"github.com/abhisek/quizforge/internal/logging"
	"github.com/abhisek/quizforge/internal/quizgen"
)

// Options configures the router.
type Options struct {
	// MaxInFlight caps concurrent requests. 0 means unlimited.
	MaxInFlight int
}

// New returns the HTTP handler for the service.
func New(quizzes quizgen.Generator, images imagegen.Generator, opts Options) http.Handler {
	h := &handler{quizzes: quizzes, images: images}

	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.health)

	r.Route("/api", func(r chi.Router) {
		if opts.MaxInFlight > 0 {
			r.Use(middleware.Throttle(opts.MaxInFlight))
		}
		r.Post("/quizzes", h.createQuiz)
		r.Post("/image", h.createImage)
	})

	return r
}

const requestIDHeader = "X-Request-Id"

// requestID attaches a request id (the caller's, or a new uuid) to the
// context and echoes it in the response.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(logging.WithRequestID(r.Context(), id)))
	})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		logging.WithContext(r.Context()).WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      ww.Status(),
			"bytes":       ww.BytesWritten(),
			"duration_ms": time.Since(start).Milliseconds(),
			"remote":      r.RemoteAddr,
		}).Info("request served")
	})
}
