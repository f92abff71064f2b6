package llm

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRequest indicates caller input failed basic shape checks
// before any model call was attempted.
type ErrInvalidRequest struct {
	Reason string
}

func (e *ErrInvalidRequest) Error() string {
	return fmt.Sprintf("invalid request: %s", e.Reason)
}

// ErrRateLimit indicates the provider throttled the request.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down, unreachable, or
// answered with a non-success status or an unreadable envelope.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrEmptyResponse indicates the provider returned a well-formed envelope
// that carries no usable content.
type ErrEmptyResponse struct {
	Detail string
}

func (e *ErrEmptyResponse) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("empty model output: %s", e.Detail)
	}
	return "empty model output"
}

// ErrInvalidResponse indicates the model returned content that could not
// be decoded into the expected structure.
type ErrInvalidResponse struct {
	Content string
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// Kind classifies a generation failure.
type Kind int

const (
	// KindExternalService covers transport and provider failures,
	// including throttling and cancellation.
	KindExternalService Kind = iota
	KindInvalidRequest
	KindEmptyOutput
	KindInvalidOutput
)

func (k Kind) String() string {
	switch k {
	case KindInvalidRequest:
		return "invalid_request"
	case KindEmptyOutput:
		return "empty_model_output"
	case KindInvalidOutput:
		return "invalid_model_output"
	default:
		return "external_service_failure"
	}
}

// GenerationError is the single error type returned by the generation
// services. It carries the failure kind and the cause message but not the
// underlying error chain.
type GenerationError struct {
	Kind    Kind
	Message string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed: %s", e.Message)
}

// KindOf classifies err. Anything not recognised is an external service
// failure.
func KindOf(err error) Kind {
	var gen *GenerationError
	if errors.As(err, &gen) {
		return gen.Kind
	}
	var invReq *ErrInvalidRequest
	if errors.As(err, &invReq) {
		return KindInvalidRequest
	}
	var empty *ErrEmptyResponse
	if errors.As(err, &empty) {
		return KindEmptyOutput
	}
	var invResp *ErrInvalidResponse
	if errors.As(err, &invResp) {
		return KindInvalidOutput
	}
	return KindExternalService
}

// Wrap converts err into a *GenerationError. nil stays nil and an existing
// GenerationError is returned as is.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	var gen *GenerationError
	if errors.As(err, &gen) {
		return gen
	}
	return &GenerationError{Kind: KindOf(err), Message: err.Error()}
}
