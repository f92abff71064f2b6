package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"invalid request", &ErrInvalidRequest{Reason: "title is required"}, KindInvalidRequest},
		{"rate limit", &ErrRateLimit{Err: errors.New("429")}, KindExternalService},
		{"unavailable", &ErrProviderUnavailable{Err: errors.New("503")}, KindExternalService},
		{"empty", &ErrEmptyResponse{}, KindEmptyOutput},
		{"invalid output", &ErrInvalidResponse{Err: errors.New("bad json")}, KindInvalidOutput},
		{"wrapped empty", fmt.Errorf("decode: %w", &ErrEmptyResponse{}), KindEmptyOutput},
		{"cancelled", context.Canceled, KindExternalService},
		{"plain", errors.New("boom"), KindExternalService},
		{"generation error", &GenerationError{Kind: KindInvalidOutput, Message: "x"}, KindInvalidOutput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap(nil))

	err := Wrap(&ErrEmptyResponse{Detail: "no text"})
	var gen *GenerationError
	require.ErrorAs(t, err, &gen)
	assert.Equal(t, KindEmptyOutput, gen.Kind)
	assert.Contains(t, gen.Message, "no text")

	// Wrapping twice keeps the original classification.
	again := Wrap(fmt.Errorf("outer: %w", err))
	require.ErrorAs(t, again, &gen)
	assert.Equal(t, KindEmptyOutput, gen.Kind)
}

func TestWrap_HidesCauseChain(t *testing.T) {
	cause := &ErrRateLimit{Err: errors.New("throttled")}
	err := Wrap(cause)

	var rl *ErrRateLimit
	assert.False(t, errors.As(err, &rl))
	assert.Equal(t, KindExternalService, KindOf(err))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "invalid_request", KindInvalidRequest.String())
	assert.Equal(t, "external_service_failure", KindExternalService.String())
	assert.Equal(t, "empty_model_output", KindEmptyOutput.String())
	assert.Equal(t, "invalid_model_output", KindInvalidOutput.String())
}
