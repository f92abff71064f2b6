package imagegen

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/abhisek/quizforge/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireKind(t *testing.T, err error, want llm.Kind) {
	t.Helper()
	var gen *llm.GenerationError
	require.ErrorAs(t, err, &gen)
	assert.Equal(t, want, gen.Kind, "error: %v", err)
}

func TestGenerateBinary_CalmForestSpirit(t *testing.T) {
	raw := []byte("\x89PNG\r\n\x1a\nfake-image-bytes")
	encoded := base64.StdEncoding.EncodeToString(raw)

	mock := llm.NewMockImageProvider(llm.MockImageResponse{Images: []string{encoded}})
	svc := NewService(mock, DefaultConfig())

	data, err := svc.GenerateBinary(context.Background(), "a calm forest spirit")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, raw, data)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Equal(t, "a calm forest spirit", req.Prompt)
	assert.Equal(t, 1, req.NumberOfImages)
	assert.Equal(t, 1024, req.Width)
	assert.Equal(t, 1024, req.Height)
	assert.Equal(t, "standard", req.Quality)
}

func TestGenerate_ReturnsAllImagesAndSeed(t *testing.T) {
	mock := llm.NewMockImageProvider(llm.MockImageResponse{Images: []string{"YQ==", "Yg=="}})
	svc := NewService(mock, DefaultConfig())

	res, err := svc.Generate(context.Background(), "fox")
	require.NoError(t, err)
	assert.Equal(t, []string{"YQ==", "Yg=="}, res.Images)
	require.NotNil(t, res.Seed)
	assert.Equal(t, mock.Calls[0].Seed, *res.Seed)
}

func TestGenerateBinary_UsesFirstImage(t *testing.T) {
	mock := llm.NewMockImageProvider(llm.MockImageResponse{Images: []string{"Zmlyc3Q=", "!!not-base64!!"}})

	data, err := NewService(mock, DefaultConfig()).GenerateBinary(context.Background(), "fox")
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
}

func TestGenerate_NoImages(t *testing.T) {
	mock := llm.NewMockImageProvider(llm.MockImageResponse{Images: nil})
	_, err := NewService(mock, DefaultConfig()).Generate(context.Background(), "fox")
	requireKind(t, err, llm.KindEmptyOutput)

	mock = llm.NewMockImageProvider(llm.MockImageResponse{Images: []string{}})
	_, err = NewService(mock, DefaultConfig()).GenerateBinary(context.Background(), "fox")
	requireKind(t, err, llm.KindEmptyOutput)
}

func TestGenerateBinary_EmptyFirstImage(t *testing.T) {
	mock := llm.NewMockImageProvider(llm.MockImageResponse{Images: []string{""}})
	_, err := NewService(mock, DefaultConfig()).GenerateBinary(context.Background(), "fox")
	requireKind(t, err, llm.KindEmptyOutput)
}

func TestGenerateBinary_InvalidBase64(t *testing.T) {
	mock := llm.NewMockImageProvider(llm.MockImageResponse{Images: []string{"not base64 at all!"}})
	_, err := NewService(mock, DefaultConfig()).GenerateBinary(context.Background(), "fox")
	requireKind(t, err, llm.KindInvalidOutput)
}

func TestGenerate_BlankPromptMakesNoCall(t *testing.T) {
	mock := llm.NewMockImageProvider(llm.MockImageResponse{Images: []string{"YQ=="}})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), "   ")
	requireKind(t, err, llm.KindInvalidRequest)
	assert.Equal(t, 0, mock.CallCount())
}

func TestGenerate_ProviderFailure(t *testing.T) {
	mock := llm.NewMockImageProvider(llm.MockImageResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("500")}})
	_, err := NewService(mock, DefaultConfig()).GenerateBinary(context.Background(), "fox")
	requireKind(t, err, llm.KindExternalService)
	assert.Equal(t, 1, mock.CallCount())
}

func TestBuildRequest_SeedRange(t *testing.T) {
	cfg := DefaultConfig()
	seen := map[int64]bool{}

	for i := 0; i < 200; i++ {
		req, err := buildRequest("same prompt", cfg)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, req.Seed, int64(0))
		assert.Less(t, req.Seed, cfg.MaxSeed)
		seen[req.Seed] = true
	}

	// 200 draws from ~8.6e8 values colliding into one is effectively impossible.
	assert.Greater(t, len(seen), 1)
}

func TestNewSeed_NonPositiveMax(t *testing.T) {
	assert.Equal(t, int64(0), newSeed(0))
	assert.Equal(t, int64(0), newSeed(-5))
}
