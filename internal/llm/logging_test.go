package llm

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/abhisek/quizforge/internal/logging"
	"github.com/abhisek/quizforge/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepo struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (f *fakeEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, data)
	return f.err
}

func (f *fakeEventRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}

func (f *fakeEventRepo) GetLLMEvent(context.Context, int) (*store.LLMEvent, error) {
	return nil, nil
}

func (f *fakeEventRepo) LLMUsageByPurpose(context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}

func (f *fakeEventRepo) LLMUsageByModel(context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}

func TestWithLogging_RecordsSuccess(t *testing.T) {
	repo := &fakeEventRepo{}
	mock := NewMockProvider(MockResponse{Text: `{"ok":true}`, Usage: Usage{InputTokens: 3, OutputTokens: 4}})
	p := WithLogging(mock, "mock", repo)

	ctx := logging.WithRequestID(WithPurpose(context.Background(), "quiz-content"), "req-42")
	resp, err := p.Generate(ctx, Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}, MaxTokens: 100})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, resp.Text)

	require.Len(t, repo.events, 1)
	e := repo.events[0]
	assert.Equal(t, store.KindText, e.Kind)
	assert.Equal(t, "mock", e.Provider)
	assert.Equal(t, "quiz-content", e.Purpose)
	assert.Equal(t, "req-42", e.RequestID)
	assert.True(t, e.Success)
	assert.Equal(t, 3, e.InputTokens)
	assert.Equal(t, 4, e.OutputTokens)
	assert.Contains(t, e.RequestBody, "[user]\nhi")
	assert.Equal(t, `{"ok":true}`, e.ResponseBody)
}

func TestWithLogging_RecordsFailureAndPassesErrorThrough(t *testing.T) {
	repo := &fakeEventRepo{}
	cause := &ErrRateLimit{Err: errors.New("429")}
	p := WithLogging(NewMockProvider(MockResponse{Err: cause}), "mock", repo)

	_, err := p.Generate(context.Background(), Request{})
	assert.Same(t, cause, err)

	require.Len(t, repo.events, 1)
	assert.False(t, repo.events[0].Success)
	assert.NotEmpty(t, repo.events[0].ErrorMessage)
	assert.Equal(t, "unknown", repo.events[0].Purpose)
}

func TestWithLogging_RepoFailureDoesNotFailCall(t *testing.T) {
	repo := &fakeEventRepo{err: errors.New("disk full")}
	p := WithLogging(NewMockProvider(MockResponse{Text: "x"}), "mock", repo)

	resp, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "x", resp.Text)
}

func TestWithLogging_NilRepo(t *testing.T) {
	p := WithLogging(NewMockProvider(MockResponse{Text: "x"}), "mock", nil)
	_, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())
}

func TestWithImageLogging_RecordsImageEvent(t *testing.T) {
	repo := &fakeEventRepo{}
	p := WithImageLogging(NewMockImageProvider(MockImageResponse{Images: []string{"aGk="}}), "mock", repo)

	ctx := WithPurpose(context.Background(), "result-image")
	_, err := p.GenerateImage(ctx, ImageRequest{Prompt: "fox", NumberOfImages: 1, Width: 1024, Height: 1024, Seed: 7})
	require.NoError(t, err)

	require.Len(t, repo.events, 1)
	e := repo.events[0]
	assert.Equal(t, store.KindImage, e.Kind)
	assert.Equal(t, "result-image", e.Purpose)
	assert.Contains(t, e.RequestBody, "fox")
	assert.Contains(t, e.RequestBody, "seed=7")
	assert.Contains(t, e.ResponseBody, "images=1")
	assert.NotContains(t, e.ResponseBody, "aGk=")
}
