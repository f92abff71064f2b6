package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLogger(t *testing.T) {
	t.Cleanup(func() { base = newLogger(os.Stderr) })
}

func TestConfigure_JSONWithRequestID(t *testing.T) {
	resetLogger(t)

	var buf bytes.Buffer
	require.NoError(t, Configure(Options{Level: "debug", Format: "json", Output: &buf}))

	ctx := WithRequestID(context.Background(), "req-1")
	WithContext(ctx).WithField("purpose", "quiz-content").Debug("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "quiz-content", entry["purpose"])
	assert.Equal(t, "debug", entry["level"])
}

func TestConfigure_LevelFilters(t *testing.T) {
	resetLogger(t)

	var buf bytes.Buffer
	require.NoError(t, Configure(Options{Level: "warn", Output: &buf}))

	Logger().Info("dropped")
	assert.Empty(t, buf.String())
	assert.Equal(t, logrus.WarnLevel, Logger().GetLevel())
}

func TestConfigure_Errors(t *testing.T) {
	resetLogger(t)

	assert.Error(t, Configure(Options{Level: "loud"}))
	assert.Error(t, Configure(Options{Format: "xml"}))
}

func TestRequestID(t *testing.T) {
	assert.Empty(t, RequestIDFrom(context.Background()))

	ctx := NewRequestID(context.Background())
	id := RequestIDFrom(ctx)
	assert.Len(t, id, 36)

	_, isLogger := WithContext(context.Background()).(*logrus.Logger)
	assert.True(t, isLogger)
	_, isEntry := WithContext(ctx).(*logrus.Entry)
	assert.True(t, isEntry)
}
