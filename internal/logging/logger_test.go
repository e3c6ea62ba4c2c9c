package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Defaults(t *testing.T) {
	logger, err := NewLogger(nil)
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.Equal(t, zapcore.InfoLevel, logger.config.Level)
	assert.Equal(t, "json", logger.config.Format)
}

func TestNewLogger_InvalidFormat(t *testing.T) {
	_, err := NewLogger(&Config{Format: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format must be json or console")
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, NewDefaultConfig().Validate())
	assert.NoError(t, (&Config{Format: "console"}).Validate())
	assert.NoError(t, (&Config{}).Validate())

	assert.Error(t, (&Config{Caller: CallerConfig{Skip: -1}}).Validate())
}

func TestTestLogger_ObservesEntries(t *testing.T) {
	tl := NewTestLogger()

	tl.Info("encode started", String("kind", "prompt"))
	tl.Warn("record skipped", Int("record", 3))

	require.Len(t, tl.All(), 2)

	entries := tl.FilterMessage("record skipped").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, int64(3), entries[0].ContextMap()["record"])
}

func TestLogger_WithAndNamed(t *testing.T) {
	tl := NewTestLogger()

	tl.With(String("dataset", "products")).Info("fields selected")

	entries := tl.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "products", entries[0].ContextMap()["dataset"])
}

func TestLogger_CtxAddsRequestID(t *testing.T) {
	tl := NewTestLogger()

	ctx := WithRequestID(context.Background(), "req-42")
	tl.Ctx(ctx).Info("handled")

	entries := tl.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-42", entries[0].ContextMap()["request.id"])
}

func TestRequestIDRoundTrip(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))

	ctx := WithRequestID(context.Background(), "abc")
	assert.Equal(t, "abc", RequestIDFromContext(ctx))
}
