package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/sempress/internal/config"
	"github.com/fyrsmithlabs/sempress/internal/encoder"
	"github.com/fyrsmithlabs/sempress/internal/logging"
)

func newTestEngine(t *testing.T, cfg *config.EncodingConfiguration) *Engine {
	t.Helper()
	eng, err := New(cfg, logging.NewNop())
	require.NoError(t, err)
	return eng
}

func TestNew_UnsupportedLanguageFailsFast(t *testing.T) {
	cfg := config.New()
	cfg.Language = "fr"
	_, err := New(cfg, logging.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fr")
}

func TestEngine_EncodePrompt(t *testing.T) {
	eng := newTestEngine(t, nil)

	result, err := eng.Encode(context.Background(),
		"List the top 5 issues mentioned across all of the available customer transcripts", encoder.KindPrompt)
	require.NoError(t, err)

	assert.False(t, result.FellBack)
	assert.Contains(t, result.Compressed, "[REQ:LIST]")
	assert.Contains(t, result.Compressed, "LIMIT=5")
	assert.Greater(t, result.CompressionRatio(), 0.0)
	assert.Less(t, result.CTokens, result.NTokens)
	assert.Equal(t, string(encoder.ModeTask), result.Metadata[MetaMode])
}

func TestEngine_Deterministic(t *testing.T) {
	eng := newTestEngine(t, nil)
	text := "Analyze the transcript and match it to the NBA catalog, ranking by relevance, return JSON array of ids, empty if none match"

	first, err := eng.Encode(context.Background(), text, encoder.KindPrompt)
	require.NoError(t, err)
	second, err := eng.Encode(context.Background(), text, encoder.KindPrompt)
	require.NoError(t, err)

	assert.Equal(t, first.Compressed, second.Compressed)
	assert.Equal(t, first.CTokens, second.CTokens)
}

func TestEngine_NoReductionFallback(t *testing.T) {
	eng := newTestEngine(t, nil)

	result, err := eng.Encode(context.Background(), "hi there", encoder.KindPrompt)
	require.NoError(t, err)

	assert.True(t, result.FellBack)
	assert.Equal(t, "hi there", result.Compressed)
	assert.Equal(t, 0.0, result.CompressionRatio())
	assert.Equal(t, encoder.FallbackNoReduction, result.Metadata[MetaFallbackReason])
}

func TestEngine_EmptyContent(t *testing.T) {
	eng := newTestEngine(t, nil)
	_, err := eng.Encode(context.Background(), "", encoder.KindPrompt)
	require.Error(t, err)
}

func TestEngine_RecordsKindRejectedOnEncode(t *testing.T) {
	eng := newTestEngine(t, nil)
	_, err := eng.Encode(context.Background(), "x", encoder.KindRecords)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EncodeRecords")
}

func TestEngine_EncodeRecords(t *testing.T) {
	cfg := config.New()
	cfg.Records.Required = []string{"id"}
	eng := newTestEngine(t, cfg)

	records := []map[string]any{
		{"id": "1", "name": "Alpha", "description": "a long descriptive text field that scores low and is dropped from the compact output"},
		{"id": "2", "name": "Beta", "description": "another long descriptive text field that scores low and is dropped from the output"},
		{"name": "NoID"},
	}

	result, err := eng.EncodeRecords(context.Background(), "items", records)
	require.NoError(t, err)

	assert.Contains(t, result.Compressed, "[DATA:items:2]")
	assert.NotContains(t, result.Compressed, "NoID")
	require.Len(t, result.RecordErrors, 1)
	assert.Equal(t, 2, result.RecordErrors[0].Index)
	assert.Greater(t, result.CompressionRatio(), 0.0)
}

func TestEngine_EncodeRecordsAllFailed(t *testing.T) {
	cfg := config.New()
	cfg.Records.Required = []string{"id"}
	eng := newTestEngine(t, cfg)

	_, err := eng.EncodeRecords(context.Background(), "items", []map[string]any{
		{"name": "a"}, {"name": "b"},
	})
	require.Error(t, err)
}

func TestEngine_TranscriptKind(t *testing.T) {
	eng := newTestEngine(t, nil)

	result, err := eng.Encode(context.Background(),
		"Agent: Hello, thanks for calling.\nCustomer: I was charged twice, this is unacceptable!\nAgent: I have processed your refund, reference number R-10. It will arrive within 3-5 business days.\nCustomer: Thank you, I appreciate it.",
		encoder.KindTranscript)
	require.NoError(t, err)

	assert.Contains(t, result.Compressed, "[ISSUE:BILLING_DISPUTE")
	assert.Contains(t, result.Compressed, "[SENTIMENT:ANGRY→SATISFIED]")
	assert.Greater(t, result.CompressionRatio(), 0.0)
}

func TestResult_CompressionRatioFloorsAtZero(t *testing.T) {
	r := &Result{NTokens: 10, CTokens: 12}
	assert.Equal(t, 0.0, r.CompressionRatio())

	r = &Result{NTokens: 100, CTokens: 25}
	assert.InDelta(t, 75.0, r.CompressionRatio(), 0.001)

	r = &Result{}
	assert.Equal(t, 0.0, r.CompressionRatio())
}
