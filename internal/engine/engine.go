package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/fyrsmithlabs/sempress/internal/analyze"
	"github.com/fyrsmithlabs/sempress/internal/config"
	"github.com/fyrsmithlabs/sempress/internal/encoder"
	"github.com/fyrsmithlabs/sempress/internal/logging"
	"github.com/fyrsmithlabs/sempress/internal/resolve"
	"github.com/fyrsmithlabs/sempress/internal/rules"
	"github.com/fyrsmithlabs/sempress/internal/tokencount"
	"github.com/fyrsmithlabs/sempress/internal/vocab"
)

const tracerName = "github.com/fyrsmithlabs/sempress/internal/engine"
const meterName = "encoding"

// Engine orchestrates the encoders behind a single encode surface. It is
// built once per configuration and is safe for concurrent use.
type Engine struct {
	cfg    *config.EncodingConfiguration
	logger *logging.Logger

	vocab      *vocab.Table
	prompt     *encoder.PromptEncoder
	transcript *encoder.TranscriptEncoder
	records    *encoder.RecordsEncoder
	assembler  *encoder.Assembler

	tracer trace.Tracer
	meter  metric.Meter

	// Metrics
	encodeCounter   metric.Int64Counter
	encodeTime      metric.Float64Histogram
	encodeRatio     metric.Float64Histogram
	fallbackCounter metric.Int64Counter
	encodeErrors    metric.Int64Counter
}

// New builds an engine for the given configuration. Unsupported languages
// fail here, before any content is seen.
func New(cfg *config.EncodingConfiguration, logger *logging.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = config.New()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	table, err := vocab.NewTable(cfg.Language, cfg.Vocabulary)
	if err != nil {
		return nil, err
	}
	ruleSet, err := rules.NewSet(cfg.Language, rules.WithOverlay(cfg.Rules))
	if err != nil {
		return nil, err
	}
	analyzer, err := analyze.New(cfg.Language)
	if err != nil {
		return nil, err
	}

	var est tokencount.Estimator
	if cfg.Tokens.Exact {
		est, err = tokencount.NewTiktokenEstimator(cfg.Tokens.Encoding)
		if err != nil {
			return nil, err
		}
	} else {
		est = tokencount.CharEstimator{CharsPerToken: cfg.Tokens.CharsPerToken}
	}

	intents := resolve.NewIntentResolver(table)
	targets := resolve.NewTargetResolver(table)
	attrs := resolve.NewAttributeResolver(ruleSet)

	e := &Engine{
		cfg:        cfg,
		logger:     logger,
		vocab:      table,
		prompt:     encoder.NewPromptEncoder(table, analyzer, intents, targets, attrs, cfg.Prompt),
		transcript: encoder.NewTranscriptEncoder(table, analyzer, cfg.Transcript),
		records:    encoder.NewRecordsEncoder(cfg.Records),
		assembler:  encoder.NewAssembler(est),
		tracer:     otel.Tracer(tracerName),
		meter:      otel.Meter(meterName),
	}

	if err := e.initMetrics(); err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	if table.Partial() {
		logger.Warn("language has partial vocabulary coverage",
			logging.String("language", cfg.Language))
	}

	return e, nil
}

// Encode compresses text content of the given kind. The result never loses
// information relative to the original: when the compressed form fails to
// reduce token count, the original is returned verbatim with ratio zero.
func (e *Engine) Encode(ctx context.Context, text string, kind encoder.Kind) (*Result, error) {
	ctx, span := e.tracer.Start(ctx, "encoding.encode",
		trace.WithAttributes(
			attribute.String("kind", string(kind)),
			attribute.Int("content_length", len(text)),
		),
	)
	defer span.End()

	start := time.Now()

	if len(text) == 0 {
		return nil, fmt.Errorf("content cannot be empty")
	}

	meta := map[string]string{MetaLanguage: e.cfg.Language}
	if e.vocab.Partial() {
		meta[MetaPartialLang] = "true"
	}

	var compressed string
	var err error
	switch kind {
	case encoder.KindPrompt, encoder.KindTaskPrompt, encoder.KindConfigPrompt:
		var mode encoder.Mode
		var degraded bool
		compressed, mode, degraded, err = e.prompt.Encode(ctx, text, kind)
		meta[MetaMode] = string(mode)
		if degraded {
			meta[MetaDegraded] = "true"
		}
	case encoder.KindTranscript:
		compressed, err = e.transcript.Encode(ctx, text)
	case encoder.KindRecords:
		return nil, fmt.Errorf("kind %q requires EncodeRecords", kind)
	default:
		return nil, fmt.Errorf("unsupported content kind %q", kind)
	}
	if err != nil {
		span.RecordError(err)
		e.encodeErrors.Add(ctx, 1,
			metric.WithAttributes(attribute.String("kind", string(kind))))
		return nil, fmt.Errorf("encode failed: %w", err)
	}

	out := e.assembler.Finalize(text, compressed)
	result := e.finish(ctx, span, kind, text, out, meta, start)
	return result, nil
}

// EncodeRecords compresses a batch of uniform structured records under a
// dataset name. Per-record failures are reported on the result, not as an
// error; only batch-level failures return one.
func (e *Engine) EncodeRecords(ctx context.Context, name string, records []map[string]any) (*Result, error) {
	ctx, span := e.tracer.Start(ctx, "encoding.encode_records",
		trace.WithAttributes(
			attribute.String("kind", string(encoder.KindRecords)),
			attribute.Int("record_count", len(records)),
		),
	)
	defer span.End()

	start := time.Now()

	if len(records) == 0 {
		return nil, fmt.Errorf("records cannot be empty")
	}

	// The original form for size comparison is the records' JSON rendering,
	// which is what a caller would otherwise paste into a prompt.
	originalBytes, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("marshal records: %w", err)
	}
	original := string(originalBytes)

	compressed, recErrs, err := e.records.Encode(name, records)
	if err != nil {
		span.RecordError(err)
		e.encodeErrors.Add(ctx, 1,
			metric.WithAttributes(attribute.String("kind", string(encoder.KindRecords))))
		return nil, fmt.Errorf("encode failed: %w", err)
	}
	if len(recErrs) == len(records) {
		return nil, fmt.Errorf("all %d records failed encoding", len(records))
	}

	meta := map[string]string{MetaLanguage: e.cfg.Language}
	out := e.assembler.Finalize(original, compressed)
	result := e.finish(ctx, span, encoder.KindRecords, original, out, meta, start)
	result.RecordErrors = recErrs

	for _, re := range recErrs {
		e.logger.Warn("record skipped",
			logging.String("dataset", name),
			logging.Int("record", re.Index),
			logging.Error(re))
	}
	return result, nil
}

// finish assembles the result and records metrics common to every encode.
func (e *Engine) finish(ctx context.Context, span trace.Span, kind encoder.Kind, original string, out encoder.Output, meta map[string]string, start time.Time) *Result {
	if out.FellBack {
		meta[MetaFallbackReason] = out.FallbackReason
	}

	result := &Result{
		Original:       original,
		Kind:           kind,
		Compressed:     out.Compressed,
		NTokens:        out.NTokens,
		CTokens:        out.CTokens,
		FellBack:       out.FellBack,
		Metadata:       meta,
		ProcessingTime: time.Since(start),
	}

	processingTime := float64(result.ProcessingTime.Microseconds()) / 1e6
	ratio := result.CompressionRatio()

	e.encodeCounter.Add(ctx, 1,
		metric.WithAttributes(attribute.String("kind", string(kind))))
	e.encodeTime.Record(ctx, processingTime,
		metric.WithAttributes(attribute.String("kind", string(kind))))
	e.encodeRatio.Record(ctx, ratio,
		metric.WithAttributes(attribute.String("kind", string(kind))))
	if out.FellBack {
		e.fallbackCounter.Add(ctx, 1,
			metric.WithAttributes(
				attribute.String("kind", string(kind)),
				attribute.String("reason", out.FallbackReason),
			))
	}

	span.SetAttributes(
		attribute.Float64("processing_time_s", processingTime),
		attribute.Float64("compression_ratio", ratio),
		attribute.Int("original_tokens", result.NTokens),
		attribute.Int("compressed_tokens", result.CTokens),
		attribute.Bool("fell_back", result.FellBack),
	)

	e.logger.Debug("encoded content",
		logging.String("kind", string(kind)),
		logging.Int("n_tokens", result.NTokens),
		logging.Int("c_tokens", result.CTokens),
		logging.String("ratio", strconv.FormatFloat(ratio, 'f', 1, 64)),
		logging.Bool("fell_back", result.FellBack))

	return result
}

// Language returns the engine's configured language code.
func (e *Engine) Language() string { return e.cfg.Language }

// initMetrics initializes OpenTelemetry metrics.
func (e *Engine) initMetrics() error {
	var err error

	e.encodeCounter, err = e.meter.Int64Counter(
		"encoding.operations_total",
		metric.WithDescription("Total number of encode operations"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create encode counter: %w", err)
	}

	e.encodeTime, err = e.meter.Float64Histogram(
		"encoding.duration_seconds",
		metric.WithDescription("Time spent on encode operations"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5),
	)
	if err != nil {
		return fmt.Errorf("failed to create encode time histogram: %w", err)
	}

	e.encodeRatio, err = e.meter.Float64Histogram(
		"encoding.compression_ratio_percent",
		metric.WithDescription("Token reduction percentage achieved"),
		metric.WithUnit("%"),
		metric.WithExplicitBucketBoundaries(0, 10, 25, 50, 70, 80, 90, 95),
	)
	if err != nil {
		return fmt.Errorf("failed to create encode ratio histogram: %w", err)
	}

	e.fallbackCounter, err = e.meter.Int64Counter(
		"encoding.fallbacks_total",
		metric.WithDescription("Total number of no-reduction fallbacks"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create fallback counter: %w", err)
	}

	e.encodeErrors, err = e.meter.Int64Counter(
		"encoding.errors_total",
		metric.WithDescription("Total number of encode errors"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create encode errors counter: %w", err)
	}

	return nil
}
