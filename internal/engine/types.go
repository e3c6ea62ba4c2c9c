package engine

import (
	"time"

	"github.com/fyrsmithlabs/sempress/internal/encoder"
)

// Metadata keys recorded on results.
const (
	MetaMode           = "mode"
	MetaLanguage       = "language"
	MetaFallbackReason = "fallback_reason"
	MetaDegraded       = "degraded"
	MetaPartialLang    = "partial_language"
)

// Result is the outcome of one encode operation.
type Result struct {
	// Original is the input content as received.
	Original string

	// Kind is the content kind that was encoded.
	Kind encoder.Kind

	// Compressed is the final output. When the no-reduction fallback fired
	// it equals Original verbatim.
	Compressed string

	// NTokens and CTokens are the token counts of the original and final
	// content under the configured estimator.
	NTokens int
	CTokens int

	// FellBack is true when the original was returned verbatim.
	FellBack bool

	// Metadata carries per-operation annotations (detected mode, fallback
	// reason, degradation flags).
	Metadata map[string]string

	// RecordErrors lists per-record failures for structured-data encodes.
	// A non-empty list does not fail the batch.
	RecordErrors []*encoder.RecordError

	// ProcessingTime is the wall time the encode took.
	ProcessingTime time.Duration
}

// CompressionRatio returns the percentage of tokens saved, floored at zero.
// A fallback result always reports exactly 0.
func (r *Result) CompressionRatio() float64 {
	if r.NTokens == 0 {
		return 0
	}
	ratio := (1 - float64(r.CTokens)/float64(r.NTokens)) * 100
	if ratio < 0 {
		return 0
	}
	return ratio
}
