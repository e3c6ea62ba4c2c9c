// Package tokencount estimates language-model token counts for compression
// metrics.
//
// The default estimator uses a fixed characters-per-token ratio. The ratio
// is an implementation detail, not a contract; it was sanity-checked against
// the tiktoken cl100k_base encoding, which is also available here as an
// optional exact counter for callers that want calibrated numbers.
package tokencount

import (
	"fmt"
	"math"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultCharsPerToken is the fixed estimation ratio.
const DefaultCharsPerToken = 4.0

// DefaultEncoding is the reference tokenizer encoding used by the exact
// counter.
const DefaultEncoding = "cl100k_base"

// Estimator counts tokens in text.
type Estimator interface {
	Count(text string) int
}

// CharEstimator estimates tokens from character length at a fixed ratio.
type CharEstimator struct {
	CharsPerToken float64
}

// NewCharEstimator returns the default fixed-ratio estimator.
func NewCharEstimator() CharEstimator {
	return CharEstimator{CharsPerToken: DefaultCharsPerToken}
}

// Count returns the estimated token count. Non-empty text always counts as
// at least one token.
func (e CharEstimator) Count(text string) int {
	if len(text) == 0 {
		return 0
	}
	ratio := e.CharsPerToken
	if ratio <= 0 {
		ratio = DefaultCharsPerToken
	}
	n := int(math.Ceil(float64(len(text)) / ratio))
	if n < 1 {
		n = 1
	}
	return n
}

// TiktokenEstimator counts tokens with a reference BPE tokenizer.
type TiktokenEstimator struct {
	enc *tiktoken.Tiktoken
}

// NewTiktokenEstimator loads the named encoding ("cl100k_base" by default).
func NewTiktokenEstimator(encoding string) (*TiktokenEstimator, error) {
	if encoding == "" {
		encoding = DefaultEncoding
	}
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("tokencount: load encoding %q: %w", encoding, err)
	}
	return &TiktokenEstimator{enc: enc}, nil
}

// Count returns the exact token count under the loaded encoding.
func (e *TiktokenEstimator) Count(text string) int {
	return len(e.enc.Encode(text, nil, nil))
}
