package encoder

import (
	"github.com/fyrsmithlabs/sempress/internal/tokencount"
)

// FallbackNoReduction is the metadata reason recorded when the assembler
// discards a compressed form that failed to reduce size.
const FallbackNoReduction = "no_reduction"

// Output is the assembler's finalized result for one encode call.
type Output struct {
	// Compressed is the final content: the encoder's output, or the
	// original verbatim when the fallback fired.
	Compressed string
	// NTokens and CTokens are the estimated token counts of the original
	// and final content.
	NTokens int
	CTokens int
	// FellBack is true when the original was returned verbatim.
	FellBack bool
	// FallbackReason is set when FellBack is true.
	FallbackReason string
}

// Assembler normalizes encoder output, estimates token counts, and enforces
// the no-regression fallback. Every encoder's output routes through Finalize
// before it reaches a caller; this is a hard contract, not a heuristic.
type Assembler struct {
	est tokencount.Estimator
}

// NewAssembler builds an assembler over the given estimator.
func NewAssembler(est tokencount.Estimator) *Assembler {
	return &Assembler{est: est}
}

// Finalize applies whitespace normalization and the fallback rule: if the
// compressed form is not strictly smaller than the original, the original is
// returned verbatim and the ratio later computes to exactly zero.
func (a *Assembler) Finalize(original, compressed string) Output {
	compressed = NormalizeWhitespace(compressed)
	nTokens := a.est.Count(original)

	if len(compressed) >= len(original) || compressed == "" {
		return Output{
			Compressed:     original,
			NTokens:        nTokens,
			CTokens:        nTokens,
			FellBack:       true,
			FallbackReason: FallbackNoReduction,
		}
	}

	cTokens := a.est.Count(compressed)
	if cTokens > nTokens {
		// Possible with an exact tokenizer: fewer bytes, more tokens.
		return Output{
			Compressed:     original,
			NTokens:        nTokens,
			CTokens:        nTokens,
			FellBack:       true,
			FallbackReason: FallbackNoReduction,
		}
	}

	return Output{
		Compressed: compressed,
		NTokens:    nTokens,
		CTokens:    cTokens,
	}
}
