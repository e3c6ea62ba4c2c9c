package encoder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fyrsmithlabs/sempress/internal/tokencount"
)

func TestAssembler_ReducedOutputPasses(t *testing.T) {
	a := NewAssembler(tokencount.NewCharEstimator())
	original := strings.Repeat("the same long sentence over and over ", 10)
	compressed := "[REQ:LIST] [TARGET:ITEMS]"

	out := a.Finalize(original, compressed)
	assert.False(t, out.FellBack)
	assert.Equal(t, compressed, out.Compressed)
	assert.Less(t, out.CTokens, out.NTokens)
}

func TestAssembler_NoReductionFallsBack(t *testing.T) {
	a := NewAssembler(tokencount.NewCharEstimator())
	original := "short"
	compressed := "[REQ:SOMETHING] [TARGET:LONGER_THAN_ORIGINAL]"

	out := a.Finalize(original, compressed)
	assert.True(t, out.FellBack)
	assert.Equal(t, FallbackNoReduction, out.FallbackReason)
	assert.Equal(t, original, out.Compressed, "fallback returns the original verbatim")
	assert.Equal(t, out.NTokens, out.CTokens, "fallback ratio computes to exactly zero")
}

func TestAssembler_EmptyCompressedFallsBack(t *testing.T) {
	a := NewAssembler(tokencount.NewCharEstimator())
	out := a.Finalize("some original content", "   \n  ")
	assert.True(t, out.FellBack)
	assert.Equal(t, "some original content", out.Compressed)
}

func TestAssembler_NormalizesWhitespace(t *testing.T) {
	a := NewAssembler(tokencount.NewCharEstimator())
	original := strings.Repeat("words words words ", 20)

	out := a.Finalize(original, "[REQ:LIST]   [TARGET:ITEMS]  \n\n\n\n[OUT:JSON]")
	assert.False(t, out.FellBack)
	assert.Equal(t, "[REQ:LIST] [TARGET:ITEMS]\n\n[OUT:JSON]", out.Compressed)
}

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct{ in, want string }{
		{"a  b\tc", "a b c"},
		{"line  \nnext", "line\nnext"},
		{"a\n\n\n\nb", "a\n\nb"},
		{"  trimmed  ", "trimmed"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeWhitespace(tt.in), "input %q", tt.in)
	}
}
