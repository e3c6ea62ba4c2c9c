package tokencount

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharEstimator_Count(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		text  string
		want  int
	}{
		{"empty", 4.0, "", 0},
		{"single char rounds up", 4.0, "a", 1},
		{"exact multiple", 4.0, "abcdefgh", 2},
		{"rounds up", 4.0, "abcdefghi", 3},
		{"zero ratio falls back to default", 0, "abcdefgh", 2},
		{"custom ratio", 2.0, "abcdefgh", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := CharEstimator{CharsPerToken: tt.ratio}
			assert.Equal(t, tt.want, e.Count(tt.text))
		})
	}
}

func TestNewCharEstimator(t *testing.T) {
	e := NewCharEstimator()
	assert.Equal(t, DefaultCharsPerToken, e.CharsPerToken)
}
