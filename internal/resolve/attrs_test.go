package resolve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/sempress/internal/rules"
)

func newEnglishAttributeResolver(t *testing.T) *AttributeResolver {
	t.Helper()
	set, err := rules.NewSet("en")
	require.NoError(t, err)
	return NewAttributeResolver(set)
}

func attrValue(attrs []Attr, key string) (string, bool) {
	for _, a := range attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

func TestAttributeResolver_ContextAttributes(t *testing.T) {
	r := newEnglishAttributeResolver(t)

	got := r.Resolve(context.Background(), "list the top 5 issues ranked by severity, highest first")
	assert.False(t, got.Degraded)

	v, ok := attrValue(got.Context, "LIMIT")
	require.True(t, ok)
	assert.Equal(t, "5", v)

	v, ok = attrValue(got.Context, "SORT_BY")
	require.True(t, ok)
	assert.Equal(t, "SEVERITY", v, "alphabetic values are canonicalized to upper case")

	v, ok = attrValue(got.Context, "SORT")
	require.True(t, ok)
	assert.Equal(t, "DESC", v)
}

func TestAttributeResolver_ToneRoutesToOutput(t *testing.T) {
	r := newEnglishAttributeResolver(t)

	got := r.Resolve(context.Background(), "write the reply in a formal tone within 30 minutes")

	v, ok := attrValue(got.Output, "TONE")
	require.True(t, ok)
	assert.Equal(t, "FORMAL", v)

	v, ok = attrValue(got.Context, "DUR")
	require.True(t, ok)
	assert.Equal(t, "30m", v, "unit-suffixed numerics stay untouched")
}

func TestAttributeResolver_NoMatches(t *testing.T) {
	r := newEnglishAttributeResolver(t)
	got := r.Resolve(context.Background(), "nothing interesting here")
	assert.Empty(t, got.Context)
	assert.Empty(t, got.Output)
}
