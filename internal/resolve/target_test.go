package resolve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/sempress/internal/vocab"
)

func newEnglishTargetResolver(t *testing.T) *TargetResolver {
	t.Helper()
	table, err := vocab.NewTable("en", nil)
	require.NoError(t, err)
	return NewTargetResolver(table)
}

func TestTargetResolver_FlowWithCatalogAndOutputElement(t *testing.T) {
	r := newEnglishTargetResolver(t)
	text := "Analyze the transcript and match it to the NBA catalog, ranking by relevance, return JSON array of ids, empty if none match"

	res := r.Resolve(context.Background(), text, analysisFor(text, nil))
	assert.Equal(t, []string{"TRANSCRIPT", "CATALOG", "ID[]"}, res.Flow)
	assert.Equal(t, "NBA", res.Domain)
}

func TestTargetResolver_ImpliedCatalog(t *testing.T) {
	r := newEnglishTargetResolver(t)
	text := "match the transcript against a list of team names"

	res := r.Resolve(context.Background(), text, analysisFor(text, nil))
	assert.Equal(t, []string{"TRANSCRIPT", "CATALOG"}, res.Flow)
}

func TestTargetResolver_GenericShadowedBySpecific(t *testing.T) {
	r := newEnglishTargetResolver(t)

	// "transcript" subsumes the generic "conversation" when both appear.
	text := "summarize the conversation transcript"
	res := r.Resolve(context.Background(), text, analysisFor(text, nil))
	assert.Equal(t, []string{"TRANSCRIPT"}, res.Flow)
}

func TestTargetResolver_SingleTarget(t *testing.T) {
	r := newEnglishTargetResolver(t)
	text := "List the top 5 issues"

	res := r.Resolve(context.Background(), text, analysisFor(text, nil))
	assert.Equal(t, []string{"ITEMS"}, res.Flow)
	assert.Empty(t, res.Domain)
}

func TestTargetResolver_ExtractionFields(t *testing.T) {
	r := newEnglishTargetResolver(t)
	text := "extract the name and phone number from the document"

	res := r.Resolve(context.Background(), text, analysisFor(text, nil))
	assert.Equal(t, []string{"DOCUMENT"}, res.Flow)
	assert.Equal(t, []string{"NAME", "PHONE"}, res.Extract)
}

func TestTargetResolver_NoTargets(t *testing.T) {
	r := newEnglishTargetResolver(t)
	text := "hello there"

	res := r.Resolve(context.Background(), text, analysisFor(text, nil))
	assert.Empty(t, res.Flow)
	assert.Empty(t, res.Extract)
}
