package analyze

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CapabilityLookup(t *testing.T) {
	en, err := New("en")
	require.NoError(t, err)
	assert.Equal(t, "en", en.Language())

	es, err := New("es")
	require.NoError(t, err)
	assert.Equal(t, "es", es.Language())

	_, err = New("de")
	require.Error(t, err)
}

func TestLemmatizeEnglish(t *testing.T) {
	tests := []struct{ word, want string }{
		{"running", "run"},
		{"was", "be"},
		{"analyzing", "analyze"},
		{"summarized", "summarize"},
		{"matches", "match"},
		{"matched", "match"},
		{"issues", "issue"},
		{"categories", "category"},
		{"ranking", "rank"},
		{"classified", "classify"},
		{"list", "list"},
		{"Listed", "list"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, lemmatizeEnglish(tt.word, ""), "word %q", tt.word)
	}
}

func TestLemmatizeSpanish(t *testing.T) {
	tests := []struct{ word, want string }{
		{"analizando", "analizar"},
		{"listar", "listar"},
		{"resume", "resumar"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, lemmatizeSpanish(tt.word), "word %q", tt.word)
	}
}

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("First one. Second one!\nThird line without terminal")
	assert.Equal(t, []string{"First one.", "Second one!", "Third line without terminal"}, got)

	assert.Empty(t, SplitSentences("   \n  "))
}

func TestHeuristicAnalyzer(t *testing.T) {
	a := newHeuristicAnalyzer("es")
	an, err := a.Analyze(context.Background(), "Analiza la transcripción. Habla con Maria.")
	require.NoError(t, err)

	assert.Len(t, an.Sentences, 2)
	assert.NotEmpty(t, an.Tokens)
	for _, tok := range an.Tokens {
		assert.Empty(t, tok.Tag, "heuristic analyzer leaves tags empty")
	}

	var persons []string
	for _, e := range an.Entities {
		if e.Label == "PERSON" {
			persons = append(persons, e.Text)
		}
	}
	assert.Contains(t, persons, "Maria")
}

func TestHeuristicAnalyzer_CancelledContext(t *testing.T) {
	a := newHeuristicAnalyzer("es")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := a.Analyze(ctx, "hola")
	require.Error(t, err)
}

func TestProseAnalyzer_Basics(t *testing.T) {
	a, err := New("en")
	require.NoError(t, err)

	an, err := a.Analyze(context.Background(), "List the top issues. Summarize the findings.")
	require.NoError(t, err)

	assert.Len(t, an.Sentences, 2)
	require.NotEmpty(t, an.Tokens)

	lemmas := make(map[string]bool)
	for _, tok := range an.Tokens {
		lemmas[tok.Lemma] = true
	}
	assert.True(t, lemmas["issue"], "plural nouns are lemmatized")
	assert.True(t, lemmas["summarize"])
}

func TestIsVerbTag(t *testing.T) {
	assert.True(t, IsVerbTag("VB"))
	assert.True(t, IsVerbTag("VBG"))
	assert.False(t, IsVerbTag("NN"))
	assert.False(t, IsVerbTag("V"))

	assert.True(t, IsNounTag("NNS"))
	assert.False(t, IsNounTag("JJ"))
}
