// Package analyze adapts a natural-language-processing toolkit behind a
// small Analyzer interface: sentence segmentation, part-of-speech tagged
// tokens, lemmas, and named entities.
//
// English uses the prose toolkit (POS tagging and NER). Languages without a
// model fall back to a heuristic analyzer with a suffix lemmatizer, so
// partially supported languages still produce usable candidates.
package analyze

import (
	"context"
	"fmt"
)

// Token is a single word with its part-of-speech tag and lemma.
// Tags follow the Penn Treebank set ("VB", "NN", "JJ", ...); the heuristic
// analyzer leaves Tag empty.
type Token struct {
	Text  string
	Tag   string
	Lemma string
}

// Entity is a named entity found in the text.
type Entity struct {
	Text  string
	Label string // "PERSON", "GPE", ...
}

// Analysis is the full output for one input text.
type Analysis struct {
	Sentences []string
	Tokens    []Token
	Entities  []Entity
}

// Analyzer produces linguistic analyses. Implementations are safe for
// concurrent use; all mutable state is per-call.
type Analyzer interface {
	// Analyze tokenizes and tags text. ctx bounds the call for batch callers.
	Analyze(ctx context.Context, text string) (*Analysis, error)
	// Language returns the language code this analyzer handles.
	Language() string
}

// New returns the analyzer for a language via capability lookup.
// English gets the prose-backed analyzer; Spanish gets the heuristic
// fallback; anything else fails fast.
func New(language string) (Analyzer, error) {
	switch language {
	case "en":
		return newProseAnalyzer(), nil
	case "es":
		return newHeuristicAnalyzer("es"), nil
	default:
		return nil, fmt.Errorf("analyze: language %q not supported", language)
	}
}

// IsVerbTag reports whether a Penn Treebank tag marks a verb.
func IsVerbTag(tag string) bool {
	return len(tag) >= 2 && tag[0] == 'V' && tag[1] == 'B'
}

// IsNounTag reports whether a Penn Treebank tag marks a noun.
func IsNounTag(tag string) bool {
	return len(tag) >= 2 && tag[0] == 'N' && tag[1] == 'N'
}
