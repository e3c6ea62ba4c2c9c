package analyze

import (
	"context"
	"strings"
	"unicode"
)

// heuristicAnalyzer is the fallback for languages without an NLP model.
// It segments on terminal punctuation, tokenizes on word boundaries, and
// lemmatizes by suffix. Tags stay empty; entity detection is limited to
// capitalized mid-sentence word runs.
type heuristicAnalyzer struct {
	language string
}

func newHeuristicAnalyzer(language string) *heuristicAnalyzer {
	return &heuristicAnalyzer{language: language}
}

func (a *heuristicAnalyzer) Language() string { return a.language }

func (a *heuristicAnalyzer) Analyze(ctx context.Context, text string) (*Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	an := &Analysis{Sentences: SplitSentences(text)}

	for _, sentence := range an.Sentences {
		words := splitWords(sentence)
		for i, w := range words {
			lemma := strings.ToLower(w)
			if a.language == "es" {
				lemma = lemmatizeSpanish(w)
			}
			an.Tokens = append(an.Tokens, Token{Text: w, Lemma: lemma})

			// Capitalized words past sentence start are entity candidates.
			if i > 0 && isCapitalized(w) {
				an.Entities = append(an.Entities, Entity{Text: w, Label: "PERSON"})
			}
		}
	}
	return an, nil
}

// SplitSentences segments text on terminal punctuation and newlines.
// Shared by the heuristic analyzer and encoders that work line-by-line.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		s := strings.TrimSpace(current.String())
		if s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' || r == '\n' {
			flush()
		}
	}
	flush()
	return sentences
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\'' && r != '-'
	})
}

func isCapitalized(w string) bool {
	for _, r := range w {
		return unicode.IsUpper(r)
	}
	return false
}
