package analyze

import (
	"context"

	"github.com/jdkato/prose/v2"
)

// proseAnalyzer wraps the prose NLP toolkit for English.
type proseAnalyzer struct{}

func newProseAnalyzer() *proseAnalyzer { return &proseAnalyzer{} }

func (a *proseAnalyzer) Language() string { return "en" }

// Analyze runs prose tokenization, tagging, segmentation and NER.
// Each call builds its own document; the analyzer itself holds no state.
func (a *proseAnalyzer) Analyze(ctx context.Context, text string) (*Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, err
	}

	an := &Analysis{}
	for _, s := range doc.Sentences() {
		an.Sentences = append(an.Sentences, s.Text)
	}
	for _, tok := range doc.Tokens() {
		an.Tokens = append(an.Tokens, Token{
			Text:  tok.Text,
			Tag:   tok.Tag,
			Lemma: lemmatizeEnglish(tok.Text, tok.Tag),
		})
	}
	for _, ent := range doc.Entities() {
		an.Entities = append(an.Entities, Entity{Text: ent.Text, Label: ent.Label})
	}
	return an, nil
}
