// Package vocab provides per-language vocabulary tables mapping natural
// language phrases to canonical token values.
//
// A Table is built once per configuration from a built-in base table plus an
// optional overlay of extension entries, and is immutable afterwards. Tables
// are safe for concurrent use by any number of encode calls.
package vocab

import (
	"fmt"
	"sort"
	"strings"
)

// Category identifies a vocabulary category.
type Category string

const (
	// CategoryAction maps verbs to canonical action tokens (LIST, ANALYZE, ...).
	CategoryAction Category = "action"
	// CategoryTarget maps nouns to canonical target-object tokens.
	CategoryTarget Category = "target"
	// CategoryExtraction maps field names to extraction-field tokens.
	CategoryExtraction Category = "extraction"
	// CategoryFormat maps output format phrasing to format tokens.
	CategoryFormat Category = "format"
	// CategoryPhrase maps compound multi-word phrases to action tokens.
	CategoryPhrase Category = "phrase"
	// CategoryDomain groups domain keyword clusters under a domain token.
	CategoryDomain Category = "domain"
	// CategoryIssue maps support-issue phrasing to issue-type tokens.
	CategoryIssue Category = "issue"
	// CategoryCallAction maps agent remediation phrasing to action-type tokens.
	CategoryCallAction Category = "call_action"
	// CategoryResolution maps closing phrasing to resolution-status tokens.
	CategoryResolution Category = "resolution"
	// CategorySentiment maps emotional cues to sentiment-state tokens.
	CategorySentiment Category = "sentiment"
	// CategoryStopWord marks noise words excluded from matching.
	CategoryStopWord Category = "stop_word"
	// CategoryModalVerb marks modal/auxiliary verbs that never carry intent.
	CategoryModalVerb Category = "modal_verb"
)

// Entry is a single vocabulary mapping: synonyms to one canonical token.
type Entry struct {
	Category Category `koanf:"category" json:"category"`
	Token    string   `koanf:"token" json:"token"`
	Synonyms []string `koanf:"synonyms" json:"synonyms"`
}

// PhraseMatch reports a compound phrase found in text.
type PhraseMatch struct {
	Token string
	Start int // byte offset into the searched text
	End   int
}

// Table is an immutable vocabulary for one language.
type Table struct {
	language string
	partial  bool

	byCategory map[Category]map[string]string // lowercased synonym -> token
	phrases    []phraseEntry                  // longest first
	domains    map[string][]string            // domain token -> keywords
	stopWords  map[string]struct{}
	modalVerbs map[string]struct{}
}

type phraseEntry struct {
	phrase string // lowercased
	token  string
}

// Supported lists the language codes with built-in tables.
func Supported() []string {
	return []string{"en", "es"}
}

// NewTable builds the vocabulary table for a language, merging the built-in
// base entries with any overlay entries. Overlay synonyms extend the base;
// they never replace existing mappings, so built-in behavior stays stable.
func NewTable(language string, overlay []Entry) (*Table, error) {
	var base []Entry
	partial := false
	switch language {
	case "en":
		base = englishEntries()
	case "es":
		base = spanishEntries()
		partial = true
	default:
		return nil, fmt.Errorf("vocab: language %q not supported (have %v)", language, Supported())
	}

	t := &Table{
		language:   language,
		partial:    partial,
		byCategory: make(map[Category]map[string]string),
		domains:    make(map[string][]string),
		stopWords:  make(map[string]struct{}),
		modalVerbs: make(map[string]struct{}),
	}

	for _, e := range base {
		t.add(e)
	}
	for _, e := range overlay {
		t.add(e)
	}

	// Longest phrases first so the most specific compound wins.
	sort.SliceStable(t.phrases, func(i, j int) bool {
		return len(t.phrases[i].phrase) > len(t.phrases[j].phrase)
	})

	return t, nil
}

func (t *Table) add(e Entry) {
	switch e.Category {
	case CategoryStopWord:
		for _, s := range e.Synonyms {
			t.stopWords[strings.ToLower(s)] = struct{}{}
		}
	case CategoryModalVerb:
		for _, s := range e.Synonyms {
			t.modalVerbs[strings.ToLower(s)] = struct{}{}
		}
	case CategoryPhrase:
		for _, s := range e.Synonyms {
			t.phrases = append(t.phrases, phraseEntry{phrase: strings.ToLower(s), token: e.Token})
		}
	case CategoryDomain:
		kws := t.domains[e.Token]
		for _, s := range e.Synonyms {
			kws = append(kws, strings.ToLower(s))
		}
		t.domains[e.Token] = kws
	default:
		m := t.byCategory[e.Category]
		if m == nil {
			m = make(map[string]string)
			t.byCategory[e.Category] = m
		}
		for _, s := range e.Synonyms {
			key := strings.ToLower(s)
			if _, exists := m[key]; !exists {
				m[key] = e.Token
			}
		}
	}
}

// Language returns the table's language code.
func (t *Table) Language() string { return t.language }

// Partial reports whether this language ships with incomplete coverage.
func (t *Table) Partial() bool { return t.partial }

// Lookup resolves a single word within a category.
func (t *Table) Lookup(cat Category, word string) (string, bool) {
	m := t.byCategory[cat]
	if m == nil {
		return "", false
	}
	tok, ok := m[strings.ToLower(word)]
	return tok, ok
}

// LookupAction resolves a lemmatized verb to a canonical action token.
func (t *Table) LookupAction(lemma string) (string, bool) {
	return t.Lookup(CategoryAction, lemma)
}

// LookupTarget resolves a noun to a canonical target token.
func (t *Table) LookupTarget(word string) (string, bool) {
	return t.Lookup(CategoryTarget, word)
}

// MatchPhrases finds all compound phrases in text, preferring longer phrases
// and skipping regions already claimed by an earlier (longer) match.
func (t *Table) MatchPhrases(text string) []PhraseMatch {
	lower := strings.ToLower(text)
	var matches []PhraseMatch
	claimed := make([]bool, len(lower))

	for _, pe := range t.phrases {
		from := 0
		for {
			idx := strings.Index(lower[from:], pe.phrase)
			if idx < 0 {
				break
			}
			start := from + idx
			end := start + len(pe.phrase)
			from = end
			if !wordBoundary(lower, start, end) {
				continue
			}
			if regionClaimed(claimed, start, end) {
				continue
			}
			for i := start; i < end; i++ {
				claimed[i] = true
			}
			matches = append(matches, PhraseMatch{Token: pe.token, Start: start, End: end})
		}
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].Start < matches[j].Start })
	return matches
}

// MatchAll scans text for every synonym in a category, including multi-word
// synonyms, and returns the matched tokens deduplicated in first-occurrence
// order.
func (t *Table) MatchAll(cat Category, text string) []string {
	m := t.byCategory[cat]
	if len(m) == 0 {
		return nil
	}
	lower := " " + strings.ToLower(text) + " "

	type hit struct {
		token string
		pos   int
	}
	best := make(map[string]int) // token -> earliest position
	for syn, tok := range m {
		idx := strings.Index(lower, syn)
		for idx >= 0 {
			if wordBoundary(lower, idx, idx+len(syn)) {
				if cur, ok := best[tok]; !ok || idx < cur {
					best[tok] = idx
				}
				break
			}
			next := strings.Index(lower[idx+1:], syn)
			if next < 0 {
				break
			}
			idx = idx + 1 + next
		}
	}

	hits := make([]hit, 0, len(best))
	for tok, pos := range best {
		hits = append(hits, hit{token: tok, pos: pos})
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].pos != hits[j].pos {
			return hits[i].pos < hits[j].pos
		}
		return hits[i].token < hits[j].token
	})
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.token
	}
	return out
}

// MatchAllPositions is MatchAll but also reports each token's earliest
// match position in the original text.
func (t *Table) MatchAllPositions(cat Category, text string) map[string]int {
	m := t.byCategory[cat]
	if len(m) == 0 {
		return nil
	}
	lower := " " + strings.ToLower(text) + " "
	best := make(map[string]int)
	for syn, tok := range m {
		idx := strings.Index(lower, syn)
		for idx >= 0 {
			if wordBoundary(lower, idx, idx+len(syn)) {
				if cur, ok := best[tok]; !ok || idx < cur {
					best[tok] = idx
				}
				break
			}
			next := strings.Index(lower[idx+1:], syn)
			if next < 0 {
				break
			}
			idx = idx + 1 + next
		}
	}
	return best
}

// DomainScores counts domain keyword hits per domain token.
func (t *Table) DomainScores(text string) map[string]int {
	lower := " " + strings.ToLower(text) + " "
	scores := make(map[string]int)
	for domain, kws := range t.domains {
		for _, kw := range kws {
			if containsWord(lower, kw) {
				scores[domain]++
			}
		}
	}
	return scores
}

// BestDomain returns the highest-scoring domain token, breaking ties
// alphabetically for determinism. ok is false when nothing matched.
func (t *Table) BestDomain(text string) (string, bool) {
	scores := t.DomainScores(text)
	best, bestScore := "", 0
	for domain, score := range scores {
		if score > bestScore || (score == bestScore && score > 0 && domain < best) {
			best, bestScore = domain, score
		}
	}
	return best, bestScore > 0
}

// IsStopWord reports whether word is in the noise list.
func (t *Table) IsStopWord(word string) bool {
	_, ok := t.stopWords[strings.ToLower(word)]
	return ok
}

// IsModalVerb reports whether word is a modal/auxiliary verb.
func (t *Table) IsModalVerb(word string) bool {
	_, ok := t.modalVerbs[strings.ToLower(word)]
	return ok
}

// HasCategory reports whether the language carries any entries for cat.
func (t *Table) HasCategory(cat Category) bool {
	switch cat {
	case CategoryStopWord:
		return len(t.stopWords) > 0
	case CategoryModalVerb:
		return len(t.modalVerbs) > 0
	case CategoryPhrase:
		return len(t.phrases) > 0
	case CategoryDomain:
		return len(t.domains) > 0
	default:
		return len(t.byCategory[cat]) > 0
	}
}

func wordBoundary(s string, start, end int) bool {
	if start > 0 && isWordByte(s[start-1]) {
		return false
	}
	if end < len(s) && isWordByte(s[end]) {
		return false
	}
	return true
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func regionClaimed(claimed []bool, start, end int) bool {
	for i := start; i < end; i++ {
		if claimed[i] {
			return true
		}
	}
	return false
}

func containsWord(padded, word string) bool {
	from := 0
	for {
		idx := strings.Index(padded[from:], word)
		if idx < 0 {
			return false
		}
		start := from + idx
		end := start + len(word)
		if wordBoundary(padded, start, end) {
			return true
		}
		from = end
	}
}
