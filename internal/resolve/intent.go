package resolve

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/fyrsmithlabs/sempress/internal/analyze"
	"github.com/fyrsmithlabs/sempress/internal/vocab"
)

// Strategy names reported on resolved intents.
const (
	StrategyImperative = "imperative"
	StrategyVerb       = "verb"
	StrategyPhrase     = "phrase"
	StrategyQuestion   = "question"
)

// Intent is one resolved action with the confidence of the strategy that
// produced it.
type Intent struct {
	Action     string
	Confidence float64
	Strategy   string
}

// IntentResolver runs the detection strategy ladder over analyzed text.
//
// The ladder is a fixed-priority tagged list. The three primary strategies
// (imperative, verb, phrase) complement each other and their results are
// unioned, each action keeping the confidence of the highest-priority
// strategy that found it. The question fallback fires only when none of the
// primary strategies matched.
type IntentResolver struct {
	vocab      *vocab.Table
	strategies []intentStrategy
}

type intentStrategy struct {
	name         string
	confidence   float64
	fallbackOnly bool
	run          func(r *IntentResolver, text string, an *analyze.Analysis) []string
}

// Sentence-initial command patterns, matched independently of POS output so
// direct commands are caught even when the tagger mislabels the verb.
var imperativeRe = regexp.MustCompile(`(?im)^\s*(?:please\s+|kindly\s+)?([a-zA-Záéíóú]+)\b`)

// Role clauses ("you are a senior analyst") describe the assistant, not the
// requested operation.
var roleClauseRe = regexp.MustCompile(`(?i)\byou(?:'re| are)\s+(?:an?|the)\s+[^.,;]*`)

// Conditional clauses ("if no transcript matches, ...") describe conditions.
var conditionalClauseRe = regexp.MustCompile(`(?i)\b(?:if|when|unless|in case)\b[^.,;]*`)

var questionOpenerRe = regexp.MustCompile(`(?i)^\s*(what|who|when|where|why|how|which)\b`)

// pipelineOrder is the canonical order for chained actions. Chains that form
// a recognized pipeline are emitted in this order, not source order.
var pipelineOrder = map[string]int{
	"ANALYZE": 0, "CLASSIFY": 1, "FIND": 2, "EXTRACT": 3, "MATCH": 4,
	"COMPARE": 5, "FILTER": 6, "RANK": 7, "SUMMARIZE": 8, "CONVERT": 9,
	"GENERATE": 10, "TRANSLATE": 11, "LIST": 12, "EXPLAIN": 13,
}

// NewIntentResolver builds the resolver for one vocabulary table.
func NewIntentResolver(table *vocab.Table) *IntentResolver {
	return &IntentResolver{
		vocab: table,
		strategies: []intentStrategy{
			{name: StrategyImperative, confidence: 1.0, run: (*IntentResolver).imperativeStrategy},
			{name: StrategyVerb, confidence: 0.9, run: (*IntentResolver).verbStrategy},
			{name: StrategyPhrase, confidence: 0.8, run: (*IntentResolver).phraseStrategy},
			{name: StrategyQuestion, confidence: 0.85, fallbackOnly: true, run: (*IntentResolver).questionStrategy},
		},
	}
}

// Resolve returns an ordered, deduplicated list of action intents. An empty
// list means no operation was specified; callers decide how to degrade.
func (r *IntentResolver) Resolve(ctx context.Context, text string, an *analyze.Analysis) []Intent {
	if err := ctx.Err(); err != nil {
		return nil
	}

	var intents []Intent
	seen := make(map[string]int) // action -> index into intents

	add := func(actions []string, s intentStrategy) {
		for _, action := range actions {
			if idx, ok := seen[action]; ok {
				if s.confidence > intents[idx].Confidence {
					intents[idx].Confidence = s.confidence
					intents[idx].Strategy = s.name
				}
				continue
			}
			seen[action] = len(intents)
			intents = append(intents, Intent{Action: action, Confidence: s.confidence, Strategy: s.name})
		}
	}

	for _, s := range r.strategies {
		if s.fallbackOnly && len(intents) > 0 {
			continue
		}
		add(s.run(r, text, an), s)
	}

	sortIntents(intents)
	return intents
}

// sortIntents orders by confidence, then canonical pipeline order, then name.
func sortIntents(intents []Intent) {
	sort.SliceStable(intents, func(i, j int) bool {
		if intents[i].Confidence != intents[j].Confidence {
			return intents[i].Confidence > intents[j].Confidence
		}
		oi, iok := pipelineOrder[intents[i].Action]
		oj, jok := pipelineOrder[intents[j].Action]
		if iok && jok && oi != oj {
			return oi < oj
		}
		return intents[i].Action < intents[j].Action
	})
}

// Pipeline returns the actions ordered as an execution pipeline when the
// chain is recognized, otherwise in resolved order.
func Pipeline(intents []Intent) []string {
	actions := make([]string, 0, len(intents))
	for _, in := range intents {
		actions = append(actions, in.Action)
	}
	allKnown := true
	for _, a := range actions {
		if _, ok := pipelineOrder[a]; !ok {
			allKnown = false
			break
		}
	}
	if allKnown && len(actions) > 1 {
		sort.SliceStable(actions, func(i, j int) bool {
			return pipelineOrder[actions[i]] < pipelineOrder[actions[j]]
		})
	}
	return actions
}

// imperativeStrategy matches sentence-initial command words against the
// action vocabulary.
func (r *IntentResolver) imperativeStrategy(text string, an *analyze.Analysis) []string {
	var actions []string
	sentences := an.Sentences
	if len(sentences) == 0 {
		sentences = []string{text}
	}
	for _, sentence := range sentences {
		m := imperativeRe.FindStringSubmatch(sentence)
		if m == nil {
			continue
		}
		word := strings.ToLower(m[1])
		if r.vocab.IsModalVerb(word) || r.vocab.IsStopWord(word) {
			continue
		}
		if action, ok := r.vocab.LookupAction(word); ok {
			actions = append(actions, action)
		}
	}
	return actions
}

// verbStrategy matches lemmatized verbs against the action vocabulary,
// excluding verbs inside role or conditional clauses.
func (r *IntentResolver) verbStrategy(text string, an *analyze.Analysis) []string {
	excluded := excludedSpans(text)
	var actions []string
	for _, tok := range an.Tokens {
		if tok.Tag != "" && !analyze.IsVerbTag(tok.Tag) {
			continue
		}
		if r.vocab.IsModalVerb(tok.Lemma) || r.vocab.IsStopWord(tok.Lemma) {
			continue
		}
		action, ok := r.vocab.LookupAction(tok.Lemma)
		if !ok {
			continue
		}
		if inExcludedSpan(text, tok.Text, excluded) {
			continue
		}
		actions = append(actions, action)
	}
	return actions
}

// phraseStrategy matches compound multi-word action phrases.
func (r *IntentResolver) phraseStrategy(text string, an *analyze.Analysis) []string {
	excluded := excludedSpans(text)
	var actions []string
	for _, m := range r.vocab.MatchPhrases(text) {
		if spanOverlaps(m.Start, m.End, excluded) {
			continue
		}
		actions = append(actions, m.Token)
	}
	return actions
}

// questionStrategy maps interrogative sentence shape to an implicit
// explanation intent.
func (r *IntentResolver) questionStrategy(text string, an *analyze.Analysis) []string {
	sentences := an.Sentences
	if len(sentences) == 0 {
		sentences = []string{text}
	}
	for _, sentence := range sentences {
		if questionOpenerRe.MatchString(sentence) || strings.HasSuffix(strings.TrimSpace(sentence), "?") {
			return []string{"EXPLAIN"}
		}
	}
	return nil
}

type span struct{ start, end int }

// excludedSpans finds role and conditional clause regions.
func excludedSpans(text string) []span {
	var spans []span
	for _, re := range []*regexp.Regexp{roleClauseRe, conditionalClauseRe} {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			spans = append(spans, span{start: loc[0], end: loc[1]})
		}
	}
	return spans
}

// inExcludedSpan reports whether any occurrence of word lies entirely inside
// an excluded clause. A word that also appears outside every excluded span
// stays a candidate.
func inExcludedSpan(text, word string, spans []span) bool {
	if len(spans) == 0 {
		return false
	}
	lower := strings.ToLower(text)
	needle := strings.ToLower(word)
	from := 0
	found := false
	for {
		idx := strings.Index(lower[from:], needle)
		if idx < 0 {
			break
		}
		start := from + idx
		end := start + len(needle)
		from = end
		found = true
		if !spanOverlaps(start, end, spans) {
			return false
		}
	}
	return found
}

func spanOverlaps(start, end int, spans []span) bool {
	for _, s := range spans {
		if start >= s.start && end <= s.end {
			return true
		}
	}
	return false
}
