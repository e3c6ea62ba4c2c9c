// Package rules provides per-language pattern rules that map textual
// patterns (durations, tone words, ordering requests, comparisons) to
// attribute key/value pairs.
//
// Rules are compiled with regexp2 so every match carries a hard timeout.
// A timed-out rule is skipped and the rule set reports a degraded result
// instead of hanging on pathological input.
package rules

import (
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// Category identifies a rule category.
type Category string

const (
	// CategoryDuration matches time spans, normalized to a unit-suffixed value.
	CategoryDuration Category = "duration"
	// CategoryTone matches tone/style descriptors.
	CategoryTone Category = "tone"
	// CategoryOrdering matches sort/ranking direction requests.
	CategoryOrdering Category = "ordering"
	// CategoryComparison matches comparison phrasing.
	CategoryComparison Category = "comparison"
	// CategoryLimit matches "top N" style limits.
	CategoryLimit Category = "limit"
	// CategoryThreshold matches numeric bounds ("at least N").
	CategoryThreshold Category = "threshold"
	// CategoryExplanation matches explanation requests.
	CategoryExplanation Category = "explanation"
)

// DefaultMatchTimeout bounds a single pattern match. Go's stdlib regexp has
// no catastrophic backtracking, but regexp2 does, and overlay rules are
// caller-supplied data, so every match gets a hard budget.
const DefaultMatchTimeout = 50 * time.Millisecond

// Rule maps one regular expression to an attribute key and value template.
// The value template may reference capture groups as $1, $2, ...; the special
// templates understood by normalizers (durations, limits) post-process the
// captured value.
type Rule struct {
	Category Category `koanf:"category" json:"category"`
	Pattern  string   `koanf:"pattern" json:"pattern"`
	Key      string   `koanf:"key" json:"key"`
	Value    string   `koanf:"value" json:"value"`
}

// Match is an attribute produced by a rule.
type Match struct {
	Category Category
	Key      string
	Value    string
}

type compiledRule struct {
	rule Rule
	re   *regexp2.Regexp
}

// Set is an immutable, language-specific rule set.
type Set struct {
	language string
	rules    []compiledRule
	timeout  time.Duration
}

// Option configures rule set construction.
type Option func(*setOptions)

type setOptions struct {
	overlay []Rule
	timeout time.Duration
}

// WithOverlay appends caller-supplied rules after the built-in rules.
// New synonyms for existing categories are data, not code.
func WithOverlay(rules []Rule) Option {
	return func(o *setOptions) { o.overlay = append(o.overlay, rules...) }
}

// WithMatchTimeout overrides the per-match time budget.
func WithMatchTimeout(d time.Duration) Option {
	return func(o *setOptions) { o.timeout = d }
}

// NewSet compiles the rule set for a language. Languages without built-in
// rules get an empty set (rule coverage is independent of vocabulary
// coverage), but an unknown language is still an error.
func NewSet(language string, opts ...Option) (*Set, error) {
	o := setOptions{timeout: DefaultMatchTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	var base []Rule
	switch language {
	case "en":
		base = englishRules()
	case "es":
		base = spanishRules()
	default:
		return nil, fmt.Errorf("rules: language %q not supported", language)
	}

	s := &Set{language: language, timeout: o.timeout}
	for _, r := range append(base, o.overlay...) {
		re, err := regexp2.Compile(r.Pattern, regexp2.IgnoreCase)
		if err != nil {
			return nil, fmt.Errorf("rules: invalid pattern %q: %w", r.Pattern, err)
		}
		re.MatchTimeout = s.timeout
		s.rules = append(s.rules, compiledRule{rule: r, re: re})
	}
	return s, nil
}

// Language returns the set's language code.
func (s *Set) Language() string { return s.language }

// Len returns the number of compiled rules.
func (s *Set) Len() int { return len(s.rules) }

// Apply runs every rule against text and returns the first match per rule,
// deduplicated by attribute key (first rule wins, rule order is fixed).
// degraded is true when at least one rule exceeded its match budget.
func (s *Set) Apply(text string) (matches []Match, degraded bool) {
	seen := make(map[string]struct{})
	for _, cr := range s.rules {
		m, err := cr.re.FindStringMatch(text)
		if err != nil {
			// regexp2 returns an error only on timeout.
			degraded = true
			continue
		}
		if m == nil {
			continue
		}
		value := expand(cr.rule, m)
		if value == "" {
			continue
		}
		if _, dup := seen[cr.rule.Key]; dup {
			continue
		}
		seen[cr.rule.Key] = struct{}{}
		matches = append(matches, Match{Category: cr.rule.Category, Key: cr.rule.Key, Value: value})
	}
	return matches, degraded
}

// expand substitutes capture groups into the rule's value template and
// applies category-specific normalization.
func expand(r Rule, m *regexp2.Match) string {
	value := r.Value
	for i := m.GroupCount() - 1; i >= 1; i-- {
		g := m.GroupByNumber(i)
		capture := ""
		if g != nil {
			capture = g.String()
		}
		value = strings.ReplaceAll(value, fmt.Sprintf("$%d", i), capture)
	}
	switch r.Category {
	case CategoryDuration:
		return normalizeDuration(value)
	default:
		return strings.TrimSpace(value)
	}
}

// normalizeDuration rewrites "30 minutes" style captures as "30m".
func normalizeDuration(v string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(v)))
	if len(fields) == 0 {
		return ""
	}
	num := fields[0]
	unit := ""
	if len(fields) > 1 {
		unit = fields[1]
	}
	switch {
	case strings.HasPrefix(unit, "sec"):
		unit = "s"
	case strings.HasPrefix(unit, "min"):
		unit = "m"
	case strings.HasPrefix(unit, "hour"), strings.HasPrefix(unit, "hr"), strings.HasPrefix(unit, "hora"):
		unit = "h"
	case strings.HasPrefix(unit, "day"), strings.HasPrefix(unit, "dia"), strings.HasPrefix(unit, "día"):
		unit = "d"
	case strings.HasPrefix(unit, "week"), strings.HasPrefix(unit, "semana"):
		unit = "w"
	case strings.HasPrefix(unit, "month"), strings.HasPrefix(unit, "mes"):
		unit = "mo"
	default:
		if unit != "" && len(unit) <= 2 {
			// Already unit-suffixed ("5m", "2 h").
			break
		}
		unit = ""
	}
	return num + unit
}
