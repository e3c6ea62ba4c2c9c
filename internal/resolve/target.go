package resolve

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/fyrsmithlabs/sempress/internal/analyze"
	"github.com/fyrsmithlabs/sempress/internal/vocab"
)

// TargetResolution describes the objects a prompt operates on.
type TargetResolution struct {
	// Flow is the ordered data-flow chain: primary input target, an optional
	// catalog/reference target, and an optional output element ("ID[]").
	Flow []string
	// Domain is the dominant domain keyword cluster, empty when none scored.
	Domain string
	// Extract lists the extraction-field tokens requested by the text.
	Extract []string
}

// TargetResolver identifies operand objects and extraction fields.
type TargetResolver struct {
	vocab *vocab.Table
}

// NewTargetResolver builds the resolver for one vocabulary table.
func NewTargetResolver(table *vocab.Table) *TargetResolver {
	return &TargetResolver{vocab: table}
}

// genericShadows maps a generic target token to the specific tokens that
// subsume it. When both match the same text, only the specific one is kept,
// so a "transcript" never also emits an "interaction" token.
var genericShadows = map[string][]string{
	"CONVERSATION": {"TRANSCRIPT", "EMAIL"},
	"DOCUMENT":     {"TRANSCRIPT", "REPORT", "EMAIL"},
	"DATA":         {"CATALOG"},
}

// impliedCatalogRe detects matching-against-catalog language even when no
// explicit catalog noun appears: "match it against a list of teams".
var impliedCatalogRe = regexp.MustCompile(`(?i)\b(?:a|the|our|your)\s+(?:list|set|collection|catalog(?:ue)?|database)\s+of\s+\w+`)

// outputElementRe captures the element type of a requested output collection:
// "return a JSON array of ids".
var outputElementRe = regexp.MustCompile(`(?i)\b(?:return|output|respond with|produce|give back|provide)\b[^.?!]{0,60}?\b(?:array|list)s?\s+of\s+([a-zA-Z]+)`)

// Resolve identifies the target flow, its domain, and extraction fields.
func (r *TargetResolver) Resolve(ctx context.Context, text string, an *analyze.Analysis) TargetResolution {
	res := TargetResolution{}
	if err := ctx.Err(); err != nil {
		return res
	}

	positions := r.vocab.MatchAllPositions(vocab.CategoryTarget, text)

	// Compound-phrase collapsing: specific multi-word matches already win by
	// position; here generic tokens shadowed by a present specific token are
	// dropped entirely.
	for generic, specifics := range genericShadows {
		if _, ok := positions[generic]; !ok {
			continue
		}
		for _, specific := range specifics {
			if _, ok := positions[specific]; ok {
				delete(positions, generic)
				break
			}
		}
	}

	type hit struct {
		token string
		pos   int
	}
	hits := make([]hit, 0, len(positions))
	for tok, pos := range positions {
		hits = append(hits, hit{token: tok, pos: pos})
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].pos != hits[j].pos {
			return hits[i].pos < hits[j].pos
		}
		return hits[i].token < hits[j].token
	})

	catalog := false
	for _, h := range hits {
		if h.token == "CATALOG" {
			catalog = true
			continue
		}
		res.Flow = append(res.Flow, h.token)
	}

	// Keep the flow to the primary operand; secondary plain targets are
	// noise once a pipeline flow is being built.
	if len(res.Flow) > 1 {
		res.Flow = res.Flow[:1]
	}

	// Missing-but-implied catalog: "match ... against a list of X".
	if !catalog && impliedCatalogRe.MatchString(text) {
		catalog = true
	}
	if catalog {
		res.Flow = append(res.Flow, "CATALOG")
	}

	if m := outputElementRe.FindStringSubmatch(text); m != nil {
		element := strings.ToUpper(strings.TrimSuffix(strings.ToLower(m[1]), "s"))
		if tok, ok := r.vocab.Lookup(vocab.CategoryExtraction, strings.ToLower(m[1])); ok {
			element = tok
		}
		res.Flow = append(res.Flow, element+"[]")
	}

	if domain, ok := r.vocab.BestDomain(text); ok {
		res.Domain = domain
	}

	res.Extract = r.vocab.MatchAll(vocab.CategoryExtraction, text)
	return res
}
