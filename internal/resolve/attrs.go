package resolve

import (
	"context"
	"strings"

	"github.com/fyrsmithlabs/sempress/internal/rules"
)

// Attributes is the result of attribute/context resolution.
type Attributes struct {
	// Context attributes attach to the CTX token (limits, durations,
	// thresholds, ordering, comparison, explanation flags).
	Context []Attr
	// Output attributes attach to the OUT token (tone).
	Output []Attr
	// Degraded is true when a pattern rule exceeded its match budget and
	// the result is partial.
	Degraded bool
}

// AttributeResolver applies the pattern rule set to detect context,
// ordering, format and tone attributes.
type AttributeResolver struct {
	rules *rules.Set
}

// NewAttributeResolver builds the resolver over a compiled rule set.
func NewAttributeResolver(set *rules.Set) *AttributeResolver {
	return &AttributeResolver{rules: set}
}

// Resolve runs every rule and routes each match to the token it belongs on.
func (r *AttributeResolver) Resolve(ctx context.Context, text string) Attributes {
	var out Attributes
	if err := ctx.Err(); err != nil {
		return out
	}

	matches, degraded := r.rules.Apply(text)
	out.Degraded = degraded

	for _, m := range matches {
		attr := Attr{Key: m.Key, Value: canonicalValue(m.Value)}
		switch m.Category {
		case rules.CategoryTone:
			out.Output = append(out.Output, attr)
		default:
			out.Context = append(out.Context, attr)
		}
	}
	return out
}

// canonicalValue uppercases purely alphabetic values ("formal" -> "FORMAL")
// while leaving unit-suffixed numerics ("30m", "3-5d") untouched.
func canonicalValue(v string) string {
	for _, r := range v {
		if r >= '0' && r <= '9' {
			return v
		}
	}
	return strings.ToUpper(v)
}
