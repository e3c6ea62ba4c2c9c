// Package resolve turns analyzed text into resolved tokens: the intent
// resolver's strategy ladder, the target/extraction resolver, and the
// attribute resolver over the pattern rule set.
package resolve

import "strings"

// Category is a token category in the compressed grammar. The set is
// closed: six prompt categories, three configuration categories, and seven
// transcript categories.
type Category string

const (
	// Prompt categories.
	CategoryReq     Category = "REQ"
	CategoryTarget  Category = "TARGET"
	CategoryExtract Category = "EXTRACT"
	CategoryCtx     Category = "CTX"
	CategoryOut     Category = "OUT"
	CategoryRef     Category = "REF"

	// Configuration-prompt categories.
	CategoryRole     Category = "ROLE"
	CategoryRules    Category = "RULES"
	CategoryPriority Category = "PRIORITY"

	// Transcript categories.
	CategoryCall       Category = "CALL"
	CategoryCustomer   Category = "CUSTOMER"
	CategoryContact    Category = "CONTACT"
	CategoryIssue      Category = "ISSUE"
	CategoryAction     Category = "ACTION"
	CategoryResolution Category = "RESOLUTION"
	CategorySentiment  Category = "SENTIMENT"
)

// FlowSep joins data-flow targets and sentiment trajectory states.
const FlowSep = "→"

// PipeSep joins chained actions in pipeline order.
const PipeSep = ">"

// Attr is one attribute key/value pair on a token.
type Attr struct {
	Key   string
	Value string
}

// Token is a resolved token: category, one or more values, and optional
// attributes. Category and the primary value are always present in rendered
// output; attributes render in insertion order for determinism.
type Token struct {
	Category Category
	Values   []string
	Attrs    []Attr

	// Flow marks the values as a data-flow chain joined with FlowSep
	// instead of the default comma.
	Flow bool
}

// NewToken builds a token with the given values.
func NewToken(cat Category, values ...string) Token {
	return Token{Category: cat, Values: values}
}

// WithAttr appends an attribute, replacing any existing attribute with the
// same key so repeated resolution stays idempotent.
func (t Token) WithAttr(key, value string) Token {
	for i := range t.Attrs {
		if t.Attrs[i].Key == key {
			t.Attrs[i].Value = value
			return t
		}
	}
	t.Attrs = append(t.Attrs, Attr{Key: key, Value: value})
	return t
}

// Attr returns the value for key, if set.
func (t Token) Attr(key string) (string, bool) {
	for _, a := range t.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Empty reports whether the token has no values.
func (t Token) Empty() bool { return len(t.Values) == 0 }

// separator returns the value joiner for this token.
func (t Token) separator() string {
	if t.Flow {
		return FlowSep
	}
	if t.Category == CategoryReq {
		return PipeSep
	}
	return ","
}

// String renders the token in the compressed grammar:
// [CATEGORY:VALUE], [CATEGORY:V1,V2] or [CATEGORY:VALUE:ATTR=VAL].
func (t Token) String() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(string(t.Category))
	b.WriteByte(':')
	b.WriteString(strings.Join(t.Values, t.separator()))
	for _, a := range t.Attrs {
		b.WriteByte(':')
		b.WriteString(a.Key)
		b.WriteByte('=')
		b.WriteString(a.Value)
	}
	b.WriteByte(']')
	return b.String()
}

// Render joins non-empty tokens with single spaces.
func Render(tokens []Token) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.Empty() {
			continue
		}
		parts = append(parts, t.String())
	}
	return strings.Join(parts, " ")
}
