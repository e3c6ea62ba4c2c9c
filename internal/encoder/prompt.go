package encoder

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/fyrsmithlabs/sempress/internal/analyze"
	"github.com/fyrsmithlabs/sempress/internal/config"
	"github.com/fyrsmithlabs/sempress/internal/resolve"
	"github.com/fyrsmithlabs/sempress/internal/vocab"
)

// Mode is the prompt encoder's operating mode.
type Mode string

const (
	// ModeTask encodes action-oriented imperative prompts.
	ModeTask Mode = "task"
	// ModeConfiguration encodes agent configuration prompts with role and
	// rule blocks.
	ModeConfiguration Mode = "configuration"
)

var (
	placeholderRe = regexp.MustCompile(`\{\{\s*[\w.-]+\s*\}\}|\{[A-Z][A-Z0-9_]*\}`)
	roleDeclRe    = regexp.MustCompile(`(?im)^\s*(?:role|persona)\s*:\s*(.+)$`)
	roleClauseRe  = regexp.MustCompile(`(?i)\byou(?:'re| are)\s+(?:an?|the)\s+([^.,;\n]+)`)
	ruleHeaderRe  = regexp.MustCompile(`(?im)^\s*(?:rules?|guidelines|instructions|constraints)\s*:`)
	ruleLineRe    = regexp.MustCompile(`(?m)^\s*(?:\d+[.)]|[-*•])\s+\S`)
	customRuleRe  = regexp.MustCompile(`(?i)\b(?:custom|additional|extra|client[- ]specific|tenant)\s+(?:rules?|instructions|guidelines)\b`)
	baseRuleRe    = regexp.MustCompile(`(?i)\b(?:base|default|standard|general|core)\s+(?:rules?|instructions|guidelines)\b`)
	priorityRe    = regexp.MustCompile(`(?i)\b(?:overrides?|takes? precedence|supersedes?|in case of conflict|conflicts?\s+with|higher priority)\b`)

	schemaBlockRe = regexp.MustCompile(`\{([^{}]{2,120})\}`)
	arrayOfRe      = regexp.MustCompile(`(?i)\b(?:array|list)s?\s+of\s+([a-zA-Z]+)`)
	emptyOnMissRe  = regexp.MustCompile(`(?i)\bempty(?:\s+(?:array|list|string|response))?\s+if\b|\breturn\s+(?:an?\s+)?empty\b|\bnothing\s+if\b`)
	refMaterialRe  = regexp.MustCompile(`(?i)\b(?:the\s+)?(following|attached|provided|above|below)\s+(\w+)`)

	outFormatRestateRe = regexp.MustCompile(`(?i)^\s*(?:always\s+)?(?:respond|reply|answer|output|format|return)\b`)
)

// PromptEncoder encodes task and configuration prompts into the
// hierarchical six-category token grammar.
type PromptEncoder struct {
	vocab    *vocab.Table
	analyzer analyze.Analyzer
	intents  *resolve.IntentResolver
	targets  *resolve.TargetResolver
	attrs    *resolve.AttributeResolver
	opts     config.PromptOptions
}

// NewPromptEncoder wires a prompt encoder over the shared resolvers.
func NewPromptEncoder(
	table *vocab.Table,
	analyzer analyze.Analyzer,
	intents *resolve.IntentResolver,
	targets *resolve.TargetResolver,
	attrs *resolve.AttributeResolver,
	opts config.PromptOptions,
) *PromptEncoder {
	return &PromptEncoder{
		vocab:    table,
		analyzer: analyzer,
		intents:  intents,
		targets:  targets,
		attrs:    attrs,
		opts:     opts,
	}
}

// DetectMode inspects structural cues: explicit role/rule blocks and
// placeholder markers imply configuration mode, imperative action text
// implies task mode.
func (e *PromptEncoder) DetectMode(text string) Mode {
	score := 0
	if roleDeclRe.MatchString(text) {
		score += 2
	} else if roleClauseRe.MatchString(text) {
		score++
	}
	if ruleHeaderRe.MatchString(text) {
		score += 2
	}
	if len(ruleLineRe.FindAllString(text, -1)) >= 2 {
		score++
	}
	if placeholderRe.MatchString(text) {
		score++
	}
	if score >= 2 {
		return ModeConfiguration
	}
	return ModeTask
}

// Encode compresses a prompt. degraded is true when attribute resolution
// exceeded its pattern-match budget and the result is partial.
func (e *PromptEncoder) Encode(ctx context.Context, text string, kind Kind) (compressed string, mode Mode, degraded bool, err error) {
	switch kind {
	case KindTaskPrompt:
		mode = ModeTask
	case KindConfigPrompt:
		mode = ModeConfiguration
	default:
		mode = e.DetectMode(text)
	}

	an, err := e.analyzer.Analyze(ctx, text)
	if err != nil {
		return "", mode, false, err
	}

	if mode == ModeConfiguration {
		compressed, degraded = e.encodeConfiguration(ctx, text, an)
		return compressed, mode, degraded, nil
	}
	compressed, degraded = e.encodeTask(ctx, text, an)
	return compressed, mode, degraded, nil
}

// encodeTask emits REQ, TARGET, EXTRACT, CTX and OUT tokens.
func (e *PromptEncoder) encodeTask(ctx context.Context, text string, an *analyze.Analysis) (string, bool) {
	var tokens []resolve.Token

	intents := e.intents.Resolve(ctx, text, an)
	kept := intents[:0]
	for _, in := range intents {
		if in.Confidence >= e.opts.MinConfidence {
			kept = append(kept, in)
		}
	}
	if actions := resolve.Pipeline(kept); len(actions) > 0 {
		tokens = append(tokens, resolve.NewToken(resolve.CategoryReq, actions...))
	}

	tr := e.targets.Resolve(ctx, text, an)
	if len(tr.Flow) > 0 {
		tok := resolve.NewToken(resolve.CategoryTarget, tr.Flow...)
		tok.Flow = len(tr.Flow) > 1
		if tr.Domain != "" {
			tok = tok.WithAttr("DOM", tr.Domain)
		}
		tokens = append(tokens, tok)
	}

	if extract := filterExtract(tr); len(extract) > 0 {
		tokens = append(tokens, resolve.NewToken(resolve.CategoryExtract, extract...))
	}

	attrs := e.attrs.Resolve(ctx, text)
	if len(attrs.Context) > 0 {
		// The first attribute doubles as the primary value so the token always
		// carries one: [CTX:LIMIT=5:SORT=DESC].
		ctxTok := resolve.Token{Category: resolve.CategoryCtx}
		for i, a := range attrs.Context {
			if i == 0 {
				ctxTok.Values = []string{a.Key + "=" + a.Value}
				continue
			}
			ctxTok = ctxTok.WithAttr(a.Key, a.Value)
		}
		tokens = append(tokens, ctxTok)
	}

	if out := e.outputToken(text, attrs.Output); !out.Empty() {
		tokens = append(tokens, out)
	}

	if ref := referenceToken(text, tr); !ref.Empty() {
		tokens = append(tokens, ref)
	}

	return resolve.Render(tokens), attrs.Degraded
}

// filterExtract drops extraction fields already expressed as the flow's
// output element, so "array of ids" does not yield both ID[] and EXTRACT:ID.
func filterExtract(tr resolve.TargetResolution) []string {
	if len(tr.Flow) == 0 {
		return tr.Extract
	}
	last := tr.Flow[len(tr.Flow)-1]
	if !strings.HasSuffix(last, "[]") {
		return tr.Extract
	}
	element := strings.TrimSuffix(last, "[]")
	var kept []string
	for _, f := range tr.Extract {
		if f != element {
			kept = append(kept, f)
		}
	}
	return kept
}

// outputToken builds the OUT token: format value, inline schema, array
// structure and empty-on-no-match behavior, plus tone attributes.
func (e *PromptEncoder) outputToken(text string, toneAttrs []resolve.Attr) resolve.Token {
	formats := e.vocab.MatchAll(vocab.CategoryFormat, text)
	var out resolve.Token
	if len(formats) > 0 {
		out = resolve.NewToken(resolve.CategoryOut, formats[0])
	} else if len(toneAttrs) > 0 || arrayOfRe.MatchString(text) {
		out = resolve.NewToken(resolve.CategoryOut, "TEXT")
	} else {
		return resolve.Token{}
	}

	if m := arrayOfRe.FindStringSubmatch(text); m != nil {
		out = out.WithAttr("STRUCT", "ARRAY")
		element := strings.ToUpper(strings.TrimSuffix(strings.ToLower(m[1]), "s"))
		if tok, ok := e.vocab.Lookup(vocab.CategoryExtraction, strings.ToLower(m[1])); ok {
			element = tok
		}
		out = out.WithAttr("ITEM", element)
	}
	if schema := e.inlineSchema(text); schema != "" {
		out = out.WithAttr("SCHEMA", schema)
	}
	if emptyOnMissRe.MatchString(text) {
		out = out.WithAttr("EMPTY", "NONE")
	}
	for _, a := range toneAttrs {
		out = out.WithAttr(a.Key, a.Value)
	}
	return out
}

// inlineSchema extracts a response-shape description like
// "{id, score, reason}" from the source text. Field type annotations and
// enumerated value ranges survive only under their configuration flags.
func (e *PromptEncoder) inlineSchema(text string) string {
	// Runtime placeholders use the same braces; strip them first.
	text = placeholderRe.ReplaceAllString(text, "")
	m := schemaBlockRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	body := m[1]
	if placeholderRe.MatchString("{" + body + "}") {
		// A runtime placeholder, not a schema.
		return ""
	}
	fields := strings.Split(body, ",")
	var parts []string
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		name, annotation := splitSchemaField(f)
		if name == "" {
			continue
		}
		part := name
		if annotation != "" {
			isEnum := strings.Contains(annotation, "|")
			if (isEnum && e.opts.AnnotateValueRanges) || (!isEnum && e.opts.AnnotateFieldTypes) {
				part += ":" + annotation
			}
		}
		parts = append(parts, part)
	}
	if len(parts) == 0 {
		return ""
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// splitSchemaField separates "score:number" or "status(open|closed)" into
// the field name and its annotation.
func splitSchemaField(f string) (name, annotation string) {
	if i := strings.IndexAny(f, ":("); i > 0 {
		name = strings.TrimSpace(f[:i])
		annotation = strings.Trim(strings.TrimSpace(f[i:]), ":() ")
		return name, annotation
	}
	fields := strings.Fields(f)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], ""
}

// referenceToken emits a REF token for material the prompt points at
// ("the following transcript") without restating it.
func referenceToken(text string, tr resolve.TargetResolution) resolve.Token {
	m := refMaterialRe.FindStringSubmatch(text)
	if m == nil {
		return resolve.Token{}
	}
	return resolve.NewToken(resolve.CategoryRef, "INPUT")
}

// encodeConfiguration emits ROLE, RULES, PRIORITY, OUT and REF tokens, then
// appends the minimized rule content.
func (e *PromptEncoder) encodeConfiguration(ctx context.Context, text string, an *analyze.Analysis) (string, bool) {
	var tokens []resolve.Token

	if role := e.roleToken(text); !role.Empty() {
		tokens = append(tokens, role)
	}

	ruleCount := len(ruleLineRe.FindAllString(text, -1))
	if ruleCount > 0 || ruleHeaderRe.MatchString(text) {
		value := "BASE"
		hasCustom := customRuleRe.MatchString(text)
		hasBase := baseRuleRe.MatchString(text)
		switch {
		case hasCustom && hasBase:
			value = "BASE+CUSTOM"
		case hasCustom:
			value = "CUSTOM"
		}
		tok := resolve.NewToken(resolve.CategoryRules, value)
		if ruleCount > 0 {
			tok = tok.WithAttr("N", strconv.Itoa(ruleCount))
		}
		tokens = append(tokens, tok)
	}

	if priorityRe.MatchString(text) {
		tokens = append(tokens, resolve.NewToken(resolve.CategoryPriority, "CUSTOM>BASE"))
	}

	attrs := e.attrs.Resolve(ctx, text)
	if out := e.outputToken(text, attrs.Output); !out.Empty() {
		tokens = append(tokens, out)
	}

	body := text
	if !e.opts.KeepRuleText {
		body = e.minimize(text)
	}

	// Placeholders must remain individually resolvable and non-duplicated:
	// enumerate the distinct ones on a REF token.
	if placeholders := uniquePlaceholders(body); len(placeholders) > 0 {
		tokens = append(tokens, resolve.NewToken(resolve.CategoryRef, placeholders...))
	}

	rendered := resolve.Render(tokens)
	if strings.TrimSpace(body) != "" {
		rendered += "\n" + strings.TrimSpace(body)
	}
	return rendered, attrs.Degraded
}

// roleToken derives a canonical role token from an explicit declaration or
// a "you are a ..." clause.
func (e *PromptEncoder) roleToken(text string) resolve.Token {
	var phrase string
	if m := roleDeclRe.FindStringSubmatch(text); m != nil {
		phrase = m[1]
	} else if m := roleClauseRe.FindStringSubmatch(text); m != nil {
		phrase = m[1]
	}
	if phrase == "" {
		return resolve.Token{}
	}

	// Keep the last significant words: "a helpful customer support agent
	// for Acme" -> SUPPORT_AGENT.
	words := strings.Fields(strings.ToLower(phrase))
	var significant []string
	for _, w := range words {
		w = strings.Trim(w, ".,;:!?\"'")
		// Boundary words end the role phrase and must win over the
		// stop-word skip ("for" is also a stop word).
		if w == "for" || w == "who" || w == "working" {
			break
		}
		if w == "" || e.vocab.IsStopWord(w) {
			continue
		}
		significant = append(significant, w)
	}
	if len(significant) == 0 {
		return resolve.Token{}
	}
	if len(significant) > 2 {
		significant = significant[len(significant)-2:]
	}
	value := strings.ToUpper(strings.Join(significant, "_"))
	return resolve.NewToken(resolve.CategoryRole, value)
}

// minimize strips natural-language sentences whose meaning is carried by an
// emitted token: role restatements, priority meta-instructions and
// output-format restatements. Lines holding a placeholder found nowhere
// else are kept regardless, so every placeholder survives verbatim.
func (e *PromptEncoder) minimize(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	var dropped []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		switch {
		case roleDeclRe.MatchString(line) && !ruleLineRe.MatchString(line):
			dropped = append(dropped, line)
		case roleClauseRe.MatchString(trimmed) && !ruleLineRe.MatchString(line):
			dropped = append(dropped, line)
		case priorityRe.MatchString(trimmed) && !ruleLineRe.MatchString(line):
			dropped = append(dropped, line)
		case outFormatRestateRe.MatchString(trimmed) && !ruleLineRe.MatchString(line) && e.mentionsFormat(trimmed):
			dropped = append(dropped, line)
		case ruleHeaderRe.MatchString(line) && strings.HasSuffix(trimmed, ":"):
			// Bare section header; the RULES token carries it.
			dropped = append(dropped, line)
		default:
			kept = append(kept, line)
		}
	}

	// Re-add dropped lines whose placeholders would otherwise be lost.
	keptText := strings.Join(kept, "\n")
	for _, line := range dropped {
		for _, ph := range placeholderRe.FindAllString(line, -1) {
			if !strings.Contains(keptText, ph) {
				kept = append(kept, line)
				keptText += "\n" + line
				break
			}
		}
	}

	return strings.Join(kept, "\n")
}

func (e *PromptEncoder) mentionsFormat(line string) bool {
	return len(e.vocab.MatchAll(vocab.CategoryFormat, line)) > 0
}

// uniquePlaceholders returns the distinct runtime placeholders in text, in
// first-occurrence order.
func uniquePlaceholders(text string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, ph := range placeholderRe.FindAllString(text, -1) {
		if _, dup := seen[ph]; dup {
			continue
		}
		seen[ph] = struct{}{}
		out = append(out, ph)
	}
	return out
}
