package encoder

import (
	"context"
	"regexp"
	"strings"

	"github.com/fyrsmithlabs/sempress/internal/analyze"
	"github.com/fyrsmithlabs/sempress/internal/config"
	"github.com/fyrsmithlabs/sempress/internal/resolve"
	"github.com/fyrsmithlabs/sempress/internal/vocab"
)

// Speaker roles recognized in transcript turns.
const (
	speakerAgent    = "agent"
	speakerCustomer = "customer"
)

var (
	turnRe = regexp.MustCompile(`(?i)^\s*(?:\[[^\]]*\]\s*)?(agent|rep|representative|support|advisor|customer|caller|client|user)\s*(?:\([^)]*\))?\s*:\s*(.*)$`)

	durationRe = regexp.MustCompile(`(?i)\b(?:duration|length|lasted)\s*:?\s*(\d+)\s*(hours?|hrs?|minutes?|mins?|seconds?|secs?|h|m|s)\b`)
	durInlineRe = regexp.MustCompile(`(?i)\b(\d+)[- ](minute|min|hour|hr|second|sec)\s+(?:call|chat|conversation)\b`)
	agentIDRe   = regexp.MustCompile(`(?i)\bagent(?:\s+id)?\s*[:#]\s*([A-Za-z]{0,3}-?\d{2,6})`)
	// A name header is two to four capitalized words; dialogue turns never
	// fit this shape.
	customerRe = regexp.MustCompile(`(?im)^\s*customer(?:\s+name)?\s*:\s*([A-Z][a-z'-]+(?:\s+[A-Z][a-z'-]+){1,3})\s*$`)

	accountRe = regexp.MustCompile(`(?i)\b(?:account|acct)(?:\s+(?:number|no\.?))?\s*(?:is\s+|[:#]\s*)?([A-Za-z]{0,3}\d[\dA-Za-z-]{2,19})\b`)
	orderRe   = regexp.MustCompile(`(?i)\border(?:\s+(?:number|no\.?))?\s*(?:is\s+|[:#]\s*)?([A-Za-z]{0,3}\d[\dA-Za-z-]{2,19})\b`)
	emailAddrRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneNumRe  = regexp.MustCompile(`\+?\d[\d().\- ]{7,14}\d`)

	refNumRe = regexp.MustCompile(`(?i)\b(?:ref(?:erence)?|ticket|case|confirmation)(?:\s+(?:number|no\.?))?\s*(?:is\s+|[:#]\s*)?([A-Za-z]{0,3}-?\d[\dA-Za-z-]{1,19})\b`)
	etaRe    = regexp.MustCompile(`(?i)\b(?:within|in)\s+(\d+)(?:\s*(?:-|to)\s*(\d+))?\s*(?:business\s+)?(days?|hours?|weeks?|minutes?)\b`)

	resultOKRe   = regexp.MustCompile(`(?i)\b(?:done|processed|completed|issued|applied|submitted|successfully|all set|taken care of)\b`)
	resultFailRe = regexp.MustCompile(`(?i)\b(?:failed|unable|couldn'?t|cannot|can'?t|declined|rejected)\b`)

	urgencyRe = regexp.MustCompile(`(?i)\b(?:urgent(?:ly)?|immediately|right now|unacceptable|furious|outraged|third time|lawyer|legal action|emergency)\b`)
)

// turn is one speaker turn in document order.
type turn struct {
	speaker string
	text    string
}

// TranscriptEncoder encodes customer-service transcripts into the seven
// interaction token categories.
type TranscriptEncoder struct {
	vocab    *vocab.Table
	analyzer analyze.Analyzer
	opts     config.TranscriptOptions
}

// NewTranscriptEncoder wires a transcript encoder.
func NewTranscriptEncoder(table *vocab.Table, analyzer analyze.Analyzer, opts config.TranscriptOptions) *TranscriptEncoder {
	return &TranscriptEncoder{vocab: table, analyzer: analyzer, opts: opts}
}

// Encode compresses a transcript into CALL, CUSTOMER, CONTACT, ISSUE,
// ACTION, RESOLUTION and SENTIMENT tokens.
func (e *TranscriptEncoder) Encode(ctx context.Context, text string) (string, error) {
	an, err := e.analyzer.Analyze(ctx, text)
	if err != nil {
		return "", err
	}

	turns, preamble := parseTurns(text)
	customerText := joinTurns(turns, speakerCustomer)
	agentTurns := selectTurns(turns, speakerAgent)

	var tokens []resolve.Token
	tokens = append(tokens, e.callToken(text, preamble))

	if name := e.customerToken(text, customerText, an); !name.Empty() {
		tokens = append(tokens, name)
	}
	if contact := contactToken(text); !contact.Empty() {
		tokens = append(tokens, contact)
	}

	tokens = append(tokens, e.issueToken(customerText, text))

	actions := e.actionTokens(agentTurns)
	if e.opts.MaxActions > 0 && len(actions) > e.opts.MaxActions {
		actions = actions[:e.opts.MaxActions]
	}
	tokens = append(tokens, actions...)

	tokens = append(tokens, e.resolutionToken(turns, text))

	tokens = append(tokens, e.sentimentToken(turns, customerText))

	return resolve.Render(tokens), nil
}

// parseTurns splits speaker-prefixed lines into turns. Unprefixed lines
// continue the previous turn; lines before the first turn form the preamble
// (call metadata headers).
func parseTurns(text string) (turns []turn, preamble string) {
	var pre []string
	for _, line := range strings.Split(text, "\n") {
		if m := turnRe.FindStringSubmatch(line); m != nil {
			turns = append(turns, turn{speaker: normalizeSpeaker(m[1]), text: m[2]})
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if len(turns) == 0 {
			pre = append(pre, trimmed)
			continue
		}
		turns[len(turns)-1].text += " " + trimmed
	}
	return turns, strings.Join(pre, "\n")
}

func normalizeSpeaker(s string) string {
	switch strings.ToLower(s) {
	case "agent", "rep", "representative", "support", "advisor":
		return speakerAgent
	default:
		return speakerCustomer
	}
}

func joinTurns(turns []turn, speaker string) string {
	var parts []string
	for _, t := range turns {
		if t.speaker == speaker {
			parts = append(parts, t.text)
		}
	}
	return strings.Join(parts, "\n")
}

func selectTurns(turns []turn, speaker string) []turn {
	var out []turn
	for _, t := range turns {
		if t.speaker == speaker {
			out = append(out, t)
		}
	}
	return out
}

// callToken builds [CALL:CHANNEL:DUR=..:AGENT=..] from the preamble and
// full text. The channel defaults to PHONE when nothing marks it.
func (e *TranscriptEncoder) callToken(text, preamble string) resolve.Token {
	channel := "PHONE"
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "chat"):
		channel = "CHAT"
	case strings.Contains(lower, "email thread") || strings.Contains(lower, "via email"):
		channel = "EMAIL"
	}

	tok := resolve.NewToken(resolve.CategoryCall, channel)
	if dur := findDuration(preamble + "\n" + text); dur != "" {
		tok = tok.WithAttr("DUR", dur)
	}
	if m := agentIDRe.FindStringSubmatch(text); m != nil {
		tok = tok.WithAttr("AGENT", strings.ToUpper(m[1]))
	}
	return tok
}

func findDuration(text string) string {
	if m := durationRe.FindStringSubmatch(text); m != nil {
		return m[1] + durUnit(m[2])
	}
	if m := durInlineRe.FindStringSubmatch(text); m != nil {
		return m[1] + durUnit(m[2])
	}
	return ""
}

func durUnit(unit string) string {
	switch strings.ToLower(unit)[0] {
	case 'h':
		return "h"
	case 's':
		return "s"
	default:
		return "m"
	}
}

// greetingWords are common conversational openers the tagger sometimes
// mislabels as person entities.
var greetingWords = map[string]struct{}{
	"hello": {}, "hi": {}, "hey": {}, "thanks": {}, "thank you": {},
	"okay": {}, "ok": {}, "sure": {}, "great": {}, "goodbye": {}, "bye": {},
	"welcome": {}, "good morning": {}, "good afternoon": {}, "good evening": {},
}

// customerToken takes an explicit metadata header first, then the first
// person entity found within the customer's own turns.
func (e *TranscriptEncoder) customerToken(text, customerText string, an *analyze.Analysis) resolve.Token {
	var name string
	if m := customerRe.FindStringSubmatch(text); m != nil {
		name = m[1]
	} else {
		for _, ent := range an.Entities {
			if ent.Label != "PERSON" {
				continue
			}
			if _, greeting := greetingWords[strings.ToLower(ent.Text)]; greeting {
				continue
			}
			if !strings.Contains(customerText, ent.Text) {
				continue
			}
			name = ent.Text
			break
		}
	}
	if name == "" {
		return resolve.Token{}
	}
	value := strings.ToUpper(strings.Join(strings.Fields(strings.TrimSpace(name)), "_"))
	return resolve.NewToken(resolve.CategoryCustomer, value)
}

// contactToken collects account, order, email and phone identifiers.
func contactToken(text string) resolve.Token {
	tok := resolve.Token{Category: resolve.CategoryContact}
	add := func(key, value string) {
		if len(tok.Values) == 0 {
			tok.Values = []string{key + "=" + value}
			return
		}
		tok = tok.WithAttr(key, value)
	}
	if m := accountRe.FindStringSubmatch(text); m != nil {
		add("ACC", strings.ToUpper(m[1]))
	}
	if m := orderRe.FindStringSubmatch(text); m != nil {
		add("ORDER", strings.ToUpper(m[1]))
	}
	if m := emailAddrRe.FindString(text); m != "" {
		add("EMAIL", strings.ToLower(m))
	}
	if m := phoneNumRe.FindString(text); m != "" {
		add("PHONE", compactPhone(m))
	}
	return tok
}

func compactPhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '+' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// issueToken picks exactly one issue. When nothing in the customer's turns
// (or the whole text) matches, the interaction degrades to a low-severity
// inquiry rather than failing.
func (e *TranscriptEncoder) issueToken(customerText, fullText string) resolve.Token {
	source := customerText
	if strings.TrimSpace(source) == "" {
		source = fullText
	}
	issues := e.vocab.MatchAll(vocab.CategoryIssue, source)
	if len(issues) == 0 {
		issues = e.vocab.MatchAll(vocab.CategoryIssue, fullText)
	}
	if len(issues) == 0 {
		return resolve.NewToken(resolve.CategoryIssue, "INQUIRY").WithAttr("SEV", "LOW")
	}
	tok := resolve.NewToken(resolve.CategoryIssue, issues[0])
	return tok.WithAttr("SEV", severityFor(issues[0], fullText))
}

// baseSeverity rates issue types; urgency cues in the text bump one level.
var baseSeverity = map[string]string{
	"SERVICE_OUTAGE":  "HIGH",
	"BILLING_DISPUTE": "MED",
	"ACCOUNT_ACCESS":  "MED",
	"TECHNICAL_ISSUE": "MED",
	"SHIPPING_DELAY":  "LOW",
	"CANCELLATION":    "LOW",
	"COMPLAINT":       "LOW",
}

func severityFor(issue, text string) string {
	sev, ok := baseSeverity[issue]
	if !ok {
		sev = "LOW"
	}
	if urgencyRe.MatchString(text) {
		switch sev {
		case "LOW":
			sev = "MED"
		case "MED":
			sev = "HIGH"
		}
	}
	return sev
}

// actionTokens emits one ACTION per remediation found in agent turns, in
// chronological order, with result, reference and ETA attributes scoped to
// the turn that carried the action.
func (e *TranscriptEncoder) actionTokens(agentTurns []turn) []resolve.Token {
	var tokens []resolve.Token
	seen := make(map[string]struct{})
	for _, t := range agentTurns {
		for _, action := range e.vocab.MatchAll(vocab.CategoryCallAction, t.text) {
			if _, dup := seen[action]; dup {
				continue
			}
			seen[action] = struct{}{}
			tok := resolve.NewToken(resolve.CategoryAction, action)
			switch {
			case resultFailRe.MatchString(t.text):
				tok = tok.WithAttr("RESULT", "FAIL")
			case resultOKRe.MatchString(t.text):
				tok = tok.WithAttr("RESULT", "OK")
			}
			if m := refNumRe.FindStringSubmatch(t.text); m != nil {
				tok = tok.WithAttr("REF", strings.ToUpper(m[1]))
			}
			if eta := findETA(t.text); eta != "" {
				tok = tok.WithAttr("ETA", eta)
			}
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func findETA(text string) string {
	m := etaRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	unit := "d"
	switch strings.ToLower(m[3])[0] {
	case 'h':
		unit = "h"
	case 'w':
		unit = "w"
	case 'm':
		unit = "m"
	}
	if m[2] != "" {
		return m[1] + "-" + m[2] + unit
	}
	return m[1] + unit
}

// resolutionToken scans turns from the end for an explicit closing status.
// Without one, a promised ETA yields PENDING and anything else UNRESOLVED;
// the category is always present.
func (e *TranscriptEncoder) resolutionToken(turns []turn, fullText string) resolve.Token {
	for i := len(turns) - 1; i >= 0; i-- {
		statuses := e.vocab.MatchAll(vocab.CategoryResolution, turns[i].text)
		if len(statuses) == 0 {
			continue
		}
		tok := resolve.NewToken(resolve.CategoryResolution, statuses[0])
		if eta := findETA(turns[i].text); eta != "" {
			tok = tok.WithAttr("ETA", eta)
		}
		return tok
	}
	if eta := findETA(fullText); eta != "" {
		return resolve.NewToken(resolve.CategoryResolution, "PENDING").WithAttr("ETA", eta)
	}
	return resolve.NewToken(resolve.CategoryResolution, "UNRESOLVED")
}

// sentimentToken tracks the customer's emotional trajectory across turns.
// Consecutive duplicate states collapse; the trajectory always keeps at
// least a start and end state, defaulting to NEUTRAL→NEUTRAL.
func (e *TranscriptEncoder) sentimentToken(turns []turn, customerText string) resolve.Token {
	var states []string
	for _, t := range turns {
		if t.speaker != speakerCustomer {
			continue
		}
		found := e.vocab.MatchAll(vocab.CategorySentiment, t.text)
		if len(found) == 0 {
			continue
		}
		if len(states) > 0 && states[len(states)-1] == found[0] {
			continue
		}
		states = append(states, found[0])
	}
	if len(states) == 0 {
		// Turnless input still gets a trajectory from the raw text.
		states = e.vocab.MatchAll(vocab.CategorySentiment, customerText)
	}

	switch {
	case len(states) == 0:
		states = []string{"NEUTRAL", "NEUTRAL"}
	case len(states) == 1:
		states = []string{states[0], states[0]}
	case len(states) > 2 && !e.opts.IntermediateSentiment:
		states = []string{states[0], states[len(states)-1]}
	}

	tok := resolve.NewToken(resolve.CategorySentiment, states...)
	tok.Flow = true
	return tok
}
