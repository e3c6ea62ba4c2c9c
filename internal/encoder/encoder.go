// Package encoder implements the three sibling encoders (prompt,
// transcript, structured data) and the output assembler that enforces the
// no-regression fallback.
package encoder

import (
	"regexp"
	"strings"
)

// Kind identifies what kind of content an encoder handles.
type Kind string

const (
	// KindPrompt auto-detects between task and configuration mode.
	KindPrompt Kind = "prompt"
	// KindTaskPrompt forces task-prompt encoding.
	KindTaskPrompt Kind = "task_prompt"
	// KindConfigPrompt forces configuration-prompt encoding.
	KindConfigPrompt Kind = "config_prompt"
	// KindTranscript encodes customer-service transcripts.
	KindTranscript Kind = "transcript"
	// KindRecords encodes uniform structured records.
	KindRecords Kind = "records"
)

var wsRunRe = regexp.MustCompile(`[ \t]+`)
var blankLinesRe = regexp.MustCompile(`\n{3,}`)

// NormalizeWhitespace collapses horizontal whitespace runs, trims line ends,
// and squeezes blank-line runs, without disturbing token content.
func NormalizeWhitespace(s string) string {
	s = wsRunRe.ReplaceAllString(s, " ")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	s = strings.Join(lines, "\n")
	s = blankLinesRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
