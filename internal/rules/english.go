package rules

// englishRules returns the built-in English rule table. Rule order matters:
// within a key, the first matching rule wins.
func englishRules() []Rule {
	return []Rule{
		// Durations, normalized to a unit-suffixed numeric form.
		{Category: CategoryDuration, Pattern: `\b(\d+)\s*[- ]?\s*(seconds?|minutes?|mins?|hours?|hrs?|days?|weeks?|months?)\b`, Key: "DUR", Value: "$1 $2"},
		{Category: CategoryDuration, Pattern: `\b(\d+)\s*(s|m|h|d|w)\b`, Key: "DUR", Value: "$1 $2"},

		// Limits: "top 5", "first 10", "best 3", "5 results".
		{Category: CategoryLimit, Pattern: `\b(?:top|first|best|up to|max(?:imum)? of)\s+(\d+)\b`, Key: "LIMIT", Value: "$1"},
		{Category: CategoryLimit, Pattern: `\b(\d+)\s+(?:results|items|examples|suggestions|options|entries)\b`, Key: "LIMIT", Value: "$1"},

		// Ordering and ranking direction.
		{Category: CategoryOrdering, Pattern: `\b(?:descending|highest first|high to low|most\s+\w+\s+first)\b`, Key: "SORT", Value: "DESC"},
		{Category: CategoryOrdering, Pattern: `\b(?:ascending|lowest first|low to high|oldest first)\b`, Key: "SORT", Value: "ASC"},
		{Category: CategoryOrdering, Pattern: `\b(?:rank(?:ed|ing)?|order(?:ed)?|sort(?:ed)?)\s+by\s+(\w+)\b`, Key: "SORT_BY", Value: "$1"},
		{Category: CategoryOrdering, Pattern: `\bprioritiz(?:e|ing)\b`, Key: "SORT", Value: "PRIORITY"},

		// Tone and style descriptors.
		{Category: CategoryTone, Pattern: `\b(formal|professional|casual|friendly|technical|concise|polite|neutral|persuasive|empathetic)\s+(?:tone|style|voice|manner|language)\b`, Key: "TONE", Value: "$1"},
		{Category: CategoryTone, Pattern: `\b(?:in|with|using) a\s+(formal|professional|casual|friendly|technical|concise|polite|neutral|persuasive|empathetic)\b`, Key: "TONE", Value: "$1"},

		// Comparison phrasing.
		{Category: CategoryComparison, Pattern: `\b(?:differences?|how .{1,40} differs?)\b`, Key: "COMPARE", Value: "DIFF"},
		{Category: CategoryComparison, Pattern: `\bsimilarit(?:y|ies)\b`, Key: "COMPARE", Value: "SIM"},
		{Category: CategoryComparison, Pattern: `\bpros and cons\b`, Key: "COMPARE", Value: "PROSCONS"},
		{Category: CategoryComparison, Pattern: `\btrade[- ]?offs?\b`, Key: "COMPARE", Value: "TRADEOFF"},
		{Category: CategoryComparison, Pattern: `\b(?:versus|vs\.?)\b`, Key: "COMPARE", Value: "VS"},

		// Numeric thresholds.
		{Category: CategoryThreshold, Pattern: `\b(?:at least|minimum of|no fewer than|more than)\s+(\d+)\b`, Key: "MIN", Value: "$1"},
		{Category: CategoryThreshold, Pattern: `\b(?:at most|maximum of|no more than|fewer than|less than|under)\s+(\d+)\b`, Key: "MAX", Value: "$1"},

		// Explanation requests.
		{Category: CategoryExplanation, Pattern: `\bexplain (?:why|how|what)\b`, Key: "EXPLAIN", Value: "Y"},
		{Category: CategoryExplanation, Pattern: `\b(?:with|include|provide|give) (?:an? )?(?:explanation|reasoning|rationale|justification)\b`, Key: "EXPLAIN", Value: "Y"},
		{Category: CategoryExplanation, Pattern: `\bstep[- ]by[- ]step\b`, Key: "EXPLAIN", Value: "STEPS"},
	}
}
