package rules

// spanishRules returns the built-in Spanish rule table. Coverage is partial
// on purpose: only durations and limits are mapped. Rule coverage has an
// independent lifecycle from vocabulary coverage.
func spanishRules() []Rule {
	return []Rule{
		{Category: CategoryDuration, Pattern: `\b(\d+)\s*(segundos?|minutos?|horas?|d[ií]as?|semanas?|mes(?:es)?)\b`, Key: "DUR", Value: "$1 $2"},
		{Category: CategoryLimit, Pattern: `\b(?:los|las)?\s*(?:primeros?|mejores|principales)\s+(\d+)\b`, Key: "LIMIT", Value: "$1"},
		{Category: CategoryLimit, Pattern: `\b(\d+)\s+(?:resultados|elementos|ejemplos|opciones)\b`, Key: "LIMIT", Value: "$1"},
	}
}
