package analyze

import "strings"

// Irregular English verb forms the suffix rules get wrong.
var irregularVerbs = map[string]string{
	"was": "be", "were": "be", "been": "be", "being": "be", "is": "be", "are": "be", "am": "be",
	"has": "have", "had": "have", "having": "have",
	"did": "do", "done": "do", "doing": "do", "does": "do",
	"gave": "give", "given": "give", "giving": "give",
	"made": "make", "making": "make",
	"wrote": "write", "written": "write", "writing": "write",
	"found": "find", "finding": "find",
	"got": "get", "gotten": "get", "getting": "get",
	"took": "take", "taken": "take", "taking": "take",
	"ran": "run", "running": "run",
	"said": "say", "saying": "say",
	"went": "go", "gone": "go", "going": "go",
	"showed": "show", "shown": "show", "showing": "show",
	"chose": "choose", "chosen": "choose", "choosing": "choose",
}

// lemmatizeEnglish reduces an inflected English word to its base form using
// suffix rules. A full morphological lexicon is overkill here: the lemma is
// only used as a vocabulary lookup key, so near-miss lemmas simply fail the
// lookup and cost nothing.
func lemmatizeEnglish(word, tag string) string {
	w := strings.ToLower(word)
	if base, ok := irregularVerbs[w]; ok {
		return base
	}
	if len(w) <= 3 {
		return w
	}

	switch {
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "sses"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "xes"), strings.HasSuffix(w, "zes"),
		strings.HasSuffix(w, "ches"), strings.HasSuffix(w, "shes"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "ing") && len(w) > 5:
		stem := w[:len(w)-3]
		return undouble(restoreE(stem))
	case strings.HasSuffix(w, "ied"):
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "ed") && len(w) > 4:
		stem := w[:len(w)-2]
		return undouble(restoreE(stem))
	case strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") && !strings.HasSuffix(w, "us"):
		return w[:len(w)-1]
	}
	return w
}

// restoreE re-adds a dropped silent e ("analyz" -> "analyze").
func restoreE(stem string) string {
	for _, suffix := range []string{"at", "iz", "is", "yz", "ys", "ar", "uc", "in", "ag", "us", "as", "or", "ur"} {
		if strings.HasSuffix(stem, suffix) && len(stem) > len(suffix)+1 {
			return stem + "e"
		}
	}
	return stem
}

// undouble collapses a doubled final consonant ("matchedd" class of stems).
func undouble(stem string) string {
	n := len(stem)
	if n >= 2 && stem[n-1] == stem[n-2] && isConsonant(stem[n-1]) && stem[n-1] != 'l' && stem[n-1] != 's' {
		return stem[:n-1]
	}
	return stem
}

func isConsonant(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	}
	return b >= 'a' && b <= 'z'
}

// lemmatizeSpanish strips common Spanish inflection endings back to the
// infinitive where the heuristic holds, based on suffix analysis.
func lemmatizeSpanish(word string) string {
	w := strings.ToLower(word)
	if len(w) <= 4 {
		return w
	}
	suffixes := []struct{ from, to string }{
		{"ando", "ar"}, {"iendo", "er"},
		{"ar", "ar"}, {"er", "er"}, {"ir", "ir"},
		{"a", "ar"}, {"e", "ar"}, {"en", "ar"}, {"an", "ar"},
	}
	for _, s := range suffixes {
		if strings.HasSuffix(w, s.from) {
			return w[:len(w)-len(s.from)] + s.to
		}
	}
	return w
}
