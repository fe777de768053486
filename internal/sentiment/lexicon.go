package sentiment

import "regexp"

// Lexicon patterns for the deterministic keyword classifier. Aimed at
// the register of competitive-programming chat: short, slangy, often
// typed mid-frustration.

var negativePatterns = compileAll([]string{
	// frustration
	`\bstuck\b`, `\bwtf\b`, `\bimpossible\b`, `\bhate\b`, `\bstupid\b`,
	`\bbroken\b`, `\bconfusing\b`, `\bwhy\s+won'?t\b`, `\bdoesn'?t\s+work\b`,
	`\bso\s+hard\b`, `\bfrustrat`, `\bannoy`, `\bugh\b`, `\bidk\b`,
	// giving up
	`\bquit\b`, `\bgive\s+up\b`, `\bcan'?t\s+do\s+this\b`, `\btoo\s+hard\b`,
	`\bforget\s+it\b`, `\bno\s+point\b`, `\bnever\s+gonna\b`,
	`\bwaste\s+of\s+time\b`, `\bi'?m\s+out\b`, `\blast\s+try\b`,
	// self-doubt
	`\bi\s+suck\b`, `\bnot\s+smart\s+enough\b`, `\bdumb\b`, `\bi'?m\s+bad\b`,
	`\beveryone\s+else\b`, `\bnever\s+learn\b`, `\bnot\s+cut\s+out\b`,
	// fatigue
	`\btired\b`, `\bexhausted\b`, `\bbored\b`, `\bsleepy\b`, `\bover\s+it\b`,
	`\bdon'?t\s+care\b`, `\bmeh\b`, `\bzoned\s+out\b`,
})

var positivePatterns = compileAll([]string{
	// confidence
	`\bgot\s+it\b`, `\bfigured\s+(it\s+)?out\b`, `\bmakes\s+sense\b`,
	`\bfinally\b`, `\bclicked\b`, `\bi\s+understand\b`, `\beasy\b`,
	// joy
	`\blove\s+this\b`, `\bawesome\b`, `\bamazing\b`, `\bfun\b`, `\bnice\b`,
	`\byay\b`, `\blet'?s\s+go\b`, `\bwoohoo\b`, `\bhell\s+yeah\b`, `\bcool\b`,
	// growth
	`\blearned\b`, `\bimproved\b`, `\bgetting\s+better\b`, `\bprogress\b`,
	`\bsee\s+the\s+pattern\b`, `\blevel\s+up\b`,
})

// maskingPatterns match formally-positive phrases that commonly hide
// distress. They do not flip the label by themselves; they set the
// MaskingHint flag for the alignment classifier.
var maskingPatterns = compileAll([]string{
	`\bi'?m\s+fine\b`, `\bno\s+problem\b`, `\bit'?s\s+ok(ay)?\b`,
	`\ball\s+good\b`, `\byeah\s+sure\b`, `\bwhatever\s+works\b`,
	`\bdoesn'?t\s+matter\b`, `\bi\s+guess\b`,
})

func compileAll(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(`(?i)` + p)
	}
	return out
}

func countMatches(patterns []*regexp.Regexp, text string) int {
	n := 0
	for _, p := range patterns {
		if p.MatchString(text) {
			n++
		}
	}
	return n
}
