package cleaner

import (
	"regexp"
	"strings"
)

// Rule is one ordered substitution applied by CleanTranslatedText.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
}

// space matches Unicode whitespace. \s alone is ASCII only and misses the
// no-break spaces scraped result pages carry.
const space = `[\s\v\x1c-\x1f\x{85}\p{Z}]`

var rules = []Rule{
	{Name: "leading article", Pattern: regexp.MustCompile(`(?i)^(a|an|the)` + space + `+`)},
	{Name: "trailing copula", Pattern: regexp.MustCompile(`(?i)` + space + `+(is|are|was|were)` + space + `+.*$`)},
	{Name: "leading it is", Pattern: regexp.MustCompile(`(?i)^it` + space + `+(is|was)` + space + `+`)},
	{Name: "leading this is", Pattern: regexp.MustCompile(`(?i)^this` + space + `+(is|was)` + space + `+`)},
	{Name: "leading that is", Pattern: regexp.MustCompile(`(?i)^that` + space + `+(is|was)` + space + `+`)},
}

// splitPoint marks where the head phrase ends.
var splitPoint = regexp.MustCompile(`[,;.]|` + space + `+(is|are|and|or)` + space + `+`)

// Rules returns the substitution rules in the order they are applied.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// CleanGeneratedAnswer returns the trimmed text before the first comma.
func CleanGeneratedAnswer(generated string) string {
	if generated == "" {
		return ""
	}
	head, _, _ := strings.Cut(generated, ",")
	return strings.TrimSpace(head)
}

// CleanTranslatedText lower-cases the text, strips filler words and keeps
// only the phrase before the first punctuation mark or conjunction.
func CleanTranslatedText(text string) string {
	if text == "" {
		return ""
	}

	text = strings.TrimSpace(strings.ToLower(text))
	for _, r := range rules {
		text = r.Pattern.ReplaceAllString(text, "")
	}

	if loc := splitPoint.FindStringIndex(text); loc != nil {
		text = text[:loc[0]]
	}
	return strings.TrimSpace(text)
}
