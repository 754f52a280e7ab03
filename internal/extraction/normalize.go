package extraction

import (
	"regexp"
	"strings"
)

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	// Keep letters, digits, underscore, whitespace and basic punctuation
	// that appears inside skill names (node.js, scikit-learn, c++).
	specialCharsRE = regexp.MustCompile(`[^\w\s.,+-]`)
)

// NormalizeText prepares free text for vocabulary matching: lowercase,
// collapse runs of whitespace, strip characters outside letters, digits,
// whitespace and ". , - +".
func NormalizeText(text string) string {
	text = strings.ToLower(text)
	text = whitespaceRE.ReplaceAllString(text, " ")
	text = specialCharsRE.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
