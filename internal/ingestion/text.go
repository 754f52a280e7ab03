// Package ingestion prepares raw description text for the matching engine.
// Job and career descriptions sometimes arrive as HTML from employer-side
// editors; everything downstream (extraction, embedding) expects plain text.
package ingestion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	multiSpaceRE = regexp.MustCompile(`[ \t]+`)
	multiBlankRE = regexp.MustCompile(`\n{3,}`)
)

// StripHTML parses HTML and returns its visible text with noise elements
// (navigation, scripts, styles) removed.
func StripHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript").Remove()

	body := doc.Find("body")
	if body.Length() == 0 {
		return CleanText(doc.Text()), nil
	}
	return CleanText(body.Text()), nil
}

// CleanText normalizes plain text: line endings to LF, runs of spaces and
// tabs collapsed, at most two consecutive blank lines, trimmed ends.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, len(lines))
	for i, line := range lines {
		cleaned[i] = strings.TrimSpace(multiSpaceRE.ReplaceAllString(line, " "))
	}

	result := strings.Join(cleaned, "\n")
	result = multiBlankRE.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// Prepare returns description text ready for extraction and embedding,
// stripping markup when the input looks like HTML.
func Prepare(raw string) string {
	if looksLikeHTML(raw) {
		if text, err := StripHTML(raw); err == nil {
			return text
		}
	}
	return CleanText(raw)
}

// looksLikeHTML is a cheap heuristic: a closing tag or a common block
// element is enough to route through the HTML parser.
func looksLikeHTML(s string) bool {
	lower := strings.ToLower(s)
	return strings.Contains(lower, "</") ||
		strings.Contains(lower, "<p>") ||
		strings.Contains(lower, "<br") ||
		strings.Contains(lower, "<div")
}
