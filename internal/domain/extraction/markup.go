package extraction

import (
	"regexp"
	"strings"
)

// checkboxPattern matches an optional unordered bullet followed by a checkbox
// indicator: "[ ]", "[x]", "[X]", or the "[todo]" marker.
var checkboxPattern = regexp.MustCompile(`(?i)^(?:[-*+•]\s*)?\[(?:\s|x|todo)\]`)

// bulletPattern matches an unordered bullet or an ordinal enumerator such as
// "1." or "2)". A bullet must be followed by whitespace so that emphasis
// ("**bold**") and horizontal rules ("---") are not mistaken for list items.
var bulletPattern = regexp.MustCompile(`^(?:[-*+]\s+|•\s*|\d{1,3}[.)]\s+)`)

// splitLines splits text on "\n", "\r\n", and "\r", dropping the separators.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// stripMarkup removes every leading checkbox and bullet marker from s, so
// nested markup like "1. - [ ] Ship it" reduces to "Ship it". The result is
// trimmed.
func stripMarkup(s string) string {
	s = strings.TrimSpace(s)
	for {
		loc := checkboxPattern.FindStringIndex(s)
		if loc == nil {
			loc = bulletPattern.FindStringIndex(s)
		}
		if loc == nil {
			return s
		}
		s = strings.TrimSpace(s[loc[1]:])
	}
}
