package core

import (
	"html"
	"regexp"
	"strings"
)

var markupTagRegex = regexp.MustCompile(`<[^>]*>`)

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// Sanitize trims `s`, strips markup tags and escapes HTML entities so that
// stored values are safe to render verbatim later.
func Sanitize(s string) string {
	s = strings.TrimSpace(s)
	s = markupTagRegex.ReplaceAllString(s, "")
	return html.EscapeString(s)
}
