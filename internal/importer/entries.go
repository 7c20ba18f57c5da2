package importer

import (
	"regexp"
	"strings"
)

// blankLineRe splits a section body into entry candidates.
var blankLineRe = regexp.MustCompile(`\n\s*\n`)

// bulletLineRe matches bullet-marked lines and captures their text.
var bulletLineRe = regexp.MustCompile(`(?m)^[ \t]*[•●\-*][ \t]*(.+?)[ \t]*$`)

// splitEntries breaks a section body into entry candidates on blank-line
// boundaries, dropping empty candidates.
func splitEntries(body string) []string {
	parts := blankLineRe.Split(body, -1)

	entries := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			entries = append(entries, trimmed)
		}
	}
	return entries
}

// extractBullets returns the text of every bullet-marked line in s, in order.
func extractBullets(s string) []string {
	bullets := []string{}
	for _, m := range bulletLineRe.FindAllStringSubmatch(s, -1) {
		bullets = append(bullets, m[1])
	}
	return bullets
}

// firstLine returns the first non-empty line of s.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
