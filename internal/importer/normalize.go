// Package importer implements the heuristic text-to-structured-data extraction
// engine: normalization, section segmentation, per-section field extraction,
// record assembly and confidence scoring.
package importer

import (
	"regexp"
	"strings"
)

var (
	// local at domain, where the @ was lost during text extraction.
	splitEmailRe = regexp.MustCompile(`([A-Za-z0-9._%+-]+)\s+at\s+([A-Za-z0-9-]+\.[A-Za-z0-9.-]+)`)

	// Three digit groups of length 3/3/4 split across whitespace or newlines.
	splitPhoneRe = regexp.MustCompile(`\b(\d{3})\s+(\d{3})\s+(\d{4})\b`)

	// Known section-header words, upper-cased wherever they occur so later
	// segmentation matching is uniform.
	headerWordRe = regexp.MustCompile(`(?i)\b(education|experience|skills|projects)\b`)

	// A run of upper-case letters glued to the previous paragraph.
	gluedHeaderRe = regexp.MustCompile(`([^\sA-Z])([A-Z]{5,})`)
)

// Normalize repairs common extraction artifacts before segmentation. It is a
// pure, total function: input with no artifacts is returned unchanged.
func Normalize(raw string) string {
	text := raw

	// 1. Email repair: rejoin "local at domain" to "local@domain".
	text = splitEmailRe.ReplaceAllString(text, "$1@$2")

	// 2. Phone repair: rejoin split digit groups with hyphens.
	text = splitPhoneRe.ReplaceAllString(text, "$1-$2-$3")

	// 3. Section-header canonicalization.
	text = headerWordRe.ReplaceAllStringFunc(text, strings.ToUpper)

	// 4. Header isolation: give glued header lines a blank line of their own.
	text = gluedHeaderRe.ReplaceAllString(text, "$1\n\n$2")

	return text
}
