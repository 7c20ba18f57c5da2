package importer

import (
	"regexp"
	"strings"

	"github.com/DDH2004/Resume-Importer/internal/skills"
	"github.com/DDH2004/Resume-Importer/internal/types"
)

var (
	// Leading title-like run: capitalized words ending at a separator or
	// line break.
	titleRunRe = regexp.MustCompile(`^([A-Z][A-Za-z0-9.+#/&']*(?:[ \t]+[A-Za-z0-9.+#/&'()]+)*)`)

	// Separators between a title and the employer on the same line.
	titleSepRe = regexp.MustCompile(`[ \t]*[—–|][ \t]*|[ \t]+-[ \t]+|,[ \t]*|[ \t]+at[ \t]+`)

	// Capitalized noun phrase used as the employer name.
	orgNameRe = regexp.MustCompile(`[A-Z][\w.&']*(?:[ \t]+(?:of|the|[A-Z][\w.&']*))*`)
)

// extractWork pulls work entries out of a work/experience section body and
// appends them to the record. Entries with neither a position nor an employer
// are silently discarded.
func extractWork(body string, rec *types.ResumeRecord) {
	for _, entry := range splitEntries(body) {
		position, name := splitTitleLine(entry)

		startDate, endDate, matched := parseDateRange(entry)
		if !matched {
			startDate, endDate = "", ""
		}

		description := entry
		if position != "" {
			description = strings.Replace(description, position, "", 1)
		}
		description = strings.TrimLeft(description, " \t—–|-,")
		description = strings.TrimSpace(description)

		if position == "" && name == "" {
			continue
		}

		rec.Work = append(rec.Work, types.WorkEntry{
			Name:       name,
			Position:   position,
			StartDate:  startDate,
			EndDate:    endDate,
			Summary:    description,
			Highlights: extractBullets(description),
			URL:        "",
			Keywords:   skills.ExtractKeywords(description),
		})
	}
}

// splitTitleLine takes the first line of an entry and resolves the title-like
// run into a position, then searches the remainder for a capitalized noun
// phrase to use as the employer name.
func splitTitleLine(entry string) (position, name string) {
	head := firstLine(entry)

	parts := titleSepRe.Split(head, 2)
	if m := titleRunRe.FindString(parts[0]); m != "" {
		position = strings.TrimSpace(m)
	}

	if len(parts) > 1 {
		name = orgNameRe.FindString(parts[1])
		return position, name
	}

	// No separator on the head line: look at the following line, which in
	// stacked layouts usually carries the employer. Matched date text is
	// cut out first so month names are not mistaken for an employer.
	remainder := secondLine(entry)
	for _, pattern := range dateRangePatterns {
		remainder = pattern.ReplaceAllString(remainder, "")
	}
	name = orgNameRe.FindString(remainder)

	return position, name
}

// secondLine returns the second non-empty line of s, or "".
func secondLine(s string) string {
	seen := 0
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			seen++
			if seen == 2 {
				return trimmed
			}
		}
	}
	return ""
}
