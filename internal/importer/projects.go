package importer

import (
	"strings"

	"github.com/DDH2004/Resume-Importer/internal/skills"
	"github.com/DDH2004/Resume-Importer/internal/types"
)

// extractProjects pulls project entries out of a section body and appends
// them to the record. Entries without a name are silently discarded.
func extractProjects(body string, rec *types.ResumeRecord) {
	for _, entry := range splitEntries(body) {
		head := firstLine(entry)

		// A section header echoed into the body is not a project name.
		if strings.EqualFold(head, "projects") {
			entry = strings.TrimSpace(strings.TrimPrefix(entry, head))
			head = firstLine(entry)
		}

		name := ""
		parts := titleSepRe.Split(head, 2)
		if m := titleRunRe.FindString(parts[0]); m != "" {
			name = strings.TrimSpace(m)
		}

		if name == "" || strings.EqualFold(name, "projects") {
			continue
		}

		startDate, endDate, matched := parseDateRange(entry)
		if !matched {
			startDate, endDate = "", ""
		}

		description := strings.Replace(entry, name, "", 1)
		description = strings.TrimLeft(description, " \t—–|-,:")
		description = strings.TrimSpace(description)

		rec.Projects = append(rec.Projects, types.ProjectEntry{
			Name:        name,
			Description: description,
			StartDate:   startDate,
			EndDate:     endDate,
			URL:         "",
			Highlights:  extractBullets(description),
			Keywords:    skills.ExtractKeywords(description),
		})
	}
}
