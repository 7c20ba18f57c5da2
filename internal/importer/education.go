package importer

import (
	"regexp"
	"strings"

	"github.com/DDH2004/Resume-Importer/internal/types"
)

var (
	// An institution name ending in a school word, or the inverse
	// "School of X" form.
	institutionRe = regexp.MustCompile(`[A-Z][\w.&'-]*(?:[ \t]+[A-Za-z][\w.&'-]*)*[ \t]+(?:University|College|Institute|School)\b|\b(?:University|College|Institute|School)[ \t]+of[ \t]+[A-Z][\w.&'-]*(?:[ \t]+[A-Z][\w.&'-]*)*`)

	// Degree keyword followed by free text up to a comma or line break.
	studyTypeRe = regexp.MustCompile(`(?:Bachelor|Master|Ph\.?D\.?|Doctor|Associate)(?:'s)?[^,\n]*`)

	// Field of study following the degree phrase.
	areaAfterDegreeRe = regexp.MustCompile(`(?:Bachelor|Master|Ph\.?D\.?|Doctor|Associate)(?:'s)?[^,\n]*,[ \t]*([^,\n]+)`)

	gpaRe = regexp.MustCompile(`GPA\s*:\s*([\d.]+)`)

	courseworkRe = regexp.MustCompile(`(?is)(?:Courses|Coursework)\s*:\s*(.*?)(?:\n\s*\n|$)`)

	courseSplitRe = regexp.MustCompile(`[,;]`)
)

// extractEducation pulls education entries out of a section body and appends
// them to the record. Entries with neither an institution nor a degree are
// silently discarded.
func extractEducation(body string, rec *types.ResumeRecord) {
	for _, entry := range splitEntries(body) {
		institution := institutionRe.FindString(entry)
		studyType := strings.TrimSpace(studyTypeRe.FindString(entry))

		if institution == "" && studyType == "" {
			continue
		}

		area := ""
		if m := areaAfterDegreeRe.FindStringSubmatch(entry); m != nil {
			area = strings.TrimSpace(m[1])
		}

		startDate, endDate, matched := parseDateRange(entry)
		if !matched {
			startDate, endDate = "", ""
		}

		score := ""
		if m := gpaRe.FindStringSubmatch(entry); m != nil {
			score = m[1]
		}

		courses := extractBullets(entry)
		if m := courseworkRe.FindStringSubmatch(entry); m != nil {
			for _, course := range courseSplitRe.Split(m[1], -1) {
				if trimmed := strings.TrimSpace(course); trimmed != "" {
					courses = append(courses, trimmed)
				}
			}
		}

		rec.Education = append(rec.Education, types.EducationEntry{
			Institution: institution,
			Area:        area,
			StudyType:   studyType,
			StartDate:   startDate,
			EndDate:     endDate,
			Score:       score,
			Courses:     courses,
		})
	}
}
