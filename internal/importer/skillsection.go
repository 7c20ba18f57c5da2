package importer

import (
	"regexp"
	"strings"

	"github.com/DDH2004/Resume-Importer/internal/skills"
	"github.com/DDH2004/Resume-Importer/internal/types"
)

var skillTokenSplitRe = regexp.MustCompile(`[,\n]`)

// extractSkills splits a skills section into individual tokens, routes each
// through the taxonomy, and appends one entry per non-empty category bucket.
// Keywords keep first-seen order within their bucket.
func extractSkills(body string, rec *types.ResumeRecord) {
	source := strings.Join(extractBullets(body), "\n")
	if source == "" {
		source = body
	}

	buckets := make(map[string][]string)
	order := []string{}

	for _, token := range skillTokenSplitRe.Split(source, -1) {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		category := skills.Categorize(token)
		if _, seen := buckets[category]; !seen {
			order = append(order, category)
		}
		buckets[category] = append(buckets[category], token)
	}

	for _, category := range order {
		rec.Skills = append(rec.Skills, types.SkillEntry{
			Name:     category,
			Level:    "",
			Keywords: buckets[category],
		})
	}
}
