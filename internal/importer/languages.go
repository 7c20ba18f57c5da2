package importer

import (
	"regexp"
	"strings"

	"github.com/DDH2004/Resume-Importer/internal/types"
)

// defaultFluency is used when no proficiency word accompanies a language.
const defaultFluency = "Fluent"

const proficiencyExpr = `Native|Fluent|Professional|Intermediate|Basic|Beginner|Advanced`

var (
	// Language followed by a proficiency word from the fixed vocabulary.
	languageWithLevelRe = regexp.MustCompile(`([A-Z][a-z]+(?:[ \t][A-Z][a-z]+)?)[ \t]*[-–—:,(]*[ \t]*(` + proficiencyExpr + `)\b`)

	// Bare capitalized one-or-two-word language token at line start.
	bareLanguageRe = regexp.MustCompile(`^[•●\-*]?[ \t]*([A-Z][a-z]+(?:[ \t][A-Z][a-z]+)?)`)
)

// extractLanguages pulls language entries out of a section body. Every match
// is kept; proficiency defaults to "Fluent" when undetected.
func extractLanguages(body string, rec *types.ResumeRecord) {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		matches := languageWithLevelRe.FindAllStringSubmatch(line, -1)
		if len(matches) > 0 {
			for _, m := range matches {
				rec.Languages = append(rec.Languages, types.LanguageEntry{
					Language: m[1],
					Fluency:  m[2],
				})
			}
			continue
		}

		if m := bareLanguageRe.FindStringSubmatch(line); m != nil {
			rec.Languages = append(rec.Languages, types.LanguageEntry{
				Language: m[1],
				Fluency:  defaultFluency,
			})
		}
	}
}
