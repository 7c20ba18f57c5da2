package skills

import (
	"regexp"
	"strings"
)

// keywordPatterns are the domain-term expressions matched against lower-cased
// free text to pull out technology and process keywords.
var keywordPatterns = []*regexp.Regexp{
	regexp.MustCompile(`python|java|javascript|typescript|html|css|c\+\+|ruby|php|swift|kotlin|go|rust|scala|sql`),
	regexp.MustCompile(`react|angular|vue|node|express|django|flask|spring|laravel|rails`),
	regexp.MustCompile(`aws|azure|gcp|docker|kubernetes|terraform|jenkins|git|ci/cd`),
	regexp.MustCompile(`machine learning|ml|ai|data science|nlp|computer vision`),
	regexp.MustCompile(`agile|scrum|kanban|waterfall|leadership|teamwork|communication`),
}

// ExtractKeywords returns the deduplicated union of all domain-term matches
// in text. The result order carries no meaning.
func ExtractKeywords(text string) []string {
	if text == "" {
		return []string{}
	}

	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	keywords := []string{}

	for _, pattern := range keywordPatterns {
		for _, match := range pattern.FindAllString(lower, -1) {
			if !seen[match] {
				seen[match] = true
				keywords = append(keywords, match)
			}
		}
	}

	return keywords
}
