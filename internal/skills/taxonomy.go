// Package skills provides the fixed skill taxonomy and keyword extraction used
// to classify free-text skill tokens into categories.
package skills

import "strings"

// OtherCategory is the fallback category for tokens no keyword list matches.
const OtherCategory = "Other Skills"

// Category pairs a taxonomy label with the keyword list that selects it.
type Category struct {
	Name     string
	Keywords []string
}

// taxonomy is the ordered category table. Order is significant: the first
// category whose keyword list contains a case-insensitive substring match
// against the token wins.
var taxonomy = []Category{
	{
		Name: "Programming Languages",
		Keywords: []string{
			"python", "java", "javascript", "c++", "c#", "ruby", "php",
			"swift", "kotlin", "go", "rust", "scala",
		},
	},
	{
		Name: "Web Development",
		Keywords: []string{
			"html", "css", "react", "angular", "vue", "node", "express",
			"django", "flask",
		},
	},
	{
		Name: "Data Science",
		Keywords: []string{
			"machine learning", "data analysis", "statistics", "jupyter",
			"pandas", "numpy", "tensorflow", "pytorch", "ai",
		},
	},
	{
		Name: "DevOps & Cloud",
		Keywords: []string{
			"aws", "azure", "gcp", "docker", "kubernetes", "jenkins",
			"ci/cd", "terraform",
		},
	},
	{
		Name: "Databases",
		Keywords: []string{
			"sql", "nosql", "mongodb", "postgresql", "mysql", "firebase",
			"redis",
		},
	},
	{
		Name: "Mobile Development",
		Keywords: []string{
			"android", "ios", "flutter", "react native", "swift", "kotlin",
		},
	},
	{
		Name: "Soft Skills",
		Keywords: []string{
			"leadership", "teamwork", "communication", "problem solving",
			"project management",
		},
	},
}

// Categories returns the taxonomy category names in priority order.
func Categories() []string {
	names := make([]string, 0, len(taxonomy)+1)
	for _, c := range taxonomy {
		names = append(names, c.Name)
	}
	return append(names, OtherCategory)
}

// Categorize maps a skill token to its taxonomy category. Every non-empty
// token maps to exactly one category; no match falls into OtherCategory.
func Categorize(token string) string {
	lower := strings.ToLower(token)

	for _, category := range taxonomy {
		for _, keyword := range category.Keywords {
			if strings.Contains(lower, keyword) {
				return category.Name
			}
		}
	}

	return OtherCategory
}
