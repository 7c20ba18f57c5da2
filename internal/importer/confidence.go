package importer

import "github.com/DDH2004/Resume-Importer/internal/types"

// Confidence computes the completeness confidence score for a record as
// populated fields over total fields, scaled to [0, 100]. Every sequence
// element counts as populated; each non-empty basics scalar leaf adds one.
// The score is advisory metadata only and never gates acceptance.
func Confidence(rec *types.ResumeRecord) float64 {
	sequenceCount := len(rec.Work) +
		len(rec.Volunteer) +
		len(rec.Education) +
		len(rec.Awards) +
		len(rec.Certificates) +
		len(rec.Publications) +
		len(rec.Skills) +
		len(rec.Languages) +
		len(rec.Interests) +
		len(rec.References) +
		len(rec.Projects) +
		len(rec.Basics.Profiles)

	scalars := basicsScalarLeaves(rec)
	populated := sequenceCount
	for _, value := range scalars {
		if value != "" {
			populated++
		}
	}

	total := sequenceCount + len(scalars)
	if populated == 0 || total == 0 {
		return 0
	}

	score := float64(populated) / float64(total) * 100
	if score > 100 {
		score = 100
	}
	return score
}

// basicsScalarLeaves lists every scalar leaf under basics, empty or not.
func basicsScalarLeaves(rec *types.ResumeRecord) []string {
	b := rec.Basics
	return []string{
		b.Name, b.Label, b.Image, b.Email, b.Phone, b.URL, b.Summary,
		b.Location.Address, b.Location.PostalCode, b.Location.City,
		b.Location.CountryCode, b.Location.Region,
	}
}
