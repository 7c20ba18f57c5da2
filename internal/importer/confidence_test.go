package importer

import (
	"testing"

	"github.com/DDH2004/Resume-Importer/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestConfidenceEmptyRecordIsZero(t *testing.T) {
	rec := types.NewResumeRecord()
	assert.Equal(t, 0.0, Confidence(rec))
}

func TestConfidencePositiveWhenAnythingPopulated(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.ResumeRecord)
	}{
		{"basics scalar", func(r *types.ResumeRecord) { r.Basics.Name = "Jane Doe" }},
		{"work entry", func(r *types.ResumeRecord) { r.Work = append(r.Work, types.WorkEntry{Name: "Acme"}) }},
		{"skill entry", func(r *types.ResumeRecord) { r.Skills = append(r.Skills, types.SkillEntry{Name: "Other Skills"}) }},
		{"language entry", func(r *types.ResumeRecord) { r.Languages = append(r.Languages, types.LanguageEntry{Language: "French"}) }},
		{"profile entry", func(r *types.ResumeRecord) {
			r.Basics.Profiles = append(r.Basics.Profiles, types.Profile{Network: "LinkedIn"})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := types.NewResumeRecord()
			tt.mutate(rec)
			score := Confidence(rec)
			assert.Greater(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		})
	}
}

func TestConfidenceWithinBounds(t *testing.T) {
	rec := types.NewResumeRecord()
	rec.Basics.Name = "Jane Doe"
	rec.Basics.Email = "jane@example.com"
	rec.Basics.Phone = "555-123-4567"
	rec.Basics.Summary = "Engineer"
	rec.Basics.Location.City = "Springfield"
	for i := 0; i < 20; i++ {
		rec.Work = append(rec.Work, types.WorkEntry{Name: "Acme"})
	}

	score := Confidence(rec)
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 100.0)
}

func TestConfidenceGrowsWithPopulation(t *testing.T) {
	sparse := types.NewResumeRecord()
	sparse.Basics.Name = "Jane Doe"

	rich := types.NewResumeRecord()
	rich.Basics.Name = "Jane Doe"
	rich.Basics.Email = "jane@example.com"
	rich.Basics.Phone = "555-123-4567"

	assert.Greater(t, Confidence(rich), Confidence(sparse))
}
