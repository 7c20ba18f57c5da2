package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/DDH2004/Resume-Importer/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintImportSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	rec := types.NewResumeRecord()
	rec.Basics.Name = "Jane Doe"
	rec.Basics.Email = "jane.doe@example.com"
	rec.Work = append(rec.Work, types.WorkEntry{Name: "Acme Corp", Position: "Software Engineer"})
	rec.Education = append(rec.Education, types.EducationEntry{Institution: "Tech University"})

	p.PrintImportSummary(rec)
	output := buf.String()

	assert.Contains(t, output, "IMPORTED RESUME")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "jane.doe@example.com")
	assert.Contains(t, output, "Software Engineer @ Acme Corp")
	assert.Contains(t, output, "Work entries")
}

func TestPrintImportSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintImportSummary(nil)

	assert.Empty(t, buf.String())
}

func TestPrintImportSummary_ManyPositionsTruncated(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	rec := types.NewResumeRecord()
	for i := 0; i < 8; i++ {
		rec.Work = append(rec.Work, types.WorkEntry{Name: "Acme Corp", Position: "Engineer"})
	}

	p.PrintImportSummary(rec)

	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintSkillGroups(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	rec := types.NewResumeRecord()
	rec.Skills = append(rec.Skills, types.SkillEntry{
		Name:     "Programming Languages",
		Keywords: []string{"python", "go"},
	})

	p.PrintSkillGroups(rec)
	output := buf.String()

	assert.Contains(t, output, "SKILL GROUPS")
	assert.Contains(t, output, "Programming Languages")
	assert.Contains(t, output, "python, go")
}

func TestPrintSkillGroups_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkillGroups(types.NewResumeRecord())

	assert.Empty(t, buf.String())
}

func TestPrintImportMeta(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintImportMeta(&types.ImportMeta{
		RunID:      "f3b9e9a2-run",
		Source:     "text",
		ImportedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Confidence: 42.5,
	})
	output := buf.String()

	assert.Contains(t, output, "IMPORT RUN")
	assert.Contains(t, output, "f3b9e9a2-run")
	assert.Contains(t, output, "42.5%")
	assert.Contains(t, output, "2024-05-01")
}

func TestPrintBoxLineTruncation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	rec := types.NewResumeRecord()
	rec.Basics.Name = strings.Repeat("x", 100)

	p.PrintImportSummary(rec)

	for _, line := range strings.Split(buf.String(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth+2)
	}
}
