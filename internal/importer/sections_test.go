package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment(t *testing.T) {
	text := "Jane Doe\n\nEXPERIENCE\nSoftware Engineer at Acme\n\nEDUCATION\nTech University\n\nSKILLS\npython, aws"

	sections := Segment(text)
	require.Len(t, sections, 3)

	assert.Equal(t, SectionWork, sections[0].Kind)
	assert.Equal(t, "EXPERIENCE", sections[0].Label)
	assert.Equal(t, "Software Engineer at Acme", sections[0].Body)

	assert.Equal(t, SectionEducation, sections[1].Kind)
	assert.Equal(t, "Tech University", sections[1].Body)

	assert.Equal(t, SectionSkills, sections[2].Kind)
	assert.Equal(t, "python, aws", sections[2].Body)
}

func TestSegmentCaseInsensitiveHeaders(t *testing.T) {
	text := "Work Experience\nAcme Corp\n\nCertifications:\nAWS Certified"

	sections := Segment(text)
	require.Len(t, sections, 2)
	assert.Equal(t, SectionWork, sections[0].Kind)
	assert.Equal(t, SectionCertifications, sections[1].Kind)
}

func TestSegmentNoHeaders(t *testing.T) {
	sections := Segment("just some plain prose about nothing in particular")
	assert.Empty(t, sections)
}

func TestSegmentFallbackPattern(t *testing.T) {
	// No known header label, but a line of three upper-case words triggers
	// the looser fallback pass.
	text := "intro text\n\nAREAS OF EXPERTISE THINGS\nstrategy, operations"

	sections := Segment(text)
	require.Len(t, sections, 1)
	assert.Equal(t, SectionUnknown, sections[0].Kind)
	assert.Equal(t, "strategy, operations", sections[0].Body)
}

func TestSegmentDuplicateHeaders(t *testing.T) {
	text := "SKILLS\npython\n\nSKILLS\naws"

	sections := Segment(text)
	require.Len(t, sections, 2)
	assert.Equal(t, SectionSkills, sections[0].Kind)
	assert.Equal(t, SectionSkills, sections[1].Kind)
	assert.Equal(t, "python", sections[0].Body)
	assert.Equal(t, "aws", sections[1].Body)
}

func TestSegmentIdempotentBoundaries(t *testing.T) {
	text := "EXPERIENCE\nAcme Corp\n\nEDUCATION\nTech University"

	first := Segment(text)
	second := Segment(text)
	assert.Equal(t, first, second)
}

func TestSegmentFinalSectionRunsToEnd(t *testing.T) {
	text := "EDUCATION\nTech University\nGraduated 2020"

	sections := Segment(text)
	require.Len(t, sections, 1)
	assert.Equal(t, "Tech University\nGraduated 2020", sections[0].Body)
}

func TestClassifyLabel(t *testing.T) {
	tests := []struct {
		label    string
		expected SectionKind
	}{
		{"EXPERIENCE", SectionWork},
		{"Work History", SectionWork},
		{"PROFESSIONAL EXPERIENCE", SectionWork},
		{"EDUCATION", SectionEducation},
		{"Technical Skills", SectionSkills},
		{"PROJECTS", SectionProjects},
		{"Certifications", SectionCertifications},
		{"LANGUAGES", SectionLanguages},
		{"Volunteer Experience", SectionVolunteer},
		{"PUBLICATIONS", SectionPublications},
		{"Awards", SectionAwards},
		{"INTERESTS", SectionInterests},
		{"RANDOM HEADING", SectionUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyLabel(tt.label))
		})
	}
}
