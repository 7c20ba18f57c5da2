package importer

import (
	"testing"

	"github.com/DDH2004/Resume-Importer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEducation(t *testing.T) {
	rec := types.NewResumeRecord()
	body := "Master of Science, Computer Science, Tech University\n2018 - 2020"

	extractEducation(body, rec)

	require.Len(t, rec.Education, 1)
	entry := rec.Education[0]
	assert.Contains(t, entry.Institution, "Tech University")
	assert.Equal(t, "Master of Science", entry.StudyType)
	assert.Equal(t, "Computer Science", entry.Area)
	assert.Equal(t, "2018", entry.StartDate)
	assert.Equal(t, "2020", entry.EndDate)
}

func TestExtractEducationInverseInstitutionForm(t *testing.T) {
	rec := types.NewResumeRecord()
	body := "University of Washington\nBachelor of Arts, History\nSep 2012 - Jun 2016"

	extractEducation(body, rec)

	require.Len(t, rec.Education, 1)
	assert.Equal(t, "University of Washington", rec.Education[0].Institution)
	assert.Equal(t, "Bachelor of Arts", rec.Education[0].StudyType)
}

func TestExtractEducationGPA(t *testing.T) {
	rec := types.NewResumeRecord()
	body := "Bachelor of Arts, History, State College\nGPA: 3.8"

	extractEducation(body, rec)

	require.Len(t, rec.Education, 1)
	assert.Equal(t, "3.8", rec.Education[0].Score)
}

func TestExtractEducationCoursework(t *testing.T) {
	rec := types.NewResumeRecord()
	body := "Tech Institute\nCoursework: Algorithms; Data Structures, Operating Systems"

	extractEducation(body, rec)

	require.Len(t, rec.Education, 1)
	assert.Equal(t, []string{"Algorithms", "Data Structures", "Operating Systems"}, rec.Education[0].Courses)
}

func TestExtractEducationBulletCourses(t *testing.T) {
	rec := types.NewResumeRecord()
	body := "Ph.D, Computer Science, Research University\n• Distributed Systems\n• Compilers"

	extractEducation(body, rec)

	require.Len(t, rec.Education, 1)
	assert.Equal(t, []string{"Distributed Systems", "Compilers"}, rec.Education[0].Courses)
}

func TestExtractEducationDiscardsUnrecognizedEntries(t *testing.T) {
	rec := types.NewResumeRecord()
	body := "self-taught via online tutorials"

	extractEducation(body, rec)

	assert.Empty(t, rec.Education)
}

func TestExtractEducationDegreeOnly(t *testing.T) {
	rec := types.NewResumeRecord()
	body := "Associate degree in welding technology"

	extractEducation(body, rec)

	require.Len(t, rec.Education, 1)
	assert.Equal(t, "Associate degree in welding technology", rec.Education[0].StudyType)
	assert.Empty(t, rec.Education[0].Institution)
}
