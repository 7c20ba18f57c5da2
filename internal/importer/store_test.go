package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DDH2004/Resume-Importer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRecordRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")

	rec := types.NewResumeRecord()
	rec.Basics.Name = "Jane Doe"
	rec.Work = append(rec.Work, types.WorkEntry{
		Name:       "Acme Corp",
		Position:   "Engineer",
		EndDate:    "Present",
		Highlights: []string{"Built APIs"},
		Keywords:   []string{},
	})

	require.NoError(t, SaveRecord(path, rec))

	loaded, err := LoadRecord(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", loaded.Basics.Name)
	require.Len(t, loaded.Work, 1)
	assert.Equal(t, "Acme Corp", loaded.Work[0].Name)
}

func TestSaveRecordIsIndented(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, SaveRecord(path, types.NewResumeRecord()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"basics\"")
}

func TestLoadRecordMalformedIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"basics": `), 0o644))

	_, err := LoadRecord(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestLoadRecordMissingFile(t *testing.T) {
	_, err := LoadRecord(filepath.Join(t.TempDir(), "nope.json"))

	assert.Error(t, err)
}

func TestLoadRecordRestoresNullSequences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"basics": {"name": "Jane Doe"}, "work": null}`), 0o644))

	rec, err := LoadRecord(path)

	require.NoError(t, err)
	assert.NotNil(t, rec.Work)
	assert.NotNil(t, rec.Skills)
	assert.NotNil(t, rec.Basics.Profiles)
}

func TestImportJSONRestampsMeta(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	rec := types.NewResumeRecord()
	rec.Basics.Name = "Jane Doe"
	require.NoError(t, SaveRecord(path, rec))

	imp := New()
	loaded, err := imp.ImportJSON(path)

	require.NoError(t, err)
	require.NotNil(t, loaded.Meta)
	assert.Equal(t, SourceJSON, loaded.Meta.Source)
	assert.Greater(t, loaded.Meta.Confidence, 0.0)
}

func TestImportLinkedInBadDirectory(t *testing.T) {
	imp := New()

	_, err := imp.ImportLinkedIn(filepath.Join(t.TempDir(), "nope"))

	assert.Error(t, err)
}

func TestImportLinkedInStampsSource(t *testing.T) {
	dir := t.TempDir()
	csv := "First Name,Last Name\nJane,Doe\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Profile.csv"), []byte(csv), 0o644))

	imp := New(WithWarningWriter(&discard{}))

	rec, err := imp.ImportLinkedIn(dir)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", rec.Basics.Name)
	require.NotNil(t, rec.Meta)
	assert.Equal(t, SourceLinkedIn, rec.Meta.Source)
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
