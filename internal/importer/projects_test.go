package importer

import (
	"testing"

	"github.com/DDH2004/Resume-Importer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractProjects(t *testing.T) {
	rec := types.NewResumeRecord()
	body := "Weather Dashboard — Jan 2021 - Mar 2021\nBuilt a dashboard using React\n• Real-time updates"

	extractProjects(body, rec)

	require.Len(t, rec.Projects, 1)
	entry := rec.Projects[0]
	assert.Equal(t, "Weather Dashboard", entry.Name)
	assert.Equal(t, "2021-01", entry.StartDate)
	assert.Equal(t, "2021-03", entry.EndDate)
	assert.Equal(t, []string{"Real-time updates"}, entry.Highlights)
	assert.Contains(t, entry.Keywords, "react")
}

func TestExtractProjectsMultiple(t *testing.T) {
	rec := types.NewResumeRecord()
	body := "Chat Server\nWrote a chat server in Rust\n\nPortfolio Site\nStatic site built with Vue"

	extractProjects(body, rec)

	require.Len(t, rec.Projects, 2)
	assert.Equal(t, "Chat Server", rec.Projects[0].Name)
	assert.Equal(t, "Portfolio Site", rec.Projects[1].Name)
}

func TestExtractProjectsDiscardsNameless(t *testing.T) {
	rec := types.NewResumeRecord()
	body := "a small script i wrote once"

	extractProjects(body, rec)

	assert.Empty(t, rec.Projects)
}

func TestExtractProjectsSkipsHeaderEcho(t *testing.T) {
	rec := types.NewResumeRecord()
	body := "Projects\nActual Project\nBuilt something real"

	extractProjects(body, rec)

	require.Len(t, rec.Projects, 1)
	assert.Equal(t, "Actual Project", rec.Projects[0].Name)
}
