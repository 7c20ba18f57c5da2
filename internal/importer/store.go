package importer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/DDH2004/Resume-Importer/internal/linkedin"
	"github.com/DDH2004/Resume-Importer/internal/types"
)

// ImportLinkedIn reads a LinkedIn data-export directory into a finalized
// record. Individual missing export files only warn; an unusable directory
// is fatal.
func (imp *Importer) ImportLinkedIn(dir string) (*types.ResumeRecord, error) {
	rec := types.NewResumeRecord()
	if err := linkedin.ImportDirectory(dir, rec, imp.warnings); err != nil {
		return nil, err
	}
	return imp.finalize(rec, SourceLinkedIn), nil
}

// ImportJSON loads an already structured record from disk and restamps its
// provenance. Malformed JSON is fatal; there is no text to fall back to.
func (imp *Importer) ImportJSON(path string) (*types.ResumeRecord, error) {
	rec, err := LoadRecord(path)
	if err != nil {
		return nil, err
	}
	return imp.finalize(rec, SourceJSON), nil
}

// LoadRecord reads a record from a JSON file. Sequences that are missing or
// null in the file come back initialized so the record keeps its full shape.
func LoadRecord(path string) (*types.ResumeRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	rec := types.NewResumeRecord()
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON %s: %w", path, err)
	}
	restoreSequences(rec)

	return rec, nil
}

// SaveRecord writes a record as indented JSON.
func SaveRecord(path string, rec *types.ResumeRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize record: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func restoreSequences(rec *types.ResumeRecord) {
	if rec.Basics.Profiles == nil {
		rec.Basics.Profiles = []types.Profile{}
	}
	if rec.Work == nil {
		rec.Work = []types.WorkEntry{}
	}
	if rec.Volunteer == nil {
		rec.Volunteer = []types.VolunteerEntry{}
	}
	if rec.Education == nil {
		rec.Education = []types.EducationEntry{}
	}
	if rec.Awards == nil {
		rec.Awards = []types.AwardEntry{}
	}
	if rec.Certificates == nil {
		rec.Certificates = []types.CertificateEntry{}
	}
	if rec.Publications == nil {
		rec.Publications = []types.PublicationEntry{}
	}
	if rec.Skills == nil {
		rec.Skills = []types.SkillEntry{}
	}
	if rec.Languages == nil {
		rec.Languages = []types.LanguageEntry{}
	}
	if rec.Interests == nil {
		rec.Interests = []types.InterestEntry{}
	}
	if rec.References == nil {
		rec.References = []types.ReferenceEntry{}
	}
	if rec.Projects == nil {
		rec.Projects = []types.ProjectEntry{}
	}
}
