package importer

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/DDH2004/Resume-Importer/internal/oracle"
	"github.com/DDH2004/Resume-Importer/internal/types"
)

// Source labels stamped into ImportMeta.
const (
	SourceText     = "text"
	SourceOracle   = "oracle"
	SourceLinkedIn = "linkedin"
	SourceJSON     = "json"
)

// Importer runs the extraction pipeline for one document at a time. The
// record being built is owned exclusively by the single extraction run.
type Importer struct {
	oracle   oracle.Client
	warnings io.Writer
}

// Option configures an Importer at construction time.
type Option func(*Importer)

// WithOracle injects the optional entity classifier. When present, the oracle
// is tried first and may replace the regex pipeline for a whole document.
func WithOracle(client oracle.Client) Option {
	return func(imp *Importer) {
		imp.oracle = client
	}
}

// WithWarningWriter redirects non-fatal warnings (default os.Stderr).
func WithWarningWriter(w io.Writer) Option {
	return func(imp *Importer) {
		imp.warnings = w
	}
}

// New creates an Importer.
func New(opts ...Option) *Importer {
	imp := &Importer{warnings: os.Stderr}
	for _, opt := range opts {
		opt(imp)
	}
	return imp
}

// ImportText converts extracted document text into a finalized ResumeRecord.
// It is total: extraction mismatches degrade the record, they never fail it.
func (imp *Importer) ImportText(ctx context.Context, text string) *types.ResumeRecord {
	if imp.oracle != nil {
		if rec, ok := imp.importWithOracle(ctx, text); ok {
			return imp.finalize(rec, SourceOracle)
		}
	}

	rec := types.NewResumeRecord()
	normalized := Normalize(text)

	extractBasics(normalized, rec)

	for _, section := range Segment(normalized) {
		imp.dispatch(section, rec)
	}

	return imp.finalize(rec, SourceText)
}

// dispatch routes a section to its extractor. Sections the regex path does
// not populate are recognized but left alone. Duplicate headers route to the
// same extractor and their outputs concatenate.
func (imp *Importer) dispatch(section Section, rec *types.ResumeRecord) {
	switch section.Kind {
	case SectionWork:
		extractWork(section.Body, rec)
	case SectionEducation:
		extractEducation(section.Body, rec)
	case SectionSkills:
		extractSkills(section.Body, rec)
	case SectionProjects:
		extractProjects(section.Body, rec)
	case SectionCertifications:
		extractCertifications(section.Body, rec)
	case SectionLanguages:
		extractLanguages(section.Body, rec)
	case SectionVolunteer, SectionPublications, SectionAwards, SectionInterests, SectionUnknown:
		// Recognized but not populated by the regex path.
	}
}

// importWithOracle asks the external classifier for whole-document entities.
// Any failure or low-confidence result falls back to the regex pipeline; the
// choice is all-or-nothing, never a per-field merge.
func (imp *Importer) importWithOracle(ctx context.Context, text string) (*types.ResumeRecord, bool) {
	entities, err := imp.oracle.ClassifyEntities(ctx, text)
	if err != nil {
		fmt.Fprintf(imp.warnings, "Warning: oracle unavailable, falling back to pattern extraction: %v\n", err)
		return nil, false
	}

	if entities.Confidence < oracle.MinConfidence {
		fmt.Fprintf(imp.warnings, "Warning: oracle confidence %.2f below %.2f, falling back to pattern extraction\n",
			entities.Confidence, oracle.MinConfidence)
		return nil, false
	}

	rec := types.NewResumeRecord()
	rec.Basics = entities.Basics
	if rec.Basics.Profiles == nil {
		rec.Basics.Profiles = []types.Profile{}
	}
	rec.Work = append(rec.Work, entities.Work...)
	rec.Education = append(rec.Education, entities.Education...)
	rec.Skills = append(rec.Skills, entities.Skills...)
	rec.Projects = append(rec.Projects, entities.Projects...)
	rec.Certificates = append(rec.Certificates, entities.Certificates...)
	rec.Languages = append(rec.Languages, entities.Languages...)

	return rec, true
}

// finalize computes confidence and attaches metadata exactly once.
func (imp *Importer) finalize(rec *types.ResumeRecord, source string) *types.ResumeRecord {
	rec.Meta = &types.ImportMeta{
		RunID:      uuid.NewString(),
		Source:     source,
		ImportedAt: time.Now().UTC(),
		Confidence: Confidence(rec),
	}
	return rec
}
