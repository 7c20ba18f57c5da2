// Package types provides type definitions for structured data used throughout the resume-importer system.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// ResumeRecord is the canonical structured representation of a single resume.
// Every sequence field is always non-nil so serialized output contains every
// key even when empty; downstream consumers depend on all keys being present.
type ResumeRecord struct {
	Basics       Basics             `json:"basics"`
	Work         []WorkEntry        `json:"work"`
	Volunteer    []VolunteerEntry   `json:"volunteer"`
	Education    []EducationEntry   `json:"education"`
	Awards       []AwardEntry       `json:"awards"`
	Certificates []CertificateEntry `json:"certificates"`
	Publications []PublicationEntry `json:"publications"`
	Skills       []SkillEntry       `json:"skills"`
	Languages    []LanguageEntry    `json:"languages"`
	Interests    []InterestEntry    `json:"interests"`
	References   []ReferenceEntry   `json:"references"`
	Projects     []ProjectEntry     `json:"projects"`
	Meta         *ImportMeta        `json:"meta,omitempty"`
}

// Basics holds contact and identity information.
type Basics struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Image    string    `json:"image"`
	Email    string    `json:"email" validate:"omitempty,email"`
	Phone    string    `json:"phone"`
	URL      string    `json:"url" validate:"omitempty,url"`
	Summary  string    `json:"summary"`
	Location Location  `json:"location"`
	Profiles []Profile `json:"profiles"`
}

// Location is a postal location under basics.
type Location struct {
	Address     string `json:"address"`
	PostalCode  string `json:"postalCode"`
	City        string `json:"city"`
	CountryCode string `json:"countryCode"`
	Region      string `json:"region"`
}

// Profile is a social/professional network profile reference.
type Profile struct {
	Network  string `json:"network"`
	URL      string `json:"url" validate:"omitempty,url"`
	Username string `json:"username"`
}

// WorkEntry represents one job. EndDate is either empty, a YYYY-MM token,
// or the literal "Present"; it is never null.
type WorkEntry struct {
	Name       string   `json:"name"`
	Position   string   `json:"position"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
	URL        string   `json:"url"`
	Keywords   []string `json:"keywords"`
}

// EducationEntry represents one degree or program.
type EducationEntry struct {
	Institution string   `json:"institution"`
	Area        string   `json:"area"`
	StudyType   string   `json:"studyType"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Score       string   `json:"score"`
	Courses     []string `json:"courses"`
}

// ProjectEntry represents one project. Same shape as WorkEntry minus
// position, with a description in place of the summary.
type ProjectEntry struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	URL         string   `json:"url"`
	Highlights  []string `json:"highlights"`
	Keywords    []string `json:"keywords"`
}

// SkillEntry groups detected skills under one taxonomy category.
type SkillEntry struct {
	Name     string   `json:"name"`
	Level    string   `json:"level"`
	Keywords []string `json:"keywords"`
}

// CertificateEntry represents one certification.
type CertificateEntry struct {
	Name     string   `json:"name"`
	Date     string   `json:"date"`
	Issuer   string   `json:"issuer"`
	URL      string   `json:"url"`
	Keywords []string `json:"keywords"`
}

// LanguageEntry represents one spoken language.
type LanguageEntry struct {
	Language string `json:"language"`
	Fluency  string `json:"fluency"`
}

// VolunteerEntry represents one volunteer engagement.
type VolunteerEntry struct {
	Organization string   `json:"organization"`
	Position     string   `json:"position"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Summary      string   `json:"summary"`
	Highlights   []string `json:"highlights"`
	URL          string   `json:"url"`
}

// AwardEntry represents one award or honor.
type AwardEntry struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Awarder string `json:"awarder"`
	Summary string `json:"summary"`
}

// PublicationEntry represents one publication.
type PublicationEntry struct {
	Name        string `json:"name"`
	Publisher   string `json:"publisher"`
	ReleaseDate string `json:"releaseDate"`
	URL         string `json:"url"`
	Summary     string `json:"summary"`
}

// InterestEntry represents one interest group.
type InterestEntry struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// ReferenceEntry represents one professional reference.
type ReferenceEntry struct {
	Name      string `json:"name"`
	Reference string `json:"reference"`
}

// ImportMeta is attached to a record exactly once, at finalize time.
type ImportMeta struct {
	RunID      string    `json:"runId"`
	Source     string    `json:"source"`
	ImportedAt time.Time `json:"importedAt"`
	Confidence float64   `json:"confidence"`
}

// NewResumeRecord returns a fresh empty record with every sequence
// initialized. Each call returns an independent value; extractors only
// append to sequences or overwrite basics scalars.
func NewResumeRecord() *ResumeRecord {
	return &ResumeRecord{
		Basics: Basics{
			Profiles: []Profile{},
		},
		Work:         []WorkEntry{},
		Volunteer:    []VolunteerEntry{},
		Education:    []EducationEntry{},
		Awards:       []AwardEntry{},
		Certificates: []CertificateEntry{},
		Publications: []PublicationEntry{},
		Skills:       []SkillEntry{},
		Languages:    []LanguageEntry{},
		Interests:    []InterestEntry{},
		References:   []ReferenceEntry{},
		Projects:     []ProjectEntry{},
	}
}

// Validate runs advisory validation over the record's basics fields.
// A failure here never gates acceptance of the record.
func (r *ResumeRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(&r.Basics)
}
