// Package linkedin imports resume data from a LinkedIn data-export directory
// of CSV files into the canonical record shape.
package linkedin

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/DDH2004/Resume-Importer/internal/skills"
	"github.com/DDH2004/Resume-Importer/internal/types"
)

// ImportError represents a fatal error reading the export directory.
type ImportError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ImportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("linkedin import failed for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("linkedin import failed for %s: %s", e.Path, e.Message)
}

func (e *ImportError) Unwrap() error {
	return e.Cause
}

// fileProcessor pairs an expected export filename with its row handler.
type fileProcessor struct {
	filename string
	process  func(rows []row, rec *types.ResumeRecord)
}

var fileProcessors = []fileProcessor{
	{"Profile.csv", processProfile},
	{"Positions.csv", processPositions},
	{"Education.csv", processEducation},
	{"Skills.csv", processSkills},
	{"Languages.csv", processLanguages},
	{"Projects.csv", processProjects},
	{"Certifications.csv", processCertifications},
}

// ImportDirectory reads a LinkedIn export directory and appends its contents
// to the record. A missing export file is a warning, not an error; a missing
// or unreadable directory is fatal to the import.
func ImportDirectory(dir string, rec *types.ResumeRecord, warnings io.Writer) error {
	info, err := os.Stat(dir)
	if err != nil {
		return &ImportError{Path: dir, Message: "cannot read export directory", Cause: err}
	}
	if !info.IsDir() {
		return &ImportError{Path: dir, Message: "not a directory"}
	}

	for _, fp := range fileProcessors {
		path := filepath.Join(dir, fp.filename)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			fmt.Fprintf(warnings, "Warning: %s not found in the LinkedIn export directory\n", fp.filename)
			continue
		}

		rows, err := readRows(path)
		if err != nil {
			fmt.Fprintf(warnings, "Warning: failed to read %s: %v\n", fp.filename, err)
			continue
		}

		fp.process(rows, rec)
	}

	return nil
}

// row is one CSV record keyed by column name. Lookups of missing columns
// return the empty string, never an error.
type row map[string]string

func (r row) get(column string) string {
	return r[column]
}

// readRows reads a CSV file into column-keyed rows using its header line.
func readRows(path string) ([]row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var rows []row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		r := make(row, len(header))
		for i, column := range header {
			if i < len(record) {
				r[column] = record[i]
			}
		}
		rows = append(rows, r)
	}

	return rows, nil
}

func processProfile(rows []row, rec *types.ResumeRecord) {
	if len(rows) == 0 {
		return
	}
	// Only the first row matters; an export holds a single profile.
	r := rows[0]

	rec.Basics.Name = strings.TrimSpace(r.get("First Name") + " " + r.get("Last Name"))
	rec.Basics.Label = r.get("Headline")
	rec.Basics.Summary = r.get("Summary")
	rec.Basics.Location.City = r.get("City")
	rec.Basics.Location.Region = r.get("State")
	rec.Basics.Location.CountryCode = r.get("Country")

	rec.Basics.Profiles = append(rec.Basics.Profiles, types.Profile{
		Network:  "LinkedIn",
		URL:      r.get("Public Profile Url"),
		Username: r.get("Vanity Name"),
	})
}

func processPositions(rows []row, rec *types.ResumeRecord) {
	for _, r := range rows {
		endDate := formatDate(r.get("Finished On"))
		if endDate == "" {
			endDate = "Present"
		}

		rec.Work = append(rec.Work, types.WorkEntry{
			Name:       r.get("Company Name"),
			Position:   r.get("Title"),
			StartDate:  formatDate(r.get("Started On")),
			EndDate:    endDate,
			Summary:    r.get("Description"),
			Highlights: []string{},
			URL:        "",
			Keywords:   skills.ExtractKeywords(r.get("Description")),
		})
	}
}

func processEducation(rows []row, rec *types.ResumeRecord) {
	for _, r := range rows {
		endDate := formatDate(r.get("End Date"))
		if endDate == "" {
			endDate = "Present"
		}

		courses := []string{}
		for _, course := range strings.Split(r.get("Activities and Societies"), ",") {
			if trimmed := strings.TrimSpace(course); trimmed != "" {
				courses = append(courses, trimmed)
			}
		}

		rec.Education = append(rec.Education, types.EducationEntry{
			Institution: r.get("School Name"),
			Area:        r.get("Field Of Study"),
			StudyType:   r.get("Degree Name"),
			StartDate:   formatDate(r.get("Start Date")),
			EndDate:     endDate,
			Score:       "",
			Courses:     courses,
		})
	}
}

func processSkills(rows []row, rec *types.ResumeRecord) {
	buckets := make(map[string][]string)
	order := []string{}

	for _, r := range rows {
		name := r.get("Name")
		if name == "" {
			continue
		}

		category := skills.Categorize(name)
		if _, seen := buckets[category]; !seen {
			order = append(order, category)
		}
		buckets[category] = append(buckets[category], name)
	}

	for _, category := range order {
		rec.Skills = append(rec.Skills, types.SkillEntry{
			Name:     category,
			Level:    "",
			Keywords: buckets[category],
		})
	}
}

func processLanguages(rows []row, rec *types.ResumeRecord) {
	for _, r := range rows {
		rec.Languages = append(rec.Languages, types.LanguageEntry{
			Language: r.get("Name"),
			Fluency:  r.get("Proficiency"),
		})
	}
}

func processProjects(rows []row, rec *types.ResumeRecord) {
	for _, r := range rows {
		endDate := formatDate(r.get("Finished On"))
		if endDate == "" {
			endDate = "Present"
		}

		rec.Projects = append(rec.Projects, types.ProjectEntry{
			Name:        r.get("Title"),
			Description: r.get("Description"),
			StartDate:   formatDate(r.get("Started On")),
			EndDate:     endDate,
			URL:         r.get("Url"),
			Highlights:  []string{},
			Keywords:    skills.ExtractKeywords(r.get("Description")),
		})
	}
}

func processCertifications(rows []row, rec *types.ResumeRecord) {
	for _, r := range rows {
		rec.Certificates = append(rec.Certificates, types.CertificateEntry{
			Name:     r.get("Name"),
			Date:     formatDate(r.get("Started On")),
			Issuer:   r.get("Authority"),
			URL:      r.get("Url"),
			Keywords: []string{},
		})
	}
}
