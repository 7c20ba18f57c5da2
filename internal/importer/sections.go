package importer

import (
	"regexp"
	"strings"
)

// SectionKind identifies which extractor a segmented section is routed to.
type SectionKind int

// Section kinds, in header-pattern priority order.
const (
	SectionUnknown SectionKind = iota
	SectionWork
	SectionEducation
	SectionSkills
	SectionProjects
	SectionCertifications
	SectionLanguages
	SectionVolunteer
	SectionPublications
	SectionAwards
	SectionInterests
)

// String returns the section kind label.
func (k SectionKind) String() string {
	switch k {
	case SectionWork:
		return "work"
	case SectionEducation:
		return "education"
	case SectionSkills:
		return "skills"
	case SectionProjects:
		return "projects"
	case SectionCertifications:
		return "certifications"
	case SectionLanguages:
		return "languages"
	case SectionVolunteer:
		return "volunteer"
	case SectionPublications:
		return "publications"
	case SectionAwards:
		return "awards"
	case SectionInterests:
		return "interests"
	default:
		return "unknown"
	}
}

// Section is one contiguous span of resume text introduced by a recognized
// header.
type Section struct {
	Kind  SectionKind
	Label string
	Body  string
}

// headerPattern pairs a section kind with the expression that recognizes its
// header labels. The list order defines match priority when a label fits more
// than one kind.
type headerPattern struct {
	kind SectionKind
	expr *regexp.Regexp
}

var headerPatterns = []headerPattern{
	{SectionWork, regexp.MustCompile(`(?i)^(?:work\s+)?experience$|^work\s+history$|^employment(?:\s+history)?$|^professional\s+experience$`)},
	{SectionEducation, regexp.MustCompile(`(?i)^education(?:al\s+background)?$|^academic\s+background$`)},
	{SectionSkills, regexp.MustCompile(`(?i)^(?:technical\s+)?skills$|^technologies$|^core\s+competencies$`)},
	{SectionProjects, regexp.MustCompile(`(?i)^(?:personal\s+|academic\s+)?projects?$`)},
	{SectionCertifications, regexp.MustCompile(`(?i)^certifications?$|^certificates$|^licenses(?:\s+and\s+certifications)?$`)},
	{SectionLanguages, regexp.MustCompile(`(?i)^languages?$`)},
	{SectionVolunteer, regexp.MustCompile(`(?i)^volunteer(?:ing|\s+experience|\s+work)?$`)},
	{SectionPublications, regexp.MustCompile(`(?i)^publications?$`)},
	{SectionAwards, regexp.MustCompile(`(?i)^awards?$|^honors(?:\s+and\s+awards)?$`)},
	{SectionInterests, regexp.MustCompile(`(?i)^interests?$|^hobbies$`)},
}

// headerLineRe matches any candidate header line: the combined alternation of
// every known header label, anchored at line start, optionally colon-terminated.
var headerLineRe = regexp.MustCompile(`(?im)^[ \t]*(` +
	`(?:work\s+)?experience|work\s+history|employment(?:\s+history)?|professional\s+experience` +
	`|education(?:al\s+background)?|academic\s+background` +
	`|(?:technical\s+)?skills|technologies|core\s+competencies` +
	`|(?:personal\s+|academic\s+)?projects?` +
	`|certifications?|certificates|licenses(?:\s+and\s+certifications)?` +
	`|languages?` +
	`|volunteer(?:ing|\s+experience|\s+work)?` +
	`|publications?` +
	`|awards?|honors(?:\s+and\s+awards)?` +
	`|interests?|hobbies` +
	`)[ \t]*:?[ \t]*$`)

// fallbackHeaderRe is the looser pass tried once when no known header matched:
// any line of three or more upper-case words, optionally colon-terminated.
var fallbackHeaderRe = regexp.MustCompile(`(?m)^[ \t]*((?:[A-Z]{2,}[ \t]+){2,}[A-Z]{2,})[ \t]*:?[ \t]*$`)

// Segment splits normalized text into labeled sections. Each section's body
// runs from the end of its header line to the start of the next header, or to
// end of document for the final section. Zero sections is a declared
// degradation, not a failure: downstream extractors simply never run.
func Segment(text string) []Section {
	matches := headerLineRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		matches = fallbackHeaderRe.FindAllStringSubmatchIndex(text, -1)
	}
	if len(matches) == 0 {
		return nil
	}

	sections := make([]Section, 0, len(matches))
	for i, m := range matches {
		label := strings.TrimSpace(text[m[2]:m[3]])

		bodyStart := m[1]
		bodyEnd := len(text)
		if i+1 < len(matches) {
			bodyEnd = matches[i+1][0]
		}

		sections = append(sections, Section{
			Kind:  classifyLabel(label),
			Label: label,
			Body:  strings.TrimSpace(text[bodyStart:bodyEnd]),
		})
	}

	return sections
}

// classifyLabel resolves a header label to a section kind by trying the
// prioritized pattern list in order.
func classifyLabel(label string) SectionKind {
	trimmed := strings.TrimSuffix(strings.TrimSpace(label), ":")
	trimmed = strings.TrimSpace(trimmed)

	for _, hp := range headerPatterns {
		if hp.expr.MatchString(trimmed) {
			return hp.kind
		}
	}
	return SectionUnknown
}
