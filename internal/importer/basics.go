package importer

import (
	"regexp"
	"strings"

	"github.com/DDH2004/Resume-Importer/internal/types"
)

const (
	// nameScanLines bounds how far into the document the name scan looks.
	nameScanLines = 7
	// nameMaxLen rejects header-like lines that are too long to be a name.
	nameMaxLen = 40
)

var (
	// A line of 2-4 capitalized words.
	nameLineRe  = regexp.MustCompile(`^[A-Z][\w'.-]*(?:[ \t]+[A-Z][\w'.-]*){1,3}$`)
	nameLabelRe = regexp.MustCompile(`(?im)^name\s*:\s*(.+)$`)

	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9-]+\.[A-Za-z0-9.-]+`)

	// Phone pattern variants in fixed priority order; the first variant that
	// matches anywhere in the document wins.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+\d{1,2}[\s.-]?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`),
		regexp.MustCompile(`\(\d{3}\)[\s.-]?\d{3}[\s.-]?\d{4}`),
		regexp.MustCompile(`\b\d{3}[\s.-]\d{3}[\s.-]\d{4}\b`),
		regexp.MustCompile(`\b\d{10}\b`),
	}

	linkedinRe = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/(?:in|profile)/([\w-]+)`)
)

// extractBasics scans the whole normalized document for contact information.
// It runs independently of section segmentation and overwrites basics scalar
// fields directly (last writer wins).
func extractBasics(text string, rec *types.ResumeRecord) {
	if name := findName(text); name != "" {
		rec.Basics.Name = name
	}

	if email := emailRe.FindString(text); email != "" {
		rec.Basics.Email = email
	}

	for _, pattern := range phonePatterns {
		if phone := pattern.FindString(text); phone != "" {
			rec.Basics.Phone = phone
			break
		}
	}

	if m := linkedinRe.FindStringSubmatch(text); m != nil {
		username := m[1]
		url := "https://www.linkedin.com/in/" + username
		rec.Basics.URL = url
		rec.Basics.Profiles = append(rec.Basics.Profiles, types.Profile{
			Network:  "LinkedIn",
			URL:      url,
			Username: username,
		})
	}
}

// findName looks for a 2-4 capitalized-word line among the first few lines of
// the document, falling back to an explicit "Name:" label anywhere in it.
func findName(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > nameScanLines {
		lines = lines[:nameScanLines]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || len(line) >= nameMaxLen {
			continue
		}
		if strings.ContainsAny(line, "@0123456789") {
			continue
		}
		if nameLineRe.MatchString(line) {
			return line
		}
	}

	if m := nameLabelRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}

	return ""
}
