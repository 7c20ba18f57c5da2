package importer

import (
	"regexp"
	"strings"

	"github.com/DDH2004/Resume-Importer/internal/types"
)

var (
	certIssuerRe = regexp.MustCompile(`(?i)(?:issued|awarded|certified)\s+by\s+([^\n,.]+)`)
	certDateRe   = regexp.MustCompile(`(?i)(?:issued|awarded|completed|earned)\s+(?:on|in)\s+([^\n,.]+)`)
)

// extractCertifications pulls certification entries out of a section body.
// The first line of each entry is kept as the certification name whenever it
// is non-empty.
func extractCertifications(body string, rec *types.ResumeRecord) {
	for _, entry := range splitEntries(body) {
		name := strings.TrimSpace(strings.TrimLeft(firstLine(entry), "•●-* \t"))
		if name == "" {
			continue
		}

		issuer := ""
		if m := certIssuerRe.FindStringSubmatch(entry); m != nil {
			issuer = strings.TrimSpace(m[1])
		}

		date := ""
		if m := certDateRe.FindStringSubmatch(entry); m != nil {
			date = normalizeDateToken(m[1])
		}

		rec.Certificates = append(rec.Certificates, types.CertificateEntry{
			Name:     name,
			Date:     date,
			Issuer:   issuer,
			URL:      "",
			Keywords: []string{},
		})
	}
}
