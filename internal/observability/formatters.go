// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/DDH2004/Resume-Importer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintImportSummary outputs a human-readable summary of an imported record.
func (p *Printer) PrintImportSummary(rec *types.ResumeRecord) {
	if rec == nil {
		return
	}

	var sb strings.Builder

	name := rec.Basics.Name
	if name == "" {
		name = "(unknown)"
	}
	sb.WriteString(fmt.Sprintf("Name:     %s\n", name))
	if rec.Basics.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", rec.Basics.Email))
	}
	if rec.Basics.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:    %s\n", rec.Basics.Phone))
	}
	sb.WriteString("\n")

	counts := []struct {
		label string
		n     int
	}{
		{"Work entries", len(rec.Work)},
		{"Education entries", len(rec.Education)},
		{"Skill groups", len(rec.Skills)},
		{"Projects", len(rec.Projects)},
		{"Certificates", len(rec.Certificates)},
		{"Languages", len(rec.Languages)},
	}
	for _, c := range counts {
		if c.n > 0 {
			sb.WriteString(fmt.Sprintf("%-20s %d\n", c.label+":", c.n))
		}
	}

	if len(rec.Work) > 0 {
		sb.WriteString("\nPositions:\n")
		count := min(len(rec.Work), maxItemsToShow)
		for i := 0; i < count; i++ {
			work := rec.Work[i]
			line := work.Position
			if work.Name != "" {
				line += " @ " + work.Name
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", strings.TrimSpace(line)))
		}
		if len(rec.Work) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(rec.Work)-maxItemsToShow))
		}
	}

	p.printBox("IMPORTED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillGroups outputs the categorized skill groups with their keywords.
func (p *Printer) PrintSkillGroups(rec *types.ResumeRecord) {
	if rec == nil || len(rec.Skills) == 0 {
		return
	}

	var sb strings.Builder
	for i, group := range rec.Skills {
		sb.WriteString(fmt.Sprintf("%s\n", group.Name))
		keywords := strings.Join(group.Keywords, ", ")
		if len(keywords) > 48 {
			keywords = keywords[:45] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s\n", keywords))
		if i < len(rec.Skills)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SKILL GROUPS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintImportMeta outputs the provenance block attached at finalize time.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintImportMeta(meta *types.ImportMeta) {
	if meta == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:        %s\n", meta.RunID))
	sb.WriteString(fmt.Sprintf("Source:     %s\n", meta.Source))
	sb.WriteString(fmt.Sprintf("Imported:   %s\n", meta.ImportedAt.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("Confidence: %.1f%%", meta.Confidence))

	p.printBox("IMPORT RUN", sb.String())
}
