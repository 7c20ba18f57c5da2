package extract

import (
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLSource extracts visible text from saved HTML resumes, for example a
// profile page saved from a browser.
type HTMLSource struct{}

func (s *HTMLSource) Name() string { return "html" }

func (s *HTMLSource) Extract(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &Error{Path: path, Message: "failed to read file", Cause: err}
	}
	defer func() { _ = f.Close() }()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return "", &Error{Path: path, Message: "failed to parse HTML", Cause: err}
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .sidebar, .cookie-banner").Remove()

	content := doc.Find("main, article, .content, #content").First()
	if content.Length() == 0 {
		content = doc.Find("body")
	}

	// Block elements become line breaks so section headers stay on their
	// own lines for segmentation.
	content.Find("br").ReplaceWithHtml("\n")
	content.Find("p, div, li, h1, h2, h3, h4, h5, h6, tr").AfterHtml("\n")

	return cleanLines(content.Text()), nil
}

func cleanLines(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	blank := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if !blank && len(cleaned) > 0 {
				cleaned = append(cleaned, "")
			}
			blank = true
			continue
		}
		blank = false
		cleaned = append(cleaned, line)
	}
	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}
