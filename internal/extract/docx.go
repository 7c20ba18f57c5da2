package extract

import (
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var docxTagRe = regexp.MustCompile(`<[^>]+>`)

// DocxSource extracts text from Word documents, one line per paragraph.
type DocxSource struct{}

func (s *DocxSource) Name() string { return "docx" }

func (s *DocxSource) Extract(path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", &Error{Path: path, Message: "failed to parse docx", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()

	// Paragraph boundaries become newlines before the markup is dropped.
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = docxTagRe.ReplaceAllString(content, "")

	return content, nil
}
