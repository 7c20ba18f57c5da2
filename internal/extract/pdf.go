package extract

import (
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFSource extracts embedded text from PDF files. Scanned PDFs with no
// text layer yield an empty string rather than an error.
type PDFSource struct{}

func (s *PDFSource) Name() string { return "pdf" }

func (s *PDFSource) Extract(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &Error{Path: path, Message: "failed to open pdf", Cause: err}
	}
	defer func() { _ = f.Close() }()

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}

	return builder.String(), nil
}
