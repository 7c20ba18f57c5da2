// Package extract turns resume files of various formats into plain text
// suitable for the import pipeline.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Source extracts plain text from one file format.
type Source interface {
	// Name identifies the format for logging and error messages.
	Name() string
	// Extract reads the file at path and returns its plain text.
	Extract(path string) (string, error)
}

// Error represents a failure to acquire text from a file. Acquisition
// failures are fatal to an import run.
type Error struct {
	Path    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extract error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("extract error for %s: %s", e.Path, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ForPath selects a text source based on the file extension.
func ForPath(path string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return &PDFSource{}, nil
	case ".docx":
		return &DocxSource{}, nil
	case ".html", ".htm":
		return &HTMLSource{}, nil
	case ".txt", ".text", ".md":
		return &TextSource{}, nil
	default:
		return nil, &Error{Path: path, Message: "unsupported file format"}
	}
}
