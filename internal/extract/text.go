package extract

import "os"

// TextSource reads plain text files verbatim.
type TextSource struct{}

func (s *TextSource) Name() string { return "text" }

func (s *TextSource) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &Error{Path: path, Message: "failed to read file", Cause: err}
	}
	return string(data), nil
}
