package oracle

import (
	"fmt"
	"strings"
)

const entityPromptTemplate = `Extract structured resume data from the text below.
Return a single JSON object with these keys: basics (name, label, email, phone,
url, summary, location, profiles), work, education, skills, projects,
certificates, languages, and confidence (your overall extraction confidence
between 0 and 1). Dates use YYYY-MM, with the literal "Present" for open-ended
ranges. Omit nothing: include every key even when its value is empty.

Resume text:
%s`

const paragraphPromptTemplate = `Classify the paragraph below into exactly one
of these labels: %s.
Return a JSON object {"label": "<label>", "score": <0..1>} where score is your
confidence in the chosen label.

Paragraph:
%s`

func buildEntityPrompt(text string) string {
	return fmt.Sprintf(entityPromptTemplate, text)
}

func buildParagraphPrompt(text string, candidateLabels []string) string {
	return fmt.Sprintf(paragraphPromptTemplate, strings.Join(candidateLabels, ", "), text)
}
