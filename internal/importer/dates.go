package importer

import (
	"fmt"
	"regexp"
	"strings"
)

// presentToken is the literal sentinel for an open-ended date range.
const presentToken = "Present"

const monthExpr = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)`

// dateRangePatterns is the ordered pattern list for date ranges. The first
// matching pattern wins; order defines behavior and must be preserved.
var dateRangePatterns = []*regexp.Regexp{
	// Month-name year, e.g. "Jan 2020 - Present" or "January 2020 – March 2022".
	regexp.MustCompile(`(?i)(` + monthExpr + `\.?,?\s+\d{4})\s*[-–—]\s*(` + monthExpr + `\.?,?\s+\d{4}|Present|Current)`),
	// Numeric month/year, e.g. "01/2020 - 06/2022".
	regexp.MustCompile(`(?i)(\d{1,2}/\d{4})\s*[-–—]\s*(\d{1,2}/\d{4}|Present|Current)`),
	// Bare years, e.g. "2018 - 2020".
	regexp.MustCompile(`(?i)\b(\d{4})\s*[-–—]\s*(\d{4}|Present|Current)\b`),
}

var monthNumbers = map[string]string{
	"jan": "01", "feb": "02", "mar": "03", "apr": "04",
	"may": "05", "jun": "06", "jul": "07", "aug": "08",
	"sep": "09", "oct": "10", "nov": "11", "dec": "12",
}

var monthYearRe = regexp.MustCompile(`(?i)(` + monthExpr + `)\.?,?\s+(\d{4})`)
var numericMonthYearRe = regexp.MustCompile(`^(\d{1,2})/(\d{4})$`)

// parseDateRange tries the ordered date-range patterns against s and returns
// the normalized start and end tokens of the first match. An explicit
// Present/Current end token always maps to the literal "Present"; when a range
// matched, end is never empty.
func parseDateRange(s string) (start, end string, ok bool) {
	for _, pattern := range dateRangePatterns {
		m := pattern.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		return normalizeDateToken(m[1]), normalizeDateToken(m[2]), true
	}
	return "", "", false
}

// normalizeDateToken converts a matched date token to YYYY-MM where month
// precision is available. Bare years pass through unchanged, and an explicit
// Present/Current token becomes the "Present" sentinel.
func normalizeDateToken(token string) string {
	token = strings.TrimSpace(token)

	if strings.EqualFold(token, "present") || strings.EqualFold(token, "current") {
		return presentToken
	}

	if m := monthYearRe.FindStringSubmatch(token); m != nil {
		if num, found := monthNumbers[strings.ToLower(m[1])[:3]]; found {
			return fmt.Sprintf("%s-%s", m[2], num)
		}
	}

	if m := numericMonthYearRe.FindStringSubmatch(token); m != nil {
		month := m[1]
		if len(month) == 1 {
			month = "0" + month
		}
		return fmt.Sprintf("%s-%s", m[2], month)
	}

	return token
}
