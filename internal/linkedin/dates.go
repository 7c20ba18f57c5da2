package linkedin

import (
	"fmt"
	"strconv"
	"strings"
)

// formatDate converts LinkedIn export dates (MM/YYYY or MM/DD/YYYY) to the
// YYYY-MM form used across the record. Anything unrecognized passes through.
func formatDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	parts := strings.Split(s, "/")

	var month, year string
	switch len(parts) {
	case 2:
		month, year = parts[0], parts[1]
	case 3:
		month, year = parts[0], parts[2]
	default:
		return s
	}

	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return s
	}
	if _, err := strconv.Atoi(year); err != nil || len(year) != 4 {
		return s
	}

	return fmt.Sprintf("%s-%02d", year, m)
}
