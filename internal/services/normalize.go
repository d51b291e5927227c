// filepath: internal/services/normalize.go
package services

import (
	"regexp"
	"strconv"
	"strings"
)

// separatorRuns matches every run of the characters '.', '_', '-' and
// whitespace. Runs are removed entirely, not replaced by a separator.
var separatorRuns = regexp.MustCompile(`[._\s-]+`)

// NormalizeSearchText produces the canonical comparison form of a search
// term: lower-case with all separator runs stripped. The database applies
// the same transformation to the filename column at query time, so
// "The.Movie_2020" and "the movie 2020" compare equal. Empty or
// separator-only input yields the empty string.
func NormalizeSearchText(text string) string {
	lowered := strings.ToLower(text)
	return strings.TrimSpace(separatorRuns.ReplaceAllString(lowered, ""))
}

// normalizePage parses a page parameter, falling back to 1 on garbage or
// anything below 1.
func normalizePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// normalizeLimit parses a limit parameter, falling back to def on garbage
// and clamping the result into [1, max].
func normalizeLimit(raw string, def, max int) int {
	limit, err := strconv.Atoi(raw)
	if err != nil {
		limit = def
	}
	if limit < 1 {
		limit = 1
	}
	if limit > max {
		limit = max
	}
	return limit
}

// isAllDigits reports whether s is non-empty and consists of ASCII digits
// only.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
