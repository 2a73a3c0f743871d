package normalize

import (
	"math"
	"net/url"

	"clothinghub/pkg/textutil"
)

// cleanText trims and collapses whitespace; empty-after-trim becomes "".
func cleanText(value string) string {
	return textutil.Clean(value)
}

// cleanURL validates that the value parses as an absolute http/https URL and
// returns its normalized form, or "" when invalid.
func cleanURL(value string) string {
	text := cleanText(value)
	if text == "" {
		return ""
	}

	parsed, err := url.Parse(text)
	if err != nil {
		return ""
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ""
	}

	if parsed.Host == "" {
		return ""
	}

	return parsed.String()
}

// cleanStringArray trims, drops empties, and dedupes preserving first-seen
// order. Empty results become nil so absent and empty are the same.
func cleanStringArray(values []string) []string {
	var cleaned []string

	for _, v := range values {
		if c := cleanText(v); c != "" {
			cleaned = append(cleaned, c)
		}
	}

	return textutil.DedupePreserveOrder(cleaned)
}

// isPositiveAmount reports whether the amount is a finite positive number.
func isPositiveAmount(amount float64) bool {
	return !math.IsNaN(amount) && !math.IsInf(amount, 0) && amount > 0
}
