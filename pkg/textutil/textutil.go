// Package textutil provides common text cleanup helpers shared across the pipeline.
package textutil

import "strings"

// Clean trims the string and collapses internal whitespace runs to single spaces.
// It returns "" for strings that are empty after trimming.
func Clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Slug converts a display name into a lowercase, hyphen-separated slug.
// Characters outside [a-z0-9-] are removed and hyphen runs are collapsed.
func Slug(name string) string {
	lower := strings.ToLower(name)
	spaced := strings.Join(strings.Fields(lower), "-")

	var b strings.Builder
	for _, r := range spaced {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}

	collapsed := collapseHyphens(b.String())

	return strings.Trim(collapsed, "-")
}

// DedupePreserveOrder removes duplicate strings keeping first-seen order.
func DedupePreserveOrder(values []string) []string {
	seen := make(map[string]struct{}, len(values))

	var result []string

	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}

		seen[v] = struct{}{}
		result = append(result, v)
	}

	return result
}

func collapseHyphens(s string) string {
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}

	return s
}
