package source

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Supported CSV charsets.
const (
	CharsetUTF8        = "utf-8"
	CharsetLatin1      = "latin-1"
	CharsetWindows1252 = "windows-1252"
)

// decodeCharset converts feed bytes in the named charset to UTF-8. An empty
// charset means UTF-8.
func decodeCharset(data []byte, charset string) (string, error) {
	var enc encoding.Encoding

	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", CharsetUTF8, "utf8":
		return string(data), nil
	case CharsetLatin1, "iso-8859-1":
		enc = charmap.ISO8859_1
	case CharsetWindows1252, "cp1252":
		enc = charmap.Windows1252
	default:
		return "", fmt.Errorf("unsupported charset %q", charset)
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s feed: %w", charset, err)
	}

	return string(decoded), nil
}

// parseCSV splits the input into rows of fields. It supports quoted fields
// with "" escaping, custom single-rune delimiters, and both CRLF and LF line
// endings. A trailing newline does not produce a phantom empty row.
func parseCSV(input string, delimiter rune) [][]string {
	if delimiter == 0 {
		delimiter = ','
	}

	var (
		rows     [][]string
		current  []string
		field    strings.Builder
		inQuotes bool
	)

	pushField := func() {
		current = append(current, field.String())
		field.Reset()
	}

	pushRow := func() {
		rows = append(rows, current)
		current = nil
	}

	runes := []rune(input)

	for i := 0; i < len(runes); i++ {
		char := runes[i]

		var next rune
		if i+1 < len(runes) {
			next = runes[i+1]
		}

		if inQuotes {
			switch {
			case char == '"' && next == '"':
				field.WriteRune('"')

				i++
			case char == '"':
				inQuotes = false
			default:
				field.WriteRune(char)
			}

			continue
		}

		switch {
		case char == '"':
			inQuotes = true
		case char == delimiter:
			pushField()
		case char == '\r':
			if next == '\n' {
				i++
			}

			pushField()
			pushRow()
		case char == '\n':
			pushField()
			pushRow()
		default:
			field.WriteRune(char)
		}
	}

	pushField()
	pushRow()

	if len(rows) > 0 {
		last := rows[len(rows)-1]
		if len(last) == 1 && last[0] == "" {
			rows = rows[:len(rows)-1]
		}
	}

	return rows
}

// parsePriceText parses price cells like "19.99" or "19.99 USD" into an
// amount and optional currency. An explicit currency column wins over the
// inline suffix.
func parsePriceText(value, currencyValue string) (*float64, string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, ""
	}

	parts := strings.Fields(trimmed)
	amountText := parts[0]

	currency := strings.TrimSpace(currencyValue)
	if currency == "" && len(parts) >= 2 {
		currency = parts[1]
	}

	amount, err := strconv.ParseFloat(amountText, 64)
	if err != nil || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return nil, ""
	}

	return &amount, currency
}

// splitMultiValue splits multi-valued CSV cells on "|" or ",".
func splitMultiValue(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == '|' || r == ','
	})

	var result []string

	for _, f := range fields {
		if trimmed := strings.TrimSpace(f); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// parseBoolText interprets availability cells; unrecognized values are
// treated as unknown rather than false.
func parseBoolText(value string) *bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "1":
		v := true

		return &v
	case "false", "no", "0":
		v := false

		return &v
	default:
		return nil
	}
}
