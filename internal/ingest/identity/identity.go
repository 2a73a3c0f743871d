// Package identity derives deterministic catalog product and variant IDs.
//
// IDs depend only on (retailer id, source external id), never on mutable
// fields, clocks, or locale state, so re-ingesting the same source item
// always yields the same ID across runs and processes.
package identity

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

const (
	retailerSegMax = 24
	sourceSegMax   = 48
	variantSegMax  = 32

	keySeparator = "::"

	// fallbackVariantKey is used when a variant has neither SKU nor
	// size/color to key on.
	fallbackVariantKey = "variant"
)

// DeriveProductID computes the stable catalog ID for a product pulled from a
// retailer feed. The shape is p_<retailer>_<external>_<8 hex chars>.
func DeriveProductID(retailerID, sourceProductID string) string {
	retailerSeg := toIDSafeSegment(retailerID, retailerSegMax)
	sourceSeg := toIDSafeSegment(sourceProductID, sourceSegMax)
	hash := fnv1a32(stableKey(retailerID, sourceProductID))

	return fmt.Sprintf("p_%s_%s_%s", retailerSeg, sourceSeg, hash)
}

// DeriveVariantID computes a stable variant ID scoped under its parent
// product ID.
func DeriveVariantID(productID, variantKey string) string {
	variantSeg := toIDSafeSegment(variantKey, variantSegMax)
	hash := fnv1a32(stableKey(productID, variantKey))

	return fmt.Sprintf("v_%s_%s_%s", productID, variantSeg, hash)
}

// VariantKey selects the identity key for a variant: SKU when present,
// otherwise size and color joined, otherwise a fixed fallback.
func VariantKey(sku, size, color string) string {
	if strings.TrimSpace(sku) != "" {
		return sku
	}

	var parts []string

	if strings.TrimSpace(size) != "" {
		parts = append(parts, size)
	}

	if strings.TrimSpace(color) != "" {
		parts = append(parts, color)
	}

	if len(parts) == 0 {
		return fallbackVariantKey
	}

	return strings.Join(parts, "_")
}

func stableKey(parts ...string) string {
	return strings.Join(parts, keySeparator)
}

// toIDSafeSegment lowercases the input, collapses non-alphanumeric runs to
// single hyphens, trims edge hyphens, and caps the length. Inputs that clean
// down to nothing become "x" so the segment is never empty.
func toIDSafeSegment(input string, maxLen int) string {
	lowered := strings.ToLower(strings.TrimSpace(input))

	var b strings.Builder

	lastHyphen := false

	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)

			lastHyphen = false

			continue
		}

		if !lastHyphen {
			b.WriteByte('-')

			lastHyphen = true
		}
	}

	trimmed := strings.Trim(b.String(), "-")

	if maxLen < 1 {
		maxLen = 1
	}

	if len(trimmed) > maxLen {
		trimmed = trimmed[:maxLen]
	}

	if trimmed == "" {
		return "x"
	}

	return trimmed
}

// fnv1a32 hashes the input with 32-bit FNV-1a over UTF-16 code units and
// returns the zero-padded hex form. Hashing code units rather than UTF-8
// bytes keeps IDs stable against the historical snapshots, whose hashes were
// computed that way; stdlib hash/fnv would diverge on non-ASCII ids.
func fnv1a32(input string) string {
	const (
		offsetBasis = 0x811c9dc5
		prime       = 0x01000193
	)

	hash := uint32(offsetBasis)

	for _, unit := range utf16.Encode([]rune(input)) {
		hash ^= uint32(unit)
		hash *= prime
	}

	return fmt.Sprintf("%08x", hash)
}
