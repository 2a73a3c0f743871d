package identity

import (
	"regexp"
	"testing"
)

var productIDPattern = regexp.MustCompile(`^p_[a-z0-9-]+_[a-z0-9-]+_[0-9a-f]{8}$`)

func TestDeriveProductID_Shape(t *testing.T) {
	id := DeriveProductID("demo", "a1")

	if !productIDPattern.MatchString(id) {
		t.Fatalf("DeriveProductID returned %q, want match for %s", id, productIDPattern)
	}

	wantPrefix := "p_demo_a1_"
	if len(id) != len(wantPrefix)+8 || id[:len(wantPrefix)] != wantPrefix {
		t.Errorf("DeriveProductID = %q, want prefix %q plus 8 hex chars", id, wantPrefix)
	}
}

func TestDeriveProductID_Deterministic(t *testing.T) {
	first := DeriveProductID("abercrombie", "SKU-123/45")

	for i := 0; i < 50; i++ {
		if got := DeriveProductID("abercrombie", "SKU-123/45"); got != first {
			t.Fatalf("DeriveProductID not deterministic: %q != %q", got, first)
		}
	}
}

func TestDeriveProductID_DistinctInputs(t *testing.T) {
	a := DeriveProductID("demo", "a1")
	b := DeriveProductID("demo", "a2")
	c := DeriveProductID("other", "a1")

	if a == b || a == c {
		t.Errorf("expected distinct ids, got %q, %q, %q", a, b, c)
	}
}

func TestDeriveProductID_SanitizesSegments(t *testing.T) {
	tests := []struct {
		name       string
		retailerID string
		sourceID   string
		wantPrefix string
	}{
		{name: "Mixed case and spaces", retailerID: "Urban Outfitters", sourceID: "UO 99", wantPrefix: "p_urban-outfitters_uo-99_"},
		{name: "Punctuation collapsed", retailerID: "h&m", sourceID: "it--7", wantPrefix: "p_h-m_it-7_"},
		{name: "Empty becomes placeholder", retailerID: "!!!", sourceID: "a1", wantPrefix: "p_x_a1_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := DeriveProductID(tt.retailerID, tt.sourceID)
			if len(id) < len(tt.wantPrefix) || id[:len(tt.wantPrefix)] != tt.wantPrefix {
				t.Errorf("DeriveProductID(%q, %q) = %q, want prefix %q", tt.retailerID, tt.sourceID, id, tt.wantPrefix)
			}
		})
	}
}

func TestDeriveProductID_SegmentLengthCaps(t *testing.T) {
	longRetailer := "very-long-retailer-name-that-keeps-going-and-going"
	longSource := "an-extremely-long-external-product-identifier-from-the-feed-0123456789"

	id := DeriveProductID(longRetailer, longSource)

	if !productIDPattern.MatchString(id) {
		t.Fatalf("DeriveProductID returned %q, want match for %s", id, productIDPattern)
	}

	// p_ + 24 + _ + 48 + _ + 8 is the maximum possible length.
	maxLen := 2 + 24 + 1 + 48 + 1 + 8
	if len(id) > maxLen {
		t.Errorf("DeriveProductID length = %d, want <= %d", len(id), maxLen)
	}
}

func TestDeriveVariantID(t *testing.T) {
	productID := DeriveProductID("demo", "a1")
	id := DeriveVariantID(productID, "M_black")

	wantPrefix := "v_" + productID + "_m-black_"
	if len(id) != len(wantPrefix)+8 || id[:len(wantPrefix)] != wantPrefix {
		t.Errorf("DeriveVariantID = %q, want prefix %q plus 8 hex chars", id, wantPrefix)
	}

	if again := DeriveVariantID(productID, "M_black"); again != id {
		t.Errorf("DeriveVariantID not deterministic: %q != %q", again, id)
	}
}

func TestVariantKey(t *testing.T) {
	tests := []struct {
		name  string
		sku   string
		size  string
		color string
		want  string
	}{
		{name: "SKU wins", sku: "SKU9", size: "M", color: "black", want: "SKU9"},
		{name: "Blank SKU falls through", sku: "  ", size: "M", color: "black", want: "M_black"},
		{name: "Size only", size: "L", want: "L"},
		{name: "Color only", color: "navy", want: "navy"},
		{name: "Nothing", want: "variant"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VariantKey(tt.sku, tt.size, tt.color); got != tt.want {
				t.Errorf("VariantKey(%q, %q, %q) = %q, want %q", tt.sku, tt.size, tt.color, got, tt.want)
			}
		})
	}
}
