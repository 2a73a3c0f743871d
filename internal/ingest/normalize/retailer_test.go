package normalize

import (
	"testing"

	"clothinghub/internal/models"
)

func TestRegistry_CategoryRewrite(t *testing.T) {
	registry := NewRegistry()

	tests := []struct {
		name     string
		retailer string
		path     string
		want     string
	}{
		{name: "Known path rewritten", retailer: "zara", path: "MAN > Trousers > Cargo", want: "Men > Pants > Cargo"},
		{name: "Irregular spacing", retailer: "abercrombie", path: "men>jeans", want: "Men > Jeans"},
		{name: "Unmapped passes through trimmed", retailer: "zara", path: "  Woman > Dresses  ", want: "Woman > Dresses"},
		{name: "Alternate retailer spelling", retailer: "H & M", path: "men > t-shirts", want: "Men > T-shirts"},
		{name: "Unknown retailer untouched", retailer: "ssense", path: "  Men > Jeans ", want: "  Men > Jeans "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := models.RawProduct{ID: "x", Name: "Item", CategoryPath: tt.path}

			got := registry.Clean(tt.retailer, raw)
			if got.CategoryPath != tt.want {
				t.Errorf("Clean(%q).CategoryPath = %q, want %q", tt.retailer, got.CategoryPath, tt.want)
			}
		})
	}
}

func TestRegistry_TextCleanup(t *testing.T) {
	registry := NewRegistry()

	raw := models.RawProduct{
		ID:          "x",
		Name:        "  Relaxed   Hoodie ",
		Brand:       " Nike ",
		Description: "  Soft fleece.  ",
	}

	got := registry.Clean("nike", raw)

	if got.Name != "Relaxed Hoodie" {
		t.Errorf("Name = %q", got.Name)
	}

	if got.Brand != "Nike" {
		t.Errorf("Brand = %q", got.Brand)
	}

	if got.Description != "Soft fleece." {
		t.Errorf("Description = %q", got.Description)
	}
}

func TestRegistry_DoesNotMutateInput(t *testing.T) {
	registry := NewRegistry()
	raw := models.RawProduct{ID: "x", Name: "  Tee ", CategoryPath: "men > jeans"}

	_ = registry.Clean("gap", raw)

	if raw.Name != "  Tee " {
		t.Errorf("input mutated: Name = %q", raw.Name)
	}
}

func TestRegistry_RegisterOverride(t *testing.T) {
	registry := NewRegistry()
	registry.Register("ssense", &categoryTableStrategy{categories: map[string]string{
		"menswear > tops": "Men > Tops",
	}})

	raw := models.RawProduct{ID: "x", Name: "Tee", CategoryPath: "Menswear > Tops"}

	got := registry.Clean("SSENSE", raw)
	if got.CategoryPath != "Men > Tops" {
		t.Errorf("CategoryPath = %q, want Men > Tops", got.CategoryPath)
	}
}
