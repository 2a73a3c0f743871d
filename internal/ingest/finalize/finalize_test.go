package finalize

import (
	"strings"
	"testing"

	"clothinghub/internal/ingest/normalize"
	"clothinghub/internal/models"
)

var testCtx = normalize.Context{RetailerID: "demo", SourceID: "demo-json"}

func baseDraft() *normalize.Draft {
	return &normalize.Draft{
		SourceProductID: "a1",
		RetailerID:      "demo",
		SourceID:        "demo-json",
		Title:           "Essential Tee",
		ProductURL:      "https://x.test/a1",
		ImageURLs:       []string{"https://x.test/a1.jpg"},
		Price:           models.Money{Amount: 20, Currency: "USD"},
	}
}

func TestFinalize_BaseMapping(t *testing.T) {
	result := Finalize(baseDraft(), testCtx)

	if !result.OK {
		t.Fatalf("Finalize failed: %+v", result.Issues)
	}

	product := result.Product

	if !strings.HasPrefix(product.ID, "p_demo_a1_") {
		t.Errorf("ID = %q, want p_demo_a1_ prefix", product.ID)
	}

	if product.Source != models.SourceAPI || product.SourceName != "demo" || product.SourceID != "a1" {
		t.Errorf("source fields = %q/%q/%q", product.Source, product.SourceName, product.SourceID)
	}

	// Brand falls back to the retailer id when absent.
	if product.Brand != "demo" {
		t.Errorf("Brand = %q, want demo", product.Brand)
	}

	if len(product.Images) != 1 || product.Images[0].Alt != "Essential Tee" {
		t.Errorf("Images = %+v, want alt defaulted to title", product.Images)
	}

	if product.Price.Amount != 20 || product.Price.Currency != "USD" || product.Price.OriginalAmount != nil {
		t.Errorf("Price = %+v", product.Price)
	}

	if product.Category != "uncategorized" || product.Subcategory != "" {
		t.Errorf("Category = %q/%q, want uncategorized", product.Category, product.Subcategory)
	}

	if !product.InStock {
		t.Error("InStock should default to true")
	}

	if product.Colors == nil || product.Sizes == nil || product.Tags == nil {
		t.Error("array fields must be empty slices, not nil")
	}

	meta := product.Ingestion
	if meta == nil || meta.RetailerID != "demo" || meta.SourceID != "demo-json" || meta.SourceProductID != "a1" || meta.ProductURL != "https://x.test/a1" {
		t.Errorf("Ingestion = %+v", meta)
	}
}

func TestFinalize_CategorySplit(t *testing.T) {
	tests := []struct {
		name            string
		path            string
		wantCategory    string
		wantSubcategory string
	}{
		{name: "Two levels", path: "Men > Jeans", wantCategory: "jeans", wantSubcategory: "Men"},
		{name: "Three levels", path: "Men > Pants > Cargo", wantCategory: "cargo", wantSubcategory: "Men > Pants"},
		{name: "Single level", path: "Hoodies", wantCategory: "hoodies", wantSubcategory: ""},
		{name: "Empty segments only", path: " >  > ", wantCategory: "uncategorized", wantSubcategory: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := baseDraft()
			draft.CategoryPath = tt.path

			result := Finalize(draft, testCtx)
			if result.Product.Category != tt.wantCategory || result.Product.Subcategory != tt.wantSubcategory {
				t.Errorf("split(%q) = %q/%q, want %q/%q",
					tt.path, result.Product.Category, result.Product.Subcategory, tt.wantCategory, tt.wantSubcategory)
			}
		})
	}
}

func TestFinalize_VariantFolding(t *testing.T) {
	draft := baseDraft()
	draft.Sizes = []string{"S"}
	draft.Variants = []normalize.VariantDraft{
		{ID: "v1", Size: "M", Color: "black"},
		{ID: "v2", Size: "M", Color: "navy"},
		{ID: "v3", SKU: "SKU-L"},
	}

	result := Finalize(draft, testCtx)
	if !result.OK {
		t.Fatalf("Finalize failed: %+v", result.Issues)
	}

	wantSizes := []string{"S", "M"}
	if len(result.Product.Sizes) != len(wantSizes) {
		t.Fatalf("Sizes = %v, want %v", result.Product.Sizes, wantSizes)
	}

	wantColors := []string{"black", "navy"}
	if len(result.Product.Colors) != len(wantColors) {
		t.Fatalf("Colors = %v, want %v", result.Product.Colors, wantColors)
	}

	infoCount := 0

	for _, issue := range result.Issues {
		if issue.Code == CodeVariantMapped {
			if issue.Severity != models.SeverityInfo {
				t.Errorf("variant issue severity = %s, want info", issue.Severity)
			}

			if issue.VariantID == "" || !strings.HasPrefix(issue.VariantID, "v_"+result.Product.ID+"_") {
				t.Errorf("variant issue id = %q", issue.VariantID)
			}

			infoCount++
		}
	}

	if infoCount != 3 {
		t.Errorf("variant issues = %d, want 3", infoCount)
	}
}

func TestFinalize_PreservesDraftBrandAndSale(t *testing.T) {
	draft := baseDraft()
	draft.Brand = "Demo Apparel"
	original := models.Money{Amount: 30, Currency: "USD"}
	draft.OriginalPrice = &original

	result := Finalize(draft, testCtx)

	if result.Product.Brand != "Demo Apparel" {
		t.Errorf("Brand = %q", result.Product.Brand)
	}

	if result.Product.Price.OriginalAmount == nil || *result.Product.Price.OriginalAmount != 30 {
		t.Errorf("OriginalAmount = %v, want 30", result.Product.Price.OriginalAmount)
	}
}
