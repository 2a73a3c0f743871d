package normalize

import (
	"testing"

	"clothinghub/internal/models"
)

var testCtx = Context{RetailerID: "demo", SourceID: "demo-json"}

func floatPtr(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }

func validRaw() models.RawProduct {
	return models.RawProduct{
		ID:         "a1",
		Name:       "Essential Tee",
		ProductURL: "https://x.test/a1",
		ImageURL:   "https://x.test/a1.jpg",
		Price:      floatPtr(20),
		Currency:   "usd",
	}
}

func TestNormalize_Valid(t *testing.T) {
	result := Normalize(validRaw(), testCtx)

	if !result.OK {
		t.Fatalf("Normalize rejected a valid record, issues: %+v", result.Issues)
	}

	draft := result.Draft
	if draft.Title != "Essential Tee" {
		t.Errorf("Title = %q, want Essential Tee", draft.Title)
	}

	if draft.Price.Amount != 20 || draft.Price.Currency != "USD" {
		t.Errorf("Price = %+v, want {20 USD}", draft.Price)
	}

	if len(draft.ImageURLs) != 1 || draft.ImageURLs[0] != "https://x.test/a1.jpg" {
		t.Errorf("ImageURLs = %v", draft.ImageURLs)
	}

	if draft.SourceProductID != "a1" || draft.RetailerID != "demo" || draft.SourceID != "demo-json" {
		t.Errorf("draft provenance = %q/%q/%q", draft.SourceProductID, draft.RetailerID, draft.SourceID)
	}
}

func TestNormalize_FatalRejections(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*models.RawProduct)
		wantCode string
	}{
		{
			name:     "Missing name",
			mutate:   func(r *models.RawProduct) { r.Name = "   " },
			wantCode: CodeMissingName,
		},
		{
			name:     "Invalid product URL",
			mutate:   func(r *models.RawProduct) { r.ProductURL = "ftp://x.test/a1" },
			wantCode: CodeInvalidProductURL,
		},
		{
			name:     "Relative product URL",
			mutate:   func(r *models.RawProduct) { r.ProductURL = "/products/a1" },
			wantCode: CodeInvalidProductURL,
		},
		{
			name:     "Missing price",
			mutate:   func(r *models.RawProduct) { r.Price = nil },
			wantCode: CodeMissingPrice,
		},
		{
			name:     "Negative price",
			mutate:   func(r *models.RawProduct) { r.Price = floatPtr(-5) },
			wantCode: CodeInvalidPrice,
		},
		{
			name:     "Price without currency",
			mutate:   func(r *models.RawProduct) { r.Currency = "" },
			wantCode: CodeMissingCurrency,
		},
		{
			name: "No valid images",
			mutate: func(r *models.RawProduct) {
				r.ImageURL = "not-a-url"
			},
			wantCode: CodeMissingImageURLs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw()
			tt.mutate(&raw)

			result := Normalize(raw, testCtx)
			if result.OK {
				t.Fatal("Normalize accepted a fatally invalid record")
			}

			found := false

			for _, issue := range result.Issues {
				if issue.Code == tt.wantCode {
					found = true

					if issue.Severity != models.SeverityError {
						t.Errorf("issue %s severity = %s, want error", issue.Code, issue.Severity)
					}

					if issue.ProductID != "a1" {
						t.Errorf("issue %s productId = %q, want a1", issue.Code, issue.ProductID)
					}
				}
			}

			if !found {
				t.Errorf("missing issue code %s in %+v", tt.wantCode, result.Issues)
			}
		})
	}
}

func TestNormalize_DegradesGracefully(t *testing.T) {
	raw := validRaw()
	raw.ImageURLs = []string{"https://x.test/a1-front.jpg", "bogus", "https://x.test/a1-front.jpg"}
	raw.Tags = []string{" streetwear ", "streetwear", "", "oversized"}
	raw.OriginalPrice = floatPtr(0)

	result := Normalize(raw, testCtx)
	if !result.OK {
		t.Fatalf("Normalize rejected record with recoverable problems: %+v", result.Issues)
	}

	// bogus image dropped with a warning, duplicates deduped, imageUrl appended.
	wantImages := []string{"https://x.test/a1-front.jpg", "https://x.test/a1.jpg"}
	if len(result.Draft.ImageURLs) != len(wantImages) {
		t.Fatalf("ImageURLs = %v, want %v", result.Draft.ImageURLs, wantImages)
	}

	for i := range wantImages {
		if result.Draft.ImageURLs[i] != wantImages[i] {
			t.Errorf("ImageURLs[%d] = %q, want %q", i, result.Draft.ImageURLs[i], wantImages[i])
		}
	}

	wantTags := []string{"streetwear", "oversized"}
	if len(result.Draft.Tags) != len(wantTags) {
		t.Fatalf("Tags = %v, want %v", result.Draft.Tags, wantTags)
	}

	if result.Draft.OriginalPrice != nil {
		t.Error("invalid originalPrice should be dropped, not kept")
	}

	if models.WarningCount(result.Issues) == 0 {
		t.Error("expected warning issues for dropped image URL")
	}

	if got := models.ErrorCount(result.Issues); got != 1 {
		// The zero originalPrice is the only error and it is non-fatal.
		t.Errorf("ErrorCount = %d, want 1", got)
	}
}

func TestNormalize_Variants(t *testing.T) {
	raw := validRaw()
	raw.Variants = []models.RawVariant{
		{ID: "v1", Size: "M", Color: "black", Price: floatPtr(20)},
		{ID: "  ", Size: "L"},
		{ID: "v3", URL: "nope"},
	}

	result := Normalize(raw, testCtx)
	if !result.OK {
		t.Fatalf("Normalize rejected parent: %+v", result.Issues)
	}

	if len(result.Draft.Variants) != 2 {
		t.Fatalf("Variants kept = %d, want 2", len(result.Draft.Variants))
	}

	// v1 price uses the product currency fallback.
	v1 := result.Draft.Variants[0]
	if v1.Price == nil || v1.Price.Currency != "USD" {
		t.Errorf("variant price = %+v, want currency USD", v1.Price)
	}

	var sawMissingID, sawBadURL bool

	for _, issue := range result.Issues {
		switch issue.Code {
		case CodeMissingVariantID:
			sawMissingID = true
		case CodeInvalidVariantURL:
			sawBadURL = true
		}
	}

	if !sawMissingID || !sawBadURL {
		t.Errorf("missing variant issues (missingID=%v badURL=%v): %+v", sawMissingID, sawBadURL, result.Issues)
	}
}
