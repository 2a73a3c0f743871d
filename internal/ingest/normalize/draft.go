package normalize

import "clothinghub/internal/models"

// Context identifies the feed a record came from.
type Context struct {
	RetailerID string
	SourceID   string
}

// VariantDraft is a validated, cleaned variant awaiting finalization.
type VariantDraft struct {
	ID         string
	SKU        string
	Name       string
	Size       string
	Color      string
	Price      *models.Money
	ImageURL   string
	URL        string
	InStock    *bool
	Attributes map[string]any
}

// Draft is the validated intermediate product form. A Draft always has a
// title, a valid product URL, a valid price, and at least one valid image;
// records that cannot satisfy that are rejected whole, never partially
// normalized.
type Draft struct {
	SourceProductID string
	RetailerID      string
	SourceID        string
	Title           string
	Brand           string
	Description     string
	ProductURL      string
	ImageURLs       []string
	Price           models.Money
	OriginalPrice   *models.Money
	Variants        []VariantDraft
	Tags            []string
	Colors          []string
	Sizes           []string
	CategoryPath    string
	Gender          string
	InStock         *bool
}

// Result is the outcome of normalizing one raw record.
type Result struct {
	OK     bool
	Draft  *Draft
	Issues []models.Issue
}
