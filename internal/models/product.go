// Package models defines the catalog data model shared by every pipeline stage.
package models

// Money is a validated amount/currency pair. Currency is an upper-cased code
// such as "USD".
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Price is the catalog-facing price shape. OriginalAmount carries the
// pre-sale anchor price when the item is discounted.
type Price struct {
	Amount         float64  `json:"amount"`
	Currency       string   `json:"currency"`
	OriginalAmount *float64 `json:"originalAmount,omitempty"`
}

// ProductImage is one catalog image with optional alt text.
type ProductImage struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// Product source types.
const (
	SourceManual = "manual"
	SourceAPI    = "api"
	SourceScrape = "scrape"
)

// Recognized gender values.
const (
	GenderMens   = "mens"
	GenderWomens = "womens"
	GenderUnisex = "unisex"
	GenderKids   = "kids"
)

// IngestionMeta records where a pipeline-derived product came from.
type IngestionMeta struct {
	RetailerID      string `json:"retailerId"`
	SourceID        string `json:"sourceId"`
	SourceProductID string `json:"sourceProductId"`
	ProductURL      string `json:"productUrl"`
}

// CatalogProduct is the finalized, app-facing product entity. Its ID is
// derived purely from (retailer id, external id) and is stable across runs.
// Instances are immutable once written to a snapshot.
type CatalogProduct struct {
	ID         string `json:"id"`
	Source     string `json:"source"`
	SourceName string `json:"sourceName"`
	SourceID   string `json:"sourceId,omitempty"`

	Name        string `json:"name"`
	Brand       string `json:"brand"`
	Description string `json:"description,omitempty"`

	Images []ProductImage `json:"images"`
	URL    string         `json:"url"`

	Price Price `json:"price"`

	Gender      string `json:"gender,omitempty"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory,omitempty"`

	Colors []string `json:"colors"`
	Sizes  []string `json:"sizes"`
	Tags   []string `json:"tags"`

	InStock         bool     `json:"inStock"`
	PopularityScore *float64 `json:"popularityScore,omitempty"`
	LastUpdated     string   `json:"lastUpdated,omitempty"`

	Ingestion *IngestionMeta `json:"ingestion,omitempty"`
}
