package models

// RawVariant is a retailer-native product variant prior to normalization.
type RawVariant struct {
	ID         string         `json:"id"`
	SKU        string         `json:"sku,omitempty"`
	Name       string         `json:"name,omitempty"`
	Size       string         `json:"size,omitempty"`
	Color      string         `json:"color,omitempty"`
	Price      *float64       `json:"price,omitempty"`
	Currency   string         `json:"currency,omitempty"`
	InStock    *bool          `json:"inStock,omitempty"`
	ImageURL   string         `json:"imageUrl,omitempty"`
	URL        string         `json:"url,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// RawProduct is a retailer-native product record as pulled from a feed.
// It is produced fresh on every pipeline run and never mutated in place.
type RawProduct struct {
	ID         string `json:"id"`
	RetailerID string `json:"retailerId,omitempty"`
	SourceID   string `json:"sourceId,omitempty"`

	Name        string `json:"name"`
	Brand       string `json:"brand,omitempty"`
	Description string `json:"description,omitempty"`

	ProductURL string   `json:"productUrl,omitempty"`
	ImageURL   string   `json:"imageUrl,omitempty"`
	ImageURLs  []string `json:"imageUrls,omitempty"`

	Price         *float64 `json:"price,omitempty"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Currency      string   `json:"currency,omitempty"`

	Gender       string `json:"gender,omitempty"`
	CategoryPath string `json:"categoryPath,omitempty"`

	Colors []string `json:"colors,omitempty"`
	Sizes  []string `json:"sizes,omitempty"`
	Tags   []string `json:"tags,omitempty"`

	InStock  *bool        `json:"inStock,omitempty"`
	Variants []RawVariant `json:"variants,omitempty"`

	Metadata map[string]any `json:"metadata,omitempty"`
}
