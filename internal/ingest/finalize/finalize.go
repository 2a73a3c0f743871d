// Package finalize maps normalized drafts into catalog products with stable
// derived IDs and ingestion provenance.
package finalize

import (
	"strings"

	"clothinghub/internal/ingest/identity"
	"clothinghub/internal/ingest/normalize"
	"clothinghub/internal/models"
	"clothinghub/pkg/textutil"
)

// Issue codes emitted by this package.
const (
	CodeVariantMapped = "finalize.variant_mapped"
)

// DefaultCategory is assigned when a draft carries no category path.
const DefaultCategory = "uncategorized"

// Result is the outcome of finalizing one draft.
type Result struct {
	OK      bool
	Product *models.CatalogProduct
	Issues  []models.Issue
}

// Finalize maps a draft 1:1 onto the catalog product shape. The catalog does
// not model variants as addressable entities; variant sizes and colors are
// folded into the parent's sets and each variant is reported with an
// info-level issue.
func Finalize(draft *normalize.Draft, ctx normalize.Context) Result {
	var issues []models.Issue

	productID := identity.DeriveProductID(ctx.RetailerID, draft.SourceProductID)

	brand := draft.Brand
	if brand == "" {
		brand = ctx.RetailerID
	}

	images := make([]models.ProductImage, 0, len(draft.ImageURLs))
	for _, url := range draft.ImageURLs {
		images = append(images, models.ProductImage{URL: url, Alt: draft.Title})
	}

	category, subcategory := splitCategoryPath(draft.CategoryPath)

	inStock := true
	if draft.InStock != nil {
		inStock = *draft.InStock
	}

	price := models.Price{
		Amount:   draft.Price.Amount,
		Currency: draft.Price.Currency,
	}
	if draft.OriginalPrice != nil {
		original := draft.OriginalPrice.Amount
		price.OriginalAmount = &original
	}

	product := &models.CatalogProduct{
		ID:          productID,
		Source:      models.SourceAPI,
		SourceName:  ctx.RetailerID,
		SourceID:    draft.SourceProductID,
		Name:        draft.Title,
		Brand:       brand,
		Description: draft.Description,
		Images:      images,
		URL:         draft.ProductURL,
		Price:       price,
		Gender:      draft.Gender,
		Category:    category,
		Subcategory: subcategory,
		Colors:      defaultArray(draft.Colors),
		Sizes:       defaultArray(draft.Sizes),
		Tags:        defaultArray(draft.Tags),
		InStock:     inStock,
		Ingestion: &models.IngestionMeta{
			RetailerID:      ctx.RetailerID,
			SourceID:        ctx.SourceID,
			SourceProductID: draft.SourceProductID,
			ProductURL:      draft.ProductURL,
		},
	}

	if len(draft.Variants) > 0 {
		var variantSizes, variantColors []string

		for _, variant := range draft.Variants {
			key := identity.VariantKey(variant.SKU, variant.Size, variant.Color)
			variantID := identity.DeriveVariantID(productID, key)

			if variant.Size != "" {
				variantSizes = append(variantSizes, variant.Size)
			}

			if variant.Color != "" {
				variantColors = append(variantColors, variant.Color)
			}

			issues = append(issues, models.Issue{
				Severity:   models.SeverityInfo,
				Code:       CodeVariantMapped,
				Message:    "Variant processed for base catalog product",
				RetailerID: ctx.RetailerID,
				SourceID:   ctx.SourceID,
				ProductID:  productID,
				VariantID:  variantID,
			})
		}

		if len(variantSizes) > 0 {
			product.Sizes = textutil.DedupePreserveOrder(append(product.Sizes, variantSizes...))
		}

		if len(variantColors) > 0 {
			product.Colors = textutil.DedupePreserveOrder(append(product.Colors, variantColors...))
		}
	}

	return Result{OK: true, Product: product, Issues: issues}
}

// splitCategoryPath takes "Men > Hoodies & Sweatshirts" style paths and
// returns the last segment (lower-cased) as the category with the remainder
// joined as the subcategory. Empty paths map to the default category.
func splitCategoryPath(path string) (category, subcategory string) {
	if path == "" {
		return DefaultCategory, ""
	}

	var parts []string

	for _, part := range strings.Split(path, ">") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	if len(parts) == 0 {
		return DefaultCategory, ""
	}

	category = strings.ToLower(parts[len(parts)-1])
	if len(parts) > 1 {
		subcategory = strings.Join(parts[:len(parts)-1], " > ")
	}

	return category, subcategory
}

func defaultArray(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
