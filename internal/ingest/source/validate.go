package source

import (
	"clothinghub/internal/models"
)

// ValidateOptions carries the feed context used while validating a parsed
// payload into raw products.
type ValidateOptions struct {
	RetailerID           string
	SourceID             string
	CodePrefix           string
	InvalidFormatMessage string
}

// ValidateFeed confirms the parsed payload is an array of product objects and
// coerces each entry into the RawProduct shape. Entries missing id, retailer
// id, or name are dropped with an error issue; unknown fields are ignored;
// wrongly typed optional fields are treated as absent. The batch itself only
// fails when the payload is not an array.
func ValidateFeed(payload any, opts ValidateOptions) ([]models.RawProduct, []models.Issue) {
	var issues []models.Issue

	entries, ok := payload.([]any)
	if !ok {
		message := opts.InvalidFormatMessage
		if message == "" {
			message = "Feed must be an array of products"
		}

		issues = append(issues, models.Issue{
			Severity:   models.SeverityError,
			Code:       opts.CodePrefix + ".invalid_format",
			Message:    message,
			RetailerID: opts.RetailerID,
			SourceID:   opts.SourceID,
		})

		return nil, issues
	}

	var products []models.RawProduct

	for index, entry := range entries {
		product, entryIssues := validateEntry(entry, opts, index)
		issues = append(issues, entryIssues...)

		if product != nil {
			products = append(products, *product)
		}
	}

	return ValidateProducts(products, opts, issues)
}

// ValidateProducts applies the batch-level rules to already-typed raw
// products: duplicate external ids are reported and every occurrence after
// the first is dropped. The issues slice is appended to and returned.
func ValidateProducts(products []models.RawProduct, opts ValidateOptions, issues []models.Issue) ([]models.RawProduct, []models.Issue) {
	seen := make(map[string]struct{}, len(products))

	var unique []models.RawProduct

	for _, product := range products {
		if _, dup := seen[product.ID]; dup {
			issues = append(issues, models.Issue{
				Severity:   models.SeverityError,
				Code:       opts.CodePrefix + ".duplicate_product_id",
				Message:    "Duplicate product id within one feed pull; keeping first occurrence",
				RetailerID: opts.RetailerID,
				SourceID:   opts.SourceID,
				ProductID:  product.ID,
			})

			continue
		}

		seen[product.ID] = struct{}{}
		unique = append(unique, product)
	}

	return unique, issues
}

func validateEntry(entry any, opts ValidateOptions, index int) (*models.RawProduct, []models.Issue) {
	var issues []models.Issue

	record, ok := entry.(map[string]any)
	if !ok {
		issues = append(issues, models.Issue{
			Severity:   models.SeverityError,
			Code:       opts.CodePrefix + ".invalid_product",
			Message:    "Product entry must be an object",
			RetailerID: opts.RetailerID,
			SourceID:   opts.SourceID,
			Details:    map[string]any{"index": index},
		})

		return nil, issues
	}

	id := asString(record["id"])
	name := asString(record["name"])

	retailerID := asString(record["retailerId"])
	if retailerID == "" {
		retailerID = opts.RetailerID
	}

	sourceID := asString(record["sourceId"])
	if sourceID == "" {
		sourceID = opts.SourceID
	}

	if id == "" {
		issues = append(issues, models.Issue{
			Severity:   models.SeverityError,
			Code:       opts.CodePrefix + ".missing_product_id",
			Message:    "Product is missing required id",
			RetailerID: retailerID,
			SourceID:   sourceID,
			Details:    map[string]any{"index": index},
		})
	}

	if retailerID == "" {
		issues = append(issues, models.Issue{
			Severity:  models.SeverityError,
			Code:      opts.CodePrefix + ".missing_retailer_id",
			Message:   "Product is missing required retailerId",
			SourceID:  sourceID,
			ProductID: id,
			Details:   map[string]any{"index": index},
		})
	}

	if name == "" {
		issues = append(issues, models.Issue{
			Severity:   models.SeverityError,
			Code:       opts.CodePrefix + ".missing_name",
			Message:    "Product is missing required name",
			RetailerID: retailerID,
			SourceID:   sourceID,
			ProductID:  id,
			Details:    map[string]any{"index": index},
		})
	}

	if id == "" || retailerID == "" || name == "" {
		return nil, issues
	}

	variants, variantIssues := validateVariants(record["variants"], opts, retailerID, sourceID, id)
	issues = append(issues, variantIssues...)

	product := &models.RawProduct{
		ID:            id,
		RetailerID:    retailerID,
		SourceID:      sourceID,
		Name:          name,
		Brand:         asString(record["brand"]),
		Description:   asString(record["description"]),
		ProductURL:    asString(record["productUrl"]),
		ImageURL:      asString(record["imageUrl"]),
		ImageURLs:     asStringSlice(record["imageUrls"]),
		Price:         asFloatPtr(record["price"]),
		OriginalPrice: asFloatPtr(record["originalPrice"]),
		Currency:      asString(record["currency"]),
		Gender:        asString(record["gender"]),
		CategoryPath:  asString(record["categoryPath"]),
		Colors:        asStringSlice(record["colors"]),
		Sizes:         asStringSlice(record["sizes"]),
		Tags:          asStringSlice(record["tags"]),
		InStock:       asBoolPtr(record["inStock"]),
		Variants:      variants,
		Metadata:      asMap(record["metadata"]),
	}

	return product, issues
}

func validateVariants(value any, opts ValidateOptions, retailerID, sourceID, productID string) ([]models.RawVariant, []models.Issue) {
	var issues []models.Issue

	entries, ok := value.([]any)
	if !ok {
		return nil, issues
	}

	var variants []models.RawVariant

	for index, entry := range entries {
		record, ok := entry.(map[string]any)
		if !ok {
			issues = append(issues, models.Issue{
				Severity:   models.SeverityError,
				Code:       opts.CodePrefix + ".invalid_variant",
				Message:    "Variant entry must be an object",
				RetailerID: retailerID,
				SourceID:   sourceID,
				ProductID:  productID,
				Details:    map[string]any{"index": index},
			})

			continue
		}

		variantID := asString(record["id"])
		if variantID == "" {
			issues = append(issues, models.Issue{
				Severity:   models.SeverityError,
				Code:       opts.CodePrefix + ".missing_variant_id",
				Message:    "Variant is missing required id",
				RetailerID: retailerID,
				SourceID:   sourceID,
				ProductID:  productID,
				Details:    map[string]any{"index": index},
			})

			continue
		}

		variants = append(variants, models.RawVariant{
			ID:         variantID,
			SKU:        asString(record["sku"]),
			Name:       asString(record["name"]),
			Size:       asString(record["size"]),
			Color:      asString(record["color"]),
			Price:      asFloatPtr(record["price"]),
			Currency:   asString(record["currency"]),
			InStock:    asBoolPtr(record["inStock"]),
			ImageURL:   asString(record["imageUrl"]),
			URL:        asString(record["url"]),
			Attributes: asAttributes(record["attributes"]),
		})
	}

	return variants, issues
}

func asString(value any) string {
	s, _ := value.(string)

	return s
}

func asStringSlice(value any) []string {
	entries, ok := value.([]any)
	if !ok {
		return nil
	}

	var items []string

	for _, entry := range entries {
		if s, ok := entry.(string); ok {
			items = append(items, s)
		}
	}

	return items
}

func asFloatPtr(value any) *float64 {
	switch v := value.(type) {
	case float64:
		return &v
	case int:
		f := float64(v)

		return &f
	default:
		return nil
	}
}

func asBoolPtr(value any) *bool {
	if b, ok := value.(bool); ok {
		return &b
	}

	return nil
}

func asMap(value any) map[string]any {
	m, ok := value.(map[string]any)
	if !ok || len(m) == 0 {
		return nil
	}

	return m
}

// asAttributes keeps only scalar attribute values, mirroring the raw variant
// contract.
func asAttributes(value any) map[string]any {
	record, ok := value.(map[string]any)
	if !ok {
		return nil
	}

	attrs := make(map[string]any, len(record))

	for key, v := range record {
		switch v.(type) {
		case string, float64, bool, nil:
			attrs[key] = v
		}
	}

	if len(attrs) == 0 {
		return nil
	}

	return attrs
}
