// Package normalize converts validated raw retailer records into clean
// product drafts, accumulating issues instead of failing on first error.
package normalize

import (
	"strings"

	"clothinghub/internal/models"
)

// Issue codes emitted by this package.
const (
	CodeMissingName            = "normalize.missing_name"
	CodeInvalidProductURL      = "normalize.invalid_product_url"
	CodeInvalidImageURL        = "normalize.invalid_image_url"
	CodeMissingImageURLs       = "normalize.missing_image_urls"
	CodeMissingPrice           = "normalize.missing_price"
	CodeInvalidPrice           = "normalize.invalid_price"
	CodeMissingCurrency        = "normalize.missing_currency"
	CodeMissingVariantID       = "normalize.missing_variant_id"
	CodeInvalidVariantImageURL = "normalize.invalid_variant_image_url"
	CodeInvalidVariantURL      = "normalize.invalid_variant_url"
)

type moneyOptions struct {
	required  bool
	field     string
	productID string
	ctx       Context
	variantID string
}

// validateMoney applies the money rules: amount must be finite and positive,
// and a currency must accompany any present amount. Absent currency on a
// required price is an error; on an optional one it degrades to a warning.
func validateMoney(amount *float64, currency string, opts moneyOptions) (*models.Money, []models.Issue) {
	var issues []models.Issue

	issue := func(severity, code, message string, details map[string]any) {
		issues = append(issues, models.Issue{
			Severity:   severity,
			Code:       code,
			Message:    message,
			RetailerID: opts.ctx.RetailerID,
			SourceID:   opts.ctx.SourceID,
			ProductID:  opts.productID,
			VariantID:  opts.variantID,
			Field:      opts.field,
			Details:    details,
		})
	}

	if amount == nil {
		if opts.required {
			issue(models.SeverityError, CodeMissingPrice, "Price is required", nil)
		}

		return nil, issues
	}

	if !isPositiveAmount(*amount) {
		issue(models.SeverityError, CodeInvalidPrice, "Price must be a positive number", map[string]any{"amount": *amount})

		return nil, issues
	}

	cleanCurrency := cleanText(currency)
	if cleanCurrency == "" {
		severity := models.SeverityWarning
		if opts.required {
			severity = models.SeverityError
		}

		issue(severity, CodeMissingCurrency, "Currency is required when price is present", nil)

		return nil, issues
	}

	return &models.Money{
		Amount:   *amount,
		Currency: strings.ToUpper(cleanCurrency),
	}, issues
}

// normalizeVariant cleans a single raw variant. A variant without an id is
// dropped with an error issue but does not invalidate the parent product.
func normalizeVariant(variant models.RawVariant, ctx Context, productID, currencyFallback string) (*VariantDraft, []models.Issue) {
	var issues []models.Issue

	variantID := cleanText(variant.ID)
	if variantID == "" {
		issues = append(issues, models.Issue{
			Severity:   models.SeverityError,
			Code:       CodeMissingVariantID,
			Message:    "Variant is missing required id",
			RetailerID: ctx.RetailerID,
			SourceID:   ctx.SourceID,
			ProductID:  productID,
			Field:      "variants",
		})

		return nil, issues
	}

	currency := variant.Currency
	if currency == "" {
		currency = currencyFallback
	}

	price, priceIssues := validateMoney(variant.Price, currency, moneyOptions{
		required:  false,
		field:     "variant.price",
		productID: productID,
		ctx:       ctx,
		variantID: variantID,
	})
	issues = append(issues, priceIssues...)

	imageURL := cleanURL(variant.ImageURL)
	if imageURL == "" && variant.ImageURL != "" {
		issues = append(issues, models.Issue{
			Severity:   models.SeverityWarning,
			Code:       CodeInvalidVariantImageURL,
			Message:    "Variant imageUrl is invalid",
			RetailerID: ctx.RetailerID,
			SourceID:   ctx.SourceID,
			ProductID:  productID,
			VariantID:  variantID,
			Field:      "variant.imageUrl",
			Details:    map[string]any{"value": variant.ImageURL},
		})
	}

	variantURL := cleanURL(variant.URL)
	if variantURL == "" && variant.URL != "" {
		issues = append(issues, models.Issue{
			Severity:   models.SeverityWarning,
			Code:       CodeInvalidVariantURL,
			Message:    "Variant url is invalid",
			RetailerID: ctx.RetailerID,
			SourceID:   ctx.SourceID,
			ProductID:  productID,
			VariantID:  variantID,
			Field:      "variant.url",
			Details:    map[string]any{"value": variant.URL},
		})
	}

	draft := &VariantDraft{
		ID:         variantID,
		SKU:        cleanText(variant.SKU),
		Name:       cleanText(variant.Name),
		Size:       cleanText(variant.Size),
		Color:      cleanText(variant.Color),
		Price:      price,
		ImageURL:   imageURL,
		URL:        variantURL,
		InStock:    variant.InStock,
		Attributes: variant.Attributes,
	}

	return draft, issues
}

// Normalize converts one raw product into a draft. It is a pure function of
// its inputs. A record is fatally invalid only when the title is absent, the
// product URL is invalid, the price is invalid or absent, or no valid image
// remains; everything else degrades to an omitted field plus a warning.
func Normalize(raw models.RawProduct, ctx Context) Result {
	var issues []models.Issue

	productID := raw.ID

	recordIssue := func(severity, code, message, field string, details map[string]any) {
		issues = append(issues, models.Issue{
			Severity:   severity,
			Code:       code,
			Message:    message,
			RetailerID: ctx.RetailerID,
			SourceID:   ctx.SourceID,
			ProductID:  productID,
			Field:      field,
			Details:    details,
		})
	}

	title := cleanText(raw.Name)
	if title == "" {
		recordIssue(models.SeverityError, CodeMissingName, "Product name is required", "name", nil)
	}

	productURL := cleanURL(raw.ProductURL)
	if productURL == "" {
		recordIssue(models.SeverityError, CodeInvalidProductURL, "Product URL must be a valid http/https URL", "productUrl", map[string]any{"value": raw.ProductURL})
	}

	imageCandidates := append([]string{}, raw.ImageURLs...)
	if raw.ImageURL != "" {
		imageCandidates = append(imageCandidates, raw.ImageURL)
	}

	var validImages []string

	for _, img := range imageCandidates {
		normalized := cleanURL(img)
		if normalized == "" {
			recordIssue(models.SeverityWarning, CodeInvalidImageURL, "Image URL must be a valid http/https URL", "imageUrls", map[string]any{"value": img})

			continue
		}

		validImages = append(validImages, normalized)
	}

	images := cleanStringArray(validImages)
	if len(images) == 0 {
		recordIssue(models.SeverityError, CodeMissingImageURLs, "At least one valid image URL is required", "imageUrls", nil)
	}

	price, priceIssues := validateMoney(raw.Price, raw.Currency, moneyOptions{
		required:  true,
		field:     "price",
		productID: productID,
		ctx:       ctx,
	})
	issues = append(issues, priceIssues...)

	originalPrice, originalIssues := validateMoney(raw.OriginalPrice, raw.Currency, moneyOptions{
		required:  false,
		field:     "originalPrice",
		productID: productID,
		ctx:       ctx,
	})
	issues = append(issues, originalIssues...)

	var variants []VariantDraft

	for _, rawVariant := range raw.Variants {
		variantDraft, variantIssues := normalizeVariant(rawVariant, ctx, productID, raw.Currency)
		issues = append(issues, variantIssues...)

		if variantDraft != nil {
			variants = append(variants, *variantDraft)
		}
	}

	if title == "" || productURL == "" || price == nil || len(images) == 0 {
		return Result{OK: false, Issues: issues}
	}

	draft := &Draft{
		SourceProductID: productID,
		RetailerID:      ctx.RetailerID,
		SourceID:        ctx.SourceID,
		Title:           title,
		Brand:           cleanText(raw.Brand),
		Description:     cleanText(raw.Description),
		ProductURL:      productURL,
		ImageURLs:       images,
		Price:           *price,
		OriginalPrice:   originalPrice,
		Variants:        variants,
		Tags:            cleanStringArray(raw.Tags),
		Colors:          cleanStringArray(raw.Colors),
		Sizes:           cleanStringArray(raw.Sizes),
		CategoryPath:    cleanText(raw.CategoryPath),
		Gender:          cleanText(raw.Gender),
		InStock:         raw.InStock,
	}

	return Result{OK: true, Draft: draft, Issues: issues}
}
