package catalog

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"clothinghub/internal/ingest/normalize"
	"clothinghub/internal/models"
	"clothinghub/pkg/textutil"
)

// brandDisplayNames maps known brand spellings to their display form.
// Unknown brands are title-cased instead.
var brandDisplayNames = map[string]string{
	"nike":                "Nike",
	"nike, inc.":          "Nike",
	"abercrombie":         "Abercrombie",
	"abercrombie & fitch": "Abercrombie",
	"zara":                "Zara",
	"pacsun":              "PacSun",
	"h&m":                 "H&M",
	"h & m":               "H&M",
	"uniqlo":              "Uniqlo",
	"uniqlo u":            "Uniqlo",
}

// colorAliases folds common feed color spellings to canonical names.
var colorAliases = map[string]string{
	"blk":          "black",
	"black":        "black",
	"heather grey": "grey",
	"grey":         "grey",
	"gray":         "grey",
	"white":        "white",
	"navy":         "navy",
	"blue":         "blue",
	"olive":        "olive",
	"green":        "green",
	"red":          "red",
}

// NormalizeBrand resolves a feed brand to its display name, falling back to
// the source name when the feed leaves it blank.
func NormalizeBrand(rawBrand, sourceName string) string {
	trimmed := strings.TrimSpace(rawBrand)
	if trimmed == "" {
		return sourceName
	}

	lower := strings.ToLower(trimmed)
	if display, ok := brandDisplayNames[lower]; ok {
		return display
	}

	words := strings.Fields(lower)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}

	return strings.Join(words, " ")
}

// NormalizeGender folds free-form gender strings into the catalog's fixed
// set. Unrecognized values are dropped.
func NormalizeGender(gender string) string {
	g := strings.ToLower(gender)

	switch {
	case g == "":
		return ""
	case strings.Contains(g, "women") || strings.Contains(g, "ladies"):
		return models.GenderWomens
	case strings.Contains(g, "kid") || strings.Contains(g, "boys") || strings.Contains(g, "girls"):
		return models.GenderKids
	case strings.Contains(g, "unisex"):
		return models.GenderUnisex
	case strings.Contains(g, "men"):
		return models.GenderMens
	default:
		return ""
	}
}

// MapCategory buckets a product into the legacy category taxonomy by keyword
// matching against the category path, falling back to the product name.
func MapCategory(rawCategoryPath, name string) (category, subcategory string) {
	src := strings.ToLower(rawCategoryPath)
	if strings.TrimSpace(src) == "" {
		src = strings.ToLower(name)
	}

	contains := func(substrs ...string) bool {
		for _, s := range substrs {
			if strings.Contains(src, s) {
				return true
			}
		}

		return false
	}

	switch {
	case contains("hoodie"):
		if contains("zip") {
			return "hoodies", "zip hoodies"
		}

		return "hoodies", "fleece"
	case contains("sweatshirt"):
		return "sweatshirts", "crewnecks"
	case contains("t-shirt", "t shirt", "tee"):
		if contains("graphic") {
			return "t-shirts", "graphic tees"
		}

		if contains("oversized") {
			return "t-shirts", "oversized tees"
		}

		return "t-shirts", "basic tees"
	case contains("jean"):
		if contains("wide", "loose", "baggy") {
			return "pants", "baggy jeans"
		}

		if contains("slim", "skinny") {
			return "pants", "slim jeans"
		}

		return "pants", "jeans"
	case contains("cargo", "carpenter", "utility"):
		return "pants", "cargo pants"
	case contains("trouser", "pants"):
		return "pants", "casual pants"
	case contains("sneaker", "dunk", "shoe"):
		return "shoes", "sneakers"
	default:
		return "other", ""
	}
}

// NormalizeColors lowercases colors and folds known aliases.
func NormalizeColors(colors []string) []string {
	result := []string{}

	for _, c := range colors {
		clean := strings.ToLower(strings.TrimSpace(c))
		if clean == "" {
			continue
		}

		if canonical, ok := colorAliases[clean]; ok {
			clean = canonical
		}

		result = append(result, clean)
	}

	return result
}

// AutoTags derives browse tags from the feed tags plus keywords in the name
// and description. The category and subcategory always end up tagged.
func AutoTags(raw models.RawProduct, category, subcategory string) []string {
	var tags []string

	add := func(tag string) {
		tags = append(tags, tag)
	}

	for _, t := range raw.Tags {
		if clean := strings.ToLower(strings.TrimSpace(t)); clean != "" {
			add(clean)
		}
	}

	text := strings.ToLower(raw.Name + " " + raw.Description)

	keywordTags := []struct {
		tag      string
		keywords []string
	}{
		{"oversized", []string{"oversized", "relaxed"}},
		{"slim", []string{"slim"}},
		{"baggy", []string{"baggy", "loose"}},
		{"graphic", []string{"graphic"}},
		{"basic", []string{"essential", "basic"}},
		{"minimal", []string{"minimal"}},
		{"skate", []string{"skate"}},
		{"streetwear", []string{"street"}},
		{"retro", []string{"retro"}},
	}

	for _, kt := range keywordTags {
		for _, kw := range kt.keywords {
			if strings.Contains(text, kw) {
				add(kt.tag)

				break
			}
		}
	}

	add(category)

	if subcategory != "" {
		add(subcategory)
	}

	return textutil.DedupePreserveOrder(tags)
}

// IngestRawProducts is the legacy seed-to-product path. Unlike the snapshot
// pipeline it assumes the feed is trusted: no issues are reported, stock
// defaults to true, and ids are simple sourceName-rawId pairs.
func IngestRawProducts(rawProducts []models.RawProduct, sourceName string, sourceType string, registry *normalize.Registry) []models.CatalogProduct {
	now := time.Now().UTC().Format(time.RFC3339)

	products := make([]models.CatalogProduct, 0, len(rawProducts))

	for _, raw := range rawProducts {
		cleaned := registry.Clean(sourceName, raw)

		category, subcategory := MapCategory(cleaned.CategoryPath, cleaned.Name)

		var amount float64
		if cleaned.Price != nil {
			amount = *cleaned.Price
		}

		currency := cleaned.Currency
		if currency == "" {
			currency = "USD"
		}

		popularity := 50.0

		products = append(products, models.CatalogProduct{
			ID:              fmt.Sprintf("%s-%s", strings.ToLower(sourceName), cleaned.ID),
			Source:          sourceType,
			SourceName:      sourceName,
			SourceID:        cleaned.ID,
			Name:            cleaned.Name,
			Brand:           NormalizeBrand(cleaned.Brand, sourceName),
			Description:     cleaned.Description,
			Images:          []models.ProductImage{{URL: cleaned.ImageURL, Alt: cleaned.Name}},
			URL:             cleaned.ProductURL,
			Price:           models.Price{Amount: amount, Currency: currency},
			Gender:          NormalizeGender(cleaned.Gender),
			Category:        category,
			Subcategory:     subcategory,
			Colors:          NormalizeColors(cleaned.Colors),
			Sizes:           defaultSizes(cleaned.Sizes),
			Tags:            AutoTags(cleaned, category, subcategory),
			InStock:         true,
			PopularityScore: &popularity,
			LastUpdated:     now,
		})
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].ID < products[j].ID
	})

	return products
}

func defaultSizes(sizes []string) []string {
	if sizes == nil {
		return []string{}
	}

	return sizes
}
