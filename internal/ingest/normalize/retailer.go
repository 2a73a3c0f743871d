package normalize

import (
	"strings"

	"clothinghub/internal/models"
	"clothinghub/pkg/textutil"
)

// Strategy is a per-retailer cleanup pass applied to raw records before
// generic normalization. Implementations must not mutate the input.
type Strategy interface {
	Clean(raw models.RawProduct) models.RawProduct
}

// Registry maps retailer keys to cleanup strategies. Unknown retailers get a
// no-op strategy, so lookups never fail.
type Registry struct {
	strategies map[string]Strategy
}

// NewRegistry builds a registry pre-populated with the known retailer
// cleanup tables.
func NewRegistry() *Registry {
	r := &Registry{strategies: make(map[string]Strategy)}

	for name, categories := range retailerCategoryTables {
		r.Register(name, &categoryTableStrategy{categories: categories})
	}

	// Alternate spellings seen in feeds.
	r.strategies[registryKey("h & m")] = r.strategies[registryKey("h&m")]
	r.strategies[registryKey("forever21")] = r.strategies[registryKey("forever 21")]

	return r
}

// Register adds or replaces the strategy for a retailer name.
func (r *Registry) Register(name string, strategy Strategy) {
	r.strategies[registryKey(name)] = strategy
}

// Lookup returns the strategy for the retailer, or a no-op strategy when the
// retailer is unknown.
func (r *Registry) Lookup(name string) Strategy {
	if s, ok := r.strategies[registryKey(name)]; ok {
		return s
	}

	return noopStrategy{}
}

// Clean runs the retailer's strategy over the raw record.
func (r *Registry) Clean(retailerName string, raw models.RawProduct) models.RawProduct {
	return r.Lookup(retailerName).Clean(raw)
}

func registryKey(name string) string {
	return strings.ToLower(textutil.Clean(name))
}

type noopStrategy struct{}

func (noopStrategy) Clean(raw models.RawProduct) models.RawProduct {
	return raw
}

// categoryTableStrategy rewrites known category paths to their canonical form
// and applies common text cleanup. Unmapped category paths pass through with
// only whitespace trimming.
type categoryTableStrategy struct {
	categories map[string]string
}

func (s *categoryTableStrategy) Clean(raw models.RawProduct) models.RawProduct {
	cleaned := raw
	cleaned.Name = textutil.Clean(raw.Name)
	cleaned.Brand = textutil.Clean(raw.Brand)
	cleaned.Description = strings.TrimSpace(raw.Description)
	cleaned.CategoryPath = s.categoryPath(raw.CategoryPath)

	return cleaned
}

func (s *categoryTableStrategy) categoryPath(path string) string {
	if path == "" {
		return path
	}

	if canonical, ok := s.categories[categoryKey(path)]; ok {
		return canonical
	}

	return strings.TrimSpace(path)
}

// categoryKey normalizes a category path for table lookup: single spaces
// around ">" separators, collapsed whitespace, lowercase.
func categoryKey(path string) string {
	parts := strings.Split(path, ">")
	for i, part := range parts {
		parts[i] = textutil.Clean(part)
	}

	return strings.ToLower(strings.Join(parts, " > "))
}

// Canonical category rewrite tables per retailer. Keys are categoryKey-form
// paths as they appear in that retailer's feed.
var retailerCategoryTables = map[string]map[string]string{
	"abercrombie": {
		"men > hoodies & sweatshirts": "Men > Hoodies & Sweatshirts",
		"men > jeans":                 "Men > Jeans",
	},
	"zara": {
		"man > trousers > cargo": "Men > Pants > Cargo",
		"man > jeans":            "Men > Jeans",
	},
	"h&m": {
		"men > hoodies & sweatshirts": "Men > Hoodies & Sweatshirts",
		"men > t-shirts":              "Men > T-shirts",
	},
	"uniqlo": {
		"men > sweatshirts": "Men > Sweatshirts",
		"men > t-shirts":    "Men > T-shirts",
	},
	"pacsun": {
		"men > graphic tees": "Men > T-shirts > Graphic",
		"men > pants":        "Men > Pants",
	},
	"nike": {
		"men > t-shirts":              "Men > T-shirts",
		"men > hoodies & sweatshirts": "Men > Hoodies & Sweatshirts",
		"men > pants":                 "Men > Pants",
		"men > jackets":               "Men > Jackets",
	},
	"adidas": {
		"men > t-shirts":              "Men > T-shirts",
		"men > hoodies & sweatshirts": "Men > Hoodies & Sweatshirts",
		"men > pants":                 "Men > Pants",
		"men > jackets":               "Men > Jackets",
	},
	"hollister": {
		"men > t-shirts":              "Men > T-shirts",
		"men > hoodies & sweatshirts": "Men > Hoodies & Sweatshirts",
		"men > jeans":                 "Men > Jeans",
		"men > pants":                 "Men > Pants",
	},
	"forever 21": {
		"men > t-shirts":              "Men > T-shirts",
		"men > hoodies & sweatshirts": "Men > Hoodies & Sweatshirts",
		"men > pants":                 "Men > Pants",
		"men > jeans":                 "Men > Jeans",
		"men > jackets":               "Men > Jackets",
	},
	"asos": {
		"men > t-shirts":              "Men > T-shirts",
		"men > hoodies & sweatshirts": "Men > Hoodies & Sweatshirts",
		"men > pants > cargo":         "Men > Pants > Cargo",
		"men > pants":                 "Men > Pants",
		"men > jackets":               "Men > Jackets",
	},
	"gap": {
		"men > t-shirts":              "Men > T-shirts",
		"men > hoodies & sweatshirts": "Men > Hoodies & Sweatshirts",
		"men > jeans":                 "Men > Jeans",
		"men > pants":                 "Men > Pants",
	},
	"aeropostale": {
		"men > t-shirts":              "Men > T-shirts",
		"men > hoodies & sweatshirts": "Men > Hoodies & Sweatshirts",
		"men > pants":                 "Men > Pants",
	},
	"urban outfitters": {
		"men > t-shirts":              "Men > T-shirts",
		"men > t-shirts > graphic":    "Men > T-shirts > Graphic",
		"men > hoodies & sweatshirts": "Men > Hoodies & Sweatshirts",
		"men > pants":                 "Men > Pants",
		"men > jackets":               "Men > Jackets",
	},
	"carhartt": {
		"men > t-shirts":              "Men > T-shirts",
		"men > hoodies & sweatshirts": "Men > Hoodies & Sweatshirts",
		"men > pants":                 "Men > Pants",
		"men > jackets":               "Men > Jackets",
	},
}
