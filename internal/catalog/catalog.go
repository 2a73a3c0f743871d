// Package catalog provides the product catalog served to readers. It loads
// either the ingested snapshot or the bundled legacy seed feeds.
package catalog

import (
	"fmt"
	"sort"

	"clothinghub/internal/ingest/normalize"
	"clothinghub/internal/ingest/store"
	"clothinghub/internal/logger"
	"clothinghub/internal/models"
)

// Options configures catalog loading.
type Options struct {
	// UseSnapshot selects the ingested snapshot instead of the seed feeds.
	UseSnapshot bool
	// SnapshotDir is where the ingested snapshot lives.
	SnapshotDir string
	Logger      *logger.Logger
}

// Catalog is an immutable, loaded product catalog.
type Catalog struct {
	products []models.CatalogProduct
	byID     map[string]int
}

// Load builds a catalog. In snapshot mode a missing snapshot is an error
// with a hint to run ingestion first; in seed mode the bundled feeds are
// ingested through the legacy path.
func Load(opts Options) (*Catalog, error) {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	var products []models.CatalogProduct

	if opts.UseSnapshot {
		fileStore := store.NewFileStore(opts.SnapshotDir)

		snapshot, err := fileStore.ReadLatest()
		if err != nil {
			return nil, fmt.Errorf("ingested catalog snapshot unavailable at %s (run the ingest command to generate it): %w", fileStore.LatestPath(), err)
		}

		products = snapshot.Products

		log.Info("catalog loaded from snapshot",
			"path", fileStore.LatestPath(),
			"products", len(products),
			"generated_at", snapshot.GeneratedAt)
	} else {
		registry := normalize.NewRegistry()

		for _, seed := range SeedSources() {
			products = append(products, IngestRawProducts(seed.Raw, seed.Name, seed.Type, registry)...)
		}

		sort.Slice(products, func(i, j int) bool {
			return products[i].ID < products[j].ID
		})

		log.Info("catalog loaded from seed feeds", "products", len(products))
	}

	byID := make(map[string]int, len(products))

	for i, product := range products {
		if first, dup := byID[product.ID]; dup {
			log.Warn("duplicate product id in catalog; keeping first occurrence",
				"product_id", product.ID,
				"kept_source", products[first].SourceID)

			continue
		}

		byID[product.ID] = i
	}

	return &Catalog{products: products, byID: byID}, nil
}

// Products returns all catalog products in id order.
func (c *Catalog) Products() []models.CatalogProduct {
	return c.products
}

// FindByID looks up a product by catalog id.
func (c *Catalog) FindByID(id string) (*models.CatalogProduct, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}

	return &c.products[i], true
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}
