// Package main provides the refresh command that validates a single retailer
// feed, diffs it against the previous snapshot, and writes a new per-source
// snapshot.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"clothinghub/internal/engine"
	"clothinghub/internal/logger"
	"clothinghub/internal/models"
)

const defaultFeedPath = "data/feeds/mock-retailer.sample.json"

// feedItem is the external feed row shape used by retailer partners.
type feedItem struct {
	ExternalID    string   `json:"externalId"`
	Title         string   `json:"title"`
	Brand         string   `json:"brand,omitempty"`
	Description   string   `json:"description,omitempty"`
	ProductURL    string   `json:"productUrl"`
	ImageURL      string   `json:"imageUrl"`
	ImageURLs     []string `json:"imageUrls,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Currency      string   `json:"currency,omitempty"`
	CategoryPath  string   `json:"categoryPath,omitempty"`
	Colors        []string `json:"colors,omitempty"`
	Sizes         []string `json:"sizes,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Gender        string   `json:"gender,omitempty"`
	InStock       *bool    `json:"inStock,omitempty"`
}

func main() {
	sourceName := flag.String("source", "Mock Retailer", "Display name of the feed source")
	feedPath := flag.String("feed", defaultFeedPath, "Path to the JSON feed file")
	root := flag.String("root", engine.DefaultSnapshotRoot, "Snapshot root directory")
	allowed := flag.String("allowed-sources", "Mock Retailer", "Comma-separated list of allowed source names")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")

	flag.Parse()

	log := logger.NewLogger(*logLevel)

	raw, err := loadFeed(*feedPath)
	if err != nil {
		log.Error(fmt.Sprintf("Failed to load feed: %v", err))
		os.Exit(1)
	}

	opts := engine.ValidationOptions{
		AllowedSourceNames: splitAllowed(*allowed),
	}

	result, err := engine.RunRefresh(*root, *sourceName, raw, opts)
	if err != nil {
		log.Error(fmt.Sprintf("Refresh failed: %v", err))
		os.Exit(1)
	}

	fmt.Printf("Catalog snapshot written for %s.\n", *sourceName)
	fmt.Printf("- Source slug: %s\n", result.SourceSlug)
	fmt.Printf("- Generated at: %s\n", result.GeneratedAt)
	fmt.Printf("- Counts: total=%d added=%d updated=%d missing=%d\n",
		result.Counts.Total, result.Counts.Added, result.Counts.Updated, result.Counts.Missing)
	fmt.Printf("- Latest: %s\n", result.LatestPath)
	fmt.Printf("- Snapshot: %s\n", result.SnapshotPath)
}

func loadFeed(path string) ([]models.RawProduct, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed file: %w", err)
	}

	var items []feedItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("feed must be a JSON array: %w", err)
	}

	raw := make([]models.RawProduct, 0, len(items))

	for _, item := range items {
		raw = append(raw, models.RawProduct{
			ID:            item.ExternalID,
			Name:          item.Title,
			Brand:         item.Brand,
			Description:   item.Description,
			ProductURL:    item.ProductURL,
			ImageURL:      item.ImageURL,
			ImageURLs:     item.ImageURLs,
			Price:         item.Price,
			OriginalPrice: item.OriginalPrice,
			Currency:      item.Currency,
			CategoryPath:  item.CategoryPath,
			Colors:        item.Colors,
			Sizes:         item.Sizes,
			Tags:          item.Tags,
			Gender:        item.Gender,
			InStock:       item.InStock,
		})
	}

	return raw, nil
}

func splitAllowed(value string) []string {
	var names []string

	for _, name := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			names = append(names, trimmed)
		}
	}

	return names
}
