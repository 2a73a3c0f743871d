package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"clothinghub/internal/models"
)

// Defaults for the fallback local feed used when no config file exists.
const (
	DefaultRetailerID = "local-seed"
	DefaultSourceID   = "local-json"
	DefaultFeedPath   = "data/ingestion/sources/local-seed.json"
)

const localJSONCodePrefix = "local-json"

// LocalJSON reads a JSON file containing a top-level array of raw products.
type LocalJSON struct {
	retailerID string
	sourceID   string
	filePath   string
}

// LocalJSONOptions configures a local JSON feed source. Zero-value fields
// fall back to the local-seed defaults.
type LocalJSONOptions struct {
	FilePath   string
	RetailerID string
	SourceID   string
}

// NewLocalJSON creates a local JSON feed source.
func NewLocalJSON(opts LocalJSONOptions) *LocalJSON {
	retailerID := opts.RetailerID
	if retailerID == "" {
		retailerID = DefaultRetailerID
	}

	sourceID := opts.SourceID
	if sourceID == "" {
		sourceID = DefaultSourceID
	}

	filePath := opts.FilePath
	if filePath == "" {
		filePath = DefaultFeedPath
	}

	return &LocalJSON{
		retailerID: retailerID,
		sourceID:   sourceID,
		filePath:   filePath,
	}
}

// SourceID returns the source identifier.
func (s *LocalJSON) SourceID() string { return s.sourceID }

// RetailerID returns the retailer identifier.
func (s *LocalJSON) RetailerID() string { return s.retailerID }

// ListRawProducts reads and validates the feed file. File and parse failures
// become a single fatal issue; per-entry problems are tolerated.
func (s *LocalJSON) ListRawProducts(_ context.Context) Result {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return failure([]models.Issue{{
			Severity:   models.SeverityError,
			Code:       localJSONCodePrefix + ".read_failed",
			Message:    fmt.Sprintf("Failed to read local JSON feed at %s", s.filePath),
			RetailerID: s.retailerID,
			SourceID:   s.sourceID,
			Details:    map[string]any{"error": err.Error()},
		}})
	}

	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return failure([]models.Issue{{
			Severity:   models.SeverityError,
			Code:       localJSONCodePrefix + ".read_failed",
			Message:    fmt.Sprintf("Failed to parse local JSON feed at %s", s.filePath),
			RetailerID: s.retailerID,
			SourceID:   s.sourceID,
			Details:    map[string]any{"error": err.Error()},
		}})
	}

	products, issues := ValidateFeed(payload, ValidateOptions{
		RetailerID:           s.retailerID,
		SourceID:             s.sourceID,
		CodePrefix:           localJSONCodePrefix,
		InvalidFormatMessage: "Local JSON feed must be an array of products",
	})

	return finishResult(products, issues)
}
