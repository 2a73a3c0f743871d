package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"clothinghub/internal/models"
)

// RunResult reports one completed per-source refresh.
type RunResult struct {
	SourceSlug   string
	GeneratedAt  string
	Counts       SnapshotCounts
	DiffSummary  DiffSummary
	LatestPath   string
	SnapshotPath string
}

// loadLatestSnapshot reads the previous snapshot for a source. Absence is
// not an error; a present but unreadable snapshot is.
func loadLatestSnapshot(root, sourceSlug string) (*SnapshotPayload, error) {
	latestPath := LatestSnapshotPath(root, sourceSlug)

	data, err := os.ReadFile(latestPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to read latest snapshot: %w", err)
	}

	var payload SnapshotPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse latest snapshot at %s: %w", latestPath, err)
	}

	return &payload, nil
}

// RunRefresh validates the feed, diffs it against the previous snapshot, and
// writes the new snapshot. Validation failure aborts before any diffing or
// writing happens.
func RunRefresh(root, sourceName string, raw []models.RawProduct, opts ValidationOptions) (*RunResult, error) {
	if err := ValidateRawProducts(sourceName, raw, opts); err != nil {
		return nil, err
	}

	sourceSlug := SlugSourceName(sourceName)

	latest, err := loadLatestSnapshot(root, sourceSlug)
	if err != nil {
		return nil, err
	}

	var previousRaw []models.RawProduct
	if latest != nil {
		previousRaw = latest.Raw
	}

	diffSummary := DiffRawProducts(raw, previousRaw)

	generatedAt := time.Now().UTC().Format(time.RFC3339)
	counts := SnapshotCounts{
		Total:   len(raw),
		Added:   diffSummary.Counts.Added,
		Updated: diffSummary.Counts.Updated,
		Missing: diffSummary.Counts.Missing,
	}

	payload := &SnapshotPayload{
		SourceName:  sourceName,
		SourceSlug:  sourceSlug,
		GeneratedAt: generatedAt,
		Counts:      counts,
		DiffSummary: diffSummary,
		Raw:         raw,
	}

	snapshotPath, latestPath, err := WriteSnapshot(root, payload)
	if err != nil {
		return nil, err
	}

	return &RunResult{
		SourceSlug:   sourceSlug,
		GeneratedAt:  generatedAt,
		Counts:       counts,
		DiffSummary:  diffSummary,
		LatestPath:   latestPath,
		SnapshotPath: snapshotPath,
	}, nil
}
