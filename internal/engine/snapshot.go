package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"clothinghub/internal/models"
	"clothinghub/pkg/textutil"
)

// DefaultSnapshotRoot is the per-source snapshot directory root.
const DefaultSnapshotRoot = "data/snapshots"

// latestFileName is the filename of the most recent per-source snapshot.
const latestFileName = "latest.json"

// SnapshotCounts summarizes a per-source snapshot.
type SnapshotCounts struct {
	Total   int `json:"total"`
	Added   int `json:"added"`
	Updated int `json:"updated"`
	Missing int `json:"missing"`
}

// SnapshotPayload is the per-source snapshot document. It keeps the raw feed
// so the next refresh can diff against it.
type SnapshotPayload struct {
	SourceName  string              `json:"sourceName"`
	SourceSlug  string              `json:"sourceSlug"`
	GeneratedAt string              `json:"generatedAt"`
	Counts      SnapshotCounts      `json:"counts"`
	DiffSummary DiffSummary         `json:"diffSummary"`
	Raw         []models.RawProduct `json:"raw"`
}

// SlugSourceName turns a display source name into a directory-safe slug.
func SlugSourceName(sourceName string) string {
	return textutil.Slug(sourceName)
}

// FormatSnapshotTimestamp builds a filesystem-safe filename stem from a
// timestamp: second precision, colons replaced with hyphens.
func FormatSnapshotTimestamp(t time.Time) string {
	iso := t.UTC().Format(time.RFC3339)

	return strings.ReplaceAll(iso, ":", "-")
}

// SnapshotDir returns the snapshot directory for a source slug.
func SnapshotDir(root, sourceSlug string) string {
	if root == "" {
		root = DefaultSnapshotRoot
	}

	return filepath.Join(root, sourceSlug)
}

// LatestSnapshotPath returns the latest snapshot file for a source slug.
func LatestSnapshotPath(root, sourceSlug string) string {
	return filepath.Join(SnapshotDir(root, sourceSlug), latestFileName)
}

// WriteSnapshot persists the payload as both a dated file and latest.json in
// the source's snapshot directory. It returns both paths.
func WriteSnapshot(root string, payload *SnapshotPayload) (snapshotPath, latestPath string, err error) {
	dir := SnapshotDir(root, payload.SourceSlug)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	generatedAt, err := time.Parse(time.RFC3339, payload.GeneratedAt)
	if err != nil {
		return "", "", fmt.Errorf("invalid generatedAt timestamp: %w", err)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	data = append(data, '\n')

	snapshotPath = filepath.Join(dir, FormatSnapshotTimestamp(generatedAt)+".json")
	latestPath = filepath.Join(dir, latestFileName)

	if err := os.WriteFile(snapshotPath, data, 0o644); err != nil {
		return "", "", fmt.Errorf("failed to write dated snapshot: %w", err)
	}

	if err := os.WriteFile(latestPath, data, 0o644); err != nil {
		return "", "", fmt.Errorf("failed to write latest snapshot: %w", err)
	}

	return snapshotPath, latestPath, nil
}
