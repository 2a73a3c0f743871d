package engine

import (
	"errors"
	"os"
	"testing"
	"time"

	"clothinghub/internal/models"
)

func TestSlugSourceName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Demo Shop", "demo-shop"},
		{"Urban  Outfitters", "urban-outfitters"},
		{"H&M", "hm"},
	}

	for _, tt := range tests {
		if got := SlugSourceName(tt.in); got != tt.want {
			t.Errorf("SlugSourceName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatSnapshotTimestamp(t *testing.T) {
	ts := time.Date(2026, 8, 31, 10, 30, 5, 123000000, time.UTC)

	if got := FormatSnapshotTimestamp(ts); got != "2026-08-31T10-30-05Z" {
		t.Errorf("FormatSnapshotTimestamp() = %q", got)
	}
}

func TestRunRefreshFirstRun(t *testing.T) {
	root := t.TempDir()

	raw := []models.RawProduct{rawItem("a1", "Oxford Shirt", 49.99), rawItem("a2", "Chino Pants", 59)}

	result, err := RunRefresh(root, "Demo Shop", raw, allowDemo)
	if err != nil {
		t.Fatalf("RunRefresh() error = %v", err)
	}

	if result.SourceSlug != "demo-shop" {
		t.Errorf("SourceSlug = %q", result.SourceSlug)
	}

	want := SnapshotCounts{Total: 2, Added: 2}
	if result.Counts != want {
		t.Errorf("Counts = %+v, want %+v", result.Counts, want)
	}

	for _, path := range []string{result.LatestPath, result.SnapshotPath} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected snapshot file at %s: %v", path, err)
		}
	}
}

func TestRunRefreshDiffsAgainstPrevious(t *testing.T) {
	root := t.TempDir()

	raw := []models.RawProduct{rawItem("a1", "Oxford Shirt", 20)}

	if _, err := RunRefresh(root, "Demo Shop", raw, allowDemo); err != nil {
		t.Fatalf("first RunRefresh() error = %v", err)
	}

	raw[0].Price = floatPtr(25)

	result, err := RunRefresh(root, "Demo Shop", raw, allowDemo)
	if err != nil {
		t.Fatalf("second RunRefresh() error = %v", err)
	}

	want := SnapshotCounts{Total: 1, Added: 0, Updated: 1, Missing: 0}
	if result.Counts != want {
		t.Errorf("Counts = %+v, want %+v", result.Counts, want)
	}
}

func TestRunRefreshValidationAbortsBeforeWriting(t *testing.T) {
	root := t.TempDir()

	raw := []models.RawProduct{{ID: "a1", Name: "x", ProductURL: "not-a-url"}}

	_, err := RunRefresh(root, "Demo Shop", raw, allowDemo)
	if !errors.Is(err, ErrInvalidRawProduct) {
		t.Fatalf("RunRefresh() error = %v, want ErrInvalidRawProduct", err)
	}

	if _, err := os.Stat(LatestSnapshotPath(root, "demo-shop")); !os.IsNotExist(err) {
		t.Error("validation failure must not leave a snapshot behind")
	}
}

func TestRunRefreshCorruptLatestSnapshotFails(t *testing.T) {
	root := t.TempDir()

	dir := SnapshotDir(root, "demo-shop")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := os.WriteFile(LatestSnapshotPath(root, "demo-shop"), []byte("{"), 0o644); err != nil {
		t.Fatalf("write corrupt snapshot: %v", err)
	}

	raw := []models.RawProduct{rawItem("a1", "Oxford Shirt", 49.99)}

	if _, err := RunRefresh(root, "Demo Shop", raw, allowDemo); err == nil {
		t.Fatal("RunRefresh() expected error for corrupt latest snapshot")
	}
}
