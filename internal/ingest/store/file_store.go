package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LatestSnapshotName is the filename of the current snapshot.
const LatestSnapshotName = "catalog.v1.json"

// DefaultSnapshotDir is where snapshots land when no directory is configured.
const DefaultSnapshotDir = "data/ingestion/output"

// FileStore writes snapshots to a directory on disk. The latest snapshot is
// replaced atomically via a temp file and rename, and every write also leaves
// a dated copy alongside it.
type FileStore struct {
	dir string
}

// NewFileStore creates a file store rooted at dir.
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = DefaultSnapshotDir
	}

	return &FileStore{dir: dir}
}

// Dir returns the snapshot directory.
func (f *FileStore) Dir() string { return f.dir }

// LatestPath returns the path of the current snapshot file.
func (f *FileStore) LatestPath() string {
	return filepath.Join(f.dir, LatestSnapshotName)
}

// Write validates and persists the snapshot. Validation failure aborts the
// write entirely. A reader of the latest file never observes a partial
// document: the content is staged in a temp file and renamed into place.
func (f *FileStore) Write(snapshot *Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return fmt.Errorf("refusing to write snapshot: %w", err)
	}

	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	data = append(data, '\n')

	if err := f.writeAtomic(f.LatestPath(), data); err != nil {
		return err
	}

	datedPath := filepath.Join(f.dir, datedSnapshotName(snapshot.GeneratedAt))
	if err := os.WriteFile(datedPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write dated snapshot: %w", err)
	}

	return nil
}

// ReadLatest loads the current snapshot. A missing file yields
// ErrSnapshotNotFound; an unreadable or invalid document is reported as a
// distinct error so corruption is never mistaken for absence.
func (f *FileStore) ReadLatest() (*Snapshot, error) {
	data, err := os.ReadFile(f.LatestPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrSnapshotNotFound
		}

		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: malformed JSON: %v", ErrInvalidSnapshot, err)
	}

	if snapshot.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidSnapshot, snapshot.Version)
	}

	return &snapshot, nil
}

func (f *FileStore) writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(f.dir, ".catalog-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}

	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)

		return fmt.Errorf("failed to write temp snapshot: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)

		return fmt.Errorf("failed to close temp snapshot: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)

		return fmt.Errorf("failed to replace snapshot: %w", err)
	}

	return nil
}

// datedSnapshotName builds a filesystem-safe filename from the snapshot
// timestamp.
func datedSnapshotName(generatedAt string) string {
	safe := strings.ReplaceAll(generatedAt, ":", "-")

	return fmt.Sprintf("catalog-%s.json", safe)
}
