// Package store persists catalog snapshots as versioned JSON documents and
// reads them back for serving.
package store

import (
	"errors"
	"fmt"
	"sort"

	"clothinghub/internal/models"
)

// SnapshotVersion is the current snapshot schema version.
const SnapshotVersion = 1

// Snapshot read errors.
var (
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrInvalidSnapshot  = errors.New("invalid snapshot")
)

// SnapshotSource records one feed that contributed to a snapshot.
type SnapshotSource struct {
	SourceID   string `json:"sourceId"`
	RetailerID string `json:"retailerId"`
}

// Snapshot is the versioned catalog document written after a successful
// ingestion run. Products are kept sorted by id so equal catalogs serialize
// to equal bytes.
type Snapshot struct {
	Version     int                     `json:"version"`
	GeneratedAt string                  `json:"generatedAt"`
	Sources     []SnapshotSource        `json:"sources"`
	Products    []models.CatalogProduct `json:"products"`
}

// NewSnapshot assembles a snapshot from a finished run, sorting products by
// id.
func NewSnapshot(generatedAt string, sources []SnapshotSource, products []models.CatalogProduct) *Snapshot {
	sorted := make([]models.CatalogProduct, len(products))
	copy(sorted, products)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	return &Snapshot{
		Version:     SnapshotVersion,
		GeneratedAt: generatedAt,
		Sources:     sources,
		Products:    sorted,
	}
}

// Validate checks the snapshot document against the schema rules. A snapshot
// that fails validation must never be written.
func (s *Snapshot) Validate() error {
	if s.Version != SnapshotVersion {
		return fmt.Errorf("%w: version must be %d, got %d", ErrInvalidSnapshot, SnapshotVersion, s.Version)
	}

	if s.GeneratedAt == "" {
		return fmt.Errorf("%w: generatedAt is required", ErrInvalidSnapshot)
	}

	for i, product := range s.Products {
		if product.ID == "" {
			return fmt.Errorf("%w: product[%d] is missing id", ErrInvalidSnapshot, i)
		}

		if product.Name == "" {
			return fmt.Errorf("%w: product %s is missing name", ErrInvalidSnapshot, product.ID)
		}
	}

	for i := 1; i < len(s.Products); i++ {
		if s.Products[i-1].ID >= s.Products[i].ID {
			return fmt.Errorf("%w: products are not sorted by id at index %d", ErrInvalidSnapshot, i)
		}
	}

	return nil
}
