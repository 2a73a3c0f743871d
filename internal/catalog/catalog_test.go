package catalog

import (
	"testing"

	"clothinghub/internal/ingest/store"
	"clothinghub/internal/models"
)

func TestLoadSeedCatalog(t *testing.T) {
	cat, err := Load(Options{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cat.Len() == 0 {
		t.Fatal("seed catalog is empty")
	}

	products := cat.Products()
	for i := 1; i < len(products); i++ {
		if products[i-1].ID >= products[i].ID {
			t.Fatalf("products not sorted at index %d: %q >= %q", i, products[i-1].ID, products[i].ID)
		}
	}

	p, ok := cat.FindByID("nike-nk-501")
	if !ok {
		t.Fatal("FindByID(nike-nk-501) not found")
	}

	if p.Brand != "Nike" {
		t.Errorf("Brand = %q, want Nike", p.Brand)
	}
}

func TestLoadSnapshotCatalog(t *testing.T) {
	dir := t.TempDir()
	fs := store.NewFileStore(dir)

	snapshot := store.NewSnapshot(
		"2026-08-31T10:00:00Z",
		[]store.SnapshotSource{{SourceID: "demo-json", RetailerID: "demo"}},
		[]models.CatalogProduct{{
			ID:    "p_demo_a1_00000000",
			Name:  "Oxford Shirt",
			URL:   "https://shop.example.com/a1",
			Price: models.Price{Amount: 49.99, Currency: "USD"},
		}},
	)

	if err := fs.Write(snapshot); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}

	cat, err := Load(Options{UseSnapshot: true, SnapshotDir: dir})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cat.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", cat.Len())
	}

	if _, ok := cat.FindByID("p_demo_a1_00000000"); !ok {
		t.Error("FindByID() should locate snapshot product")
	}
}

func TestLoadSnapshotCatalogMissing(t *testing.T) {
	_, err := Load(Options{UseSnapshot: true, SnapshotDir: t.TempDir()})
	if err == nil {
		t.Fatal("Load() expected error when snapshot is missing")
	}
}
