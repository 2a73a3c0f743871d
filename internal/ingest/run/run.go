// Package run orchestrates ingestion: it pulls raw products from every
// configured source, pushes them through normalization and finalization, and
// persists the resulting snapshot.
package run

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"clothinghub/internal/ingest/finalize"
	"clothinghub/internal/ingest/normalize"
	"clothinghub/internal/ingest/source"
	"clothinghub/internal/ingest/store"
	"clothinghub/internal/logger"
	"clothinghub/internal/models"
)

// Run issue codes.
const (
	CodeDuplicateProductID = "run.duplicate_product_id"
	CodeNoProducts         = "run.no_products"
)

// ErrNoProducts is returned when a run yields nothing persistable. No
// snapshot is written in that case.
var ErrNoProducts = errors.New("run produced no products")

// SnapshotWriter persists the run output.
type SnapshotWriter interface {
	Write(snapshot *store.Snapshot) error
	LatestPath() string
}

// Options configures an ingestion run.
type Options struct {
	Sources  []source.Source
	Store    SnapshotWriter
	Registry *normalize.Registry
	Logger   *logger.Logger
	Now      func() time.Time
}

// SourceSummary counts one source's contribution to a run.
type SourceSummary struct {
	SourceID   string
	RetailerID string
	Fetched    int
	Normalized int
	Errors     int
	Warnings   int
}

// Summary reports the outcome of one ingestion run.
type Summary struct {
	RunID        string
	StartedAt    time.Time
	Duration     time.Duration
	Sources      []SourceSummary
	Fetched      int
	Persisted    int
	Issues       []models.Issue
	SnapshotPath string
}

// ErrorCount returns the number of error-severity issues across the run.
func (s *Summary) ErrorCount() int {
	return models.ErrorCount(s.Issues)
}

// WarningCount returns the number of warning-severity issues across the run.
func (s *Summary) WarningCount() int {
	return models.WarningCount(s.Issues)
}

// Runner executes ingestion runs.
type Runner struct {
	opts Options
	log  *logger.Logger
}

// NewRunner creates a runner. Logger and Now fall back to a no-op logger and
// the wall clock; a registry is created when none is supplied.
func NewRunner(opts Options) *Runner {
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	if opts.Registry == nil {
		opts.Registry = normalize.NewRegistry()
	}

	return &Runner{opts: opts, log: opts.Logger}
}

// Run executes one full ingestion pass. Sources are processed sequentially
// in configured order; a failing source never aborts the run. The snapshot
// is written only when at least one product survived the pipeline.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	startedAt := r.opts.Now()

	summary := &Summary{
		RunID:     uuid.New().String(),
		StartedAt: startedAt,
	}

	log := r.log.With("run_id", summary.RunID)
	log.Info("starting ingestion run", "sources", len(r.opts.Sources))

	var (
		products []models.CatalogProduct
		seen     = make(map[string]string)
		sources  []store.SnapshotSource
	)

	for _, src := range r.opts.Sources {
		srcSummary := r.runSource(ctx, src, seen, &products, summary)
		summary.Sources = append(summary.Sources, srcSummary)
		summary.Fetched += srcSummary.Fetched

		sources = append(sources, store.SnapshotSource{
			SourceID:   src.SourceID(),
			RetailerID: src.RetailerID(),
		})
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].ID < products[j].ID
	})

	summary.Persisted = len(products)

	if len(products) == 0 {
		summary.Issues = append(summary.Issues, models.Issue{
			Severity: models.SeverityError,
			Code:     CodeNoProducts,
			Message:  "Ingestion run produced no products; keeping previous snapshot",
		})
		summary.Duration = r.opts.Now().Sub(startedAt)

		log.Error("ingestion run produced no products")

		return summary, ErrNoProducts
	}

	snapshot := store.NewSnapshot(startedAt.UTC().Format(time.RFC3339), sources, products)

	if err := r.opts.Store.Write(snapshot); err != nil {
		summary.Duration = r.opts.Now().Sub(startedAt)

		return summary, fmt.Errorf("failed to persist snapshot: %w", err)
	}

	summary.SnapshotPath = r.opts.Store.LatestPath()
	summary.Duration = r.opts.Now().Sub(startedAt)

	log.Info("ingestion run complete",
		"persisted", summary.Persisted,
		"errors", summary.ErrorCount(),
		"warnings", summary.WarningCount(),
		"duration", summary.Duration.String())

	return summary, nil
}

func (r *Runner) runSource(ctx context.Context, src source.Source, seen map[string]string, products *[]models.CatalogProduct, summary *Summary) SourceSummary {
	srcSummary := SourceSummary{
		SourceID:   src.SourceID(),
		RetailerID: src.RetailerID(),
	}

	log := r.log.With("source_id", src.SourceID(), "retailer_id", src.RetailerID())
	log.Info("pulling source")

	result := src.ListRawProducts(ctx)
	summary.Issues = append(summary.Issues, result.Issues...)
	srcSummary.Fetched = len(result.Products)

	if !result.OK {
		log.Warn("source yielded no usable products", "issues", len(result.Issues))
		r.countSeverities(&srcSummary, result.Issues)

		return srcSummary
	}

	raws := make([]models.RawProduct, len(result.Products))
	copy(raws, result.Products)

	sort.Slice(raws, func(i, j int) bool {
		return raws[i].ID < raws[j].ID
	})

	normCtx := normalize.Context{
		RetailerID: src.RetailerID(),
		SourceID:   src.SourceID(),
	}

	var issues []models.Issue

	for _, raw := range raws {
		cleaned := r.opts.Registry.Clean(raw.RetailerID, raw)

		normResult := normalize.Normalize(cleaned, normCtx)
		issues = append(issues, normResult.Issues...)

		if !normResult.OK {
			continue
		}

		finResult := finalize.Finalize(normResult.Draft, normCtx)
		issues = append(issues, finResult.Issues...)

		if !finResult.OK {
			continue
		}

		product := finResult.Product

		if firstSource, dup := seen[product.ID]; dup {
			issues = append(issues, models.Issue{
				Severity:   models.SeverityWarning,
				Code:       CodeDuplicateProductID,
				Message:    "Product id already ingested this run; keeping first occurrence",
				RetailerID: src.RetailerID(),
				SourceID:   src.SourceID(),
				ProductID:  product.ID,
				Details:    map[string]any{"firstSourceId": firstSource},
			})

			continue
		}

		seen[product.ID] = src.SourceID()
		*products = append(*products, *product)
		srcSummary.Normalized++
	}

	summary.Issues = append(summary.Issues, issues...)
	r.countSeverities(&srcSummary, result.Issues)
	r.countSeverities(&srcSummary, issues)

	log.Info("source processed",
		"fetched", srcSummary.Fetched,
		"normalized", srcSummary.Normalized,
		"errors", srcSummary.Errors,
		"warnings", srcSummary.Warnings)

	return srcSummary
}

func (r *Runner) countSeverities(s *SourceSummary, issues []models.Issue) {
	s.Errors += models.ErrorCount(issues)
	s.Warnings += models.WarningCount(issues)
}
