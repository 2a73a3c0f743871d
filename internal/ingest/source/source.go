// Package source provides feed adapters that pull raw retailer product
// records from local JSON files, local CSV files, or remote HTTP endpoints.
//
// Adapters never return an error for a single bad record: problems become
// ingestion issues and the rest of the batch proceeds. I/O level failures
// produce a not-OK result with a single fatal issue.
package source

import (
	"context"

	"clothinghub/internal/models"
)

// Result is the outcome of listing raw products from one source. OK is false
// when the fetch failed outright or yielded zero usable products.
type Result struct {
	OK       bool
	Products []models.RawProduct
	Issues   []models.Issue
}

// Source is one configured retailer feed connection.
type Source interface {
	SourceID() string
	RetailerID() string
	ListRawProducts(ctx context.Context) Result
}

func failure(issues []models.Issue) Result {
	return Result{OK: false, Issues: issues}
}

// finishResult applies the "empty result is not useful" rule shared by all
// adapters.
func finishResult(products []models.RawProduct, issues []models.Issue) Result {
	if len(products) == 0 {
		return failure(issues)
	}

	return Result{OK: true, Products: products, Issues: issues}
}
