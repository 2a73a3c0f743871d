// Package engine implements the per-source catalog refresh: strict feed
// validation, change detection against the previous snapshot, and snapshot
// persistence.
package engine

import (
	"clothinghub/internal/models"
)

// DiffCounts aggregates a diff result.
type DiffCounts struct {
	Total   int `json:"total"`
	Added   int `json:"added"`
	Updated int `json:"updated"`
	Missing int `json:"missing"`
}

// DiffSummary describes how a feed pull differs from the previous one.
type DiffSummary struct {
	Counts     DiffCounts `json:"counts"`
	AddedIDs   []string   `json:"addedIds"`
	UpdatedIDs []string   `json:"updatedIds"`
	MissingIDs []string   `json:"missingIds"`
}

// meaningfulChange reports whether a product changed in a way worth
// surfacing. Cosmetic fields like description or tags are deliberately
// ignored.
func meaningfulChange(current, previous models.RawProduct) bool {
	if current.Name != previous.Name {
		return true
	}

	if current.ProductURL != previous.ProductURL {
		return true
	}

	if !floatPtrEqual(current.Price, previous.Price) {
		return true
	}

	if current.ImageURL != previous.ImageURL {
		return true
	}

	if current.CategoryPath != previous.CategoryPath {
		return true
	}

	return false
}

func floatPtrEqual(left, right *float64) bool {
	if left == nil || right == nil {
		return left == right
	}

	return *left == *right
}

// DiffRawProducts compares the current pull against the previous one by
// product id. Ids present in both count as updated only on a meaningful
// change.
func DiffRawProducts(current, previous []models.RawProduct) DiffSummary {
	previousByID := make(map[string]models.RawProduct, len(previous))
	for _, item := range previous {
		previousByID[item.ID] = item
	}

	currentIDs := make(map[string]struct{}, len(current))

	addedIDs := []string{}
	updatedIDs := []string{}

	for _, item := range current {
		currentIDs[item.ID] = struct{}{}

		previousItem, ok := previousByID[item.ID]
		if !ok {
			addedIDs = append(addedIDs, item.ID)

			continue
		}

		if meaningfulChange(item, previousItem) {
			updatedIDs = append(updatedIDs, item.ID)
		}
	}

	missingIDs := []string{}

	for _, item := range previous {
		if _, ok := currentIDs[item.ID]; !ok {
			missingIDs = append(missingIDs, item.ID)
		}
	}

	return DiffSummary{
		Counts: DiffCounts{
			Total:   len(current),
			Added:   len(addedIDs),
			Updated: len(updatedIDs),
			Missing: len(missingIDs),
		},
		AddedIDs:   addedIDs,
		UpdatedIDs: updatedIDs,
		MissingIDs: missingIDs,
	}
}
