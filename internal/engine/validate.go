package engine

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"clothinghub/internal/models"
)

// Validation errors.
var (
	ErrNoAllowedSources  = errors.New("allowed source names must be provided")
	ErrSourceNotAllowed  = errors.New("source is not in the allowed source list")
	ErrInvalidRawProduct = errors.New("invalid raw product")
	ErrDuplicateRawID    = errors.New("duplicate raw product id")
)

// ValidationOptions configures the strict feed validation used by the
// refresh flow.
type ValidationOptions struct {
	AllowedSourceNames []string
}

// ValidateRawProducts applies the all-or-nothing rules of the refresh flow:
// unlike ingestion, a single bad record rejects the whole batch.
func ValidateRawProducts(sourceName string, raw []models.RawProduct, opts ValidationOptions) error {
	if len(opts.AllowedSourceNames) == 0 {
		return ErrNoAllowedSources
	}

	allowed := false
	for _, name := range opts.AllowedSourceNames {
		if name == sourceName {
			allowed = true

			break
		}
	}

	if !allowed {
		return fmt.Errorf("%w: %q", ErrSourceNotAllowed, sourceName)
	}

	seenIDs := make(map[string]struct{}, len(raw))

	for index, item := range raw {
		if strings.TrimSpace(item.ID) == "" {
			return fmt.Errorf("%w: missing id at index %d", ErrInvalidRawProduct, index)
		}

		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("%w: missing name for id %q at index %d", ErrInvalidRawProduct, item.ID, index)
		}

		if strings.TrimSpace(item.ProductURL) == "" {
			return fmt.Errorf("%w: missing productUrl for id %q at index %d", ErrInvalidRawProduct, item.ID, index)
		}

		if _, dup := seenIDs[item.ID]; dup {
			return fmt.Errorf("%w: %q for source %q", ErrDuplicateRawID, item.ID, sourceName)
		}

		seenIDs[item.ID] = struct{}{}

		parsed, err := url.Parse(item.ProductURL)
		if err != nil {
			return fmt.Errorf("%w: unparseable productUrl for id %q: %q", ErrInvalidRawProduct, item.ID, item.ProductURL)
		}

		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return fmt.Errorf("%w: unsupported productUrl scheme for id %q: %q", ErrInvalidRawProduct, item.ID, parsed.Scheme)
		}

		if parsed.Host == "" {
			return fmt.Errorf("%w: productUrl without host for id %q: %q", ErrInvalidRawProduct, item.ID, item.ProductURL)
		}
	}

	return nil
}
