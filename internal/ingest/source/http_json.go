package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"clothinghub/internal/models"
)

const httpJSONCodePrefix = "http-json"

// DefaultHTTPTimeout bounds a feed fetch when no timeout is configured.
const DefaultHTTPTimeout = 10 * time.Second

// maxFeedBytes caps how much of a remote feed body is read.
const maxFeedBytes = 16 << 20

// ErrUnexpectedStatusCode indicates an HTTP response outside the 2xx range.
var ErrUnexpectedStatusCode = errors.New("unexpected status code")

// HTTPJSON fetches a JSON array of raw products from a remote endpoint.
type HTTPJSON struct {
	retailerID string
	sourceID   string
	url        string
	client     *http.Client
	limiter    *rate.Limiter
}

// HTTPJSONOptions configures a remote JSON feed source. Limiter is optional
// and may be shared between sources hitting the same host.
type HTTPJSONOptions struct {
	URL        string
	RetailerID string
	SourceID   string
	Timeout    time.Duration
	Limiter    *rate.Limiter
}

// NewHTTPJSON creates a remote JSON feed source.
func NewHTTPJSON(opts HTTPJSONOptions) *HTTPJSON {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}

	return &HTTPJSON{
		retailerID: opts.RetailerID,
		sourceID:   opts.SourceID,
		url:        opts.URL,
		client:     &http.Client{Timeout: timeout},
		limiter:    opts.Limiter,
	}
}

// SourceID returns the source identifier.
func (s *HTTPJSON) SourceID() string { return s.sourceID }

// RetailerID returns the retailer identifier.
func (s *HTTPJSON) RetailerID() string { return s.retailerID }

// ListRawProducts fetches and validates the remote feed. Non-2xx statuses
// and parse failures are both reported as fatal fetch issues; cancellation
// of ctx aborts the in-flight request.
func (s *HTTPJSON) ListRawProducts(ctx context.Context) Result {
	payload, err := s.fetch(ctx)
	if err != nil {
		return failure([]models.Issue{{
			Severity:   models.SeverityError,
			Code:       httpJSONCodePrefix + ".fetch_failed",
			Message:    fmt.Sprintf("Failed to fetch JSON feed from %s", s.url),
			RetailerID: s.retailerID,
			SourceID:   s.sourceID,
			Details:    map[string]any{"error": err.Error()},
		}})
	}

	products, issues := ValidateFeed(payload, ValidateOptions{
		RetailerID:           s.retailerID,
		SourceID:             s.sourceID,
		CodePrefix:           httpJSONCodePrefix,
		InvalidFormatMessage: "HTTP JSON feed must be an array of products",
	})

	return finishResult(products, issues)
}

func (s *HTTPJSON) fetch(ctx context.Context) (any, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return payload, nil
}
