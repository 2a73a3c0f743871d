package source

import (
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"clothinghub/internal/config"
)

// BuildFromConfig turns the enabled entries of a source-list configuration
// into runnable source adapters, preserving config order.
func BuildFromConfig(cfg *config.Config) ([]Source, error) {
	var sources []Source

	for i, sc := range cfg.Sources {
		if !sc.IsEnabled() {
			continue
		}

		src, err := buildSource(sc, i)
		if err != nil {
			return nil, fmt.Errorf("failed to build source %q: %w", sc.EffectiveSourceID(i), err)
		}

		sources = append(sources, src)
	}

	return sources, nil
}

func buildSource(sc config.SourceConfig, index int) (Source, error) {
	retailerID := sc.EffectiveRetailerID()
	sourceID := sc.EffectiveSourceID(index)

	switch sc.Type {
	case config.TypeLocalJSON:
		path := sc.FilePath
		if path == "" {
			path = config.DefaultLocalJSONPath
		}

		return NewLocalJSON(LocalJSONOptions{
			FilePath:   path,
			RetailerID: retailerID,
			SourceID:   sourceID,
		}), nil

	case config.TypeHTTPJSON:
		var limiter *rate.Limiter
		if sc.RateLimitRPS > 0 {
			limiter = rate.NewLimiter(rate.Limit(sc.RateLimitRPS), 1)
		}

		return NewHTTPJSON(HTTPJSONOptions{
			URL:        sc.URL,
			RetailerID: retailerID,
			SourceID:   sourceID,
			Timeout:    time.Duration(sc.TimeoutMs) * time.Millisecond,
			Limiter:    limiter,
		}), nil

	case config.TypeLocalCSV:
		path := sc.FilePath
		if path == "" {
			path = config.DefaultLocalCSVPath
		}

		var delimiter rune
		if sc.Delimiter != "" {
			delimiter = []rune(sc.Delimiter)[0]
		}

		return NewLocalCSV(LocalCSVOptions{
			FilePath:   path,
			RetailerID: retailerID,
			SourceID:   sourceID,
			Delimiter:  delimiter,
			HasHeader:  sc.HasHeader,
			Charset:    sc.Charset,
			Columns:    columnsFromMap(sc.ColumnMap),
		}), nil

	default:
		return nil, fmt.Errorf("unsupported source type %q", sc.Type)
	}
}

func columnsFromMap(m map[string]string) ColumnMap {
	return ColumnMap{
		SourceProductID:     m["sourceProductId"],
		Title:               m["title"],
		Brand:               m["brand"],
		Description:         m["description"],
		ProductURL:          m["productUrl"],
		ImageURL:            m["imageUrl"],
		AdditionalImageURLs: m["additionalImageUrls"],
		Price:               m["price"],
		Currency:            m["currency"],
		CategoryPath:        m["categoryPath"],
		Availability:        m["availability"],
	}
}
