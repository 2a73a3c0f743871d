// Package config loads and validates the ingestion source-list configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SchemaVersion is the only supported source-list schema version.
const SchemaVersion = 1

// Source types.
const (
	TypeLocalJSON = "local_json"
	TypeHTTPJSON  = "http_json"
	TypeLocalCSV  = "local_csv"
)

// DefaultConfigPath is consulted when no --config flag is given.
const DefaultConfigPath = "data/ingestion/sources/sources.v1.json"

// Default feed paths per type.
const (
	DefaultLocalJSONPath = "data/ingestion/sources/local-seed.json"
	DefaultLocalCSVPath  = "data/ingestion/sources/local-seed.csv"
)

// Configuration validation errors.
var (
	ErrUnsupportedVersion   = errors.New("config version must be 1")
	ErrNoSources            = errors.New("at least one source is required")
	ErrNoEnabledSources     = errors.New("at least one source must be enabled")
	ErrUnsupportedType      = errors.New("unsupported source type")
	ErrSourceMissingURL     = errors.New("url is required for http_json sources")
	ErrMissingColumnMap     = errors.New("columnMap is required for local_csv sources")
	ErrIncompleteColumnMap  = errors.New("columnMap is missing required columns")
	ErrInvalidTimeout       = errors.New("timeout_ms must be non-negative")
	ErrInvalidRateLimit     = errors.New("rate_limit_rps must be non-negative")
	ErrUnsupportedCharset   = errors.New("charset must be one of: utf-8, latin-1, windows-1252")
	ErrUnsupportedDelimiter = errors.New("delimiter must be a single character")
)

// requiredCSVColumns are the columnMap keys every CSV source must bind.
var requiredCSVColumns = []string{"sourceProductId", "title", "productUrl", "imageUrl", "price"}

// Config is the version-1 source-list configuration.
type Config struct {
	Version int            `json:"version" yaml:"version"`
	Sources []SourceConfig `json:"sources" yaml:"sources"`
}

// SourceConfig describes one feed connection.
type SourceConfig struct {
	ID           string            `json:"id,omitempty" yaml:"id,omitempty"`
	Type         string            `json:"type" yaml:"type"`
	RetailerID   string            `json:"retailerId,omitempty" yaml:"retailerId,omitempty"`
	SourceID     string            `json:"sourceId,omitempty" yaml:"sourceId,omitempty"`
	FilePath     string            `json:"filePath,omitempty" yaml:"filePath,omitempty"`
	URL          string            `json:"url,omitempty" yaml:"url,omitempty"`
	TimeoutMs    int               `json:"timeoutMs,omitempty" yaml:"timeoutMs,omitempty"`
	RateLimitRPS float64           `json:"rateLimitRps,omitempty" yaml:"rateLimitRps,omitempty"`
	Enabled      *bool             `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Delimiter    string            `json:"delimiter,omitempty" yaml:"delimiter,omitempty"`
	HasHeader    *bool             `json:"hasHeader,omitempty" yaml:"hasHeader,omitempty"`
	Charset      string            `json:"charset,omitempty" yaml:"charset,omitempty"`
	ColumnMap    map[string]string `json:"columnMap,omitempty" yaml:"columnMap,omitempty"`
}

// IsEnabled reports whether the source is enabled. Sources default to
// enabled unless explicitly switched off.
func (s *SourceConfig) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// EffectiveSourceID resolves the source id: explicit sourceId, then id, then
// a positional fallback derived from the type.
func (s *SourceConfig) EffectiveSourceID(index int) string {
	if s.SourceID != "" {
		return s.SourceID
	}

	if s.ID != "" {
		return s.ID
	}

	return fmt.Sprintf("%s-%d", s.Type, index+1)
}

// EffectiveRetailerID resolves the retailer id, falling back to the type.
func (s *SourceConfig) EffectiveRetailerID() string {
	if s.RetailerID != "" {
		return s.RetailerID
	}

	return s.Type
}

// Load reads a config file. Files ending in .yaml/.yml are parsed as YAML,
// anything else as JSON. The configuration is validated before returning.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration against the version-1 schema rules.
func (c *Config) Validate() error {
	if c.Version != SchemaVersion {
		return ErrUnsupportedVersion
	}

	if len(c.Sources) == 0 {
		return ErrNoSources
	}

	enabledCount := 0

	for i, src := range c.Sources {
		if err := src.validate(); err != nil {
			return fmt.Errorf("%w: source[%d]", err, i)
		}

		if src.IsEnabled() {
			enabledCount++
		}
	}

	if enabledCount == 0 {
		return ErrNoEnabledSources
	}

	return nil
}

func (s *SourceConfig) validate() error {
	if s.TimeoutMs < 0 {
		return ErrInvalidTimeout
	}

	if s.RateLimitRPS < 0 {
		return ErrInvalidRateLimit
	}

	switch s.Type {
	case TypeLocalJSON:
		return nil
	case TypeHTTPJSON:
		if s.URL == "" {
			return ErrSourceMissingURL
		}

		return nil
	case TypeLocalCSV:
		return s.validateCSV()
	default:
		return ErrUnsupportedType
	}
}

func (s *SourceConfig) validateCSV() error {
	if len(s.ColumnMap) == 0 {
		return ErrMissingColumnMap
	}

	for _, key := range requiredCSVColumns {
		if s.ColumnMap[key] == "" {
			return fmt.Errorf("%w: %s", ErrIncompleteColumnMap, key)
		}
	}

	if len([]rune(s.Delimiter)) > 1 {
		return ErrUnsupportedDelimiter
	}

	switch strings.ToLower(s.Charset) {
	case "", "utf-8", "utf8", "latin-1", "iso-8859-1", "windows-1252", "cp1252":
		return nil
	default:
		return ErrUnsupportedCharset
	}
}

// EnabledSources returns only enabled sources.
func (c *Config) EnabledSources() []SourceConfig {
	var enabled []SourceConfig

	for _, src := range c.Sources {
		if src.IsEnabled() {
			enabled = append(enabled, src)
		}
	}

	return enabled
}

// String returns a short description of the config.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Version: %d, Sources: %d, Enabled: %d}",
		c.Version, len(c.Sources), len(c.EnabledSources()))
}
