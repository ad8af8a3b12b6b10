package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/tradejournal/metrics"
)

// Config is the complete journal configuration.
type Config struct {
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Export  ExportConfig  `json:"export" yaml:"export"`
	Stats   StatsConfig   `json:"stats" yaml:"stats"`
	Insight InsightConfig `json:"insight" yaml:"insight"`
}

// JournalConfig locates the SQLite journal.
type JournalConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// ExportConfig controls CSV and report output.
type ExportConfig struct {
	Dir        string `json:"dir" yaml:"dir"`
	ReportPath string `json:"report_path" yaml:"report_path"`
}

// StatsConfig controls the default stats view.
type StatsConfig struct {
	DefaultRange string `json:"default_range" yaml:"default_range"`
	RecentLimit  int    `json:"recent_limit" yaml:"recent_limit"`
}

// InsightConfig controls the insight cache.
type InsightConfig struct {
	CacheTTL string `json:"cache_ttl" yaml:"cache_ttl"` // e.g. "24h", "30m"
}

// ParseTTL converts the cache TTL string to a time.Duration.
func (ic InsightConfig) ParseTTL() (time.Duration, error) {
	if ic.CacheTTL == "" {
		return 0, nil
	}
	return time.ParseDuration(ic.CacheTTL)
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Journal.DBPath == "" {
		return fmt.Errorf("journal.db_path is required")
	}
	if c.Export.Dir == "" {
		return fmt.Errorf("export.dir is required")
	}
	switch metrics.Range(c.Stats.DefaultRange) {
	case metrics.RangeAll, metrics.Range3M, metrics.Range6M, metrics.Range1Y, metrics.RangeYTD:
	default:
		return fmt.Errorf("unknown stats.default_range: %s", c.Stats.DefaultRange)
	}
	if c.Stats.RecentLimit <= 0 {
		return fmt.Errorf("stats.recent_limit must be positive")
	}
	if _, err := c.Insight.ParseTTL(); err != nil {
		return fmt.Errorf("insight.cache_ttl: %w", err)
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Journal: JournalConfig{
			DBPath: "./journal.db",
		},
		Export: ExportConfig{
			Dir:        "./export",
			ReportPath: "./report.org",
		},
		Stats: StatsConfig{
			DefaultRange: string(metrics.RangeAll),
			RecentLimit:  6,
		},
		Insight: InsightConfig{
			CacheTTL: "24h",
		},
	}
}
