package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/passbook/internal/extract"
	"github.com/cleared-dev/passbook/internal/layout"
)

// FileName is the workspace config file created by init.
const FileName = "passbook.yaml"

// Config represents the top-level passbook.yaml configuration.
type Config struct {
	// Aliases adds source column labels, keyed by canonical column.
	Aliases    map[string][]string `yaml:"aliases,omitempty"`
	Layout     LayoutConfig        `yaml:"layout"`
	Structured StructuredConfig    `yaml:"structured"`
	Stream     StreamConfig        `yaml:"stream"`
	Preview    PreviewConfig       `yaml:"preview"`
}

// LayoutConfig tunes how glyphs are grouped, in PDF points.
type LayoutConfig struct {
	RowTolerance  float64 `yaml:"row_tolerance"`
	SegmentGap    float64 `yaml:"segment_gap"`
	RuleTolerance float64 `yaml:"rule_tolerance"`
}

// StructuredConfig tunes the header-anchored strategy.
type StructuredConfig struct {
	MinHeaderCells int `yaml:"min_header_cells"`
}

// StreamConfig tunes the whitespace-table strategy.
type StreamConfig struct {
	MinColumns      int     `yaml:"min_columns"`
	MaxWrappedLines int     `yaml:"max_wrapped_lines"`
	MaxRowGap       float64 `yaml:"max_row_gap"` // in line pitches
}

// PreviewConfig controls the JSON preview printed after a conversion.
type PreviewConfig struct {
	Rows int `yaml:"rows"`
}

// Load reads a passbook.yaml file from disk. Settings the file leaves out
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the built-in settings.
func Default() *Config {
	opts := extract.DefaultOptions()
	return &Config{
		Layout: LayoutConfig{
			RowTolerance:  opts.Layout.RowTolerance,
			SegmentGap:    opts.Layout.SegmentGap,
			RuleTolerance: opts.Layout.RuleTolerance,
		},
		Structured: StructuredConfig{MinHeaderCells: opts.MinHeaderCells},
		Stream: StreamConfig{
			MinColumns:      opts.MinColumns,
			MaxWrappedLines: opts.MaxWrappedLines,
			MaxRowGap:       opts.MaxRowGap,
		},
		Preview: PreviewConfig{Rows: 10},
	}
}

// ExtractOptions converts the config into extraction tuning.
func (c *Config) ExtractOptions() extract.Options {
	return extract.Options{
		Layout: layout.Options{
			RowTolerance:  c.Layout.RowTolerance,
			SegmentGap:    c.Layout.SegmentGap,
			RuleTolerance: c.Layout.RuleTolerance,
		},
		MinHeaderCells:  c.Structured.MinHeaderCells,
		MinColumns:      c.Stream.MinColumns,
		MaxWrappedLines: c.Stream.MaxWrappedLines,
		MaxRowGap:       c.Stream.MaxRowGap,
	}
}
