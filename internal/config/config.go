// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jonathan/outfit-planner/internal/ranking"
	"github.com/jonathan/outfit-planner/internal/selection"
	"github.com/jonathan/outfit-planner/internal/types"
)

// Environment variables read by FromEnv
const (
	EnvWardrobe    = "OUTFIT_WARDROBE"
	EnvDatabaseURL = "DATABASE_URL"
	EnvMaxResults  = "OUTFIT_MAX_RESULTS"
	EnvPort        = "OUTFIT_PORT"
)

// DefaultPort is the HTTP port used by serve when none is configured.
const DefaultPort = 8080

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inventory
	Wardrobe    string `json:"wardrobe,omitempty"`     // Path to a JSON or YAML wardrobe file
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Query defaults
	Weather         string   `json:"weather,omitempty"`
	Occasion        string   `json:"occasion,omitempty"`
	MaxResults      int      `json:"max_results,omitempty"`
	PreferredColors []string `json:"preferred_colors,omitempty"`
	PreferredStyles []string `json:"preferred_styles,omitempty"`

	// Search tuning
	SingleAccessoryBases int              `json:"single_accessory_bases,omitempty"` // Top base outfits extended with one accessory
	DoubleAccessoryBases int              `json:"double_accessory_bases,omitempty"` // Top base outfits extended with two accessories
	Weights              *ranking.Weights `json:"weights,omitempty"`                // Scoring weights (must sum to 1.0)

	// Behavior
	Parallel bool `json:"parallel,omitempty"` // Run independent stages concurrently
	Strict   bool `json:"strict,omitempty"`   // Reject unrecognized weather/occasion tags
	Verbose  bool `json:"verbose,omitempty"`  // Print detailed debug information
	Port     int  `json:"port,omitempty"`     // HTTP port for serve
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables. Unset or
// malformed numeric variables are left at zero.
func FromEnv() Config {
	cfg := Config{
		Wardrobe:    os.Getenv(EnvWardrobe),
		DatabaseURL: os.Getenv(EnvDatabaseURL),
	}
	if n, err := strconv.Atoi(os.Getenv(EnvMaxResults)); err == nil {
		cfg.MaxResults = n
	}
	if n, err := strconv.Atoi(os.Getenv(EnvPort)); err == nil {
		cfg.Port = n
	}
	return cfg
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Wardrobe != "" && c.DatabaseURL != "" {
		return fmt.Errorf("config error: 'wardrobe' and 'database_url' are mutually exclusive")
	}

	// Validate numeric ranges
	if c.MaxResults < 0 || c.MaxResults > types.MaxMaxResults {
		return fmt.Errorf("config error: 'max_results' must be between %d and %d", types.MinMaxResults, types.MaxMaxResults)
	}
	if c.SingleAccessoryBases < 0 {
		return fmt.Errorf("config error: 'single_accessory_bases' must be non-negative")
	}
	if c.DoubleAccessoryBases < 0 {
		return fmt.Errorf("config error: 'double_accessory_bases' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.Weights != nil {
		if err := c.Weights.Validate(); err != nil {
			return fmt.Errorf("config error: 'weights': %w", err)
		}
	}

	// Unrecognized tags are permissive unless strict
	if c.Strict && c.Weather != "" && !types.Weather(c.Weather).Known() {
		return fmt.Errorf("config error: unknown weather %q", c.Weather)
	}
	if c.Strict && c.Occasion != "" && !types.Occasion(c.Occasion).Known() {
		return fmt.Errorf("config error: unknown occasion %q", c.Occasion)
	}

	// Validate file paths exist (if specified)
	if c.Wardrobe != "" {
		if _, err := os.Stat(c.Wardrobe); os.IsNotExist(err) {
			return fmt.Errorf("config error: wardrobe file not found: %s", c.Wardrobe)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Wardrobe == "" {
		result.Wardrobe = defaults.Wardrobe
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Weather == "" {
		result.Weather = defaults.Weather
	}
	if result.Occasion == "" {
		result.Occasion = defaults.Occasion
	}

	// Slice fields: use default if empty
	if len(result.PreferredColors) == 0 {
		result.PreferredColors = defaults.PreferredColors
	}
	if len(result.PreferredStyles) == 0 {
		result.PreferredStyles = defaults.PreferredStyles
	}

	// Int fields: use default if zero
	if result.MaxResults == 0 {
		result.MaxResults = defaults.MaxResults
	}
	if result.SingleAccessoryBases == 0 {
		result.SingleAccessoryBases = defaults.SingleAccessoryBases
	}
	if result.DoubleAccessoryBases == 0 {
		result.DoubleAccessoryBases = defaults.DoubleAccessoryBases
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	if result.Weights == nil {
		result.Weights = defaults.Weights
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Limits returns the accessory pruning limits, falling back to the defaults for zero values.
func (c *Config) Limits() selection.Limits {
	limits := selection.DefaultLimits()
	if c.SingleAccessoryBases > 0 {
		limits.SingleAccessoryBases = c.SingleAccessoryBases
	}
	if c.DoubleAccessoryBases > 0 {
		limits.DoubleAccessoryBases = c.DoubleAccessoryBases
	}
	return limits
}

// Preferences returns the configured preferences, or nil when none are set.
func (c *Config) Preferences() *types.Preferences {
	prefs := &types.Preferences{
		PreferredColors: c.PreferredColors,
		PreferredStyles: c.PreferredStyles,
	}
	if prefs.IsEmpty() {
		return nil
	}
	return prefs
}
