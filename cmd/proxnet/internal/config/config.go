// Package config holds the proxnet CLI configuration and its layered loader.
//
// Every field doubles as the default of the matching command-line flag, so a
// site can pin column names and the engine choice in a YAML file or in
// PROXNET_* variables and keep invocations short.
package config

import (
	"fmt"
	"log/slog"
	"slices"
)

// Output formats understood by the edges command.
const (
	FormatCSV   = "csv"
	FormatTable = "table"
)

// Config contains CLI configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Threshold is the exclusive proximity radius. Zero means unset.
	Threshold float64 `koanf:"threshold"`

	// ID, Coords, Timegroup and SplitBy name the input columns.
	ID          string   `koanf:"id"`
	Coords      []string `koanf:"coords"`
	Timegroup   string   `koanf:"timegroup"`
	NoTimegroup bool     `koanf:"no_timegroup"`
	SplitBy     []string `koanf:"split_by"`

	ReturnDist        bool `koanf:"return_dist"`
	FillNA            bool `koanf:"fill_na"`
	SpatialIndex      bool `koanf:"spatial_index"`
	StrictCoordinates bool `koanf:"strict_coordinates"`
	Parallelism       int  `koanf:"parallelism"`

	// Format selects csv or table output.
	Format string `koanf:"format"`

	// Delimiter is the single-character CSV field separator for input and output.
	Delimiter string `koanf:"delimiter"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:    "warn",
		FillNA:      true,
		Parallelism: 1,
		Format:      FormatCSV,
		Delimiter:   ",",
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if !slices.Contains([]string{FormatCSV, FormatTable}, c.Format) {
		return fmt.Errorf("%w: format %q (want %s or %s)", ErrInvalidConfig, c.Format, FormatCSV, FormatTable)
	}
	if len([]rune(c.Delimiter)) != 1 {
		return fmt.Errorf("%w: delimiter %q must be one character", ErrInvalidConfig, c.Delimiter)
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return lvl, nil
}

// DelimiterRune returns the delimiter as a rune. Call after Validate.
func (c *Config) DelimiterRune() rune {
	return []rune(c.Delimiter)[0]
}
