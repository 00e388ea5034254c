// Package config loads scribe's settings from a TOML file with environment
// variable overrides.
//
// Example file:
//
//	[buffer]
//	growth_margin = 256
//	column_unit = "grapheme"
//
//	[logging]
//	level = "debug"
//
// Missing files are not an error; defaults apply. Environment variables
// SCRIBE_GROWTH_MARGIN, SCRIBE_COLUMN_UNIT and SCRIBE_LOG_LEVEL override the
// file.
package config

import (
	"fmt"

	"github.com/dshills/scribe/internal/engine/gapbuffer"
	"github.com/dshills/scribe/internal/logging"
)

// Config holds all settings.
type Config struct {
	Buffer  BufferConfig  `toml:"buffer"`
	Logging LoggingConfig `toml:"logging"`
}

// BufferConfig configures document storage.
type BufferConfig struct {
	// GrowthMargin is the spare capacity, in characters, reserved on each
	// storage allocation.
	GrowthMargin int `toml:"growth_margin"`

	// ColumnUnit is what a cursor offset counts: "rune" or "grapheme".
	ColumnUnit string `toml:"column_unit"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	// Level is the minimum level written: debug, info, warn or error.
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Buffer: BufferConfig{
			GrowthMargin: gapbuffer.DefaultGrowthMargin,
			ColumnUnit:   gapbuffer.ColumnRunes.String(),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks every setting and returns the first problem found.
func (c Config) Validate() error {
	if c.Buffer.GrowthMargin <= 0 {
		return &ValueError{Key: "buffer.growth_margin", Value: c.Buffer.GrowthMargin, Reason: "must be positive"}
	}
	if _, err := gapbuffer.ParseColumnUnit(c.Buffer.ColumnUnit); err != nil {
		return &ValueError{Key: "buffer.column_unit", Value: c.Buffer.ColumnUnit, Reason: "must be rune or grapheme"}
	}
	if _, ok := logging.ParseLevel(c.Logging.Level); !ok {
		return &ValueError{Key: "logging.level", Value: c.Logging.Level, Reason: "must be debug, info, warn or error"}
	}
	return nil
}

// ColumnUnit returns the parsed column unit. Invalid values fall back to
// runes; call Validate first to reject them.
func (c Config) ColumnUnit() gapbuffer.ColumnUnit {
	u, _ := gapbuffer.ParseColumnUnit(c.Buffer.ColumnUnit)
	return u
}

// LogLevel returns the parsed log level.
func (c Config) LogLevel() logging.Level {
	l, _ := logging.ParseLevel(c.Logging.Level)
	return l
}

// String renders the effective configuration for diagnostics.
func (c Config) String() string {
	return fmt.Sprintf("buffer.growth_margin=%d buffer.column_unit=%s logging.level=%s",
		c.Buffer.GrowthMargin, c.Buffer.ColumnUnit, c.Logging.Level)
}
