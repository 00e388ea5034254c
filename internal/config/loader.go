package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/scribe/internal/vfs"
)

// Environment variables that override file settings.
const (
	EnvGrowthMargin = "SCRIBE_GROWTH_MARGIN"
	EnvColumnUnit   = "SCRIBE_COLUMN_UNIT"
	EnvLogLevel     = "SCRIBE_LOG_LEVEL"
)

// Loader reads configuration from a file system and the environment.
type Loader struct {
	fs     vfs.VFS
	lookup func(string) (string, bool)
}

// NewLoader creates a loader reading files from fsys and variables from the
// process environment.
func NewLoader(fsys vfs.VFS) *Loader {
	return &Loader{
		fs:     fsys,
		lookup: os.LookupEnv,
	}
}

// WithLookup replaces the environment lookup function.
func (l *Loader) WithLookup(lookup func(string) (string, bool)) *Loader {
	l.lookup = lookup
	return l
}

// Load returns the defaults overlaid with the file at path (if it exists)
// and then with environment overrides. An empty path skips the file.
// The result is validated.
func (l *Loader) Load(path string) (Config, error) {
	cfg := Default()

	// A missing file is not an error
	if path != "" && l.fs.Exists(path) {
		data, err := l.fs.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := decode(path, data, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := l.applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// decode parses TOML data into cfg. Unknown keys are rejected.
func decode(source string, data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(cfg); err != nil {
		perr := &ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return perr
	}
	return nil
}

func (l *Loader) applyEnv(cfg *Config) error {
	if l.lookup == nil {
		return nil
	}

	if v, ok := l.lookup(EnvGrowthMargin); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &ValueError{Key: EnvGrowthMargin, Value: v, Reason: "must be an integer"}
		}
		cfg.Buffer.GrowthMargin = n
	}
	if v, ok := l.lookup(EnvColumnUnit); ok {
		cfg.Buffer.ColumnUnit = v
	}
	if v, ok := l.lookup(EnvLogLevel); ok {
		cfg.Logging.Level = v
	}
	return nil
}
