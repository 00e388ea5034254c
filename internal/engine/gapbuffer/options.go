package gapbuffer

import "fmt"

// DefaultGrowthMargin is the number of spare runes reserved whenever the
// buffer is allocated or reallocated.
const DefaultGrowthMargin = 128

// ColumnUnit selects what Position.Offset counts within a line.
type ColumnUnit uint8

const (
	// ColumnRunes counts Unicode code points.
	ColumnRunes ColumnUnit = iota
	// ColumnGraphemes counts extended grapheme clusters.
	ColumnGraphemes
)

// String returns the configuration name of the unit.
func (u ColumnUnit) String() string {
	switch u {
	case ColumnRunes:
		return "rune"
	case ColumnGraphemes:
		return "grapheme"
	default:
		return "unknown"
	}
}

// ParseColumnUnit parses a configuration name into a ColumnUnit.
func ParseColumnUnit(s string) (ColumnUnit, error) {
	switch s {
	case "rune", "runes", "":
		return ColumnRunes, nil
	case "grapheme", "graphemes":
		return ColumnGraphemes, nil
	default:
		return ColumnRunes, fmt.Errorf("unknown column unit %q", s)
	}
}

// Option is a functional option for configuring a GapBuffer.
type Option func(*GapBuffer)

// WithGrowthMargin sets the spare capacity added on each allocation.
// Non-positive values are ignored.
func WithGrowthMargin(n int) Option {
	return func(g *GapBuffer) {
		if n > 0 {
			g.margin = n
		}
	}
}

// WithColumnUnit sets what a Position's Offset counts.
func WithColumnUnit(u ColumnUnit) Option {
	return func(g *GapBuffer) {
		g.unit = u
	}
}
