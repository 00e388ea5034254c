package buffer

import (
	"github.com/dshills/scribe/internal/engine/gapbuffer"
	"github.com/dshills/scribe/internal/logging"
)

// StoreFactory builds a Store holding the initial content.
type StoreFactory func(content string) Store

type options struct {
	store      StoreFactory
	gapOptions []gapbuffer.Option
	logger     *logging.Logger
}

func defaultOptions() options {
	return options{
		logger: logging.Null(),
	}
}

// Option is a functional option for configuring a Document.
type Option func(*options)

// WithStore replaces the default gap buffer. Gap buffer options are
// ignored when a store factory is set.
func WithStore(f StoreFactory) Option {
	return func(o *options) {
		o.store = f
	}
}

// WithGrowthMargin sets the spare capacity of the default gap buffer.
func WithGrowthMargin(n int) Option {
	return func(o *options) {
		o.gapOptions = append(o.gapOptions, gapbuffer.WithGrowthMargin(n))
	}
}

// WithColumnUnit sets what a cursor offset counts in the default gap
// buffer.
func WithColumnUnit(u gapbuffer.ColumnUnit) Option {
	return func(o *options) {
		o.gapOptions = append(o.gapOptions, gapbuffer.WithColumnUnit(u))
	}
}

// WithLogger sets the logger. Documents log nothing by default.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
