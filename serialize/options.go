package serialize

import "github.com/dshills/x12/model"

// config holds the configuration options for serializing a document tree.
type config struct {
	delims            model.Delimiters
	useNewLinesOnEmit bool
}

func defaultConfig() config {
	return config{
		delims: model.DefaultDelimiters(),
	}
}

// Option is a functional option for configuring a Serializer.
type Option func(*config)

// WithDelimiters sets the delimiter set used to join elements, components,
// repetitions, and segments. The default is model.DefaultDelimiters();
// callers serializing an interchange they parsed should pass back the
// delimiters tokenize.Discover found, so output matches input exactly.
func WithDelimiters(d model.Delimiters) Option {
	return func(c *config) {
		c.delims = d
	}
}

// WithUseNewLinesOnEmit inserts a newline between segments (after every
// segment terminator but the last), for human-readable output. It never changes the terminator itself, so
// re-tokenizing pretty-printed output yields the same segments.
func WithUseNewLinesOnEmit(enable bool) Option {
	return func(c *config) {
		c.useNewLinesOnEmit = enable
	}
}
