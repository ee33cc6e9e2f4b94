package x12

import (
	"go.uber.org/zap"

	"github.com/dshills/x12/model"
	"github.com/dshills/x12/schema"
	"github.com/dshills/x12/tokenize"
)

// config holds Parser configuration assembled from functional options,
// mirroring the teacher's parserConfig pattern.
type config struct {
	strictMode        bool
	useNewLinesOnEmit bool
	delimiters        *model.Delimiters // override applied during serialization only
	centuryPivot      int
	maxSegments       int
	maxFieldLength    int
	permitted         map[string][]string
	logger            *zap.Logger
}

func defaultConfig() config {
	return config{
		centuryPivot:   schema.DefaultCenturyPivot,
		maxSegments:    tokenize.DefaultMaxSegments,
		maxFieldLength: tokenize.DefaultMaxFieldLength,
		logger:         zap.NewNop(),
	}
}

// Option configures a Parser.
type Option func(*config)

// WithStrictMode enables strict mode across decoding and binding: schema
// and binding diagnostics that would otherwise downgrade to warnings abort
// the parse instead (§7). Structural and envelope errors always abort,
// regardless of this setting.
func WithStrictMode(strict bool) Option {
	return func(c *config) { c.strictMode = strict }
}

// WithUseNewLinesOnEmit inserts a newline between segments when
// serializing, for human-readable output, without changing the segment
// terminator itself.
func WithUseNewLinesOnEmit(enable bool) Option {
	return func(c *config) { c.useNewLinesOnEmit = enable }
}

// WithCustomDelimiters overrides the delimiter set Document.Serialize uses
// to render output, independent of the delimiters the input was parsed
// with. Parsing itself always discovers delimiters from each interchange's
// own ISA header (§4.A); this option affects serialization only.
func WithCustomDelimiters(d model.Delimiters) Option {
	return func(c *config) { c.delimiters = &d }
}

// WithCenturyPivot sets the two-digit-year pivot used to resolve ISA's
// 6-digit dates (§4.C). Years below the pivot are read as 20xx, at or
// above as 19xx. Defaults to schema.DefaultCenturyPivot.
func WithCenturyPivot(pivot int) Option {
	return func(c *config) { c.centuryPivot = pivot }
}

// WithMaxSegments caps the number of segments a single Parse call will
// tokenize before failing, guarding against unbounded input (§2.1).
func WithMaxSegments(limit int) Option {
	return func(c *config) {
		if limit > 0 {
			c.maxSegments = limit
		}
	}
}

// WithMaxFieldLength caps the byte length of any single field.
func WithMaxFieldLength(limit int) Option {
	return func(c *config) {
		if limit > 0 {
			c.maxFieldLength = limit
		}
	}
}

// WithPermittedSegments supplies the loop-membership table the binder
// enforces (§3 invariant 1); see bind.WithPermittedSegments.
func WithPermittedSegments(permitted map[string][]string) Option {
	return func(c *config) { c.permitted = permitted }
}

// WithLogger supplies a structured logger for non-fatal diagnostics raised
// while binding. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
