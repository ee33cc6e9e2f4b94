package bind

import "go.uber.org/zap"

// config holds Binder configuration assembled from functional options,
// mirroring the teacher's parserConfig pattern.
type config struct {
	strictMode bool
	permitted  map[string][]string
	logger     *zap.Logger
}

func defaultConfig() config {
	return config{logger: zap.NewNop()}
}

// Option configures a Binder.
type Option func(*config)

// WithStrictMode enables strict binding mode: unexpected segments abort the
// parse instead of downgrading to a warning diagnostic. No ambiguous-
// hierarchy diagnostic is raised in either mode; an HL rollback is applied
// the same way in both.
func WithStrictMode(strict bool) Option {
	return func(c *config) { c.strictMode = strict }
}

// WithPermittedSegments supplies, per loop id, the set of segment names the
// implementation guide allows as direct children of that loop (§3 invariant
// 1). A loop id with no entry is treated as unrestricted; this keeps the
// table's size proportional to the loops whose membership the guide
// actually constrains, rather than requiring an exhaustive matrix.
func WithPermittedSegments(permitted map[string][]string) Option {
	return func(c *config) { c.permitted = permitted }
}

// WithLogger supplies a structured logger for non-fatal diagnostics. The
// default is a no-op logger: the binder performs no I/O of its own (§5),
// so logging is purely an observability hook for callers that want it.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
