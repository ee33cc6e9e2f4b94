package tokenize

// Default resource limits, mirroring the DoS-protection posture the
// teacher's parse package applies to HL7 messages (§2.1 ambient stack).
const (
	DefaultMaxSegments    = 100000
	DefaultMaxFieldLength = 65536
)

// config holds tokenizer configuration.
type config struct {
	maxSegments    int
	maxFieldLength int
}

func defaultConfig() config {
	return config{
		maxSegments:    DefaultMaxSegments,
		maxFieldLength: DefaultMaxFieldLength,
	}
}

// Option is a functional option for configuring a Tokenizer.
type Option func(*config)

// WithMaxSegments caps the number of segments the whole input may contain,
// counted across every interchange in it, before tokenization fails.
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
