package serialize

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dshills/x12/bind"
	"github.com/dshills/x12/model"
	"github.com/dshills/x12/schema"
)

// Serializer renders a bound document tree to wire-format bytes.
type Serializer interface {
	// Serialize walks root in document order and returns the rendered
	// transaction set.
	Serialize(root *bind.Loop) ([]byte, error)

	// SerializeToWriter does the same, writing incrementally rather than
	// building the whole result in memory first. The context may be used
	// for cancellation during long writes.
	SerializeToWriter(ctx context.Context, w io.Writer, root *bind.Loop) error
}

// serializer is the concrete implementation of Serializer.
type serializer struct {
	table  schema.Table
	config config
}

// New constructs a Serializer that renders segments against table, the
// same schema the document was decoded with. If no options are given,
// the default delimiter set is used and output is not pretty-printed.
func New(table schema.Table, opts ...Option) Serializer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &serializer{table: table, config: cfg}
}

// Serialize renders root and its descendants to a single byte slice.
func (s *serializer) Serialize(root *bind.Loop) ([]byte, error) {
	if root == nil {
		return nil, &Error{Message: "cannot serialize a nil loop"}
	}

	var buf bytes.Buffer
	var walkErr error
	first := true

	root.Walk(func(l *bind.Loop) bool {
		for _, seg := range l.Segments {
			if !first {
				if s.config.useNewLinesOnEmit {
					buf.WriteByte('\n')
				}
			}
			first = false

			rendered, err := s.renderSegment(seg)
			if err != nil {
				walkErr = err
				return false
			}
			buf.Write(rendered)
		}
		return true
	})

	if walkErr != nil {
		return nil, walkErr
	}
	return buf.Bytes(), nil
}

// SerializeToWriter renders root incrementally, checking ctx for
// cancellation between segments.
func (s *serializer) SerializeToWriter(ctx context.Context, w io.Writer, root *bind.Loop) error {
	if root == nil {
		return &Error{Message: "cannot serialize a nil loop"}
	}

	first := true
	var walkErr error

	root.Walk(func(l *bind.Loop) bool {
		for _, seg := range l.Segments {
			select {
			case <-ctx.Done():
				walkErr = ctx.Err()
				return false
			default:
			}

			if !first && s.config.useNewLinesOnEmit {
				if _, err := w.Write([]byte{'\n'}); err != nil {
					walkErr = &Error{Message: "failed to write newline", Cause: err}
					return false
				}
			}
			first = false

			rendered, err := s.renderSegment(seg)
			if err != nil {
				walkErr = err
				return false
			}
			if _, err := w.Write(rendered); err != nil {
				walkErr = &Error{Message: "failed to write segment", Segment: seg.Name, Cause: err}
				return false
			}
		}
		return true
	})

	return walkErr
}

// renderSegment renders one segment using its typed Fields against the
// schema it was decoded with, falling back to its raw wire fields when no
// schema is registered (or the segment was never decoded, e.g. a
// programmatically-built ack segment). Both paths render with the
// serializer's configured delimiters, not the delimiters the segment was
// originally parsed with, so a caller overriding the output delimiter set
// gets it applied uniformly.
func (s *serializer) renderSegment(seg model.Segment) ([]byte, error) {
	segSchema, ok := s.table.Lookup(seg.Name)
	if !ok || len(seg.Fields) == 0 {
		return seg.Bytes(s.config.delims), nil
	}

	delims := s.config.delims

	fields := make([]string, len(seg.Fields))
	for i, field := range seg.Fields {
		fs, _ := segSchema.Field(i + 1)
		reps := make([]string, len(field.Repetitions))
		for j, v := range field.Repetitions {
			reps[j] = renderValue(v, fs, delims)
		}
		fields[i] = strings.Join(reps, string(delims.Repetition))
	}

	last := len(fields)
	for last > 0 && fields[last-1] == "" {
		last--
	}
	fields = fields[:last]

	var b strings.Builder
	b.WriteString(seg.Name)
	for _, f := range fields {
		b.WriteRune(delims.Element)
		b.WriteString(f)
	}
	b.WriteRune(delims.Segment)
	return []byte(b.String()), nil
}

// renderValue renders a single decoded value against its field schema,
// recursing into a composite's components joined by the component
// separator. Decimal fields render with fs's DecimalPlacesOrDefault;
// non-decimal fields ignore it.
func renderValue(v model.Value, fs schema.FieldSchema, delims model.Delimiters) string {
	if v.Type == model.TypeComposite {
		comps := make([]string, len(v.Components))
		for i, c := range v.Components {
			var cs schema.FieldSchema
			if i < len(fs.Components) {
				cs = fs.Components[i]
			}
			comps[i] = c.Render(cs.DecimalPlacesOrDefault())
		}
		return strings.Join(comps, string(delims.Component))
	}
	return v.Render(fs.DecimalPlacesOrDefault())
}

// Error represents an error that occurred during document serialization.
type Error struct {
	Message string
	Segment string
	Cause   error
}

func (e *Error) Error() string {
	msg := "serialize error"
	if e.Segment != "" {
		msg = fmt.Sprintf("%s at segment %s", msg, e.Segment)
	}
	if e.Message != "" {
		msg = msg + ": " + e.Message
	}
	if e.Cause != nil {
		msg = msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}
