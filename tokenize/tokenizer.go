package tokenize

import (
	"strings"

	"github.com/dshills/x12/model"
)

// Tokenizer splits an interchange's byte stream into a lazy sequence of
// RawSegment records (§4.B). Call Scan repeatedly until it returns false,
// then check Err.
type Tokenizer struct {
	data   []byte
	delims model.Delimiters
	cfg    config

	pos     int
	index   int
	current model.RawSegment
	err     error
	done    bool
}

// New discovers the delimiter set from the interchange's ISA header and
// returns a Tokenizer ready to scan the full byte stream, ISA segment
// included.
func New(data []byte, opts ...Option) (*Tokenizer, error) {
	delims, err := Discover(data)
	if err != nil {
		return nil, err
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Tokenizer{data: data, delims: delims, cfg: cfg}, nil
}

// Delimiters returns the delimiter set discovered for this interchange.
func (t *Tokenizer) Delimiters() model.Delimiters {
	return t.delims
}

// Err returns the error that stopped scanning, if any.
func (t *Tokenizer) Err() error {
	return t.err
}

// Segment returns the most recently scanned segment.
func (t *Tokenizer) Segment() model.RawSegment {
	return t.current
}

// Scan advances to the next segment, returning false when the stream is
// exhausted or an error occurred.
func (t *Tokenizer) Scan() bool {
	if t.done || t.err != nil {
		return false
	}

	// Skip inter-segment whitespace (newlines/CRs inserted for readability).
	for t.pos < len(t.data) && isWhitespace(t.data[t.pos]) {
		t.pos++
	}
	if t.pos >= len(t.data) {
		t.done = true
		return false
	}

	termByte := byte(t.delims.Segment)
	start := t.pos
	end := -1
	for i := t.pos; i < len(t.data); i++ {
		if t.data[i] == termByte {
			end = i
			break
		}
	}

	if end == -1 {
		// No terminator found before EOF; fail only if non-whitespace
		// content remains (§4.B).
		if len(strings.TrimSpace(string(t.data[start:]))) > 0 {
			t.err = &model.Error{
				Kind:         model.KindTruncatedSegment,
				Severity:     model.SeverityFatal,
				SegmentIndex: t.index + 1,
				Message:      "segment stream ended without a terminator",
			}
		}
		t.done = true
		return false
	}

	t.index++
	if t.index > t.cfg.maxSegments {
		t.err = &model.Error{
			Kind:         model.KindTruncatedSegment,
			Severity:     model.SeverityFatal,
			SegmentIndex: t.index,
			Message:      "interchange exceeds maximum segment count",
		}
		return false
	}

	raw, err := t.splitSegment(t.data[start:end], t.index)
	if err != nil {
		t.err = err
		return false
	}

	t.current = raw
	t.pos = end + 1
	return true
}

// splitSegment splits one segment body (without its terminator) into its
// name and fields, per §3/§4.B's element/repetition/component tiers.
func (t *Tokenizer) splitSegment(body []byte, index int) (model.RawSegment, error) {
	elemByte := byte(t.delims.Element)
	repByte := byte(t.delims.Repetition)
	compByte := byte(t.delims.Component)

	rawFields := splitByte(body, elemByte)
	if len(rawFields) == 0 {
		return model.RawSegment{}, &model.Error{
			Kind:         model.KindTruncatedSegment,
			Severity:     model.SeverityFatal,
			SegmentIndex: index,
			Message:      "empty segment body",
		}
	}

	name := string(rawFields[0])
	fields := make([]model.RawField, 0, len(rawFields)-1)
	for _, raw := range rawFields[1:] {
		if len(raw) > t.cfg.maxFieldLength {
			return model.RawSegment{}, &model.Error{
				Kind:         model.KindTruncatedSegment,
				Severity:     model.SeverityFatal,
				SegmentIndex: index,
				SegmentName:  name,
				Message:      "field exceeds maximum length",
			}
		}
		reps := splitByte(raw, repByte)
		field := model.RawField{Repetitions: make([][]string, len(reps))}
		for i, rep := range reps {
			comps := splitByte(rep, compByte)
			strs := make([]string, len(comps))
			for j, c := range comps {
				strs[j] = string(c)
			}
			field.Repetitions[i] = strs
		}
		fields = append(fields, field)
	}

	return model.RawSegment{Name: name, Fields: fields, Index: index}, nil
}

// splitByte splits data on sep the way bytes.Split does; a completely
// empty input yields a single empty element, as with bytes.Split (a segment
// body is never empty once TrimSpace has passed, but a field
// body legitimately can be).
func splitByte(data []byte, sep byte) [][]byte {
	var out [][]byte
	start := 0
	for i := 0; i < len(data); i++ {
		if data[i] == sep {
			out = append(out, data[start:i])
			start = i + 1
		}
	}
	out = append(out, data[start:])
	return out
}

// All drains the tokenizer, returning every segment. Used by callers that
// do not need lazy consumption (e.g. tests, or the root Parse facade before
// it hands segments to the binder one at a time).
func All(data []byte, opts ...Option) ([]model.RawSegment, model.Delimiters, error) {
	tk, err := New(data, opts...)
	if err != nil {
		return nil, model.Delimiters{}, err
	}
	var segs []model.RawSegment
	for tk.Scan() {
		segs = append(segs, tk.Segment())
	}
	if err := tk.Err(); err != nil {
		return nil, model.Delimiters{}, err
	}
	return segs, tk.Delimiters(), nil
}
