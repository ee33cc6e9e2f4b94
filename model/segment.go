package model

import "strings"

// RawField is the untyped, wire-level shape of a single field as produced
// by the Segment Tokenizer (§4.B): an ordered list of repetitions, each
// itself an ordered list of component scalar strings. The common case is a
// single repetition with a single component.
type RawField struct {
	Repetitions [][]string
}

// Raw returns the first component of the first repetition, the shortcut
// used by the overwhelming majority of X12 fields that are neither
// repeated nor composite.
func (f RawField) Raw() string {
	if len(f.Repetitions) == 0 || len(f.Repetitions[0]) == 0 {
		return ""
	}
	return f.Repetitions[0][0]
}

// Empty reports whether the field has no non-empty content.
func (f RawField) Empty() bool {
	for _, rep := range f.Repetitions {
		for _, c := range rep {
			if c != "" {
				return false
			}
		}
	}
	return true
}

// Field is a decoded field: the typed Value(s) produced by schema decoding,
// one per repetition. Repetitions has length 1 for the common scalar case.
type Field struct {
	Repetitions []Value
}

// Value returns the first decoded repetition, or a null Value if the field
// was not decoded (e.g. an unknown segment retained only in raw form).
func (f Field) Value() Value {
	if len(f.Repetitions) == 0 {
		return NullValue()
	}
	return f.Repetitions[0]
}

// RawSegment is the tokenizer's output: a segment name plus its ordered raw
// fields, before any schema has been applied.
type RawSegment struct {
	Name   string
	Fields []RawField
	Index  int // 1-based position within the whole tokenized input
}

// Segment is a fully decoded segment: the canonical type consumed by the
// loop binder, serializer, and envelope validator. It retains both the raw
// wire fields (for segments with no schema entry, and as a round-trip
// fallback) and the decoded Fields produced by schema.Decode.
type Segment struct {
	Name   string
	Index  int
	Delims Delimiters
	Raw    []RawField
	Fields []Field
}

// RawFieldAt returns the raw field at the given 1-based position, or an
// empty RawField if the segment has fewer fields.
func (s Segment) RawFieldAt(pos int) RawField {
	if pos < 1 || pos > len(s.Raw) {
		return RawField{}
	}
	return s.Raw[pos-1]
}

// FieldAt returns the decoded field at the given 1-based position.
func (s Segment) FieldAt(pos int) Field {
	if pos < 1 || pos > len(s.Fields) {
		return Field{}
	}
	return s.Fields[pos-1]
}

// ValueAt is a convenience shortcut for FieldAt(pos).Value().Str, the
// common case of reading a scalar string qualifier used by loop-start
// predicates.
func (s Segment) ValueAt(pos int) string {
	return s.FieldAt(pos).Value().Str
}

// Bytes renders the segment using its raw fields, joining components by the
// component separator and repetitions by the repetition separator, and
// stripping trailing empty raw fields. This is the fallback renderer used
// for segments without a registered schema; the schema-aware renderer for
// decoded fields lives in package serialize.
func (s Segment) Bytes(delims Delimiters) []byte {
	var b strings.Builder
	b.WriteString(s.Name)

	fields := make([]string, len(s.Raw))
	for i, f := range s.Raw {
		reps := make([]string, len(f.Repetitions))
		for j, rep := range f.Repetitions {
			reps[j] = strings.Join(rep, string(delims.Component))
		}
		fields[i] = strings.Join(reps, string(delims.Repetition))
	}

	last := len(fields)
	for last > 0 && fields[last-1] == "" {
		last--
	}
	fields = fields[:last]

	for _, f := range fields {
		b.WriteRune(delims.Element)
		b.WriteString(f)
	}
	b.WriteRune(delims.Segment)
	return []byte(b.String())
}

// String renders the segment using its own delimiters.
func (s Segment) String() string {
	return string(s.Bytes(s.Delims))
}
