package schema

import "github.com/dshills/x12/model"

// FieldSchema is the static, reflection-free record describing one field's
// decoding rules, keyed implicitly by its position within a SegmentSchema.
type FieldSchema struct {
	Type     model.Type
	Required bool
	MinLen   int
	MaxLen   int
	Enum     []string

	// DecimalPlaces is the fixed fractional digit count a Decimal field is
	// rendered with on serialize (§4.C). Zero means "unset", which defaults
	// to 2 via DecimalPlacesOrDefault -- it does not mean "zero digits";
	// there is no field in this schema that wants that.
	DecimalPlaces int

	// IsComponentField marks a field whose repetitions are themselves
	// composite (component-structured), such as a diagnosis code pointer.
	// When true, Components describes the per-component sub-schema applied
	// to each repetition; when false, each repetition decodes as a single
	// scalar of Type using only the first component.
	IsComponentField bool
	Components       []FieldSchema
}

// DefaultDecimalPlaces is the fractional digit count a Decimal field
// renders with when its FieldSchema leaves DecimalPlaces unset.
const DefaultDecimalPlaces = 2

// DecimalPlacesOrDefault returns fs.DecimalPlaces, or DefaultDecimalPlaces
// if it was left zero.
func (fs FieldSchema) DecimalPlacesOrDefault() int {
	if fs.DecimalPlaces == 0 {
		return DefaultDecimalPlaces
	}
	return fs.DecimalPlaces
}

// SegmentSchema describes every field of one segment type, in wire order.
type SegmentSchema struct {
	Name   string
	Fields []FieldSchema
}

// Table is the static (SegmentName -> SegmentSchema) lookup table consulted
// by Decode. It is built once at startup via Register and is read-only
// thereafter, so it may be shared freely across concurrently parsed
// interchanges (§5).
type Table map[string]SegmentSchema

// NewTable constructs an empty, mutable Table for registration.
func NewTable() Table {
	return make(Table)
}

// Register adds (or replaces) a segment's schema in the table.
func (t Table) Register(s SegmentSchema) {
	t[s.Name] = s
}

// Lookup returns the schema registered for a segment name.
func (t Table) Lookup(name string) (SegmentSchema, bool) {
	s, ok := t[name]
	return s, ok
}

// Field returns the field schema at a 1-based position, or the zero value
// and false if the segment has fewer declared fields (common for optional
// trailing fields an implementation guide does not constrain further).
func (s SegmentSchema) Field(pos int) (FieldSchema, bool) {
	if pos < 1 || pos > len(s.Fields) {
		return FieldSchema{}, false
	}
	return s.Fields[pos-1], true
}
