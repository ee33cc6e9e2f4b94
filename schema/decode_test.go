package schema_test

import (
	"testing"

	"github.com/dshills/x12/model"
	"github.com/dshills/x12/schema"
)

func field(components ...string) model.RawField {
	return model.RawField{Repetitions: [][]string{components}}
}

func TestDecodeScalarFields(t *testing.T) {
	table := schema.NewTable()
	table.Register(schema.SegmentSchema{Name: "TST", Fields: []schema.FieldSchema{
		{Type: model.TypeString, Required: true},
		{Type: model.TypeInteger},
		{Type: model.TypeDecimal},
		{Type: model.TypeDate},
		{Type: model.TypeEnum, Enum: []string{"A", "B"}},
	}})

	raw := model.RawSegment{Name: "TST", Index: 3, Fields: []model.RawField{
		field("hello"),
		field("42"),
		field("12.50"),
		field("20240115"),
		field("A"),
	}}

	seg, diags := schema.Decode(raw, model.DefaultDelimiters(), table, schema.DecodeConfig{})
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if seg.ValueAt(1) != "hello" {
		t.Fatalf("field 1 = %q", seg.ValueAt(1))
	}
	if seg.FieldAt(2).Value().Int != 42 {
		t.Fatalf("field 2 int = %d", seg.FieldAt(2).Value().Int)
	}
	if got := seg.FieldAt(3).Value().Render(-1); got != "12.50" {
		t.Fatalf("field 3 decimal = %q", got)
	}
	if y := seg.FieldAt(4).Value().Time.Year(); y != 2024 {
		t.Fatalf("field 4 year = %d", y)
	}
	if seg.ValueAt(5) != "A" {
		t.Fatalf("field 5 enum = %q", seg.ValueAt(5))
	}
}

func TestDecodeMissingRequiredField(t *testing.T) {
	table := schema.NewTable()
	table.Register(schema.SegmentSchema{Name: "TST", Fields: []schema.FieldSchema{
		{Type: model.TypeString, Required: true},
	}})

	raw := model.RawSegment{Name: "TST", Index: 1}
	_, diags := schema.Decode(raw, model.DefaultDelimiters(), table, schema.DecodeConfig{})
	if len(diags) != 1 || diags[0].Kind != model.KindMissingRequiredField {
		t.Fatalf("expected one missing_required_field diagnostic, got %v", diags)
	}
}

func TestDecodeUnknownSegmentFallsBackToRaw(t *testing.T) {
	table := schema.NewTable()
	raw := model.RawSegment{Name: "ZZZ", Index: 1, Fields: []model.RawField{field("x")}}
	seg, diags := schema.Decode(raw, model.DefaultDelimiters(), table, schema.DecodeConfig{})
	if len(diags) != 1 || diags[0].Kind != model.KindUnknownSegment {
		t.Fatalf("expected one unknown_segment diagnostic, got %v", diags)
	}
	if len(seg.Fields) != 0 {
		t.Fatalf("expected no decoded fields for an unknown segment, got %v", seg.Fields)
	}
	if seg.RawFieldAt(1).Raw() != "x" {
		t.Fatalf("raw fallback lost data: %q", seg.RawFieldAt(1).Raw())
	}
}

func TestDecodeCompositeField(t *testing.T) {
	table := schema.NewTable()
	table.Register(schema.SegmentSchema{Name: "TST", Fields: []schema.FieldSchema{
		{IsComponentField: true, Components: []schema.FieldSchema{
			{Type: model.TypeString}, {Type: model.TypeString},
		}},
	}})

	raw := model.RawSegment{Name: "TST", Index: 1, Fields: []model.RawField{
		{Repetitions: [][]string{{"11", "B", "1"}}},
	}}
	seg, _ := schema.Decode(raw, model.DefaultDelimiters(), table, schema.DecodeConfig{})
	v := seg.FieldAt(1).Value()
	if v.Type != model.TypeComposite || len(v.Components) != 3 {
		t.Fatalf("expected a 3-component composite, got %+v", v)
	}
	if v.Components[0].Str != "11" || v.Components[2].Str != "1" {
		t.Fatalf("unexpected components: %+v", v.Components)
	}
}

func TestDecodeDateSixDigitPivot(t *testing.T) {
	tm, err := schema.DecodeDate("240101", 50)
	if err != nil {
		t.Fatalf("DecodeDate: %v", err)
	}
	if tm.Year() != 2024 {
		t.Fatalf("year = %d, want 2024", tm.Year())
	}

	tm, err = schema.DecodeDate("990101", 50)
	if err != nil {
		t.Fatalf("DecodeDate: %v", err)
	}
	if tm.Year() != 1999 {
		t.Fatalf("year = %d, want 1999", tm.Year())
	}
}

func TestDecodeDateTimeRequires12Digits(t *testing.T) {
	if _, err := schema.DecodeDateTime("2024011512"); err == nil {
		t.Fatal("expected an error for a 10-digit datetime")
	}
	tm, err := schema.DecodeDateTime("202401151230")
	if err != nil {
		t.Fatalf("DecodeDateTime: %v", err)
	}
	if tm.Hour() != 12 || tm.Minute() != 30 {
		t.Fatalf("unexpected time: %v", tm)
	}
}

func TestDecodeTimeStringAccepts4Or6Digits(t *testing.T) {
	if _, err := schema.DecodeTimeString("1230"); err != nil {
		t.Fatalf("4-digit time rejected: %v", err)
	}
	if _, err := schema.DecodeTimeString("123045"); err != nil {
		t.Fatalf("6-digit time rejected: %v", err)
	}
	if _, err := schema.DecodeTimeString("123"); err == nil {
		t.Fatal("expected an error for a 3-digit time")
	}
}
