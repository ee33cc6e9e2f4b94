package envelope_test

import (
	"testing"

	"github.com/dshills/x12/envelope"
	"github.com/dshills/x12/internal/fixtures"
	"github.com/dshills/x12/model"
	"github.com/dshills/x12/schema"
	"github.com/dshills/x12/tokenize"
)

// decodeAll tokenizes an interchange and wraps every raw segment as a
// model.Segment, using an empty schema table: Validate only ever reads
// envelope segments by their raw wire fields, so no x837 schema is needed.
func decodeAll(t *testing.T, data []byte) []model.Segment {
	t.Helper()
	raws, delims, err := tokenize.All(data)
	if err != nil {
		t.Fatalf("tokenize.All: %v", err)
	}
	table := schema.NewTable()
	segs := make([]model.Segment, len(raws))
	for i, raw := range raws {
		seg, _ := schema.Decode(raw, delims, table, schema.DecodeConfig{})
		segs[i] = seg
	}
	return segs
}

func TestValidateAcceptsWellFormedInterchange(t *testing.T) {
	segs := decodeAll(t, fixtures.MustLoad(fixtures.FileValid837))
	if diags := envelope.Validate(segs); len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
}

func TestValidateCatchesCountMismatch(t *testing.T) {
	segs := decodeAll(t, fixtures.MustLoad(fixtures.FileCountMismatch837))
	diags := envelope.Validate(segs)
	if len(diags) == 0 {
		t.Fatal("expected at least one diagnostic")
	}
	found := false
	for _, d := range diags {
		if d.Kind == model.KindCountMismatch && d.SegmentName == "SE" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an SE count_mismatch diagnostic, got %v", diags)
	}
}

func TestValidateAcceptsCustomDelimiters(t *testing.T) {
	segs := decodeAll(t, fixtures.MustLoad(fixtures.FileCustomDelimiters837))
	if diags := envelope.Validate(segs); len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
}

func TestValidateCatchesControlNumberMismatch(t *testing.T) {
	raws, delims, err := tokenize.All(fixtures.MustLoad(fixtures.FileValid837))
	if err != nil {
		t.Fatalf("tokenize.All: %v", err)
	}
	table := schema.NewTable()
	segs := make([]model.Segment, len(raws))
	for i, raw := range raws {
		if raw.Name == "IEA" {
			raw.Fields[1] = model.RawField{Repetitions: [][]string{{"999999999"}}}
		}
		seg, _ := schema.Decode(raw, delims, table, schema.DecodeConfig{})
		segs[i] = seg
	}

	diags := envelope.Validate(segs)
	found := false
	for _, d := range diags {
		if d.Kind == model.KindControlNumberMismatch && d.SegmentName == "IEA" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an IEA control_number_mismatch diagnostic, got %v", diags)
	}
}

func TestValidateCatchesUnknownVersion(t *testing.T) {
	raws, delims, err := tokenize.All(fixtures.MustLoad(fixtures.FileValid837))
	if err != nil {
		t.Fatalf("tokenize.All: %v", err)
	}
	table := schema.NewTable()
	segs := make([]model.Segment, len(raws))
	for i, raw := range raws {
		if raw.Name == "ST" {
			raw.Fields[2] = model.RawField{Repetitions: [][]string{{"009999X999"}}}
		}
		seg, _ := schema.Decode(raw, delims, table, schema.DecodeConfig{})
		segs[i] = seg
	}

	diags := envelope.Validate(segs)
	found := false
	for _, d := range diags {
		if d.Kind == model.KindUnknownVersion {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an unknown_version diagnostic, got %v", diags)
	}
}
