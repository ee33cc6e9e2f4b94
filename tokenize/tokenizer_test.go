package tokenize_test

import (
	"testing"

	"github.com/dshills/x12/model"
	"github.com/dshills/x12/tokenize"
)

func sampleInterchange() string {
	return sampleISA +
		"GS*HC*SENDER*RECEIVER*20240101*1200*1*X*005010X222A2~" +
		"ST*837*0001~" +
		"NM1*85*2*Acme Clinic*****XX*1999999999~" +
		"SE*3*0001~" +
		"GE*1*1~" +
		"IEA*1*000000001~"
}

func TestAllSplitsSegmentsAndFields(t *testing.T) {
	segs, delims, err := tokenize.All([]byte(sampleInterchange()))
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if delims != model.DefaultDelimiters() {
		t.Fatalf("unexpected delimiters: %+v", delims)
	}
	if len(segs) != 7 {
		t.Fatalf("expected 7 segments, got %d: %v", len(segs), segs)
	}

	names := make([]string, len(segs))
	for i, s := range segs {
		names[i] = s.Name
	}
	want := []string{"ISA", "GS", "ST", "NM1", "SE", "GE", "IEA"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("segment %d: got %s, want %s", i, names[i], want[i])
		}
	}

	nm1 := segs[3]
	if len(nm1.Fields) != 9 {
		t.Fatalf("NM1 expected 9 fields, got %d: %v", len(nm1.Fields), nm1.Fields)
	}
	if nm1.Fields[0].Repetitions[0][0] != "85" {
		t.Fatalf("NM1 field 1 = %v", nm1.Fields[0])
	}
	if nm1.Index != 4 {
		t.Fatalf("NM1 should be the 4th segment (1-based), got index %d", nm1.Index)
	}
}

func TestAllSplitsRepetitionsAndComponents(t *testing.T) {
	data := sampleISA +
		"GS*HC*SENDER*RECEIVER*20240101*1200*1*X*005010X222A2~" +
		"ST*837*0001~" +
		"HI*ABK:R51^ABF:R52~" +
		"SE*3*0001~" +
		"GE*1*1~" +
		"IEA*1*000000001~"

	segs, _, err := tokenize.All([]byte(data))
	if err != nil {
		t.Fatalf("All: %v", err)
	}

	var hi model.RawSegment
	for _, s := range segs {
		if s.Name == "HI" {
			hi = s
		}
	}
	if len(hi.Fields) != 1 {
		t.Fatalf("expected 1 HI field, got %d", len(hi.Fields))
	}
	reps := hi.Fields[0].Repetitions
	if len(reps) != 2 {
		t.Fatalf("expected 2 repetitions, got %d: %v", len(reps), reps)
	}
	if len(reps[0]) != 2 || reps[0][0] != "ABK" || reps[0][1] != "R51" {
		t.Fatalf("first repetition components = %v", reps[0])
	}
	if len(reps[1]) != 2 || reps[1][0] != "ABF" || reps[1][1] != "R52" {
		t.Fatalf("second repetition components = %v", reps[1])
	}
}

func TestAllFailsOnUnterminatedSegment(t *testing.T) {
	data := sampleISA + "GS*HC*SENDER*RECEIVER*20240101*1200*1*X*005010X222A2" // no terminator, no trailing whitespace
	_, _, err := tokenize.All([]byte(data))
	if err == nil {
		t.Fatal("expected an error for an unterminated trailing segment")
	}
	xerr, ok := err.(*model.Error)
	if !ok || xerr.Kind != model.KindTruncatedSegment {
		t.Fatalf("expected a truncated_segment error, got %v", err)
	}
}

func TestAllIgnoresWhitespaceBetweenSegments(t *testing.T) {
	data := sampleISA + "\r\n" +
		"GS*HC*SENDER*RECEIVER*20240101*1200*1*X*005010X222A2~\n" +
		"ST*837*0001~\n" +
		"SE*2*0001~\n" +
		"GE*1*1~\n" +
		"IEA*1*000000001~\n"

	segs, _, err := tokenize.All([]byte(data))
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(segs) != 6 {
		t.Fatalf("expected 6 segments, got %d: %v", len(segs), segs)
	}
}

func TestAllRespectsMaxSegments(t *testing.T) {
	data := sampleISA +
		"GS*HC*SENDER*RECEIVER*20240101*1200*1*X*005010X222A2~" +
		"ST*837*0001~" +
		"NM1*85~" +
		"SE*3*0001~" +
		"GE*1*1~" +
		"IEA*1*000000001~"

	_, _, err := tokenize.All([]byte(data), tokenize.WithMaxSegments(3))
	if err == nil {
		t.Fatal("expected an error once the segment count exceeds the configured limit")
	}
}
