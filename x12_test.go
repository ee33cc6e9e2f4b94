package x12_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/dshills/x12"
	"github.com/dshills/x12/internal/fixtures"
	"github.com/dshills/x12/model"
)

func TestParseBuildsDocumentShape(t *testing.T) {
	data := fixtures.MustLoad(fixtures.FileValid837)

	p := x12.New()
	doc, diags, err := p.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	if len(doc.Interchanges) != 1 {
		t.Fatalf("expected 1 interchange, got %d", len(doc.Interchanges))
	}
	ic := doc.Interchanges[0]
	if ic.Header.Name != "ISA" || ic.Trailer.Name != "IEA" {
		t.Fatalf("unexpected interchange envelope: %+v", ic)
	}
	if len(ic.Groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(ic.Groups))
	}
	g := ic.Groups[0]
	if g.Header.Name != "GS" || g.Trailer.Name != "GE" {
		t.Fatalf("unexpected group envelope: %+v", g)
	}
	if len(g.Transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(g.Transactions))
	}

	txn := g.Transactions[0]
	if len(txn.Diagnostics) != 0 {
		t.Fatalf("unexpected transaction diagnostics: %v", txn.Diagnostics)
	}
	first, ok := txn.Root.Children[0].FirstSegment()
	if !ok || first.Name != "ST" {
		t.Fatalf("expected the header loop's first segment to be ST, got %v", first)
	}
}

func TestParseRoundTripsThroughSerialize(t *testing.T) {
	data := fixtures.MustLoad(fixtures.FileValid837)

	p := x12.New()
	doc, _, err := p.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	out, err := doc.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	want := bytes.ReplaceAll(data, []byte("\n"), nil)
	if !bytes.Equal(want, out) {
		t.Fatalf("round trip mismatch:\n got: %s\nwant: %s", out, want)
	}
}

func TestParseRoundTripsCustomDelimiters(t *testing.T) {
	data := fixtures.MustLoad(fixtures.FileCustomDelimiters837)

	p := x12.New()
	doc, diags, err := p.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	out, err := doc.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	want := bytes.ReplaceAll(data, []byte("\n"), nil)
	if !bytes.Equal(want, out) {
		t.Fatalf("round trip mismatch:\n got: %s\nwant: %s", out, want)
	}
}

func TestParseSerializesWithOverrideDelimiters(t *testing.T) {
	data := fixtures.MustLoad(fixtures.FileValid837)

	p := x12.New()
	doc, _, err := p.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	override := model.Delimiters{Element: '|', Component: '>', Repetition: '^', Segment: '#'}
	out, err := doc.Serialize(x12.WithCustomDelimiters(override))
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	if bytes.ContainsRune(out, '*') || bytes.ContainsRune(out, '~') {
		t.Fatalf("expected no trace of the originally-parsed delimiters, got: %s", out)
	}
	if !bytes.HasPrefix(out, []byte("ISA|00|")) {
		t.Fatalf("expected the envelope to use the override delimiters, got: %s", out)
	}
	if !bytes.Contains(out, []byte("SV1|HC>99213|150.00|UN|1.00|||1#")) {
		t.Fatalf("expected the schema-rendered SV1 content segment to use the override delimiters, got: %s", out)
	}
}

func TestParseCatchesEnvelopeCountMismatch(t *testing.T) {
	data := fixtures.MustLoad(fixtures.FileCountMismatch837)

	p := x12.New()
	doc, diags, err := p.Parse(data)
	if err == nil {
		t.Fatal("expected the count mismatch to abort parsing")
	}
	if doc != nil {
		t.Fatal("expected a nil document on envelope failure")
	}
	if len(diags) == 0 {
		t.Fatal("expected at least one diagnostic")
	}
}

func TestParseUsesNewLinesOnEmitWithoutChangingTerminator(t *testing.T) {
	data := fixtures.MustLoad(fixtures.FileValid837)

	p := x12.New()
	doc, _, err := p.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	out, err := doc.Serialize(x12.WithUseNewLinesOnEmit(true))
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if !bytes.Contains(out, []byte("~\n")) {
		t.Fatalf("expected newline-separated segments, got: %s", out)
	}
	if bytes.Contains(out, []byte("~~")) {
		t.Fatalf("terminator should not double up: %s", out)
	}
}

func TestIsX12DataDetectsHeader(t *testing.T) {
	data := fixtures.MustLoad(fixtures.FileValid837)
	if !x12.IsX12Data(data) {
		t.Fatal("expected valid_837.x12 to be detected as X12 data")
	}
	if x12.IsX12Data([]byte("not x12 at all")) {
		t.Fatal("expected non-X12 input to be rejected")
	}
}

func TestParseContextRespectsCancellation(t *testing.T) {
	data := fixtures.MustLoad(fixtures.FileValid837)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := x12.New()
	_, _, err := p.ParseContext(ctx, data)
	if err == nil {
		t.Fatal("expected a canceled context to abort ParseContext")
	}
}
