package serialize_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dshills/x12/bind"
	"github.com/dshills/x12/internal/fixtures"
	"github.com/dshills/x12/model"
	"github.com/dshills/x12/schema"
	"github.com/dshills/x12/serialize"
	"github.com/dshills/x12/tokenize"
	"github.com/dshills/x12/x837"
)

// decodeTransaction tokenizes data and decodes the single ST..SE span it
// contains against the 837 schema, the setup every round-trip test shares.
func decodeTransaction(t *testing.T, data []byte) ([]model.Segment, model.Delimiters) {
	t.Helper()
	raws, delims, err := tokenize.All(data)
	if err != nil {
		t.Fatalf("tokenize.All: %v", err)
	}

	table := x837.Schema()
	var txn []model.Segment
	inTxn := false
	for _, raw := range raws {
		switch raw.Name {
		case "ISA", "GS", "GE", "IEA":
			continue
		case "ST":
			inTxn = true
		}
		if !inTxn {
			continue
		}
		seg, _ := schema.Decode(raw, delims, table, schema.DecodeConfig{})
		txn = append(txn, seg)
		if raw.Name == "SE" {
			inTxn = false
		}
	}
	return txn, delims
}

func TestSerializeRoundTripsValidInterchange(t *testing.T) {
	data := fixtures.MustLoad(fixtures.FileValid837)
	txn, delims := decodeTransaction(t, data)

	binder := bind.New(x837.Rules())
	root, diags, err := binder.Bind(txn)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	for _, d := range diags {
		if d.Fatal() {
			t.Fatalf("unexpected fatal diagnostic: %v", d)
		}
	}

	ser := serialize.New(x837.Schema(), serialize.WithDelimiters(delims))
	out, err := ser.Serialize(root)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	full := string(data)
	start := strings.Index(full, "ST*837")
	end := strings.Index(full, "SE*23*0001~") + len("SE*23*0001~")
	want := strings.ReplaceAll(full[start:end], "\n", "")

	if string(out) != want {
		t.Fatalf("round trip mismatch:\n got: %q\nwant: %q", out, want)
	}
}

func TestSerializeUsesNewLinesOnEmitWithoutChangingTerminator(t *testing.T) {
	data := fixtures.MustLoad(fixtures.FileValid837)
	txn, delims := decodeTransaction(t, data)

	binder := bind.New(x837.Rules())
	root, _, err := binder.Bind(txn)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}

	ser := serialize.New(x837.Schema(), serialize.WithDelimiters(delims), serialize.WithUseNewLinesOnEmit(true))
	out, err := ser.Serialize(root)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	if !bytes.Contains(out, []byte("~\n")) {
		t.Fatalf("expected a newline after at least one segment terminator, got %q", out)
	}
	if bytes.Contains(out, []byte("~~")) {
		t.Fatalf("pretty mode must not duplicate terminators: %q", out)
	}
}

func TestSerializeHonorsOverrideDelimitersForSchemaRenderedSegments(t *testing.T) {
	data := fixtures.MustLoad(fixtures.FileValid837)
	txn, delims := decodeTransaction(t, data)

	binder := bind.New(x837.Rules())
	root, _, err := binder.Bind(txn)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}

	override := model.Delimiters{Element: '|', Component: '>', Repetition: '^', Segment: '#'}
	if override == delims {
		t.Fatal("override delimiters must differ from the parsed delimiters for this test to be meaningful")
	}

	ser := serialize.New(x837.Schema(), serialize.WithDelimiters(override))
	out, err := ser.Serialize(root)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	if bytes.ContainsRune(out, delims.Element) {
		t.Fatalf("output still contains the original element separator %q: %q", delims.Element, out)
	}
	if !bytes.ContainsRune(out, override.Element) || !bytes.ContainsRune(out, override.Segment) {
		t.Fatalf("expected output to use the override delimiters, got %q", out)
	}
	if !bytes.HasPrefix(out, []byte("ST|837|0001|005010X222A2#")) {
		t.Fatalf("expected the ST segment rendered with override delimiters, got %q", out)
	}
	if !bytes.Contains(out, []byte("SV1|HC>99213|150.00|UN|1.00|||1#")) {
		t.Fatalf("expected SV1's schema-rendered fields to use the override delimiters, got %q", out)
	}
}

func TestSerializeFallsBackToRawForUnknownSegment(t *testing.T) {
	seg := model.Segment{
		Name: "ZZZ",
		Raw: []model.RawField{
			{Repetitions: [][]string{{"unregistered"}}},
		},
	}
	root := bind.NewLoop(bind.RootID, nil)
	root.AddSegment(seg)

	ser := serialize.New(x837.Schema())
	out, err := ser.Serialize(root)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	want := "ZZZ*unregistered~"
	if string(out) != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}
