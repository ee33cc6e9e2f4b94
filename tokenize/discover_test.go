package tokenize_test

import (
	"testing"

	"github.com/dshills/x12/model"
	"github.com/dshills/x12/tokenize"
)

const sampleISA = "ISA*00*          *00*          *ZZ*SENDER         *ZZ*RECEIVER       *240101*1200*^*00501*000000001*0*T*:~"

func TestDiscoverDefaultDelimiters(t *testing.T) {
	d, err := tokenize.Discover([]byte(sampleISA))
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	want := model.DefaultDelimiters()
	if d != want {
		t.Fatalf("got %+v, want %+v", d, want)
	}
}

func TestDiscoverCustomDelimiters(t *testing.T) {
	custom := "ISA|00|          |00|          |ZZ|SENDER         |ZZ|RECEIVER       |240101|1200|~|00501|000000001|0|T|>#"
	d, err := tokenize.Discover([]byte(custom))
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	want := model.Delimiters{Element: '|', Repetition: '~', Component: '>', Segment: '#'}
	if d != want {
		t.Fatalf("got %+v, want %+v", d, want)
	}
}

func TestDiscoverRejectsNonISAPrefix(t *testing.T) {
	_, err := tokenize.Discover([]byte("GSH*00*..."))
	if err == nil {
		t.Fatal("expected an error for input not starting with ISA")
	}
	xerr, ok := err.(*model.Error)
	if !ok || xerr.Kind != model.KindNotX12 {
		t.Fatalf("expected a not_x12 error, got %v", err)
	}
}

func TestDiscoverRejectsShortHeader(t *testing.T) {
	_, err := tokenize.Discover([]byte("ISA*00*"))
	if err == nil {
		t.Fatal("expected an error for a truncated ISA header")
	}
}

func TestDiscoverRejectsWhitespaceDelimiter(t *testing.T) {
	bad := []byte(sampleISA)
	bad[model.ISAElementOffset] = ' '
	_, err := tokenize.Discover(bad)
	if err == nil {
		t.Fatal("expected an error for a whitespace element separator")
	}
	xerr, ok := err.(*model.Error)
	if !ok || xerr.Kind != model.KindBadDelimiter {
		t.Fatalf("expected a bad_delimiter error, got %v", err)
	}
}

func TestIsX12Data(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{sampleISA, true},
		{"   \n" + sampleISA, true},
		{"GS*HC*...", false},
		{"", false},
		{"IS", false},
	}
	for _, c := range cases {
		if got := tokenize.IsX12Data([]byte(c.in)); got != c.want {
			t.Errorf("IsX12Data(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
