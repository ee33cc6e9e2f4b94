// Package fixtures provides embedded sample X12 837 interchanges for tests
// throughout the module, the X12 analogue of the teacher library's embedded
// .hl7 message fixtures.
package fixtures

import "embed"

//go:embed *.x12
var FS embed.FS

// Fixture file names.
const (
	// FileValid837 is a well-formed single-claim 837P interchange: one
	// billing provider, one subscriber acting as her own patient, one
	// claim, one service line.
	FileValid837 = "valid_837.x12"

	// FileCountMismatch837 is a shorter single-claim 837P interchange whose
	// SE01 segment count is deliberately wrong, for envelope CountMismatch
	// tests (§8 S5).
	FileCountMismatch837 = "count_mismatch_837.x12"

	// FileCustomDelimiters837 is a minimal interchange using non-default
	// delimiters (element |, component >, repetition ~, terminator #),
	// for delimiter discovery round-trip tests (§8 S6).
	FileCustomDelimiters837 = "custom_delimiters_837.x12"
)

// Load reads an embedded fixture file by name.
func Load(name string) ([]byte, error) {
	return FS.ReadFile(name)
}

// MustLoad reads an embedded fixture file, panicking on error. Intended for
// test setup where a missing fixture is a programming error.
func MustLoad(name string) []byte {
	data, err := Load(name)
	if err != nil {
		panic(err)
	}
	return data
}
