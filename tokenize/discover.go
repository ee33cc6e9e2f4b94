package tokenize

import (
	"github.com/dshills/x12/model"
)

// Discover implements the Delimiter Discoverer (§4.A). It reads the first
// model.ISAHeaderLength bytes of an interchange and derives the delimiter
// set from their fixed offsets. The first three bytes must be the literal
// "ISA"; any discovered delimiter that is whitespace or a digit fails with
// KindBadDelimiter.
func Discover(header []byte) (model.Delimiters, error) {
	if len(header) < model.ISAHeaderLength {
		return model.Delimiters{}, &model.Error{
			Kind:     model.KindNotX12,
			Severity: model.SeverityFatal,
			Message:  "interchange is shorter than the fixed ISA header length",
		}
	}
	if string(header[:3]) != "ISA" {
		return model.Delimiters{}, &model.Error{
			Kind:     model.KindNotX12,
			Severity: model.SeverityFatal,
			Message:  "interchange does not begin with ISA",
		}
	}

	d := model.Delimiters{
		Element:    rune(header[model.ISAElementOffset]),
		Repetition: rune(header[model.ISARepetitionOffset]),
		Component:  rune(header[model.ISAComponentOffset]),
		Segment:    rune(header[model.ISATerminatorOffset]),
	}

	if err := d.Valid(); err != nil {
		return model.Delimiters{}, &model.Error{
			Kind:        model.KindBadDelimiter,
			Severity:    model.SeverityFatal,
			SegmentName: "ISA",
			Message:     err.Error(),
			Cause:       err,
		}
	}
	return d, nil
}

// IsX12Data reports whether the first three non-whitespace bytes of input
// are "ISA", per §6's external-interface detector contract.
func IsX12Data(input []byte) bool {
	i := 0
	for i < len(input) && isWhitespace(input[i]) {
		i++
	}
	return len(input)-i >= 3 && string(input[i:i+3]) == "ISA"
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
