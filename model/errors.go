package model

import "fmt"

// Kind identifies which leaf of the error taxonomy an Error belongs to.
// The taxonomy spans four families: Structural and Envelope errors always
// abort parsing; Schema and Binding errors abort parsing only in strict
// mode and otherwise attach as diagnostics (see Severity).
type Kind string

// Structural errors: malformed framing, discovered before any loop binding
// is attempted.
const (
	KindNotX12                 Kind = "not_x12"
	KindTruncatedSegment       Kind = "truncated_segment"
	KindBadDelimiter           Kind = "bad_delimiter"
	KindUnterminatedInterchange Kind = "unterminated_interchange"
)

// Schema errors: a segment was tokenized but failed field-level decoding.
const (
	KindUnknownSegment       Kind = "unknown_segment"
	KindMissingRequiredField Kind = "missing_required_field"
	KindBadEnum              Kind = "bad_enum"
	KindBadLength            Kind = "bad_length"
	KindBadNumeric           Kind = "bad_numeric"
	KindBadDate              Kind = "bad_date"
)

// Binding errors: the loop binder could not place a decoded segment.
const (
	KindNoApplicableRule   Kind = "no_applicable_rule"
	KindUnexpectedSegment  Kind = "unexpected_segment"
	KindAmbiguousHierarchy Kind = "ambiguous_hierarchy"
)

// Envelope errors: ISA/GS/ST count or control-number mismatches discovered
// at SE/GE/IEA close.
const (
	KindCountMismatch         Kind = "count_mismatch"
	KindControlNumberMismatch Kind = "control_number_mismatch"
	KindUnknownVersion        Kind = "unknown_version"
)

// Severity distinguishes a fatal Error from a non-fatal diagnostic attached
// to the parse result.
type Severity int

const (
	// SeverityFatal aborts parsing; the partial tree is discarded.
	SeverityFatal Severity = iota
	// SeverityWarning is a non-fatal diagnostic returned in the diagnostics
	// list; it is not stored on any loop node, and parsing continues.
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "WARN"
	}
	return "FATAL"
}

// Error is the single structured error/diagnostic type shared by every
// stage of the pipeline. Every error carries its taxonomy Kind, the 1-based
// segment index (counted across the whole tokenized input, so it restarts
// at no interchange boundary), the segment name, and a
// human-readable message, per the error handling design.
type Error struct {
	Kind         Kind
	Severity     Severity
	SegmentIndex int
	SegmentName  string
	Message      string
	Cause        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Severity, e.Kind)
	if e.SegmentName != "" {
		msg = fmt.Sprintf("%s: segment %s", msg, e.SegmentName)
	}
	if e.SegmentIndex > 0 {
		msg = fmt.Sprintf("%s (#%d)", msg, e.SegmentIndex)
	}
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Fatal reports whether the error's severity aborts parsing.
func (e *Error) Fatal() bool {
	return e.Severity == SeverityFatal
}
