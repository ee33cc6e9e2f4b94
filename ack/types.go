package ack

// Code is a transaction-set-level acknowledgment code, placed in IK5-01 and
// rolled up into AK9-01 for the functional group as a whole.
type Code string

// Standard X12 999 acknowledgment codes.
const (
	// Accepted indicates the transaction set was received and accepted
	// with no errors.
	Accepted Code = "A"

	// PartiallyAccepted indicates some, but not all, of a repeated
	// construct (e.g. one of several claims) was accepted.
	PartiallyAccepted Code = "P"

	// AcceptedWithErrors indicates the transaction set was accepted but
	// one or more non-fatal diagnostics were recorded against it.
	AcceptedWithErrors Code = "E"

	// Rejected indicates the transaction set failed validation and was
	// not accepted for processing.
	Rejected Code = "R"
)

// IsValid reports whether c is one of the standard 999 codes.
func (c Code) IsValid() bool {
	switch c {
	case Accepted, PartiallyAccepted, AcceptedWithErrors, Rejected:
		return true
	default:
		return false
	}
}

// IsAccept reports whether c represents some degree of acceptance.
func (c Code) IsAccept() bool {
	return c == Accepted || c == PartiallyAccepted || c == AcceptedWithErrors
}

// SegmentError is one IK3 (and, for field-level detail, IK4) entry
// describing why a segment within a transaction set could not be
// processed -- the 999 equivalent of the teacher's HL7 ERR segment detail.
type SegmentError struct {
	// SegmentName is the segment in error (IK3-01).
	SegmentName string
	// Position is the segment's 1-based position within the transaction
	// set (IK3-02).
	Position int
	// LoopID is the loop the segment occupies, if known (IK3-03).
	LoopID string
	// SyntaxErrorCode is the implementation-specific syntax error code
	// (IK3-04).
	SyntaxErrorCode string

	// FieldPosition is the 1-based element position in error, if this
	// error is field-level (IK4-01). Zero means segment-level only.
	FieldPosition int
	// FieldSyntaxErrorCode is the field-level syntax error code (IK4-03).
	FieldSyntaxErrorCode string
	// BadValue is the offending value, if known (IK4-04).
	BadValue string
}

// TransactionResult is the acknowledgment data for one transaction set
// within the functional group, the 999 analogue of the teacher's ACK
// struct.
type TransactionResult struct {
	// TransactionSetIDCode is the acknowledged transaction set's
	// identifier code (AK2-01), e.g. "837".
	TransactionSetIDCode string
	// ControlNumber is the acknowledged transaction set's control number
	// (AK2-02), matching its ST02/SE02.
	ControlNumber string
	// Code is the transaction-set-level acknowledgment code (IK5-01).
	Code Code
	// Errors lists the segment/field diagnostics to report via IK3/IK4,
	// present when Code is not Accepted.
	Errors []SegmentError
}

// HasErrors reports whether the result carries segment or field
// diagnostics.
func (r TransactionResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// NewAccepted creates a TransactionResult accepting a transaction set
// outright.
func NewAccepted(idCode, controlNumber string) TransactionResult {
	return TransactionResult{TransactionSetIDCode: idCode, ControlNumber: controlNumber, Code: Accepted}
}

// NewRejected creates a TransactionResult rejecting a transaction set, with
// the given segment errors attached.
func NewRejected(idCode, controlNumber string, errs ...SegmentError) TransactionResult {
	return TransactionResult{TransactionSetIDCode: idCode, ControlNumber: controlNumber, Code: Rejected, Errors: errs}
}
