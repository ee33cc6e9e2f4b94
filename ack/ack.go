package ack

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/dshills/x12/model"
)

// Errors returned by the 999 builder.
var (
	// ErrNoTransactions indicates Custom was called with no transaction
	// results to acknowledge.
	ErrNoTransactions = errors.New("ack: at least one transaction result is required")

	// ErrInvalidCode indicates a TransactionResult carried a code outside
	// the standard A/P/E/R set.
	ErrInvalidCode = errors.New("ack: invalid acknowledgment code")
)

// Builder creates X12 999 Implementation Acknowledgment segment streams for
// a functional group's transaction sets. It mirrors the teacher library's
// ACK Builder shape -- Accept/Reject/Custom entry points over functional
// options -- retargeted at 999 segments instead of HL7's MSH/MSA/ERR.
type Builder interface {
	// Accept builds a 999 reporting every given transaction set under its
	// own Code, normally Accepted.
	Accept(functionalIDCode, groupControlNumber string, transactions ...TransactionResult) ([]model.Segment, error)

	// Reject builds a 999 reporting the given (already-judged) transaction
	// results, which may mix accepted and rejected entries.
	Reject(functionalIDCode, groupControlNumber string, transactions ...TransactionResult) ([]model.Segment, error)

	// FromDiagnostics builds a 999 for a single transaction set, deriving
	// its acknowledgment code and IK3 detail (no IK4) from the diagnostics a
	// schema.Decode or bind.Bind call returned: any fatal diagnostic
	// rejects the transaction set, any non-fatal diagnostic downgrades an
	// otherwise-clean acceptance to accepted-with-errors.
	FromDiagnostics(functionalIDCode, groupControlNumber, transactionSetIDCode, transactionControlNumber string, diags []*model.Error) ([]model.Segment, error)

	// Custom builds a 999 from fully-specified transaction results.
	Custom(functionalIDCode, groupControlNumber string, transactions []TransactionResult) ([]model.Segment, error)
}

// builder is the concrete implementation of Builder.
type builder struct {
	// controlIDFunc generates the 999's own ST02/SE02 control number.
	controlIDFunc func() string
	delims        model.Delimiters
}

// Option configures a Builder.
type Option func(*builder)

// WithControlIDFunc sets a custom control-number generator, for tests that
// need deterministic output.
func WithControlIDFunc(fn func() string) Option {
	return func(b *builder) { b.controlIDFunc = fn }
}

// WithDelimiters sets the delimiters the built segments carry, normally the
// delimiters discovered from the interchange being acknowledged.
func WithDelimiters(d model.Delimiters) Option {
	return func(b *builder) { b.delims = d }
}

// NewBuilder creates a 999 Builder with the given options.
func NewBuilder(opts ...Option) Builder {
	b := &builder{
		controlIDFunc: uuid.NewString,
		delims:        model.DefaultDelimiters(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *builder) Accept(functionalIDCode, groupControlNumber string, transactions ...TransactionResult) ([]model.Segment, error) {
	return b.Custom(functionalIDCode, groupControlNumber, transactions)
}

func (b *builder) Reject(functionalIDCode, groupControlNumber string, transactions ...TransactionResult) ([]model.Segment, error) {
	return b.Custom(functionalIDCode, groupControlNumber, transactions)
}

func (b *builder) FromDiagnostics(functionalIDCode, groupControlNumber, transactionSetIDCode, transactionControlNumber string, diags []*model.Error) ([]model.Segment, error) {
	result := TransactionResult{
		TransactionSetIDCode: transactionSetIDCode,
		ControlNumber:        transactionControlNumber,
		Code:                 Accepted,
	}

	for _, d := range diags {
		if d.Fatal() {
			result.Code = Rejected
		} else if result.Code == Accepted {
			result.Code = AcceptedWithErrors
		}
		result.Errors = append(result.Errors, SegmentError{
			SegmentName:     d.SegmentName,
			Position:        d.SegmentIndex,
			SyntaxErrorCode: string(d.Kind),
		})
	}

	return b.Custom(functionalIDCode, groupControlNumber, []TransactionResult{result})
}

func (b *builder) Custom(functionalIDCode, groupControlNumber string, transactions []TransactionResult) ([]model.Segment, error) {
	if len(transactions) == 0 {
		return nil, ErrNoTransactions
	}
	for _, t := range transactions {
		if !t.Code.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCode, t.Code)
		}
	}

	controlNumber := b.controlIDFunc()
	if len(controlNumber) > 9 {
		controlNumber = controlNumber[:9]
	}

	var segs []model.Segment
	idx := 0
	add := func(name string, vals ...string) {
		idx++
		segs = append(segs, rawSegment(name, idx, b.delims, vals...))
	}

	add("ST", "999", controlNumber)
	add("AK1", functionalIDCode, groupControlNumber)

	accepted := 0
	for _, t := range transactions {
		add("AK2", t.TransactionSetIDCode, t.ControlNumber)
		for _, e := range t.Errors {
			add("IK3", e.SegmentName, strconv.Itoa(e.Position), e.LoopID, e.SyntaxErrorCode)
			if e.FieldPosition > 0 {
				add("IK4", strconv.Itoa(e.FieldPosition), "", e.FieldSyntaxErrorCode, e.BadValue)
			}
		}
		add("IK5", string(t.Code))
		if t.Code.IsAccept() {
			accepted++
		}
	}

	groupCode := Accepted
	switch {
	case accepted == 0:
		groupCode = Rejected
	case accepted < len(transactions):
		groupCode = PartiallyAccepted
	}
	add("AK9", string(groupCode), strconv.Itoa(len(transactions)), strconv.Itoa(len(transactions)), strconv.Itoa(accepted))

	// SE01 counts every segment from ST through SE inclusive.
	add("SE", strconv.Itoa(idx+1), controlNumber)

	return segs, nil
}

func rawSegment(name string, index int, delims model.Delimiters, vals ...string) model.Segment {
	fields := make([]model.RawField, len(vals))
	for i, v := range vals {
		fields[i] = model.RawField{Repetitions: [][]string{{v}}}
	}
	return model.Segment{Name: name, Index: index, Delims: delims, Raw: fields}
}
