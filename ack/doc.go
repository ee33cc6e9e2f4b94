// Package ack builds X12 999 Implementation Acknowledgment transactions in
// response to a parsed 837 functional group, adapted from the teacher
// library's HL7 ACK builder: the same Builder/functional-options shape, the
// same accept/reject/custom entry points, retargeted at AK1/AK2/IK3/IK4/
// IK5/AK9 instead of MSH/MSA/ERR.
//
// # Basic usage
//
//	b := ack.NewBuilder()
//	result := ack.TransactionResult{
//	    TransactionSetIDCode: "837",
//	    ControlNumber:        "0001",
//	    Code:                 ack.Accepted,
//	}
//	segs, err := b.Accept("HC", "000000001", result)
//
// # Reporting diagnostics
//
// FromDiagnostics turns the []*model.Error a Decode or Bind call returned
// into IK3 segment error detail (it derives no IK4 field detail), and
// picks the transaction-set acknowledgment code (accepted, accepted with
// errors, rejected) from the diagnostics' severities.
//
//	segs, err := b.FromDiagnostics("HC", "000000001", "837", "0001", diags)
package ack
