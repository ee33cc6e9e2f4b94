package x12

import (
	"github.com/dshills/x12/bind"
	"github.com/dshills/x12/model"
)

// Document is the parsed result of one Parse call: every interchange found
// in the input, in document order (§6's Glossary: Interchange / Functional
// group / Transaction set).
type Document struct {
	Interchanges []Interchange
}

// Interchange is one ISA...IEA envelope. Header and Trailer are the raw
// ISA/IEA segments themselves -- there is no content schema for them
// (§4.G), so they carry only their wire fields.
type Interchange struct {
	Header     model.Segment
	Trailer    model.Segment
	Delimiters model.Delimiters
	Groups     []Group
}

// Group is one GS...GE functional group within an interchange.
type Group struct {
	Header       model.Segment
	Trailer      model.Segment
	Transactions []Transaction
}

// Transaction is one ST...SE transaction set. Root is the bound document
// tree (§3): its header and footer children already carry the triggering
// ST and SE segments, so Transaction does not duplicate them. Diagnostics
// collects every non-fatal schema and binding diagnostic raised while
// decoding and binding this transaction's segments.
type Transaction struct {
	Root        *bind.Loop
	Diagnostics []*model.Error
}
