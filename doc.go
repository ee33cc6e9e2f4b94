// Package x12 is the top-level entry point for parsing and serializing X12
// 837 Professional healthcare claim interchanges (005010X222A2). It wires
// together the lower-level packages -- tokenize (segment splitting),
// schema (field decoding), bind (loop construction), envelope (interchange
// bookkeeping) and serialize (wire-format rendering) -- into the single
// Parser a caller actually uses, the same role the teacher library's
// parse.Parser plays over hl7.
//
// # Basic usage
//
//	p := x12.New()
//	doc, diags, err := p.Parse(data)
//	if err != nil {
//	    // a structural, envelope, or (strict-mode) schema or binding error
//	    // aborted the parse; doc is nil.
//	}
//	for _, d := range diags {
//	    // non-fatal diagnostics collected in lenient mode
//	}
//
// # Document shape
//
// A Document holds every Interchange (ISA...IEA) found in the input, each
// with its Groups (GS...GE) and, within those, its Transactions (ST...SE).
// A Transaction's Root is the bind.Loop tree §3 describes: a synthetic
// root with exactly {header, <top-level loop>+, footer} children, header
// carrying the triggering ST and footer the triggering SE.
//
// # Round-tripping
//
// Document.Serialize renders a parsed (or hand-built) Document back to
// wire bytes, preserving the envelope segments verbatim and rendering
// transaction content through the same schema it was decoded with.
//
// # Configuration
//
// New accepts functional options controlling strictness, pretty-printing,
// serialization delimiters, the ISA two-digit-year pivot, and the ambient
// resource limits and logger -- see options.go.
package x12
