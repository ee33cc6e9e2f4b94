// Package x837 is the concrete Rule Registry (§4.E) and segment schema
// table (§4.C) for the 837 Professional 005010X222A2 implementation guide.
// It is the authoring unit the Loop Binder (package bind) interprets: a
// static, ordered table of loop-start rules translated one-for-one from
// the reference implementation's @match-decorated loop functions, plus the
// static field schemas those rules' qualifier predicates read from.
//
// Loop ids follow the reference implementation's naming (loop_2300,
// loop_2010ba, ...) so a reader already familiar with the 837 guide's loop
// numbering recognizes them immediately.
package x837
