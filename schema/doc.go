// Package schema implements the Segment Decoder (§4.C): a static,
// reflection-free table of per-segment field schemas keyed by
// (SegmentName, field index), and the Decode function that applies a
// table entry to a tokenized model.RawSegment to produce a typed
// model.Segment.
//
// Per the design notes, there is deliberately no struct-tag or reflection
// based mapping here (contrast the teacher's segments/marshal packages,
// which derive field metadata from Go struct tags at runtime). Every
// segment's shape is data: a SegmentSchema value registered once, at
// startup, into a Table.
package schema
