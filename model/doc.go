// Package model defines the core data types shared by every stage of X12
// processing: the delimiter set discovered from an interchange's ISA header,
// the raw (untyped) segment/field/component/repetition structure produced by
// tokenization, the typed Value produced by schema decoding, and the error
// taxonomy carried by every stage.
//
// # Structure
//
// X12 interchanges are hierarchical at the wire level before any loop
// structure is imposed on them:
//
//	Interchange contains Segments
//	Segment contains Fields
//	Field contains Repetitions (separated by the repetition separator)
//	Repetition contains Components (separated by the component separator)
//
// A Field with a single repetition and a single component is the common
// case: a plain scalar value such as a claim control number or an entity
// identifier code.
//
// # Delimiters
//
// X12 messages declare their own delimiters in the ISA header rather than
// using a fixed default, unlike HL7's MSH-1/MSH-2. The default delimiter set
// (element `*`, component `:`, repetition `^`, segment `~`) is only a
// fallback for callers constructing a Segment programmatically; wire input
// always carries its own discovered Delimiters.
package model
