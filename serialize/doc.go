// Package serialize renders a bound document tree (§3) back to X12 wire
// form, the inverse of tokenize and schema.Decode (§4.F). It walks a
// bind.Loop in document order, emitting each loop's own segments before
// recursing into its children, and renders each segment's typed field
// values per the same rules schema.Decode used to parse them: dates as 8
// digits, datetimes as 12, decimals at their field schema's fixed
// precision (two fractional digits unless overridden), composites joined
// by the component separator, and repeated fields joined by the
// repetition separator. Segments with no registered schema
// fall back to their raw wire fields, so a segment retained only in raw
// form (an unknown segment kept under §7's lenient mode) still
// round-trips.
//
// An optional pretty-print mode inserts a newline between segments (after
// every segment terminator but the last), mirroring the teacher library's encode package without
// otherwise changing the wire content.
package serialize
