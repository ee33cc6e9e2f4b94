// Package envelope validates the ISA/GS/ST counting and control-number
// invariants of §4.G once a full interchange's segments have been decoded:
// SE01 against the literal segment count between ST and SE, GE01/GE02
// against the ST/SE pairs and GS06 of their group, IEA01/IEA02 against the
// GS/GE pairs and ISA13 of the interchange, and implementation version
// strings (GS08, ST03) against a canonical version alias table.
//
// Validate runs before the Loop Binder builds any transaction set's tree:
// it only needs the flat decoded segment stream, not the bound tree,
// since envelope structure is strictly positional.
package envelope
