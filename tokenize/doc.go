// Package tokenize implements the Delimiter Discoverer and Segment
// Tokenizer: it reads the fixed-layout ISA header to derive an
// interchange's delimiter set, then splits the remaining byte stream into a
// lazy sequence of raw, untyped segments.
//
// Tokenizer performs no schema lookup and assigns no semantic types to
// field content; it only locates the element/repetition/component
// boundaries declared by the discovered Delimiters. Typed decoding is
// package schema's responsibility.
package tokenize
