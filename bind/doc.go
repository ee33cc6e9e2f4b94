// Package bind implements the Loop Binder (§4.D), the heart of the system:
// it consumes a decoded segment stream and, consulting a Registry of
// loop-start rules (§4.E), builds the hierarchical document tree described
// in §3.
//
// A transaction's document tree is rooted at a synthetic root Loop (its ID
// is RootID, and Bind returns it) whose direct children are exactly the fixed shape the spec
// describes: one "header" loop, one or more top-level business loops (for
// an 837, one or more billing-provider loops), and one "footer" loop. This
// synthetic root is never itself matched by a rule; it exists only to give
// the header/top-level/footer triad a common parent so the tree has a
// single entry point.
//
// The Cursor (§3) is the only mutable state during binding: a pointer to
// the current loop plus typed nullable shortcuts to the ancestors loop
// rules most often need to attach to directly, bypassing however deep the
// cursor has since descended.
package bind
