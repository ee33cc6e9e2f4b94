package bind

import "github.com/dshills/x12/model"

// Cursor is the parser context (§3): the only mutable state the binder
// carries across segments. Shortcuts are typed nullable pointers, updated
// only at the well-defined transitions the design notes call out (HL, CLM,
// LX, SBR) rather than late-bound ad-hoc attributes.
type Cursor struct {
	Root    *Loop
	Current *Loop

	BillingProvider *Loop
	Subscriber      *Loop
	Patient         *Loop
	Claim           *Loop
	OtherSubscriber *Loop
	ServiceLine     *Loop

	// LastHL is the most recently observed HL segment, needed to
	// disambiguate subscriber-is-patient vs. subscriber-has-dependents via
	// hierarchical_child_code.
	LastHL *model.Segment

	// PatientIsSubscriber records whether the current Patient shortcut was
	// set by the "subscriber is patient" rule (HL22 with child code 0)
	// rather than by an explicit HL23 loop, so the rollback edge case
	// (§4.D) can detect when it must correct an earlier binding.
	PatientIsSubscriber bool
}

// NewCursor creates a cursor positioned at a fresh, empty transaction root.
func NewCursor() *Cursor {
	root := &Loop{ID: RootID}
	return &Cursor{Root: root, Current: root}
}

// CurrentID returns the loop id the cursor currently occupies: RootID while
// the cursor sits at the synthetic transaction root (before ST has opened
// the header loop), or "" if Current is nil.
func (c *Cursor) CurrentID() string {
	if c.Current == nil {
		return ""
	}
	return c.Current.ID
}

// HasPrefix reports whether the cursor's current loop id begins with any of
// the given prefixes. An empty prefix list matches any cursor position,
// per §4.D's "legal parent prefix set" semantics when a rule declares none.
func (c *Cursor) HasPrefix(prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	cur := c.CurrentID()
	for _, p := range prefixes {
		if len(cur) >= len(p) && cur[:len(p)] == p {
			return true
		}
	}
	return false
}
