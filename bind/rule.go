package bind

import "github.com/dshills/x12/model"

// Predicate matches on selected decoded fields of the trigger segment.
type Predicate func(seg model.Segment) bool

// QualifierIn returns a Predicate matching when the scalar value at the
// given 1-based field position is a member of values -- the common
// qualifier-predicate shape used throughout the 837 rule table (e.g.
// entity_identifier_code in {"DN","P3"}).
func QualifierIn(pos int, values ...string) Predicate {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return func(seg model.Segment) bool {
		return set[seg.ValueAt(pos)]
	}
}

// QualifierEquals returns a Predicate matching an exact scalar value.
func QualifierEquals(pos int, value string) Predicate {
	return QualifierIn(pos, value)
}

// Always matches unconditionally -- used by rules with no qualifier, such
// as CLM or LX, which open a loop on the trigger segment alone.
func Always(model.Segment) bool { return true }

// Opener creates the new loop a fired rule opens: it resolves the correct
// parent via the cursor's shortcuts (the "ancestor attachment" of §4.D),
// links the new Loop under that parent, attaches the triggering segment as
// the loop's first child (§3 invariant 6), updates Cursor.Current, and
// updates whichever shortcuts the transition affects. It returns the
// opened loop.
type Opener func(cur *Cursor, seg model.Segment) *Loop

// Rule is one authored entry of the loop-start rule registry (§4.E): a
// trigger segment name, a qualifier predicate, a legal-parent-prefix set,
// the loop id it opens (informational, for diagnostics), and the Opener
// that performs the actual tree surgery.
type Rule struct {
	Trigger        string
	When           Predicate
	ParentPrefixes []string
	Opens          string
	Open           Opener

	// InitialSegmentLists documents which segment-name lists the
	// implementation guide expects callers to find present (even if empty)
	// on the opened loop. Go's zero-value nil slice already behaves like an
	// empty, safely-rangeable list via Loop.SegmentsNamed, so this field is
	// carried for fidelity with the authoring unit in §4.E but has no
	// runtime effect.
	InitialSegmentLists []string
}

// Fires reports whether this rule matches seg given the cursor's current
// position: the qualifier predicate must match and the cursor's current
// loop id must satisfy the legal-parent-prefix set.
func (r Rule) Fires(cur *Cursor, seg model.Segment) bool {
	if seg.Name != r.Trigger {
		return false
	}
	if r.When != nil && !r.When(seg) {
		return false
	}
	return cur.HasPrefix(r.ParentPrefixes)
}

// Registry is an ordered, read-only set of rules for one transaction/
// version. Rules are evaluated in registration order; the first matching
// rule wins (§4.D).
type Registry []Rule

// Match returns the first rule that fires for seg given the cursor's
// current position.
func (reg Registry) Match(cur *Cursor, seg model.Segment) (Rule, bool) {
	for _, r := range reg {
		if r.Fires(cur, seg) {
			return r, true
		}
	}
	return Rule{}, false
}
