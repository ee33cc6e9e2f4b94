package bind

import "github.com/dshills/x12/model"

// RootID and the two fixed sibling ids every transaction's document tree
// carries, per §3's fixed root shape.
const (
	RootID   = "__transaction__"
	HeaderID = "header"
	FooterID = "footer"
)

// Loop is a named node in the document tree. Segments is the ordered list
// of segments attached directly to this loop; Children is the ordered list
// of child loops, which may repeat the same ID for a sequence loop (e.g.
// multiple loop_2300 claim loops under one patient).
type Loop struct {
	ID       string
	Parent   *Loop
	Segments []model.Segment
	Children []*Loop

	// frozen is set once the parse completes; mutation after that point is
	// a programming error, not something the library needs to police at
	// runtime (the cursor that mutates a Loop goes out of scope with the
	// parse that created it, per §5).
	frozen bool
}

// NewLoop creates a loop node and links it under parent, if parent is
// non-nil. The synthetic transaction root is the only loop ever created
// with a nil parent.
func NewLoop(id string, parent *Loop) *Loop {
	l := &Loop{ID: id, Parent: parent}
	if parent != nil {
		parent.Children = append(parent.Children, l)
	}
	return l
}

// AddSegment appends a segment as a direct child of this loop, in
// insertion order.
func (l *Loop) AddSegment(seg model.Segment) {
	l.Segments = append(l.Segments, seg)
}

// SegmentsNamed returns every direct-child segment with the given name, in
// insertion order. A nil result distinguishes "never observed" from
// "observed, but empty" only at the zero-value level — callers needing
// that distinction should consult diagnostics instead, per §7's lenient
// substitution behavior.
func (l *Loop) SegmentsNamed(name string) []model.Segment {
	var out []model.Segment
	for _, s := range l.Segments {
		if s.Name == name {
			out = append(out, s)
		}
	}
	return out
}

// FirstSegment returns the loop's first direct-child segment, which §3
// invariant 6 guarantees is always the segment that triggered the loop
// (the synthetic root is the only loop without one).
func (l *Loop) FirstSegment() (model.Segment, bool) {
	if len(l.Segments) == 0 {
		return model.Segment{}, false
	}
	return l.Segments[0], true
}

// ChildrenNamed returns every child loop with the given ID, in insertion
// order -- the "sequence" case of §3's loop definition.
func (l *Loop) ChildrenNamed(id string) []*Loop {
	var out []*Loop
	for _, c := range l.Children {
		if c.ID == id {
			out = append(out, c)
		}
	}
	return out
}

// LastChildNamed returns the most recently appended child with the given
// ID -- the shortcut loop-start rules use to reach "the current claim",
// "the current service line", and so on without the cursor holding a
// dedicated pointer for every loop kind.
func (l *Loop) LastChildNamed(id string) (*Loop, bool) {
	children := l.ChildrenNamed(id)
	if len(children) == 0 {
		return nil, false
	}
	return children[len(children)-1], true
}

// Reparent moves this loop (and its subtree, unchanged) to be the last
// child of newParent instead of its current parent. Used by the HL
// rollback edge case (§4.D) when a subscriber-is-patient binding must be
// corrected once a later HL23 reveals the subscriber actually has a
// dependent.
func (l *Loop) Reparent(newParent *Loop) {
	if l.Parent != nil {
		siblings := l.Parent.Children
		for i, c := range siblings {
			if c == l {
				l.Parent.Children = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
	}
	l.Parent = newParent
	newParent.Children = append(newParent.Children, l)
}

// Visitor is called for every loop in document order; returning false
// stops descent into that loop's children (but sibling walking continues).
type Visitor func(*Loop) bool

// Walk visits l and its descendants in document order: a loop's own
// segments are logically "at" the loop for this purpose, since Walk
// visits Loop nodes, not segments -- callers inspect l.Segments from
// within the visitor.
func (l *Loop) Walk(visit Visitor) {
	if !visit(l) {
		return
	}
	for _, c := range l.Children {
		c.Walk(visit)
	}
}

// Freeze marks the loop and its full subtree immutable. Called once by the
// Binder when a transaction's SE segment is processed.
func (l *Loop) Freeze() {
	l.Walk(func(n *Loop) bool {
		n.frozen = true
		return true
	})
}

// Frozen reports whether the loop has been frozen.
func (l *Loop) Frozen() bool {
	return l.frozen
}
