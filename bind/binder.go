package bind

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/dshills/x12/model"
)

// Binder consumes a decoded segment stream for a single transaction set
// (ST through SE inclusive) and builds its document tree, consulting a
// read-only Registry of loop-start rules (§4.D). A Binder may be reused
// across many transactions and interchanges: all mutable state lives in
// the Cursor created fresh by each call to Bind (§5).
type Binder struct {
	registry Registry
	cfg      config
}

// New constructs a Binder over the given rule registry.
func New(registry Registry, opts ...Option) *Binder {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Binder{registry: registry, cfg: cfg}
}

// Bind runs the Loop Binder algorithm over segs, which must span exactly
// one transaction set (its first segment is ST, its last is SE). It
// returns the transaction's document tree root (§3's fixed
// {header, <top-level loop>+, footer} shape), accumulated diagnostics, and
// a fatal error if strict mode aborted the parse.
func (b *Binder) Bind(segs []model.Segment) (*Loop, []*model.Error, error) {
	cur := NewCursor()
	var diags []*model.Error

	for _, seg := range segs {
		if seg.Name == "HL" {
			s := seg
			cur.LastHL = &s
		}

		rule, fired := b.registry.Match(cur, seg)
		if fired {
			rule.Open(cur, seg)
			continue
		}

		cur.Current.AddSegment(seg)

		if diag := b.checkPermitted(cur, seg); diag != nil {
			diags = append(diags, diag)
			if diag.Fatal() {
				return nil, diags, diag
			}
		}
	}

	cur.Root.Freeze()
	return cur.Root, diags, nil
}

// checkPermitted enforces §3 invariant 1 for loops the caller has supplied
// a permitted-segment set for; loops without an entry are unrestricted.
func (b *Binder) checkPermitted(cur *Cursor, seg model.Segment) *model.Error {
	if b.cfg.permitted == nil {
		return nil
	}
	allowed, ok := b.cfg.permitted[cur.CurrentID()]
	if !ok {
		return nil
	}
	for _, name := range allowed {
		if name == seg.Name {
			return nil
		}
	}

	severity := model.SeverityWarning
	if b.cfg.strictMode {
		severity = model.SeverityFatal
	}
	b.cfg.logger.Warn("unexpected segment",
		zap.String("segment", seg.Name),
		zap.String("loop", cur.CurrentID()),
	)
	return &model.Error{
		Kind:         model.KindUnexpectedSegment,
		Severity:     severity,
		SegmentIndex: seg.Index,
		SegmentName:  seg.Name,
		Message:      fmt.Sprintf("segment not permitted in loop %s", cur.CurrentID()),
	}
}
