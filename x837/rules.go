package x837

import (
	"github.com/dshills/x12/bind"
	"github.com/dshills/x12/model"
)

// Loop ids in a cluster all attach to the same parent shortcut and must
// stay legal match positions for every sibling rule in the cluster, since
// the cursor's Current loop moves to whichever sibling opened most
// recently. Listing full ids (rather than a coarse numeric prefix) keeps
// clusters whose numbering otherwise collides -- loop_2320 starts with the
// same two digits as loop_2300 and its loop_231x siblings -- unambiguous.
var (
	claimLevelPrefixes = []string{
		LoopClaim,
		LoopClaimReferringProviderName,
		LoopClaimRenderingProviderName,
		LoopClaimServiceFacilityName,
		LoopClaimSupervisingProviderName,
		LoopClaimAmbulancePickup,
		LoopClaimAmbulanceDropoff,
	}

	otherSubscriberLevelPrefixes = []string{
		LoopOtherSubscriber,
		LoopOtherSubscriberName,
		LoopOtherSubscriberPayerName,
		LoopOtherSubscriberPayerReferring,
		LoopOtherSubscriberPayerRendering,
		LoopOtherSubscriberPayerFacility,
		LoopOtherSubscriberPayerSupervising,
		LoopOtherSubscriberPayerBilling,
	}

	serviceLineLevelPrefixes = []string{
		LoopServiceLine,
		LoopDrugIdentification,
		LoopServiceLineRendering,
		LoopServiceLinePurchased,
		LoopServiceLineFacility,
		LoopServiceLineSupervising,
		LoopServiceLineOrdering,
		LoopServiceLineReferring,
		LoopServiceLineAmbulancePickup,
		LoopServiceLineAmbulanceDropoff,
		LoopServiceLineAdjudication,
		LoopServiceLineFormIdentification,
	}
)

// concat returns a fresh slice holding the elements of every given slice,
// in order -- used to build the few clusters a rule must match against more
// than one sibling group (LX may follow either a claim-level NM1 or a
// closed other-subscriber block).
func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// nm1Opener builds an Opener for a name loop triggered by a qualified NM1:
// it resolves the parent via the supplied shortcut selector, opens loopID
// under it, and moves the cursor onto the new loop.
func nm1Opener(loopID string, parent func(cur *bind.Cursor) *bind.Loop) bind.Opener {
	return func(cur *bind.Cursor, seg model.Segment) *bind.Loop {
		loop := bind.NewLoop(loopID, parent(cur))
		loop.AddSegment(seg)
		cur.Current = loop
		return loop
	}
}

// Rules returns the 837 005010X222A2 loop-start rule registry (§4.E),
// translated one-for-one from the reference implementation's
// @match-decorated loop functions, in the same registration order.
func Rules() bind.Registry {
	return bind.Registry{
		// header (one per transaction)
		{
			Trigger: "ST",
			When:    bind.Always,
			Opens:   bind.HeaderID,
			Open: func(cur *bind.Cursor, seg model.Segment) *bind.Loop {
				loop := bind.NewLoop(bind.HeaderID, cur.Root)
				loop.AddSegment(seg)
				cur.Current = loop
				return loop
			},
		},

		// 1000A / 1000B attach under the header loop, not the root, since
		// they describe the interchange's submitter/receiver rather than a
		// billing entity in the HL hierarchy.
		{
			Trigger:        "NM1",
			When:           bind.QualifierIn(1, "41"),
			ParentPrefixes: []string{bind.HeaderID},
			Opens:          LoopSubmitterName,
			Open:           nm1Opener(LoopSubmitterName, headerLoop),
		},
		{
			Trigger:        "NM1",
			When:           bind.QualifierIn(1, "40"),
			ParentPrefixes: []string{bind.HeaderID, LoopSubmitterName},
			Opens:          LoopReceiverName,
			Open:           nm1Opener(LoopReceiverName, headerLoop),
		},

		// 2000A billing provider attaches directly to the synthetic root
		// (a sibling of header, per §3's fixed root shape), since it is the
		// top of the HL hierarchy rather than a descendant of the header.
		{
			Trigger: "HL",
			When:    bind.QualifierIn(3, "20"),
			Opens:   LoopBillingProvider,
			Open:    openBillingProvider,
		},
		{
			Trigger:        "NM1",
			When:           bind.QualifierIn(1, "85"),
			ParentPrefixes: []string{LoopBillingProvider},
			Opens:          LoopBillingProviderName,
			Open:           nm1Opener(LoopBillingProviderName, func(c *bind.Cursor) *bind.Loop { return c.BillingProvider }),
		},
		{
			Trigger:        "NM1",
			When:           bind.QualifierIn(1, "87"),
			ParentPrefixes: []string{LoopBillingProvider, LoopBillingProviderName, LoopBillingProviderPayToAddr, LoopBillingProviderPayToPlan},
			Opens:          LoopBillingProviderPayToAddr,
			Open:           nm1Opener(LoopBillingProviderPayToAddr, func(c *bind.Cursor) *bind.Loop { return c.BillingProvider }),
		},
		{
			Trigger:        "NM1",
			When:           bind.QualifierIn(1, "PE"),
			ParentPrefixes: []string{LoopBillingProvider, LoopBillingProviderName, LoopBillingProviderPayToAddr, LoopBillingProviderPayToPlan},
			Opens:          LoopBillingProviderPayToPlan,
			Open:           nm1Opener(LoopBillingProviderPayToPlan, func(c *bind.Cursor) *bind.Loop { return c.BillingProvider }),
		},

		// 2000B subscriber; hierarchical_child_code decides whether the
		// subscriber is also the patient (§4.D's subscriber-is-patient
		// binding, corrected later by the HL rollback if a genuine HL23
		// still follows).
		{
			Trigger:        "HL",
			When:           bind.QualifierIn(3, "22"),
			Opens:          LoopSubscriber,
			Open:           openSubscriber,
		},
		{
			Trigger:        "NM1",
			When:           bind.QualifierIn(1, "IL"),
			ParentPrefixes: []string{LoopSubscriber},
			Opens:          LoopSubscriberName,
			Open:           nm1Opener(LoopSubscriberName, func(c *bind.Cursor) *bind.Loop { return c.Subscriber }),
		},
		{
			// PR-qualified NM1 under the subscriber loop names the
			// subscriber's payer, not the subscriber itself: the opened
			// loop id must be LoopSubscriberPayerName, not LoopSubscriberName.
			Trigger:        "NM1",
			When:           bind.QualifierIn(1, "PR"),
			ParentPrefixes: []string{LoopSubscriber, LoopSubscriberName},
			Opens:          LoopSubscriberPayerName,
			Open:           nm1Opener(LoopSubscriberPayerName, func(c *bind.Cursor) *bind.Loop { return c.Subscriber }),
		},

		// 2000C patient (explicit HL23; see openPatient for the rollback
		// this performs when a prior HL22 had already aliased Patient to
		// Subscriber).
		{
			Trigger:        "HL",
			When:           bind.QualifierIn(3, "23"),
			Opens:          LoopPatient,
			Open:           openPatient,
		},
		{
			Trigger:        "NM1",
			When:           bind.QualifierIn(1, "QC"),
			ParentPrefixes: []string{LoopPatient},
			Opens:          LoopPatientName,
			Open:           nm1Opener(LoopPatientName, func(c *bind.Cursor) *bind.Loop { return c.Patient }),
		},

		// 2300 claim, and its 2310x entity name siblings.
		{
			Trigger: "CLM",
			When:    bind.Always,
			Opens:   LoopClaim,
			Open:    openClaim,
		},
		{
			Trigger:        "NM1",
			When:           bind.QualifierIn(1, "DN", "P3"),
			ParentPrefixes: claimLevelPrefixes,
			Opens:          LoopClaimReferringProviderName,
			Open:           nm1Opener(LoopClaimReferringProviderName, func(c *bind.Cursor) *bind.Loop { return c.Claim }),
		},
		{
			Trigger:        "NM1",
			When:           bind.QualifierIn(1, "82"),
			ParentPrefixes: claimLevelPrefixes,
			Opens:          LoopClaimRenderingProviderName,
			Open:           nm1Opener(LoopClaimRenderingProviderName, func(c *bind.Cursor) *bind.Loop { return c.Claim }),
		},
		{
			Trigger:        "NM1",
			When:           bind.QualifierIn(1, "77"),
			ParentPrefixes: claimLevelPrefixes,
			Opens:          LoopClaimServiceFacilityName,
			Open:           nm1Opener(LoopClaimServiceFacilityName, func(c *bind.Cursor) *bind.Loop { return c.Claim }),
		},
		{
			Trigger:        "NM1",
			When:           bind.QualifierIn(1, "DQ"),
			ParentPrefixes: claimLevelPrefixes,
			Opens:          LoopClaimSupervisingProviderName,
			Open:           nm1Opener(LoopClaimSupervisingProviderName, func(c *bind.Cursor) *bind.Loop { return c.Claim }),
		},
		{
			// Ambulance pickup/dropoff NM1s reuse the PW/45 qualifiers at
			// both claim level (2310E/F) and service line level
			// (2420G/H); ParentPrefixes (disjoint between the two
			// clusters) disambiguates instead of the qualifier alone.
			Trigger:        "NM1",
			When:           bind.QualifierIn(1, "PW"),
			ParentPrefixes: claimLevelPrefixes,
			Opens:          LoopClaimAmbulancePickup,
			Open:           nm1Opener(LoopClaimAmbulancePickup, func(c *bind.Cursor) *bind.Loop { return c.Claim }),
		},
		{
			Trigger:        "NM1",
			When:           bind.QualifierIn(1, "45"),
			ParentPrefixes: claimLevelPrefixes,
			Opens:          LoopClaimAmbulanceDropoff,
			Open:           nm1Opener(LoopClaimAmbulanceDropoff, func(c *bind.Cursor) *bind.Loop { return c.Claim }),
		},

		// 2320 other subscriber (COB); SBR also appears, unconditionally,
		// as a plain content segment inside the 2000B/2000C subscriber
		// loops -- ParentPrefixes confines this rule to the claim-level
		// cluster so that occurrence falls through as ordinary content.
		{
			Trigger:        "SBR",
			When:           bind.Always,
			ParentPrefixes: claimLevelPrefixes,
			Opens:          LoopOtherSubscriber,
			Open: func(cur *bind.Cursor, seg model.Segment) *bind.Loop {
				loop := bind.NewLoop(LoopOtherSubscriber, cur.Claim)
				loop.AddSegment(seg)
				cur.OtherSubscriber = loop
				cur.Current = loop
				return loop
			},
		},
		{
			Trigger:        "NM1",
			When:           bind.QualifierIn(1, "IL"),
			ParentPrefixes: otherSubscriberLevelPrefixes,
			Opens:          LoopOtherSubscriberName,
			Open:           nm1Opener(LoopOtherSubscriberName, func(c *bind.Cursor) *bind.Loop { return c.OtherSubscriber }),
		},
		{
			Trigger:        "NM1",
			When:           bind.QualifierIn(1, "PR"),
			ParentPrefixes: otherSubscriberLevelPrefixes,
			Opens:          LoopOtherSubscriberPayerName,
			Open:           nm1Opener(LoopOtherSubscriberPayerName, func(c *bind.Cursor) *bind.Loop { return c.OtherSubscriber }),
		},
		{
			Trigger:        "NM1",
			When:           bind.QualifierIn(1, "DN", "P3"),
			ParentPrefixes: otherSubscriberLevelPrefixes,
			Opens:          LoopOtherSubscriberPayerReferring,
			Open:           nm1Opener(LoopOtherSubscriberPayerReferring, func(c *bind.Cursor) *bind.Loop { return c.OtherSubscriber }),
		},
		{
			Trigger:        "NM1",
			When:           bind.QualifierIn(1, "82"),
			ParentPrefixes: otherSubscriberLevelPrefixes,
			Opens:          LoopOtherSubscriberPayerRendering,
			Open:           nm1Opener(LoopOtherSubscriberPayerRendering, func(c *bind.Cursor) *bind.Loop { return c.OtherSubscriber }),
		},
		{
			Trigger:        "NM1",
			When:           bind.QualifierIn(1, "77"),
			ParentPrefixes: otherSubscriberLevelPrefixes,
			Opens:          LoopOtherSubscriberPayerFacility,
			Open:           nm1Opener(LoopOtherSubscriberPayerFacility, func(c *bind.Cursor) *bind.Loop { return c.OtherSubscriber }),
		},
		{
			Trigger:        "NM1",
			When:           bind.QualifierIn(1, "DQ"),
			ParentPrefixes: otherSubscriberLevelPrefixes,
			Opens:          LoopOtherSubscriberPayerSupervising,
			Open:           nm1Opener(LoopOtherSubscriberPayerSupervising, func(c *bind.Cursor) *bind.Loop { return c.OtherSubscriber }),
		},
		{
			Trigger:        "NM1",
			When:           bind.QualifierIn(1, "85"),
			ParentPrefixes: otherSubscriberLevelPrefixes,
			Opens:          LoopOtherSubscriberPayerBilling,
			Open:           nm1Opener(LoopOtherSubscriberPayerBilling, func(c *bind.Cursor) *bind.Loop { return c.OtherSubscriber }),
		},

		// 2400 service line and its descendants. LX may follow either the
		// claim-level cluster directly or a closed other-subscriber block.
		{
			Trigger:        "LX",
			When:           bind.Always,
			ParentPrefixes: concat(claimLevelPrefixes, otherSubscriberLevelPrefixes),
			Opens:          LoopServiceLine,
			Open: func(cur *bind.Cursor, seg model.Segment) *bind.Loop {
				loop := bind.NewLoop(LoopServiceLine, cur.Claim)
				loop.AddSegment(seg)
				cur.ServiceLine = loop
				cur.Current = loop
				return loop
			},
		},
		{
			Trigger:        "LIN",
			When:           bind.Always,
			ParentPrefixes: serviceLineLevelPrefixes,
			Opens:          LoopDrugIdentification,
			Open:           nm1Opener(LoopDrugIdentification, func(c *bind.Cursor) *bind.Loop { return c.ServiceLine }),
		},
		{
			Trigger:        "NM1",
			When:           bind.QualifierIn(1, "82"),
			ParentPrefixes: serviceLineLevelPrefixes,
			Opens:          LoopServiceLineRendering,
			Open:           nm1Opener(LoopServiceLineRendering, func(c *bind.Cursor) *bind.Loop { return c.ServiceLine }),
		},
		{
			Trigger:        "NM1",
			When:           bind.QualifierIn(1, "QB"),
			ParentPrefixes: serviceLineLevelPrefixes,
			Opens:          LoopServiceLinePurchased,
			Open:           nm1Opener(LoopServiceLinePurchased, func(c *bind.Cursor) *bind.Loop { return c.ServiceLine }),
		},
		{
			Trigger:        "NM1",
			When:           bind.QualifierIn(1, "77"),
			ParentPrefixes: serviceLineLevelPrefixes,
			Opens:          LoopServiceLineFacility,
			Open:           nm1Opener(LoopServiceLineFacility, func(c *bind.Cursor) *bind.Loop { return c.ServiceLine }),
		},
		{
			Trigger:        "NM1",
			When:           bind.QualifierIn(1, "DQ"),
			ParentPrefixes: serviceLineLevelPrefixes,
			Opens:          LoopServiceLineSupervising,
			Open:           nm1Opener(LoopServiceLineSupervising, func(c *bind.Cursor) *bind.Loop { return c.ServiceLine }),
		},
		{
			Trigger:        "NM1",
			When:           bind.QualifierIn(1, "DK"),
			ParentPrefixes: serviceLineLevelPrefixes,
			Opens:          LoopServiceLineOrdering,
			Open:           nm1Opener(LoopServiceLineOrdering, func(c *bind.Cursor) *bind.Loop { return c.ServiceLine }),
		},
		{
			Trigger:        "NM1",
			When:           bind.QualifierIn(1, "DN", "P3"),
			ParentPrefixes: serviceLineLevelPrefixes,
			Opens:          LoopServiceLineReferring,
			Open:           nm1Opener(LoopServiceLineReferring, func(c *bind.Cursor) *bind.Loop { return c.ServiceLine }),
		},
		{
			Trigger:        "NM1",
			When:           bind.QualifierIn(1, "PW"),
			ParentPrefixes: serviceLineLevelPrefixes,
			Opens:          LoopServiceLineAmbulancePickup,
			Open:           nm1Opener(LoopServiceLineAmbulancePickup, func(c *bind.Cursor) *bind.Loop { return c.ServiceLine }),
		},
		{
			Trigger:        "NM1",
			When:           bind.QualifierIn(1, "45"),
			ParentPrefixes: serviceLineLevelPrefixes,
			Opens:          LoopServiceLineAmbulanceDropoff,
			Open:           nm1Opener(LoopServiceLineAmbulanceDropoff, func(c *bind.Cursor) *bind.Loop { return c.ServiceLine }),
		},
		{
			// Each SVD opens its own loop_2430 instance rather than
			// reusing or overwriting one shared adjudication loop, so
			// multiple payers' adjudications on one service line
			// accumulate as siblings instead of the last SVD clobbering
			// the ones before it.
			Trigger:        "SVD",
			When:           bind.Always,
			ParentPrefixes: serviceLineLevelPrefixes,
			Opens:          LoopServiceLineAdjudication,
			Open: func(cur *bind.Cursor, seg model.Segment) *bind.Loop {
				loop := bind.NewLoop(LoopServiceLineAdjudication, cur.ServiceLine)
				loop.AddSegment(seg)
				cur.Current = loop
				return loop
			},
		},
		{
			Trigger:        "LQ",
			When:           bind.Always,
			ParentPrefixes: serviceLineLevelPrefixes,
			Opens:          LoopServiceLineFormIdentification,
			Open: func(cur *bind.Cursor, seg model.Segment) *bind.Loop {
				parent := cur.ServiceLine
				if adj, ok := cur.ServiceLine.LastChildNamed(LoopServiceLineAdjudication); ok {
					parent = adj
				}
				loop := bind.NewLoop(LoopServiceLineFormIdentification, parent)
				loop.AddSegment(seg)
				cur.Current = loop
				return loop
			},
		},

		// footer (one per transaction)
		{
			Trigger: "SE",
			When:    bind.Always,
			Opens:   bind.FooterID,
			Open: func(cur *bind.Cursor, seg model.Segment) *bind.Loop {
				loop := bind.NewLoop(bind.FooterID, cur.Root)
				loop.AddSegment(seg)
				cur.Current = loop
				return loop
			},
		},
	}
}

func headerLoop(cur *bind.Cursor) *bind.Loop {
	if l, ok := cur.Root.LastChildNamed(bind.HeaderID); ok {
		return l
	}
	return cur.Root
}

func openBillingProvider(cur *bind.Cursor, seg model.Segment) *bind.Loop {
	loop := bind.NewLoop(LoopBillingProvider, cur.Root)
	loop.AddSegment(seg)
	cur.BillingProvider = loop
	cur.Subscriber = nil
	cur.Patient = nil
	cur.Claim = nil
	cur.OtherSubscriber = nil
	cur.ServiceLine = nil
	cur.PatientIsSubscriber = false
	cur.Current = loop
	return loop
}

func openSubscriber(cur *bind.Cursor, seg model.Segment) *bind.Loop {
	loop := bind.NewLoop(LoopSubscriber, cur.BillingProvider)
	loop.AddSegment(seg)
	cur.Subscriber = loop
	cur.Claim = nil
	cur.OtherSubscriber = nil
	cur.ServiceLine = nil
	cur.Current = loop

	// hierarchical_child_code "0" means the subscriber has no dependents:
	// the subscriber is its own patient. "1" means a dependent HL23 will
	// follow; Patient stays nil until that loop opens.
	if seg.ValueAt(4) == "0" {
		cur.Patient = loop
		cur.PatientIsSubscriber = true
	} else {
		cur.Patient = nil
		cur.PatientIsSubscriber = false
	}
	return loop
}

func openPatient(cur *bind.Cursor, seg model.Segment) *bind.Loop {
	loop := bind.NewLoop(LoopPatient, cur.Subscriber)
	loop.AddSegment(seg)

	if cur.PatientIsSubscriber && cur.Patient != nil {
		// A genuine HL23 arrived after an HL22 had already bound Patient
		// to Subscriber (child code 0). Any claims recorded against that
		// assumption belong to the real patient this loop represents, so
		// move them (and their service-line subtrees, unchanged) here.
		for _, claim := range cur.Subscriber.ChildrenNamed(LoopClaim) {
			claim.Reparent(loop)
		}
	}

	cur.Patient = loop
	cur.PatientIsSubscriber = false
	cur.Claim = nil
	cur.OtherSubscriber = nil
	cur.ServiceLine = nil
	cur.Current = loop
	return loop
}

func openClaim(cur *bind.Cursor, seg model.Segment) *bind.Loop {
	loop := bind.NewLoop(LoopClaim, cur.Patient)
	loop.AddSegment(seg)
	cur.Claim = loop
	cur.OtherSubscriber = nil
	cur.ServiceLine = nil
	cur.Current = loop
	return loop
}
