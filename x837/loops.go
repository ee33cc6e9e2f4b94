package x837

// Loop ids for the 837 005010X222A2 implementation guide, ported from
// TransactionLoops in the reference implementation.
const (
	LoopSubmitterName    = "loop_1000a"
	LoopReceiverName     = "loop_1000b"
	LoopBillingProvider  = "loop_2000a"
	LoopBillingProviderName       = "loop_2010aa"
	LoopBillingProviderPayToAddr  = "loop_2010ab"
	LoopBillingProviderPayToPlan  = "loop_2010ac"
	LoopSubscriber            = "loop_2000b"
	LoopSubscriberName        = "loop_2010ba"
	LoopSubscriberPayerName   = "loop_2010bb"
	LoopPatient      = "loop_2000c"
	LoopPatientName  = "loop_2010ca"
	LoopClaim        = "loop_2300"
	LoopClaimReferringProviderName  = "loop_2310a"
	LoopClaimRenderingProviderName  = "loop_2310b"
	LoopClaimServiceFacilityName    = "loop_2310c"
	LoopClaimSupervisingProviderName = "loop_2310d"
	LoopClaimAmbulancePickup  = "loop_2310e"
	LoopClaimAmbulanceDropoff = "loop_2310f"
	LoopOtherSubscriber                = "loop_2320"
	LoopOtherSubscriberName            = "loop_2330a"
	LoopOtherSubscriberPayerName       = "loop_2330b"
	LoopOtherSubscriberPayerReferring  = "loop_2330c"
	LoopOtherSubscriberPayerRendering  = "loop_2330d"
	LoopOtherSubscriberPayerFacility   = "loop_2330e"
	LoopOtherSubscriberPayerSupervising = "loop_2330f"
	LoopOtherSubscriberPayerBilling    = "loop_2330g"
	LoopServiceLine            = "loop_2400"
	LoopDrugIdentification      = "loop_2410"
	LoopServiceLineRendering    = "loop_2420a"
	LoopServiceLinePurchased    = "loop_2420b"
	LoopServiceLineFacility     = "loop_2420c"
	LoopServiceLineSupervising  = "loop_2420d"
	LoopServiceLineOrdering     = "loop_2420e"
	LoopServiceLineReferring    = "loop_2420f"
	LoopServiceLineAmbulancePickup  = "loop_2420g"
	LoopServiceLineAmbulanceDropoff = "loop_2420h"
	LoopServiceLineAdjudication = "loop_2430"
	LoopServiceLineFormIdentification = "loop_2440"
)
