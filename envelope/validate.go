package envelope

import (
	"fmt"
	"strconv"

	"github.com/dshills/x12/model"
)

// Validate checks the counting and control-number invariants of §4.G
// against a flat, decoded segment stream spanning one or more whole
// interchanges (ISA through IEA). It returns every violation found, each
// with SeverityFatal; the root Parse aborts on a non-empty result in either
// mode, per §7.
//
// Envelope segments carry no registered schema of their own, so Validate
// reads them from their raw wire fields rather than Segment.ValueAt.
func Validate(segs []model.Segment) []*model.Error {
	var diags []*model.Error

	var isaControl string
	var groupCount int
	var currentGS model.Segment
	var stCount int
	var inTransaction bool
	var segCountInST int

	for _, seg := range segs {
		switch seg.Name {
		case "ISA":
			isaControl = seg.RawFieldAt(13).Raw()
			groupCount = 0

		case "GS":
			currentGS = seg
			stCount = 0

		case "ST":
			inTransaction = true
			segCountInST = 1

			stVersion := seg.RawFieldAt(3).Raw()
			gsVersion := currentGS.RawFieldAt(8).Raw()
			canonST, errST := CanonicalizeVersion(stVersion)
			canonGS, errGS := CanonicalizeVersion(gsVersion)
			if errST != nil {
				diags = append(diags, asError(errST))
			}
			if errGS != nil {
				diags = append(diags, asError(errGS))
			}
			if errST == nil && errGS == nil && canonST != canonGS {
				diags = append(diags, &model.Error{
					Kind:         model.KindUnknownVersion,
					Severity:     model.SeverityFatal,
					SegmentIndex: seg.Index,
					SegmentName:  "ST",
					Message:      fmt.Sprintf("ST03 %q does not canonicalize to the same version as GS08 %q", stVersion, gsVersion),
				})
			}

		case "SE":
			if inTransaction {
				segCountInST++
				se01 := seg.RawFieldAt(1).Raw()
				if got, ok := parseCount(se01); !ok || got != segCountInST {
					diags = append(diags, &model.Error{
						Kind:         model.KindCountMismatch,
						Severity:     model.SeverityFatal,
						SegmentIndex: seg.Index,
						SegmentName:  "SE",
						Message:      fmt.Sprintf("SE01 = %q, actual segment count from ST to SE inclusive = %d", se01, segCountInST),
					})
				}
				stCount++
				inTransaction = false
			}

		case "GE":
			ge01 := seg.RawFieldAt(1).Raw()
			if got, ok := parseCount(ge01); !ok || got != stCount {
				diags = append(diags, &model.Error{
					Kind:         model.KindCountMismatch,
					Severity:     model.SeverityFatal,
					SegmentIndex: seg.Index,
					SegmentName:  "GE",
					Message:      fmt.Sprintf("GE01 = %q, actual ST/SE pair count = %d", ge01, stCount),
				})
			}
			ge02 := seg.RawFieldAt(2).Raw()
			gs06 := currentGS.RawFieldAt(6).Raw()
			if ge02 != gs06 {
				diags = append(diags, &model.Error{
					Kind:         model.KindControlNumberMismatch,
					Severity:     model.SeverityFatal,
					SegmentIndex: seg.Index,
					SegmentName:  "GE",
					Message:      fmt.Sprintf("GE02 = %q, does not match GS06 = %q", ge02, gs06),
				})
			}
			groupCount++

		case "IEA":
			iea01 := seg.RawFieldAt(1).Raw()
			if got, ok := parseCount(iea01); !ok || got != groupCount {
				diags = append(diags, &model.Error{
					Kind:         model.KindCountMismatch,
					Severity:     model.SeverityFatal,
					SegmentIndex: seg.Index,
					SegmentName:  "IEA",
					Message:      fmt.Sprintf("IEA01 = %q, actual GS/GE pair count = %d", iea01, groupCount),
				})
			}
			iea02 := seg.RawFieldAt(2).Raw()
			if iea02 != isaControl {
				diags = append(diags, &model.Error{
					Kind:         model.KindControlNumberMismatch,
					Severity:     model.SeverityFatal,
					SegmentIndex: seg.Index,
					SegmentName:  "IEA",
					Message:      fmt.Sprintf("IEA02 = %q, does not match ISA13 = %q", iea02, isaControl),
				})
			}

		default:
			if inTransaction {
				segCountInST++
			}
		}
	}

	return diags
}

func parseCount(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	return n, err == nil
}

func asError(err error) *model.Error {
	if e, ok := err.(*model.Error); ok {
		return e
	}
	return &model.Error{Kind: model.KindUnknownVersion, Severity: model.SeverityFatal, Message: err.Error()}
}
