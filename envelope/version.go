package envelope

import (
	"fmt"

	"github.com/dshills/x12/model"
)

// versionAliases maps a raw implementation version string to the latest
// known revision it canonicalizes to, the static table the major-version
// canonicalizer consults (§4.G). This is a representative subset of the
// healthcare 5010 transaction family, grounded on the reference
// implementation's X12_IMPLEMENTATION_VERSIONS alias table; extending it to
// a payer's full guide list is a deployment-time data concern, not a code
// change.
var versionAliases = map[string]string{
	"005010X222": "005010X222A2", // 837 Professional
	"005010X223": "005010X223A3", // 837 Institutional
	"005010X224": "005010X224A3", // 837 Dental
	"005010X221": "005010X221A1", // 835 Health Care Claim Payment/Advice
	"005010X212": "005010X212",   // 276/277 Claim Status
	"005010X279": "005010X279A1", // 270/271 Eligibility
	"005010X220": "005010X220A1", // 834 Benefit Enrollment
	"005010X231": "005010X231A1", // 999 Implementation Acknowledgment
}

// CanonicalizeVersion resolves raw (e.g. "005010X222" or an already-current
// "005010X222A2") to its latest known revision, failing KindUnknownVersion
// if raw matches neither a raw nor a canonical entry in the alias table.
func CanonicalizeVersion(raw string) (string, error) {
	if canon, ok := versionAliases[raw]; ok {
		return canon, nil
	}
	for _, canon := range versionAliases {
		if canon == raw {
			return canon, nil
		}
	}
	return "", &model.Error{
		Kind:     model.KindUnknownVersion,
		Severity: model.SeverityFatal,
		Message:  fmt.Sprintf("unknown implementation version %q", raw),
	}
}

// MajorVersion extracts the major version digits (e.g. "5010" from
// "005010X222") from an implementation version string: characters at
// positions 2..6. Shorter inputs yield the empty string.
func MajorVersion(version string) string {
	if len(version) < 6 {
		return ""
	}
	return version[2:6]
}
