package classifier

import (
	"strings"

	"github.com/chent01/riskreg/pkg/domain/types"
)

// hazardCategory selects which mitigation/verification template applies
type hazardCategory int

const (
	categoryGeneric hazardCategory = iota
	categorySoftware
	categoryData
	categoryUser
	categoryCommunication
)

// categoryKeywords is checked in order; the first category with any
// keyword present in the hazard/cause text wins.
var categoryKeywords = []struct {
	category hazardCategory
	terms    []string
}{
	{categorySoftware, []string{"software", "algorithm"}},
	{categoryData, []string{"data", "information"}},
	{categoryUser, []string{"user", "interface"}},
	{categoryCommunication, []string{"communication", "network"}},
}

// matchCategory scans the hazard and cause text and returns the selected
// template category together with the keywords that matched it.
func matchCategory(hazard, cause string) (hazardCategory, []string) {
	text := strings.ToLower(hazard + " " + cause)

	for _, ck := range categoryKeywords {
		var matched []string
		for _, term := range ck.terms {
			if strings.Contains(text, term) {
				matched = append(matched, term)
			}
		}
		if len(matched) > 0 {
			return ck.category, matched
		}
	}
	return categoryGeneric, nil
}

func highSeverity(sev types.Severity) bool {
	return sev == types.SeveritySerious || sev == types.SeverityCatastrophic
}

// mitigationTemplate returns the deterministic mitigation text for a
// hazard category, scaled by severity for software and generic hazards.
func mitigationTemplate(category hazardCategory, sev types.Severity) string {
	switch category {
	case categorySoftware:
		if highSeverity(sev) {
			return "Implement redundant validation of the affected software function with independent verification, " +
				"comprehensive unit and integration testing, and static analysis of the algorithm"
		}
		return "Implement input validation and defensive checks in the affected software component, " +
			"with unit testing of boundary conditions"
	case categoryData:
		return "Enforce data integrity verification on all stored and transferred records, " +
			"including checksums, range validation, and automatic detection of corruption"
	case categoryUser:
		return "Add confirmation prompts and clear guidance for critical user actions, " +
			"with usability review of the affected interface elements"
	case categoryCommunication:
		return "Implement retry with timeout limits and connection monitoring for the affected " +
			"communication path, with automatic detection of transfer failures"
	default:
		if highSeverity(sev) {
			return "Apply redundant safeguards with independent review and verification testing " +
				"of the affected function before release"
		}
		return "Apply standard control measures with verification testing of the affected function"
	}
}

// verificationTemplate returns the verification method description keyed
// by the same category and the severity tier.
func verificationTemplate(category hazardCategory, sev types.Severity) string {
	switch category {
	case categorySoftware:
		if highSeverity(sev) {
			return "Verification through independent code review, full regression testing, and fault injection testing"
		}
		return "Verification through unit testing and code review"
	case categoryData:
		return "Verification through data integrity test suite and corruption recovery testing"
	case categoryUser:
		return "Verification through usability testing and user acceptance testing"
	case categoryCommunication:
		return "Verification through network fault simulation and timeout testing"
	default:
		if highSeverity(sev) {
			return "Verification through system-level testing and design review"
		}
		return "Verification through functional testing"
	}
}
