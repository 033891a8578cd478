package types

import "github.com/m-mizutani/goerr/v2"

// RiskLevel represents the matrix-derived combination of severity and
// probability, ordered from Negligible (lowest) to Unacceptable (highest).
type RiskLevel string

const (
	RiskLevelNegligible   RiskLevel = "Negligible"
	RiskLevelAcceptable   RiskLevel = "Acceptable"
	RiskLevelUndesirable  RiskLevel = "Undesirable"
	RiskLevelUnacceptable RiskLevel = "Unacceptable"
)

// AllRiskLevels returns all risk levels in ascending order
func AllRiskLevels() []RiskLevel {
	return []RiskLevel{
		RiskLevelNegligible,
		RiskLevelAcceptable,
		RiskLevelUndesirable,
		RiskLevelUnacceptable,
	}
}

// IsValid checks if the risk level is valid
func (l RiskLevel) IsValid() bool {
	switch l {
	case RiskLevelNegligible,
		RiskLevelAcceptable,
		RiskLevelUndesirable,
		RiskLevelUnacceptable:
		return true
	default:
		return false
	}
}

// Index returns the ordinal position of the risk level (0 = Negligible).
// Returns -1 for an invalid risk level.
func (l RiskLevel) Index() int {
	for i, v := range AllRiskLevels() {
		if l == v {
			return i
		}
	}
	return -1
}

// String returns the string representation of the risk level
func (l RiskLevel) String() string {
	return string(l)
}

// ParseRiskLevel parses a string into a RiskLevel. Risk levels are always
// derived by the engine, so an unknown label is an error rather than a
// lenient default.
func ParseRiskLevel(s string) (RiskLevel, error) {
	level := RiskLevel(s)
	if !level.IsValid() {
		return "", goerr.New("invalid risk level", goerr.V("level", s))
	}
	return level, nil
}
