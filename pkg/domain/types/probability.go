package types

import "strings"

// Probability represents the likelihood of a hazard occurring,
// ordered from Remote (lowest) to High (highest).
type Probability string

const (
	ProbabilityRemote Probability = "Remote"
	ProbabilityLow    Probability = "Low"
	ProbabilityMedium Probability = "Medium"
	ProbabilityHigh   Probability = "High"
)

// AllProbabilities returns all probabilities in ascending order
func AllProbabilities() []Probability {
	return []Probability{
		ProbabilityRemote,
		ProbabilityLow,
		ProbabilityMedium,
		ProbabilityHigh,
	}
}

// IsValid checks if the probability is valid
func (p Probability) IsValid() bool {
	switch p {
	case ProbabilityRemote,
		ProbabilityLow,
		ProbabilityMedium,
		ProbabilityHigh:
		return true
	default:
		return false
	}
}

// Index returns the ordinal position of the probability (0 = Remote).
// Returns -1 for an invalid probability.
func (p Probability) Index() int {
	for i, v := range AllProbabilities() {
		if p == v {
			return i
		}
	}
	return -1
}

// Score returns the numeric score of the probability (1..4)
func (p Probability) Score() int {
	return p.Index() + 1
}

// String returns the string representation of the probability
func (p Probability) String() string {
	return string(p)
}

// ProbabilityAt returns the probability at the given ordinal position,
// clamped to the valid range.
func ProbabilityAt(idx int) Probability {
	all := AllProbabilities()
	if idx < 0 {
		idx = 0
	}
	if idx >= len(all) {
		idx = len(all) - 1
	}
	return all[idx]
}

// ParseProbability parses a probability label case-insensitively.
// Unrecognized or empty labels default to Low; lenient by policy.
func ParseProbability(s string) Probability {
	for _, v := range AllProbabilities() {
		if strings.EqualFold(s, string(v)) {
			return v
		}
	}
	return ProbabilityLow
}
