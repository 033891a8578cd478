package types

import "strings"

// Severity represents the magnitude of harm a hazard can cause,
// ordered from Negligible (lowest) to Catastrophic (highest).
type Severity string

const (
	SeverityNegligible   Severity = "Negligible"
	SeverityMinor        Severity = "Minor"
	SeveritySerious      Severity = "Serious"
	SeverityCatastrophic Severity = "Catastrophic"
)

// AllSeverities returns all severities in ascending order
func AllSeverities() []Severity {
	return []Severity{
		SeverityNegligible,
		SeverityMinor,
		SeveritySerious,
		SeverityCatastrophic,
	}
}

// IsValid checks if the severity is valid
func (s Severity) IsValid() bool {
	switch s {
	case SeverityNegligible,
		SeverityMinor,
		SeveritySerious,
		SeverityCatastrophic:
		return true
	default:
		return false
	}
}

// Index returns the ordinal position of the severity (0 = Negligible).
// Returns -1 for an invalid severity.
func (s Severity) Index() int {
	for i, v := range AllSeverities() {
		if s == v {
			return i
		}
	}
	return -1
}

// Score returns the numeric score of the severity (1..4)
func (s Severity) Score() int {
	return s.Index() + 1
}

// String returns the string representation of the severity
func (s Severity) String() string {
	return string(s)
}

// SeverityAt returns the severity at the given ordinal position,
// clamped to the valid range.
func SeverityAt(idx int) Severity {
	all := AllSeverities()
	if idx < 0 {
		idx = 0
	}
	if idx >= len(all) {
		idx = len(all) - 1
	}
	return all[idx]
}

// ParseSeverity parses a severity label case-insensitively. Unrecognized
// or empty labels default to Minor; lenient by policy, never an error.
func ParseSeverity(s string) Severity {
	for _, v := range AllSeverities() {
		if strings.EqualFold(s, string(v)) {
			return v
		}
	}
	return SeverityMinor
}
