package model

import (
	"math"
	"strings"
)

// DefaultConfidence is substituted when a candidate carries no usable
// confidence value.
const DefaultConfidence = 0.5

// HazardCandidate is the parse-boundary shape of a raw hazard proposal,
// as returned by the external oracle. All fields are free-form strings;
// default substitution happens here, not inside the engine.
type HazardCandidate struct {
	Hazard               string   `json:"hazard"`
	Cause                string   `json:"cause"`
	Effect               string   `json:"effect"`
	Severity             string   `json:"severity"`
	Probability          string   `json:"probability"`
	Confidence           *float64 `json:"confidence,omitempty"`
	RelatedRequirementID string   `json:"related_requirement_id,omitempty"`
}

// HasRequiredFields reports whether hazard, cause and effect are all
// present and non-blank.
func (c *HazardCandidate) HasRequiredFields() bool {
	return strings.TrimSpace(c.Hazard) != "" &&
		strings.TrimSpace(c.Cause) != "" &&
		strings.TrimSpace(c.Effect) != ""
}

// NormalizedConfidence clamps the candidate confidence to [0, 1].
// Missing or invalid values fall back to DefaultConfidence.
func (c *HazardCandidate) NormalizedConfidence() float64 {
	if c.Confidence == nil {
		return DefaultConfidence
	}
	v := *c.Confidence
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return DefaultConfidence
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
