package model

import (
	"maps"
	"slices"

	"github.com/chent01/riskreg/pkg/domain/types"
)

// Metadata keys stored on a RiskItem
const (
	MetaConfidence           = "confidence"
	MetaIdentificationMethod = "identificationMethod"
	MetaMatchedKeywords      = "matchedKeywords"
	MetaRiskScore            = "riskScore"
)

// Identification methods recorded in item metadata
const (
	IdentificationLLM       = "llm"
	IdentificationHeuristic = "heuristic"

	// IdentificationMixed marks a run where some batches fell back to
	// heuristics while others used the oracle.
	IdentificationMixed = "mixed"
)

// Acceptability is the four-field acceptability determination derived from
// the initial risk level during enhancement.
type Acceptability struct {
	Acceptable       bool   `json:"acceptable"`
	Status           string `json:"status"`
	ApprovalRequired bool   `json:"approvalRequired"`
	Action           string `json:"action"`
}

// RiskItem is the engine's core entity. It is created once by the
// classifier, enriched exactly once by the enhancer, and never mutated
// afterwards. Residual and acceptability fields stay zero until
// enhancement runs.
type RiskItem struct {
	ID string

	Hazard string
	Cause  string
	Effect string

	Severity    types.Severity
	Probability types.Probability

	// RiskLevel is always derived from (Severity, Probability) via the
	// risk matrix, never set directly by callers.
	RiskLevel types.RiskLevel

	Mitigation   string
	Verification string

	RelatedRequirements []string
	RiskControlMeasures []string

	ResidualSeverity    types.Severity
	ResidualProbability types.Probability
	ResidualRiskLevel   types.RiskLevel

	RiskAcceptability        string
	Acceptability            *Acceptability
	RiskControlEffectiveness *float64

	PostMarketSurveillance string
	RiskBenefitAnalysis    string

	Metadata map[string]any
}

// Enhanced reports whether the item has been through enhancement
func (r *RiskItem) Enhanced() bool {
	return r.ResidualRiskLevel != ""
}

// Clone returns a deep copy of the item so enhancement never mutates the
// classifier's output in place.
func (r *RiskItem) Clone() *RiskItem {
	c := *r
	c.RelatedRequirements = slices.Clone(r.RelatedRequirements)
	c.RiskControlMeasures = slices.Clone(r.RiskControlMeasures)
	if r.Metadata != nil {
		c.Metadata = maps.Clone(r.Metadata)
	}
	if r.RiskControlEffectiveness != nil {
		v := *r.RiskControlEffectiveness
		c.RiskControlEffectiveness = &v
	}
	if r.Acceptability != nil {
		a := *r.Acceptability
		c.Acceptability = &a
	}
	return &c
}
