package model

import (
	"slices"
	"time"
)

// Register is the result of a single register-generation run
type Register struct {
	RunID                string
	ProjectName          string
	Items                []*RiskItem
	SkippedCandidates    int
	IdentificationMethod string
	GeneratedAt          time.Time
}

// Clone returns a copy of the register with cloned items
func (r *Register) Clone() *Register {
	c := *r
	c.Items = make([]*RiskItem, len(r.Items))
	for i, item := range r.Items {
		c.Items[i] = item.Clone()
	}
	return &c
}

// RegisterStats summarizes a collection of risk items
type RegisterStats struct {
	Total         int            `json:"total"`
	BySeverity    map[string]int `json:"bySeverity"`
	ByProbability map[string]int `json:"byProbability"`
	ByRiskLevel   map[string]int `json:"byRiskLevel"`
	AverageScore  float64        `json:"averageRiskScore"`
	MaxScore      int            `json:"maxRiskScore"`
	MinScore      int            `json:"minRiskScore"`
}

// RequirementIDs returns the set of requirement ids referenced by the
// register's items, order-preserving and without duplicates.
func (r *Register) RequirementIDs() []string {
	var ids []string
	for _, item := range r.Items {
		for _, id := range item.RelatedRequirements {
			if !slices.Contains(ids, id) {
				ids = append(ids, id)
			}
		}
	}
	return ids
}
