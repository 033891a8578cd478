package model

// RiskScore is the numeric breakdown of an initial risk assessment,
// stored under the riskScore metadata key.
type RiskScore struct {
	Raw              int     `json:"rawScore"`
	SeverityScore    int     `json:"severityScore"`
	ProbabilityScore int     `json:"probabilityScore"`
	Normalized       float64 `json:"normalizedScore"`
	Priority         int     `json:"riskPriority"`
}
