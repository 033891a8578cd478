// Package matrix implements the ISO 14971 style risk matrix: the pure
// mapping from (severity, probability) to a risk level, the raw numeric
// score, and the priority ranking derived from it.
package matrix

import (
	"github.com/chent01/riskreg/pkg/domain/model"
	"github.com/chent01/riskreg/pkg/domain/types"
)

// levels is indexed by [severity][probability] ordinal position.
// Probability columns run Remote, Low, Medium, High.
var levels = [4][4]types.RiskLevel{
	// Negligible
	{types.RiskLevelNegligible, types.RiskLevelNegligible, types.RiskLevelNegligible, types.RiskLevelNegligible},
	// Minor
	{types.RiskLevelAcceptable, types.RiskLevelAcceptable, types.RiskLevelUndesirable, types.RiskLevelUndesirable},
	// Serious
	{types.RiskLevelAcceptable, types.RiskLevelAcceptable, types.RiskLevelUndesirable, types.RiskLevelUnacceptable},
	// Catastrophic
	{types.RiskLevelUndesirable, types.RiskLevelUndesirable, types.RiskLevelUnacceptable, types.RiskLevelUnacceptable},
}

// Level returns the risk level for the given severity and probability.
// Invalid inputs are clamped onto the scale, so the function is total.
func Level(sev types.Severity, prob types.Probability) types.RiskLevel {
	s := sev.Index()
	if s < 0 {
		s = types.SeverityMinor.Index()
	}
	p := prob.Index()
	if p < 0 {
		p = types.ProbabilityLow.Index()
	}
	return levels[s][p]
}

// RawScore returns severity score times probability score, range [1, 16]
func RawScore(sev types.Severity, prob types.Probability) int {
	return sev.Score() * prob.Score()
}

// Priority ranks a raw score into 1 (highest) .. 4 (lowest)
func Priority(rawScore int) int {
	switch {
	case rawScore >= 12:
		return 1
	case rawScore >= 8:
		return 2
	case rawScore >= 4:
		return 3
	default:
		return 4
	}
}

// Breakdown returns the full numeric score record for a severity and
// probability pair.
func Breakdown(sev types.Severity, prob types.Probability) model.RiskScore {
	raw := RawScore(sev, prob)
	return model.RiskScore{
		Raw:              raw,
		SeverityScore:    sev.Score(),
		ProbabilityScore: prob.Score(),
		Normalized:       float64(raw) / 16.0,
		Priority:         Priority(raw),
	}
}
