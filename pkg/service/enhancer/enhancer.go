// Package enhancer enriches a classified risk item with the ISO 14971
// fields: residual risk, acceptability determination, extracted risk
// control measures, post-market surveillance plan, and risk-benefit
// statement. Enhancement runs exactly once per item and never discards
// fields set by the classifier.
package enhancer

import (
	"strings"

	"github.com/chent01/riskreg/pkg/domain/model"
	"github.com/chent01/riskreg/pkg/service/matrix"
	"github.com/chent01/riskreg/pkg/service/mitigation"
)

const maxControlMeasures = 5

// minMeasureLength filters out fragments left over from splitting, such
// as list bullets or bare conjunctions.
const minMeasureLength = 10

// measureSeparators are checked in order; the first one present in the
// mitigation text is used to split it into control measures.
var measureSeparators = []string{";", "\n", "•", "-", "*"}

// Enhancer computes the enrichment fields. Stateless; a single instance
// is safe for concurrent use.
type Enhancer struct{}

// New creates an Enhancer
func New() *Enhancer {
	return &Enhancer{}
}

// Enhance returns an enriched copy of the item. The input is not mutated.
func (e *Enhancer) Enhance(item *model.RiskItem) *model.RiskItem {
	out := item.Clone()

	effectiveness := mitigation.Effectiveness(out.Mitigation)
	out.RiskControlEffectiveness = &effectiveness

	residualSev, residualProb := mitigation.Reduce(out.Severity, out.Probability, effectiveness)
	out.ResidualSeverity = residualSev
	out.ResidualProbability = residualProb
	out.ResidualRiskLevel = matrix.Level(residualSev, residualProb)

	out.RiskControlMeasures = extractControlMeasures(out.Mitigation)

	// Acceptability is determined from the initial classification, not
	// the residual one.
	acceptability := acceptabilityFor(out.RiskLevel)
	out.Acceptability = &acceptability
	out.RiskAcceptability = acceptability.Status

	out.PostMarketSurveillance = surveillancePlan(out.RiskLevel, out.Severity)
	out.RiskBenefitAnalysis = riskBenefitStatement(out.RiskLevel)

	if out.Metadata == nil {
		out.Metadata = map[string]any{}
	}
	out.Metadata[model.MetaRiskScore] = matrix.Breakdown(out.Severity, out.Probability)

	return out
}

// extractControlMeasures splits mitigation text into discrete control
// measures on the first separator found, trims each part, drops short
// fragments, and caps the list at five entries. Text without a separator
// becomes a single measure.
func extractControlMeasures(mitigationText string) []string {
	trimmed := strings.TrimSpace(mitigationText)
	if trimmed == "" {
		return nil
	}

	var parts []string
	for _, sep := range measureSeparators {
		if strings.Contains(trimmed, sep) {
			parts = strings.Split(trimmed, sep)
			break
		}
	}
	if parts == nil {
		return []string{trimmed}
	}

	var measures []string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if len(part) <= minMeasureLength {
			continue
		}
		measures = append(measures, part)
		if len(measures) == maxControlMeasures {
			break
		}
	}
	return measures
}
