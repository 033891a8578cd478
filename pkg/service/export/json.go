package export

import (
	"encoding/json"
	"io"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/chent01/riskreg/pkg/domain/model"
)

type jsonEnvelope struct {
	RiskRegister jsonRegister `json:"riskRegister"`
}

type jsonRegister struct {
	ExportTimestamp   string     `json:"exportTimestamp"`
	TotalRisks        int        `json:"totalRisks"`
	ISO14971Compliant bool       `json:"iso14971Compliant"`
	Risks             []jsonRisk `json:"risks"`
}

type jsonRisk struct {
	ID                       string         `json:"id"`
	Hazard                   string         `json:"hazard"`
	Cause                    string         `json:"cause"`
	Effect                   string         `json:"effect"`
	Severity                 string         `json:"severity"`
	Probability              string         `json:"probability"`
	RiskLevel                string         `json:"riskLevel"`
	Mitigation               string         `json:"mitigation"`
	Verification             string         `json:"verification"`
	RelatedRequirements      []string       `json:"relatedRequirements"`
	RiskControlMeasures      []string       `json:"riskControlMeasures"`
	ResidualRiskSeverity     string         `json:"residualRiskSeverity,omitempty"`
	ResidualRiskProbability  string         `json:"residualRiskProbability,omitempty"`
	ResidualRiskLevel        string         `json:"residualRiskLevel,omitempty"`
	RiskAcceptability        string         `json:"riskAcceptability,omitempty"`
	RiskControlEffectiveness *float64       `json:"riskControlEffectiveness,omitempty"`
	PostMarketSurveillance   string         `json:"postMarketSurveillance,omitempty"`
	RiskBenefitAnalysis      string         `json:"riskBenefitAnalysis,omitempty"`
	Metadata                 map[string]any `json:"metadata,omitempty"`
}

// WriteJSON renders the riskRegister envelope. Per-item metadata is only
// included when the exporter was created with WithMetadata(true).
func (e *Exporter) WriteJSON(w io.Writer, items []*model.RiskItem) error {
	doc := jsonEnvelope{
		RiskRegister: jsonRegister{
			ExportTimestamp:   e.now().UTC().Format(time.RFC3339),
			TotalRisks:        len(items),
			ISO14971Compliant: true,
			Risks:             make([]jsonRisk, 0, len(items)),
		},
	}

	for _, item := range items {
		risk := jsonRisk{
			ID:                       item.ID,
			Hazard:                   item.Hazard,
			Cause:                    item.Cause,
			Effect:                   item.Effect,
			Severity:                 item.Severity.String(),
			Probability:              item.Probability.String(),
			RiskLevel:                item.RiskLevel.String(),
			Mitigation:               item.Mitigation,
			Verification:             item.Verification,
			RelatedRequirements:      item.RelatedRequirements,
			RiskControlMeasures:      item.RiskControlMeasures,
			ResidualRiskSeverity:     item.ResidualSeverity.String(),
			ResidualRiskProbability:  item.ResidualProbability.String(),
			ResidualRiskLevel:        item.ResidualRiskLevel.String(),
			RiskAcceptability:        item.RiskAcceptability,
			RiskControlEffectiveness: item.RiskControlEffectiveness,
			PostMarketSurveillance:   item.PostMarketSurveillance,
			RiskBenefitAnalysis:      item.RiskBenefitAnalysis,
		}
		if e.includeMetadata {
			risk.Metadata = item.Metadata
		}
		doc.RiskRegister.Risks = append(doc.RiskRegister.Risks, risk)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return goerr.Wrap(err, "failed to encode risk register JSON")
	}
	return nil
}
