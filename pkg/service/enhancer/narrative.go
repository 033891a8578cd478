package enhancer

import (
	"github.com/chent01/riskreg/pkg/domain/model"
	"github.com/chent01/riskreg/pkg/domain/types"
)

// acceptabilityFor maps the initial risk level onto the four-field
// acceptability record.
func acceptabilityFor(level types.RiskLevel) model.Acceptability {
	switch level {
	case types.RiskLevelUnacceptable:
		return model.Acceptability{
			Acceptable:       false,
			Status:           "Not Acceptable",
			ApprovalRequired: true,
			Action:           "Immediate risk control measures required",
		}
	case types.RiskLevelUndesirable:
		return model.Acceptability{
			Acceptable:       true,
			Status:           "Acceptable",
			ApprovalRequired: true,
			Action:           "Risk control measures recommended",
		}
	case types.RiskLevelAcceptable:
		return model.Acceptability{
			Acceptable:       true,
			Status:           "Acceptable",
			ApprovalRequired: false,
			Action:           "Risk control measures may be considered",
		}
	default: // Negligible
		return model.Acceptability{
			Acceptable:       true,
			Status:           "Acceptable",
			ApprovalRequired: false,
			Action:           "No specific action required",
		}
	}
}

func highTier(level types.RiskLevel) bool {
	return level == types.RiskLevelUndesirable || level == types.RiskLevelUnacceptable
}

// surveillancePlan selects post-market surveillance wording by risk level
// tier and severity.
func surveillancePlan(level types.RiskLevel, sev types.Severity) string {
	switch {
	case highTier(level) && sev == types.SeverityCatastrophic:
		return "Continuous post-market monitoring with real-time complaint trending and " +
			"immediate escalation of any field incident related to this hazard"
	case highTier(level) && sev == types.SeveritySerious:
		return "Quarterly post-market surveillance review of complaints and field data related to this hazard"
	case highTier(level):
		return "Semi-annual post-market surveillance review of complaint and usage data related to this hazard"
	case level == types.RiskLevelAcceptable:
		return "Annual post-market surveillance review as part of routine quality management"
	default: // Negligible
		return "Annual review through routine post-market surveillance; no hazard-specific monitoring required"
	}
}

// riskBenefitStatement selects the risk-benefit narrative purely by the
// initial risk level.
func riskBenefitStatement(level types.RiskLevel) string {
	switch level {
	case types.RiskLevelUnacceptable:
		return "Risk outweighs benefit in the current design. The device must not be released " +
			"until risk control measures reduce this risk to an acceptable level."
	case types.RiskLevelUndesirable:
		return "Benefit justifies the residual risk only with the stated risk control measures " +
			"in place. A documented risk-benefit rationale is required per ISO 14971."
	case types.RiskLevelAcceptable:
		return "Clinical and operational benefit outweighs the residual risk. " +
			"No additional risk-benefit justification is required."
	default: // Negligible
		return "Risk is negligible relative to the intended benefit. Documented for completeness."
	}
}
