package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/chent01/riskreg/pkg/domain/model"
	"github.com/chent01/riskreg/pkg/service/matrix"
)

// csvHeader is the fixed column set of the CSV export. Order is part of
// the contract and must not change.
var csvHeader = []string{
	"Risk_ID",
	"Hazard",
	"Cause",
	"Effect",
	"Severity",
	"Probability",
	"Risk_Level",
	"Risk_Score",
	"Priority",
	"Mitigation",
	"Verification",
	"Related_Requirements",
	"Risk_Control_Measures",
	"Residual_Severity",
	"Residual_Probability",
	"Residual_Risk_Level",
	"Risk_Acceptability",
	"Control_Effectiveness",
	"Post_Market_Surveillance",
	"Risk_Benefit_Analysis",
	"Action_Required",
}

// WriteCSV renders one row per risk item with the fixed column set
func (e *Exporter) WriteCSV(w io.Writer, items []*model.RiskItem) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return goerr.Wrap(err, "failed to write CSV header")
	}

	for _, item := range items {
		if err := cw.Write(csvRow(item)); err != nil {
			return goerr.Wrap(err, "failed to write CSV row", goerr.V("id", item.ID))
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return goerr.Wrap(err, "failed to flush CSV")
	}
	return nil
}

// scoreOf reads the breakdown stored during enhancement, recomputing it
// for items that were never enhanced.
func scoreOf(item *model.RiskItem) model.RiskScore {
	if s, ok := item.Metadata[model.MetaRiskScore].(model.RiskScore); ok {
		return s
	}
	return matrix.Breakdown(item.Severity, item.Probability)
}

func csvRow(item *model.RiskItem) []string {
	score := scoreOf(item)

	effectiveness := ""
	if item.RiskControlEffectiveness != nil {
		effectiveness = fmt.Sprintf("%.2f", *item.RiskControlEffectiveness)
	}

	action := ""
	if item.Acceptability != nil {
		action = item.Acceptability.Action
	}

	return []string{
		item.ID,
		item.Hazard,
		item.Cause,
		item.Effect,
		item.Severity.String(),
		item.Probability.String(),
		item.RiskLevel.String(),
		strconv.Itoa(score.Raw),
		strconv.Itoa(score.Priority),
		item.Mitigation,
		item.Verification,
		strings.Join(item.RelatedRequirements, ";"),
		strings.Join(item.RiskControlMeasures, ";"),
		item.ResidualSeverity.String(),
		item.ResidualProbability.String(),
		item.ResidualRiskLevel.String(),
		item.RiskAcceptability,
		effectiveness,
		item.PostMarketSurveillance,
		item.RiskBenefitAnalysis,
		action,
	}
}
