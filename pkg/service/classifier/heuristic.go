package classifier

import (
	"strings"

	"github.com/chent01/riskreg/pkg/domain/model"
	"github.com/chent01/riskreg/pkg/domain/types"
)

// HeuristicConfidence is recorded on items produced without the oracle
const HeuristicConfidence = 0.3

// heuristicGroups are scanned in order against requirement text; the
// first group with a keyword hit emits exactly one fixed candidate.
var heuristicGroups = []struct {
	keywords    []string
	hazard      string
	cause       string
	effect      string
	severity    types.Severity
	probability types.Probability
}{
	{
		keywords:    []string{"data", "input", "validation", "process"},
		hazard:      "Incorrect data processing",
		cause:       "Software fails to validate or process input data correctly",
		effect:      "Incorrect results presented to the user",
		severity:    types.SeveritySerious,
		probability: types.ProbabilityMedium,
	},
	{
		keywords:    []string{"user", "interface", "display", "output"},
		hazard:      "Misleading information shown to the user",
		cause:       "User interface displays wrong or stale values",
		effect:      "User makes an incorrect decision based on displayed data",
		severity:    types.SeveritySerious,
		probability: types.ProbabilityLow,
	},
	{
		keywords:    []string{"communication", "network", "connection", "transfer"},
		hazard:      "Loss or corruption of transmitted data",
		cause:       "Network or connection failure during data transfer",
		effect:      "Incomplete or corrupted data received by the device",
		severity:    types.SeveritySerious,
		probability: types.ProbabilityMedium,
	},
	{
		keywords:    []string{"storage", "save", "database", "file"},
		hazard:      "Loss or corruption of stored data",
		cause:       "Failure while saving data to database or file storage",
		effect:      "Stored records become lost or unreadable",
		severity:    types.SeveritySerious,
		probability: types.ProbabilityLow,
	},
	{
		keywords:    []string{"algorithm", "calculation", "compute", "analysis"},
		hazard:      "Incorrect calculation result",
		cause:       "Defect in the algorithm or computation logic",
		effect:      "Wrong analysis output used for clinical decisions",
		severity:    types.SeveritySerious,
		probability: types.ProbabilityMedium,
	},
}

// IdentifyHeuristically emits at most one risk item for a requirement by
// scanning its text against the fixed keyword groups. Used when the
// hazard oracle is unavailable. Returns nil when no group matches.
func (c *Classifier) IdentifyHeuristically(req *model.Requirement) *model.RiskItem {
	if req == nil {
		return nil
	}
	text := strings.ToLower(req.Text)

	for _, group := range heuristicGroups {
		for _, keyword := range group.keywords {
			if !strings.Contains(text, keyword) {
				continue
			}

			confidence := HeuristicConfidence
			cand := &model.HazardCandidate{
				Hazard:               group.hazard,
				Cause:                group.cause,
				Effect:               group.effect,
				Severity:             group.severity.String(),
				Probability:          group.probability.String(),
				Confidence:           &confidence,
				RelatedRequirementID: req.ID,
			}

			// Fixed templates always carry the required fields, so
			// classification cannot fail here.
			item, err := c.Classify(cand, []*model.Requirement{req})
			if err != nil {
				return nil
			}
			item.Metadata[model.MetaIdentificationMethod] = model.IdentificationHeuristic
			return item
		}
	}
	return nil
}
