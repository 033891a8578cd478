// Package classifier turns raw hazard candidates into classified risk
// items: it validates required fields, parses severity and probability
// labels leniently, derives the risk level from the risk matrix, resolves
// requirement traceability, and generates mitigation and verification text
// from deterministic keyword templates.
package classifier

import (
	"fmt"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/chent01/riskreg/pkg/domain/model"
	"github.com/chent01/riskreg/pkg/domain/types"
	"github.com/chent01/riskreg/pkg/service/matrix"
)

// Classifier creates risk items from hazard candidates. It owns the only
// mutable state in the engine: the sequential id counter. A single
// instance is safe for concurrent use across batches.
type Classifier struct {
	mu     sync.Mutex
	nextID int
}

// New creates a classifier with a fresh id sequence starting at RISK_0001
func New() *Classifier {
	return &Classifier{nextID: 1}
}

func (c *Classifier) nextRiskID() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := fmt.Sprintf("RISK_%04d", c.nextID)
	c.nextID++
	return id
}

// Classify validates a candidate and produces a classified RiskItem.
// Candidates missing hazard, cause or effect yield an error; the caller
// logs and skips them without aborting the run. Unrecognized severity and
// probability labels substitute the documented defaults rather than
// failing.
func (c *Classifier) Classify(cand *model.HazardCandidate, batch []*model.Requirement) (*model.RiskItem, error) {
	if cand == nil {
		return nil, goerr.New("candidate is nil")
	}
	if !cand.HasRequiredFields() {
		return nil, goerr.New("candidate is missing required fields",
			goerr.V("hazard", cand.Hazard),
			goerr.V("cause", cand.Cause),
			goerr.V("effect", cand.Effect),
		)
	}

	sev := types.ParseSeverity(cand.Severity)
	prob := types.ParseProbability(cand.Probability)

	category, matched := matchCategory(cand.Hazard, cand.Cause)

	item := &model.RiskItem{
		ID:                  c.nextRiskID(),
		Hazard:              strings.TrimSpace(cand.Hazard),
		Cause:               strings.TrimSpace(cand.Cause),
		Effect:              strings.TrimSpace(cand.Effect),
		Severity:            sev,
		Probability:         prob,
		RiskLevel:           matrix.Level(sev, prob),
		Mitigation:          mitigationTemplate(category, sev),
		Verification:        verificationTemplate(category, sev),
		RelatedRequirements: resolveRequirements(cand.RelatedRequirementID, batch),
		Metadata: map[string]any{
			model.MetaConfidence:           cand.NormalizedConfidence(),
			model.MetaIdentificationMethod: model.IdentificationLLM,
			model.MetaMatchedKeywords:      matched,
		},
	}

	return item, nil
}

// resolveRequirements maps a candidate's requirement reference onto the
// batch: exact id match first, then substring match in either direction,
// and finally all requirements in the batch so an item is never left
// without traceability.
func resolveRequirements(relID string, batch []*model.Requirement) []string {
	relID = strings.TrimSpace(relID)
	if relID != "" {
		for _, req := range batch {
			if req.ID == relID {
				return []string{req.ID}
			}
		}

		var matched []string
		for _, req := range batch {
			if strings.Contains(req.ID, relID) || strings.Contains(relID, req.ID) {
				matched = append(matched, req.ID)
			}
		}
		if len(matched) > 0 {
			return matched
		}
	}

	ids := make([]string, 0, len(batch))
	for _, req := range batch {
		ids = append(ids, req.ID)
	}
	return ids
}
