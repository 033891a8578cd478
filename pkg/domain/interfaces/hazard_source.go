package interfaces

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/chent01/riskreg/pkg/domain/model"
)

// ErrOracleUnavailable marks a recoverable failure of the hazard proposal
// oracle. Callers fall back to heuristic identification when they see it;
// any other error from Propose is fatal and must propagate.
var ErrOracleUnavailable = goerr.New("hazard oracle unavailable")

// HazardSource proposes raw hazard candidates for a batch of requirements
type HazardSource interface {
	Propose(ctx context.Context, batch []*model.Requirement) ([]*model.HazardCandidate, error)
}
