package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/chent01/riskreg/pkg/domain/interfaces"
	"github.com/chent01/riskreg/pkg/domain/model"
	"github.com/chent01/riskreg/pkg/service/classifier"
	"github.com/chent01/riskreg/pkg/service/enhancer"
	"github.com/chent01/riskreg/pkg/utils/logging"
)

// DefaultBatchSize is the number of requirements sent to the oracle per
// request when the caller does not specify one.
const DefaultBatchSize = 10

// RegisterUseCase runs the full identification, classification, and
// enhancement pipeline over a set of requirements and stores the result.
type RegisterUseCase struct {
	repo       interfaces.Repository
	source     interfaces.HazardSource
	classifier *classifier.Classifier
	enhancer   *enhancer.Enhancer
	now        func() time.Time
}

func NewRegisterUseCase(repo interfaces.Repository, source interfaces.HazardSource, cls *classifier.Classifier, enh *enhancer.Enhancer) *RegisterUseCase {
	return &RegisterUseCase{
		repo:       repo,
		source:     source,
		classifier: cls,
		enhancer:   enh,
		now:        time.Now,
	}
}

// batchResult carries one batch's raw oracle output back to the merge
// step. Classification runs serially in batch order afterwards so risk
// ids stay deterministic regardless of oracle latency.
type batchResult struct {
	candidates []*model.HazardCandidate
	heuristic  bool
}

// Generate produces a risk register for the given requirements. Oracle
// calls run concurrently per batch; a batch whose oracle call fails with
// ErrOracleUnavailable falls back to heuristic identification, while any
// other oracle error aborts the whole run. Candidates missing required
// fields are counted as skipped and never abort the run.
func (uc *RegisterUseCase) Generate(ctx context.Context, projectName string, reqs []*model.Requirement, batchSize int) (*model.Register, error) {
	if len(reqs) == 0 {
		return nil, goerr.New("no requirements to assess")
	}
	for _, req := range reqs {
		if err := req.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid requirement")
		}
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	batches := splitBatches(reqs, batchSize)
	results := make([]batchResult, len(batches))

	// Downstream log records carry the project name
	logger := logging.From(ctx).With("project", projectName)
	ctx = logging.With(ctx, logger)

	logger.Info("starting risk identification",
		"requirements", len(reqs),
		"batches", len(batches),
	)

	g, gctx := errgroup.WithContext(ctx)
	for i, batch := range batches {
		g.Go(func() error {
			result, err := uc.proposeBatch(gctx, batch)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	register := &model.Register{
		RunID:       uuid.Must(uuid.NewV7()).String(),
		ProjectName: projectName,
		GeneratedAt: uc.now().UTC(),
	}

	heuristicBatches := 0
	for i, result := range results {
		batch := batches[i]

		if result.heuristic {
			heuristicBatches++
			for _, req := range batch {
				if item := uc.classifier.IdentifyHeuristically(req); item != nil {
					register.Items = append(register.Items, uc.enhancer.Enhance(item))
				}
			}
			continue
		}

		for _, cand := range result.candidates {
			item, err := uc.classifier.Classify(cand, batch)
			if err != nil {
				logger.Warn("skipping invalid hazard candidate", "error", err, "hazard", cand.Hazard)
				register.SkippedCandidates++
				continue
			}
			register.Items = append(register.Items, uc.enhancer.Enhance(item))
		}
	}

	switch heuristicBatches {
	case 0:
		register.IdentificationMethod = model.IdentificationLLM
	case len(batches):
		register.IdentificationMethod = model.IdentificationHeuristic
	default:
		register.IdentificationMethod = model.IdentificationMixed
	}

	if err := uc.repo.Register().Put(ctx, register); err != nil {
		return nil, goerr.Wrap(err, "failed to store register")
	}

	logger.Info("risk register generated",
		"runID", register.RunID,
		"risks", len(register.Items),
		"skipped", register.SkippedCandidates,
		"method", register.IdentificationMethod,
	)

	return register, nil
}

// proposeBatch queries the oracle for one batch, downgrading recoverable
// oracle failures to a heuristic marker.
func (uc *RegisterUseCase) proposeBatch(ctx context.Context, batch []*model.Requirement) (batchResult, error) {
	if uc.source == nil {
		return batchResult{heuristic: true}, nil
	}

	candidates, err := uc.source.Propose(ctx, batch)
	if err != nil {
		if errors.Is(err, interfaces.ErrOracleUnavailable) {
			logging.From(ctx).Warn("hazard oracle unavailable, falling back to heuristics", "error", err)
			return batchResult{heuristic: true}, nil
		}
		return batchResult{}, goerr.Wrap(err, "hazard identification failed")
	}
	return batchResult{candidates: candidates}, nil
}

func splitBatches(reqs []*model.Requirement, size int) [][]*model.Requirement {
	var batches [][]*model.Requirement
	for start := 0; start < len(reqs); start += size {
		end := min(start+size, len(reqs))
		batches = append(batches, reqs[start:end])
	}
	return batches
}
