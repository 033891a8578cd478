package oracle_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gt"

	"github.com/chent01/riskreg/pkg/domain/interfaces"
	"github.com/chent01/riskreg/pkg/domain/model"
	"github.com/chent01/riskreg/pkg/domain/types"
	"github.com/chent01/riskreg/pkg/service/oracle"
)

// mockLLMSession is a mock gollem Session for testing
type mockLLMSession struct {
	generateContentFn func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error)
}

func (s *mockLLMSession) GenerateContent(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
	if s.generateContentFn != nil {
		return s.generateContentFn(ctx, input...)
	}
	return &gollem.Response{Texts: []string{`{"hazards":[]}`}}, nil
}

func (s *mockLLMSession) GenerateStream(ctx context.Context, input ...gollem.Input) (<-chan *gollem.Response, error) {
	return nil, nil
}

func (s *mockLLMSession) History() (*gollem.History, error) {
	return nil, nil
}

func (s *mockLLMSession) AppendHistory(*gollem.History) error {
	return nil
}

func (s *mockLLMSession) CountToken(ctx context.Context, input ...gollem.Input) (int, error) {
	return 0, nil
}

// mockLLMClient is a mock gollem LLMClient for testing
type mockLLMClient struct {
	newSessionFn func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error)
}

func (c *mockLLMClient) NewSession(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
	if c.newSessionFn != nil {
		return c.newSessionFn(ctx, options...)
	}
	return &mockLLMSession{}, nil
}

func (c *mockLLMClient) GenerateEmbedding(ctx context.Context, dimension int, input []string) ([][]float64, error) {
	return nil, nil
}

func testBatch() []*model.Requirement {
	return []*model.Requirement{
		{
			ID:   "REQ-001",
			Type: types.RequirementTypeSoftware,
			Text: "The system shall validate dose inputs before delivery",
		},
		{
			ID:   "REQ-002",
			Type: types.RequirementTypeUser,
			Text: "The operator shall confirm alarm settings at startup",
		},
	}
}

func TestProposeParsesCandidates(t *testing.T) {
	ctx := context.Background()

	mockClient := &mockLLMClient{
		newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
			return &mockLLMSession{
				generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
					return &gollem.Response{Texts: []string{`{
						"hazards": [
							{
								"hazard": "Incorrect dose delivered",
								"cause": "Validation bypassed on rapid input",
								"effect": "Patient overdose",
								"severity": "Catastrophic",
								"probability": "Low",
								"related_requirement_id": "REQ-001",
								"confidence": 0.85
							}
						]
					}`}}, nil
				},
			}, nil
		},
	}

	src, err := oracle.New(mockClient)
	gt.NoError(t, err).Required()

	candidates, err := src.Propose(ctx, testBatch())
	gt.NoError(t, err).Required()
	gt.Array(t, candidates).Length(1)

	cand := candidates[0]
	gt.Value(t, cand.Hazard).Equal("Incorrect dose delivered")
	gt.Value(t, cand.Severity).Equal("Catastrophic")
	gt.Value(t, cand.RelatedRequirementID).Equal("REQ-001")
	gt.Value(t, cand.NormalizedConfidence()).Equal(0.85)
}

func TestProposeEmptyBatch(t *testing.T) {
	src, err := oracle.New(&mockLLMClient{})
	gt.NoError(t, err).Required()

	candidates, err := src.Propose(context.Background(), nil)
	gt.NoError(t, err)
	gt.Array(t, candidates).Length(0)
}

func TestProposeSessionFailureIsRecoverable(t *testing.T) {
	mockClient := &mockLLMClient{
		newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
			return nil, errors.New("quota exceeded")
		},
	}

	src, err := oracle.New(mockClient)
	gt.NoError(t, err).Required()

	_, err = src.Propose(context.Background(), testBatch())
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, interfaces.ErrOracleUnavailable)).True()
}

func TestProposeGenerationFailureIsRecoverable(t *testing.T) {
	mockClient := &mockLLMClient{
		newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
			return &mockLLMSession{
				generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
					return nil, errors.New("deadline exceeded")
				},
			}, nil
		},
	}

	src, err := oracle.New(mockClient)
	gt.NoError(t, err).Required()

	_, err = src.Propose(context.Background(), testBatch())
	gt.Bool(t, errors.Is(err, interfaces.ErrOracleUnavailable)).True()
}

func TestProposeMalformedJSONIsFatal(t *testing.T) {
	mockClient := &mockLLMClient{
		newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
			return &mockLLMSession{
				generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
					return &gollem.Response{Texts: []string{"not json at all"}}, nil
				},
			}, nil
		},
	}

	src, err := oracle.New(mockClient)
	gt.NoError(t, err).Required()

	_, err = src.Propose(context.Background(), testBatch())
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, interfaces.ErrOracleUnavailable)).False()
}

func TestNewRequiresClient(t *testing.T) {
	_, err := oracle.New(nil)
	gt.Error(t, err)
}
