// Package oracle proposes hazard candidates for requirement batches by
// querying an LLM through gollem with a structured JSON response schema.
package oracle

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"

	"github.com/chent01/riskreg/pkg/domain/interfaces"
	"github.com/chent01/riskreg/pkg/domain/model"
	"github.com/chent01/riskreg/pkg/utils/logging"
)

//go:embed prompt/hazard_system.md
var hazardSystemPrompt string

// Client implements interfaces.HazardSource on top of a gollem LLM client
type Client struct {
	llmClient gollem.LLMClient
}

// New creates a hazard oracle with the provided LLM client
func New(llmClient gollem.LLMClient) (*Client, error) {
	if llmClient == nil {
		return nil, goerr.New("LLM client is required")
	}
	return &Client{llmClient: llmClient}, nil
}

type hazardResponse struct {
	Hazards []*model.HazardCandidate `json:"hazards"`
}

// Propose asks the LLM for hazard candidates covering the batch. Session
// and generation failures are wrapped in ErrOracleUnavailable so callers
// can fall back to heuristic identification; a response that arrives but
// cannot be parsed is a fatal error instead, because silently discarding
// a delivered answer would hide oracle regressions.
func (c *Client) Propose(ctx context.Context, batch []*model.Requirement) ([]*model.HazardCandidate, error) {
	if len(batch) == 0 {
		return nil, nil
	}

	session, err := c.llmClient.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionResponseSchema(buildResponseSchema()),
		gollem.WithSessionSystemPrompt(hazardSystemPrompt),
	)
	if err != nil {
		return nil, goerr.Wrap(interfaces.ErrOracleUnavailable, "failed to create LLM session", goerr.V("cause", err))
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(buildUserPrompt(batch)))
	if err != nil {
		return nil, goerr.Wrap(interfaces.ErrOracleUnavailable, "failed to generate hazard proposals", goerr.V("cause", err))
	}
	if len(resp.Texts) == 0 {
		return nil, goerr.Wrap(interfaces.ErrOracleUnavailable, "hazard proposal returned empty response")
	}

	var parsed hazardResponse
	if err := json.Unmarshal([]byte(resp.Texts[0]), &parsed); err != nil {
		return nil, goerr.Wrap(err, "failed to parse hazard proposal JSON", goerr.V("response", resp.Texts[0]))
	}

	logging.From(ctx).Debug("hazard oracle responded",
		"requirements", len(batch),
		"candidates", len(parsed.Hazards),
	)

	return parsed.Hazards, nil
}

// buildUserPrompt renders the requirement batch for the LLM
func buildUserPrompt(batch []*model.Requirement) string {
	var sb strings.Builder

	sb.WriteString("Propose hazards for the following software requirements.\n\n")
	sb.WriteString("## Requirements:\n\n")

	for _, req := range batch {
		fmt.Fprintf(&sb, "### Requirement ID: %s\n", req.ID)
		fmt.Fprintf(&sb, "**Type:** %s\n", req.Type)
		fmt.Fprintf(&sb, "**Text:** %s\n", req.Text)
		if len(req.AcceptanceCriteria) > 0 {
			fmt.Fprintf(&sb, "**Acceptance Criteria:** %s\n", strings.Join(req.AcceptanceCriteria, "; "))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// buildResponseSchema creates the JSON schema for structured output
func buildResponseSchema() *gollem.Parameter {
	return &gollem.Parameter{
		Title:       "HazardProposalResponse",
		Description: "Hazard candidates identified for a batch of requirements",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"hazards": {
				Type:        gollem.TypeArray,
				Description: "List of proposed hazards. Empty if no credible hazard exists.",
				Items: &gollem.Parameter{
					Type: gollem.TypeObject,
					Properties: map[string]*gollem.Parameter{
						"hazard": {
							Type:        gollem.TypeString,
							Description: "Short name of the hazardous situation",
						},
						"cause": {
							Type:        gollem.TypeString,
							Description: "Failure mode or condition leading to the hazard",
						},
						"effect": {
							Type:        gollem.TypeString,
							Description: "Harm or consequence if the hazard occurs",
						},
						"severity": {
							Type:        gollem.TypeString,
							Description: "One of Negligible, Minor, Serious, Catastrophic",
						},
						"probability": {
							Type:        gollem.TypeString,
							Description: "One of Remote, Low, Medium, High",
						},
						"related_requirement_id": {
							Type:        gollem.TypeString,
							Description: "ID of the requirement most directly involved",
						},
						"confidence": {
							Type:        gollem.TypeNumber,
							Description: "Confidence in this hazard, between 0.0 and 1.0",
						},
					},
					Required: []string{"hazard", "cause", "effect", "severity", "probability"},
				},
			},
		},
		Required: []string{"hazards"},
	}
}
