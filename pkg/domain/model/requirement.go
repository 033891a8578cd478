package model

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/chent01/riskreg/pkg/domain/types"
)

// Requirement is an immutable input record produced upstream of the engine
type Requirement struct {
	ID                 string                `json:"id" toml:"id"`
	Type               types.RequirementType `json:"type" toml:"type"`
	Text               string                `json:"text" toml:"text"`
	AcceptanceCriteria []string              `json:"acceptance_criteria,omitempty" toml:"acceptance-criteria"`
	DerivedFrom        []string              `json:"derived_from,omitempty" toml:"derived-from"`
}

// Validate checks the requirement has the fields the engine relies on
func (r *Requirement) Validate() error {
	if r.ID == "" {
		return goerr.New("requirement ID is required")
	}
	if !r.Type.IsValid() {
		return goerr.New("invalid requirement type", goerr.V("id", r.ID), goerr.V("type", r.Type))
	}
	if r.Text == "" {
		return goerr.New("requirement text is required", goerr.V("id", r.ID))
	}
	return nil
}
