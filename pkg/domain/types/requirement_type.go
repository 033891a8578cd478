package types

import "github.com/m-mizutani/goerr/v2"

// RequirementType represents the kind of requirement a risk traces back to
type RequirementType string

const (
	RequirementTypeUser     RequirementType = "User"
	RequirementTypeSoftware RequirementType = "Software"
	RequirementTypeSystem   RequirementType = "System"
)

// AllRequirementTypes returns all valid requirement types
func AllRequirementTypes() []RequirementType {
	return []RequirementType{
		RequirementTypeUser,
		RequirementTypeSoftware,
		RequirementTypeSystem,
	}
}

// IsValid checks if the requirement type is valid
func (t RequirementType) IsValid() bool {
	switch t {
	case RequirementTypeUser,
		RequirementTypeSoftware,
		RequirementTypeSystem:
		return true
	default:
		return false
	}
}

// String returns the string representation of the requirement type
func (t RequirementType) String() string {
	return string(t)
}

// ParseRequirementType parses a string into a RequirementType
func ParseRequirementType(s string) (RequirementType, error) {
	t := RequirementType(s)
	if !t.IsValid() {
		return "", goerr.New("invalid requirement type", goerr.V("type", s))
	}
	return t, nil
}
