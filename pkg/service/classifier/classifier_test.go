package classifier_test

import (
	"fmt"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/chent01/riskreg/pkg/domain/model"
	"github.com/chent01/riskreg/pkg/domain/types"
	"github.com/chent01/riskreg/pkg/service/classifier"
)

func floatPtr(v float64) *float64 { return &v }

func testBatch() []*model.Requirement {
	return []*model.Requirement{
		{ID: "REQ-001", Type: types.RequirementTypeSoftware, Text: "The software shall validate all input data"},
		{ID: "REQ-002", Type: types.RequirementTypeUser, Text: "The user shall confirm before export"},
		{ID: "REQ-003", Type: types.RequirementTypeSystem, Text: "The system shall store records in a database"},
	}
}

func TestClassify_Basic(t *testing.T) {
	c := classifier.New()

	item, err := c.Classify(&model.HazardCandidate{
		Hazard:               "Software calculates wrong dose",
		Cause:                "Algorithm defect in dose computation",
		Effect:               "Patient receives incorrect dose",
		Severity:             "Catastrophic",
		Probability:          "High",
		Confidence:           floatPtr(0.9),
		RelatedRequirementID: "REQ-001",
	}, testBatch())
	gt.NoError(t, err).Required()

	gt.Value(t, item.ID).Equal("RISK_0001")
	gt.Value(t, item.Severity).Equal(types.SeverityCatastrophic)
	gt.Value(t, item.Probability).Equal(types.ProbabilityHigh)
	gt.Value(t, item.RiskLevel).Equal(types.RiskLevelUnacceptable)
	gt.Array(t, item.RelatedRequirements).Equal([]string{"REQ-001"})
	gt.Value(t, item.Metadata[model.MetaConfidence]).Equal(0.9)
	gt.Value(t, item.Metadata[model.MetaIdentificationMethod]).Equal(model.IdentificationLLM)

	// Software hazard at high severity gets the redundant validation template
	gt.String(t, item.Mitigation).Contains("redundant validation")
	gt.String(t, item.Verification).Contains("independent code review")
}

func TestClassify_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		cand *model.HazardCandidate
	}{
		{"nil candidate", nil},
		{"missing hazard", &model.HazardCandidate{Cause: "c", Effect: "e"}},
		{"missing cause", &model.HazardCandidate{Hazard: "h", Effect: "e"}},
		{"missing effect", &model.HazardCandidate{Hazard: "h", Cause: "c"}},
		{"blank fields", &model.HazardCandidate{Hazard: " ", Cause: "\t", Effect: "\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := classifier.New()
			item, err := c.Classify(tt.cand, testBatch())
			if err == nil {
				t.Fatal("expected error")
			}
			if item != nil {
				t.Errorf("expected nil item, got %+v", item)
			}
		})
	}
}

func TestClassify_LenientDefaults(t *testing.T) {
	c := classifier.New()

	item, err := c.Classify(&model.HazardCandidate{
		Hazard:      "Some hazard",
		Cause:       "Some cause",
		Effect:      "Some effect",
		Severity:    "Extreme",  // unrecognized
		Probability: "Frequent", // unrecognized
	}, testBatch())
	gt.NoError(t, err).Required()

	gt.Value(t, item.Severity).Equal(types.SeverityMinor)
	gt.Value(t, item.Probability).Equal(types.ProbabilityLow)
	gt.Value(t, item.RiskLevel).Equal(types.RiskLevelAcceptable)
	// missing confidence defaults to 0.5
	gt.Value(t, item.Metadata[model.MetaConfidence]).Equal(0.5)
}

func TestClassify_RequirementResolution(t *testing.T) {
	tests := []struct {
		name  string
		relID string
		want  []string
	}{
		{"exact match", "REQ-002", []string{"REQ-002"}},
		{"substring of requirement id", "002", []string{"REQ-002"}},
		{"requirement id inside reference", "REQ-003-rev2", []string{"REQ-003"}},
		{"no match falls back to all", "REQ-999", []string{"REQ-001", "REQ-002", "REQ-003"}},
		{"empty falls back to all", "", []string{"REQ-001", "REQ-002", "REQ-003"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := classifier.New()
			item, err := c.Classify(&model.HazardCandidate{
				Hazard:               "h",
				Cause:                "c",
				Effect:               "e",
				RelatedRequirementID: tt.relID,
			}, testBatch())
			gt.NoError(t, err).Required()
			gt.Array(t, item.RelatedRequirements).Equal(tt.want)
		})
	}
}

func TestClassify_TemplateCategories(t *testing.T) {
	tests := []struct {
		name             string
		hazard           string
		cause            string
		severity         string
		wantMitigation   string
		wantVerification string
	}{
		{
			name:             "software low tier",
			hazard:           "Software failure",
			cause:            "defect",
			severity:         "Minor",
			wantMitigation:   "input validation",
			wantVerification: "unit testing",
		},
		{
			name:             "data category",
			hazard:           "Data corruption",
			cause:            "disk fault",
			severity:         "Serious",
			wantMitigation:   "data integrity",
			wantVerification: "data integrity test suite",
		},
		{
			name:             "user category",
			hazard:           "User confusion",
			cause:            "ambiguous interface",
			severity:         "Minor",
			wantMitigation:   "confirmation",
			wantVerification: "usability testing",
		},
		{
			name:             "communication category",
			hazard:           "Dropped network connection",
			cause:            "communication timeout",
			severity:         "Serious",
			wantMitigation:   "retry",
			wantVerification: "network fault simulation",
		},
		{
			name:             "generic high tier",
			hazard:           "Overheating",
			cause:            "fan failure",
			severity:         "Catastrophic",
			wantMitigation:   "redundant safeguards",
			wantVerification: "system-level testing",
		},
		{
			name:             "generic low tier",
			hazard:           "Cosmetic defect",
			cause:            "enclosure scratch",
			severity:         "Negligible",
			wantMitigation:   "standard control measures",
			wantVerification: "functional testing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := classifier.New()
			item, err := c.Classify(&model.HazardCandidate{
				Hazard:   tt.hazard,
				Cause:    tt.cause,
				Effect:   "some effect",
				Severity: tt.severity,
			}, testBatch())
			gt.NoError(t, err).Required()
			gt.String(t, item.Mitigation).Contains(tt.wantMitigation)
			gt.String(t, item.Verification).Contains(tt.wantVerification)
		})
	}
}

func TestClassify_IDSequence(t *testing.T) {
	c := classifier.New()
	batch := testBatch()

	seen := map[string]bool{}
	for i := 0; i < 25; i++ {
		item, err := c.Classify(&model.HazardCandidate{
			Hazard: "h", Cause: "c", Effect: "e",
		}, batch)
		gt.NoError(t, err).Required()

		want := fmt.Sprintf("RISK_%04d", i+1)
		gt.Value(t, item.ID).Equal(want)
		if seen[item.ID] {
			t.Fatalf("duplicate id %s", item.ID)
		}
		seen[item.ID] = true
	}
}

func TestClassify_SkippedCandidateDoesNotConsumeID(t *testing.T) {
	c := classifier.New()
	batch := testBatch()

	_, err := c.Classify(&model.HazardCandidate{Hazard: "h"}, batch)
	gt.Error(t, err)

	item, err := c.Classify(&model.HazardCandidate{Hazard: "h", Cause: "c", Effect: "e"}, batch)
	gt.NoError(t, err).Required()
	gt.Value(t, item.ID).Equal("RISK_0001")
}

func TestIdentifyHeuristically(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantHazard string
		wantNil    bool
	}{
		{
			name:       "data group",
			text:       "The software shall validate input data before processing",
			wantHazard: "Incorrect data processing",
		},
		{
			name:       "user group",
			text:       "The display shall show the current measurement",
			wantHazard: "Misleading information shown to the user",
		},
		{
			name:       "communication group",
			text:       "Results shall be sent over the network to the archive",
			wantHazard: "Loss or corruption of transmitted data",
		},
		{
			name:       "storage group",
			text:       "Measurements shall be saved to a local file",
			wantHazard: "Loss or corruption of stored data",
		},
		{
			name:       "algorithm group",
			text:       "The analysis shall compute the perfusion index",
			wantHazard: "Incorrect calculation result",
		},
		{
			name:    "no group matches",
			text:    "The enclosure shall be blue",
			wantNil: true,
		},
		{
			name: "first matching group wins",
			// matches both data (input) and algorithm (calculation)
			text:       "The calculation shall use the raw input signal",
			wantHazard: "Incorrect data processing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := classifier.New()
			req := &model.Requirement{ID: "REQ-010", Type: types.RequirementTypeSoftware, Text: tt.text}

			item := c.IdentifyHeuristically(req)
			if tt.wantNil {
				if item != nil {
					t.Fatalf("expected nil, got %+v", item)
				}
				return
			}
			gt.Value(t, item).NotNil().Required()
			gt.Value(t, item.Hazard).Equal(tt.wantHazard)
			gt.Value(t, item.Metadata[model.MetaIdentificationMethod]).Equal(model.IdentificationHeuristic)
			gt.Value(t, item.Metadata[model.MetaConfidence]).Equal(classifier.HeuristicConfidence)
			gt.Array(t, item.RelatedRequirements).Equal([]string{"REQ-010"})
		})
	}
}

func TestIdentifyHeuristically_AtMostOnePerRequirement(t *testing.T) {
	c := classifier.New()
	req := &model.Requirement{
		ID:   "REQ-011",
		Type: types.RequirementTypeSoftware,
		// Text matches data, user, communication, storage and algorithm groups
		Text: "Validate input data, display output to the user, transfer over the network, save to file, and compute analysis",
	}

	item := c.IdentifyHeuristically(req)
	gt.Value(t, item).NotNil().Required()
	gt.Value(t, item.Hazard).Equal("Incorrect data processing")
	gt.Value(t, item.ID).Equal("RISK_0001")

	// A second call emits a new item with the next id, not a duplicate
	next := c.IdentifyHeuristically(req)
	gt.Value(t, next.ID).Equal("RISK_0002")
}
