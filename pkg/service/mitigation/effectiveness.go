// Package mitigation estimates how effective a proposed mitigation is and
// applies that estimate to reduce a severity/probability pair.
package mitigation

import "strings"

// MaxEffectiveness caps the estimate; no mitigation is treated as
// perfectly effective.
const MaxEffectiveness = 0.9

const baseEffectiveness = 0.3

// highImpactTerms add 0.2 per occurrence
var highImpactTerms = []string{
	"redundant", "backup", "failsafe", "automatic", "monitoring",
	"validation", "verification", "testing", "review", "independent",
}

// mediumImpactTerms add 0.1 per occurrence
var mediumImpactTerms = []string{
	"check", "control", "limit", "prevent", "detect",
	"alert", "notification", "warning", "guidance", "training",
}

// Effectiveness estimates the risk-reduction effectiveness of a mitigation
// text as a value in [0, MaxEffectiveness]. Empty text scores 0; any
// non-empty text starts from a base of 0.3 and accumulates per-occurrence
// weights for known control terms (case-insensitive substring match).
func Effectiveness(mitigationText string) float64 {
	if strings.TrimSpace(mitigationText) == "" {
		return 0.0
	}

	text := strings.ToLower(mitigationText)
	score := baseEffectiveness

	for _, term := range highImpactTerms {
		score += 0.2 * float64(strings.Count(text, term))
	}
	for _, term := range mediumImpactTerms {
		score += 0.1 * float64(strings.Count(text, term))
	}

	if score > MaxEffectiveness {
		score = MaxEffectiveness
	}
	return score
}
