package mitigation

import "github.com/chent01/riskreg/pkg/domain/types"

// Reduce applies a mitigation effectiveness value to a severity/probability
// pair, moving both down the ordinal scales. The result is never worse than
// the inputs.
//
// Effectiveness in [0.3, 0.5) intentionally causes no reduction. The
// bracket is inherited behavior, kept as-is rather than smoothed into a
// continuous function.
func Reduce(sev types.Severity, prob types.Probability, effectiveness float64) (types.Severity, types.Probability) {
	var steps int
	switch {
	case effectiveness >= 0.7:
		steps = 2
	case effectiveness >= 0.5:
		steps = 1
	default:
		return sev, prob
	}

	return types.SeverityAt(sev.Index() - steps), types.ProbabilityAt(prob.Index() - steps)
}
