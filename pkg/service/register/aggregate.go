// Package register provides batch operations over collections of risk
// items: threshold filtering, priority ordering, and summary statistics.
// Every operation is stateless and order-stable.
package register

import (
	"sort"

	"github.com/chent01/riskreg/pkg/domain/model"
	"github.com/chent01/riskreg/pkg/domain/types"
	"github.com/chent01/riskreg/pkg/service/matrix"
)

// FilterBySeverity returns the items whose severity is at least the given
// threshold (inclusive), preserving the original relative order.
func FilterBySeverity(items []*model.RiskItem, min types.Severity) []*model.RiskItem {
	var out []*model.RiskItem
	for _, item := range items {
		if item.Severity.Index() >= min.Index() {
			out = append(out, item)
		}
	}
	return out
}

// FilterByRiskLevel returns the items whose risk level is at least the
// given threshold (inclusive), preserving the original relative order.
func FilterByRiskLevel(items []*model.RiskItem, min types.RiskLevel) []*model.RiskItem {
	var out []*model.RiskItem
	for _, item := range items {
		if item.RiskLevel.Index() >= min.Index() {
			out = append(out, item)
		}
	}
	return out
}

// SortByPriority returns a new slice ordered by ascending risk priority
// (1 is highest), with ties broken by descending raw score. The sort is
// stable, so equal items keep their original relative order.
func SortByPriority(items []*model.RiskItem) []*model.RiskItem {
	out := make([]*model.RiskItem, len(items))
	copy(out, items)

	sort.SliceStable(out, func(i, j int) bool {
		si, sj := scoreOf(out[i]), scoreOf(out[j])
		if si.Priority != sj.Priority {
			return si.Priority < sj.Priority
		}
		return si.Raw > sj.Raw
	})
	return out
}

// Statistics summarizes a collection of items. Empty input yields zeroed
// counters and empty distributions, never a division error.
func Statistics(items []*model.RiskItem) *model.RegisterStats {
	stats := &model.RegisterStats{
		Total:         len(items),
		BySeverity:    map[string]int{},
		ByProbability: map[string]int{},
		ByRiskLevel:   map[string]int{},
	}
	if len(items) == 0 {
		return stats
	}

	sum := 0
	for i, item := range items {
		stats.BySeverity[item.Severity.String()]++
		stats.ByProbability[item.Probability.String()]++
		stats.ByRiskLevel[item.RiskLevel.String()]++

		raw := scoreOf(item).Raw
		sum += raw
		if i == 0 || raw > stats.MaxScore {
			stats.MaxScore = raw
		}
		if i == 0 || raw < stats.MinScore {
			stats.MinScore = raw
		}
	}
	stats.AverageScore = float64(sum) / float64(len(items))

	return stats
}

// scoreOf reads the score breakdown stored during enhancement, falling
// back to recomputing it for items that have not been enhanced yet.
func scoreOf(item *model.RiskItem) model.RiskScore {
	if s, ok := item.Metadata[model.MetaRiskScore].(model.RiskScore); ok {
		return s
	}
	return matrix.Breakdown(item.Severity, item.Probability)
}
