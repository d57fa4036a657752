package energy

import (
	"sort"

	"github.com/voltly/voltly/pkg/entity"
)

// ComputeSavings compares the earliest and the latest bill by month
// ("YYYY-MM" sorts lexicographically). Fewer than two bills means
// nothing to compare yet; a consumption or cost increase reports zero,
// never a negative saving.
func ComputeSavings(bills []entity.Bill) entity.Savings {
	if len(bills) < 2 {
		return entity.Savings{}
	}
	ordered := make([]entity.Bill, len(bills))
	copy(ordered, bills)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Month < ordered[j].Month
	})
	first := ordered[0]
	last := ordered[len(ordered)-1]
	return entity.Savings{
		Money:  clampZero(first.TotalValue - last.TotalValue),
		Energy: clampZero(first.ConsumptionKwh - last.ConsumptionKwh),
	}
}

func clampZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
