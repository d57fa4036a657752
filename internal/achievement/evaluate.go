package achievement

import (
	"slices"
	"strconv"
)

// Metrics is the aggregated per-user snapshot the predicates run over.
type Metrics struct {
	GoalsCompleted int
	Devices        int
	TariffEntries  int
	Locations      int
	Rooms          int
	MoneySaved     float64
	EnergySaved    float64
	HasGoals       bool
}

// Evaluate returns the ids that became unlocked with these metrics, in
// catalog order, excluding anything already in unlocked. Entries whose
// prerequisite isn't in unlocked are skipped entirely, so a chain
// advances at most one link per evaluation no matter how far the
// metrics overshoot.
func Evaluate(m Metrics, unlocked []string) []string {
	fresh := []string{}
	for _, e := range catalog {
		if slices.Contains(unlocked, e.ID) {
			continue
		}
		if e.Prerequisite != "" && !slices.Contains(unlocked, e.Prerequisite) {
			continue
		}
		if satisfied(e, m) {
			fresh = append(fresh, e.ID)
		}
	}
	return fresh
}

func satisfied(e Entry, m Metrics) bool {
	switch e.Type {
	case TypeGoals:
		return m.GoalsCompleted >= intThreshold(e)
	case TypeDevices:
		return m.Devices >= intThreshold(e)
	case TypeTariffs:
		return m.TariffEntries >= intThreshold(e)
	case TypeMoney:
		return m.MoneySaved >= floatThreshold(e)
	case TypeEnergy:
		return m.EnergySaved >= floatThreshold(e)
	case TypeCombo:
		return m.Devices > 0 && m.TariffEntries > 0 && m.HasGoals
	case TypePlaces:
		return m.Locations >= intThreshold(e)
	case TypeRooms:
		return m.Rooms >= intThreshold(e)
	case TypeGeneral:
		return true
	case TypeStreak:
		// needs longitudinal weekly tracking that isn't recorded yet
		return false
	default:
		return false
	}
}

func intThreshold(e Entry) int {
	n, err := strconv.Atoi(e.Threshold)
	if err != nil {
		return 0
	}
	return n
}

func floatThreshold(e Entry) float64 {
	v, err := strconv.ParseFloat(e.Threshold, 64)
	if err != nil {
		return 0
	}
	return v
}
