package goals

import (
	"slices"
	"time"

	errorvalues "github.com/voltly/voltly/internal/error_values"
	"github.com/voltly/voltly/pkg/entity"
)

const initialSlots = 3

// Draw picks a catalog entry not yet in usedIDs. Once the whole pool
// has been cycled the filter would leave nothing, so it falls back to
// the full pool and repeats become allowed again.
func Draw(pool []CatalogEntry, usedIDs []string, rng Source) CatalogEntry {
	candidates := make([]CatalogEntry, 0, len(pool))
	for _, e := range pool {
		if !slices.Contains(usedIDs, e.ID) {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return pool[rng.IntN(len(pool))]
	}
	return candidates[rng.IntN(len(candidates))]
}

// InitialDraw fills the three starting slots for a period without
// duplicates within the draw itself.
func InitialDraw(period entity.GoalPeriod, usedIDs []string, rng Source, now time.Time) []entity.Goal {
	taken := slices.Clone(usedIDs)
	drawn := make([]entity.Goal, 0, initialSlots)
	for range initialSlots {
		e := Draw(Pool(period), taken, rng)
		taken = append(taken, e.ID)
		drawn = append(drawn, entity.Goal{
			ID:          e.ID,
			Title:       e.Title,
			GeneratedAt: now,
		})
	}
	return drawn
}

// RotationResult is what Complete leaves behind: the updated slot list,
// the updated used-id history and whether the completed goal was
// actually swapped out.
type RotationResult struct {
	Slots   []entity.Goal
	UsedIDs []string
	Rotated bool
}

// Complete marks the goal with goalID as done and, when its cooldown
// has elapsed, retires it into the used history and draws a fresh goal
// into the slot. A completed goal inside its cooldown stays visible in
// the list, struck through by the UI.
func Complete(slots []entity.Goal, goalID string, usedIDs []string, period entity.GoalPeriod, now time.Time, rng Source) (RotationResult, error) {
	idx := slices.IndexFunc(slots, func(g entity.Goal) bool { return g.ID == goalID })
	if idx < 0 {
		return RotationResult{}, errorvalues.ErrGoalNotFound
	}
	if slots[idx].Completed {
		return RotationResult{}, errorvalues.ErrGoalCompleted
	}

	out := slices.Clone(slots)
	used := slices.Clone(usedIDs)
	out[idx].Completed = true
	out[idx].Progress = 100

	cooldown := time.Duration(CooldownDays(period)) * 24 * time.Hour
	if now.Sub(out[idx].GeneratedAt) < cooldown {
		return RotationResult{Slots: out, UsedIDs: used}, nil
	}

	used = append(used, goalID)
	fresh := Draw(Pool(period), used, rng)
	out[idx] = entity.Goal{
		ID:          fresh.ID,
		Title:       fresh.Title,
		GeneratedAt: now,
	}
	return RotationResult{Slots: out, UsedIDs: used, Rotated: true}, nil
}
