package service

import (
	"context"
	"errors"
	"log"
	"slices"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/voltly/voltly/internal/error_values"
	"github.com/voltly/voltly/internal/goals"
	"github.com/voltly/voltly/internal/repository"
	"github.com/voltly/voltly/pkg/entity"
)

// GoalService wraps the pure rotation engine with persistence. The
// randomness source comes in through the constructor so draws are
// reproducible in tests; a service shared between requests needs a
// concurrency-safe one such as goals.LockedSource.
type GoalService struct {
	repo repository.GoalStateRepositoryI
	rng  goals.Source
}

func NewGoalService(goalStateRepo repository.GoalStateRepositoryI, rng goals.Source) *GoalService {
	if goalStateRepo == nil {
		log.Fatal("provided nil goalStateRepo")
	}
	if rng == nil {
		log.Fatal("provided nil rng")
	}
	return &GoalService{
		repo: goalStateRepo,
		rng:  rng,
	}
}

func (gs *GoalService) GetGoals(ctx context.Context, uid uuid.UUID) (*entity.GoalState, error) {
	state, err := gs.repo.Get(ctx, uid)
	if err == nil {
		return state, nil
	}
	if !errors.Is(err, errorvalues.ErrGoalStateNotFound) {
		return nil, errors.New("goal state repository error: " + err.Error())
	}
	now := time.Now()
	state = &entity.GoalState{
		UserID:      uid,
		Weekly:      goals.InitialDraw(entity.GoalWeekly, nil, gs.rng, now),
		Monthly:     goals.InitialDraw(entity.GoalMonthly, nil, gs.rng, now),
		UsedWeekly:  []string{},
		UsedMonthly: []string{},
	}
	err = gs.repo.Create(ctx, state)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		if errors.Is(err, errorvalues.ErrStateConflict) {
			// another session won the first visit; use its row
			state, err = gs.repo.Get(ctx, uid)
			if err != nil {
				return nil, errors.New("goal state repository error: " + err.Error())
			}
			return state, nil
		}
		return nil, errors.New("goal state repository error: " + err.Error())
	}
	return state, nil
}

func (gs *GoalService) CompleteGoal(ctx context.Context, uid uuid.UUID, goalID string) (*entity.GoalState, error) {
	state, err := gs.completeOnce(ctx, uid, goalID)
	if errors.Is(err, errorvalues.ErrStateConflict) {
		// another session moved the document; reload and retry once
		state, err = gs.completeOnce(ctx, uid, goalID)
	}
	return state, err
}

func (gs *GoalService) completeOnce(ctx context.Context, uid uuid.UUID, goalID string) (*entity.GoalState, error) {
	state, err := gs.repo.Get(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalStateNotFound) {
			return nil, errorvalues.ErrGoalNotFound
		}
		return nil, errors.New("goal state repository error: " + err.Error())
	}
	now := time.Now()
	period := entity.GoalWeekly
	slots, used := state.Weekly, state.UsedWeekly
	if !slices.ContainsFunc(state.Weekly, func(g entity.Goal) bool { return g.ID == goalID }) {
		period = entity.GoalMonthly
		slots, used = state.Monthly, state.UsedMonthly
	}
	res, err := goals.Complete(slots, goalID, used, period, now, gs.rng)
	if err != nil {
		return nil, err
	}
	if period == entity.GoalWeekly {
		state.Weekly, state.UsedWeekly = res.Slots, res.UsedIDs
	} else {
		state.Monthly, state.UsedMonthly = res.Slots, res.UsedIDs
	}
	// every completion counts, rotated or not
	state.LifetimeCompleted++
	err = gs.repo.Save(ctx, state)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStateConflict) {
			return nil, err
		}
		return nil, errors.New("goal state repository error: " + err.Error())
	}
	return state, nil
}
