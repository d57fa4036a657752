package service

import (
	"context"
	"errors"
	"log"
	"slices"

	"github.com/google/uuid"
	"github.com/voltly/voltly/internal/achievement"
	"github.com/voltly/voltly/internal/energy"
	errorvalues "github.com/voltly/voltly/internal/error_values"
	"github.com/voltly/voltly/internal/repository"
	"github.com/voltly/voltly/pkg/entity"
)

// AchievementService gathers the aggregated metrics the rule set needs
// and persists fresh unlocks. The unlocked set only grows.
type AchievementService struct {
	stateRepo     repository.AchievementStateRepositoryI
	locationsRepo repository.LocationsRepositoryI
	goalsRepo     repository.GoalStateRepositoryI
	billsRepo     repository.BillsRepositoryI
}

func NewAchievementService(
	stateRepo repository.AchievementStateRepositoryI,
	locationsRepo repository.LocationsRepositoryI,
	goalsRepo repository.GoalStateRepositoryI,
	billsRepo repository.BillsRepositoryI,
) *AchievementService {
	if stateRepo == nil || locationsRepo == nil || goalsRepo == nil || billsRepo == nil {
		log.Fatal("on achievement service provided nil repos")
	}
	return &AchievementService{
		stateRepo:     stateRepo,
		locationsRepo: locationsRepo,
		goalsRepo:     goalsRepo,
		billsRepo:     billsRepo,
	}
}

func (as *AchievementService) Catalog() []achievement.Entry {
	return achievement.Catalog()
}

func (as *AchievementService) Evaluate(ctx context.Context, uid uuid.UUID) (*entity.AchievementState, error) {
	state, err := as.loadState(ctx, uid)
	if err != nil {
		return nil, err
	}
	metrics, err := as.collectMetrics(ctx, uid)
	if err != nil {
		return nil, err
	}
	fresh := achievement.Evaluate(*metrics, state.Unlocked)
	if len(fresh) == 0 {
		return state, nil
	}
	state.Unlocked = append(state.Unlocked, fresh...)
	err = as.stateRepo.Save(ctx, state)
	if errors.Is(err, errorvalues.ErrStateConflict) {
		// lost the race: merge with whatever the other session stored
		current, err := as.loadState(ctx, uid)
		if err != nil {
			return nil, err
		}
		for _, id := range fresh {
			if !slices.Contains(current.Unlocked, id) {
				current.Unlocked = append(current.Unlocked, id)
			}
		}
		if err := as.stateRepo.Save(ctx, current); err != nil {
			return nil, errors.New("achievement state repository error: " + err.Error())
		}
		return current, nil
	}
	if err != nil {
		return nil, errors.New("achievement state repository error: " + err.Error())
	}
	return state, nil
}

func (as *AchievementService) loadState(ctx context.Context, uid uuid.UUID) (*entity.AchievementState, error) {
	state, err := as.stateRepo.Get(ctx, uid)
	if err == nil {
		return state, nil
	}
	if !errors.Is(err, errorvalues.ErrAchievementStateNotFound) {
		return nil, errors.New("achievement state repository error: " + err.Error())
	}
	state = &entity.AchievementState{UserID: uid, Unlocked: []string{}}
	err = as.stateRepo.Create(ctx, state)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		if errors.Is(err, errorvalues.ErrStateConflict) {
			// another session won the first visit; use its row
			state, err = as.stateRepo.Get(ctx, uid)
			if err != nil {
				return nil, errors.New("achievement state repository error: " + err.Error())
			}
			return state, nil
		}
		return nil, errors.New("achievement state repository error: " + err.Error())
	}
	return state, nil
}

func (as *AchievementService) collectMetrics(ctx context.Context, uid uuid.UUID) (*achievement.Metrics, error) {
	counts, err := as.locationsRepo.CountByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("locations repository error: " + err.Error())
	}
	metrics := achievement.Metrics{
		Devices:       counts.Devices,
		TariffEntries: counts.TariffEntries,
		Locations:     counts.Locations,
		Rooms:         counts.Rooms,
	}
	goalState, err := as.goalsRepo.Get(ctx, uid)
	if err == nil {
		metrics.GoalsCompleted = goalState.LifetimeCompleted
		metrics.HasGoals = len(goalState.Weekly)+len(goalState.Monthly) > 0
	} else if !errors.Is(err, errorvalues.ErrGoalStateNotFound) {
		return nil, errors.New("goal state repository error: " + err.Error())
	}
	bills, err := as.billsRepo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("bills repository error: " + err.Error())
	}
	savings := energy.ComputeSavings(bills)
	metrics.MoneySaved = savings.Money
	metrics.EnergySaved = savings.Energy
	return &metrics, nil
}
