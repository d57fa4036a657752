package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	errorvalues "github.com/voltly/voltly/internal/error_values"
	"github.com/voltly/voltly/internal/repository/mocks"
	"github.com/voltly/voltly/internal/service"
	"github.com/voltly/voltly/pkg/entity"
)

type achievementMocks struct {
	state     *mocks.MockAchievementStateRepositoryI
	locations *mocks.MockLocationsRepositoryI
	goals     *mocks.MockGoalStateRepositoryI
	bills     *mocks.MockBillsRepositoryI
}

func newAchievementService(t *testing.T) (service.AchievementServiceI, achievementMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := achievementMocks{
		state:     mocks.NewMockAchievementStateRepositoryI(ctrl),
		locations: mocks.NewMockLocationsRepositoryI(ctrl),
		goals:     mocks.NewMockGoalStateRepositoryI(ctrl),
		bills:     mocks.NewMockBillsRepositoryI(ctrl),
	}
	return service.NewAchievementService(m.state, m.locations, m.goals, m.bills), m
}

func TestAchievementCatalog(t *testing.T) {
	t.Parallel()
	serv, _ := newAchievementService(t)
	catalog := serv.Catalog()
	assert.NotEmpty(t, catalog)
	seen := map[string]bool{}
	for _, e := range catalog {
		assert.False(t, seen[e.ID], "duplicated id %s", e.ID)
		seen[e.ID] = true
	}
}

func TestEvaluateAchievements(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uid := uuid.New()

	t.Run("first completion unlocks first goal badge", func(t *testing.T) {
		serv, m := newAchievementService(t)
		m.state.EXPECT().Get(gomock.Any(), uid).Return(&entity.AchievementState{UserID: uid, Unlocked: []string{}, Version: 1}, nil)
		m.locations.EXPECT().CountByUserID(gomock.Any(), uid).Return(&entity.LocationCounts{Locations: 1}, nil)
		m.goals.EXPECT().Get(gomock.Any(), uid).Return(&entity.GoalState{
			UserID:            uid,
			Weekly:            []entity.Goal{{ID: "sem-a6e5c7fb", GeneratedAt: time.Now()}},
			LifetimeCompleted: 1,
		}, nil)
		m.bills.EXPECT().GetByUserID(gomock.Any(), uid).Return([]entity.Bill{}, nil)
		m.state.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		state, err := serv.Evaluate(ctx, uid)
		assert.NoError(t, err)
		assert.Contains(t, state.Unlocked, "meta-d1685f")
		assert.NotContains(t, state.Unlocked, "meta-f9322d")
	})
	t.Run("no fresh unlocks skips save", func(t *testing.T) {
		serv, m := newAchievementService(t)
		m.state.EXPECT().Get(gomock.Any(), uid).Return(&entity.AchievementState{UserID: uid, Unlocked: []string{"meta-d1685f"}, Version: 3}, nil)
		m.locations.EXPECT().CountByUserID(gomock.Any(), uid).Return(&entity.LocationCounts{}, nil)
		m.goals.EXPECT().Get(gomock.Any(), uid).Return(&entity.GoalState{UserID: uid, LifetimeCompleted: 1}, nil)
		m.bills.EXPECT().GetByUserID(gomock.Any(), uid).Return([]entity.Bill{}, nil)

		state, err := serv.Evaluate(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, []string{"meta-d1685f"}, state.Unlocked)
	})
	t.Run("prerequisite chain advances one link per pass", func(t *testing.T) {
		serv, m := newAchievementService(t)
		m.state.EXPECT().Get(gomock.Any(), uid).Return(&entity.AchievementState{UserID: uid, Unlocked: []string{}, Version: 1}, nil)
		m.locations.EXPECT().CountByUserID(gomock.Any(), uid).Return(&entity.LocationCounts{}, nil)
		m.goals.EXPECT().Get(gomock.Any(), uid).Return(&entity.GoalState{UserID: uid, LifetimeCompleted: 30}, nil)
		m.bills.EXPECT().GetByUserID(gomock.Any(), uid).Return([]entity.Bill{}, nil)
		m.state.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		state, err := serv.Evaluate(ctx, uid)
		assert.NoError(t, err)
		assert.Contains(t, state.Unlocked, "meta-d1685f")
		assert.NotContains(t, state.Unlocked, "meta-f9322d")
		assert.NotContains(t, state.Unlocked, "meta-42ca90")
	})
	t.Run("savings unlock money and energy badges", func(t *testing.T) {
		serv, m := newAchievementService(t)
		m.state.EXPECT().Get(gomock.Any(), uid).Return(&entity.AchievementState{UserID: uid, Unlocked: []string{}, Version: 1}, nil)
		m.locations.EXPECT().CountByUserID(gomock.Any(), uid).Return(&entity.LocationCounts{}, nil)
		m.goals.EXPECT().Get(gomock.Any(), uid).Return(nil, errorvalues.ErrGoalStateNotFound)
		m.bills.EXPECT().GetByUserID(gomock.Any(), uid).Return([]entity.Bill{
			{UserID: uid, Month: "2025-04", TotalValue: 450, ConsumptionKwh: 480},
			{UserID: uid, Month: "2025-05", TotalValue: 300, ConsumptionKwh: 400},
		}, nil)
		m.state.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		state, err := serv.Evaluate(ctx, uid)
		assert.NoError(t, err)
		assert.Contains(t, state.Unlocked, "cons-e4244d")
		assert.Contains(t, state.Unlocked, "cons-e95ef3")
	})
	t.Run("missing state is created lazily", func(t *testing.T) {
		serv, m := newAchievementService(t)
		m.state.EXPECT().Get(gomock.Any(), uid).Return(nil, errorvalues.ErrAchievementStateNotFound)
		m.state.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.locations.EXPECT().CountByUserID(gomock.Any(), uid).Return(&entity.LocationCounts{}, nil)
		m.goals.EXPECT().Get(gomock.Any(), uid).Return(nil, errorvalues.ErrGoalStateNotFound)
		m.bills.EXPECT().GetByUserID(gomock.Any(), uid).Return([]entity.Bill{}, nil)

		state, err := serv.Evaluate(ctx, uid)
		assert.NoError(t, err)
		assert.Empty(t, state.Unlocked)
	})
	t.Run("lazy create lost to another session reloads its row", func(t *testing.T) {
		serv, m := newAchievementService(t)
		theirs := &entity.AchievementState{UserID: uid, Unlocked: []string{"tari-aefa34"}, Version: 2}
		gomock.InOrder(
			m.state.EXPECT().Get(gomock.Any(), uid).Return(nil, errorvalues.ErrAchievementStateNotFound),
			m.state.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errorvalues.ErrStateConflict),
			m.state.EXPECT().Get(gomock.Any(), uid).Return(theirs, nil),
		)
		m.locations.EXPECT().CountByUserID(gomock.Any(), uid).Return(&entity.LocationCounts{}, nil)
		m.goals.EXPECT().Get(gomock.Any(), uid).Return(nil, errorvalues.ErrGoalStateNotFound)
		m.bills.EXPECT().GetByUserID(gomock.Any(), uid).Return([]entity.Bill{}, nil)

		state, err := serv.Evaluate(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, []string{"tari-aefa34"}, state.Unlocked)
	})
	t.Run("conflict merges with concurrent unlocks", func(t *testing.T) {
		serv, m := newAchievementService(t)
		m.state.EXPECT().Get(gomock.Any(), uid).Return(&entity.AchievementState{UserID: uid, Unlocked: []string{}, Version: 1}, nil)
		m.locations.EXPECT().CountByUserID(gomock.Any(), uid).Return(&entity.LocationCounts{Devices: 5}, nil)
		m.goals.EXPECT().Get(gomock.Any(), uid).Return(nil, errorvalues.ErrGoalStateNotFound)
		m.bills.EXPECT().GetByUserID(gomock.Any(), uid).Return([]entity.Bill{}, nil)
		gomock.InOrder(
			m.state.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errorvalues.ErrStateConflict),
			m.state.EXPECT().Get(gomock.Any(), uid).Return(&entity.AchievementState{UserID: uid, Unlocked: []string{"tari-aefa34"}, Version: 2}, nil),
			m.state.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil),
		)

		state, err := serv.Evaluate(ctx, uid)
		assert.NoError(t, err)
		assert.Contains(t, state.Unlocked, "tari-aefa34")
		assert.Contains(t, state.Unlocked, "eletr-cabcb7")
	})
	t.Run("locations repo error surfaces", func(t *testing.T) {
		serv, m := newAchievementService(t)
		m.state.EXPECT().Get(gomock.Any(), uid).Return(&entity.AchievementState{UserID: uid, Unlocked: []string{}, Version: 1}, nil)
		m.locations.EXPECT().CountByUserID(gomock.Any(), uid).Return(nil, errors.New("db error"))
		_, err := serv.Evaluate(ctx, uid)
		assert.Error(t, err)
	})
}
