package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/voltly/voltly/internal/achievement"
	errorvalues "github.com/voltly/voltly/internal/error_values"
	"github.com/voltly/voltly/pkg/entity"
	"github.com/voltly/voltly/pkg/httputil"
)

type GoalsResponse struct {
	Weekly            []entity.Goal `json:"weekly"`
	Monthly           []entity.Goal `json:"monthly"`
	LifetimeCompleted int           `json:"lifetime_completed"`
}

type AchievementsResponse struct {
	Catalog  []achievement.Entry `json:"catalog"`
	Unlocked []string            `json:"unlocked"`
}

func (s *Server) GetGoals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get goals error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	state, err := s.goalService.GetGoals(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("get goals error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
			return
		}
		logger.Error("get goals error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting goals", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GoalsResponse{
		Weekly:            state.Weekly,
		Monthly:           state.Monthly,
		LifetimeCompleted: state.LifetimeCompleted,
	})
	logger.Info("goals provided")
}

func (s *Server) CompleteGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("complete goal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	goalID := r.PathValue("id")
	if goalID == "" {
		logger.Error("complete goal error: empty goal id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	state, err := s.goalService.CompleteGoal(ctx, uid, goalID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGoalNotFound):
			logger.Error("complete goal error: goal isn't active")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "goal isn't active", nil)
		case errors.Is(err, errorvalues.ErrGoalCompleted):
			logger.Error("complete goal error: goal already completed")
			httputil.WriteErrorResponse(w, http.StatusConflict, "goal already completed", nil)
		case errors.Is(err, errorvalues.ErrStateConflict):
			logger.Error("complete goal error: concurrent modification")
			httputil.WriteErrorResponse(w, http.StatusConflict, "goals changed in another session, retry", nil)
		default:
			logger.Error("complete goal error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while completing goal", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GoalsResponse{
		Weekly:            state.Weekly,
		Monthly:           state.Monthly,
		LifetimeCompleted: state.LifetimeCompleted,
	})
	logger.Info("goal completed")
}

func (s *Server) GetAchievements(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get achievements error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	state, err := s.achievementService.Evaluate(ctx, uid)
	if err != nil {
		logger.Error("get achievements error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while evaluating achievements", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, AchievementsResponse{
		Catalog:  s.achievementService.Catalog(),
		Unlocked: state.Unlocked,
	})
	logger.Info("achievements provided")
}
