package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/voltly/voltly/internal/service"
	"github.com/voltly/voltly/pkg/httputil"
)

type UpsertBillRequest struct {
	TotalValue     float64 `json:"total_value"`
	ConsumptionKwh float64 `json:"consumption_kwh"`
}

func (s *Server) GetBills(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get bills error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	bills, err := s.billService.GetBills(ctx, uid)
	if err != nil {
		logger.Error("get bills error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting bills", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"bills": bills,
	})
	logger.Info("bills provided")
}

func (s *Server) UpsertBill(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("upsert bill error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	month := r.PathValue("month")
	if month == "" {
		logger.Error("upsert bill error: empty month in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid month in path value", nil)
		return
	}
	var req UpsertBillRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("upsert bill error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.billService.UpsertBill(ctx, uid, &service.UpsertBillRequest{
		Month:          month,
		TotalValue:     req.TotalValue,
		ConsumptionKwh: req.ConsumptionKwh,
	})
	if err != nil {
		logger.Error("upsert bill error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid bill data", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"month": month})
	logger.Info("bill saved", slog.String("month", month))
}

func (s *Server) GetSavings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get savings error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	savings, err := s.billService.Savings(ctx, uid)
	if err != nil {
		logger.Error("get savings error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while computing savings", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, savings)
	logger.Info("savings provided")
}
