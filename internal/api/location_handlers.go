package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/voltly/voltly/internal/error_values"
	"github.com/voltly/voltly/internal/service"
	"github.com/voltly/voltly/pkg/entity"
	"github.com/voltly/voltly/pkg/httputil"
)

type CreateLocationRequest struct {
	Name       string            `json:"name"`
	TariffMode entity.TariffMode `json:"tariff_mode"`
}

type SetTariffsRequest struct {
	TariffMode entity.TariffMode `json:"tariff_mode"`
	Tariffs    entity.TariffSet  `json:"tariffs"`
}

type CreateDeviceRequest struct {
	Name        string      `json:"name"`
	RawValue    float64     `json:"raw_value"`
	Unit        entity.Unit `json:"unit"`
	DailyHours  float64     `json:"daily_hours"`
	Voltage     float64     `json:"voltage"`
	Current     float64     `json:"current"`
	PowerFactor float64     `json:"power_factor"`
	FrequencyHz float64     `json:"frequency_hz"`
	RoomID      *uuid.UUID  `json:"room_id"`
}

type UpdateDeviceRequest struct {
	RawValue   float64    `json:"raw_value"`
	DailyHours float64    `json:"daily_hours"`
	RoomID     *uuid.UUID `json:"room_id"`
}

type CreateRoomRequest struct {
	Name string `json:"name"`
}

type DeviceCostsResponse struct {
	LocationID string              `json:"location_id"`
	Devices    []entity.DeviceCost `json:"devices"`
	TotalCost  float64             `json:"total_cost"`
}

func (s *Server) CreateLocation(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create location error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateLocationRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create location error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	loc, err := s.locationService.CreateLocation(ctx, uid, &service.CreateLocationRequest{
		Name:       req.Name,
		TariffMode: req.TariffMode,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("create location error: invalid request data", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request data", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create location error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't create location: user doesn't exist", nil)
		default:
			logger.Error("create location error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating location", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"location_id": loc.ID.String()})
	logger.Info("location created")
}

func (s *Server) GetLocations(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get locations error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	locations, err := s.locationService.GetLocations(ctx, uid)
	if err != nil {
		logger.Error("getting locations list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting locations list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":       uid.String(),
		"locations": locations,
	})
	logger.Info("locations provided")
}

func (s *Server) GetLocation(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get location error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get location error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid location id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	loc, err := s.locationService.GetLocation(ctx, id, uid)
	if err != nil {
		writeLocationError(w, logger, "get location", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, loc)
	logger.Info("location provided")
}

func (s *Server) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("location deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("location deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid location id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.locationService.DeleteLocation(ctx, id, uid)
	if err != nil {
		writeLocationError(w, logger, "location deletion", err)
		return
	}
	logger.Info("location deleted")
}

func (s *Server) SetTariffs(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("set tariffs error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("set tariffs error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid location id in path value", nil)
		return
	}
	var req SetTariffsRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("set tariffs error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.locationService.SetTariffs(ctx, id, uid, &service.SetTariffsRequest{
		TariffMode: req.TariffMode,
		Tariffs:    req.Tariffs,
	})
	if err != nil {
		writeLocationError(w, logger, "set tariffs", err)
		return
	}
	logger.Info("tariffs replaced")
}

func (s *Server) GetDeviceCosts(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get costs error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get costs error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid location id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	costs, total, err := s.locationService.DeviceCosts(ctx, id, uid)
	if err != nil {
		writeLocationError(w, logger, "get costs", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, DeviceCostsResponse{
		LocationID: id.String(),
		Devices:    costs,
		TotalCost:  total,
	})
	logger.Info("costs provided")
}

func (s *Server) AddDevice(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("add device error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("add device error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid location id in path value", nil)
		return
	}
	var req CreateDeviceRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("add device error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	deviceID, err := s.locationService.AddDevice(ctx, id, uid, &service.CreateDeviceRequest{
		Name:        req.Name,
		RawValue:    req.RawValue,
		Unit:        req.Unit,
		DailyHours:  req.DailyHours,
		Voltage:     req.Voltage,
		Current:     req.Current,
		PowerFactor: req.PowerFactor,
		FrequencyHz: req.FrequencyHz,
		RoomID:      req.RoomID,
	})
	if err != nil {
		writeLocationError(w, logger, "add device", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"device_id": deviceID.String()})
	logger.Info("device added")
}

func (s *Server) UpdateDevice(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update device error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update device error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid location id in path value", nil)
		return
	}
	deviceID, err := uuid.Parse(r.PathValue("deviceID"))
	if err != nil {
		logger.Error("update device error: invalid device id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid device id in path value", nil)
		return
	}
	var req UpdateDeviceRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update device error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.locationService.UpdateDevice(ctx, id, deviceID, uid, &service.UpdateDeviceRequest{
		RawValue:   req.RawValue,
		DailyHours: req.DailyHours,
		RoomID:     req.RoomID,
	})
	if err != nil {
		writeLocationError(w, logger, "update device", err)
		return
	}
	logger.Info("device updated")
}

func (s *Server) DeleteDevice(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("delete device error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("delete device error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid location id in path value", nil)
		return
	}
	deviceID, err := uuid.Parse(r.PathValue("deviceID"))
	if err != nil {
		logger.Error("delete device error: invalid device id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid device id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.locationService.DeleteDevice(ctx, id, deviceID, uid)
	if err != nil {
		writeLocationError(w, logger, "delete device", err)
		return
	}
	logger.Info("device deleted")
}

func (s *Server) AddRoom(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("add room error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("add room error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid location id in path value", nil)
		return
	}
	var req CreateRoomRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("add room error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	roomID, err := s.locationService.AddRoom(ctx, id, uid, req.Name)
	if err != nil {
		writeLocationError(w, logger, "add room", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"room_id": roomID.String()})
	logger.Info("room added")
}

func (s *Server) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("delete room error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("delete room error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid location id in path value", nil)
		return
	}
	roomID, err := uuid.Parse(r.PathValue("roomID"))
	if err != nil {
		logger.Error("delete room error: invalid room id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid room id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.locationService.DeleteRoom(ctx, id, roomID, uid)
	if err != nil {
		writeLocationError(w, logger, "delete room", err)
		return
	}
	logger.Info("room deleted")
}

// writeLocationError maps the location service's sentinels onto HTTP
// statuses the same way for every location handler.
func writeLocationError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Error(op+" error: invalid request data", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request data", nil)
	case errors.Is(err, errorvalues.ErrLocationNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Error(op + " error: unexist location")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "location doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrDeviceNotFound):
		logger.Error(op + " error: unexist device")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "device doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrRoomNotFound):
		logger.Error(op + " error: unexist room")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "room doesn't exist", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}
