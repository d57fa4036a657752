package service

import (
	"context"
	"errors"
	"log"
	"slices"

	"github.com/google/uuid"
	"github.com/voltly/voltly/internal/energy"
	errorvalues "github.com/voltly/voltly/internal/error_values"
	"github.com/voltly/voltly/internal/repository"
	"github.com/voltly/voltly/pkg/entity"
)

type LocationService struct {
	repo repository.LocationsRepositoryI
}

func NewLocationService(locationsRepo repository.LocationsRepositoryI) *LocationService {
	if locationsRepo == nil {
		log.Fatal("provided nil locationsRepo")
	}
	return &LocationService{
		repo: locationsRepo,
	}
}

func (ls *LocationService) CreateLocation(ctx context.Context, uid uuid.UUID, req *CreateLocationRequest) (*entity.Location, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	mode := req.TariffMode
	if mode == "" {
		mode = entity.TariffFlat
	}
	loc := entity.Location{
		UserID:     uid,
		Name:       req.Name,
		TariffMode: mode,
	}
	id, err := ls.repo.Create(ctx, &loc)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("locations repository error: " + err.Error())
	}
	created, err := ls.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("locations repository error: " + err.Error())
	}
	return created, nil
}

func (ls *LocationService) GetLocations(ctx context.Context, uid uuid.UUID) ([]*entity.Location, error) {
	locations, err := ls.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("locations repository error: " + err.Error())
	}
	return locations, nil
}

func (ls *LocationService) GetLocation(ctx context.Context, locationID, uid uuid.UUID) (*entity.Location, error) {
	return ls.ownedLocation(ctx, locationID, uid)
}

func (ls *LocationService) DeleteLocation(ctx context.Context, locationID, uid uuid.UUID) error {
	_, err := ls.ownedLocation(ctx, locationID, uid)
	if err != nil {
		return err
	}
	err = ls.repo.Delete(ctx, locationID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrLocationNotFound) {
			return err
		}
		return errors.New("locations repository error: " + err.Error())
	}
	return nil
}

func (ls *LocationService) SetTariffs(ctx context.Context, locationID, uid uuid.UUID, req *SetTariffsRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}
	_, err := ls.ownedLocation(ctx, locationID, uid)
	if err != nil {
		return err
	}
	err = ls.repo.SetTariffs(ctx, locationID, req.TariffMode, req.Tariffs)
	if err != nil {
		if errors.Is(err, errorvalues.ErrLocationNotFound) {
			return err
		}
		return errors.New("locations repository error: " + err.Error())
	}
	return nil
}

func (ls *LocationService) AddDevice(ctx context.Context, locationID, uid uuid.UUID, req *CreateDeviceRequest) (uuid.UUID, error) {
	if err := validateRequest(req); err != nil {
		return uuid.UUID{}, err
	}
	loc, err := ls.ownedLocation(ctx, locationID, uid)
	if err != nil {
		return uuid.UUID{}, err
	}
	if req.RoomID != nil && !roomExists(loc, *req.RoomID) {
		return uuid.UUID{}, errorvalues.ErrRoomNotFound
	}
	id, err := ls.repo.AddDevice(ctx, &entity.Device{
		LocationID:  locationID,
		RoomID:      req.RoomID,
		Name:        req.Name,
		RawValue:    req.RawValue,
		Unit:        req.Unit,
		DailyHours:  req.DailyHours,
		Voltage:     req.Voltage,
		Current:     req.Current,
		PowerFactor: req.PowerFactor,
		FrequencyHz: req.FrequencyHz,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrLocationNotFound) {
			return uuid.UUID{}, err
		}
		return uuid.UUID{}, errors.New("locations repository error: " + err.Error())
	}
	return id, nil
}

func (ls *LocationService) UpdateDevice(ctx context.Context, locationID, deviceID, uid uuid.UUID, req *UpdateDeviceRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}
	loc, err := ls.ownedLocation(ctx, locationID, uid)
	if err != nil {
		return err
	}
	idx := slices.IndexFunc(loc.Devices, func(d *entity.Device) bool { return d.ID == deviceID })
	if idx < 0 {
		return errorvalues.ErrDeviceNotFound
	}
	if req.RoomID != nil && !roomExists(loc, *req.RoomID) {
		return errorvalues.ErrRoomNotFound
	}
	device := *loc.Devices[idx]
	device.RawValue = req.RawValue
	device.DailyHours = req.DailyHours
	device.RoomID = req.RoomID
	err = ls.repo.UpdateDevice(ctx, &device)
	if err != nil {
		if errors.Is(err, errorvalues.ErrDeviceNotFound) {
			return err
		}
		return errors.New("locations repository error: " + err.Error())
	}
	return nil
}

func (ls *LocationService) DeleteDevice(ctx context.Context, locationID, deviceID, uid uuid.UUID) error {
	loc, err := ls.ownedLocation(ctx, locationID, uid)
	if err != nil {
		return err
	}
	if !slices.ContainsFunc(loc.Devices, func(d *entity.Device) bool { return d.ID == deviceID }) {
		return errorvalues.ErrDeviceNotFound
	}
	err = ls.repo.DeleteDevice(ctx, deviceID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrDeviceNotFound) {
			return err
		}
		return errors.New("locations repository error: " + err.Error())
	}
	return nil
}

func (ls *LocationService) AddRoom(ctx context.Context, locationID, uid uuid.UUID, name string) (uuid.UUID, error) {
	if name == "" {
		return uuid.UUID{}, errors.Join(errorvalues.ErrValidation, errors.New("room name is empty"))
	}
	_, err := ls.ownedLocation(ctx, locationID, uid)
	if err != nil {
		return uuid.UUID{}, err
	}
	id, err := ls.repo.AddRoom(ctx, &entity.Room{
		LocationID: locationID,
		Name:       name,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrLocationNotFound) {
			return uuid.UUID{}, err
		}
		return uuid.UUID{}, errors.New("locations repository error: " + err.Error())
	}
	return id, nil
}

func (ls *LocationService) DeleteRoom(ctx context.Context, locationID, roomID, uid uuid.UUID) error {
	loc, err := ls.ownedLocation(ctx, locationID, uid)
	if err != nil {
		return err
	}
	if !roomExists(loc, roomID) {
		return errorvalues.ErrRoomNotFound
	}
	err = ls.repo.DeleteRoom(ctx, roomID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRoomNotFound) {
			return err
		}
		return errors.New("locations repository error: " + err.Error())
	}
	return nil
}

func (ls *LocationService) DeviceCosts(ctx context.Context, locationID, uid uuid.UUID) ([]entity.DeviceCost, float64, error) {
	loc, err := ls.ownedLocation(ctx, locationID, uid)
	if err != nil {
		return nil, 0, err
	}
	costs := make([]entity.DeviceCost, 0, len(loc.Devices))
	for _, d := range loc.Devices {
		costs = append(costs, entity.DeviceCost{
			DeviceID:    d.ID,
			Name:        d.Name,
			MonthlyKwh:  energy.NormalizeToMonthlyKwh(d),
			MonthlyCost: energy.ComputeMonthlyCost(d, loc.Tariffs, loc.TariffMode),
		})
	}
	return costs, energy.AggregateLocationCost(loc), nil
}

func (ls *LocationService) ownedLocation(ctx context.Context, locationID, uid uuid.UUID) (*entity.Location, error) {
	loc, err := ls.repo.GetByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrLocationNotFound) {
			return nil, err
		}
		return nil, errors.New("locations repository error: " + err.Error())
	}
	if loc.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return loc, nil
}

func roomExists(loc *entity.Location, roomID uuid.UUID) bool {
	return slices.ContainsFunc(loc.Rooms, func(r *entity.Room) bool { return r.ID == roomID })
}
