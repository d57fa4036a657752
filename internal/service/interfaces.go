package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/voltly/voltly/internal/achievement"
	"github.com/voltly/voltly/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type CreateLocationRequest struct {
	Name       string            `validate:"required,min=1,max=100"`
	TariffMode entity.TariffMode `validate:"omitempty,oneof=flat tiered"`
}

type CreateDeviceRequest struct {
	Name        string      `validate:"required,min=1,max=100"`
	RawValue    float64     `validate:"gte=0"`
	Unit        entity.Unit `validate:"required,oneof=W kWh kWh_year V"`
	DailyHours  float64     `validate:"gte=0,lte=24"`
	Voltage     float64     `validate:"gte=0"`
	Current     float64     `validate:"gte=0"`
	PowerFactor float64     `validate:"gte=0,lte=1"`
	FrequencyHz float64     `validate:"gte=0"`
	RoomID      *uuid.UUID
}

type UpdateDeviceRequest struct {
	RawValue   float64 `validate:"gte=0"`
	DailyHours float64 `validate:"gte=0,lte=24"`
	RoomID     *uuid.UUID
}

type SetTariffsRequest struct {
	TariffMode entity.TariffMode `validate:"required,oneof=flat tiered"`
	Tariffs    entity.TariffSet  `validate:"required"`
}

type UpsertBillRequest struct {
	Month          string  `validate:"required,datetime=2006-01"`
	TotalValue     float64 `validate:"gte=0"`
	ConsumptionKwh float64 `validate:"gte=0"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type LocationServiceI interface {
	CreateLocation(ctx context.Context, uid uuid.UUID, req *CreateLocationRequest) (*entity.Location, error)
	GetLocations(ctx context.Context, uid uuid.UUID) ([]*entity.Location, error)
	GetLocation(ctx context.Context, locationID, uid uuid.UUID) (*entity.Location, error)
	DeleteLocation(ctx context.Context, locationID, uid uuid.UUID) error
	SetTariffs(ctx context.Context, locationID, uid uuid.UUID, req *SetTariffsRequest) error
	AddDevice(ctx context.Context, locationID, uid uuid.UUID, req *CreateDeviceRequest) (uuid.UUID, error)
	UpdateDevice(ctx context.Context, locationID, deviceID, uid uuid.UUID, req *UpdateDeviceRequest) error
	DeleteDevice(ctx context.Context, locationID, deviceID, uid uuid.UUID) error
	AddRoom(ctx context.Context, locationID, uid uuid.UUID, name string) (uuid.UUID, error)
	DeleteRoom(ctx context.Context, locationID, roomID, uid uuid.UUID) error
	// Derived read-only cost figures for one location
	DeviceCosts(ctx context.Context, locationID, uid uuid.UUID) ([]entity.DeviceCost, float64, error)
}

type GoalServiceI interface {
	// Returns the user's goal document, drawing the initial slots when
	// the user has none yet
	GetGoals(ctx context.Context, uid uuid.UUID) (*entity.GoalState, error)
	// Marks a goal done and rotates its slot when eligible
	CompleteGoal(ctx context.Context, uid uuid.UUID, goalID string) (*entity.GoalState, error)
}

type AchievementServiceI interface {
	// Catalog in display order
	Catalog() []achievement.Entry
	// Re-evaluates the rule set against current metrics and persists
	// any fresh unlocks. Returns the whole unlocked set.
	Evaluate(ctx context.Context, uid uuid.UUID) (*entity.AchievementState, error)
}

type BillServiceI interface {
	UpsertBill(ctx context.Context, uid uuid.UUID, req *UpsertBillRequest) error
	GetBills(ctx context.Context, uid uuid.UUID) ([]entity.Bill, error)
	Savings(ctx context.Context, uid uuid.UUID) (entity.Savings, error)
}
