package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/voltly/voltly/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type LocationsRepositoryI interface {
	// Creates location owned by user. Returns generated id
	Create(ctx context.Context, loc *entity.Location) (uuid.UUID, error)
	// Loads location with its devices, rooms and tariffs
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)
	// Lists user's locations with children loaded
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Location, error)
	// Deletes location and everything it owns
	Delete(ctx context.Context, id uuid.UUID) error
	// Replaces the whole band->price map of a location
	SetTariffs(ctx context.Context, locationID uuid.UUID, mode entity.TariffMode, tariffs entity.TariffSet) error
	// Adds device to location. Returns generated id
	AddDevice(ctx context.Context, d *entity.Device) (uuid.UUID, error)
	// Updates device's mutable fields (reading, daily hours, room)
	UpdateDevice(ctx context.Context, d *entity.Device) error
	DeleteDevice(ctx context.Context, id uuid.UUID) error
	// Adds room label to location. Returns generated id
	AddRoom(ctx context.Context, r *entity.Room) (uuid.UUID, error)
	// Deletes room and clears room_id on devices pointing at it
	DeleteRoom(ctx context.Context, id uuid.UUID) error
	// Per-user totals for achievement checks
	CountByUserID(ctx context.Context, uid uuid.UUID) (*entity.LocationCounts, error)
}

type GoalStateRepositoryI interface {
	// Loads the per-user goal document
	Get(ctx context.Context, uid uuid.UUID) (*entity.GoalState, error)
	// Inserts the initial document with version 1
	Create(ctx context.Context, state *entity.GoalState) error
	// Compare-and-swap write: fails with ErrStateConflict when the
	// stored version moved since the read
	Save(ctx context.Context, state *entity.GoalState) error
}

type AchievementStateRepositoryI interface {
	// Loads the per-user unlocked set
	Get(ctx context.Context, uid uuid.UUID) (*entity.AchievementState, error)
	// Inserts an empty set with version 1
	Create(ctx context.Context, state *entity.AchievementState) error
	// Compare-and-swap write of the grown unlocked set
	Save(ctx context.Context, state *entity.AchievementState) error
}

type BillsRepositoryI interface {
	// Inserts or replaces the bill for its month
	Upsert(ctx context.Context, bill *entity.Bill) error
	// Lists user's bills ordered by month ascending
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]entity.Bill, error)
	Delete(ctx context.Context, uid uuid.UUID, month string) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
