package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

// Unit is the kind of reading stored on a device.
type Unit string

const (
	UnitWatt     Unit = "W"
	UnitKwhMonth Unit = "kWh"
	UnitKwhYear  Unit = "kWh_year"
	UnitVolt     Unit = "V"
)

type Device struct {
	ID          uuid.UUID  `json:"id"`
	LocationID  uuid.UUID  `json:"location_id"`
	RoomID      *uuid.UUID `json:"room_id,omitempty"`
	Name        string     `json:"name"`
	RawValue    float64    `json:"raw_value"`
	Unit        Unit       `json:"unit"`
	DailyHours  float64    `json:"daily_hours"`
	Voltage     float64    `json:"voltage,omitempty"`
	Current     float64    `json:"current,omitempty"`
	PowerFactor float64    `json:"power_factor,omitempty"`
	FrequencyHz float64    `json:"frequency_hz,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Room struct {
	ID         uuid.UUID `json:"id"`
	LocationID uuid.UUID `json:"location_id"`
	Name       string    `json:"name"`
}

// TariffMode selects how devices of a location are priced.
type TariffMode string

const (
	TariffFlat   TariffMode = "flat"
	TariffTiered TariffMode = "tiered"
)

// TariffSet maps a band key ("fixo_te", "0_30_tusd", ...) to a price per
// kWh kept as the raw decimal string the user typed (comma or dot).
type TariffSet map[string]string

type Location struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"uid"`
	Name       string     `json:"name"`
	TariffMode TariffMode `json:"tariff_mode"`
	Tariffs    TariffSet  `json:"tariffs"`
	Devices    []*Device  `json:"devices"`
	Rooms      []*Room    `json:"rooms"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// GoalPeriod distinguishes the two goal pools.
type GoalPeriod string

const (
	GoalWeekly  GoalPeriod = "weekly"
	GoalMonthly GoalPeriod = "monthly"
)

type Goal struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Progress    int       `json:"progress"`
	Completed   bool      `json:"completed"`
	GeneratedAt time.Time `json:"generated_at"`
}

// GoalState is the whole per-user goal document: active slots, draw
// history and the lifetime completion counter. Version guards
// read-modify-write round trips.
type GoalState struct {
	UserID            uuid.UUID `json:"uid"`
	Weekly            []Goal    `json:"weekly"`
	Monthly           []Goal    `json:"monthly"`
	UsedWeekly        []string  `json:"used_weekly"`
	UsedMonthly       []string  `json:"used_monthly"`
	LifetimeCompleted int       `json:"lifetime_completed"`
	Version           int64     `json:"-"`
}

// AchievementState is the per-user set of unlocked achievement ids.
// The set only ever grows.
type AchievementState struct {
	UserID   uuid.UUID `json:"uid"`
	Unlocked []string  `json:"unlocked"`
	Version  int64     `json:"-"`
}

type Bill struct {
	UserID         uuid.UUID `json:"uid"`
	Month          string    `json:"month"`
	TotalValue     float64   `json:"total_value"`
	ConsumptionKwh float64   `json:"consumption_kwh"`
}

type Savings struct {
	Money  float64 `json:"money"`
	Energy float64 `json:"energy"`
}

// DeviceCost is a derived, read-only figure for display.
type DeviceCost struct {
	DeviceID    uuid.UUID `json:"device_id"`
	Name        string    `json:"name"`
	MonthlyKwh  float64   `json:"monthly_kwh"`
	MonthlyCost float64   `json:"monthly_cost"`
}

// LocationCounts aggregates per-user totals for achievement checks.
type LocationCounts struct {
	Locations     int
	Devices       int
	Rooms         int
	TariffEntries int
}
