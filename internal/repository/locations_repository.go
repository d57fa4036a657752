package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/voltly/voltly/internal/error_values"
	"github.com/voltly/voltly/pkg/entity"
)

type LocationsRepository struct {
	conn PgConnection
}

func NewLocationsRepo(cfg DBConfig) *LocationsRepository {
	return &LocationsRepository{
		conn: newPool(cfg, "locationsRepo"),
	}
}

func NewLocationsRepoWithConn(conn PgConnection) *LocationsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for locationsRepo: " + err.Error())
	}
	return &LocationsRepository{
		conn: conn,
	}
}

func (lr *LocationsRepository) Create(ctx context.Context, loc *entity.Location) (uuid.UUID, error) {
	var id uuid.UUID
	row := lr.conn.QueryRow(ctx,
		`INSERT INTO locations (user_id, name, tariff_mode) VALUES ($1, $2, $3) RETURNING id;`,
		loc.UserID, loc.Name, loc.TariffMode,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrOwnerNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating location db error: " + err.Error())
	}
	return id, nil
}

func (lr *LocationsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var loc entity.Location
	loc.ID = id
	row := lr.conn.QueryRow(ctx,
		`SELECT user_id, name, tariff_mode, created_at, updated_at FROM locations WHERE id = $1;`, id)
	if err := row.Scan(&loc.UserID, &loc.Name, &loc.TariffMode, &loc.CreatedAt, &loc.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrLocationNotFound
		}
		return nil, errors.New("getting location by id error: " + err.Error())
	}
	if err := lr.loadChildren(ctx, &loc); err != nil {
		return nil, err
	}
	return &loc, nil
}

func (lr *LocationsRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Location, error) {
	locations := make([]*entity.Location, 0)
	rows, err := lr.conn.Query(ctx,
		`SELECT id, user_id, name, tariff_mode, created_at, updated_at
		FROM locations WHERE user_id = $1 ORDER BY created_at;`, uid)
	if err != nil {
		return nil, errors.New("getting locations by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		loc := entity.Location{}
		err = rows.Scan(&loc.ID, &loc.UserID, &loc.Name, &loc.TariffMode, &loc.CreatedAt, &loc.UpdatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling location error: " + err.Error())
		}
		locations = append(locations, &loc)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	for _, loc := range locations {
		if err := lr.loadChildren(ctx, loc); err != nil {
			return nil, err
		}
	}
	return locations, nil
}

func (lr *LocationsRepository) loadChildren(ctx context.Context, loc *entity.Location) error {
	loc.Devices = make([]*entity.Device, 0)
	rows, err := lr.conn.Query(ctx,
		`SELECT id, location_id, room_id, name, raw_value, unit, daily_hours,
			voltage, current, power_factor, frequency_hz, created_at, updated_at
		FROM devices WHERE location_id = $1 ORDER BY created_at;`, loc.ID)
	if err != nil {
		return errors.New("getting devices error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		d := entity.Device{}
		err = rows.Scan(&d.ID, &d.LocationID, &d.RoomID, &d.Name, &d.RawValue, &d.Unit, &d.DailyHours,
			&d.Voltage, &d.Current, &d.PowerFactor, &d.FrequencyHz, &d.CreatedAt, &d.UpdatedAt)
		if err != nil {
			return errors.New("unmarshalling device error: " + err.Error())
		}
		loc.Devices = append(loc.Devices, &d)
	}
	if rows.Err() != nil {
		return errors.New("unexpected error after scanning devices: " + rows.Err().Error())
	}
	rows.Close()

	loc.Rooms = make([]*entity.Room, 0)
	rows, err = lr.conn.Query(ctx,
		`SELECT id, location_id, name FROM rooms WHERE location_id = $1 ORDER BY name;`, loc.ID)
	if err != nil {
		return errors.New("getting rooms error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		r := entity.Room{}
		err = rows.Scan(&r.ID, &r.LocationID, &r.Name)
		if err != nil {
			return errors.New("unmarshalling room error: " + err.Error())
		}
		loc.Rooms = append(loc.Rooms, &r)
	}
	if rows.Err() != nil {
		return errors.New("unexpected error after scanning rooms: " + rows.Err().Error())
	}
	rows.Close()

	loc.Tariffs = entity.TariffSet{}
	rows, err = lr.conn.Query(ctx,
		`SELECT band_key, price FROM tariffs WHERE location_id = $1;`, loc.ID)
	if err != nil {
		return errors.New("getting tariffs error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var key, price string
		err = rows.Scan(&key, &price)
		if err != nil {
			return errors.New("unmarshalling tariff error: " + err.Error())
		}
		loc.Tariffs[key] = price
	}
	if rows.Err() != nil {
		return errors.New("unexpected error after scanning tariffs: " + rows.Err().Error())
	}
	return nil
}

func (lr *LocationsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := lr.conn.Exec(ctx, `DELETE FROM locations WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting location error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrLocationNotFound
	}
	return nil
}

func (lr *LocationsRepository) SetTariffs(ctx context.Context, locationID uuid.UUID, mode entity.TariffMode, tariffs entity.TariffSet) error {
	tx, err := lr.conn.Begin(ctx)
	if err != nil {
		return errors.New("opening tariffs tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	ct, err := tx.Exec(ctx, `UPDATE locations SET tariff_mode = $1, updated_at = NOW() WHERE id = $2;`, mode, locationID)
	if err != nil {
		return errors.New("updating tariff mode error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrLocationNotFound
	}
	_, err = tx.Exec(ctx, `DELETE FROM tariffs WHERE location_id = $1;`, locationID)
	if err != nil {
		return errors.New("clearing tariffs error: " + err.Error())
	}
	for key, price := range tariffs {
		_, err = tx.Exec(ctx, `INSERT INTO tariffs (location_id, band_key, price) VALUES ($1, $2, $3);`,
			locationID, key, price)
		if err != nil {
			return errors.New("inserting tariff entry error: " + err.Error())
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing tariffs error: " + err.Error())
	}
	return nil
}

func (lr *LocationsRepository) AddDevice(ctx context.Context, d *entity.Device) (uuid.UUID, error) {
	var id uuid.UUID
	row := lr.conn.QueryRow(ctx,
		`INSERT INTO devices (location_id, room_id, name, raw_value, unit, daily_hours, voltage, current, power_factor, frequency_hz)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id;`,
		d.LocationID, d.RoomID, d.Name, d.RawValue, d.Unit, d.DailyHours, d.Voltage, d.Current, d.PowerFactor, d.FrequencyHz,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation: location or room is gone
			case "23503":
				return uuid.UUID{}, errorvalues.ErrLocationNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating device db error: " + err.Error())
	}
	return id, nil
}

func (lr *LocationsRepository) UpdateDevice(ctx context.Context, d *entity.Device) error {
	ct, err := lr.conn.Exec(ctx,
		`UPDATE devices SET room_id = $1, raw_value = $2, daily_hours = $3, updated_at = NOW() WHERE id = $4;`,
		d.RoomID, d.RawValue, d.DailyHours, d.ID,
	)
	if err != nil {
		return errors.New("updating device error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrDeviceNotFound
	}
	return nil
}

func (lr *LocationsRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	ct, err := lr.conn.Exec(ctx, `DELETE FROM devices WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting device error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrDeviceNotFound
	}
	return nil
}

func (lr *LocationsRepository) AddRoom(ctx context.Context, r *entity.Room) (uuid.UUID, error) {
	var id uuid.UUID
	row := lr.conn.QueryRow(ctx,
		`INSERT INTO rooms (location_id, name) VALUES ($1, $2) RETURNING id;`,
		r.LocationID, r.Name,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23503":
				return uuid.UUID{}, errorvalues.ErrLocationNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating room db error: " + err.Error())
	}
	return id, nil
}

// DeleteRoom detaches devices first: a room is a label, not an owner.
func (lr *LocationsRepository) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	tx, err := lr.conn.Begin(ctx)
	if err != nil {
		return errors.New("opening room deletion tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	_, err = tx.Exec(ctx, `UPDATE devices SET room_id = NULL WHERE room_id = $1;`, id)
	if err != nil {
		return errors.New("detaching devices from room error: " + err.Error())
	}
	ct, err := tx.Exec(ctx, `DELETE FROM rooms WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting room error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrRoomNotFound
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing room deletion error: " + err.Error())
	}
	return nil
}

func (lr *LocationsRepository) CountByUserID(ctx context.Context, uid uuid.UUID) (*entity.LocationCounts, error) {
	var counts entity.LocationCounts
	row := lr.conn.QueryRow(ctx,
		`SELECT count(l.id),
			(SELECT count(*) FROM devices d JOIN locations dl ON d.location_id = dl.id WHERE dl.user_id = $1),
			(SELECT count(*) FROM rooms r JOIN locations rl ON r.location_id = rl.id WHERE rl.user_id = $1),
			(SELECT count(*) FROM tariffs t JOIN locations tl ON t.location_id = tl.id WHERE tl.user_id = $1)
		FROM locations l WHERE l.user_id = $1;`, uid)
	if err := row.Scan(&counts.Locations, &counts.Devices, &counts.Rooms, &counts.TariffEntries); err != nil {
		return nil, errors.New("counting user entities error: " + err.Error())
	}
	return &counts, nil
}
