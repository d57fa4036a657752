package repository

import (
	"context"
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/voltly/voltly/internal/error_values"
	"github.com/voltly/voltly/pkg/entity"
)

// GoalStateRepository stores the whole goal document in one row per
// user: active slots as jsonb, used-id history as text arrays, plus a
// version counter so two sessions can't silently overwrite each other.
type GoalStateRepository struct {
	conn PgConnection
}

func NewGoalStateRepo(cfg DBConfig) *GoalStateRepository {
	return &GoalStateRepository{
		conn: newPool(cfg, "goalStateRepo"),
	}
}

func NewGoalStateRepoWithConn(conn PgConnection) *GoalStateRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for goalStateRepo: " + err.Error())
	}
	return &GoalStateRepository{
		conn: conn,
	}
}

func (gr *GoalStateRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.GoalState, error) {
	state := entity.GoalState{UserID: uid}
	var weeklyRaw, monthlyRaw []byte
	row := gr.conn.QueryRow(ctx,
		`SELECT weekly, monthly, used_weekly, used_monthly, lifetime_completed, version
		FROM goal_states WHERE user_id = $1;`, uid)
	err := row.Scan(&weeklyRaw, &monthlyRaw, &state.UsedWeekly, &state.UsedMonthly, &state.LifetimeCompleted, &state.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGoalStateNotFound
		}
		return nil, errors.New("getting goal state error: " + err.Error())
	}
	if err = sonic.Unmarshal(weeklyRaw, &state.Weekly); err != nil {
		return nil, errors.New("unmarshalling weekly goals error: " + err.Error())
	}
	if err = sonic.Unmarshal(monthlyRaw, &state.Monthly); err != nil {
		return nil, errors.New("unmarshalling monthly goals error: " + err.Error())
	}
	return &state, nil
}

func (gr *GoalStateRepository) Create(ctx context.Context, state *entity.GoalState) error {
	weeklyRaw, monthlyRaw, err := marshalSlots(state)
	if err != nil {
		return err
	}
	_, err = gr.conn.Exec(ctx,
		`INSERT INTO goal_states (user_id, weekly, monthly, used_weekly, used_monthly, lifetime_completed, version)
		VALUES ($1, $2, $3, $4, $5, $6, 1);`,
		state.UserID, weeklyRaw, monthlyRaw, state.UsedWeekly, state.UsedMonthly, state.LifetimeCompleted,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrOwnerNotFound
			// unique violation: another session created the row first
			case "23505":
				return errorvalues.ErrStateConflict
			}
		}
		return errors.New("creating goal state db error: " + err.Error())
	}
	state.Version = 1
	return nil
}

// Save bumps the version and refuses the write when the stored version
// moved since state was read.
func (gr *GoalStateRepository) Save(ctx context.Context, state *entity.GoalState) error {
	weeklyRaw, monthlyRaw, err := marshalSlots(state)
	if err != nil {
		return err
	}
	ct, err := gr.conn.Exec(ctx,
		`UPDATE goal_states SET weekly = $1, monthly = $2, used_weekly = $3, used_monthly = $4,
			lifetime_completed = $5, version = version + 1
		WHERE user_id = $6 AND version = $7;`,
		weeklyRaw, monthlyRaw, state.UsedWeekly, state.UsedMonthly,
		state.LifetimeCompleted, state.UserID, state.Version,
	)
	if err != nil {
		return errors.New("saving goal state error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrStateConflict
	}
	state.Version++
	return nil
}

func marshalSlots(state *entity.GoalState) ([]byte, []byte, error) {
	weeklyRaw, err := sonic.Marshal(state.Weekly)
	if err != nil {
		return nil, nil, errors.New("marshalling weekly goals error: " + err.Error())
	}
	monthlyRaw, err := sonic.Marshal(state.Monthly)
	if err != nil {
		return nil, nil, errors.New("marshalling monthly goals error: " + err.Error())
	}
	return weeklyRaw, monthlyRaw, nil
}
