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

type AchievementStateRepository struct {
	conn PgConnection
}

func NewAchievementStateRepo(cfg DBConfig) *AchievementStateRepository {
	return &AchievementStateRepository{
		conn: newPool(cfg, "achievementStateRepo"),
	}
}

func NewAchievementStateRepoWithConn(conn PgConnection) *AchievementStateRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for achievementStateRepo: " + err.Error())
	}
	return &AchievementStateRepository{
		conn: conn,
	}
}

func (ar *AchievementStateRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.AchievementState, error) {
	state := entity.AchievementState{UserID: uid}
	row := ar.conn.QueryRow(ctx,
		`SELECT unlocked, version FROM achievement_states WHERE user_id = $1;`, uid)
	if err := row.Scan(&state.Unlocked, &state.Version); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrAchievementStateNotFound
		}
		return nil, errors.New("getting achievement state error: " + err.Error())
	}
	return &state, nil
}

func (ar *AchievementStateRepository) Create(ctx context.Context, state *entity.AchievementState) error {
	if state.Unlocked == nil {
		state.Unlocked = []string{}
	}
	_, err := ar.conn.Exec(ctx,
		`INSERT INTO achievement_states (user_id, unlocked, version) VALUES ($1, $2, 1);`,
		state.UserID, state.Unlocked,
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
		return errors.New("creating achievement state db error: " + err.Error())
	}
	state.Version = 1
	return nil
}

func (ar *AchievementStateRepository) Save(ctx context.Context, state *entity.AchievementState) error {
	ct, err := ar.conn.Exec(ctx,
		`UPDATE achievement_states SET unlocked = $1, version = version + 1
		WHERE user_id = $2 AND version = $3;`,
		state.Unlocked, state.UserID, state.Version,
	)
	if err != nil {
		return errors.New("saving achievement state error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrStateConflict
	}
	state.Version++
	return nil
}
