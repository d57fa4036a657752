package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/voltly/voltly/internal/error_values"
	"github.com/voltly/voltly/pkg/entity"
)

type BillsRepository struct {
	conn PgConnection
}

func NewBillsRepo(cfg DBConfig) *BillsRepository {
	return &BillsRepository{
		conn: newPool(cfg, "billsRepo"),
	}
}

func NewBillsRepoWithConn(conn PgConnection) *BillsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for billsRepo: " + err.Error())
	}
	return &BillsRepository{
		conn: conn,
	}
}

// Upsert replaces the bill for the same month, mirroring how the form
// overwrites a re-entered month.
func (br *BillsRepository) Upsert(ctx context.Context, bill *entity.Bill) error {
	_, err := br.conn.Exec(ctx,
		`INSERT INTO bills (user_id, month, total_value, consumption_kwh) VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, month) DO UPDATE SET total_value = $3, consumption_kwh = $4;`,
		bill.UserID, bill.Month, bill.TotalValue, bill.ConsumptionKwh,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrOwnerNotFound
			}
		}
		return errors.New("upserting bill db error: " + err.Error())
	}
	return nil
}

func (br *BillsRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]entity.Bill, error) {
	bills := make([]entity.Bill, 0)
	rows, err := br.conn.Query(ctx,
		`SELECT user_id, month, total_value, consumption_kwh FROM bills WHERE user_id = $1 ORDER BY month;`, uid)
	if err != nil {
		return nil, errors.New("getting bills by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		b := entity.Bill{}
		err = rows.Scan(&b.UserID, &b.Month, &b.TotalValue, &b.ConsumptionKwh)
		if err != nil {
			return nil, errors.New("unmarshalling bill error: " + err.Error())
		}
		bills = append(bills, b)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return bills, nil
}

func (br *BillsRepository) Delete(ctx context.Context, uid uuid.UUID, month string) error {
	ct, err := br.conn.Exec(ctx, `DELETE FROM bills WHERE user_id = $1 AND month = $2;`, uid, month)
	if err != nil {
		return errors.New("deleting bill error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrBillNotFound
	}
	return nil
}
