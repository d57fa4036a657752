package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	errorvalues "github.com/voltly/voltly/internal/error_values"
	"github.com/voltly/voltly/internal/repository"
	"github.com/voltly/voltly/pkg/entity"
)

func TestUpsertBill(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewBillsRepoWithConn(conn)
	bill := entity.Bill{
		UserID:         uuid.New(),
		Month:          "2025-06",
		TotalValue:     350.40,
		ConsumptionKwh: 412,
	}
	query := regexp.QuoteMeta(`INSERT INTO bills (user_id, month, total_value, consumption_kwh) VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, month) DO UPDATE SET total_value = $3, consumption_kwh = $4;`)
	t.Run("inserted", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(bill.UserID, bill.Month, bill.TotalValue, bill.ConsumptionKwh).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		err := repo.Upsert(ctx, &bill)
		assert.NoError(t, err)
	})
	t.Run("owner not found", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(bill.UserID, bill.Month, bill.TotalValue, bill.ConsumptionKwh).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		err := repo.Upsert(ctx, &bill)
		assert.ErrorIs(t, err, errorvalues.ErrOwnerNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(bill.UserID, bill.Month, bill.TotalValue, bill.ConsumptionKwh).
			WillReturnError(errors.New("db error"))
		err := repo.Upsert(ctx, &bill)
		assert.Error(t, err)
	})
}

func TestGetBillsByUserID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewBillsRepoWithConn(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`SELECT user_id, month, total_value, consumption_kwh FROM bills WHERE user_id = $1 ORDER BY month;`)
	t.Run("found ordered by month", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(uid).
			WillReturnRows(pgxmock.NewRows([]string{"user_id", "month", "total_value", "consumption_kwh"}).
				AddRow(uid, "2025-05", 400.0, 450.0).
				AddRow(uid, "2025-06", 350.4, 412.0))
		bills, err := repo.GetByUserID(ctx, uid)
		assert.NoError(t, err)
		assert.Len(t, bills, 2)
		assert.Equal(t, "2025-05", bills[0].Month)
		assert.Equal(t, "2025-06", bills[1].Month)
	})
	t.Run("no bills gives empty slice", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(uid).
			WillReturnRows(pgxmock.NewRows([]string{"user_id", "month", "total_value", "consumption_kwh"}))
		bills, err := repo.GetByUserID(ctx, uid)
		assert.NoError(t, err)
		assert.Empty(t, bills)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(uid).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserID(ctx, uid)
		assert.Error(t, err)
	})
}

func TestDeleteBill(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewBillsRepoWithConn(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM bills WHERE user_id = $1 AND month = $2;`)
	t.Run("deleted", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(uid, "2025-06").WillReturnResult(pgxmock.NewResult("DELETE", 1))
		err := repo.Delete(ctx, uid, "2025-06")
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(uid, "2025-06").WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.Delete(ctx, uid, "2025-06")
		assert.ErrorIs(t, err, errorvalues.ErrBillNotFound)
	})
}
