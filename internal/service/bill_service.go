package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/voltly/voltly/internal/energy"
	errorvalues "github.com/voltly/voltly/internal/error_values"
	"github.com/voltly/voltly/internal/repository"
	"github.com/voltly/voltly/pkg/entity"
)

type BillService struct {
	repo repository.BillsRepositoryI
}

func NewBillService(billsRepo repository.BillsRepositoryI) *BillService {
	if billsRepo == nil {
		log.Fatal("provided nil billsRepo")
	}
	return &BillService{
		repo: billsRepo,
	}
}

func (bs *BillService) UpsertBill(ctx context.Context, uid uuid.UUID, req *UpsertBillRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}
	err := bs.repo.Upsert(ctx, &entity.Bill{
		UserID:         uid,
		Month:          req.Month,
		TotalValue:     req.TotalValue,
		ConsumptionKwh: req.ConsumptionKwh,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("bills repository error: " + err.Error())
	}
	return nil
}

func (bs *BillService) GetBills(ctx context.Context, uid uuid.UUID) ([]entity.Bill, error) {
	bills, err := bs.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("bills repository error: " + err.Error())
	}
	return bills, nil
}

func (bs *BillService) Savings(ctx context.Context, uid uuid.UUID) (entity.Savings, error) {
	bills, err := bs.repo.GetByUserID(ctx, uid)
	if err != nil {
		return entity.Savings{}, errors.New("bills repository error: " + err.Error())
	}
	return energy.ComputeSavings(bills), nil
}
