package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskhive/backend/internal/entity"
	"github.com/taskhive/backend/internal/model"
	"github.com/taskhive/backend/internal/repository"
	"github.com/taskhive/backend/pkg/errorx"
	"github.com/taskhive/backend/pkg/xcontext"
)

type TransactionDomain interface {
	Deposit(ctx context.Context, req *model.DepositRequest) (*model.DepositResponse, error)
	GetMyList(ctx context.Context, req *model.GetMyTransactionsRequest) (*model.GetMyTransactionsResponse, error)
}

type transactionDomain struct {
	transactionRepo repository.TransactionRepository
}

func NewTransactionDomain(transactionRepo repository.TransactionRepository) TransactionDomain {
	return &transactionDomain{transactionRepo: transactionRepo}
}

// Deposit registers a pending deposit claim. The balance is only touched when
// an admin approves the claim.
func (d *transactionDomain) Deposit(ctx context.Context, req *model.DepositRequest) (*model.DepositResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, errorx.New(errorx.BadRequest, "Amount must be positive")
	}

	if req.Method == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty method")
	}

	transaction := &entity.Transaction{
		Base:        entity.Base{ID: uuid.NewString()},
		UserID:      xcontext.RequestUserID(ctx),
		Type:        entity.TransactionDeposit,
		Status:      entity.TransactionPending,
		Amount:      req.Amount,
		Method:      req.Method,
		ReferenceID: req.ReferenceID,
	}

	if err := d.transactionRepo.Create(ctx, transaction); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create deposit transaction: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DepositResponse{ID: transaction.ID}, nil
}

func (d *transactionDomain) GetMyList(ctx context.Context, req *model.GetMyTransactionsRequest) (*model.GetMyTransactionsResponse, error) {
	transactions, err := d.transactionRepo.GetByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get transactions: %v", err)
		return nil, errorx.Unknown
	}

	resp := []model.Transaction{}
	for i := range transactions {
		resp = append(resp, model.ConvertTransaction(&transactions[i], nil))
	}

	return &model.GetMyTransactionsResponse{Transactions: resp}, nil
}
