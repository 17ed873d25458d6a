package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/taskhive/backend/internal/entity"
	"github.com/taskhive/backend/pkg/xcontext"
)

type GetListTransactionFilter struct {
	UserID string
	Type   entity.TransactionType
	Status entity.TransactionStatusType
	Offset int
	Limit  int
}

type TransactionRepository interface {
	Create(ctx context.Context, data *entity.Transaction) error
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.Transaction, error)
	GetList(ctx context.Context, filter GetListTransactionFilter) ([]entity.Transaction, error)
	// GetDeposits returns every deposit transaction, pending ones first, then
	// most recent first.
	GetDeposits(ctx context.Context) ([]entity.Transaction, error)
	// Decide moves a pending transaction to a final status. It returns
	// ErrAlreadyDecided if the transaction is not pending anymore, so a
	// second decision can never double-apply.
	Decide(ctx context.Context, id string, status entity.TransactionStatusType, reason, decidedBy string) error
}

type transactionRepository struct{}

func NewTransactionRepository() TransactionRepository {
	return &transactionRepository{}
}

func (r *transactionRepository) Create(ctx context.Context, data *entity.Transaction) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *transactionRepository) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	var record entity.Transaction
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *transactionRepository) GetByUserID(ctx context.Context, userID string) ([]entity.Transaction, error) {
	var result []entity.Transaction
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("created_at DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *transactionRepository) GetList(
	ctx context.Context, filter GetListTransactionFilter,
) ([]entity.Transaction, error) {
	tx := xcontext.DB(ctx).Model(&entity.Transaction{}).
		Offset(filter.Offset).
		Order("created_at DESC")

	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}

	if filter.UserID != "" {
		tx = tx.Where("user_id=?", filter.UserID)
	}

	if filter.Type != "" {
		tx = tx.Where("type=?", filter.Type)
	}

	if filter.Status != "" {
		tx = tx.Where("status=?", filter.Status)
	}

	var result []entity.Transaction
	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *transactionRepository) GetDeposits(ctx context.Context) ([]entity.Transaction, error) {
	var result []entity.Transaction
	err := xcontext.DB(ctx).
		Preload("User").
		Where("type=?", entity.TransactionDeposit).
		Order("CASE WHEN status='pending' THEN 0 ELSE 1 END, created_at DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *transactionRepository) Decide(
	ctx context.Context, id string, status entity.TransactionStatusType, reason, decidedBy string,
) error {
	tx := xcontext.DB(ctx).Model(&entity.Transaction{}).
		Where("id=? AND status=?", id, entity.TransactionPending).
		Updates(map[string]any{
			"status":     status,
			"reason":     reason,
			"decided_by": sql.NullString{String: decidedBy, Valid: decidedBy != ""},
			"decided_at": sql.NullTime{Time: time.Now(), Valid: true},
		})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return ErrAlreadyDecided
	}

	return nil
}
