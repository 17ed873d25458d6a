package repository

import (
	"context"

	"github.com/taskhive/backend/internal/entity"
	"github.com/taskhive/backend/pkg/xcontext"
)

type AdminLogRepository interface {
	Create(ctx context.Context, data *entity.AdminLog) error
	GetList(ctx context.Context, offset, limit int) ([]entity.AdminLog, error)
}

type adminLogRepository struct{}

func NewAdminLogRepository() AdminLogRepository {
	return &adminLogRepository{}
}

func (r *adminLogRepository) Create(ctx context.Context, data *entity.AdminLog) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *adminLogRepository) GetList(ctx context.Context, offset, limit int) ([]entity.AdminLog, error) {
	tx := xcontext.DB(ctx).Model(&entity.AdminLog{}).
		Preload("Admin").
		Offset(offset).
		Order("created_at DESC")

	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var result []entity.AdminLog
	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}
