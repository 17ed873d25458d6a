package repository

import (
	"context"
	"time"

	"github.com/taskhive/backend/internal/entity"
	"github.com/taskhive/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(ctx context.Context, data *entity.Admin) error
	GetByID(ctx context.Context, id string) (*entity.Admin, error)
	GetByUsername(ctx context.Context, username string) (*entity.Admin, error)
	UpdateLastLogin(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type adminRepository struct{}

func NewAdminRepository() AdminRepository {
	return &adminRepository{}
}

func (r *adminRepository) Create(ctx context.Context, data *entity.Admin) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*entity.Admin, error) {
	var record entity.Admin
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	var record entity.Admin
	if err := xcontext.DB(ctx).Take(&record, "username=?", username).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *adminRepository) UpdateLastLogin(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).Model(&entity.Admin{}).
		Where("id=?", id).
		Update("last_login_at", time.Now())
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *adminRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := xcontext.DB(ctx).Model(&entity.Admin{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
