package repository

import (
	"context"

	"github.com/taskhive/backend/internal/entity"
	"github.com/taskhive/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type GetListReportFilter struct {
	Status entity.ReportStatusType
	Offset int
	Limit  int
}

type ReportRepository interface {
	Create(ctx context.Context, data *entity.Report) error
	GetByID(ctx context.Context, id string) (*entity.Report, error)
	GetList(ctx context.Context, filter GetListReportFilter) ([]entity.Report, error)
	// Resolve moves a pending report to a final status; deciding an already
	// decided report returns ErrAlreadyDecided.
	Resolve(ctx context.Context, id string, status entity.ReportStatusType, reason string) error
}

type reportRepository struct{}

func NewReportRepository() ReportRepository {
	return &reportRepository{}
}

func (r *reportRepository) Create(ctx context.Context, data *entity.Report) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *reportRepository) GetByID(ctx context.Context, id string) (*entity.Report, error) {
	var record entity.Report
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *reportRepository) GetList(ctx context.Context, filter GetListReportFilter) ([]entity.Report, error) {
	tx := xcontext.DB(ctx).Model(&entity.Report{}).
		Preload("Reporter").
		Offset(filter.Offset).
		Order("CASE WHEN status='pending' THEN 0 ELSE 1 END, created_at DESC")

	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}

	if filter.Status != "" {
		tx = tx.Where("status=?", filter.Status)
	}

	var result []entity.Report
	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *reportRepository) Resolve(
	ctx context.Context, id string, status entity.ReportStatusType, reason string,
) error {
	tx := xcontext.DB(ctx).Model(&entity.Report{}).
		Where("id=? AND status=?", id, entity.ReportPending).
		Updates(map[string]any{
			"status": status,
			"reason": reason,
		})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		var count int64
		err := xcontext.DB(ctx).Model(&entity.Report{}).Where("id=?", id).Count(&count).Error
		if err != nil {
			return err
		}

		if count == 0 {
			return gorm.ErrRecordNotFound
		}

		return ErrAlreadyDecided
	}

	return nil
}
