package repository

import (
	"context"

	"github.com/taskhive/backend/internal/entity"
	"github.com/taskhive/backend/pkg/xcontext"
)

type TaskCompletionRepository interface {
	Create(ctx context.Context, data *entity.TaskCompletion) error
	Get(ctx context.Context, userID, taskID string) (*entity.TaskCompletion, error)
	GetListByUserID(ctx context.Context, userID string) ([]entity.TaskCompletion, error)
	CountByTaskID(ctx context.Context, taskID string) (int64, error)
}

type taskCompletionRepository struct{}

func NewTaskCompletionRepository() TaskCompletionRepository {
	return &taskCompletionRepository{}
}

func (r *taskCompletionRepository) Create(ctx context.Context, data *entity.TaskCompletion) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *taskCompletionRepository) Get(
	ctx context.Context, userID, taskID string,
) (*entity.TaskCompletion, error) {
	var record entity.TaskCompletion
	err := xcontext.DB(ctx).
		Where("user_id=? AND task_id=?", userID, taskID).
		Take(&record).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *taskCompletionRepository) GetListByUserID(
	ctx context.Context, userID string,
) ([]entity.TaskCompletion, error) {
	var result []entity.TaskCompletion
	err := xcontext.DB(ctx).
		Preload("Task").
		Preload("Task.Category").
		Preload("Task.Creator").
		Where("user_id=?", userID).
		Order("created_at DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *taskCompletionRepository) CountByTaskID(ctx context.Context, taskID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.TaskCompletion{}).
		Where("task_id=?", taskID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
