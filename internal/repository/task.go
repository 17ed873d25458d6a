package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/taskhive/backend/internal/entity"
	"github.com/taskhive/backend/pkg/xcontext"
	"github.com/taskhive/backend/pkg/xredis"
	"gorm.io/gorm"
)

const (
	activeTaskCacheKey = "cache:tasks:active"
	activeTaskCacheTTL = 30 * time.Second
)

type GetListTaskFilter struct {
	Status     entity.TaskStatusType
	CategoryID string
	Offset     int
	Limit      int
}

type TaskRepository interface {
	Create(ctx context.Context, data *entity.Task) error
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	GetList(ctx context.Context, filter GetListTaskFilter) ([]entity.Task, error)
	// GetActiveList returns active tasks that still have remaining quota,
	// served from the lookaside cache when possible.
	GetActiveList(ctx context.Context) ([]entity.Task, error)
	UpdateStatusByID(ctx context.Context, id string, status entity.TaskStatusType) error
	IncreaseCompletedCount(ctx context.Context, id string) error
	DeleteByID(ctx context.Context, id string) error
}

type taskRepository struct {
	redisClient xredis.Client
}

func NewTaskRepository(redisClient xredis.Client) TaskRepository {
	return &taskRepository{redisClient: redisClient}
}

func (r *taskRepository) invalidateActiveCache(ctx context.Context) {
	if err := r.redisClient.Del(ctx, activeTaskCacheKey); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot invalidate active task redis key: %v", err)
	}
}

func (r *taskRepository) Create(ctx context.Context, data *entity.Task) error {
	if err := xcontext.DB(ctx).Create(data).Error; err != nil {
		return err
	}

	r.invalidateActiveCache(ctx)
	return nil
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	var record entity.Task
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *taskRepository) GetList(ctx context.Context, filter GetListTaskFilter) ([]entity.Task, error) {
	tx := xcontext.DB(ctx).Model(&entity.Task{}).
		Preload("Creator").
		Preload("Category").
		Offset(filter.Offset).
		Order("created_at DESC")

	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}

	if filter.Status != "" {
		tx = tx.Where("status=?", filter.Status)
	}

	if filter.CategoryID != "" {
		tx = tx.Where("category_id=?", filter.CategoryID)
	}

	var result []entity.Task
	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *taskRepository) GetActiveList(ctx context.Context) ([]entity.Task, error) {
	var cached []entity.Task
	err := r.redisClient.GetObj(ctx, activeTaskCacheKey, &cached)
	if err == nil {
		return cached, nil
	}

	if !errors.Is(err, redis.Nil) {
		xcontext.Logger(ctx).Warnf("Cannot get active tasks from redis: %v", err)
	}

	var result []entity.Task
	err = xcontext.DB(ctx).Model(&entity.Task{}).
		Preload("Creator").
		Preload("Category").
		Where("status=? AND completed_count < quantity", entity.TaskActive).
		Order("created_at DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	err = r.redisClient.SetObj(ctx, activeTaskCacheKey, result, activeTaskCacheTTL)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot set active tasks redis key: %v", err)
	}

	return result, nil
}

func (r *taskRepository) UpdateStatusByID(
	ctx context.Context, id string, status entity.TaskStatusType,
) error {
	tx := xcontext.DB(ctx).Model(&entity.Task{}).
		Where("id=?", id).
		Update("status", status)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.invalidateActiveCache(ctx)
	return nil
}

// IncreaseCompletedCount bumps the completed count only while quota remains.
// It returns ErrTaskCapacityFull when the task is already at capacity, which
// serializes concurrent verifications on the last slot.
func (r *taskRepository) IncreaseCompletedCount(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).Model(&entity.Task{}).
		Where("id=? AND completed_count < quantity", id).
		Update("completed_count", gorm.Expr("completed_count+1"))
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return ErrTaskCapacityFull
	}

	r.invalidateActiveCache(ctx)
	return nil
}

func (r *taskRepository) DeleteByID(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).Delete(&entity.Task{}, "id=?", id)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.invalidateActiveCache(ctx)
	return nil
}
