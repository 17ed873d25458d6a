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
	announcementCacheKey = "cache:announcements:active"
	announcementCacheTTL = time.Minute
)

type AnnouncementRepository interface {
	Create(ctx context.Context, data *entity.Announcement) error
	GetByID(ctx context.Context, id string) (*entity.Announcement, error)
	GetList(ctx context.Context) ([]entity.Announcement, error)
	GetActiveList(ctx context.Context) ([]entity.Announcement, error)
	UpdateByID(ctx context.Context, id string, data *entity.Announcement) error
	DeleteByID(ctx context.Context, id string) error
}

type announcementRepository struct {
	redisClient xredis.Client
}

func NewAnnouncementRepository(redisClient xredis.Client) AnnouncementRepository {
	return &announcementRepository{redisClient: redisClient}
}

func (r *announcementRepository) invalidateCache(ctx context.Context) {
	if err := r.redisClient.Del(ctx, announcementCacheKey); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot invalidate announcement redis key: %v", err)
	}
}

func (r *announcementRepository) Create(ctx context.Context, data *entity.Announcement) error {
	if err := xcontext.DB(ctx).Create(data).Error; err != nil {
		return err
	}

	r.invalidateCache(ctx)
	return nil
}

func (r *announcementRepository) GetByID(ctx context.Context, id string) (*entity.Announcement, error) {
	var record entity.Announcement
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *announcementRepository) GetList(ctx context.Context) ([]entity.Announcement, error) {
	var result []entity.Announcement
	if err := xcontext.DB(ctx).Order("created_at DESC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *announcementRepository) GetActiveList(ctx context.Context) ([]entity.Announcement, error) {
	var cached []entity.Announcement
	err := r.redisClient.GetObj(ctx, announcementCacheKey, &cached)
	if err == nil {
		return cached, nil
	}

	if !errors.Is(err, redis.Nil) {
		xcontext.Logger(ctx).Warnf("Cannot get announcements from redis: %v", err)
	}

	var result []entity.Announcement
	err = xcontext.DB(ctx).
		Where("is_active=?", true).
		Order("created_at DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	err = r.redisClient.SetObj(ctx, announcementCacheKey, result, announcementCacheTTL)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot set announcement redis key: %v", err)
	}

	return result, nil
}

func (r *announcementRepository) UpdateByID(
	ctx context.Context, id string, data *entity.Announcement,
) error {
	updateMap := map[string]any{"is_active": data.IsActive}
	if data.Title != "" {
		updateMap["title"] = data.Title
	}

	if data.Description != "" {
		updateMap["description"] = data.Description
	}

	if data.Icon != "" {
		updateMap["icon"] = data.Icon
	}

	if data.URL != "" {
		updateMap["url"] = data.URL
	}

	tx := xcontext.DB(ctx).Model(&entity.Announcement{}).Where("id=?", id).Updates(updateMap)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.invalidateCache(ctx)
	return nil
}

func (r *announcementRepository) DeleteByID(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).Delete(&entity.Announcement{}, "id=?", id)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.invalidateCache(ctx)
	return nil
}
