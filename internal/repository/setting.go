package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/taskhive/backend/internal/entity"
	"github.com/taskhive/backend/pkg/xcontext"
	"github.com/taskhive/backend/pkg/xredis"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	settingCacheKey = "cache:settings"
	settingCacheTTL = time.Minute
)

type SettingRepository interface {
	// Get returns the singleton settings row, lazily creating it with
	// defaults on first read.
	Get(ctx context.Context) (*entity.Setting, error)
	Update(ctx context.Context, data *entity.Setting) error
}

type settingRepository struct {
	redisClient xredis.Client
}

func NewSettingRepository(redisClient xredis.Client) SettingRepository {
	return &settingRepository{redisClient: redisClient}
}

func (r *settingRepository) Get(ctx context.Context) (*entity.Setting, error) {
	var cached entity.Setting
	err := r.redisClient.GetObj(ctx, settingCacheKey, &cached)
	if err == nil {
		return &cached, nil
	}

	if !errors.Is(err, redis.Nil) {
		xcontext.Logger(ctx).Warnf("Cannot get settings from redis: %v", err)
	}

	var record entity.Setting
	err = xcontext.DB(ctx).Take(&record, "id=?", entity.SettingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record, err = r.createDefault(ctx)
	}
	if err != nil {
		return nil, err
	}

	if err := r.redisClient.SetObj(ctx, settingCacheKey, record, settingCacheTTL); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot set settings redis key: %v", err)
	}

	return &record, nil
}

// createDefault inserts the default row with a do-nothing conflict clause so
// two concurrent first reads cannot create duplicates; the loser of the race
// re-reads the winner's row.
func (r *settingRepository) createDefault(ctx context.Context) (entity.Setting, error) {
	bonus, err := decimal.NewFromString(xcontext.Configs(ctx).Onboarding.DefaultBonus)
	if err != nil {
		return entity.Setting{}, err
	}

	record := entity.Setting{
		Base:            entity.Base{ID: entity.SettingID},
		OnboardingBonus: bonus,
		PointName:       "points",
	}

	err = xcontext.DB(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&record).Error
	if err != nil {
		return entity.Setting{}, err
	}

	if err := xcontext.DB(ctx).Take(&record, "id=?", entity.SettingID).Error; err != nil {
		return entity.Setting{}, err
	}

	return record, nil
}

func (r *settingRepository) Update(ctx context.Context, data *entity.Setting) error {
	data.ID = entity.SettingID
	err := xcontext.DB(ctx).Model(&entity.Setting{}).
		Where("id=?", entity.SettingID).
		Updates(map[string]any{
			"maintenance_mode":    data.MaintenanceMode,
			"maintenance_message": data.MaintenanceMessage,
			"maintenance_date":    data.MaintenanceDate,
			"onboarding_bonus":    data.OnboardingBonus,
			"point_name":          data.PointName,
			"community_link":      data.CommunityLink,
		}).Error
	if err != nil {
		return err
	}

	if err := r.redisClient.Del(ctx, settingCacheKey); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot invalidate settings redis key: %v", err)
	}

	return nil
}
