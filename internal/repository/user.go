package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/taskhive/backend/internal/entity"
	"github.com/taskhive/backend/pkg/xcontext"
	"github.com/taskhive/backend/pkg/xredis"
	"gorm.io/gorm"
)

const userCacheTTL = 5 * time.Minute

type GetListUserFilter struct {
	Q         string
	IsBlocked *bool
	Offset    int
	Limit     int
}

type UserRepository interface {
	Create(ctx context.Context, data *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetList(ctx context.Context, filter GetListUserFilter) ([]entity.User, error)
	UpdateByID(ctx context.Context, id string, data *entity.User) error
	SetBlocked(ctx context.Context, id string, blocked bool) error
	SetNote(ctx context.Context, id, note string) error
	SetProfileLink(ctx context.Context, id, link string) error
	IncreaseBalances(ctx context.Context, id string, balance, points decimal.Decimal) error
	DecreasePoints(ctx context.Context, id string, points decimal.Decimal) error
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	redisClient xredis.Client
}

func NewUserRepository(redisClient xredis.Client) UserRepository {
	return &userRepository{redisClient: redisClient}
}

func (r *userRepository) cacheKeyByID(id string) string {
	return fmt.Sprintf("cache:user:%s", id)
}

func (r *userRepository) cacheKeyByTelegramID(telegramID int64) string {
	return fmt.Sprintf("cache:user:telegram:%d", telegramID)
}

func (r *userRepository) cache(ctx context.Context, record entity.User) {
	kv := map[string]any{
		r.cacheKeyByID(record.ID):                 record,
		r.cacheKeyByTelegramID(record.TelegramID): record,
	}

	for key, value := range kv {
		if err := r.redisClient.SetObj(ctx, key, value, userCacheTTL); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot set user redis key: %v", err)
		}
	}
}

func (r *userRepository) fromCache(ctx context.Context, key string) *entity.User {
	var record entity.User
	if err := r.redisClient.GetObj(ctx, key, &record); err != nil {
		if !errors.Is(err, redis.Nil) {
			xcontext.Logger(ctx).Warnf("Cannot get user from redis: %v", err)
		}
		return nil
	}

	return &record
}

func (r *userRepository) invalidateCache(ctx context.Context, id string) {
	record := r.fromCache(ctx, r.cacheKeyByID(id))

	keys := []string{r.cacheKeyByID(id)}
	if record != nil {
		keys = append(keys, r.cacheKeyByTelegramID(record.TelegramID))
	}

	if err := r.redisClient.Del(ctx, keys...); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot invalidate user redis key: %v", err)
	}
}

func (r *userRepository) Create(ctx context.Context, data *entity.User) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if record := r.fromCache(ctx, r.cacheKeyByID(id)); record != nil {
		return record, nil
	}

	var record entity.User
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	r.cache(ctx, record)
	return &record, nil
}

func (r *userRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*entity.User, error) {
	if record := r.fromCache(ctx, r.cacheKeyByTelegramID(telegramID)); record != nil {
		return record, nil
	}

	var record entity.User
	if err := xcontext.DB(ctx).Take(&record, "telegram_id=?", telegramID).Error; err != nil {
		return nil, err
	}

	r.cache(ctx, record)
	return &record, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Take(&record, "username=?", username).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) GetList(ctx context.Context, filter GetListUserFilter) ([]entity.User, error) {
	tx := xcontext.DB(ctx).Model(&entity.User{}).
		Offset(filter.Offset).
		Order("created_at DESC")

	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}

	if filter.Q != "" {
		tx = tx.Where("name LIKE ? OR username LIKE ?", "%"+filter.Q+"%", "%"+filter.Q+"%")
	}

	if filter.IsBlocked != nil {
		tx = tx.Where("is_blocked=?", *filter.IsBlocked)
	}

	var result []entity.User
	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userRepository) UpdateByID(ctx context.Context, id string, data *entity.User) error {
	updateMap := map[string]any{}
	if data.Name != "" {
		updateMap["name"] = data.Name
	}

	if data.Username != "" {
		updateMap["username"] = data.Username
	}

	if data.AvatarURL != "" {
		updateMap["avatar_url"] = data.AvatarURL
	}

	if !data.LastLoginAt.IsZero() {
		updateMap["last_login_at"] = data.LastLoginAt
	}

	if len(updateMap) == 0 {
		return nil
	}

	err := xcontext.DB(ctx).Model(&entity.User{}).Where("id=?", id).Updates(updateMap).Error
	if err != nil {
		return err
	}

	r.invalidateCache(ctx, id)
	return nil
}

func (r *userRepository) SetBlocked(ctx context.Context, id string, blocked bool) error {
	tx := xcontext.DB(ctx).Model(&entity.User{}).
		Where("id=?", id).
		Update("is_blocked", blocked)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.invalidateCache(ctx, id)
	return nil
}

func (r *userRepository) SetNote(ctx context.Context, id, note string) error {
	tx := xcontext.DB(ctx).Model(&entity.User{}).
		Where("id=?", id).
		Update("note", note)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.invalidateCache(ctx, id)
	return nil
}

// SetProfileLink stores the profile link and claims the onboarding bonus in
// one conditional update. The flag condition is the store-level guard: two
// concurrent claims race on it and only one row update wins, no matter what a
// stale cache said before. Returns ErrBonusAlreadyReceived for the losers.
func (r *userRepository) SetProfileLink(ctx context.Context, id, link string) error {
	tx := xcontext.DB(ctx).Model(&entity.User{}).
		Where("id=? AND onboarding_bonus_received=?", id, false).
		Updates(map[string]any{
			"profile_link":              link,
			"onboarding_bonus_received": true,
		})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		var count int64
		err := xcontext.DB(ctx).Model(&entity.User{}).Where("id=?", id).Count(&count).Error
		if err != nil {
			return err
		}

		if count == 0 {
			return gorm.ErrRecordNotFound
		}

		return ErrBonusAlreadyReceived
	}

	r.invalidateCache(ctx, id)
	return nil
}

func (r *userRepository) IncreaseBalances(
	ctx context.Context, id string, balance, points decimal.Decimal,
) error {
	updateMap := map[string]any{}
	if !balance.IsZero() {
		updateMap["balance"] = gorm.Expr("balance+?", balance)
	}

	if !points.IsZero() {
		updateMap["points"] = gorm.Expr("points+?", points)
	}

	if len(updateMap) == 0 {
		return nil
	}

	tx := xcontext.DB(ctx).Model(&entity.User{}).Where("id=?", id).Updates(updateMap)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.invalidateCache(ctx, id)
	return nil
}

// DecreasePoints subtracts points with a store-level non-negative guard. It
// returns ErrInsufficientPoints if the user's points are lower than the
// amount, so two concurrent spends cannot both succeed.
func (r *userRepository) DecreasePoints(ctx context.Context, id string, points decimal.Decimal) error {
	tx := xcontext.DB(ctx).Model(&entity.User{}).
		Where("id=? AND points >= ?", id, points).
		Update("points", gorm.Expr("points-?", points))
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return ErrInsufficientPoints
	}

	r.invalidateCache(ctx, id)
	return nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := xcontext.DB(ctx).Model(&entity.User{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
