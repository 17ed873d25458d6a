package repository

import (
	"context"

	"github.com/taskhive/backend/internal/entity"
	"github.com/taskhive/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type RuleRepository interface {
	Create(ctx context.Context, data *entity.Rule) error
	GetByID(ctx context.Context, id string) (*entity.Rule, error)
	GetList(ctx context.Context) ([]entity.Rule, error)
	UpdateByID(ctx context.Context, id string, data *entity.Rule) error
	DeleteByID(ctx context.Context, id string) error
}

type ruleRepository struct{}

func NewRuleRepository() RuleRepository {
	return &ruleRepository{}
}

func (r *ruleRepository) Create(ctx context.Context, data *entity.Rule) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *ruleRepository) GetByID(ctx context.Context, id string) (*entity.Rule, error) {
	var record entity.Rule
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *ruleRepository) GetList(ctx context.Context) ([]entity.Rule, error) {
	var result []entity.Rule
	if err := xcontext.DB(ctx).Order("`index` ASC, created_at ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *ruleRepository) UpdateByID(ctx context.Context, id string, data *entity.Rule) error {
	updateMap := map[string]any{}
	if data.Title != "" {
		updateMap["title"] = data.Title
	}

	if data.Description != "" {
		updateMap["description"] = data.Description
	}

	if data.Category != "" {
		updateMap["category"] = data.Category
	}

	if data.Index != 0 {
		updateMap["index"] = data.Index
	}

	if len(updateMap) == 0 {
		return nil
	}

	tx := xcontext.DB(ctx).Model(&entity.Rule{}).Where("id=?", id).Updates(updateMap)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *ruleRepository) DeleteByID(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).Delete(&entity.Rule{}, "id=?", id)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
