package migration

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/taskhive/backend/internal/entity"
	"github.com/taskhive/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// migrators run in order; the slice index is the schema version. Add new
// versions at the end, never reorder.
var migrators = []func(context.Context) error{
	migrate0000,
}

// Migrate applies every migration newer than the recorded schema version.
func Migrate(ctx context.Context) error {
	if err := xcontext.DB(ctx).AutoMigrate(&entity.Migration{}); err != nil {
		return err
	}

	current := -1
	var record entity.Migration
	err := xcontext.DB(ctx).Order("version DESC").First(&record).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err == nil {
		current = record.Version
	}

	for version := current + 1; version < len(migrators); version++ {
		xcontext.Logger(ctx).Infof("Applying migration %04d", version)
		if err := migrators[version](ctx); err != nil {
			return err
		}

		applied := entity.Migration{
			Base:    entity.Base{ID: uuid.NewString()},
			Version: version,
		}

		if err := xcontext.DB(ctx).Create(&applied).Error; err != nil {
			return err
		}
	}

	return nil
}
