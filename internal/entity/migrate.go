package entity

import (
	"context"

	"github.com/taskhive/backend/pkg/xcontext"
)

// MigrateTable creates every table with the latest schema. Used by tests and
// by migration.Migrate on an empty database.
func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&Category{},
		&Task{},
		&TaskCompletion{},
		&Transaction{},
		&Report{},
		&Rule{},
		&Announcement{},
		&Setting{},
		&Admin{},
		&AdminLog{},
		&Migration{},
	)
}
