package middleware

import (
	"context"

	"github.com/taskhive/backend/internal/repository"
	"github.com/taskhive/backend/pkg/errorx"
	"github.com/taskhive/backend/pkg/router"
	"github.com/taskhive/backend/pkg/xcontext"
)

// Maintenance rejects user traffic while maintenance mode is on. The settings
// read goes through the repository cache, so this does not hit the database on
// every request.
func Maintenance(settingRepo repository.SettingRepository) router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		setting, err := settingRepo.Get(ctx)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get settings: %v", err)
			return nil, errorx.Unknown
		}

		if setting.MaintenanceMode {
			message := setting.MaintenanceMessage
			if message == "" {
				message = "The service is under maintenance, please come back later"
			}

			return nil, errorx.New(errorx.Unavailable, "%s", message)
		}

		return nil, nil
	}
}
