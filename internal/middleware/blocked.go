package middleware

import (
	"context"

	"github.com/taskhive/backend/internal/repository"
	"github.com/taskhive/backend/pkg/errorx"
	"github.com/taskhive/backend/pkg/router"
	"github.com/taskhive/backend/pkg/xcontext"
)

// RejectBlockedUser stops blocked accounts at the door of authenticated user
// endpoints; an already-issued token does not keep a blocked user in.
func RejectBlockedUser(userRepo repository.UserRepository) router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		user, err := userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
			return nil, errorx.Unknown
		}

		if user.IsBlocked {
			return nil, errorx.New(errorx.PermissionDenied, "Your account has been blocked")
		}

		return nil, nil
	}
}
