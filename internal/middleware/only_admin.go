package middleware

import (
	"context"

	"github.com/taskhive/backend/internal/common"
	"github.com/taskhive/backend/internal/entity"
	"github.com/taskhive/backend/internal/repository"
	"github.com/taskhive/backend/pkg/errorx"
	"github.com/taskhive/backend/pkg/router"
)

type OnlyAdmin struct {
	adminRoleVerifier *common.AdminRoleVerifier
}

func NewOnlyAdmin(adminRepo repository.AdminRepository) *OnlyAdmin {
	return &OnlyAdmin{
		adminRoleVerifier: common.NewAdminRoleVerifier(adminRepo),
	}
}

func (a *OnlyAdmin) Middleware() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		if err := a.adminRoleVerifier.Verify(ctx, entity.AdminRoles...); err != nil {
			return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
		}

		return nil, nil
	}
}

type OnlySuperAdmin struct {
	adminRoleVerifier *common.AdminRoleVerifier
}

func NewOnlySuperAdmin(adminRepo repository.AdminRepository) *OnlySuperAdmin {
	return &OnlySuperAdmin{
		adminRoleVerifier: common.NewAdminRoleVerifier(adminRepo),
	}
}

func (a *OnlySuperAdmin) Middleware() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		if err := a.adminRoleVerifier.Verify(ctx, entity.RoleSuperAdmin); err != nil {
			return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
		}

		return nil, nil
	}
}
