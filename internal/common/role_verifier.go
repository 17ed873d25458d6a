package common

import (
	"context"
	"errors"

	"github.com/taskhive/backend/internal/entity"
	"github.com/taskhive/backend/internal/repository"
	"github.com/taskhive/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
)

// AdminRoleVerifier checks that the request identity belongs to an existing
// panel account with one of the required roles. The role claim in the token is
// not trusted on its own; the account must still exist and match.
type AdminRoleVerifier struct {
	adminRepo repository.AdminRepository
}

func NewAdminRoleVerifier(adminRepo repository.AdminRepository) *AdminRoleVerifier {
	return &AdminRoleVerifier{adminRepo: adminRepo}
}

func (verifier *AdminRoleVerifier) Verify(ctx context.Context, requiredRoles ...entity.AdminRoleType) error {
	adminID := xcontext.RequestUserID(ctx)
	admin, err := verifier.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return errors.New("admin is not valid")
	}

	if !slices.Contains(requiredRoles, admin.Role) {
		return errors.New("admin role does not have permission")
	}

	return nil
}
