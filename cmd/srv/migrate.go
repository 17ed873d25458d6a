package main

import (
	"log"

	"github.com/google/uuid"
	"github.com/taskhive/backend/internal/entity"
	"github.com/taskhive/backend/internal/repository"
	"github.com/taskhive/backend/migration"
	"github.com/taskhive/backend/pkg/crypto"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(cctx *cli.Context) error {
	server.loadConfig(cctx)
	server.loadLogger()
	server.loadDatabase()

	if err := migration.Migrate(s.ctx); err != nil {
		return err
	}

	return s.seedSuperAdmin()
}

// seedSuperAdmin creates the first panel account on an empty admin table. The
// generated password is printed once and never stored in clear.
func (s *srv) seedSuperAdmin() error {
	adminRepo := repository.NewAdminRepository()

	count, err := adminRepo.Count(s.ctx)
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	password := crypto.GenerateRandomAlphabet(16)
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &entity.Admin{
		Base:         entity.Base{ID: uuid.NewString()},
		Username:     "admin",
		PasswordHash: hash,
		Role:         entity.RoleSuperAdmin,
	}

	if err := adminRepo.Create(s.ctx, admin); err != nil {
		return err
	}

	log.Printf("Created super admin %q with password %s\n", admin.Username, password)
	return nil
}
