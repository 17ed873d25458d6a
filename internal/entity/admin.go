package entity

import (
	"time"

	"github.com/taskhive/backend/pkg/enum"
)

type AdminRoleType string

var (
	RoleSuperAdmin = enum.New(AdminRoleType("super_admin"))
	RoleAdmin      = enum.New(AdminRoleType("admin"))
)

var AdminRoles = []AdminRoleType{RoleSuperAdmin, RoleAdmin}

type Admin struct {
	Base

	Username     string `gorm:"unique;not null"`
	PasswordHash string
	Role         AdminRoleType
	LastLoginAt  time.Time
}
