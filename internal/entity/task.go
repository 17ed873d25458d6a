package entity

import (
	"database/sql"

	"github.com/shopspring/decimal"
	"github.com/taskhive/backend/pkg/enum"
)

type TaskStatusType string

var (
	TaskActive = enum.New(TaskStatusType("active"))
	TaskPaused = enum.New(TaskStatusType("paused"))
	TaskClosed = enum.New(TaskStatusType("closed"))
)

type Task struct {
	Base

	// CreatorID is null for platform-created tasks. A task outlives a deleted
	// creator; clients then see the system identity.
	CreatorID sql.NullString
	Creator   User `gorm:"foreignKey:CreatorID"`

	CategoryID string
	Category   Category `gorm:"foreignKey:CategoryID"`

	Title string
	Link  string

	Quantity       int `gorm:"not null"`
	CompletedCount int `gorm:"not null;default:0"`

	// Reward is fixed at creation time and never changed by completions.
	Reward decimal.Decimal `gorm:"type:decimal(20,8);not null;default:0"`

	Status TaskStatusType `gorm:"index"`
}
