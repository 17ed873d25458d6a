package entity

import (
	"database/sql"

	"github.com/shopspring/decimal"
	"github.com/taskhive/backend/pkg/enum"
)

type TransactionType string

var (
	TransactionDeposit      = enum.New(TransactionType("deposit"))
	TransactionBonus        = enum.New(TransactionType("bonus"))
	TransactionTaskCreation = enum.New(TransactionType("task_creation"))
	TransactionReward       = enum.New(TransactionType("reward"))
)

type TransactionStatusType string

var (
	TransactionPending   = enum.New(TransactionStatusType("pending"))
	TransactionCompleted = enum.New(TransactionStatusType("completed"))
	TransactionRejected  = enum.New(TransactionStatusType("rejected"))
)

// Transaction records every balance-affecting event. Status moves one-way
// from pending to completed or rejected; decided transactions are never
// reopened.
type Transaction struct {
	Base

	UserID string `gorm:"index;not null"`
	User   User   `gorm:"foreignKey:UserID"`

	Type   TransactionType       `gorm:"index"`
	Status TransactionStatusType `gorm:"index"`

	Amount decimal.Decimal `gorm:"type:decimal(20,8);not null;default:0"`

	Method      string
	ReferenceID string
	Reason      string

	DecidedBy sql.NullString
	DecidedAt sql.NullTime
}
