package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is a Telegram identity. Balance and Points are kept as exact decimals
// and must never go negative after a committed ledger operation.
type User struct {
	Base

	TelegramID int64 `gorm:"unique;not null"`
	Name       string
	Username   string `gorm:"index"`
	AvatarURL  string

	Balance decimal.Decimal `gorm:"type:decimal(20,8);not null;default:0"`
	Points  decimal.Decimal `gorm:"type:decimal(20,8);not null;default:0"`

	ProfileLink string
	// OnboardingBonusReceived makes the onboarding bonus one-time even if the
	// user later clears the profile link.
	OnboardingBonusReceived bool

	IsBlocked bool
	// Note is free-form text written by admins, never shown to the user.
	Note        string
	LastLoginAt time.Time
}
