package entity

import "github.com/shopspring/decimal"

// Category is the rate table for paid tasks. A creator is charged
// CostPerCompletion per requested completion; a completer is rewarded
// RewardPerCompletion. Both are fixed on the category, so creation and
// consumption use independently governed unit economics.
type Category struct {
	Base

	Name                string          `gorm:"unique;not null"`
	Icon                string
	RewardPerCompletion decimal.Decimal `gorm:"type:decimal(20,8);not null;default:0"`
	CostPerCompletion   decimal.Decimal `gorm:"type:decimal(20,8);not null;default:0"`
}
