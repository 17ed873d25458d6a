package entity

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// SettingID is the well-known primary key of the single settings row. The row
// is lazily created with defaults on first read.
const SettingID = "settings"

type Setting struct {
	Base

	MaintenanceMode    bool
	MaintenanceMessage string
	MaintenanceDate    sql.NullTime

	OnboardingBonus decimal.Decimal `gorm:"type:decimal(20,8);not null;default:0"`
	PointName       string
	CommunityLink   string
}
