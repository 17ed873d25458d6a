package model

import "github.com/shopspring/decimal"

type Setting struct {
	Maintenance        bool            `json:"maintenance"`
	MaintenanceMessage string          `json:"maintenance_message,omitempty"`
	OnboardingBonus    decimal.Decimal `json:"onboarding_bonus"`
	PointName          string          `json:"point_name"`
	CommunityLink      string          `json:"community_link,omitempty"`
}

type GetSettingsRequest struct{}

type GetSettingsResponse Setting

type AdminUpdateSettingsRequest struct {
	Maintenance        *bool            `json:"maintenance"`
	MaintenanceMessage *string          `json:"maintenance_message"`
	OnboardingBonus    *decimal.Decimal `json:"onboarding_bonus"`
	PointName          *string          `json:"point_name"`
	CommunityLink      *string          `json:"community_link"`
}

type AdminUpdateSettingsResponse Setting
