package model

import "github.com/shopspring/decimal"

// User is the client representation. TelegramID crosses the JSON boundary as
// a string because Telegram ids exceed the safe integer range of JSON
// consumers; decimals marshal as strings for the same reason.
type User struct {
	ID                      string          `json:"id"`
	TelegramID              string          `json:"telegram_id"`
	Name                    string          `json:"name"`
	Username                string          `json:"username"`
	AvatarURL               string          `json:"avatar_url,omitempty"`
	Balance                 decimal.Decimal `json:"balance"`
	Points                  decimal.Decimal `json:"points"`
	ProfileLink             string          `json:"profile_link,omitempty"`
	OnboardingBonusReceived bool            `json:"onboarding_bonus_received"`
	IsBlocked               bool            `json:"is_blocked"`
	Note                    string          `json:"note,omitempty"`
	CreatedAt               string          `json:"created_at,omitempty"`
	LastLoginAt             string          `json:"last_login_at,omitempty"`
}

type LoginRequest struct {
	TelegramID string `json:"telegram_id"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	AvatarURL  string `json:"avatar_url"`
}

type LoginResponse struct {
	User            User            `json:"user"`
	OnboardingBonus decimal.Decimal `json:"onboarding_bonus"`
	PointName       string          `json:"point_name"`
	AccessToken     string          `json:"access_token"`
}

type GetMeRequest struct{}

type GetMeResponse User

type ConnectProfileRequest struct {
	ProfileLink string `json:"profile_link"`
}

type ConnectProfileResponse struct {
	User  User            `json:"user"`
	Bonus decimal.Decimal `json:"bonus"`
}
