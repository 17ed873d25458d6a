package model

// AccessToken is the object embedded in every JWT. Role is "user" for
// Telegram users and the admin role for panel accounts.
type AccessToken struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

const UserRole = "user"
