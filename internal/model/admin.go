package model

type Admin struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	LastLoginAt string `json:"last_login_at,omitempty"`
}

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AdminLoginResponse struct {
	Admin       Admin  `json:"admin"`
	AccessToken string `json:"access_token"`
}

// SessionInfo persists the admin identity into the cookie session after a
// successful login.
func (resp *AdminLoginResponse) SessionInfo() map[string]any {
	return map[string]any{"admin_id": resp.Admin.ID}
}

type AdminGetUsersRequest struct {
	Q         string `json:"q"`
	IsBlocked string `json:"is_blocked"`
	Offset    int    `json:"offset"`
	Limit     int    `json:"limit"`
}

type AdminGetUsersResponse struct {
	Users []User `json:"users"`
	Total int64  `json:"total"`
}

type AdminGetUserRequest struct {
	ID string `json:"id"`
}

type AdminGetUserResponse struct {
	User         User          `json:"user"`
	Transactions []Transaction `json:"transactions"`
}

type AdminBlockUserRequest struct {
	ID      string `json:"id"`
	Blocked bool   `json:"blocked"`
}

type AdminBlockUserResponse struct{}

type AdminUpdateUserNoteRequest struct {
	ID   string `json:"id"`
	Note string `json:"note"`
}

type AdminUpdateUserNoteResponse struct{}

type AdminLog struct {
	ID        string         `json:"id"`
	Admin     Admin          `json:"admin"`
	Action    string         `json:"action"`
	Target    string         `json:"target,omitempty"`
	Detail    map[string]any `json:"detail,omitempty"`
	CreatedAt string         `json:"created_at,omitempty"`
}

type AdminGetLogsRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type AdminGetLogsResponse struct {
	Logs []AdminLog `json:"logs"`
}
