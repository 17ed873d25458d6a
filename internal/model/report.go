package model

type Report struct {
	ID              string `json:"id"`
	Reporter        User   `json:"reporter,omitempty"`
	AccusedUsername string `json:"accused_username"`
	AccusedUser     *User  `json:"accused_user,omitempty"`
	TaskLink        string `json:"task_link"`
	ProfileLink     string `json:"profile_link"`
	Status          string `json:"status"`
	Reason          string `json:"reason,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
}

type CreateReportRequest struct {
	AccusedUsername string `json:"accused_username"`
	TaskLink        string `json:"task_link"`
	ProfileLink     string `json:"profile_link"`
}

type CreateReportResponse struct {
	ID string `json:"id"`
}

type AdminGetReportsRequest struct {
	Status string `json:"status"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type AdminGetReportsResponse struct {
	Reports []Report `json:"reports"`
}

type AdminResolveReportRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type AdminResolveReportResponse struct{}
