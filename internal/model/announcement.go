package model

type Announcement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	URL         string `json:"url,omitempty"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at,omitempty"`
}

type GetAnnouncementsRequest struct{}

type GetAnnouncementsResponse struct {
	Announcements []Announcement `json:"announcements"`
}

type AdminGetAnnouncementsRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type AdminGetAnnouncementsResponse struct {
	Announcements []Announcement `json:"announcements"`
}

type AdminCreateAnnouncementRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	URL         string `json:"url"`
	IsActive    bool   `json:"is_active"`
}

type AdminCreateAnnouncementResponse struct {
	ID string `json:"id"`
}

type AdminUpdateAnnouncementRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	URL         string `json:"url"`
	IsActive    *bool  `json:"is_active"`
}

type AdminUpdateAnnouncementResponse struct{}

type AdminDeleteAnnouncementRequest struct {
	ID string `json:"id"`
}

type AdminDeleteAnnouncementResponse struct{}
