package entity

type Announcement struct {
	Base

	Title       string
	Description string
	Icon        string
	URL         string
	IsActive    bool `gorm:"index"`
}
