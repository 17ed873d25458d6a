package entity

// AdminLog is the append-only audit trail. Every admin mutation writes one
// entry; entries are never updated or deleted.
type AdminLog struct {
	Base

	AdminID string `gorm:"index;not null"`
	Admin   Admin  `gorm:"foreignKey:AdminID"`

	Action string `gorm:"index"`
	Target string
	Detail Map
}
