package entity

import "github.com/taskhive/backend/pkg/enum"

type ReportStatusType string

var (
	ReportPending  = enum.New(ReportStatusType("pending"))
	ReportResolved = enum.New(ReportStatusType("resolved"))
	ReportRejected = enum.New(ReportStatusType("rejected"))
)

type Report struct {
	Base

	ReporterID string `gorm:"index;not null"`
	Reporter   User   `gorm:"foreignKey:ReporterID"`

	// AccusedUsername is a handle, not a foreign key. The accused user's
	// current state is looked up at listing time.
	AccusedUsername string `gorm:"index"`
	TaskLink        string
	ProfileLink     string

	Status ReportStatusType `gorm:"index"`
	Reason string
}
