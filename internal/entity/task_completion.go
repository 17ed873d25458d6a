package entity

import "github.com/taskhive/backend/pkg/enum"

type TaskCompletionStatusType string

var (
	CompletionCompleted = enum.New(TaskCompletionStatusType("completed"))
)

// TaskCompletion links a user to a task they completed. The composite unique
// index enforces claim-once even under concurrent verification requests.
type TaskCompletion struct {
	Base

	TaskID string `gorm:"uniqueIndex:idx_completions_task_user;not null"`
	Task   Task   `gorm:"foreignKey:TaskID"`

	UserID string `gorm:"uniqueIndex:idx_completions_task_user;not null"`
	User   User   `gorm:"foreignKey:UserID"`

	Status TaskCompletionStatusType
}
