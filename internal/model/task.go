package model

import "github.com/shopspring/decimal"

type Task struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Link           string          `json:"link"`
	Category       Category        `json:"category"`
	CreatorName    string          `json:"creator_name"`
	Quantity       int             `json:"quantity"`
	CompletedCount int             `json:"completed_count"`
	Reward         decimal.Decimal `json:"reward"`
	Status         string          `json:"status"`
	CreatedAt      string          `json:"created_at,omitempty"`
}

type GetTasksRequest struct{}

type GetTasksResponse struct {
	Tasks []Task `json:"tasks"`
}

type CreateTaskRequest struct {
	CategoryID string `json:"category_id"`
	Title      string `json:"title"`
	Link       string `json:"link"`
	Quantity   int    `json:"quantity"`
}

type CreateTaskResponse struct {
	ID   string          `json:"id"`
	Cost decimal.Decimal `json:"cost"`
}

type VerifyTaskRequest struct {
	TaskID string `json:"task_id"`
}

type VerifyTaskResponse struct {
	Reward decimal.Decimal `json:"reward"`
}

type TaskCompletion struct {
	ID        string `json:"id"`
	Task      Task   `json:"task"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at,omitempty"`
}

type GetMyCompletionsRequest struct{}

type GetMyCompletionsResponse struct {
	Completions []TaskCompletion `json:"completions"`
}

type AdminGetTasksRequest struct {
	Status     string `json:"status"`
	CategoryID string `json:"category_id"`
	Offset     int    `json:"offset"`
	Limit      int    `json:"limit"`
}

type AdminGetTasksResponse struct {
	Tasks []Task `json:"tasks"`
}

type AdminCreateTaskRequest struct {
	CategoryID string `json:"category_id"`
	Title      string `json:"title"`
	Link       string `json:"link"`
	Quantity   int    `json:"quantity"`
}

type AdminCreateTaskResponse struct {
	ID string `json:"id"`
}

type AdminUpdateTaskStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type AdminUpdateTaskStatusResponse struct{}

type AdminDeleteTaskRequest struct {
	ID string `json:"id"`
}

type AdminDeleteTaskResponse struct{}
