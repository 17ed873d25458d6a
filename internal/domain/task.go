package domain

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/taskhive/backend/internal/entity"
	"github.com/taskhive/backend/internal/model"
	"github.com/taskhive/backend/internal/repository"
	"github.com/taskhive/backend/pkg/errorx"
	"github.com/taskhive/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type TaskDomain interface {
	GetList(ctx context.Context, req *model.GetTasksRequest) (*model.GetTasksResponse, error)
	Verify(ctx context.Context, req *model.VerifyTaskRequest) (*model.VerifyTaskResponse, error)
	Create(ctx context.Context, req *model.CreateTaskRequest) (*model.CreateTaskResponse, error)
	GetMyCompletions(ctx context.Context, req *model.GetMyCompletionsRequest) (*model.GetMyCompletionsResponse, error)
}

type taskDomain struct {
	taskRepo           repository.TaskRepository
	taskCompletionRepo repository.TaskCompletionRepository
	categoryRepo       repository.CategoryRepository
	userRepo           repository.UserRepository
	transactionRepo    repository.TransactionRepository
}

func NewTaskDomain(
	taskRepo repository.TaskRepository,
	taskCompletionRepo repository.TaskCompletionRepository,
	categoryRepo repository.CategoryRepository,
	userRepo repository.UserRepository,
	transactionRepo repository.TransactionRepository,
) TaskDomain {
	return &taskDomain{
		taskRepo:           taskRepo,
		taskCompletionRepo: taskCompletionRepo,
		categoryRepo:       categoryRepo,
		userRepo:           userRepo,
		transactionRepo:    transactionRepo,
	}
}

// GetList returns active tasks the caller can still complete. Tasks the
// caller already completed and tasks at capacity are filtered out; the
// at-capacity filter runs again here because the active list is cached.
func (d *taskDomain) GetList(ctx context.Context, req *model.GetTasksRequest) (*model.GetTasksResponse, error) {
	tasks, err := d.taskRepo.GetActiveList(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get active tasks: %v", err)
		return nil, errorx.Unknown
	}

	completions, err := d.taskCompletionRepo.GetListByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get task completions: %v", err)
		return nil, errorx.Unknown
	}

	completedTaskIDs := map[string]bool{}
	for _, completion := range completions {
		completedTaskIDs[completion.TaskID] = true
	}

	resp := []model.Task{}
	for i := range tasks {
		if completedTaskIDs[tasks[i].ID] {
			continue
		}

		if tasks[i].CompletedCount >= tasks[i].Quantity {
			continue
		}

		resp = append(resp, model.ConvertTask(&tasks[i]))
	}

	return &model.GetTasksResponse{Tasks: resp}, nil
}

// Verify claims a task completion and pays the reward atomically. The
// composite unique index on completions and the conditional count update make
// this safe under concurrent calls: one caller wins, the rest fail with no
// effect.
func (d *taskDomain) Verify(ctx context.Context, req *model.VerifyTaskRequest) (*model.VerifyTaskResponse, error) {
	if req.TaskID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty task id")
	}

	userID := xcontext.RequestUserID(ctx)

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	task, err := d.taskRepo.GetByID(ctx, req.TaskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found task")
		}

		xcontext.Logger(ctx).Errorf("Cannot get task: %v", err)
		return nil, errorx.Unknown
	}

	if task.Status != entity.TaskActive {
		return nil, errorx.New(errorx.Unavailable, "Task is not available anymore")
	}

	_, err = d.taskCompletionRepo.Get(ctx, userID, req.TaskID)
	if err == nil {
		return nil, errorx.New(errorx.AlreadyProcessed, "You have already completed this task")
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get task completion: %v", err)
		return nil, errorx.Unknown
	}

	completion := &entity.TaskCompletion{
		Base:   entity.Base{ID: uuid.NewString()},
		TaskID: req.TaskID,
		UserID: userID,
		Status: entity.CompletionCompleted,
	}

	if err := d.taskCompletionRepo.Create(ctx, completion); err != nil {
		// A concurrent claim hit the unique index first.
		xcontext.Logger(ctx).Debugf("Cannot create task completion: %v", err)
		return nil, errorx.New(errorx.AlreadyProcessed, "You have already completed this task")
	}

	if err := d.taskRepo.IncreaseCompletedCount(ctx, req.TaskID); err != nil {
		if errors.Is(err, repository.ErrTaskCapacityFull) {
			return nil, errorx.New(errorx.TaskCapacityFull, "This task has reached its capacity")
		}

		xcontext.Logger(ctx).Errorf("Cannot increase completed count: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.userRepo.IncreaseBalances(ctx, userID, task.Reward, task.Reward); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot pay task reward: %v", err)
		return nil, errorx.Unknown
	}

	transaction := &entity.Transaction{
		Base:   entity.Base{ID: uuid.NewString()},
		UserID: userID,
		Type:   entity.TransactionReward,
		Status: entity.TransactionCompleted,
		Amount: task.Reward,
		Reason: fmt.Sprintf("Reward of task %s", task.Title),
	}

	if err := d.transactionRepo.Create(ctx, transaction); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create reward transaction: %v", err)
		return nil, errorx.Unknown
	}

	ctx = xcontext.WithCommitDBTransaction(ctx)

	return &model.VerifyTaskResponse{Reward: task.Reward}, nil
}

// Create publishes a paid task. The creator is charged
// quantity * CostPerCompletion of the category up front; completers will earn
// the category's RewardPerCompletion.
func (d *taskDomain) Create(ctx context.Context, req *model.CreateTaskRequest) (*model.CreateTaskResponse, error) {
	if req.Title == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty title")
	}

	if req.Link == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty link")
	}

	if req.Quantity <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Quantity must be positive")
	}

	userID := xcontext.RequestUserID(ctx)

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	category, err := d.categoryRepo.GetByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found category")
		}

		xcontext.Logger(ctx).Errorf("Cannot get category: %v", err)
		return nil, errorx.Unknown
	}

	cost := category.CostPerCompletion.Mul(decimal.NewFromInt(int64(req.Quantity)))
	if err := d.userRepo.DecreasePoints(ctx, userID, cost); err != nil {
		if errors.Is(err, repository.ErrInsufficientPoints) {
			return nil, errorx.New(errorx.InsufficientPoints, "You do not have enough points")
		}

		xcontext.Logger(ctx).Errorf("Cannot charge task creation: %v", err)
		return nil, errorx.Unknown
	}

	task := &entity.Task{
		Base:       entity.Base{ID: uuid.NewString()},
		CreatorID:  sql.NullString{String: userID, Valid: true},
		CategoryID: category.ID,
		Title:      req.Title,
		Link:       req.Link,
		Quantity:   req.Quantity,
		Reward:     category.RewardPerCompletion,
		Status:     entity.TaskActive,
	}

	if err := d.taskRepo.Create(ctx, task); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create task: %v", err)
		return nil, errorx.Unknown
	}

	transaction := &entity.Transaction{
		Base:   entity.Base{ID: uuid.NewString()},
		UserID: userID,
		Type:   entity.TransactionTaskCreation,
		Status: entity.TransactionCompleted,
		Amount: cost,
		Reason: fmt.Sprintf("Creation of task %s", task.Title),
	}

	if err := d.transactionRepo.Create(ctx, transaction); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create charge transaction: %v", err)
		return nil, errorx.Unknown
	}

	ctx = xcontext.WithCommitDBTransaction(ctx)

	return &model.CreateTaskResponse{ID: task.ID, Cost: cost}, nil
}

func (d *taskDomain) GetMyCompletions(ctx context.Context, req *model.GetMyCompletionsRequest) (*model.GetMyCompletionsResponse, error) {
	completions, err := d.taskCompletionRepo.GetListByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get task completions: %v", err)
		return nil, errorx.Unknown
	}

	resp := []model.TaskCompletion{}
	for i := range completions {
		resp = append(resp, model.ConvertTaskCompletion(&completions[i]))
	}

	return &model.GetMyCompletionsResponse{Completions: resp}, nil
}
