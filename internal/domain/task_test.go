package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/taskhive/backend/internal/entity"
	"github.com/taskhive/backend/internal/model"
	"github.com/taskhive/backend/internal/repository"
	"github.com/taskhive/backend/pkg/testutil"
	"github.com/taskhive/backend/pkg/xcontext"
)

func newTaskDomainForTest() TaskDomain {
	return NewTaskDomain(
		repository.NewTaskRepository(&testutil.MockRedisClient{}),
		repository.NewTaskCompletionRepository(),
		repository.NewCategoryRepository(),
		repository.NewUserRepository(&testutil.MockRedisClient{}),
		repository.NewTransactionRepository(),
	)
}

func Test_taskDomain_Verify(t *testing.T) {
	ctx := testutil.MockContext()
	d := newTaskDomainForTest()
	userRepo := repository.NewUserRepository(&testutil.MockRedisClient{})
	transactionRepo := repository.NewTransactionRepository()

	user := testutil.SampleUser(ctx, nil)
	task := testutil.SampleTask(ctx, &entity.Task{
		Quantity: 2,
		Reward:   decimal.NewFromInt(10),
	})

	userCtx := xcontext.WithRequestUserID(ctx, user.ID)
	resp, err := d.Verify(userCtx, &model.VerifyTaskRequest{TaskID: task.ID})
	require.NoError(t, err)
	require.True(t, resp.Reward.Equal(decimal.NewFromInt(10)))

	after, err := userRepo.GetByID(userCtx, user.ID)
	require.NoError(t, err)
	require.True(t, after.Balance.Equal(decimal.NewFromInt(10)))
	require.True(t, after.Points.Equal(decimal.NewFromInt(10)))

	transactions, err := transactionRepo.GetByUserID(userCtx, user.ID)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	require.Equal(t, entity.TransactionReward, transactions[0].Type)

	// A second verification of the same task must fail with no extra payout.
	_, err = d.Verify(userCtx, &model.VerifyTaskRequest{TaskID: task.ID})
	require.Error(t, err)
	require.Equal(t, "You have already completed this task", err.Error())

	after, err = userRepo.GetByID(userCtx, user.ID)
	require.NoError(t, err)
	require.True(t, after.Balance.Equal(decimal.NewFromInt(10)))
}

func Test_taskDomain_Verify_CapacityExhausted(t *testing.T) {
	ctx := testutil.MockContext()
	d := newTaskDomainForTest()

	task := testutil.SampleTask(ctx, &entity.Task{Quantity: 1})

	first := testutil.SampleUser(ctx, nil)
	_, err := d.Verify(xcontext.WithRequestUserID(ctx, first.ID),
		&model.VerifyTaskRequest{TaskID: task.ID})
	require.NoError(t, err)

	second := testutil.SampleUser(ctx, nil)
	secondCtx := xcontext.WithRequestUserID(ctx, second.ID)
	_, err = d.Verify(secondCtx, &model.VerifyTaskRequest{TaskID: task.ID})
	require.Error(t, err)
	require.Equal(t, "This task has reached its capacity", err.Error())

	// The failed attempt must leave nothing behind.
	userRepo := repository.NewUserRepository(&testutil.MockRedisClient{})
	after, err := userRepo.GetByID(secondCtx, second.ID)
	require.NoError(t, err)
	require.True(t, after.Balance.IsZero())

	completionRepo := repository.NewTaskCompletionRepository()
	count, err := completionRepo.CountByTaskID(secondCtx, task.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func Test_taskDomain_Verify_NotActive(t *testing.T) {
	ctx := testutil.MockContext()
	d := newTaskDomainForTest()

	user := testutil.SampleUser(ctx, nil)
	task := testutil.SampleTask(ctx, &entity.Task{Status: entity.TaskPaused})

	_, err := d.Verify(xcontext.WithRequestUserID(ctx, user.ID),
		&model.VerifyTaskRequest{TaskID: task.ID})
	require.Error(t, err)
	require.Equal(t, "Task is not available anymore", err.Error())
}

func Test_taskDomain_Create(t *testing.T) {
	ctx := testutil.MockContext()
	d := newTaskDomainForTest()
	userRepo := repository.NewUserRepository(&testutil.MockRedisClient{})
	taskRepo := repository.NewTaskRepository(&testutil.MockRedisClient{})

	category := testutil.SampleCategory(ctx, &entity.Category{
		RewardPerCompletion: decimal.NewFromInt(10),
		CostPerCompletion:   decimal.NewFromInt(15),
	})

	creator := testutil.SampleUser(ctx, &entity.User{Points: decimal.NewFromInt(200)})
	creatorCtx := xcontext.WithRequestUserID(ctx, creator.ID)

	resp, err := d.Create(creatorCtx, &model.CreateTaskRequest{
		CategoryID: category.ID,
		Title:      "Like my post",
		Link:       "https://example.com/post/42",
		Quantity:   10,
	})
	require.NoError(t, err)
	require.True(t, resp.Cost.Equal(decimal.NewFromInt(150)))

	after, err := userRepo.GetByID(creatorCtx, creator.ID)
	require.NoError(t, err)
	require.True(t, after.Points.Equal(decimal.NewFromInt(50)))

	task, err := taskRepo.GetByID(creatorCtx, resp.ID)
	require.NoError(t, err)
	require.Equal(t, creator.ID, task.CreatorID.String)
	require.True(t, task.Reward.Equal(decimal.NewFromInt(10)))
	require.Equal(t, entity.TaskActive, task.Status)
}

func Test_taskDomain_Create_InsufficientPoints(t *testing.T) {
	ctx := testutil.MockContext()
	d := newTaskDomainForTest()
	taskRepo := repository.NewTaskRepository(&testutil.MockRedisClient{})
	transactionRepo := repository.NewTransactionRepository()

	category := testutil.SampleCategory(ctx, &entity.Category{
		CostPerCompletion: decimal.NewFromInt(15),
	})

	creator := testutil.SampleUser(ctx, &entity.User{Points: decimal.NewFromInt(100)})
	creatorCtx := xcontext.WithRequestUserID(ctx, creator.ID)

	_, err := d.Create(creatorCtx, &model.CreateTaskRequest{
		CategoryID: category.ID,
		Title:      "Like my post",
		Link:       "https://example.com/post/42",
		Quantity:   10,
	})
	require.Error(t, err)
	require.Equal(t, "You do not have enough points", err.Error())

	// The rejected creation must leave no task and no charge behind.
	tasks, err := taskRepo.GetList(creatorCtx, repository.GetListTaskFilter{})
	require.NoError(t, err)
	require.Empty(t, tasks)

	transactions, err := transactionRepo.GetByUserID(creatorCtx, creator.ID)
	require.NoError(t, err)
	require.Empty(t, transactions)
}

func Test_taskDomain_GetList_ExcludesCompleted(t *testing.T) {
	ctx := testutil.MockContext()
	d := newTaskDomainForTest()

	user := testutil.SampleUser(ctx, nil)
	completed := testutil.SampleTask(ctx, nil)
	remaining := testutil.SampleTask(ctx, nil)

	userCtx := xcontext.WithRequestUserID(ctx, user.ID)
	_, err := d.Verify(userCtx, &model.VerifyTaskRequest{TaskID: completed.ID})
	require.NoError(t, err)

	resp, err := d.GetList(userCtx, &model.GetTasksRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Tasks, 1)
	require.Equal(t, remaining.ID, resp.Tasks[0].ID)
}
