package repository_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/taskhive/backend/internal/entity"
	"github.com/taskhive/backend/internal/repository"
	"github.com/taskhive/backend/pkg/testutil"
)

func Test_userRepository_DecreasePoints_Guard(t *testing.T) {
	ctx := testutil.MockContext()
	r := repository.NewUserRepository(&testutil.MockRedisClient{})

	user := testutil.SampleUser(ctx, &entity.User{Points: decimal.NewFromInt(100)})

	require.NoError(t, r.DecreasePoints(ctx, user.ID, decimal.NewFromInt(40)))

	// Overdrawing fails and the points stay untouched.
	err := r.DecreasePoints(ctx, user.ID, decimal.NewFromInt(100))
	require.ErrorIs(t, err, repository.ErrInsufficientPoints)

	after, err := r.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, after.Points.Equal(decimal.NewFromInt(60)))
}

func Test_userRepository_SetProfileLink_Guard(t *testing.T) {
	ctx := testutil.MockContext()
	r := repository.NewUserRepository(&testutil.MockRedisClient{})

	user := testutil.SampleUser(ctx, nil)

	require.NoError(t, r.SetProfileLink(ctx, user.ID, "https://example.com/in/alice"))

	// The flag condition makes the claim single-winner at the store level.
	err := r.SetProfileLink(ctx, user.ID, "https://example.com/in/alice2")
	require.ErrorIs(t, err, repository.ErrBonusAlreadyReceived)

	after, err := r.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "https://example.com/in/alice", after.ProfileLink)
	require.True(t, after.OnboardingBonusReceived)
}

func Test_userRepository_IncreaseBalances(t *testing.T) {
	ctx := testutil.MockContext()
	r := repository.NewUserRepository(&testutil.MockRedisClient{})

	user := testutil.SampleUser(ctx, nil)

	require.NoError(t, r.IncreaseBalances(ctx, user.ID,
		decimal.NewFromInt(1000), decimal.NewFromInt(10)))
	require.NoError(t, r.IncreaseBalances(ctx, user.ID,
		decimal.NewFromInt(500), decimal.Zero))

	after, err := r.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, after.Balance.Equal(decimal.NewFromInt(1500)))
	require.True(t, after.Points.Equal(decimal.NewFromInt(10)))
}

func Test_taskRepository_IncreaseCompletedCount_Guard(t *testing.T) {
	ctx := testutil.MockContext()
	r := repository.NewTaskRepository(&testutil.MockRedisClient{})

	task := testutil.SampleTask(ctx, &entity.Task{Quantity: 1})

	require.NoError(t, r.IncreaseCompletedCount(ctx, task.ID))

	err := r.IncreaseCompletedCount(ctx, task.ID)
	require.ErrorIs(t, err, repository.ErrTaskCapacityFull)

	after, err := r.GetByID(ctx, task.ID)
	require.NoError(t, err)
	require.Equal(t, 1, after.CompletedCount)
}
