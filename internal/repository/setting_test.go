package repository_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/taskhive/backend/internal/repository"
	"github.com/taskhive/backend/pkg/testutil"
)

func Test_settingRepository_LazyCreate(t *testing.T) {
	ctx := testutil.MockContext()
	r := repository.NewSettingRepository(&testutil.MockRedisClient{})

	// The first read creates the row with the configured default bonus.
	setting, err := r.Get(ctx)
	require.NoError(t, err)
	require.True(t, setting.OnboardingBonus.Equal(decimal.NewFromInt(500)))
	require.Equal(t, "points", setting.PointName)
	require.False(t, setting.MaintenanceMode)

	// Later reads return the same row, not a new one.
	again, err := r.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, setting.ID, again.ID)
	require.True(t, again.OnboardingBonus.Equal(decimal.NewFromInt(500)))
}

func Test_settingRepository_Update(t *testing.T) {
	ctx := testutil.MockContext()
	r := repository.NewSettingRepository(&testutil.MockRedisClient{})

	setting, err := r.Get(ctx)
	require.NoError(t, err)

	setting.PointName = "coins"
	setting.OnboardingBonus = decimal.NewFromInt(100)
	require.NoError(t, r.Update(ctx, setting))

	after, err := r.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "coins", after.PointName)
	require.True(t, after.OnboardingBonus.Equal(decimal.NewFromInt(100)))
}
