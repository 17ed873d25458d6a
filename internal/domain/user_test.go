package domain

import (
	"context"
	"strconv"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/taskhive/backend/internal/entity"
	"github.com/taskhive/backend/internal/model"
	"github.com/taskhive/backend/internal/repository"
	"github.com/taskhive/backend/pkg/testutil"
	"github.com/taskhive/backend/pkg/xcontext"
)

func newUserDomainForTest() UserDomain {
	return NewUserDomain(
		repository.NewUserRepository(&testutil.MockRedisClient{}),
		repository.NewTransactionRepository(),
		repository.NewSettingRepository(&testutil.MockRedisClient{}),
	)
}

func Test_userDomain_Login_Bootstrap(t *testing.T) {
	ctx := testutil.MockContext()
	d := newUserDomainForTest()

	resp, err := d.Login(ctx, &model.LoginRequest{
		TelegramID: "123456789",
		Name:       "Alice",
		Username:   "alice",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, "123456789", resp.User.TelegramID)
	require.True(t, resp.OnboardingBonus.Equal(decimal.NewFromInt(500)))

	// The same telegram id maps to the same record with refreshed fields.
	again, err := d.Login(ctx, &model.LoginRequest{
		TelegramID: "123456789",
		Name:       "Alice B",
		Username:   "aliceb",
	})
	require.NoError(t, err)
	require.Equal(t, resp.User.ID, again.User.ID)
	require.Equal(t, "Alice B", again.User.Name)
	require.Equal(t, "aliceb", again.User.Username)
}

func Test_userDomain_Login_InvalidTelegramID(t *testing.T) {
	ctx := testutil.MockContext()
	d := newUserDomainForTest()

	_, err := d.Login(ctx, &model.LoginRequest{TelegramID: "not-a-number"})
	require.Error(t, err)
	require.Equal(t, "Invalid telegram id", err.Error())
}

func Test_userDomain_Login_Blocked(t *testing.T) {
	ctx := testutil.MockContext()
	d := newUserDomainForTest()

	user := testutil.SampleUser(ctx, &entity.User{IsBlocked: true})

	_, err := d.Login(ctx, &model.LoginRequest{
		TelegramID: strconv.FormatInt(user.TelegramID, 10),
		Name:       user.Name,
	})
	require.Error(t, err)
	require.Equal(t, "Your account has been blocked", err.Error())
}

func Test_userDomain_ConnectProfile_BonusOnce(t *testing.T) {
	ctx := testutil.MockContext()
	d := newUserDomainForTest()
	userRepo := repository.NewUserRepository(&testutil.MockRedisClient{})
	transactionRepo := repository.NewTransactionRepository()

	user := testutil.SampleUser(ctx, nil)
	userCtx := xcontext.WithRequestUserID(ctx, user.ID)

	resp, err := d.ConnectProfile(userCtx, &model.ConnectProfileRequest{
		ProfileLink: "https://example.com/in/alice",
	})
	require.NoError(t, err)
	require.True(t, resp.Bonus.Equal(decimal.NewFromInt(500)))
	require.True(t, resp.User.OnboardingBonusReceived)
	require.True(t, resp.User.Balance.Equal(decimal.NewFromInt(500)))
	require.True(t, resp.User.Points.Equal(decimal.NewFromInt(500)))

	transactions, err := transactionRepo.GetByUserID(userCtx, user.ID)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	require.Equal(t, entity.TransactionBonus, transactions[0].Type)
	require.Equal(t, entity.TransactionCompleted, transactions[0].Status)

	// The bonus is strictly one-time.
	_, err = d.ConnectProfile(userCtx, &model.ConnectProfileRequest{
		ProfileLink: "https://example.com/in/alice2",
	})
	require.Error(t, err)
	require.Equal(t, "You have already received the onboarding bonus", err.Error())

	after, err := userRepo.GetByID(userCtx, user.ID)
	require.NoError(t, err)
	require.True(t, after.Balance.Equal(decimal.NewFromInt(500)))
	require.True(t, after.Points.Equal(decimal.NewFromInt(500)))
}

func Test_userDomain_ConnectProfile_StaleCachedUser(t *testing.T) {
	ctx := testutil.MockContext()

	user := testutil.SampleUser(ctx, nil)
	userCtx := xcontext.WithRequestUserID(ctx, user.ID)

	// The cache keeps serving the pre-bonus record, as it can right after a
	// concurrent read repopulated it. The claim must still be decided by the
	// store, not by this record.
	stale := user
	staleCache := &testutil.MockRedisClient{
		GetObjFunc: func(ctx context.Context, key string, v any) error {
			if cached, ok := v.(*entity.User); ok {
				*cached = stale
				return nil
			}

			return redis.Nil
		},
	}

	d := NewUserDomain(
		repository.NewUserRepository(staleCache),
		repository.NewTransactionRepository(),
		repository.NewSettingRepository(&testutil.MockRedisClient{}),
	)

	_, err := d.ConnectProfile(userCtx, &model.ConnectProfileRequest{
		ProfileLink: "https://example.com/in/alice",
	})
	require.NoError(t, err)

	_, err = d.ConnectProfile(userCtx, &model.ConnectProfileRequest{
		ProfileLink: "https://example.com/in/alice",
	})
	require.Error(t, err)
	require.Equal(t, "You have already received the onboarding bonus", err.Error())

	// The bonus is applied exactly once no matter what the cache said.
	after, err := repository.NewUserRepository(&testutil.MockRedisClient{}).GetByID(userCtx, user.ID)
	require.NoError(t, err)
	require.True(t, after.Balance.Equal(decimal.NewFromInt(500)))
	require.True(t, after.Points.Equal(decimal.NewFromInt(500)))

	transactions, err := repository.NewTransactionRepository().GetByUserID(userCtx, user.ID)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
}

func Test_userDomain_ConnectProfile_InvalidLink(t *testing.T) {
	ctx := testutil.MockContext()
	d := newUserDomainForTest()

	user := testutil.SampleUser(ctx, nil)
	userCtx := xcontext.WithRequestUserID(ctx, user.ID)

	_, err := d.ConnectProfile(userCtx, &model.ConnectProfileRequest{ProfileLink: "not a link"})
	require.Error(t, err)
	require.Equal(t, "Invalid profile link", err.Error())
}
