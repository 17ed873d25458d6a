package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/taskhive/backend/internal/entity"
	"github.com/taskhive/backend/internal/model"
	"github.com/taskhive/backend/internal/repository"
	"github.com/taskhive/backend/pkg/testutil"
	"github.com/taskhive/backend/pkg/xcontext"
)

func newAdminDomainForTest() AdminDomain {
	return NewAdminDomain(
		repository.NewAdminRepository(),
		repository.NewAdminLogRepository(),
		repository.NewUserRepository(&testutil.MockRedisClient{}),
		repository.NewTaskRepository(&testutil.MockRedisClient{}),
		repository.NewTransactionRepository(),
		repository.NewReportRepository(),
		repository.NewRuleRepository(),
		repository.NewAnnouncementRepository(&testutil.MockRedisClient{}),
		repository.NewCategoryRepository(),
		repository.NewSettingRepository(&testutil.MockRedisClient{}),
	)
}

func Test_adminDomain_Login(t *testing.T) {
	ctx := testutil.MockContext()
	d := newAdminDomainForTest()

	admin := testutil.SampleAdmin(ctx, "correct horse", nil)

	resp, err := d.Login(ctx, &model.AdminLoginRequest{
		Username: admin.Username,
		Password: "correct horse",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, admin.ID, resp.Admin.ID)

	_, err = d.Login(ctx, &model.AdminLoginRequest{
		Username: admin.Username,
		Password: "wrong",
	})
	require.Error(t, err)
	require.Equal(t, "Invalid username or password", err.Error())

	_, err = d.Login(ctx, &model.AdminLoginRequest{
		Username: "nobody",
		Password: "correct horse",
	})
	require.Error(t, err)
	require.Equal(t, "Invalid username or password", err.Error())
}

func Test_adminDomain_ReviewDeposit_Approve(t *testing.T) {
	ctx := testutil.MockContext()
	d := newAdminDomainForTest()
	userRepo := repository.NewUserRepository(&testutil.MockRedisClient{})
	transactionRepo := repository.NewTransactionRepository()

	admin := testutil.SampleAdmin(ctx, "pw", nil)
	adminCtx := xcontext.WithRequestUserID(ctx, admin.ID)

	user := testutil.SampleUser(ctx, &entity.User{Balance: decimal.NewFromInt(1000)})

	deposit := &entity.Transaction{
		Base:   entity.Base{ID: uuid.NewString()},
		UserID: user.ID,
		Type:   entity.TransactionDeposit,
		Status: entity.TransactionPending,
		Amount: decimal.NewFromInt(500),
		Method: "bank_transfer",
	}
	require.NoError(t, transactionRepo.Create(ctx, deposit))

	_, err := d.ReviewDeposit(adminCtx, &model.AdminReviewDepositRequest{
		ID:     deposit.ID,
		Status: "completed",
	})
	require.NoError(t, err)

	after, err := userRepo.GetByID(adminCtx, user.ID)
	require.NoError(t, err)
	require.True(t, after.Balance.Equal(decimal.NewFromInt(1500)))

	// A second decision must fail and the balance stays applied exactly once.
	_, err = d.ReviewDeposit(adminCtx, &model.AdminReviewDepositRequest{
		ID:     deposit.ID,
		Status: "rejected",
	})
	require.Error(t, err)
	require.Equal(t, "This deposit has already been processed", err.Error())

	after, err = userRepo.GetByID(adminCtx, user.ID)
	require.NoError(t, err)
	require.True(t, after.Balance.Equal(decimal.NewFromInt(1500)))
}

func Test_adminDomain_ReviewDeposit_Reject(t *testing.T) {
	ctx := testutil.MockContext()
	d := newAdminDomainForTest()
	userRepo := repository.NewUserRepository(&testutil.MockRedisClient{})
	transactionRepo := repository.NewTransactionRepository()

	admin := testutil.SampleAdmin(ctx, "pw", nil)
	adminCtx := xcontext.WithRequestUserID(ctx, admin.ID)

	user := testutil.SampleUser(ctx, nil)

	deposit := &entity.Transaction{
		Base:   entity.Base{ID: uuid.NewString()},
		UserID: user.ID,
		Type:   entity.TransactionDeposit,
		Status: entity.TransactionPending,
		Amount: decimal.NewFromInt(700),
	}
	require.NoError(t, transactionRepo.Create(ctx, deposit))

	_, err := d.ReviewDeposit(adminCtx, &model.AdminReviewDepositRequest{
		ID:     deposit.ID,
		Status: "rejected",
		Reason: "no matching payment",
	})
	require.NoError(t, err)

	after, err := userRepo.GetByID(adminCtx, user.ID)
	require.NoError(t, err)
	require.True(t, after.Balance.IsZero())

	decided, err := transactionRepo.GetByID(adminCtx, deposit.ID)
	require.NoError(t, err)
	require.Equal(t, entity.TransactionRejected, decided.Status)
	require.Equal(t, "no matching payment", decided.Reason)
}

func Test_adminDomain_ResolveReport(t *testing.T) {
	ctx := testutil.MockContext()
	d := newAdminDomainForTest()
	reportRepo := repository.NewReportRepository()

	admin := testutil.SampleAdmin(ctx, "pw", nil)
	adminCtx := xcontext.WithRequestUserID(ctx, admin.ID)

	reporter := testutil.SampleUser(ctx, nil)
	accused := testutil.SampleUser(ctx, nil)

	report := &entity.Report{
		Base:            entity.Base{ID: uuid.NewString()},
		ReporterID:      reporter.ID,
		AccusedUsername: accused.Username,
		TaskLink:        "https://example.com/post/1",
		Status:          entity.ReportPending,
	}
	require.NoError(t, reportRepo.Create(ctx, report))

	// The listing shows the accused user's current record.
	list, err := d.GetReports(adminCtx, &model.AdminGetReportsRequest{})
	require.NoError(t, err)
	require.Len(t, list.Reports, 1)
	require.NotNil(t, list.Reports[0].AccusedUser)
	require.Equal(t, accused.ID, list.Reports[0].AccusedUser.ID)

	_, err = d.ResolveReport(adminCtx, &model.AdminResolveReportRequest{
		ID:     report.ID,
		Status: "resolved",
		Reason: "confirmed",
	})
	require.NoError(t, err)

	_, err = d.ResolveReport(adminCtx, &model.AdminResolveReportRequest{
		ID:     report.ID,
		Status: "rejected",
	})
	require.Error(t, err)
	require.Equal(t, "This report has already been processed", err.Error())
}

func Test_adminDomain_BlockUser_WritesLog(t *testing.T) {
	ctx := testutil.MockContext()
	d := newAdminDomainForTest()
	adminLogRepo := repository.NewAdminLogRepository()

	admin := testutil.SampleAdmin(ctx, "pw", nil)
	adminCtx := xcontext.WithRequestUserID(ctx, admin.ID)

	user := testutil.SampleUser(ctx, nil)

	_, err := d.BlockUser(adminCtx, &model.AdminBlockUserRequest{ID: user.ID, Blocked: true})
	require.NoError(t, err)

	users, err := d.GetUsers(adminCtx, &model.AdminGetUsersRequest{IsBlocked: "true"})
	require.NoError(t, err)
	require.Len(t, users.Users, 1)
	require.Equal(t, user.ID, users.Users[0].ID)

	logs, err := adminLogRepo.GetList(adminCtx, 0, 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.Equal(t, "block_user", logs[0].Action)
	require.Equal(t, user.ID, logs[0].Target)
}

func Test_adminDomain_UpdateSettings(t *testing.T) {
	ctx := testutil.MockContext()
	d := newAdminDomainForTest()
	settingRepo := repository.NewSettingRepository(&testutil.MockRedisClient{})

	admin := testutil.SampleAdmin(ctx, "pw", nil)
	adminCtx := xcontext.WithRequestUserID(ctx, admin.ID)

	maintenance := true
	bonus := decimal.NewFromInt(750)
	resp, err := d.UpdateSettings(adminCtx, &model.AdminUpdateSettingsRequest{
		Maintenance:     &maintenance,
		OnboardingBonus: &bonus,
	})
	require.NoError(t, err)
	require.True(t, resp.Maintenance)
	require.True(t, resp.OnboardingBonus.Equal(decimal.NewFromInt(750)))

	setting, err := settingRepo.Get(adminCtx)
	require.NoError(t, err)
	require.True(t, setting.MaintenanceMode)
	require.True(t, setting.OnboardingBonus.Equal(decimal.NewFromInt(750)))
}
