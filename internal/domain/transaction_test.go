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

func Test_transactionDomain_Deposit(t *testing.T) {
	ctx := testutil.MockContext()
	transactionRepo := repository.NewTransactionRepository()
	userRepo := repository.NewUserRepository(&testutil.MockRedisClient{})
	d := NewTransactionDomain(transactionRepo)

	user := testutil.SampleUser(ctx, nil)
	userCtx := xcontext.WithRequestUserID(ctx, user.ID)

	resp, err := d.Deposit(userCtx, &model.DepositRequest{
		Amount:      decimal.NewFromInt(1000),
		Method:      "bank_transfer",
		ReferenceID: "TX-1",
	})
	require.NoError(t, err)

	// A deposit claim is pending and must not touch the balance.
	transaction, err := transactionRepo.GetByID(userCtx, resp.ID)
	require.NoError(t, err)
	require.Equal(t, entity.TransactionDeposit, transaction.Type)
	require.Equal(t, entity.TransactionPending, transaction.Status)

	after, err := userRepo.GetByID(userCtx, user.ID)
	require.NoError(t, err)
	require.True(t, after.Balance.IsZero())
}

func Test_transactionDomain_Deposit_InvalidAmount(t *testing.T) {
	ctx := testutil.MockContext()
	d := NewTransactionDomain(repository.NewTransactionRepository())

	user := testutil.SampleUser(ctx, nil)
	userCtx := xcontext.WithRequestUserID(ctx, user.ID)

	_, err := d.Deposit(userCtx, &model.DepositRequest{
		Amount: decimal.NewFromInt(-5),
		Method: "bank_transfer",
	})
	require.Error(t, err)
	require.Equal(t, "Amount must be positive", err.Error())
}

func Test_reportDomain_Create(t *testing.T) {
	ctx := testutil.MockContext()
	reportRepo := repository.NewReportRepository()
	d := NewReportDomain(reportRepo)

	reporter := testutil.SampleUser(ctx, nil)
	reporterCtx := xcontext.WithRequestUserID(ctx, reporter.ID)

	resp, err := d.Create(reporterCtx, &model.CreateReportRequest{
		AccusedUsername: "@cheater",
		TaskLink:        "https://example.com/post/1",
	})
	require.NoError(t, err)

	report, err := reportRepo.GetByID(reporterCtx, resp.ID)
	require.NoError(t, err)
	require.Equal(t, "cheater", report.AccusedUsername)
	require.Equal(t, entity.ReportPending, report.Status)

	// A report needs some evidence.
	_, err = d.Create(reporterCtx, &model.CreateReportRequest{AccusedUsername: "cheater"})
	require.Error(t, err)
	require.Equal(t, "Require a task link or a profile link as evidence", err.Error())
}
