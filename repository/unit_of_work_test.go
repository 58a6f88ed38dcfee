package repository

import (
	"context"
	"testing"

	"casino/domain/entities"
	"casino/domain/services"
	"casino/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWork_PanicsBeforeBegin(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	uow := CreateTestUnitOfWork(testDB.DB, testGuildID)
	assert.Panics(t, func() { uow.AccountRepository() })
}

func TestUnitOfWork_CommitPersists(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	uow := CreateTestUnitOfWork(testDB.DB, testGuildID)
	require.NoError(t, uow.Begin(ctx))
	_, err := uow.AccountRepository().GetOrCreate(ctx, 10)
	require.NoError(t, err)
	require.NoError(t, uow.Commit())

	check := CreateTestUnitOfWork(testDB.DB, testGuildID)
	require.NoError(t, check.Begin(ctx))
	defer check.Rollback()

	account, err := check.AccountRepository().GetByUser(ctx, 10)
	require.NoError(t, err)
	assert.NotNil(t, account)
}

func TestUnitOfWork_RollbackDiscards(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	uow := CreateTestUnitOfWork(testDB.DB, testGuildID)
	require.NoError(t, uow.Begin(ctx))
	_, err := uow.AccountRepository().GetOrCreate(ctx, 11)
	require.NoError(t, err)
	require.NoError(t, uow.Rollback())

	check := CreateTestUnitOfWork(testDB.DB, testGuildID)
	require.NoError(t, check.Begin(ctx))
	defer check.Rollback()

	account, err := check.AccountRepository().GetByUser(ctx, 11)
	require.NoError(t, err)
	assert.Nil(t, account)
}

// A failed transfer must leave both accounts untouched even though the
// service issues its debit before the credit.
func TestTransfer_AtomicAcrossAccounts(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	setup := CreateTestUnitOfWork(testDB.DB, testGuildID)
	require.NoError(t, setup.Begin(ctx))
	_, err := setup.AccountRepository().GetOrCreate(ctx, 20)
	require.NoError(t, err)
	_, err = setup.AccountRepository().GetOrCreate(ctx, 21)
	require.NoError(t, err)
	require.NoError(t, setup.Commit())

	t.Run("successful transfer moves both sides", func(t *testing.T) {
		uow := CreateTestUnitOfWork(testDB.DB, testGuildID)
		require.NoError(t, uow.Begin(ctx))
		defer uow.Rollback()

		svc := services.NewEconomyService(uow.AccountRepository(), uow.TransactionRepository())
		require.NoError(t, svc.Transfer(ctx, 20, 21, 400))
		require.NoError(t, uow.Commit())

		check := CreateTestUnitOfWork(testDB.DB, testGuildID)
		require.NoError(t, check.Begin(ctx))
		defer check.Rollback()

		sender, err := check.AccountRepository().GetByUser(ctx, 20)
		require.NoError(t, err)
		recipient, err := check.AccountRepository().GetByUser(ctx, 21)
		require.NoError(t, err)
		assert.Equal(t, int64(600), sender.CashBalance)
		assert.Equal(t, int64(1400), recipient.CashBalance)

		history, err := check.TransactionRepository().GetRecent(ctx, 20, 10)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, entities.TransactionTypeTransferOut, history[0].Type)
	})

	t.Run("insufficient funds leaves balances unchanged", func(t *testing.T) {
		uow := CreateTestUnitOfWork(testDB.DB, testGuildID)
		require.NoError(t, uow.Begin(ctx))

		svc := services.NewEconomyService(uow.AccountRepository(), uow.TransactionRepository())
		err := svc.Transfer(ctx, 20, 21, 10_000)
		require.Error(t, err)
		assert.True(t, entities.IsInsufficientFunds(err))
		require.NoError(t, uow.Rollback())

		check := CreateTestUnitOfWork(testDB.DB, testGuildID)
		require.NoError(t, check.Begin(ctx))
		defer check.Rollback()

		sender, err := check.AccountRepository().GetByUser(ctx, 20)
		require.NoError(t, err)
		recipient, err := check.AccountRepository().GetByUser(ctx, 21)
		require.NoError(t, err)
		assert.Equal(t, int64(600), sender.CashBalance)
		assert.Equal(t, int64(1400), recipient.CashBalance)
	})
}
