package repository

import (
	"context"
	"testing"
	"time"

	"casino/domain/entities"
	"casino/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGuildID = 555

func TestAccountRepository_GetOrCreate(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	uow := CreateTestUnitOfWork(testDB.DB, testGuildID)
	require.NoError(t, uow.Begin(ctx))
	defer uow.Rollback()

	repo := uow.AccountRepository()

	t.Run("missing account returns nil", func(t *testing.T) {
		account, err := repo.GetByUser(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, account)
	})

	t.Run("creates with starting balances", func(t *testing.T) {
		account, err := repo.GetOrCreate(ctx, 100)
		require.NoError(t, err)
		require.NotNil(t, account)

		assert.Equal(t, int64(100), account.UserID)
		assert.Equal(t, int64(testGuildID), account.GuildID)
		assert.Equal(t, int64(1000), account.CashBalance)
		assert.Equal(t, int64(0), account.PremiumBalance)
		assert.Equal(t, 1, account.Level)
		assert.False(t, account.CreatedAt.IsZero())
	})

	t.Run("second call returns the same account", func(t *testing.T) {
		first, err := repo.GetOrCreate(ctx, 101)
		require.NoError(t, err)

		_, err = repo.AdjustBalance(ctx, 101, entities.CurrencyCash, 500)
		require.NoError(t, err)

		second, err := repo.GetOrCreate(ctx, 101)
		require.NoError(t, err)
		assert.Equal(t, first.UserID, second.UserID)
		assert.Equal(t, int64(1500), second.CashBalance)
	})
}

func TestAccountRepository_AdjustBalance(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	uow := CreateTestUnitOfWork(testDB.DB, testGuildID)
	require.NoError(t, uow.Begin(ctx))
	defer uow.Rollback()

	repo := uow.AccountRepository()
	_, err := repo.GetOrCreate(ctx, 200)
	require.NoError(t, err)

	t.Run("credit and debit", func(t *testing.T) {
		newBalance, err := repo.AdjustBalance(ctx, 200, entities.CurrencyCash, 250)
		require.NoError(t, err)
		assert.Equal(t, int64(1250), newBalance)

		newBalance, err = repo.AdjustBalance(ctx, 200, entities.CurrencyCash, -1250)
		require.NoError(t, err)
		assert.Equal(t, int64(0), newBalance)
	})

	t.Run("overdraft rejected", func(t *testing.T) {
		_, err := repo.AdjustBalance(ctx, 200, entities.CurrencyCash, -1)
		require.Error(t, err)

		var fundsErr *entities.InsufficientFundsError
		require.ErrorAs(t, err, &fundsErr)
		assert.Equal(t, int64(0), fundsErr.Have)
		assert.Equal(t, int64(1), fundsErr.Need)

		// Balance is untouched after the rejected debit
		account, err := repo.GetByUser(ctx, 200)
		require.NoError(t, err)
		assert.Equal(t, int64(0), account.CashBalance)
	})

	t.Run("missing account", func(t *testing.T) {
		_, err := repo.AdjustBalance(ctx, 999999, entities.CurrencyCash, 100)
		require.ErrorIs(t, err, entities.ErrNotFound)
	})

	t.Run("premium currency tracked separately", func(t *testing.T) {
		newBalance, err := repo.AdjustBalance(ctx, 200, entities.CurrencyPremium, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(10), newBalance)

		account, err := repo.GetByUser(ctx, 200)
		require.NoError(t, err)
		assert.Equal(t, int64(0), account.CashBalance)
		assert.Equal(t, int64(10), account.PremiumBalance)
	})
}

func TestAccountRepository_GuildIsolation(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	uowA := CreateTestUnitOfWork(testDB.DB, 1)
	require.NoError(t, uowA.Begin(ctx))
	_, err := uowA.AccountRepository().GetOrCreate(ctx, 300)
	require.NoError(t, err)
	_, err = uowA.AccountRepository().AdjustBalance(ctx, 300, entities.CurrencyCash, 9000)
	require.NoError(t, err)
	require.NoError(t, uowA.Commit())

	uowB := CreateTestUnitOfWork(testDB.DB, 2)
	require.NoError(t, uowB.Begin(ctx))
	defer uowB.Rollback()

	// Same user in another guild starts fresh
	account, err := uowB.AccountRepository().GetOrCreate(ctx, 300)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), account.CashBalance)
}

func TestAccountRepository_Leaderboard(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	uow := CreateTestUnitOfWork(testDB.DB, testGuildID)
	require.NoError(t, uow.Begin(ctx))
	defer uow.Rollback()

	repo := uow.AccountRepository()
	for _, userID := range []int64{1, 2, 3} {
		_, err := repo.GetOrCreate(ctx, userID)
		require.NoError(t, err)
	}
	_, err := repo.AdjustBalance(ctx, 2, entities.CurrencyCash, 5000)
	require.NoError(t, err)
	_, err = repo.AdjustBalance(ctx, 3, entities.CurrencyCash, 2000)
	require.NoError(t, err)

	t.Run("orders by balance with ranks", func(t *testing.T) {
		entries, err := repo.Leaderboard(ctx, entities.MetricCash, 10)
		require.NoError(t, err)
		require.Len(t, entries, 3)

		assert.Equal(t, 1, entries[0].Rank)
		assert.Equal(t, int64(2), entries[0].UserID)
		assert.Equal(t, int64(6000), entries[0].Value)
		assert.Equal(t, 2, entries[1].Rank)
		assert.Equal(t, int64(3), entries[1].UserID)
		assert.Equal(t, 3, entries[2].Rank)
	})

	t.Run("ties break deterministically", func(t *testing.T) {
		// users 4 and 5 share a balance; lower user ID ranks first among
		// accounts created in the same instant
		for _, userID := range []int64{4, 5} {
			_, err := repo.GetOrCreate(ctx, userID)
			require.NoError(t, err)
		}
		entries, err := repo.Leaderboard(ctx, entities.MetricCash, 10)
		require.NoError(t, err)
		require.Len(t, entries, 5)

		first, err := repo.Leaderboard(ctx, entities.MetricCash, 10)
		require.NoError(t, err)
		assert.Equal(t, entries, first)
	})

	t.Run("limit respected", func(t *testing.T) {
		entries, err := repo.Leaderboard(ctx, entities.MetricCash, 2)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})
}

func TestAccountRepository_Reset(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	uow := CreateTestUnitOfWork(testDB.DB, testGuildID)
	require.NoError(t, uow.Begin(ctx))
	defer uow.Rollback()

	repo := uow.AccountRepository()
	_, err := repo.GetOrCreate(ctx, 400)
	require.NoError(t, err)
	_, err = repo.AdjustBalance(ctx, 400, entities.CurrencyCash, 5000)
	require.NoError(t, err)
	require.NoError(t, repo.UpdateProgress(ctx, 400, 2500, 6))
	require.NoError(t, repo.SetLastClaim(ctx, 400, entities.RewardDaily, time.Now(), 3))

	require.NoError(t, repo.Reset(ctx, 400))

	account, err := repo.GetByUser(ctx, 400)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), account.CashBalance)
	assert.Equal(t, int64(0), account.Experience)
	assert.Equal(t, 1, account.Level)
	assert.Equal(t, 0, account.DailyStreak)
	assert.Nil(t, account.LastDaily)
}

func TestAccountRepository_ApplyWagerTotals(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	uow := CreateTestUnitOfWork(testDB.DB, testGuildID)
	require.NoError(t, uow.Begin(ctx))
	defer uow.Rollback()

	repo := uow.AccountRepository()
	_, err := repo.GetOrCreate(ctx, 500)
	require.NoError(t, err)

	// win: winnings grow by the full payout
	require.NoError(t, repo.ApplyWagerTotals(ctx, 500, true, false, 100, 200))
	// loss: losses grow by the stake
	require.NoError(t, repo.ApplyWagerTotals(ctx, 500, false, false, 50, 0))
	// push: neither side moves
	require.NoError(t, repo.ApplyWagerTotals(ctx, 500, false, true, 75, 75))

	account, err := repo.GetByUser(ctx, 500)
	require.NoError(t, err)
	assert.Equal(t, int64(200), account.TotalWinnings)
	assert.Equal(t, int64(50), account.TotalLosses)
	assert.Equal(t, int64(3), account.GamesPlayed)
}

func TestAccountRepository_ApplyWagerTotals_WinBelowStake(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	uow := CreateTestUnitOfWork(testDB.DB, testGuildID)
	require.NoError(t, uow.Begin(ctx))
	defer uow.Rollback()

	repo := uow.AccountRepository()
	_, err := repo.GetOrCreate(ctx, 501)
	require.NoError(t, err)

	// A weak slots pair pays less than the stake but still counts as a
	// win; winnings must grow by the payout and never go backwards.
	require.NoError(t, repo.ApplyWagerTotals(ctx, 501, true, false, 100, 60))

	account, err := repo.GetByUser(ctx, 501)
	require.NoError(t, err)
	assert.Equal(t, int64(60), account.TotalWinnings)
	assert.Equal(t, int64(0), account.TotalLosses)

	require.NoError(t, repo.ApplyWagerTotals(ctx, 501, true, false, 100, 90))

	account, err = repo.GetByUser(ctx, 501)
	require.NoError(t, err)
	assert.Equal(t, int64(150), account.TotalWinnings)
}
