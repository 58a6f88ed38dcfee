package services

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"casino/domain/entities"
	"casino/domain/games"
	"casino/domain/interfaces"
	"casino/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type wagerFixture struct {
	accountRepo  *testhelpers.MockAccountRepository
	txRepo       *testhelpers.MockTransactionRepository
	gameStatRepo *testhelpers.MockGameStatRepository
	settingsRepo *testhelpers.MockGuildSettingsRepository
	cooldownGate *testhelpers.MockCooldownGate
}

func newWagerFixture() *wagerFixture {
	return &wagerFixture{
		accountRepo:  &testhelpers.MockAccountRepository{},
		txRepo:       &testhelpers.MockTransactionRepository{},
		gameStatRepo: &testhelpers.MockGameStatRepository{},
		settingsRepo: &testhelpers.MockGuildSettingsRepository{},
		cooldownGate: &testhelpers.MockCooldownGate{},
	}
}

func (f *wagerFixture) service(seed int64) interfaces.WagerService {
	return NewWagerService(f.accountRepo, f.txRepo, f.gameStatRepo, f.settingsRepo, f.cooldownGate, rand.New(rand.NewSource(seed)))
}

func (f *wagerFixture) expectAccount(account *entities.Account) {
	f.settingsRepo.On("GetOrCreate", mock.Anything).Return(entities.DefaultGuildSettings(account.GuildID), nil)
	f.accountRepo.On("GetOrCreate", mock.Anything, account.UserID).Return(account, nil)
	f.accountRepo.On("GetByUserForUpdate", mock.Anything, account.UserID).Return(account, nil)
}

func TestPlaceWager_CoinflipWin(t *testing.T) {
	// Derive the winning side from an identically seeded rng so the
	// prediction always matches the service's draw.
	const seed = 3
	winningSide := "tails"
	if rand.New(rand.NewSource(seed)).Intn(2) == 0 {
		winningSide = "heads"
	}

	f := newWagerFixture()
	account := &entities.Account{UserID: 42, GuildID: 1, CashBalance: 1000, Level: 1}
	f.expectAccount(account)

	// bet "half" of 1000 = 500; win pays 1000 back
	f.accountRepo.On("AdjustBalance", mock.Anything, int64(42), entities.CurrencyCash, int64(-500)).Return(int64(500), nil)
	f.accountRepo.On("AdjustBalance", mock.Anything, int64(42), entities.CurrencyCash, int64(1000)).Return(int64(1500), nil)
	f.txRepo.On("Record", mock.Anything, mock.MatchedBy(func(tx *entities.Transaction) bool {
		return tx.Type == entities.TransactionTypeDebit && tx.Amount == 500
	})).Return(nil).Once()
	f.txRepo.On("Record", mock.Anything, mock.MatchedBy(func(tx *entities.Transaction) bool {
		return tx.Type == entities.TransactionTypeCredit && tx.Amount == 1000
	})).Return(nil).Once()
	f.gameStatRepo.On("Get", mock.Anything, int64(42), "coinflip").Return(&entities.GameStat{UserID: 42, Game: "coinflip"}, nil)
	f.gameStatRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(s *entities.GameStat) bool {
		return s.PlayedCount == 1 && s.WonCount == 1 && s.CurrentStreak == 1
	})).Return(nil)
	f.accountRepo.On("ApplyWagerTotals", mock.Anything, int64(42), true, false, int64(500), int64(1000)).Return(nil)
	f.accountRepo.On("UpdateProgress", mock.Anything, int64(42), int64(20), 1).Return(nil)
	f.cooldownGate.On("CheckAvailable", mock.Anything, int64(42), entities.ActionCoinflip).Return(nil)
	f.cooldownGate.On("Arm", mock.Anything, int64(42), entities.ActionCoinflip).Return(nil)

	result, err := f.service(seed).PlaceWager(context.Background(), 42, games.KindCoinflip, "half", games.Params{Prediction: winningSide})
	require.NoError(t, err)

	assert.True(t, result.Won)
	assert.False(t, result.Push)
	assert.Equal(t, int64(500), result.BetAmount)
	assert.Equal(t, int64(1000), result.Payout)
	assert.Equal(t, int64(1500), result.NewBalance)
	assert.Equal(t, int64(500), result.Net())
	// xp = (5 + 500/100) * 2 on a win
	assert.Equal(t, int64(20), result.ExperienceGained)

	f.accountRepo.AssertExpectations(t)
	f.txRepo.AssertExpectations(t)
	f.gameStatRepo.AssertExpectations(t)
	f.cooldownGate.AssertExpectations(t)
}

func TestPlaceWager_UnknownGame(t *testing.T) {
	f := newWagerFixture()

	_, err := f.service(1).PlaceWager(context.Background(), 42, games.Kind("roulette"), "100", games.Params{})
	require.Error(t, err)
	assert.True(t, entities.IsValidation(err))
	f.accountRepo.AssertNotCalled(t, "AdjustBalance")
}

func TestPlaceWager_GamblingDisabled(t *testing.T) {
	f := newWagerFixture()
	settings := entities.DefaultGuildSettings(1)
	settings.GamblingEnabled = false
	f.settingsRepo.On("GetOrCreate", mock.Anything).Return(settings, nil)

	_, err := f.service(1).PlaceWager(context.Background(), 42, games.KindCoinflip, "100", games.Params{Prediction: "heads"})
	require.Error(t, err)
	assert.True(t, entities.IsValidation(err))
	f.accountRepo.AssertNotCalled(t, "AdjustBalance")
}

func TestPlaceWager_BelowMinimumBet(t *testing.T) {
	f := newWagerFixture()
	f.expectAccount(&entities.Account{UserID: 42, GuildID: 1, CashBalance: 1000, Level: 1})

	_, err := f.service(1).PlaceWager(context.Background(), 42, games.KindBlackjack, "5", games.Params{})
	require.Error(t, err)
	assert.True(t, entities.IsValidation(err))
	f.accountRepo.AssertNotCalled(t, "AdjustBalance")
}

func TestPlaceWager_InsufficientFunds(t *testing.T) {
	f := newWagerFixture()
	f.expectAccount(&entities.Account{UserID: 42, GuildID: 1, CashBalance: 50, Level: 1})

	_, err := f.service(1).PlaceWager(context.Background(), 42, games.KindCoinflip, "100", games.Params{Prediction: "heads"})
	require.Error(t, err)

	var fundsErr *entities.InsufficientFundsError
	require.ErrorAs(t, err, &fundsErr)
	assert.Equal(t, int64(50), fundsErr.Have)
	assert.Equal(t, int64(100), fundsErr.Need)
	f.accountRepo.AssertNotCalled(t, "AdjustBalance")
}

func TestPlaceWager_OnCooldown(t *testing.T) {
	f := newWagerFixture()
	f.expectAccount(&entities.Account{UserID: 42, GuildID: 1, CashBalance: 1000, Level: 1})
	f.cooldownGate.On("CheckAvailable", mock.Anything, int64(42), entities.ActionCoinflip).
		Return(&entities.OnCooldownError{Action: entities.ActionCoinflip, Remaining: 10 * time.Second})

	_, err := f.service(1).PlaceWager(context.Background(), 42, games.KindCoinflip, "100", games.Params{Prediction: "heads"})
	require.Error(t, err)
	assert.True(t, entities.IsOnCooldown(err))
	f.accountRepo.AssertNotCalled(t, "AdjustBalance")
}

func TestPlaceWager_CoinflipLoss(t *testing.T) {
	// Predict the opposite of the seeded draw to force a loss.
	const seed = 1
	losingSide := "heads"
	if rand.New(rand.NewSource(seed)).Intn(2) == 0 {
		losingSide = "tails"
	}

	f := newWagerFixture()
	account := &entities.Account{UserID: 42, GuildID: 1, CashBalance: 1000, Level: 1}
	f.expectAccount(account)

	f.accountRepo.On("AdjustBalance", mock.Anything, int64(42), entities.CurrencyCash, int64(-100)).Return(int64(900), nil)
	f.txRepo.On("Record", mock.Anything, mock.MatchedBy(func(tx *entities.Transaction) bool {
		return tx.Type == entities.TransactionTypeDebit
	})).Return(nil).Once()
	f.gameStatRepo.On("Get", mock.Anything, int64(42), "coinflip").Return(&entities.GameStat{UserID: 42, Game: "coinflip"}, nil)
	f.gameStatRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(s *entities.GameStat) bool {
		return s.PlayedCount == 1 && s.WonCount == 0 && s.CurrentStreak == 0
	})).Return(nil)
	f.accountRepo.On("ApplyWagerTotals", mock.Anything, int64(42), false, false, int64(100), int64(0)).Return(nil)
	f.accountRepo.On("UpdateProgress", mock.Anything, int64(42), int64(6), 1).Return(nil)
	f.cooldownGate.On("CheckAvailable", mock.Anything, int64(42), entities.ActionCoinflip).Return(nil)
	f.cooldownGate.On("Arm", mock.Anything, int64(42), entities.ActionCoinflip).Return(nil)

	result, err := f.service(seed).PlaceWager(context.Background(), 42, games.KindCoinflip, "100", games.Params{Prediction: losingSide})
	require.NoError(t, err)

	assert.False(t, result.Won)
	assert.Zero(t, result.Payout)
	assert.Equal(t, int64(900), result.NewBalance)
	assert.Equal(t, int64(-100), result.Net())
	assert.Equal(t, int64(6), result.ExperienceGained)

	// No payout credit on a loss, only the wager debit.
	f.txRepo.AssertNumberOfCalls(t, "Record", 1)
}
