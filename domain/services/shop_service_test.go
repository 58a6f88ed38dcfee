package services

import (
	"context"
	"testing"

	"casino/domain/entities"
	"casino/domain/interfaces"
	"casino/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type shopFixture struct {
	accountRepo   *testhelpers.MockAccountRepository
	txRepo        *testhelpers.MockTransactionRepository
	inventoryRepo *testhelpers.MockInventoryRepository
	settingsRepo  *testhelpers.MockGuildSettingsRepository
}

func newShopFixture() (*shopFixture, interfaces.ShopService) {
	f := &shopFixture{
		accountRepo:   &testhelpers.MockAccountRepository{},
		txRepo:        &testhelpers.MockTransactionRepository{},
		inventoryRepo: &testhelpers.MockInventoryRepository{},
		settingsRepo:  &testhelpers.MockGuildSettingsRepository{},
	}
	return f, NewShopService(f.accountRepo, f.txRepo, f.inventoryRepo, f.settingsRepo)
}

func TestPurchase_UnknownItem(t *testing.T) {
	f, svc := newShopFixture()
	f.settingsRepo.On("GetOrCreate", mock.Anything).Return(entities.DefaultGuildSettings(1), nil)

	_, err := svc.Purchase(context.Background(), 1, "magic_wand", 1)
	require.ErrorIs(t, err, entities.ErrNotFound)
}

func TestPurchase_ShopDisabled(t *testing.T) {
	f, svc := newShopFixture()
	settings := entities.DefaultGuildSettings(1)
	settings.ShopEnabled = false
	f.settingsRepo.On("GetOrCreate", mock.Anything).Return(settings, nil)

	_, err := svc.Purchase(context.Background(), 1, "luck_boost", 1)
	require.Error(t, err)
	assert.True(t, entities.IsValidation(err))
}

func TestPurchase_NonPositiveQuantity(t *testing.T) {
	f, svc := newShopFixture()

	_, err := svc.Purchase(context.Background(), 1, "luck_boost", 0)
	require.Error(t, err)
	assert.True(t, entities.IsValidation(err))
	f.settingsRepo.AssertNotCalled(t, "GetOrCreate")
}

func TestPurchase_ExceedsOwnershipCap(t *testing.T) {
	f, svc := newShopFixture()
	account := &entities.Account{UserID: 1, CashBalance: 100_000}
	f.settingsRepo.On("GetOrCreate", mock.Anything).Return(entities.DefaultGuildSettings(1), nil)
	f.accountRepo.On("GetOrCreate", mock.Anything, int64(1)).Return(account, nil)
	f.accountRepo.On("GetByUserForUpdate", mock.Anything, int64(1)).Return(account, nil)
	// luck_boost caps at 5; owning 4 and buying 2 goes over.
	f.inventoryRepo.On("Get", mock.Anything, int64(1), "luck_boost").Return(int64(4), nil)

	_, err := svc.Purchase(context.Background(), 1, "luck_boost", 2)
	require.Error(t, err)
	assert.True(t, entities.IsLimitExceeded(err))
	f.accountRepo.AssertNotCalled(t, "AdjustBalance")
	// The cap check only counts under the account row lock.
	f.accountRepo.AssertCalled(t, "GetByUserForUpdate", mock.Anything, int64(1))
}

func TestPurchase_Success(t *testing.T) {
	f, svc := newShopFixture()
	account := &entities.Account{UserID: 1, CashBalance: 5000}
	f.settingsRepo.On("GetOrCreate", mock.Anything).Return(entities.DefaultGuildSettings(1), nil)
	f.accountRepo.On("GetOrCreate", mock.Anything, int64(1)).Return(account, nil)
	f.accountRepo.On("GetByUserForUpdate", mock.Anything, int64(1)).Return(account, nil)
	f.inventoryRepo.On("Get", mock.Anything, int64(1), "lotto_ticket").Return(int64(0), nil)
	f.accountRepo.On("AdjustBalance", mock.Anything, int64(1), entities.CurrencyCash, int64(-300)).Return(int64(4700), nil)
	f.txRepo.On("Record", mock.Anything, mock.MatchedBy(func(tx *entities.Transaction) bool {
		return tx.Type == entities.TransactionTypeDebit && tx.Amount == 300
	})).Return(nil)
	f.inventoryRepo.On("AdjustQuantity", mock.Anything, int64(1), "lotto_ticket", int64(3)).Return(int64(3), nil)

	receipt, err := svc.Purchase(context.Background(), 1, "lotto_ticket", 3)
	require.NoError(t, err)

	assert.Equal(t, "lotto_ticket", receipt.Item.ItemID)
	assert.Equal(t, int64(3), receipt.Quantity)
	assert.Equal(t, int64(300), receipt.Total)
	assert.Equal(t, int64(4700), receipt.NewBalance)
	assert.Equal(t, int64(3), receipt.Owned)
	f.inventoryRepo.AssertExpectations(t)
}

func TestPurchase_InsufficientFunds(t *testing.T) {
	f, svc := newShopFixture()
	account := &entities.Account{UserID: 1, CashBalance: 100}
	f.settingsRepo.On("GetOrCreate", mock.Anything).Return(entities.DefaultGuildSettings(1), nil)
	f.accountRepo.On("GetOrCreate", mock.Anything, int64(1)).Return(account, nil)
	f.accountRepo.On("GetByUserForUpdate", mock.Anything, int64(1)).Return(account, nil)
	f.inventoryRepo.On("Get", mock.Anything, int64(1), "luck_boost").Return(int64(0), nil)
	f.accountRepo.On("AdjustBalance", mock.Anything, int64(1), entities.CurrencyCash, int64(-500)).
		Return(int64(0), &entities.InsufficientFundsError{Currency: entities.CurrencyCash, Have: 100, Need: 500})

	_, err := svc.Purchase(context.Background(), 1, "luck_boost", 1)
	require.Error(t, err)
	assert.True(t, entities.IsInsufficientFunds(err))
	f.inventoryRepo.AssertNotCalled(t, "AdjustQuantity")
}

func TestSell_HalfPriceRefund(t *testing.T) {
	f, svc := newShopFixture()
	f.inventoryRepo.On("Get", mock.Anything, int64(1), "double_xp").Return(int64(2), nil)
	f.inventoryRepo.On("AdjustQuantity", mock.Anything, int64(1), "double_xp", int64(-1)).Return(int64(1), nil)
	// double_xp costs 1000, sells back at 500
	f.accountRepo.On("AdjustBalance", mock.Anything, int64(1), entities.CurrencyCash, int64(500)).Return(int64(1500), nil)
	f.txRepo.On("Record", mock.Anything, mock.MatchedBy(func(tx *entities.Transaction) bool {
		return tx.Type == entities.TransactionTypeCredit && tx.Amount == 500
	})).Return(nil)

	receipt, err := svc.Sell(context.Background(), 1, "double_xp", 1)
	require.NoError(t, err)

	assert.Equal(t, int64(500), receipt.Total)
	assert.Equal(t, int64(1500), receipt.NewBalance)
	assert.Equal(t, int64(1), receipt.Owned)
}

func TestSell_MoreThanOwned(t *testing.T) {
	f, svc := newShopFixture()
	f.inventoryRepo.On("Get", mock.Anything, int64(1), "lotto_ticket").Return(int64(2), nil)

	_, err := svc.Sell(context.Background(), 1, "lotto_ticket", 3)
	require.Error(t, err)
	assert.True(t, entities.IsValidation(err))
	f.inventoryRepo.AssertNotCalled(t, "AdjustQuantity")
}

func TestSell_UnknownItem(t *testing.T) {
	_, svc := newShopFixture()

	_, err := svc.Sell(context.Background(), 1, "magic_wand", 1)
	require.ErrorIs(t, err, entities.ErrNotFound)
}
