package services

import (
	"context"
	"testing"

	"casino/config"
	"casino/domain/entities"
	"casino/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransfer_RejectsSelfAndNonPositive(t *testing.T) {
	accountRepo := &testhelpers.MockAccountRepository{}
	txRepo := &testhelpers.MockTransactionRepository{}
	svc := NewEconomyService(accountRepo, txRepo)

	err := svc.Transfer(context.Background(), 1, 1, 100)
	require.Error(t, err)
	assert.True(t, entities.IsValidation(err))

	err = svc.Transfer(context.Background(), 1, 2, 0)
	require.Error(t, err)
	assert.True(t, entities.IsValidation(err))

	err = svc.Transfer(context.Background(), 1, 2, -50)
	require.Error(t, err)
	assert.True(t, entities.IsValidation(err))

	accountRepo.AssertNotCalled(t, "AdjustBalance")
}

func TestTransfer_RejectsAboveCap(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.MaxTransferAmount = 500
	config.SetTestConfig(cfg)
	defer config.ResetConfig()

	svc := NewEconomyService(&testhelpers.MockAccountRepository{}, &testhelpers.MockTransactionRepository{})

	err := svc.Transfer(context.Background(), 1, 2, 501)
	require.Error(t, err)
	assert.True(t, entities.IsLimitExceeded(err))
}

func TestTransfer_DebitsCreditsAndRecordsBothLegs(t *testing.T) {
	accountRepo := &testhelpers.MockAccountRepository{}
	txRepo := &testhelpers.MockTransactionRepository{}
	svc := NewEconomyService(accountRepo, txRepo)

	accountRepo.On("GetOrCreate", mock.Anything, int64(1)).Return(&entities.Account{UserID: 1, CashBalance: 1000}, nil)
	accountRepo.On("GetOrCreate", mock.Anything, int64(2)).Return(&entities.Account{UserID: 2}, nil)
	accountRepo.On("AdjustBalance", mock.Anything, int64(1), entities.CurrencyCash, int64(-300)).Return(int64(700), nil)
	accountRepo.On("AdjustBalance", mock.Anything, int64(2), entities.CurrencyCash, int64(300)).Return(int64(300), nil)
	txRepo.On("Record", mock.Anything, mock.MatchedBy(func(tx *entities.Transaction) bool {
		return tx.UserID == 1 && tx.Type == entities.TransactionTypeTransferOut && tx.Amount == 300
	})).Return(nil).Once()
	txRepo.On("Record", mock.Anything, mock.MatchedBy(func(tx *entities.Transaction) bool {
		return tx.UserID == 2 && tx.Type == entities.TransactionTypeTransferIn && tx.Amount == 300
	})).Return(nil).Once()

	require.NoError(t, svc.Transfer(context.Background(), 1, 2, 300))
	accountRepo.AssertExpectations(t)
	txRepo.AssertExpectations(t)
}

func TestTransfer_InsufficientFundsStopsBeforeCredit(t *testing.T) {
	accountRepo := &testhelpers.MockAccountRepository{}
	txRepo := &testhelpers.MockTransactionRepository{}
	svc := NewEconomyService(accountRepo, txRepo)

	accountRepo.On("GetOrCreate", mock.Anything, int64(1)).Return(&entities.Account{UserID: 1, CashBalance: 100}, nil)
	accountRepo.On("GetOrCreate", mock.Anything, int64(2)).Return(&entities.Account{UserID: 2}, nil)
	accountRepo.On("AdjustBalance", mock.Anything, int64(1), entities.CurrencyCash, int64(-300)).
		Return(int64(0), &entities.InsufficientFundsError{Currency: entities.CurrencyCash, Have: 100, Need: 300})

	err := svc.Transfer(context.Background(), 1, 2, 300)
	require.Error(t, err)
	assert.True(t, entities.IsInsufficientFunds(err))

	accountRepo.AssertNotCalled(t, "AdjustBalance", mock.Anything, int64(2), entities.CurrencyCash, int64(300))
	txRepo.AssertNotCalled(t, "Record")
}

func TestAdminCredit(t *testing.T) {
	accountRepo := &testhelpers.MockAccountRepository{}
	txRepo := &testhelpers.MockTransactionRepository{}
	svc := NewEconomyService(accountRepo, txRepo)

	accountRepo.On("GetOrCreate", mock.Anything, int64(5)).Return(&entities.Account{UserID: 5}, nil)
	accountRepo.On("AdjustBalance", mock.Anything, int64(5), entities.CurrencyPremium, int64(50)).Return(int64(50), nil)
	txRepo.On("Record", mock.Anything, mock.MatchedBy(func(tx *entities.Transaction) bool {
		return tx.Type == entities.TransactionTypeAdminGift && tx.Currency == entities.CurrencyPremium
	})).Return(nil)

	newBalance, err := svc.AdminCredit(context.Background(), 5, entities.CurrencyPremium, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(50), newBalance)

	_, err = svc.AdminCredit(context.Background(), 5, entities.CurrencyPremium, 0)
	require.Error(t, err)
	assert.True(t, entities.IsValidation(err))
}

func TestResetAccount_UnknownUser(t *testing.T) {
	accountRepo := &testhelpers.MockAccountRepository{}
	svc := NewEconomyService(accountRepo, &testhelpers.MockTransactionRepository{})

	accountRepo.On("GetByUser", mock.Anything, int64(9)).Return(nil, nil)

	err := svc.ResetAccount(context.Background(), 9)
	require.ErrorIs(t, err, entities.ErrNotFound)
	accountRepo.AssertNotCalled(t, "Reset")
}
