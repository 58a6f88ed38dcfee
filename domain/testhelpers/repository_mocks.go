package testhelpers

import (
	"context"
	"time"

	"casino/domain/entities"

	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock implementation of AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) GetByUser(ctx context.Context, userID int64) (*entities.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByUserForUpdate(ctx context.Context, userID int64) (*entities.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockAccountRepository) GetOrCreate(ctx context.Context, userID int64) (*entities.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockAccountRepository) AdjustBalance(ctx context.Context, userID int64, currency entities.CurrencyKind, delta int64) (int64, error) {
	args := m.Called(ctx, userID, currency, delta)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) ApplyWagerTotals(ctx context.Context, userID int64, won, push bool, bet, payout int64) error {
	args := m.Called(ctx, userID, won, push, bet, payout)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateProgress(ctx context.Context, userID int64, experience int64, level int) error {
	args := m.Called(ctx, userID, experience, level)
	return args.Error(0)
}

func (m *MockAccountRepository) SetLastClaim(ctx context.Context, userID int64, kind entities.RewardKind, at time.Time, streak int) error {
	args := m.Called(ctx, userID, kind, at, streak)
	return args.Error(0)
}

func (m *MockAccountRepository) Reset(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockAccountRepository) Leaderboard(ctx context.Context, metric entities.LeaderboardMetric, limit int) ([]*entities.LeaderboardEntry, error) {
	args := m.Called(ctx, metric, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.LeaderboardEntry), args.Error(1)
}

func (m *MockAccountRepository) GuildTotals(ctx context.Context) (*entities.GuildTotals, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GuildTotals), args.Error(1)
}

// MockTransactionRepository is a mock implementation of TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Record(ctx context.Context, tx *entities.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) GetRecent(ctx context.Context, userID int64, limit int) ([]*entities.Transaction, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Transaction), args.Error(1)
}

// MockGameStatRepository is a mock implementation of GameStatRepository
type MockGameStatRepository struct {
	mock.Mock
}

func (m *MockGameStatRepository) Get(ctx context.Context, userID int64, game string) (*entities.GameStat, error) {
	args := m.Called(ctx, userID, game)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GameStat), args.Error(1)
}

func (m *MockGameStatRepository) Upsert(ctx context.Context, stat *entities.GameStat) error {
	args := m.Called(ctx, stat)
	return args.Error(0)
}

func (m *MockGameStatRepository) GetAllForUser(ctx context.Context, userID int64) ([]*entities.GameStat, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.GameStat), args.Error(1)
}

// MockCooldownRepository is a mock implementation of CooldownRepository
type MockCooldownRepository struct {
	mock.Mock
}

func (m *MockCooldownRepository) Get(ctx context.Context, userID int64, action entities.ActionKind) (*entities.Cooldown, error) {
	args := m.Called(ctx, userID, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Cooldown), args.Error(1)
}

func (m *MockCooldownRepository) Set(ctx context.Context, cooldown *entities.Cooldown) error {
	args := m.Called(ctx, cooldown)
	return args.Error(0)
}

func (m *MockCooldownRepository) Delete(ctx context.Context, userID int64, action entities.ActionKind) error {
	args := m.Called(ctx, userID, action)
	return args.Error(0)
}

func (m *MockCooldownRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockGuildSettingsRepository is a mock implementation of GuildSettingsRepository
type MockGuildSettingsRepository struct {
	mock.Mock
}

func (m *MockGuildSettingsRepository) GetOrCreate(ctx context.Context) (*entities.GuildSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GuildSettings), args.Error(1)
}

func (m *MockGuildSettingsRepository) Update(ctx context.Context, settings *entities.GuildSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// MockInventoryRepository is a mock implementation of InventoryRepository
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) Get(ctx context.Context, userID int64, itemID string) (int64, error) {
	args := m.Called(ctx, userID, itemID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInventoryRepository) ListForUser(ctx context.Context, userID int64) ([]*entities.InventoryEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.InventoryEntry), args.Error(1)
}

func (m *MockInventoryRepository) AdjustQuantity(ctx context.Context, userID int64, itemID string, delta int64) (int64, error) {
	args := m.Called(ctx, userID, itemID, delta)
	return args.Get(0).(int64), args.Error(1)
}

// MockCooldownGate is a mock implementation of CooldownGate
type MockCooldownGate struct {
	mock.Mock
}

func (m *MockCooldownGate) Remaining(ctx context.Context, userID int64, action entities.ActionKind) (time.Duration, error) {
	args := m.Called(ctx, userID, action)
	return args.Get(0).(time.Duration), args.Error(1)
}

func (m *MockCooldownGate) CheckAvailable(ctx context.Context, userID int64, action entities.ActionKind) error {
	args := m.Called(ctx, userID, action)
	return args.Error(0)
}

func (m *MockCooldownGate) Arm(ctx context.Context, userID int64, action entities.ActionKind) error {
	args := m.Called(ctx, userID, action)
	return args.Error(0)
}
