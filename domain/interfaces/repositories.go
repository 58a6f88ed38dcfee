package interfaces

import (
	"context"
	"time"

	"casino/domain/entities"
)

// AccountRepository defines data access for per-guild user accounts
type AccountRepository interface {
	// GetByUser retrieves an account, returning nil if it does not exist
	GetByUser(ctx context.Context, userID int64) (*entities.Account, error)

	// GetByUserForUpdate retrieves and row-locks an account for the duration
	// of the surrounding transaction, returning nil if it does not exist
	GetByUserForUpdate(ctx context.Context, userID int64) (*entities.Account, error)

	// GetOrCreate retrieves an account, creating it with the configured
	// starting balances when absent
	GetOrCreate(ctx context.Context, userID int64) (*entities.Account, error)

	// AdjustBalance applies a signed delta to one currency balance and
	// returns the new balance. A delta that would take the balance negative
	// is rejected with InsufficientFundsError and leaves it unchanged.
	AdjustBalance(ctx context.Context, userID int64, currency entities.CurrencyKind, delta int64) (int64, error)

	// ApplyWagerTotals folds a settled wager into the account's lifetime
	// counters: games played, winnings on a win, losses on a loss
	ApplyWagerTotals(ctx context.Context, userID int64, won, push bool, bet, payout int64) error

	// UpdateProgress persists new experience and level values
	UpdateProgress(ctx context.Context, userID int64, experience int64, level int) error

	// SetLastClaim updates the last-claim timestamp for a reward kind; for
	// daily claims it also persists the updated streak
	SetLastClaim(ctx context.Context, userID int64, kind entities.RewardKind, at time.Time, streak int) error

	// Reset restores an account to the configured starting state
	Reset(ctx context.Context, userID int64) error

	// Leaderboard returns the top accounts by metric, descending, ties
	// broken deterministically by account creation order
	Leaderboard(ctx context.Context, metric entities.LeaderboardMetric, limit int) ([]*entities.LeaderboardEntry, error)

	// GuildTotals aggregates economy-wide statistics for the guild
	GuildTotals(ctx context.Context) (*entities.GuildTotals, error)
}

// TransactionRepository defines access to the append-only audit log
type TransactionRepository interface {
	// Record appends a transaction; records are never updated or deleted
	Record(ctx context.Context, tx *entities.Transaction) error

	// GetRecent returns the newest transactions for a user, most recent first
	GetRecent(ctx context.Context, userID int64, limit int) ([]*entities.Transaction, error)
}

// GameStatRepository defines access to per-game statistics
type GameStatRepository interface {
	// Get retrieves stats for one game, returning a zeroed record if absent
	Get(ctx context.Context, userID int64, game string) (*entities.GameStat, error)

	// Upsert writes the full stat record
	Upsert(ctx context.Context, stat *entities.GameStat) error

	// GetAllForUser returns every game stat record for a user
	GetAllForUser(ctx context.Context, userID int64) ([]*entities.GameStat, error)
}

// CooldownRepository defines access to cooldown records
type CooldownRepository interface {
	// Get retrieves a cooldown, returning nil if absent
	Get(ctx context.Context, userID int64, action entities.ActionKind) (*entities.Cooldown, error)

	// Set creates or overwrites a cooldown
	Set(ctx context.Context, cooldown *entities.Cooldown) error

	// Delete removes a cooldown record
	Delete(ctx context.Context, userID int64, action entities.ActionKind) error

	// PurgeExpired deletes every cooldown whose expiry has passed and
	// returns the number of rows removed
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

// GuildSettingsRepository defines access to per-guild configuration
type GuildSettingsRepository interface {
	// GetOrCreate retrieves guild settings, creating defaults when absent
	GetOrCreate(ctx context.Context) (*entities.GuildSettings, error)

	// Update persists modified settings
	Update(ctx context.Context, settings *entities.GuildSettings) error
}

// InventoryRepository defines access to per-user item holdings
type InventoryRepository interface {
	// Get returns the quantity held of one item, zero if none
	Get(ctx context.Context, userID int64, itemID string) (int64, error)

	// ListForUser returns all inventory entries with positive quantity
	ListForUser(ctx context.Context, userID int64) ([]*entities.InventoryEntry, error)

	// AdjustQuantity applies a signed delta to an item holding and returns
	// the new quantity; rows hitting zero are deleted. A delta below zero
	// holdings is rejected with InsufficientFundsError semantics via error.
	AdjustQuantity(ctx context.Context, userID int64, itemID string, delta int64) (int64, error)
}
