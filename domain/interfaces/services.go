package interfaces

import (
	"context"
	"time"

	"casino/domain/entities"
	"casino/domain/games"
)

// WagerService coordinates the full lifecycle of a wager: validate,
// reserve, resolve, settle, progress and cooldown arming.
type WagerService interface {
	// PlaceWager runs one wager to completion. betRaw accepts literal
	// integers and the shorthand forms understood by the bet parser.
	PlaceWager(ctx context.Context, userID int64, kind games.Kind, betRaw string, params games.Params) (*entities.WagerResult, error)
}

// EconomyService exposes balance queries, transfers, leaderboards and the
// administrative balance operations.
type EconomyService interface {
	GetBalance(ctx context.Context, userID int64) (*entities.Account, error)
	Transfer(ctx context.Context, fromUserID, toUserID, amount int64) error
	Leaderboard(ctx context.Context, metric entities.LeaderboardMetric, limit int) ([]*entities.LeaderboardEntry, error)
	History(ctx context.Context, userID int64, limit int) ([]*entities.Transaction, error)

	// Administrative operations: bypass cooldown and bet-size validation
	// but still honor the non-negative balance contract.
	AdminCredit(ctx context.Context, userID int64, currency entities.CurrencyKind, amount int64) (int64, error)
	AdminDebit(ctx context.Context, userID int64, currency entities.CurrencyKind, amount int64) (int64, error)
	ResetAccount(ctx context.Context, userID int64) error
	GuildStats(ctx context.Context) (*entities.GuildTotals, error)
}

// RewardService applies time-gated reward grants
type RewardService interface {
	Claim(ctx context.Context, userID int64, kind entities.RewardKind) (*entities.RewardGrant, error)
}

// ShopService sells and buys back catalogue items
type ShopService interface {
	Purchase(ctx context.Context, userID int64, itemID string, quantity int64) (*entities.ShopReceipt, error)
	Sell(ctx context.Context, userID int64, itemID string, quantity int64) (*entities.ShopReceipt, error)
	Inventory(ctx context.Context, userID int64) ([]*entities.InventoryEntry, error)
}

// CooldownGate tracks per-user action availability windows
type CooldownGate interface {
	// Remaining returns the time left before the action is available again;
	// zero means available. Expired records are purged opportunistically.
	Remaining(ctx context.Context, userID int64, action entities.ActionKind) (time.Duration, error)

	// CheckAvailable returns an OnCooldownError when the action is gated
	CheckAvailable(ctx context.Context, userID int64, action entities.ActionKind) error

	// Arm starts the action's configured cooldown window
	Arm(ctx context.Context, userID int64, action entities.ActionKind) error
}

// StatsService reads per-game statistics for presentation
type StatsService interface {
	UserStats(ctx context.Context, userID int64) (*entities.Account, []*entities.GameStat, error)
}
