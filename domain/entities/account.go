package entities

import (
	"time"
)

// CurrencyKind identifies which of the two account balances an operation targets.
type CurrencyKind string

const (
	CurrencyCash    CurrencyKind = "cash"
	CurrencyPremium CurrencyKind = "premium"
)

// Account represents a user's economy state within a single guild
type Account struct {
	UserID         int64      `db:"user_id"`
	GuildID        int64      `db:"guild_id"`
	CashBalance    int64      `db:"cash_balance"`
	PremiumBalance int64      `db:"premium_balance"`
	TotalWinnings  int64      `db:"total_winnings"`
	TotalLosses    int64      `db:"total_losses"`
	GamesPlayed    int64      `db:"games_played"`
	Level          int        `db:"level"`
	Experience     int64      `db:"experience"`
	Prestige       int        `db:"prestige"`
	DailyStreak    int        `db:"daily_streak"`
	LastDaily      *time.Time `db:"last_daily"`
	LastWeekly     *time.Time `db:"last_weekly"`
	LastMonthly    *time.Time `db:"last_monthly"`
	LastWork       *time.Time `db:"last_work"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

// Balance returns the balance for the given currency kind
func (a *Account) Balance(kind CurrencyKind) int64 {
	if kind == CurrencyPremium {
		return a.PremiumBalance
	}
	return a.CashBalance
}

// CanAfford checks if the account has sufficient cash balance for an amount
func (a *Account) CanAfford(amount int64) bool {
	return a.CashBalance >= amount
}

// CanAffordCurrency checks affordability against a specific currency balance
func (a *Account) CanAffordCurrency(kind CurrencyKind, amount int64) bool {
	return a.Balance(kind) >= amount
}

// LastClaim returns the account's last claim time for a reward kind, or nil
// if the reward has never been claimed.
func (a *Account) LastClaim(kind RewardKind) *time.Time {
	switch kind {
	case RewardDaily:
		return a.LastDaily
	case RewardWeekly:
		return a.LastWeekly
	case RewardMonthly:
		return a.LastMonthly
	case RewardWork:
		return a.LastWork
	}
	return nil
}

// NetProfit returns lifetime winnings minus lifetime losses
func (a *Account) NetProfit() int64 {
	return a.TotalWinnings - a.TotalLosses
}

// LeaderboardMetric selects the ordering for a leaderboard query
type LeaderboardMetric string

const (
	MetricCash     LeaderboardMetric = "cash"
	MetricPremium  LeaderboardMetric = "premium"
	MetricWinnings LeaderboardMetric = "winnings"
	MetricGames    LeaderboardMetric = "games"
	MetricLevel    LeaderboardMetric = "level"
)

// LeaderboardEntry is a single row of a leaderboard result
type LeaderboardEntry struct {
	Rank   int
	UserID int64
	Value  int64
}

// GuildTotals aggregates economy-wide statistics for a guild
type GuildTotals struct {
	Accounts         int64
	TotalCash        int64
	TotalPremium     int64
	TotalWagered     int64
	TotalGamesPlayed int64
}

// LevelUp reports a level change produced by gained experience
type LevelUp struct {
	OldLevel int
	NewLevel int
}
