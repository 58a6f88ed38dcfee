package repository

import (
	"context"
	"fmt"
	"time"

	"casino/config"
	"casino/database"
	"casino/domain/entities"

	"github.com/jackc/pgx/v5"
)

const accountColumns = `
	user_id, guild_id, cash_balance, premium_balance,
	total_winnings, total_losses, games_played,
	level, experience, prestige, daily_streak,
	last_daily, last_weekly, last_monthly, last_work,
	created_at, updated_at`

// AccountRepository implements the AccountRepository interface over postgres
type AccountRepository struct {
	q       Queryable
	guildID int64
}

// NewAccountRepository creates an unscoped account repository over the pool
func NewAccountRepository(db *database.DB) *AccountRepository {
	return &AccountRepository{q: db.Pool}
}

// newAccountRepositoryScoped creates an account repository bound to a
// transaction and guild
func newAccountRepositoryScoped(tx Queryable, guildID int64) *AccountRepository {
	return &AccountRepository{
		q:       tx,
		guildID: guildID,
	}
}

func scanAccount(row pgx.Row) (*entities.Account, error) {
	var a entities.Account
	err := row.Scan(
		&a.UserID,
		&a.GuildID,
		&a.CashBalance,
		&a.PremiumBalance,
		&a.TotalWinnings,
		&a.TotalLosses,
		&a.GamesPlayed,
		&a.Level,
		&a.Experience,
		&a.Prestige,
		&a.DailyStreak,
		&a.LastDaily,
		&a.LastWeekly,
		&a.LastMonthly,
		&a.LastWork,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByUser retrieves an account, returning nil if it does not exist
func (r *AccountRepository) GetByUser(ctx context.Context, userID int64) (*entities.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE user_id = $1 AND guild_id = $2`, accountColumns)

	account, err := scanAccount(r.q.QueryRow(ctx, query, userID, r.guildID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account for user %d in guild %d: %w", userID, r.guildID, err)
	}
	return account, nil
}

// GetByUserForUpdate retrieves and row-locks an account for the duration of
// the surrounding transaction, returning nil if it does not exist
func (r *AccountRepository) GetByUserForUpdate(ctx context.Context, userID int64) (*entities.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE user_id = $1 AND guild_id = $2 FOR UPDATE`, accountColumns)

	account, err := scanAccount(r.q.QueryRow(ctx, query, userID, r.guildID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock account for user %d in guild %d: %w", userID, r.guildID, err)
	}
	return account, nil
}

// GetOrCreate retrieves an account, creating it with the configured starting
// balances when absent
func (r *AccountRepository) GetOrCreate(ctx context.Context, userID int64) (*entities.Account, error) {
	account, err := r.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account != nil {
		return account, nil
	}

	cfg := config.Get()
	query := fmt.Sprintf(`
		INSERT INTO accounts (user_id, guild_id, cash_balance, premium_balance)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (guild_id, user_id) DO NOTHING
		RETURNING %s`, accountColumns)

	account, err = scanAccount(r.q.QueryRow(ctx, query, userID, r.guildID, cfg.StartingBalance, cfg.StartingPremium))
	if err == pgx.ErrNoRows {
		// Lost a creation race; the row exists now.
		return r.GetByUser(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create account for user %d in guild %d: %w", userID, r.guildID, err)
	}
	return account, nil
}

func balanceColumn(currency entities.CurrencyKind) string {
	if currency == entities.CurrencyPremium {
		return "premium_balance"
	}
	return "cash_balance"
}

// AdjustBalance applies a signed delta to one currency balance and returns
// the new balance. The guard in the WHERE clause makes overdraw impossible
// regardless of interleaving.
func (r *AccountRepository) AdjustBalance(ctx context.Context, userID int64, currency entities.CurrencyKind, delta int64) (int64, error) {
	column := balanceColumn(currency)
	query := fmt.Sprintf(`
		UPDATE accounts
		SET %s = %s + $1, updated_at = NOW()
		WHERE user_id = $2 AND guild_id = $3 AND %s + $1 >= 0
		RETURNING %s`, column, column, column, column)

	var newBalance int64
	err := r.q.QueryRow(ctx, query, delta, userID, r.guildID).Scan(&newBalance)
	if err == pgx.ErrNoRows {
		account, getErr := r.GetByUser(ctx, userID)
		if getErr != nil {
			return 0, getErr
		}
		if account == nil {
			return 0, fmt.Errorf("account for user %d in guild %d: %w", userID, r.guildID, entities.ErrNotFound)
		}
		return 0, &entities.InsufficientFundsError{
			Currency: currency,
			Have:     account.Balance(currency),
			Need:     -delta,
		}
	}
	if err != nil {
		return 0, fmt.Errorf("failed to adjust %s balance for user %d in guild %d: %w", currency, userID, r.guildID, err)
	}
	return newBalance, nil
}

// ApplyWagerTotals folds a settled wager into the account's lifetime counters
func (r *AccountRepository) ApplyWagerTotals(ctx context.Context, userID int64, won, push bool, bet, payout int64) error {
	var winningsDelta, lossesDelta int64
	switch {
	case won:
		// Lifetime winnings track the full return, so the column never
		// shrinks even when a winning payout is below the stake.
		winningsDelta = payout
	case push:
		// neither column moves on a push
	default:
		lossesDelta = bet
	}

	query := `
		UPDATE accounts
		SET games_played = games_played + 1,
		    total_winnings = total_winnings + $1,
		    total_losses = total_losses + $2,
		    updated_at = NOW()
		WHERE user_id = $3 AND guild_id = $4`

	result, err := r.q.Exec(ctx, query, winningsDelta, lossesDelta, userID, r.guildID)
	if err != nil {
		return fmt.Errorf("failed to apply wager totals for user %d in guild %d: %w", userID, r.guildID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("account for user %d in guild %d: %w", userID, r.guildID, entities.ErrNotFound)
	}
	return nil
}

// UpdateProgress persists new experience and level values
func (r *AccountRepository) UpdateProgress(ctx context.Context, userID int64, experience int64, level int) error {
	query := `
		UPDATE accounts
		SET experience = $1, level = $2, updated_at = NOW()
		WHERE user_id = $3 AND guild_id = $4`

	result, err := r.q.Exec(ctx, query, experience, level, userID, r.guildID)
	if err != nil {
		return fmt.Errorf("failed to update progress for user %d in guild %d: %w", userID, r.guildID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("account for user %d in guild %d: %w", userID, r.guildID, entities.ErrNotFound)
	}
	return nil
}

// SetLastClaim updates the last-claim timestamp for a reward kind. Daily
// claims carry the updated streak; the streak argument is ignored otherwise.
func (r *AccountRepository) SetLastClaim(ctx context.Context, userID int64, kind entities.RewardKind, at time.Time, streak int) error {
	var query string
	var args []any
	switch kind {
	case entities.RewardDaily:
		query = `UPDATE accounts SET last_daily = $1, daily_streak = $2, updated_at = NOW() WHERE user_id = $3 AND guild_id = $4`
		args = []any{at, streak, userID, r.guildID}
	case entities.RewardWeekly:
		query = `UPDATE accounts SET last_weekly = $1, updated_at = NOW() WHERE user_id = $2 AND guild_id = $3`
		args = []any{at, userID, r.guildID}
	case entities.RewardMonthly:
		query = `UPDATE accounts SET last_monthly = $1, updated_at = NOW() WHERE user_id = $2 AND guild_id = $3`
		args = []any{at, userID, r.guildID}
	case entities.RewardWork:
		query = `UPDATE accounts SET last_work = $1, updated_at = NOW() WHERE user_id = $2 AND guild_id = $3`
		args = []any{at, userID, r.guildID}
	default:
		return fmt.Errorf("unknown reward kind %q", kind)
	}

	result, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to set last %s claim for user %d in guild %d: %w", kind, userID, r.guildID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("account for user %d in guild %d: %w", userID, r.guildID, entities.ErrNotFound)
	}
	return nil
}

// Reset restores an account to the configured starting state
func (r *AccountRepository) Reset(ctx context.Context, userID int64) error {
	cfg := config.Get()
	query := `
		UPDATE accounts
		SET cash_balance = $1,
		    premium_balance = $2,
		    total_winnings = 0,
		    total_losses = 0,
		    games_played = 0,
		    level = 1,
		    experience = 0,
		    prestige = 0,
		    daily_streak = 0,
		    last_daily = NULL,
		    last_weekly = NULL,
		    last_monthly = NULL,
		    last_work = NULL,
		    updated_at = NOW()
		WHERE user_id = $3 AND guild_id = $4`

	result, err := r.q.Exec(ctx, query, cfg.StartingBalance, cfg.StartingPremium, userID, r.guildID)
	if err != nil {
		return fmt.Errorf("failed to reset account for user %d in guild %d: %w", userID, r.guildID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("account for user %d in guild %d: %w", userID, r.guildID, entities.ErrNotFound)
	}
	return nil
}

func leaderboardColumn(metric entities.LeaderboardMetric) (string, error) {
	switch metric {
	case entities.MetricCash:
		return "cash_balance", nil
	case entities.MetricPremium:
		return "premium_balance", nil
	case entities.MetricWinnings:
		return "total_winnings", nil
	case entities.MetricGames:
		return "games_played", nil
	case entities.MetricLevel:
		return "experience", nil
	default:
		return "", fmt.Errorf("unknown leaderboard metric %q", metric)
	}
}

// Leaderboard returns the top accounts by metric, descending. Ties break on
// account age then user ID so repeated queries return identical orderings.
func (r *AccountRepository) Leaderboard(ctx context.Context, metric entities.LeaderboardMetric, limit int) ([]*entities.LeaderboardEntry, error) {
	column, err := leaderboardColumn(metric)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT user_id, %s
		FROM accounts
		WHERE guild_id = $1
		ORDER BY %s DESC, created_at ASC, user_id ASC
		LIMIT $2`, column, column)

	rows, err := r.q.Query(ctx, query, r.guildID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s leaderboard in guild %d: %w", metric, r.guildID, err)
	}
	defer rows.Close()

	var entries []*entities.LeaderboardEntry
	for rows.Next() {
		entry := &entities.LeaderboardEntry{Rank: len(entries) + 1}
		if err := rows.Scan(&entry.UserID, &entry.Value); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leaderboard entries: %w", err)
	}
	return entries, nil
}

// GuildTotals aggregates economy-wide statistics for the guild
func (r *AccountRepository) GuildTotals(ctx context.Context) (*entities.GuildTotals, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(a.cash_balance), 0),
		       COALESCE(SUM(a.premium_balance), 0),
		       COALESCE(SUM(a.games_played), 0),
		       COALESCE((SELECT SUM(gs.total_wagered) FROM game_stats gs WHERE gs.guild_id = $1), 0)
		FROM accounts a
		WHERE a.guild_id = $1`

	var totals entities.GuildTotals
	err := r.q.QueryRow(ctx, query, r.guildID).Scan(
		&totals.Accounts,
		&totals.TotalCash,
		&totals.TotalPremium,
		&totals.TotalGamesPlayed,
		&totals.TotalWagered,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate guild totals for guild %d: %w", r.guildID, err)
	}
	return &totals, nil
}
