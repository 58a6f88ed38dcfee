package repository

import (
	"context"
	"fmt"
	"time"

	"casino/database"
	"casino/domain/entities"

	"github.com/jackc/pgx/v5"
)

// CooldownRepository implements the CooldownRepository interface over postgres
type CooldownRepository struct {
	q       Queryable
	guildID int64
}

// NewCooldownRepository creates an unscoped cooldown repository over the pool.
// The unscoped form is used by the maintenance sweep, which purges across
// all guilds.
func NewCooldownRepository(db *database.DB) *CooldownRepository {
	return &CooldownRepository{q: db.Pool}
}

func newCooldownRepositoryScoped(tx Queryable, guildID int64) *CooldownRepository {
	return &CooldownRepository{
		q:       tx,
		guildID: guildID,
	}
}

// Get retrieves a cooldown, returning nil if absent
func (r *CooldownRepository) Get(ctx context.Context, userID int64, action entities.ActionKind) (*entities.Cooldown, error) {
	query := `
		SELECT user_id, guild_id, action, expires_at
		FROM cooldowns
		WHERE guild_id = $1 AND user_id = $2 AND action = $3`

	var cooldown entities.Cooldown
	err := r.q.QueryRow(ctx, query, r.guildID, userID, action).Scan(
		&cooldown.UserID,
		&cooldown.GuildID,
		&cooldown.Action,
		&cooldown.ExpiresAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s cooldown for user %d in guild %d: %w", action, userID, r.guildID, err)
	}
	return &cooldown, nil
}

// Set creates or overwrites a cooldown
func (r *CooldownRepository) Set(ctx context.Context, cooldown *entities.Cooldown) error {
	query := `
		INSERT INTO cooldowns (guild_id, user_id, action, expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (guild_id, user_id, action) DO UPDATE SET expires_at = EXCLUDED.expires_at`

	_, err := r.q.Exec(ctx, query, r.guildID, cooldown.UserID, cooldown.Action, cooldown.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to set %s cooldown for user %d in guild %d: %w", cooldown.Action, cooldown.UserID, r.guildID, err)
	}
	return nil
}

// Delete removes a cooldown record
func (r *CooldownRepository) Delete(ctx context.Context, userID int64, action entities.ActionKind) error {
	query := `DELETE FROM cooldowns WHERE guild_id = $1 AND user_id = $2 AND action = $3`

	_, err := r.q.Exec(ctx, query, r.guildID, userID, action)
	if err != nil {
		return fmt.Errorf("failed to delete %s cooldown for user %d in guild %d: %w", action, userID, r.guildID, err)
	}
	return nil
}

// PurgeExpired deletes every cooldown whose expiry has passed. When the
// repository is unscoped the purge spans all guilds.
func (r *CooldownRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM cooldowns WHERE expires_at <= $1`
	args := []any{now}
	if r.guildID != 0 {
		query += ` AND guild_id = $2`
		args = append(args, r.guildID)
	}

	result, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired cooldowns: %w", err)
	}
	return result.RowsAffected(), nil
}
