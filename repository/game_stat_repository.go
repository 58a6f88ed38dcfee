package repository

import (
	"context"
	"fmt"

	"casino/database"
	"casino/domain/entities"

	"github.com/jackc/pgx/v5"
)

// GameStatRepository implements the GameStatRepository interface over postgres
type GameStatRepository struct {
	q       Queryable
	guildID int64
}

// NewGameStatRepository creates an unscoped game stat repository over the pool
func NewGameStatRepository(db *database.DB) *GameStatRepository {
	return &GameStatRepository{q: db.Pool}
}

func newGameStatRepositoryScoped(tx Queryable, guildID int64) *GameStatRepository {
	return &GameStatRepository{
		q:       tx,
		guildID: guildID,
	}
}

// Get retrieves stats for one game, returning a zeroed record if absent
func (r *GameStatRepository) Get(ctx context.Context, userID int64, game string) (*entities.GameStat, error) {
	query := `
		SELECT user_id, guild_id, game, played_count, won_count,
		       total_wagered, total_won, current_streak, best_streak, updated_at
		FROM game_stats
		WHERE guild_id = $1 AND user_id = $2 AND game = $3`

	var stat entities.GameStat
	err := r.q.QueryRow(ctx, query, r.guildID, userID, game).Scan(
		&stat.UserID,
		&stat.GuildID,
		&stat.Game,
		&stat.PlayedCount,
		&stat.WonCount,
		&stat.TotalWagered,
		&stat.TotalWon,
		&stat.CurrentStreak,
		&stat.BestStreak,
		&stat.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return &entities.GameStat{
			UserID:  userID,
			GuildID: r.guildID,
			Game:    game,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s stats for user %d in guild %d: %w", game, userID, r.guildID, err)
	}
	return &stat, nil
}

// Upsert writes the full stat record
func (r *GameStatRepository) Upsert(ctx context.Context, stat *entities.GameStat) error {
	query := `
		INSERT INTO game_stats (guild_id, user_id, game, played_count, won_count,
		                        total_wagered, total_won, current_streak, best_streak, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (guild_id, user_id, game) DO UPDATE SET
			played_count = EXCLUDED.played_count,
			won_count = EXCLUDED.won_count,
			total_wagered = EXCLUDED.total_wagered,
			total_won = EXCLUDED.total_won,
			current_streak = EXCLUDED.current_streak,
			best_streak = EXCLUDED.best_streak,
			updated_at = NOW()`

	_, err := r.q.Exec(ctx, query,
		r.guildID,
		stat.UserID,
		stat.Game,
		stat.PlayedCount,
		stat.WonCount,
		stat.TotalWagered,
		stat.TotalWon,
		stat.CurrentStreak,
		stat.BestStreak,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert %s stats for user %d in guild %d: %w", stat.Game, stat.UserID, r.guildID, err)
	}
	return nil
}

// GetAllForUser returns every game stat record for a user
func (r *GameStatRepository) GetAllForUser(ctx context.Context, userID int64) ([]*entities.GameStat, error) {
	query := `
		SELECT user_id, guild_id, game, played_count, won_count,
		       total_wagered, total_won, current_streak, best_streak, updated_at
		FROM game_stats
		WHERE guild_id = $1 AND user_id = $2
		ORDER BY game ASC`

	rows, err := r.q.Query(ctx, query, r.guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game stats for user %d in guild %d: %w", userID, r.guildID, err)
	}
	defer rows.Close()

	var stats []*entities.GameStat
	for rows.Next() {
		var stat entities.GameStat
		err := rows.Scan(
			&stat.UserID,
			&stat.GuildID,
			&stat.Game,
			&stat.PlayedCount,
			&stat.WonCount,
			&stat.TotalWagered,
			&stat.TotalWon,
			&stat.CurrentStreak,
			&stat.BestStreak,
			&stat.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game stat: %w", err)
		}
		stats = append(stats, &stat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate game stats: %w", err)
	}
	return stats, nil
}
