package repository

import (
	"context"
	"fmt"

	"casino/database"
	"casino/domain/entities"

	"github.com/jackc/pgx/v5"
)

// GuildSettingsRepository implements the GuildSettingsRepository interface over postgres
type GuildSettingsRepository struct {
	q       Queryable
	guildID int64
}

// NewGuildSettingsRepository creates an unscoped guild settings repository over the pool
func NewGuildSettingsRepository(db *database.DB) *GuildSettingsRepository {
	return &GuildSettingsRepository{q: db.Pool}
}

func newGuildSettingsRepositoryScoped(tx Queryable, guildID int64) *GuildSettingsRepository {
	return &GuildSettingsRepository{
		q:       tx,
		guildID: guildID,
	}
}

// GetOrCreate retrieves guild settings, creating defaults when absent
func (r *GuildSettingsRepository) GetOrCreate(ctx context.Context) (*entities.GuildSettings, error) {
	query := `
		SELECT guild_id, cash_name, cash_symbol, premium_name, premium_symbol,
		       admin_ids, gambling_enabled, shop_enabled, notify_level_ups, created_at
		FROM guild_settings
		WHERE guild_id = $1`

	settings, err := r.scanSettings(r.q.QueryRow(ctx, query, r.guildID))
	if err == nil {
		return settings, nil
	}
	if err != pgx.ErrNoRows {
		return nil, fmt.Errorf("failed to get settings for guild %d: %w", r.guildID, err)
	}

	defaults := entities.DefaultGuildSettings(r.guildID)
	insert := `
		INSERT INTO guild_settings (guild_id, cash_name, cash_symbol, premium_name, premium_symbol)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (guild_id) DO NOTHING
		RETURNING guild_id, cash_name, cash_symbol, premium_name, premium_symbol,
		          admin_ids, gambling_enabled, shop_enabled, notify_level_ups, created_at`

	settings, err = r.scanSettings(r.q.QueryRow(ctx, insert,
		defaults.GuildID,
		defaults.CashName,
		defaults.CashSymbol,
		defaults.PremiumName,
		defaults.PremiumSymbol,
	))
	if err == pgx.ErrNoRows {
		// Lost a creation race; re-read the existing row.
		return r.GetOrCreate(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create settings for guild %d: %w", r.guildID, err)
	}
	return settings, nil
}

// Update persists modified settings
func (r *GuildSettingsRepository) Update(ctx context.Context, settings *entities.GuildSettings) error {
	query := `
		UPDATE guild_settings
		SET cash_name = $1,
		    cash_symbol = $2,
		    premium_name = $3,
		    premium_symbol = $4,
		    admin_ids = $5,
		    gambling_enabled = $6,
		    shop_enabled = $7,
		    notify_level_ups = $8,
		    updated_at = NOW()
		WHERE guild_id = $9`

	result, err := r.q.Exec(ctx, query,
		settings.CashName,
		settings.CashSymbol,
		settings.PremiumName,
		settings.PremiumSymbol,
		settings.AdminIDs,
		settings.GamblingEnabled,
		settings.ShopEnabled,
		settings.NotifyLevelUps,
		r.guildID,
	)
	if err != nil {
		return fmt.Errorf("failed to update settings for guild %d: %w", r.guildID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("settings for guild %d: %w", r.guildID, entities.ErrNotFound)
	}
	return nil
}

func (r *GuildSettingsRepository) scanSettings(row pgx.Row) (*entities.GuildSettings, error) {
	var settings entities.GuildSettings
	err := row.Scan(
		&settings.GuildID,
		&settings.CashName,
		&settings.CashSymbol,
		&settings.PremiumName,
		&settings.PremiumSymbol,
		&settings.AdminIDs,
		&settings.GamblingEnabled,
		&settings.ShopEnabled,
		&settings.NotifyLevelUps,
		&settings.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}
