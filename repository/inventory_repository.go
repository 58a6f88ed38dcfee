package repository

import (
	"context"
	"fmt"

	"casino/database"
	"casino/domain/entities"

	"github.com/jackc/pgx/v5"
)

// InventoryRepository implements the InventoryRepository interface over postgres
type InventoryRepository struct {
	q       Queryable
	guildID int64
}

// NewInventoryRepository creates an unscoped inventory repository over the pool
func NewInventoryRepository(db *database.DB) *InventoryRepository {
	return &InventoryRepository{q: db.Pool}
}

func newInventoryRepositoryScoped(tx Queryable, guildID int64) *InventoryRepository {
	return &InventoryRepository{
		q:       tx,
		guildID: guildID,
	}
}

// Get returns the quantity held of one item, zero if none
func (r *InventoryRepository) Get(ctx context.Context, userID int64, itemID string) (int64, error) {
	query := `
		SELECT quantity FROM inventory_items
		WHERE guild_id = $1 AND user_id = $2 AND item_id = $3`

	var quantity int64
	err := r.q.QueryRow(ctx, query, r.guildID, userID, itemID).Scan(&quantity)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get %s holding for user %d in guild %d: %w", itemID, userID, r.guildID, err)
	}
	return quantity, nil
}

// ListForUser returns all inventory entries with positive quantity
func (r *InventoryRepository) ListForUser(ctx context.Context, userID int64) ([]*entities.InventoryEntry, error) {
	query := `
		SELECT user_id, guild_id, item_id, quantity
		FROM inventory_items
		WHERE guild_id = $1 AND user_id = $2 AND quantity > 0
		ORDER BY item_id ASC`

	rows, err := r.q.Query(ctx, query, r.guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory for user %d in guild %d: %w", userID, r.guildID, err)
	}
	defer rows.Close()

	var entries []*entities.InventoryEntry
	for rows.Next() {
		var entry entities.InventoryEntry
		if err := rows.Scan(&entry.UserID, &entry.GuildID, &entry.ItemID, &entry.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan inventory entry: %w", err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate inventory entries: %w", err)
	}
	return entries, nil
}

// AdjustQuantity applies a signed delta to an item holding and returns the
// new quantity. Rows that reach zero are deleted so inventories only list
// items actually owned.
func (r *InventoryRepository) AdjustQuantity(ctx context.Context, userID int64, itemID string, delta int64) (int64, error) {
	var query string
	if delta >= 0 {
		query = `
			INSERT INTO inventory_items (guild_id, user_id, item_id, quantity)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (guild_id, user_id, item_id) DO UPDATE
				SET quantity = inventory_items.quantity + $4, updated_at = NOW()
			RETURNING quantity`
	} else {
		query = `
			UPDATE inventory_items
			SET quantity = quantity + $4, updated_at = NOW()
			WHERE guild_id = $1 AND user_id = $2 AND item_id = $3 AND quantity + $4 >= 0
			RETURNING quantity`
	}

	var quantity int64
	err := r.q.QueryRow(ctx, query, r.guildID, userID, itemID, delta).Scan(&quantity)
	if err == pgx.ErrNoRows {
		have, getErr := r.Get(ctx, userID, itemID)
		if getErr != nil {
			return 0, getErr
		}
		return 0, &entities.InsufficientFundsError{
			Currency: entities.CurrencyKind(itemID),
			Have:     have,
			Need:     -delta,
		}
	}
	if err != nil {
		return 0, fmt.Errorf("failed to adjust %s holding for user %d in guild %d: %w", itemID, userID, r.guildID, err)
	}

	if quantity == 0 {
		if _, err := r.q.Exec(ctx,
			`DELETE FROM inventory_items WHERE guild_id = $1 AND user_id = $2 AND item_id = $3`,
			r.guildID, userID, itemID); err != nil {
			return 0, fmt.Errorf("failed to remove empty %s holding for user %d in guild %d: %w", itemID, userID, r.guildID, err)
		}
	}
	return quantity, nil
}
