package repository

import (
	"context"
	"fmt"

	"casino/database"
	"casino/domain/entities"
)

// TransactionRepository implements the TransactionRepository interface over postgres
type TransactionRepository struct {
	q       Queryable
	guildID int64
}

// NewTransactionRepository creates an unscoped transaction repository over the pool
func NewTransactionRepository(db *database.DB) *TransactionRepository {
	return &TransactionRepository{q: db.Pool}
}

func newTransactionRepositoryScoped(tx Queryable, guildID int64) *TransactionRepository {
	return &TransactionRepository{
		q:       tx,
		guildID: guildID,
	}
}

// Record appends a transaction to the audit log
func (r *TransactionRepository) Record(ctx context.Context, tx *entities.Transaction) error {
	if err := tx.Validate(); err != nil {
		return fmt.Errorf("invalid transaction: %w", err)
	}

	query := `
		INSERT INTO transactions (external_id, guild_id, user_id, type, currency, amount, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := r.q.QueryRow(ctx, query,
		tx.ExternalID,
		r.guildID,
		tx.UserID,
		tx.Type,
		tx.Currency,
		tx.Amount,
		tx.Description,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record %s transaction for user %d in guild %d: %w", tx.Type, tx.UserID, r.guildID, err)
	}

	tx.GuildID = r.guildID
	return nil
}

// GetRecent returns the newest transactions for a user, most recent first
func (r *TransactionRepository) GetRecent(ctx context.Context, userID int64, limit int) ([]*entities.Transaction, error) {
	query := `
		SELECT id, external_id, guild_id, user_id, type, currency, amount, description, created_at
		FROM transactions
		WHERE guild_id = $1 AND user_id = $2
		ORDER BY created_at DESC, id DESC
		LIMIT $3`

	rows, err := r.q.Query(ctx, query, r.guildID, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions for user %d in guild %d: %w", userID, r.guildID, err)
	}
	defer rows.Close()

	var transactions []*entities.Transaction
	for rows.Next() {
		var tx entities.Transaction
		err := rows.Scan(
			&tx.ID,
			&tx.ExternalID,
			&tx.GuildID,
			&tx.UserID,
			&tx.Type,
			&tx.Currency,
			&tx.Amount,
			&tx.Description,
			&tx.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, &tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return transactions, nil
}
