package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// TransactionType represents the kind of balance mutation a transaction records
type TransactionType string

const (
	TransactionTypeCredit      TransactionType = "credit"
	TransactionTypeDebit       TransactionType = "debit"
	TransactionTypeTransferIn  TransactionType = "transfer_in"
	TransactionTypeTransferOut TransactionType = "transfer_out"
	TransactionTypeAdminGift   TransactionType = "admin_gift"
	TransactionTypeAdminDeduct TransactionType = "admin_deduct"
)

// IsTransferType returns true if the transaction type represents a transfer
func (tt TransactionType) IsTransferType() bool {
	return tt == TransactionTypeTransferIn || tt == TransactionTypeTransferOut
}

// IsAdminType returns true if the transaction was produced by an administrative command
func (tt TransactionType) IsAdminType() bool {
	return tt == TransactionTypeAdminGift || tt == TransactionTypeAdminDeduct
}

// String returns the string representation of the transaction type
func (tt TransactionType) String() string {
	return string(tt)
}

// Transaction is an immutable audit record of a single balance mutation.
// The log is advisory: balances are stored on the account, never derived
// from replaying transactions.
type Transaction struct {
	ID          int64           `db:"id"`
	ExternalID  uuid.UUID       `db:"external_id"`
	UserID      int64           `db:"user_id"`
	GuildID     int64           `db:"guild_id"`
	Type        TransactionType `db:"transaction_type"`
	Currency    CurrencyKind    `db:"currency"`
	Amount      int64           `db:"amount"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
}

// NewTransaction builds a transaction record for a signed balance delta.
// The stored amount is the magnitude; the sign selects credit vs debit.
func NewTransaction(userID int64, txType TransactionType, currency CurrencyKind, amount int64, description string) *Transaction {
	if amount < 0 {
		amount = -amount
	}
	return &Transaction{
		ExternalID:  uuid.New(),
		UserID:      userID,
		Type:        txType,
		Currency:    currency,
		Amount:      amount,
		Description: description,
	}
}

// Validate performs basic consistency checks before the record is appended
func (t *Transaction) Validate() error {
	if t.Amount < 0 {
		return errors.New("transaction amount cannot be negative")
	}
	if t.UserID == 0 {
		return errors.New("transaction requires a user")
	}
	return nil
}
