package application

import (
	"context"

	"casino/domain/interfaces"
)

// UnitOfWork defines the interface for transactional repository operations.
// All repositories returned by one unit of work share a single database
// transaction scoped to one guild.
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// Repository getters
	AccountRepository() interfaces.AccountRepository
	TransactionRepository() interfaces.TransactionRepository
	GameStatRepository() interfaces.GameStatRepository
	CooldownRepository() interfaces.CooldownRepository
	GuildSettingsRepository() interfaces.GuildSettingsRepository
	InventoryRepository() interfaces.InventoryRepository
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	// CreateForGuild creates a new UnitOfWork instance scoped to a specific guild
	CreateForGuild(guildID int64) UnitOfWork
}
