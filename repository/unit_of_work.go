package repository

import (
	"context"
	"fmt"

	"casino/application"
	"casino/database"
	"casino/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

// unitOfWork implements the application.UnitOfWork interface
type unitOfWork struct {
	db      *database.DB
	tx      pgx.Tx
	ctx     context.Context
	guildID int64

	accountRepo       interfaces.AccountRepository
	transactionRepo   interfaces.TransactionRepository
	gameStatRepo      interfaces.GameStatRepository
	cooldownRepo      interfaces.CooldownRepository
	guildSettingsRepo interfaces.GuildSettingsRepository
	inventoryRepo     interfaces.InventoryRepository
}

type unitOfWorkFactory struct {
	db *database.DB
}

// NewUnitOfWorkFactory creates a factory producing guild-scoped units of work
func NewUnitOfWorkFactory(db *database.DB) application.UnitOfWorkFactory {
	return &unitOfWorkFactory{db: db}
}

// CreateForGuild creates a unit of work bound to one guild
func (f *unitOfWorkFactory) CreateForGuild(guildID int64) application.UnitOfWork {
	return &unitOfWork{
		db:      f.db,
		guildID: guildID,
	}
}

// Begin starts the transaction and builds the guild-scoped repositories on it
func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	u.tx = tx
	u.ctx = ctx

	u.accountRepo = newAccountRepositoryScoped(tx, u.guildID)
	u.transactionRepo = newTransactionRepositoryScoped(tx, u.guildID)
	u.gameStatRepo = newGameStatRepositoryScoped(tx, u.guildID)
	u.cooldownRepo = newCooldownRepositoryScoped(tx, u.guildID)
	u.guildSettingsRepo = newGuildSettingsRepositoryScoped(tx, u.guildID)
	u.inventoryRepo = newInventoryRepositoryScoped(tx, u.guildID)

	return nil
}

// Commit commits the transaction
func (u *unitOfWork) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}

	if err := u.tx.Commit(u.ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	u.tx = nil
	return nil
}

// Rollback rolls back the transaction; a rollback after commit is a no-op
func (u *unitOfWork) Rollback() error {
	if u.tx == nil {
		return nil
	}

	err := u.tx.Rollback(u.ctx)
	if err != nil && err != pgx.ErrTxClosed {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	u.tx = nil
	return nil
}

// AccountRepository returns the account repository for this unit of work
func (u *unitOfWork) AccountRepository() interfaces.AccountRepository {
	if u.accountRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.accountRepo
}

// TransactionRepository returns the transaction repository for this unit of work
func (u *unitOfWork) TransactionRepository() interfaces.TransactionRepository {
	if u.transactionRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.transactionRepo
}

// GameStatRepository returns the game stat repository for this unit of work
func (u *unitOfWork) GameStatRepository() interfaces.GameStatRepository {
	if u.gameStatRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.gameStatRepo
}

// CooldownRepository returns the cooldown repository for this unit of work
func (u *unitOfWork) CooldownRepository() interfaces.CooldownRepository {
	if u.cooldownRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.cooldownRepo
}

// GuildSettingsRepository returns the guild settings repository for this unit of work
func (u *unitOfWork) GuildSettingsRepository() interfaces.GuildSettingsRepository {
	if u.guildSettingsRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.guildSettingsRepo
}

// InventoryRepository returns the inventory repository for this unit of work
func (u *unitOfWork) InventoryRepository() interfaces.InventoryRepository {
	if u.inventoryRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.inventoryRepo
}
