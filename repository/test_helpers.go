package repository

import (
	"casino/application"
	"casino/database"
)

// CreateTestUnitOfWork builds a guild-scoped unit of work for repository tests
func CreateTestUnitOfWork(db *database.DB, guildID int64) application.UnitOfWork {
	return NewUnitOfWorkFactory(db).CreateForGuild(guildID)
}
