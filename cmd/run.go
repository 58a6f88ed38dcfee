package cmd

import (
	"context"
	"fmt"
	"time"

	"casino/bot"
	"casino/config"
	"casino/database"
	"casino/repository"

	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Info("Starting casino bot...")

	cfg := config.Get()

	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrationsWithURL(cfg.GetDatabaseURL()); err != nil {
		db.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	uowFactory := repository.NewUnitOfWorkFactory(db)

	log.Info("Initializing Discord bot...")
	discordBot, err := bot.New(bot.Config{
		Token:   cfg.DiscordToken,
		GuildID: cfg.GuildID,
	}, uowFactory)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}

	stopSweep, err := discordBot.StartCooldownSweep(ctx, repository.NewCooldownRepository(db), cfg.CooldownSweepSchedule)
	if err != nil {
		discordBot.Close()
		db.Close()
		return fmt.Errorf("failed to start cooldown sweep: %w", err)
	}

	log.WithField("environment", cfg.Environment).Info("Bot is running")
	<-ctx.Done()

	log.Info("Shutting down bot...")
	stopSweep()
	if err := discordBot.Close(); err != nil {
		log.Errorf("Error closing Discord bot: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db.Close()

	select {
	case <-shutdownCtx.Done():
		log.Warn("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Info("Shutdown completed")
	}

	return nil
}
