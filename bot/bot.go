package bot

import (
	"context"
	"fmt"
	"strconv"

	"casino/application"
	"casino/bot/features/admin"
	"casino/bot/features/balance"
	"casino/bot/features/betting"
	"casino/bot/features/rewards"
	"casino/bot/features/shop"
	"casino/bot/features/stats"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token   string
	GuildID string
}

// Bot manages the Discord session and all feature modules
type Bot struct {
	config     Config
	session    *discordgo.Session
	uowFactory application.UnitOfWorkFactory

	betting *betting.Feature
	balance *balance.Feature
	rewards *rewards.Feature
	shop    *shop.Feature
	stats   *stats.Feature
	admin   *admin.Feature

	stopCooldownSweep func()
}

// New creates the bot, opens the gateway connection and registers commands
func New(config Config, uowFactory application.UnitOfWorkFactory) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	bot := &Bot{
		config:     config,
		session:    dg,
		uowFactory: uowFactory,
	}

	bot.betting = betting.New(uowFactory)
	bot.balance = balance.New(uowFactory)
	bot.rewards = rewards.New(uowFactory)
	bot.shop = shop.New(uowFactory)
	bot.stats = stats.New(uowFactory)
	bot.admin = admin.New(uowFactory)

	dg.AddHandler(bot.handleCommands)
	dg.AddHandler(bot.handleGuildCreate)

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	return bot, nil
}

// Close gracefully shuts down the bot
func (b *Bot) Close() error {
	if b.stopCooldownSweep != nil {
		b.stopCooldownSweep()
	}
	return b.session.Close()
}

// GetSession returns the Discord session
func (b *Bot) GetSession() *discordgo.Session {
	return b.session
}

// handleCommands routes slash commands to feature handlers
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if i.Member == nil || i.GuildID == "" {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "bet":
		b.betting.HandleCommand(s, i)
	case "balance":
		b.balance.HandleBalance(s, i)
	case "transfer":
		b.balance.HandleTransfer(s, i)
	case "leaderboard":
		b.balance.HandleLeaderboard(s, i)
	case "history":
		b.balance.HandleHistory(s, i)
	case "claim":
		b.rewards.HandleCommand(s, i)
	case "shop":
		b.shop.HandleCommand(s, i)
	case "stats":
		b.stats.HandleCommand(s, i)
	case "admin":
		b.admin.HandleCommand(s, i)
	}
}

// handleGuildCreate seeds settings when the bot joins a guild
func (b *Bot) handleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	ctx := context.Background()

	guildID, err := strconv.ParseInt(g.ID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse guild ID %s: %v", g.ID, err)
		return
	}

	uow := b.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Failed to begin transaction: %v", err)
		return
	}
	defer uow.Rollback()

	settings, err := uow.GuildSettingsRepository().GetOrCreate(ctx)
	if err != nil {
		log.Errorf("Failed to track new guild %s (%s): %v", g.Name, g.ID, err)
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Failed to commit transaction: %v", err)
		return
	}

	log.WithFields(log.Fields{
		"guild":    settings.GuildID,
		"name":     g.Name,
		"gambling": settings.GamblingEnabled,
		"shop":     settings.ShopEnabled,
	}).Info("joined guild")
}
