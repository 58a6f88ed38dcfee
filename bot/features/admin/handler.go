package admin

import (
	"context"
	"fmt"
	"strconv"

	"casino/application"
	"casino/bot/common"
	"casino/domain/entities"
	"casino/domain/services"
	"casino/domain/utils"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// authorize checks the caller holds Discord admin permissions or sits in the
// guild's configured admin list. Must run inside the unit of work so the
// settings read shares the transaction.
func authorize(ctx context.Context, uow application.UnitOfWork, i *discordgo.InteractionCreate, userID int64) (bool, error) {
	if i.Member.Permissions&discordgo.PermissionAdministrator != 0 {
		return true, nil
	}
	settings, err := uow.GuildSettingsRepository().GetOrCreate(ctx)
	if err != nil {
		return false, err
	}
	return settings.IsAdmin(userID), nil
}

func (f *Feature) handleAdjust(s *discordgo.Session, i *discordgo.InteractionCreate, give bool) {
	ctx := context.Background()

	sub := i.ApplicationCommandData().Options[0]
	var amount int64
	var target *discordgo.User
	currency := entities.CurrencyCash
	for _, opt := range sub.Options {
		switch opt.Name {
		case "amount":
			amount = opt.IntValue()
		case "user":
			target = opt.UserValue(s)
		case "currency":
			currency = entities.CurrencyKind(opt.StringValue())
		}
	}

	if target == nil {
		common.RespondWithError(s, i, "Invalid target user.")
		return
	}

	callerID, guildID, err := parseIDs(i)
	if err != nil {
		log.Errorf("Error parsing interaction IDs: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	targetID, err := strconv.ParseInt(target.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing target ID %s: %v", target.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	defer uow.Rollback()

	allowed, err := authorize(ctx, uow, i, callerID)
	if err != nil {
		common.HandleServiceError(s, i, "admin", err)
		return
	}
	if !allowed {
		common.RespondWithError(s, i, "You need administrator permissions for that.")
		return
	}

	economyService := services.NewEconomyService(uow.AccountRepository(), uow.TransactionRepository())

	var newBalance int64
	var verb string
	if give {
		newBalance, err = economyService.AdminCredit(ctx, targetID, currency, amount)
		verb = "Gave"
	} else {
		newBalance, err = economyService.AdminDebit(ctx, targetID, currency, amount)
		verb = "Took"
	}
	if err != nil {
		common.HandleServiceError(s, i, "admin adjust", err)
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	log.WithFields(log.Fields{
		"admin":    callerID,
		"target":   targetID,
		"guild":    guildID,
		"amount":   amount,
		"currency": currency,
		"give":     give,
	}).Info("admin balance adjustment")

	message := fmt.Sprintf("%s %s %s <@%s>. New balance: %s",
		verb, utils.FormatShortNotation(amount), currency, target.ID, utils.FormatShortNotation(newBalance))
	respond(s, i, message)
}

func (f *Feature) handleReset(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	sub := i.ApplicationCommandData().Options[0]
	var target *discordgo.User
	for _, opt := range sub.Options {
		if opt.Name == "user" {
			target = opt.UserValue(s)
		}
	}
	if target == nil {
		common.RespondWithError(s, i, "Invalid target user.")
		return
	}

	callerID, guildID, err := parseIDs(i)
	if err != nil {
		log.Errorf("Error parsing interaction IDs: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	targetID, err := strconv.ParseInt(target.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing target ID %s: %v", target.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	defer uow.Rollback()

	allowed, err := authorize(ctx, uow, i, callerID)
	if err != nil {
		common.HandleServiceError(s, i, "admin", err)
		return
	}
	if !allowed {
		common.RespondWithError(s, i, "You need administrator permissions for that.")
		return
	}

	economyService := services.NewEconomyService(uow.AccountRepository(), uow.TransactionRepository())
	if err := economyService.ResetAccount(ctx, targetID); err != nil {
		common.HandleServiceError(s, i, "admin reset", err)
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	log.WithFields(log.Fields{
		"admin":  callerID,
		"target": targetID,
		"guild":  guildID,
	}).Info("admin account reset")

	respond(s, i, fmt.Sprintf("Reset <@%s>'s account to starting state.", target.ID))
}

func (f *Feature) handleGuildStats(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	callerID, guildID, err := parseIDs(i)
	if err != nil {
		log.Errorf("Error parsing interaction IDs: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	defer uow.Rollback()

	allowed, err := authorize(ctx, uow, i, callerID)
	if err != nil {
		common.HandleServiceError(s, i, "admin", err)
		return
	}
	if !allowed {
		common.RespondWithError(s, i, "You need administrator permissions for that.")
		return
	}

	economyService := services.NewEconomyService(uow.AccountRepository(), uow.TransactionRepository())
	totals, err := economyService.GuildStats(ctx)
	if err != nil {
		common.HandleServiceError(s, i, "admin stats", err)
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: "Guild Economy",
		Color: common.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Accounts", Value: strconv.FormatInt(totals.Accounts, 10), Inline: true},
			{Name: "Total Cash", Value: utils.FormatShortNotation(totals.TotalCash), Inline: true},
			{Name: "Total Premium", Value: utils.FormatShortNotation(totals.TotalPremium), Inline: true},
			{Name: "Games Played", Value: strconv.FormatInt(totals.TotalGamesPlayed, 10), Inline: true},
			{Name: "Total Wagered", Value: utils.FormatShortNotation(totals.TotalWagered), Inline: true},
		},
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error responding to admin stats: %v", err)
	}
}

func (f *Feature) handleSettings(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	sub := i.ApplicationCommandData().Options[0]

	callerID, guildID, err := parseIDs(i)
	if err != nil {
		log.Errorf("Error parsing interaction IDs: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	defer uow.Rollback()

	allowed, err := authorize(ctx, uow, i, callerID)
	if err != nil {
		common.HandleServiceError(s, i, "admin", err)
		return
	}
	if !allowed {
		common.RespondWithError(s, i, "You need administrator permissions for that.")
		return
	}

	settings, err := uow.GuildSettingsRepository().GetOrCreate(ctx)
	if err != nil {
		common.HandleServiceError(s, i, "admin settings", err)
		return
	}

	for _, opt := range sub.Options {
		switch opt.Name {
		case "gambling":
			settings.GamblingEnabled = opt.BoolValue()
		case "shop":
			settings.ShopEnabled = opt.BoolValue()
		case "notify_levels":
			settings.NotifyLevelUps = opt.BoolValue()
		case "cash_name":
			settings.CashName = opt.StringValue()
		case "premium_name":
			settings.PremiumName = opt.StringValue()
		case "add_admin":
			user := opt.UserValue(s)
			id, parseErr := strconv.ParseInt(user.ID, 10, 64)
			if parseErr != nil {
				common.RespondWithError(s, i, "Invalid admin user.")
				return
			}
			if !settings.IsAdmin(id) {
				settings.AdminIDs = append(settings.AdminIDs, id)
			}
		case "remove_admin":
			user := opt.UserValue(s)
			id, parseErr := strconv.ParseInt(user.ID, 10, 64)
			if parseErr != nil {
				common.RespondWithError(s, i, "Invalid admin user.")
				return
			}
			filtered := settings.AdminIDs[:0]
			for _, existing := range settings.AdminIDs {
				if existing != id {
					filtered = append(filtered, existing)
				}
			}
			settings.AdminIDs = filtered
		}
	}

	if err := uow.GuildSettingsRepository().Update(ctx, settings); err != nil {
		common.HandleServiceError(s, i, "admin settings", err)
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	respond(s, i, "Settings updated.")
}

func parseIDs(i *discordgo.InteractionCreate) (userID, guildID int64, err error) {
	userID, err = strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse user ID %s: %w", i.Member.User.ID, err)
	}
	guildID, err = strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse guild ID %s: %w", i.GuildID, err)
	}
	return userID, guildID, nil
}

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error responding to admin command: %v", err)
	}
}
