package balance

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"casino/application"
	"casino/bot/common"
	"casino/domain/entities"
	"casino/domain/services"
	"casino/domain/utils"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// interactionIDs extracts and parses the acting user and guild from an interaction
func interactionIDs(i *discordgo.InteractionCreate) (userID, guildID int64, err error) {
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

func beginUow(ctx context.Context, factory application.UnitOfWorkFactory, guildID int64) (application.UnitOfWork, error) {
	uow := factory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return uow, nil
}

func (f *Feature) handleBalance(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, guildID, err := interactionIDs(i)
	if err != nil {
		log.Errorf("Error parsing interaction IDs: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	uow, err := beginUow(ctx, f.uowFactory, guildID)
	if err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	defer uow.Rollback()

	economyService := services.NewEconomyService(uow.AccountRepository(), uow.TransactionRepository())
	settings, err := uow.GuildSettingsRepository().GetOrCreate(ctx)
	if err != nil {
		common.HandleServiceError(s, i, "balance", err)
		return
	}

	account, err := economyService.GetBalance(ctx, userID)
	if err != nil {
		common.HandleServiceError(s, i, "balance", err)
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s's Balance", i.Member.User.Username),
		Color: common.ColorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   fmt.Sprintf("%s %s", settings.CashSymbol, settings.CashName),
				Value:  utils.FormatShortNotation(account.CashBalance),
				Inline: true,
			},
			{
				Name:   fmt.Sprintf("%s %s", settings.PremiumSymbol, settings.PremiumName),
				Value:  utils.FormatShortNotation(account.PremiumBalance),
				Inline: true,
			},
			{
				Name:   "Level",
				Value:  fmt.Sprintf("%d (%d XP)", account.Level, account.Experience),
				Inline: true,
			},
			{
				Name:   "Net Profit",
				Value:  utils.FormatShortNotation(account.NetProfit()),
				Inline: true,
			},
		},
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		log.Errorf("Error responding to balance command: %v", err)
	}
}

func (f *Feature) handleTransfer(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	var amount int64
	var recipient *discordgo.User
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "amount":
			amount = opt.IntValue()
		case "user":
			recipient = opt.UserValue(s)
		}
	}

	if recipient == nil {
		common.RespondWithError(s, i, "Invalid recipient user.")
		return
	}
	if recipient.Bot {
		common.RespondWithError(s, i, "You cannot transfer to a bot.")
		return
	}

	fromID, guildID, err := interactionIDs(i)
	if err != nil {
		log.Errorf("Error parsing interaction IDs: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	toID, err := strconv.ParseInt(recipient.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing recipient ID %s: %v", recipient.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	uow, err := beginUow(ctx, f.uowFactory, guildID)
	if err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	defer uow.Rollback()

	economyService := services.NewEconomyService(uow.AccountRepository(), uow.TransactionRepository())
	if err := economyService.Transfer(ctx, fromID, toID, amount); err != nil {
		common.HandleServiceError(s, i, "transfer", err)
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	message := fmt.Sprintf("💸 Sent %s to <@%s>!", utils.FormatShortNotation(amount), recipient.ID)
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
		},
	})
	if err != nil {
		log.Errorf("Error responding to transfer command: %v", err)
	}
}

func (f *Feature) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	metric := entities.MetricCash
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "metric" {
			metric = entities.LeaderboardMetric(opt.StringValue())
		}
	}

	_, guildID, err := interactionIDs(i)
	if err != nil {
		log.Errorf("Error parsing interaction IDs: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	uow, err := beginUow(ctx, f.uowFactory, guildID)
	if err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	defer uow.Rollback()

	economyService := services.NewEconomyService(uow.AccountRepository(), uow.TransactionRepository())
	entries, err := economyService.Leaderboard(ctx, metric, common.DefaultLeaderboardSize)
	if err != nil {
		common.HandleServiceError(s, i, "leaderboard", err)
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	if len(entries) == 0 {
		common.RespondWithError(s, i, "Nobody is on the leaderboard yet.")
		return
	}

	var sb strings.Builder
	medals := []string{"🥇", "🥈", "🥉"}
	for idx, entry := range entries {
		marker := fmt.Sprintf("%d.", entry.Rank)
		if idx < len(medals) {
			marker = medals[idx]
		}
		sb.WriteString(fmt.Sprintf("%s <@%d> — %s\n", marker, entry.UserID, utils.FormatShortNotation(entry.Value)))
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Leaderboard: %s", metric),
		Description: sb.String(),
		Color:       common.ColorGold,
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		log.Errorf("Error responding to leaderboard command: %v", err)
	}
}

func (f *Feature) handleHistory(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, guildID, err := interactionIDs(i)
	if err != nil {
		log.Errorf("Error parsing interaction IDs: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	uow, err := beginUow(ctx, f.uowFactory, guildID)
	if err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	defer uow.Rollback()

	economyService := services.NewEconomyService(uow.AccountRepository(), uow.TransactionRepository())
	transactions, err := economyService.History(ctx, userID, common.DefaultHistorySize)
	if err != nil {
		common.HandleServiceError(s, i, "history", err)
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	if len(transactions) == 0 {
		common.RespondWithError(s, i, "No transactions yet.")
		return
	}

	var sb strings.Builder
	for _, tx := range transactions {
		sign := "+"
		switch tx.Type {
		case entities.TransactionTypeDebit, entities.TransactionTypeTransferOut, entities.TransactionTypeAdminDeduct:
			sign = "-"
		}
		sb.WriteString(fmt.Sprintf("`%s` %s%s %s — %s\n",
			tx.CreatedAt.Format("Jan 02 15:04"),
			sign,
			utils.FormatShortNotation(tx.Amount),
			tx.Currency,
			tx.Description,
		))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Recent Transactions",
		Description: sb.String(),
		Color:       common.ColorInfo,
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error responding to history command: %v", err)
	}
}
