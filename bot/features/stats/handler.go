package stats

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"casino/bot/common"
	"casino/domain/services"
	"casino/domain/utils"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleStats(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	// Default to the caller; an optional user option reads someone else's stats
	target := i.Member.User
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "user" {
			target = opt.UserValue(s)
		}
	}

	userID, err := strconv.ParseInt(target.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing user ID %s: %v", target.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing guild ID %s: %v", i.GuildID, err)
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

	statsService := services.NewStatsService(uow.AccountRepository(), uow.GameStatRepository())
	account, gameStats, err := statsService.UserStats(ctx, userID)
	if err != nil {
		common.HandleServiceError(s, i, "stats", err)
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s's Stats", target.Username),
		Color: common.ColorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Level",
				Value:  fmt.Sprintf("%d (%d XP)", account.Level, account.Experience),
				Inline: true,
			},
			{
				Name:   "Games Played",
				Value:  strconv.FormatInt(account.GamesPlayed, 10),
				Inline: true,
			},
			{
				Name:   "Net Profit",
				Value:  utils.FormatShortNotation(account.NetProfit()),
				Inline: true,
			},
		},
	}

	if len(gameStats) > 0 {
		var sb strings.Builder
		for _, gs := range gameStats {
			sb.WriteString(fmt.Sprintf("**%s** — %d played, %.1f%% wins, best streak %d\n",
				gs.Game, gs.PlayedCount, gs.WinRate(), gs.BestStreak))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "By Game",
			Value: sb.String(),
		})
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		log.Errorf("Error responding to stats command: %v", err)
	}
}
