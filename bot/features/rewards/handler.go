package rewards

import (
	"context"
	"fmt"
	"strconv"

	"casino/bot/common"
	"casino/domain/entities"
	"casino/domain/services"
	"casino/domain/utils"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleClaim(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		common.RespondWithError(s, i, "Pick a reward to claim.")
		return
	}
	kind := entities.RewardKind(data.Options[0].Name)

	userID, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing user ID %s: %v", i.Member.User.ID, err)
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

	rewardService := services.NewRewardService(
		uow.AccountRepository(),
		uow.TransactionRepository(),
		uow.InventoryRepository(),
		nil,
	)

	grant, err := rewardService.Claim(ctx, userID, kind)
	if err != nil {
		common.HandleServiceError(s, i, string(kind), err)
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	embed := buildGrantEmbed(grant)
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		log.Errorf("Error responding to %s claim: %v", kind, err)
	}
}

func buildGrantEmbed(grant *entities.RewardGrant) *discordgo.MessageEmbed {
	var title string
	switch grant.Kind {
	case entities.RewardDaily:
		title = "Daily Reward"
	case entities.RewardWeekly:
		title = "Weekly Reward"
	case entities.RewardMonthly:
		title = "Monthly Reward"
	case entities.RewardWork:
		title = fmt.Sprintf("Work: %s", grant.Job)
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: fmt.Sprintf("You received **%s**!", utils.FormatShortNotation(grant.Total)),
		Color:       common.ColorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Balance",
				Value:  utils.FormatShortNotation(grant.NewBalance),
				Inline: true,
			},
		},
	}

	if grant.Streak > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Streak",
			Value:  fmt.Sprintf("🔥 %d days", grant.Streak),
			Inline: true,
		})
	}
	if grant.Premium > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Premium Bonus",
			Value:  fmt.Sprintf("+%d", grant.Premium),
			Inline: true,
		})
	}
	if grant.BonusItem != "" {
		itemName := grant.BonusItem
		if item, ok := entities.ShopCatalogue[grant.BonusItem]; ok {
			itemName = item.Name
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Bonus Item",
			Value:  fmt.Sprintf("🎁 %s", itemName),
			Inline: true,
		})
	}

	return embed
}
