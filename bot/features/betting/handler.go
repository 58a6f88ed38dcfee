package betting

import (
	"context"
	"strconv"

	"casino/bot/common"
	"casino/domain/games"
	"casino/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleBet(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		common.RespondWithError(s, i, "Pick a game to play.")
		return
	}

	sub := data.Options[0]
	kind := games.Kind(sub.Name)

	var betRaw string
	var params games.Params
	for _, opt := range sub.Options {
		switch opt.Name {
		case "bet":
			betRaw = opt.StringValue()
		case "prediction", "choice":
			params.Prediction = opt.StringValue()
		case "cashout":
			params.Cashout = opt.FloatValue()
		case "die":
			params.SingleDie = opt.BoolValue()
		}
	}

	// No bet means the player wants the rules; nothing is wagered and no
	// cooldown is armed.
	if betRaw == "" {
		respondWithGameHelp(s, i, kind)
		return
	}

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

	cooldownGate := services.NewCooldownService(uow.CooldownRepository())
	wagerService := services.NewWagerService(
		uow.AccountRepository(),
		uow.TransactionRepository(),
		uow.GameStatRepository(),
		uow.GuildSettingsRepository(),
		cooldownGate,
		nil,
	)

	result, err := wagerService.PlaceWager(ctx, userID, kind, betRaw, params)
	if err != nil {
		common.HandleServiceError(s, i, string(kind), err)
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	embed := buildResultEmbed(i.Member.User, result)
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		log.Errorf("Error responding to %s command: %v", kind, err)
	}
}
