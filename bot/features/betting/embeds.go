package betting

import (
	"fmt"
	"strings"

	"casino/bot/common"
	"casino/domain/entities"
	"casino/domain/games"
	"casino/domain/utils"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func buildResultEmbed(user *discordgo.User, result *entities.WagerResult) *discordgo.MessageEmbed {
	title := strings.ToUpper(result.Game[:1]) + result.Game[1:]

	var color int
	var outcome string
	switch {
	case result.Push:
		color = common.ColorWarning
		outcome = fmt.Sprintf("Push. Your %s bet was returned.", utils.FormatShortNotation(result.BetAmount))
	case result.Won:
		color = common.ColorSuccess
		outcome = fmt.Sprintf("You won %s! (x%.2f)", utils.FormatShortNotation(result.Net()), result.Multiplier)
		if result.Multiplier >= 10 {
			color = common.ColorGold
		}
	default:
		color = common.ColorDanger
		outcome = fmt.Sprintf("You lost %s.", utils.FormatShortNotation(result.BetAmount))
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: result.Detail,
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Result",
				Value:  outcome,
				Inline: false,
			},
			{
				Name:   "Balance",
				Value:  utils.FormatShortNotation(result.NewBalance),
				Inline: true,
			},
			{
				Name:   "XP",
				Value:  fmt.Sprintf("+%d", result.ExperienceGained),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Played by %s", user.Username),
		},
	}

	if result.LevelUp != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Level Up!",
			Value:  fmt.Sprintf("Level %d → %d", result.LevelUp.OldLevel, result.LevelUp.NewLevel),
			Inline: false,
		})
	}

	return embed
}

var gameHelp = map[games.Kind]string{
	games.KindCoinflip:  "Call heads or tails. A correct call pays x2.",
	games.KindDice:      "Predict high (8+), low (6-), lucky7 (x5) or the exact sum (x5 to x35). Set die:true for a single die.",
	games.KindSlots:     "Spin three reels. Triples pay the symbol multiplier, pairs pay 30% of it, and the fruit or gem sets pay x5 / x15.",
	games.KindBlackjack: "Auto-played blackjack against the dealer. Wins pay x2, a natural blackjack pays x2.5, ties push.",
	games.KindGamble:    "One spin of the multiplier wheel: x2, x1.5, x3, x5, x10 or nothing.",
	games.KindRPS:       "Rock, paper or scissors against the house. Wins pay x2, ties return your bet.",
	games.KindCrash:     "Pick a cashout target between 1.1x and 50x. You win your bet times the target if the game crashes after it.",
}

func respondWithGameHelp(s *discordgo.Session, i *discordgo.InteractionCreate, kind games.Kind) {
	help, ok := gameHelp[kind]
	if !ok {
		common.RespondWithError(s, i, "Unknown game.")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       strings.ToUpper(string(kind)[:1]) + string(kind)[1:],
		Description: help,
		Color:       common.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Minimum bet",
				Value:  utils.FormatShortNotation(games.MinBets[kind]),
				Inline: true,
			},
		},
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error responding with %s help: %v", kind, err)
	}
}
