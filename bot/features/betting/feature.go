package betting

import (
	"casino/application"

	"github.com/bwmarrin/discordgo"
)

// Feature handles the game commands: coinflip, dice, slots, blackjack,
// gamble, rps and crash.
type Feature struct {
	uowFactory application.UnitOfWorkFactory
}

func New(uowFactory application.UnitOfWorkFactory) *Feature {
	return &Feature{
		uowFactory: uowFactory,
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleBet(s, i)
}
