package rewards

import (
	"casino/application"

	"github.com/bwmarrin/discordgo"
)

// Feature handles the time-gated reward claims: daily, weekly, monthly, work
type Feature struct {
	uowFactory application.UnitOfWorkFactory
}

func New(uowFactory application.UnitOfWorkFactory) *Feature {
	return &Feature{
		uowFactory: uowFactory,
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleClaim(s, i)
}
