package stats

import (
	"casino/application"

	"github.com/bwmarrin/discordgo"
)

// Feature handles the per-user statistics display
type Feature struct {
	uowFactory application.UnitOfWorkFactory
}

func New(uowFactory application.UnitOfWorkFactory) *Feature {
	return &Feature{
		uowFactory: uowFactory,
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleStats(s, i)
}
