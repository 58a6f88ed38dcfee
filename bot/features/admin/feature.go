package admin

import (
	"casino/application"

	"github.com/bwmarrin/discordgo"
)

// Feature handles administrative commands: balance adjustments, account
// resets, guild-wide stats and settings.
type Feature struct {
	uowFactory application.UnitOfWorkFactory
}

func New(uowFactory application.UnitOfWorkFactory) *Feature {
	return &Feature{
		uowFactory: uowFactory,
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return
	}

	switch data.Options[0].Name {
	case "give":
		f.handleAdjust(s, i, true)
	case "take":
		f.handleAdjust(s, i, false)
	case "reset":
		f.handleReset(s, i)
	case "stats":
		f.handleGuildStats(s, i)
	case "settings":
		f.handleSettings(s, i)
	}
}
