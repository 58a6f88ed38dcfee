package balance

import (
	"casino/application"

	"github.com/bwmarrin/discordgo"
)

// Feature handles balance display, transfers, history and leaderboards
type Feature struct {
	uowFactory application.UnitOfWorkFactory
}

func New(uowFactory application.UnitOfWorkFactory) *Feature {
	return &Feature{
		uowFactory: uowFactory,
	}
}

func (f *Feature) HandleBalance(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleBalance(s, i)
}

func (f *Feature) HandleTransfer(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleTransfer(s, i)
}

func (f *Feature) HandleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleLeaderboard(s, i)
}

func (f *Feature) HandleHistory(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleHistory(s, i)
}
