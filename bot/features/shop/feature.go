package shop

import (
	"casino/application"

	"github.com/bwmarrin/discordgo"
)

// Feature handles the shop: catalogue browsing, purchases, sales, inventory
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
	case "view":
		f.handleView(s, i)
	case "buy":
		f.handleBuy(s, i)
	case "sell":
		f.handleSell(s, i)
	case "inventory":
		f.handleInventory(s, i)
	}
}
