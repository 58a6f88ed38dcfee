package shop

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"casino/application"
	"casino/bot/common"
	"casino/domain/entities"
	"casino/domain/services"
	"casino/domain/utils"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleView(s *discordgo.Session, i *discordgo.InteractionCreate) {
	items := make([]*entities.ShopItem, 0, len(entities.ShopCatalogue))
	for _, item := range entities.ShopCatalogue {
		items = append(items, item)
	}
	sort.Slice(items, func(a, b int) bool {
		if items[a].Category != items[b].Category {
			return items[a].Category < items[b].Category
		}
		return items[a].Price < items[b].Price
	})

	var sb strings.Builder
	category := ""
	for _, item := range items {
		if item.Category != category {
			category = item.Category
			sb.WriteString(fmt.Sprintf("\n**%s**\n", category))
		}
		limit := "unlimited"
		if !item.Unlimited() {
			limit = fmt.Sprintf("max %d", item.MaxQuantity)
		}
		sb.WriteString(fmt.Sprintf("`%s` — %s (%s, %s)\n%s\n",
			item.ItemID, item.Name, utils.FormatShortNotation(item.Price), limit, item.Description))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🏪 Shop",
		Description: sb.String(),
		Color:       common.ColorInfo,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Items sell back for 50% of their price",
		},
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		log.Errorf("Error responding to shop view: %v", err)
	}
}

func (f *Feature) handleBuy(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleTrade(s, i, "buy")
}

func (f *Feature) handleSell(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleTrade(s, i, "sell")
}

func (f *Feature) handleTrade(s *discordgo.Session, i *discordgo.InteractionCreate, verb string) {
	ctx := context.Background()

	sub := i.ApplicationCommandData().Options[0]
	var itemID string
	quantity := int64(1)
	for _, opt := range sub.Options {
		switch opt.Name {
		case "item":
			itemID = opt.StringValue()
		case "quantity":
			quantity = opt.IntValue()
		}
	}

	userID, guildID, err := parseIDs(i)
	if err != nil {
		log.Errorf("Error parsing interaction IDs: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	uow, err := beginUow(ctx, f.uowFactory, guildID)
	if err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	defer uow.Rollback()

	shopService := services.NewShopService(
		uow.AccountRepository(),
		uow.TransactionRepository(),
		uow.InventoryRepository(),
		uow.GuildSettingsRepository(),
	)

	var receipt *entities.ShopReceipt
	if verb == "buy" {
		receipt, err = shopService.Purchase(ctx, userID, itemID, quantity)
	} else {
		receipt, err = shopService.Sell(ctx, userID, itemID, quantity)
	}
	if err != nil {
		common.HandleServiceError(s, i, "shop "+verb, err)
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	var description string
	if verb == "buy" {
		description = fmt.Sprintf("Bought **%d× %s** for %s.", receipt.Quantity, receipt.Item.Name, utils.FormatShortNotation(receipt.Total))
	} else {
		description = fmt.Sprintf("Sold **%d× %s** for %s.", receipt.Quantity, receipt.Item.Name, utils.FormatShortNotation(receipt.Total))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🏪 Shop",
		Description: description,
		Color:       common.ColorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Balance", Value: utils.FormatShortNotation(receipt.NewBalance), Inline: true},
			{Name: "Owned", Value: strconv.FormatInt(receipt.Owned, 10), Inline: true},
		},
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		log.Errorf("Error responding to shop %s: %v", verb, err)
	}
}

func (f *Feature) handleInventory(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, guildID, err := parseIDs(i)
	if err != nil {
		log.Errorf("Error parsing interaction IDs: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	uow, err := beginUow(ctx, f.uowFactory, guildID)
	if err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	defer uow.Rollback()

	shopService := services.NewShopService(
		uow.AccountRepository(),
		uow.TransactionRepository(),
		uow.InventoryRepository(),
		uow.GuildSettingsRepository(),
	)

	entries, err := shopService.Inventory(ctx, userID)
	if err != nil {
		common.HandleServiceError(s, i, "inventory", err)
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	if len(entries) == 0 {
		common.RespondWithError(s, i, "Your inventory is empty.")
		return
	}

	var sb strings.Builder
	for _, entry := range entries {
		name := entry.ItemID
		if item, ok := entities.ShopCatalogue[entry.ItemID]; ok {
			name = item.Name
		}
		sb.WriteString(fmt.Sprintf("**%s** × %d\n", name, entry.Quantity))
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s's Inventory", i.Member.User.Username),
		Description: sb.String(),
		Color:       common.ColorInfo,
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error responding to inventory command: %v", err)
	}
}

func parseIDs(i *discordgo.InteractionCreate) (userID, guildID int64, err error) {
	userID, err = strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse user ID %s: %w", i.Member.User.ID, err)
	}
	guildID, err = strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse guild ID %s: %w", i.GuildID, err)
	}
	return userID, guildID, nil
}

func beginUow(ctx context.Context, factory application.UnitOfWorkFactory, guildID int64) (application.UnitOfWork, error) {
	uow := factory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return uow, nil
}
