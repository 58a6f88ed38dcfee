package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

func betOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "bet",
		Description: "Amount to bet (number, 'half', 'all', '25%', '10k', ...); omit to see the rules",
		Required:    false,
	}
}

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "bet",
			Description: "Play a casino game",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "coinflip",
					Description: "Flip a coin, double or nothing",
					Options: []*discordgo.ApplicationCommandOption{
						betOption(),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "prediction",
							Description: "heads or tails",
							Required:    false,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Heads", Value: "heads"},
								{Name: "Tails", Value: "tails"},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "dice",
					Description: "Roll two dice, predict the outcome",
					Options: []*discordgo.ApplicationCommandOption{
						betOption(),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "prediction",
							Description: "high, low, lucky7, or an exact total (2-12)",
							Required:    false,
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "die",
							Description: "Roll a single die instead",
							Required:    false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "slots",
					Description: "Spin the slot machine",
					Options: []*discordgo.ApplicationCommandOption{
						betOption(),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "blackjack",
					Description: "Play a quick hand of blackjack",
					Options: []*discordgo.ApplicationCommandOption{
						betOption(),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "gamble",
					Description: "Pure luck, up to 10x",
					Options: []*discordgo.ApplicationCommandOption{
						betOption(),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "rps",
					Description: "Rock, paper, scissors against the house",
					Options: []*discordgo.ApplicationCommandOption{
						betOption(),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "choice",
							Description: "rock, paper or scissors",
							Required:    false,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Rock", Value: "rock"},
								{Name: "Paper", Value: "paper"},
								{Name: "Scissors", Value: "scissors"},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "crash",
					Description: "Cash out before the multiplier crashes",
					Options: []*discordgo.ApplicationCommandOption{
						betOption(),
						{
							Type:        discordgo.ApplicationCommandOptionNumber,
							Name:        "cashout",
							Description: "Target multiplier (1.1 to 50)",
							Required:    false,
						},
					},
				},
			},
		},
		{
			Name:        "balance",
			Description: "Check your current balance",
		},
		{
			Name:        "transfer",
			Description: "Send currency to another player",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "Amount to send",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "Recipient",
					Required:    true,
				},
			},
		},
		{
			Name:        "leaderboard",
			Description: "Show the guild leaderboard",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "metric",
					Description: "What to rank by",
					Required:    false,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Cash", Value: "cash"},
						{Name: "Premium", Value: "premium"},
						{Name: "Winnings", Value: "winnings"},
						{Name: "Games Played", Value: "games"},
						{Name: "Level", Value: "level"},
					},
				},
			},
		},
		{
			Name:        "history",
			Description: "Show your recent transactions",
		},
		{
			Name:        "claim",
			Description: "Claim a time-gated reward",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "daily",
					Description: "Claim your daily reward",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "weekly",
					Description: "Claim your weekly reward",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "monthly",
					Description: "Claim your monthly reward",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "work",
					Description: "Work a random job for some cash",
				},
			},
		},
		{
			Name:        "shop",
			Description: "Browse and trade shop items",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "view",
					Description: "Browse the catalogue",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "buy",
					Description: "Buy an item",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "item",
							Description: "Item ID",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "quantity",
							Description: "How many (default 1)",
							Required:    false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "sell",
					Description: "Sell an item back for 50%",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "item",
							Description: "Item ID",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "quantity",
							Description: "How many (default 1)",
							Required:    false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "inventory",
					Description: "Show your items",
				},
			},
		},
		{
			Name:        "stats",
			Description: "Show gambling statistics",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "Another player (default: you)",
					Required:    false,
				},
			},
		},
		{
			Name:        "admin",
			Description: "Administrative economy commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "give",
					Description: "Grant currency to a player",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "amount",
							Description: "Amount to grant",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "user",
							Description: "Target player",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "currency",
							Description: "cash or premium (default cash)",
							Required:    false,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Cash", Value: "cash"},
								{Name: "Premium", Value: "premium"},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "take",
					Description: "Remove currency from a player",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "amount",
							Description: "Amount to remove",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "user",
							Description: "Target player",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "currency",
							Description: "cash or premium (default cash)",
							Required:    false,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Cash", Value: "cash"},
								{Name: "Premium", Value: "premium"},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reset",
					Description: "Reset a player's account to starting state",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "user",
							Description: "Target player",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stats",
					Description: "Show guild-wide economy totals",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "settings",
					Description: "Change guild economy settings",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "gambling",
							Description: "Enable or disable gambling",
							Required:    false,
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "shop",
							Description: "Enable or disable the shop",
							Required:    false,
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "notify_levels",
							Description: "Announce level ups",
							Required:    false,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "cash_name",
							Description: "Display name for the cash currency",
							Required:    false,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "premium_name",
							Description: "Display name for the premium currency",
							Required:    false,
						},
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "add_admin",
							Description: "Add a bot administrator",
							Required:    false,
						},
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "remove_admin",
							Description: "Remove a bot administrator",
							Required:    false,
						},
					},
				},
			},
		},
	}

	// An empty guild ID registers globally; a set one scopes to that guild
	// for instant availability during development.
	_, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.config.GuildID, commands)
	if err != nil {
		return fmt.Errorf("failed to register application commands: %w", err)
	}
	return nil
}
