package entities

import "time"

// GuildSettings holds per-guild economy configuration
type GuildSettings struct {
	GuildID         int64     `db:"guild_id"`
	CashName        string    `db:"cash_name"`
	CashSymbol      string    `db:"cash_symbol"`
	PremiumName     string    `db:"premium_name"`
	PremiumSymbol   string    `db:"premium_symbol"`
	AdminIDs        []int64   `db:"admin_ids"`
	GamblingEnabled bool      `db:"gambling_enabled"`
	ShopEnabled     bool      `db:"shop_enabled"`
	NotifyLevelUps  bool      `db:"notify_level_ups"`
	CreatedAt       time.Time `db:"created_at"`
}

// DefaultGuildSettings returns the settings a guild receives on first join
func DefaultGuildSettings(guildID int64) *GuildSettings {
	return &GuildSettings{
		GuildID:         guildID,
		CashName:        "coins",
		CashSymbol:      "💰",
		PremiumName:     "gems",
		PremiumSymbol:   "💎",
		GamblingEnabled: true,
		ShopEnabled:     true,
		NotifyLevelUps:  true,
	}
}

// IsAdmin reports whether the user is in the guild's administrator set
func (gs *GuildSettings) IsAdmin(userID int64) bool {
	for _, id := range gs.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// CurrencyName returns the display name for a currency kind
func (gs *GuildSettings) CurrencyName(kind CurrencyKind) string {
	if kind == CurrencyPremium {
		return gs.PremiumName
	}
	return gs.CashName
}

// CurrencySymbol returns the display symbol for a currency kind
func (gs *GuildSettings) CurrencySymbol(kind CurrencyKind) string {
	if kind == CurrencyPremium {
		return gs.PremiumSymbol
	}
	return gs.CashSymbol
}
