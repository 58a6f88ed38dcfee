package entities

// ShopItem describes a purchasable catalogue entry. The catalogue is static:
// loaded once at startup and never mutated at runtime.
type ShopItem struct {
	ItemID      string
	Name        string
	Description string
	Price       int64
	Currency    CurrencyKind
	MaxQuantity int // -1 = unlimited
	Category    string
}

// SellPrice returns the refund for selling one unit back to the shop
func (si *ShopItem) SellPrice() int64 {
	return si.Price / 2
}

// Unlimited reports whether the item has no ownership cap
func (si *ShopItem) Unlimited() bool {
	return si.MaxQuantity < 0
}

// ShopCatalogue is the static item catalogue, keyed by item ID
var ShopCatalogue = map[string]*ShopItem{
	"luck_boost": {
		ItemID:      "luck_boost",
		Name:        "Luck Boost",
		Description: "Increases your luck for the next 10 games",
		Price:       500,
		Currency:    CurrencyCash,
		MaxQuantity: 5,
		Category:    "boosts",
	},
	"double_xp": {
		ItemID:      "double_xp",
		Name:        "Double XP",
		Description: "Doubles experience gain for 1 hour",
		Price:       1000,
		Currency:    CurrencyCash,
		MaxQuantity: 3,
		Category:    "boosts",
	},
	"daily_multiplier": {
		ItemID:      "daily_multiplier",
		Name:        "Daily Multiplier",
		Description: "Increases daily reward by 50% for 7 days",
		Price:       2000,
		Currency:    CurrencyCash,
		MaxQuantity: 1,
		Category:    "boosts",
	},
	"lotto_ticket": {
		ItemID:      "lotto_ticket",
		Name:        "Lottery Ticket",
		Description: "Enter the weekly lottery draw",
		Price:       100,
		Currency:    CurrencyCash,
		MaxQuantity: 50,
		Category:    "tickets",
	},
	"protection": {
		ItemID:      "protection",
		Name:        "Loss Protection",
		Description: "Protects against the next loss",
		Price:       1500,
		Currency:    CurrencyCash,
		MaxQuantity: 1,
		Category:    "protection",
	},
}

// InventoryEntry records how many of one catalogue item a user owns.
// Entries are deleted when quantity reaches zero.
type InventoryEntry struct {
	UserID   int64  `db:"user_id"`
	GuildID  int64  `db:"guild_id"`
	ItemID   string `db:"item_id"`
	Quantity int64  `db:"quantity"`
}
