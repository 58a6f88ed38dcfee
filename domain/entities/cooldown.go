package entities

import "time"

// ActionKind identifies a cooldown-gated action
type ActionKind string

const (
	ActionDaily     ActionKind = "daily"
	ActionWeekly    ActionKind = "weekly"
	ActionMonthly   ActionKind = "monthly"
	ActionWork      ActionKind = "work"
	ActionOvertime  ActionKind = "overtime"
	ActionGamble    ActionKind = "gamble"
	ActionSlots     ActionKind = "slots"
	ActionBlackjack ActionKind = "blackjack"
	ActionCoinflip  ActionKind = "coinflip"
	ActionDice      ActionKind = "dice"
	ActionCrash     ActionKind = "crash"
	ActionRPS       ActionKind = "rps"
)

// CooldownDurations is the static configuration table mapping each gated
// action to its availability window. Durations are not derived from account
// state.
var CooldownDurations = map[ActionKind]time.Duration{
	ActionDaily:     24 * time.Hour,
	ActionWeekly:    7 * 24 * time.Hour,
	ActionMonthly:   30 * 24 * time.Hour,
	ActionWork:      4 * time.Hour,
	ActionOvertime:  8 * time.Hour,
	ActionGamble:    60 * time.Second,
	ActionSlots:     30 * time.Second,
	ActionBlackjack: 45 * time.Second,
	ActionCoinflip:  15 * time.Second,
	ActionDice:      20 * time.Second,
	ActionCrash:     60 * time.Second,
	ActionRPS:       30 * time.Second,
}

// Cooldown records when a gated action next becomes available for a user
type Cooldown struct {
	UserID    int64      `db:"user_id"`
	GuildID   int64      `db:"guild_id"`
	Action    ActionKind `db:"action"`
	ExpiresAt time.Time  `db:"expires_at"`
}

// Expired reports whether the cooldown window has elapsed at the given time
func (c *Cooldown) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// Remaining returns the time left until the cooldown expires, or zero if
// it has already elapsed.
func (c *Cooldown) Remaining(now time.Time) time.Duration {
	if c.Expired(now) {
		return 0
	}
	return c.ExpiresAt.Sub(now)
}
