package entities

import "time"

// GameStat tracks per-user, per-game lifetime statistics within a guild
type GameStat struct {
	UserID        int64     `db:"user_id"`
	GuildID       int64     `db:"guild_id"`
	Game          string    `db:"game"`
	PlayedCount   int64     `db:"played_count"`
	WonCount      int64     `db:"won_count"`
	TotalWagered  int64     `db:"total_wagered"`
	TotalWon      int64     `db:"total_won"`
	CurrentStreak int64     `db:"current_streak"`
	BestStreak    int64     `db:"best_streak"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// ApplyResult folds one completed wager into the stat record. A push
// increments the played count but leaves the win streak untouched.
func (gs *GameStat) ApplyResult(won, push bool, wagered, payout int64) {
	gs.PlayedCount++
	gs.TotalWagered += wagered
	gs.TotalWon += payout

	switch {
	case won:
		gs.WonCount++
		gs.CurrentStreak++
		if gs.CurrentStreak > gs.BestStreak {
			gs.BestStreak = gs.CurrentStreak
		}
	case push:
		// streak unchanged
	default:
		gs.CurrentStreak = 0
	}
}

// WinRate returns the win percentage, or 0 for an unplayed game
func (gs *GameStat) WinRate() float64 {
	if gs.PlayedCount == 0 {
		return 0
	}
	return float64(gs.WonCount) / float64(gs.PlayedCount) * 100
}
