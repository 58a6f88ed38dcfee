package services

import (
	"math"

	"casino/domain/entities"
)

// baseWagerExperience is granted for every completed wager before the
// bet-size bonus and win doubling.
const baseWagerExperience = 5

// CalculateLevel derives a level from cumulative experience:
// level = floor(sqrt(xp / 100)) + 1. Zero experience is level 1.
func CalculateLevel(experience int64) int {
	if experience <= 0 {
		return 1
	}
	return int(math.Sqrt(float64(experience)/100)) + 1
}

// ExperienceForWager computes the experience gained from one wager,
// doubled on a win.
func ExperienceForWager(bet int64, won bool) int64 {
	xp := int64(baseWagerExperience) + bet/100
	if won {
		xp *= 2
	}
	return xp
}

// ApplyExperience adds gained experience to an account and returns the
// level-up, if recomputing the level crossed a threshold. Experience only
// ever increases.
func ApplyExperience(account *entities.Account, gained int64) *entities.LevelUp {
	if gained <= 0 {
		return nil
	}
	account.Experience += gained
	newLevel := CalculateLevel(account.Experience)
	if newLevel <= account.Level {
		return nil
	}
	levelUp := &entities.LevelUp{OldLevel: account.Level, NewLevel: newLevel}
	account.Level = newLevel
	return levelUp
}
