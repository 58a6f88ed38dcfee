package entities

import "time"

// RewardKind identifies a time-gated reward grant
type RewardKind string

const (
	RewardDaily   RewardKind = "daily"
	RewardWeekly  RewardKind = "weekly"
	RewardMonthly RewardKind = "monthly"
	RewardWork    RewardKind = "work"
)

// RewardWindows maps each reward kind to its claim window
var RewardWindows = map[RewardKind]time.Duration{
	RewardDaily:   24 * time.Hour,
	RewardWeekly:  7 * 24 * time.Hour,
	RewardMonthly: 30 * 24 * time.Hour,
	RewardWork:    4 * time.Hour,
}

// RewardGrant is the settled result of a successful reward claim
type RewardGrant struct {
	Kind        RewardKind
	Total       int64
	Base        int64
	LevelBonus  int64
	ExtraBonus  int64 // streak, games-played or prestige bonus depending on kind
	RandomBonus int64
	Premium     int64
	Streak      int
	Job         string // work grants only
	BonusItem   string // monthly grants only, empty when no item was drawn
	NewBalance  int64
}

// WorkJob is one entry of the random job table used by work rewards
type WorkJob struct {
	Name   string
	Min    int64
	Max    int64
	Flavor string
}

// WorkJobs is the static table of jobs a work claim draws from
var WorkJobs = []WorkJob{
	{Name: "Office Job", Min: 50, Max: 150, Flavor: "You filed some paperwork"},
	{Name: "Delivery", Min: 75, Max: 200, Flavor: "You delivered packages around town"},
	{Name: "Construction", Min: 100, Max: 250, Flavor: "You helped build something"},
	{Name: "Restaurant", Min: 60, Max: 180, Flavor: "You served customers"},
	{Name: "Freelance", Min: 25, Max: 300, Flavor: "You completed a project"},
}

// MonthlyBonusItems are the catalogue items a monthly claim may draw
var MonthlyBonusItems = []string{"luck_boost", "double_xp", "protection"}
