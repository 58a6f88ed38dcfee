package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"casino/domain/entities"
	"casino/domain/interfaces"
)

// dailyStreakGrace is how long after a claim becomes available the streak
// survives before resetting to 1.
const dailyStreakGrace = 48 * time.Hour

type rewardService struct {
	accountRepo   interfaces.AccountRepository
	txRepo        interfaces.TransactionRepository
	inventoryRepo interfaces.InventoryRepository
	rng           *rand.Rand
	now           func() time.Time
}

// NewRewardService creates the time-gated reward calculator. A nil rng
// falls back to a time-seeded source.
func NewRewardService(
	accountRepo interfaces.AccountRepository,
	txRepo interfaces.TransactionRepository,
	inventoryRepo interfaces.InventoryRepository,
	rng *rand.Rand,
) interfaces.RewardService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &rewardService{
		accountRepo:   accountRepo,
		txRepo:        txRepo,
		inventoryRepo: inventoryRepo,
		rng:           rng,
		now:           time.Now,
	}
}

func (s *rewardService) Claim(ctx context.Context, userID int64, kind entities.RewardKind) (*entities.RewardGrant, error) {
	window, ok := entities.RewardWindows[kind]
	if !ok {
		return nil, entities.NewValidationError("unknown reward kind %q", kind)
	}

	account, err := s.accountRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	// Lock the account row before the window check so concurrent claims
	// serialize and the second one sees the first one's timestamp.
	if account, err = s.accountRepo.GetByUserForUpdate(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}

	now := s.now()
	if last := account.LastClaim(kind); last != nil {
		if elapsed := now.Sub(*last); elapsed < window {
			return nil, &entities.OnCooldownError{
				Action:    entities.ActionKind(kind),
				Remaining: window - elapsed,
			}
		}
	}

	var grant *entities.RewardGrant
	switch kind {
	case entities.RewardDaily:
		grant = s.computeDaily(account, now)
	case entities.RewardWeekly:
		grant = s.computeWeekly(account)
	case entities.RewardMonthly:
		grant = s.computeMonthly(account)
	case entities.RewardWork:
		grant = s.computeWork(account)
	}

	// Credit, premium bonus, item drop and the last-claim timestamp all
	// commit inside the caller's transaction: a claim can never succeed
	// without its timestamp moving, or vice versa.
	newBalance, err := s.accountRepo.AdjustBalance(ctx, userID, entities.CurrencyCash, grant.Total)
	if err != nil {
		return nil, fmt.Errorf("failed to credit %s reward: %w", kind, err)
	}
	grant.NewBalance = newBalance

	tx := entities.NewTransaction(userID, entities.TransactionTypeCredit, entities.CurrencyCash, grant.Total, fmt.Sprintf("%s reward", kind))
	if err := s.txRepo.Record(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to record %s reward: %w", kind, err)
	}

	if grant.Premium > 0 {
		if _, err := s.accountRepo.AdjustBalance(ctx, userID, entities.CurrencyPremium, grant.Premium); err != nil {
			return nil, fmt.Errorf("failed to credit premium bonus: %w", err)
		}
		premiumTx := entities.NewTransaction(userID, entities.TransactionTypeCredit, entities.CurrencyPremium, grant.Premium, fmt.Sprintf("%s reward bonus", kind))
		if err := s.txRepo.Record(ctx, premiumTx); err != nil {
			return nil, fmt.Errorf("failed to record premium bonus: %w", err)
		}
	}

	if grant.BonusItem != "" {
		if _, err := s.inventoryRepo.AdjustQuantity(ctx, userID, grant.BonusItem, 1); err != nil {
			return nil, fmt.Errorf("failed to grant bonus item %s: %w", grant.BonusItem, err)
		}
	}

	if err := s.accountRepo.SetLastClaim(ctx, userID, kind, now, grant.Streak); err != nil {
		return nil, fmt.Errorf("failed to update %s claim timestamp: %w", kind, err)
	}

	return grant, nil
}

// computeDaily: base 100, level bonus, streak bonus capped at 500 and a
// small random extra. 5% chance of a 1-5 premium drop. The streak continues
// when the claim lands within the grace window of the previous one.
func (s *rewardService) computeDaily(account *entities.Account, now time.Time) *entities.RewardGrant {
	streak := 1
	if account.LastDaily != nil && now.Sub(*account.LastDaily) <= dailyStreakGrace {
		streak = account.DailyStreak + 1
	}

	streakBonus := int64(streak) * 25
	if streakBonus > 500 {
		streakBonus = 500
	}

	grant := &entities.RewardGrant{
		Kind:        entities.RewardDaily,
		Base:        100,
		LevelBonus:  int64(account.Level) * 10,
		ExtraBonus:  streakBonus,
		RandomBonus: int64(s.rng.Intn(51)),
		Streak:      streak,
	}
	if s.rng.Float64() < 0.05 {
		grant.Premium = int64(s.rng.Intn(5)) + 1
	}
	grant.Total = grant.Base + grant.LevelBonus + grant.ExtraBonus + grant.RandomBonus
	return grant
}

// computeWeekly: base 1000, level bonus, games-played bonus capped at 2000,
// guaranteed 5-15 premium.
func (s *rewardService) computeWeekly(account *entities.Account) *entities.RewardGrant {
	gamesBonus := account.GamesPlayed * 5
	if gamesBonus > 2000 {
		gamesBonus = 2000
	}

	grant := &entities.RewardGrant{
		Kind:       entities.RewardWeekly,
		Base:       1000,
		LevelBonus: int64(account.Level) * 50,
		ExtraBonus: gamesBonus,
		Premium:    int64(s.rng.Intn(11)) + 5,
	}
	grant.Total = grant.Base + grant.LevelBonus + grant.ExtraBonus
	return grant
}

// computeMonthly: base 5000, level bonus, prestige bonus, guaranteed 25-50
// premium and a 30% chance of a bonus catalogue item.
func (s *rewardService) computeMonthly(account *entities.Account) *entities.RewardGrant {
	grant := &entities.RewardGrant{
		Kind:       entities.RewardMonthly,
		Base:       5000,
		LevelBonus: int64(account.Level) * 200,
		ExtraBonus: int64(account.Prestige) * 1000,
		Premium:    int64(s.rng.Intn(26)) + 25,
	}
	if s.rng.Float64() < 0.3 {
		grant.BonusItem = entities.MonthlyBonusItems[s.rng.Intn(len(entities.MonthlyBonusItems))]
	}
	grant.Total = grant.Base + grant.LevelBonus + grant.ExtraBonus
	return grant
}

// computeWork: a random job from the static table plus a level bonus, with
// a 10% chance of a small tip on top.
func (s *rewardService) computeWork(account *entities.Account) *entities.RewardGrant {
	job := entities.WorkJobs[s.rng.Intn(len(entities.WorkJobs))]
	base := job.Min + int64(s.rng.Intn(int(job.Max-job.Min)+1))

	grant := &entities.RewardGrant{
		Kind:       entities.RewardWork,
		Base:       base,
		LevelBonus: int64(account.Level) * 5,
		Job:        job.Name,
	}
	if s.rng.Float64() < 0.1 {
		grant.RandomBonus = int64(s.rng.Intn(151)) + 50
	}
	grant.Total = grant.Base + grant.LevelBonus + grant.RandomBonus
	return grant
}
