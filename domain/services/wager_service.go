package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"casino/domain/entities"
	"casino/domain/games"
	"casino/domain/interfaces"
	"casino/domain/utils"
)

type wagerService struct {
	accountRepo  interfaces.AccountRepository
	txRepo       interfaces.TransactionRepository
	gameStatRepo interfaces.GameStatRepository
	settingsRepo interfaces.GuildSettingsRepository
	cooldownGate interfaces.CooldownGate
	rng          *rand.Rand
}

// NewWagerService creates the wager coordinator. All repositories must come
// from the same unit of work so the debit-resolve-credit sequence settles
// atomically. A nil rng falls back to a time-seeded source.
func NewWagerService(
	accountRepo interfaces.AccountRepository,
	txRepo interfaces.TransactionRepository,
	gameStatRepo interfaces.GameStatRepository,
	settingsRepo interfaces.GuildSettingsRepository,
	cooldownGate interfaces.CooldownGate,
	rng *rand.Rand,
) interfaces.WagerService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &wagerService{
		accountRepo:  accountRepo,
		txRepo:       txRepo,
		gameStatRepo: gameStatRepo,
		settingsRepo: settingsRepo,
		cooldownGate: cooldownGate,
		rng:          rng,
	}
}

func (s *wagerService) PlaceWager(ctx context.Context, userID int64, kind games.Kind, betRaw string, params games.Params) (*entities.WagerResult, error) {
	if !kind.Valid() {
		return nil, entities.NewValidationError("unknown game %q", kind)
	}

	settings, err := s.settingsRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load guild settings: %w", err)
	}
	if !settings.GamblingEnabled {
		return nil, entities.NewValidationError("gambling is disabled in this server")
	}

	// Lock the account row so concurrent wagers on the same account
	// serialize for the rest of the transaction.
	account, err := s.accountRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if account, err = s.accountRepo.GetByUserForUpdate(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}

	// Validate: bet amount, game parameters, cooldown. Nothing is mutated
	// until every check passes.
	bet, err := utils.ParseBetAmount(betRaw, account.CashBalance)
	if err != nil {
		return nil, err
	}
	if min := games.MinBets[kind]; bet < min {
		return nil, entities.NewValidationError("minimum bet for %s is %s", kind, utils.FormatShortNotation(min))
	}
	if !account.CanAfford(bet) {
		return nil, &entities.InsufficientFundsError{Currency: entities.CurrencyCash, Have: account.CashBalance, Need: bet}
	}
	if err := games.ValidateParams(kind, params); err != nil {
		return nil, err
	}
	if err := s.cooldownGate.CheckAvailable(ctx, userID, kind.Action()); err != nil {
		return nil, err
	}

	// Reserve: debit the stake. A concurrent balance change between the
	// validate read and this write surfaces here as insufficient funds.
	newBalance, err := s.accountRepo.AdjustBalance(ctx, userID, entities.CurrencyCash, -bet)
	if err != nil {
		return nil, err
	}
	debit := entities.NewTransaction(userID, entities.TransactionTypeDebit, entities.CurrencyCash, bet, fmt.Sprintf("%s wager", kind))
	if err := s.txRepo.Record(ctx, debit); err != nil {
		return nil, fmt.Errorf("failed to record wager debit: %w", err)
	}

	// Resolve
	outcome, err := games.Play(kind, bet, params, s.rng)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s outcome: %w", kind, err)
	}

	// Settle: credit the payout (total return, stake already debited) and
	// fold the result into stats and lifetime totals.
	if outcome.Payout > 0 {
		if newBalance, err = s.accountRepo.AdjustBalance(ctx, userID, entities.CurrencyCash, outcome.Payout); err != nil {
			return nil, fmt.Errorf("failed to credit payout: %w", err)
		}
		credit := entities.NewTransaction(userID, entities.TransactionTypeCredit, entities.CurrencyCash, outcome.Payout, fmt.Sprintf("%s payout", kind))
		if err := s.txRepo.Record(ctx, credit); err != nil {
			return nil, fmt.Errorf("failed to record wager payout: %w", err)
		}
	}

	stat, err := s.gameStatRepo.Get(ctx, userID, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to get game stats: %w", err)
	}
	stat.ApplyResult(outcome.Won, outcome.Push, bet, outcome.Payout)
	if err := s.gameStatRepo.Upsert(ctx, stat); err != nil {
		return nil, fmt.Errorf("failed to update game stats: %w", err)
	}
	if err := s.accountRepo.ApplyWagerTotals(ctx, userID, outcome.Won, outcome.Push, bet, outcome.Payout); err != nil {
		return nil, fmt.Errorf("failed to update lifetime totals: %w", err)
	}

	// Progress
	gained := ExperienceForWager(bet, outcome.Won)
	levelUp := ApplyExperience(account, gained)
	if err := s.accountRepo.UpdateProgress(ctx, userID, account.Experience, account.Level); err != nil {
		return nil, fmt.Errorf("failed to update progression: %w", err)
	}

	// Arm cooldown
	if err := s.cooldownGate.Arm(ctx, userID, kind.Action()); err != nil {
		return nil, fmt.Errorf("failed to arm cooldown: %w", err)
	}

	return &entities.WagerResult{
		Game:             string(kind),
		Won:              outcome.Won,
		Push:             outcome.Push,
		BetAmount:        bet,
		Payout:           outcome.Payout,
		Multiplier:       outcome.Multiplier,
		Detail:           outcome.Detail,
		NewBalance:       newBalance,
		ExperienceGained: gained,
		LevelUp:          levelUp,
	}, nil
}
