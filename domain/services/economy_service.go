package services

import (
	"context"
	"fmt"

	"casino/config"
	"casino/domain/entities"
	"casino/domain/interfaces"
	"casino/domain/utils"
)

type economyService struct {
	accountRepo interfaces.AccountRepository
	txRepo      interfaces.TransactionRepository
}

// NewEconomyService creates a new economy service
func NewEconomyService(accountRepo interfaces.AccountRepository, txRepo interfaces.TransactionRepository) interfaces.EconomyService {
	return &economyService{
		accountRepo: accountRepo,
		txRepo:      txRepo,
	}
}

func (s *economyService) GetBalance(ctx context.Context, userID int64) (*entities.Account, error) {
	account, err := s.accountRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account for user %d: %w", userID, err)
	}
	return account, nil
}

// Transfer moves cash between two accounts as an atomic debit-then-credit.
// If the debit fails the credit never happens; both repositories share the
// caller's transaction so no partial transfer is ever observable.
func (s *economyService) Transfer(ctx context.Context, fromUserID, toUserID, amount int64) error {
	if fromUserID == toUserID {
		return entities.NewValidationError("cannot transfer to yourself")
	}
	if amount <= 0 {
		return entities.NewValidationError("transfer amount must be positive")
	}
	if max := config.Get().MaxTransferAmount; amount > max {
		return &entities.LimitExceededError{
			Reason: fmt.Sprintf("transfers are capped at %s", utils.FormatShortNotation(max)),
		}
	}

	// Ensure both accounts exist before any mutation
	if _, err := s.accountRepo.GetOrCreate(ctx, fromUserID); err != nil {
		return fmt.Errorf("failed to get sender account: %w", err)
	}
	if _, err := s.accountRepo.GetOrCreate(ctx, toUserID); err != nil {
		return fmt.Errorf("failed to get recipient account: %w", err)
	}

	if _, err := s.accountRepo.AdjustBalance(ctx, fromUserID, entities.CurrencyCash, -amount); err != nil {
		return err
	}
	if _, err := s.accountRepo.AdjustBalance(ctx, toUserID, entities.CurrencyCash, amount); err != nil {
		return fmt.Errorf("failed to credit recipient: %w", err)
	}

	out := entities.NewTransaction(fromUserID, entities.TransactionTypeTransferOut, entities.CurrencyCash, amount, fmt.Sprintf("transfer to user %d", toUserID))
	if err := s.txRepo.Record(ctx, out); err != nil {
		return fmt.Errorf("failed to record outgoing transfer: %w", err)
	}
	in := entities.NewTransaction(toUserID, entities.TransactionTypeTransferIn, entities.CurrencyCash, amount, fmt.Sprintf("transfer from user %d", fromUserID))
	if err := s.txRepo.Record(ctx, in); err != nil {
		return fmt.Errorf("failed to record incoming transfer: %w", err)
	}
	return nil
}

func (s *economyService) Leaderboard(ctx context.Context, metric entities.LeaderboardMetric, limit int) ([]*entities.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	entries, err := s.accountRepo.Leaderboard(ctx, metric, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard by %s: %w", metric, err)
	}
	return entries, nil
}

func (s *economyService) History(ctx context.Context, userID int64, limit int) ([]*entities.Transaction, error) {
	if limit <= 0 {
		limit = 10
	}
	history, err := s.txRepo.GetRecent(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction history: %w", err)
	}
	return history, nil
}

func (s *economyService) AdminCredit(ctx context.Context, userID int64, currency entities.CurrencyKind, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, entities.NewValidationError("credit amount must be positive")
	}
	if _, err := s.accountRepo.GetOrCreate(ctx, userID); err != nil {
		return 0, fmt.Errorf("failed to get account: %w", err)
	}
	newBalance, err := s.accountRepo.AdjustBalance(ctx, userID, currency, amount)
	if err != nil {
		return 0, err
	}
	tx := entities.NewTransaction(userID, entities.TransactionTypeAdminGift, currency, amount, "administrative credit")
	if err := s.txRepo.Record(ctx, tx); err != nil {
		return 0, fmt.Errorf("failed to record admin credit: %w", err)
	}
	return newBalance, nil
}

func (s *economyService) AdminDebit(ctx context.Context, userID int64, currency entities.CurrencyKind, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, entities.NewValidationError("debit amount must be positive")
	}
	if _, err := s.accountRepo.GetOrCreate(ctx, userID); err != nil {
		return 0, fmt.Errorf("failed to get account: %w", err)
	}
	newBalance, err := s.accountRepo.AdjustBalance(ctx, userID, currency, -amount)
	if err != nil {
		return 0, err
	}
	tx := entities.NewTransaction(userID, entities.TransactionTypeAdminDeduct, currency, amount, "administrative deduction")
	if err := s.txRepo.Record(ctx, tx); err != nil {
		return 0, fmt.Errorf("failed to record admin debit: %w", err)
	}
	return newBalance, nil
}

func (s *economyService) ResetAccount(ctx context.Context, userID int64) error {
	account, err := s.accountRepo.GetByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		return entities.ErrNotFound
	}
	if err := s.accountRepo.Reset(ctx, userID); err != nil {
		return fmt.Errorf("failed to reset account for user %d: %w", userID, err)
	}
	return nil
}

func (s *economyService) GuildStats(ctx context.Context) (*entities.GuildTotals, error) {
	totals, err := s.accountRepo.GuildTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild totals: %w", err)
	}
	return totals, nil
}
