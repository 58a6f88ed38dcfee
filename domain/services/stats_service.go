package services

import (
	"context"
	"fmt"

	"casino/domain/entities"
	"casino/domain/interfaces"
)

type statsService struct {
	accountRepo  interfaces.AccountRepository
	gameStatRepo interfaces.GameStatRepository
}

// NewStatsService creates a read-only stats service
func NewStatsService(accountRepo interfaces.AccountRepository, gameStatRepo interfaces.GameStatRepository) interfaces.StatsService {
	return &statsService{
		accountRepo:  accountRepo,
		gameStatRepo: gameStatRepo,
	}
}

func (s *statsService) UserStats(ctx context.Context, userID int64) (*entities.Account, []*entities.GameStat, error) {
	account, err := s.accountRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		return nil, nil, entities.ErrNotFound
	}

	stats, err := s.gameStatRepo.GetAllForUser(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get game stats: %w", err)
	}
	return account, stats, nil
}
