package services

import (
	"context"
	"fmt"
	"time"

	"casino/domain/entities"
	"casino/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

type cooldownService struct {
	cooldownRepo interfaces.CooldownRepository
	now          func() time.Time
}

// NewCooldownService creates a cooldown gate backed by the given repository
func NewCooldownService(cooldownRepo interfaces.CooldownRepository) interfaces.CooldownGate {
	return &cooldownService{
		cooldownRepo: cooldownRepo,
		now:          time.Now,
	}
}

func (s *cooldownService) Remaining(ctx context.Context, userID int64, action entities.ActionKind) (time.Duration, error) {
	cooldown, err := s.cooldownRepo.Get(ctx, userID, action)
	if err != nil {
		return 0, fmt.Errorf("failed to get cooldown for %s: %w", action, err)
	}
	if cooldown == nil {
		return 0, nil
	}

	now := s.now()
	if cooldown.Expired(now) {
		// Lazy purge; the record is already treated as absent.
		if err := s.cooldownRepo.Delete(ctx, userID, action); err != nil {
			log.Warnf("Failed to purge expired cooldown for user %d action %s: %v", userID, action, err)
		}
		return 0, nil
	}
	return cooldown.Remaining(now), nil
}

func (s *cooldownService) CheckAvailable(ctx context.Context, userID int64, action entities.ActionKind) error {
	remaining, err := s.Remaining(ctx, userID, action)
	if err != nil {
		return err
	}
	if remaining > 0 {
		return &entities.OnCooldownError{Action: action, Remaining: remaining}
	}
	return nil
}

func (s *cooldownService) Arm(ctx context.Context, userID int64, action entities.ActionKind) error {
	duration, ok := entities.CooldownDurations[action]
	if !ok {
		return fmt.Errorf("no cooldown duration configured for action %s", action)
	}

	cooldown := &entities.Cooldown{
		UserID:    userID,
		Action:    action,
		ExpiresAt: s.now().Add(duration),
	}
	if err := s.cooldownRepo.Set(ctx, cooldown); err != nil {
		return fmt.Errorf("failed to arm cooldown for %s: %w", action, err)
	}
	return nil
}
