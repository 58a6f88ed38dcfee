package services

import (
	"context"
	"testing"
	"time"

	"casino/domain/entities"
	"casino/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCooldownService(repo *testhelpers.MockCooldownRepository, now time.Time) *cooldownService {
	return &cooldownService{
		cooldownRepo: repo,
		now:          func() time.Time { return now },
	}
}

func TestCooldownService_Remaining_NoRecord(t *testing.T) {
	repo := &testhelpers.MockCooldownRepository{}
	svc := newTestCooldownService(repo, time.Now())

	repo.On("Get", mock.Anything, int64(1), entities.ActionDaily).Return(nil, nil)

	remaining, err := svc.Remaining(context.Background(), 1, entities.ActionDaily)
	require.NoError(t, err)
	assert.Zero(t, remaining)
	repo.AssertExpectations(t)
}

func TestCooldownService_Remaining_Active(t *testing.T) {
	now := time.Now()
	repo := &testhelpers.MockCooldownRepository{}
	svc := newTestCooldownService(repo, now)

	repo.On("Get", mock.Anything, int64(1), entities.ActionSlots).Return(&entities.Cooldown{
		UserID:    1,
		Action:    entities.ActionSlots,
		ExpiresAt: now.Add(20 * time.Second),
	}, nil)

	remaining, err := svc.Remaining(context.Background(), 1, entities.ActionSlots)
	require.NoError(t, err)
	assert.Equal(t, 20*time.Second, remaining)
}

func TestCooldownService_Remaining_ExpiredPurgesLazily(t *testing.T) {
	now := time.Now()
	repo := &testhelpers.MockCooldownRepository{}
	svc := newTestCooldownService(repo, now)

	repo.On("Get", mock.Anything, int64(1), entities.ActionWork).Return(&entities.Cooldown{
		UserID:    1,
		Action:    entities.ActionWork,
		ExpiresAt: now.Add(-time.Minute),
	}, nil)
	repo.On("Delete", mock.Anything, int64(1), entities.ActionWork).Return(nil)

	remaining, err := svc.Remaining(context.Background(), 1, entities.ActionWork)
	require.NoError(t, err)
	assert.Zero(t, remaining)
	repo.AssertExpectations(t)
}

func TestCooldownService_CheckAvailable(t *testing.T) {
	now := time.Now()
	repo := &testhelpers.MockCooldownRepository{}
	svc := newTestCooldownService(repo, now)

	repo.On("Get", mock.Anything, int64(1), entities.ActionCoinflip).Return(&entities.Cooldown{
		UserID:    1,
		Action:    entities.ActionCoinflip,
		ExpiresAt: now.Add(10 * time.Second),
	}, nil)

	err := svc.CheckAvailable(context.Background(), 1, entities.ActionCoinflip)
	require.Error(t, err)

	var cooldownErr *entities.OnCooldownError
	require.ErrorAs(t, err, &cooldownErr)
	assert.Equal(t, entities.ActionCoinflip, cooldownErr.Action)
	assert.Equal(t, 10*time.Second, cooldownErr.Remaining)
}

func TestCooldownService_Arm(t *testing.T) {
	now := time.Now()
	repo := &testhelpers.MockCooldownRepository{}
	svc := newTestCooldownService(repo, now)

	repo.On("Set", mock.Anything, mock.MatchedBy(func(c *entities.Cooldown) bool {
		return c.UserID == 7 &&
			c.Action == entities.ActionDaily &&
			c.ExpiresAt.Equal(now.Add(24*time.Hour))
	})).Return(nil)

	require.NoError(t, svc.Arm(context.Background(), 7, entities.ActionDaily))
	repo.AssertExpectations(t)
}

func TestCooldownService_Arm_UnknownAction(t *testing.T) {
	repo := &testhelpers.MockCooldownRepository{}
	svc := newTestCooldownService(repo, time.Now())

	err := svc.Arm(context.Background(), 7, entities.ActionKind("juggle"))
	require.Error(t, err)
	repo.AssertNotCalled(t, "Set")
}
