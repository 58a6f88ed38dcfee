package games

import (
	"math/rand"
	"testing"

	"casino/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrashPoint_Bounds(t *testing.T) {
	assert.InDelta(t, 1.0, CrashPoint(0), 1e-9, "u=0 crashes immediately")

	for _, u := range []float64{0.1, 0.5, 0.9, 0.99, 0.999999} {
		point := CrashPoint(u)
		assert.GreaterOrEqual(t, point, 1.0)
		assert.LessOrEqual(t, point, 100.0)
	}

	// Extreme samples hit the cap
	assert.Equal(t, 100.0, CrashPoint(1-1e-300))
}

func TestCrashPoint_Monotonic(t *testing.T) {
	prev := 0.0
	for _, u := range []float64{0, 0.2, 0.4, 0.6, 0.8, 0.99} {
		point := CrashPoint(u)
		assert.Greater(t, point, prev-1e-12)
		prev = point
	}
}

func TestPlayCrash_CashoutValidation(t *testing.T) {
	for _, cashout := range []float64{0, 1.0, 1.09, 50.01, 100} {
		_, err := PlayCrash(100, cashout, rand.New(rand.NewSource(1)))
		require.Error(t, err, "cashout %v", cashout)
		assert.True(t, entities.IsValidation(err))
	}

	for _, cashout := range []float64{1.1, 2.0, 50.0} {
		_, err := PlayCrash(100, cashout, rand.New(rand.NewSource(1)))
		require.NoError(t, err, "cashout %v", cashout)
	}
}

func TestPlayCrash_WinIffCashoutAtOrBelowPoint(t *testing.T) {
	for seed := int64(0); seed < 300; seed++ {
		point := CrashPoint(rand.New(rand.NewSource(seed)).Float64())

		outcome, err := PlayCrash(100, 2.0, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		if 2.0 <= point {
			assert.True(t, outcome.Won, "seed %d point %v", seed, point)
			assert.Equal(t, int64(200), outcome.Payout)
			assert.Equal(t, 2.0, outcome.Multiplier)
		} else {
			assert.False(t, outcome.Won, "seed %d point %v", seed, point)
			assert.Zero(t, outcome.Payout)
		}
	}
}

func TestPlayCrash_PayoutUsesCashoutNotCrashPoint(t *testing.T) {
	// Find a winning seed and confirm the payout multiplies by the player's
	// target rather than the crash point.
	for seed := int64(0); seed < 300; seed++ {
		outcome, err := PlayCrash(1000, 1.5, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		if outcome.Won {
			assert.Equal(t, int64(1500), outcome.Payout)
			return
		}
	}
	t.Fatal("no winning seed found")
}
