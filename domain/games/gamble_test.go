package games

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGambleBuckets_ProbabilitiesSumToOne(t *testing.T) {
	total := 0.0
	for _, b := range gambleBuckets {
		total += b.chance
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestPlayGamble_MatchesBucketTable(t *testing.T) {
	for seed := int64(0); seed < 500; seed++ {
		draw := rand.New(rand.NewSource(seed)).Float64()

		expected := gambleBuckets[len(gambleBuckets)-1]
		cumulative := 0.0
		for _, b := range gambleBuckets {
			cumulative += b.chance
			if draw <= cumulative {
				expected = b
				break
			}
		}

		outcome, err := PlayGamble(100, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		if expected.multiplier > 0 {
			assert.True(t, outcome.Won, "seed %d", seed)
			assert.Equal(t, expected.multiplier, outcome.Multiplier, "seed %d", seed)
			assert.Equal(t, int64(100*expected.multiplier), outcome.Payout, "seed %d", seed)
		} else {
			assert.False(t, outcome.Won, "seed %d", seed)
			assert.Zero(t, outcome.Payout, "seed %d", seed)
		}
		assert.False(t, outcome.Push)
	}
}

func TestPlayGamble_OnlyKnownMultipliers(t *testing.T) {
	known := map[float64]bool{2.0: true, 1.5: true, 3.0: true, 5.0: true, 10.0: true, 0.0: true}

	rng := rand.New(rand.NewSource(77))
	for i := 0; i < 1000; i++ {
		outcome, err := PlayGamble(10, rng)
		require.NoError(t, err)
		assert.True(t, known[outcome.Multiplier], "unexpected multiplier %v", outcome.Multiplier)
	}
}
