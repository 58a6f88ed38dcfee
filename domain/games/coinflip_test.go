package games

import (
	"math/rand"
	"testing"

	"casino/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayCoinflip_PredictionNormalization(t *testing.T) {
	tests := []struct {
		name       string
		prediction string
		valid      bool
	}{
		{"full heads", "heads", true},
		{"full tails", "tails", true},
		{"shorthand h", "h", true},
		{"shorthand t", "t", true},
		{"uppercase", "HEADS", true},
		{"padded", "  tails  ", true},
		{"garbage", "sideways", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			outcome, err := PlayCoinflip(100, tt.prediction, rng)
			if !tt.valid {
				require.Error(t, err)
				assert.True(t, entities.IsValidation(err))
				return
			}
			require.NoError(t, err)
			require.NotNil(t, outcome)
		})
	}
}

func TestPlayCoinflip_PayoutIsDoubleOrNothing(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		outcome, err := PlayCoinflip(100, "heads", rng)
		require.NoError(t, err)
		if outcome.Won {
			assert.Equal(t, int64(200), outcome.Payout)
			assert.Equal(t, 2.0, outcome.Multiplier)
		} else {
			assert.Equal(t, int64(0), outcome.Payout)
		}
		assert.False(t, outcome.Push)
	}
}

func TestPlayCoinflip_DeterministicForSeed(t *testing.T) {
	first, err := PlayCoinflip(50, "heads", rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	second, err := PlayCoinflip(50, "heads", rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPlayCoinflip_ShorthandMatchesFullWord(t *testing.T) {
	full, err := PlayCoinflip(100, "tails", rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	short, err := PlayCoinflip(100, "t", rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	assert.Equal(t, full.Won, short.Won)
	assert.Equal(t, full.Payout, short.Payout)
}
