package games

import (
	"math/rand"
	"testing"

	"casino/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayRPS_OutcomeGrid(t *testing.T) {
	for seed := int64(0); seed < 60; seed++ {
		opponent := rpsChoices[rand.New(rand.NewSource(seed)).Intn(len(rpsChoices))]

		for _, choice := range rpsChoices {
			outcome, err := PlayRPS(100, choice, rand.New(rand.NewSource(seed)))
			require.NoError(t, err)

			switch {
			case choice == opponent:
				assert.True(t, outcome.Push, "%s vs %s", choice, opponent)
				assert.Equal(t, int64(100), outcome.Payout, "tie returns the stake")
			case beats[choice] == opponent:
				assert.True(t, outcome.Won, "%s vs %s", choice, opponent)
				assert.Equal(t, int64(200), outcome.Payout)
			default:
				assert.False(t, outcome.Won)
				assert.False(t, outcome.Push)
				assert.Zero(t, outcome.Payout)
			}
		}
	}
}

func TestPlayRPS_ShorthandSelections(t *testing.T) {
	for _, pair := range [][2]string{{"r", "rock"}, {"p", "paper"}, {"s", "scissors"}} {
		short, err := PlayRPS(100, pair[0], rand.New(rand.NewSource(5)))
		require.NoError(t, err)
		full, err := PlayRPS(100, pair[1], rand.New(rand.NewSource(5)))
		require.NoError(t, err)
		assert.Equal(t, full, short)
	}
}

func TestPlayRPS_InvalidSelection(t *testing.T) {
	_, err := PlayRPS(100, "lizard", rand.New(rand.NewSource(1)))
	require.Error(t, err)
	assert.True(t, entities.IsValidation(err))
}
