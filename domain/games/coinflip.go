package games

import (
	"fmt"
	"math/rand"
	"strings"

	"casino/domain/entities"
)

const coinflipMultiplier = 2.0

// PlayCoinflip flips a fair coin against the player's prediction.
// Accepts "heads"/"tails" and the single-letter shorthands "h"/"t",
// case-insensitive.
func PlayCoinflip(bet int64, prediction string, rng *rand.Rand) (*Outcome, error) {
	var side string
	switch strings.ToLower(strings.TrimSpace(prediction)) {
	case "heads", "h":
		side = "heads"
	case "tails", "t":
		side = "tails"
	default:
		return nil, entities.NewValidationError("invalid prediction %q: use heads, tails, h or t", prediction)
	}

	result := "tails"
	if rng.Intn(2) == 0 {
		result = "heads"
	}

	if side == result {
		return &Outcome{
			Won:        true,
			Payout:     bet * 2,
			Multiplier: coinflipMultiplier,
			Detail:     fmt.Sprintf("%s — you called it", result),
		}, nil
	}
	return &Outcome{
		Won:        false,
		Payout:     0,
		Multiplier: 0,
		Detail:     fmt.Sprintf("%s — you called %s", result, side),
	}, nil
}
