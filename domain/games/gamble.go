package games

import (
	"fmt"
	"math/rand"
)

// gambleBucket is one outcome of the straight-gamble probability table
type gambleBucket struct {
	chance     float64
	multiplier float64
	label      string
}

// Probabilities sum to 1.0; the final bucket is the guaranteed fallback so a
// draw landing on a floating-point edge always resolves.
var gambleBuckets = []gambleBucket{
	{0.45, 2.0, "win"},
	{0.20, 1.5, "small win"},
	{0.10, 3.0, "big win"},
	{0.05, 5.0, "huge win"},
	{0.02, 10.0, "jackpot"},
	{0.18, 0.0, "loss"},
}

// PlayGamble draws a single uniform sample against the cumulative
// probability table.
func PlayGamble(bet int64, rng *rand.Rand) (*Outcome, error) {
	draw := rng.Float64()

	selected := gambleBuckets[len(gambleBuckets)-1]
	cumulative := 0.0
	for _, b := range gambleBuckets {
		cumulative += b.chance
		if draw <= cumulative {
			selected = b
			break
		}
	}

	if selected.multiplier <= 0 {
		return &Outcome{Detail: selected.label}, nil
	}
	return &Outcome{
		Won:        true,
		Payout:     int64(float64(bet) * selected.multiplier),
		Multiplier: selected.multiplier,
		Detail:     fmt.Sprintf("%s (x%.1f)", selected.label, selected.multiplier),
	}, nil
}
