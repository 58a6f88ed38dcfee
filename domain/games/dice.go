package games

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"casino/domain/entities"
)

// exactMultipliers is the payout table for exact-sum predictions on two dice
var exactMultipliers = map[int]float64{
	2: 35, 12: 35,
	3: 17, 11: 17,
	4: 11, 10: 11,
	5: 8, 9: 8,
	6: 6, 8: 6,
	7: 5,
}

// PlayDice rolls two dice against the player's prediction. Predictions are
// "high" (sum 8-12, x2), "low" (sum 2-6, x2), "lucky7" (exactly 7, x5) or an
// exact sum 2-12 paying per the exact-sum table.
func PlayDice(bet int64, prediction string, rng *rand.Rand) (*Outcome, error) {
	prediction = strings.ToLower(strings.TrimSpace(prediction))

	var target int
	exact := false
	switch prediction {
	case "high", "low", "lucky7":
	default:
		n, err := strconv.Atoi(prediction)
		if err != nil || n < 2 || n > 12 {
			return nil, entities.NewValidationError("invalid prediction %q: use high, low, lucky7 or a number 2-12", prediction)
		}
		target = n
		exact = true
	}

	d1 := rng.Intn(6) + 1
	d2 := rng.Intn(6) + 1
	sum := d1 + d2
	detail := fmt.Sprintf("rolled %d + %d = %d", d1, d2, sum)

	var multiplier float64
	switch {
	case prediction == "high" && sum >= 8:
		multiplier = 2
	case prediction == "low" && sum <= 6:
		multiplier = 2
	case prediction == "lucky7" && sum == 7:
		multiplier = 5
	case exact && sum == target:
		multiplier = exactMultipliers[target]
	}

	if multiplier == 0 {
		return &Outcome{Detail: detail}, nil
	}
	return &Outcome{
		Won:        true,
		Payout:     int64(float64(bet) * multiplier),
		Multiplier: multiplier,
		Detail:     detail,
	}, nil
}

// PlaySingleDice rolls one die. "high" wins on 4-6 (x2), "low" on 1-3 (x2),
// an exact number 1-6 pays x6.
func PlaySingleDice(bet int64, prediction string, rng *rand.Rand) (*Outcome, error) {
	prediction = strings.ToLower(strings.TrimSpace(prediction))

	var target int
	exact := false
	switch prediction {
	case "high", "hi", "low", "lo":
	default:
		n, err := strconv.Atoi(prediction)
		if err != nil || n < 1 || n > 6 {
			return nil, entities.NewValidationError("invalid prediction %q: use high, low or a number 1-6", prediction)
		}
		target = n
		exact = true
	}

	roll := rng.Intn(6) + 1
	detail := fmt.Sprintf("rolled %d", roll)

	var multiplier float64
	switch {
	case (prediction == "high" || prediction == "hi") && roll >= 4:
		multiplier = 2
	case (prediction == "low" || prediction == "lo") && roll <= 3:
		multiplier = 2
	case exact && roll == target:
		multiplier = 6
	}

	if multiplier == 0 {
		return &Outcome{Detail: detail}, nil
	}
	return &Outcome{
		Won:        true,
		Payout:     int64(float64(bet) * multiplier),
		Multiplier: multiplier,
		Detail:     detail,
	}, nil
}
