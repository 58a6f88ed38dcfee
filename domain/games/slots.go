package games

import (
	"fmt"
	"math/rand"
	"strings"
)

// slotSymbol pairs a reel symbol with its draw weight and three-of-a-kind
// payout multiplier.
type slotSymbol struct {
	symbol string
	weight int
	payout float64
}

// Rarer symbols carry lower weights and higher payouts.
var slotSymbols = []slotSymbol{
	{"🍒", 25, 2},
	{"🍋", 20, 3},
	{"🍊", 15, 4},
	{"🍇", 12, 5},
	{"🔔", 8, 8},
	{"⭐", 5, 12},
	{"💎", 3, 20},
	{"🎰", 1, 50},
}

const pairPayoutFactor = 0.3

func totalSlotWeight() int {
	total := 0
	for _, s := range slotSymbols {
		total += s.weight
	}
	return total
}

func symbolPayout(symbol string) float64 {
	for _, s := range slotSymbols {
		if s.symbol == symbol {
			return s.payout
		}
	}
	return 0
}

// spinReels draws three independent symbols from the weighted set
func spinReels(rng *rand.Rand) [3]string {
	total := totalSlotWeight()
	var reels [3]string
	for i := range reels {
		draw := rng.Intn(total)
		for _, s := range slotSymbols {
			draw -= s.weight
			if draw < 0 {
				reels[i] = s.symbol
				break
			}
		}
	}
	return reels
}

// scoreReels evaluates a spin. Evaluation order is strict: three of a kind,
// then exactly two of a kind at 30% of the pair symbol's payout, then the
// flat special sets for three distinct symbols.
func scoreReels(reels [3]string) (multiplier float64, winType string) {
	counts := map[string]int{}
	for _, s := range reels {
		counts[s]++
	}

	switch len(counts) {
	case 1:
		return symbolPayout(reels[0]), fmt.Sprintf("three %s", reels[0])
	case 2:
		for symbol, n := range counts {
			if n == 2 {
				return symbolPayout(symbol) * pairPayoutFactor, fmt.Sprintf("pair of %s", symbol)
			}
		}
	case 3:
		if counts["🍒"]+counts["🍋"]+counts["🍊"] == 3 {
			return 5, "fruit combo"
		}
		if counts["🔔"]+counts["⭐"]+counts["💎"] == 3 {
			return 15, "premium combo"
		}
	}
	return 0, ""
}

// PlaySlots spins the three-reel machine
func PlaySlots(bet int64, rng *rand.Rand) (*Outcome, error) {
	reels := spinReels(rng)
	multiplier, winType := scoreReels(reels)

	detail := strings.Join(reels[:], " ")
	if winType != "" {
		detail = fmt.Sprintf("%s — %s", detail, winType)
	}

	if multiplier <= 0 {
		return &Outcome{Detail: detail}, nil
	}
	return &Outcome{
		Won:        true,
		Payout:     int64(float64(bet) * multiplier),
		Multiplier: multiplier,
		Detail:     detail,
	}, nil
}
