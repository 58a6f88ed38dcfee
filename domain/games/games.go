// Package games contains the pure outcome generators for every chance-based
// game. Generators never touch persistence: they map an already-validated
// bet plus player parameters and a random source to an Outcome, and are
// fully reproducible for a fixed rand seed.
package games

import (
	"math/rand"
	"strconv"
	"strings"

	"casino/domain/entities"
)

// Kind identifies a game
type Kind string

const (
	KindCoinflip  Kind = "coinflip"
	KindDice      Kind = "dice"
	KindSlots     Kind = "slots"
	KindBlackjack Kind = "blackjack"
	KindGamble    Kind = "gamble"
	KindRPS       Kind = "rps"
	KindCrash     Kind = "crash"
)

// MinBets is the minimum wager per game
var MinBets = map[Kind]int64{
	KindCoinflip:  1,
	KindDice:      1,
	KindSlots:     5,
	KindBlackjack: 10,
	KindGamble:    1,
	KindRPS:       1,
	KindCrash:     10,
}

// Action returns the cooldown action kind gating this game
func (k Kind) Action() entities.ActionKind {
	switch k {
	case KindCoinflip:
		return entities.ActionCoinflip
	case KindDice:
		return entities.ActionDice
	case KindSlots:
		return entities.ActionSlots
	case KindBlackjack:
		return entities.ActionBlackjack
	case KindGamble:
		return entities.ActionGamble
	case KindRPS:
		return entities.ActionRPS
	case KindCrash:
		return entities.ActionCrash
	}
	return entities.ActionKind(k)
}

// Valid reports whether k names a known game
func (k Kind) Valid() bool {
	_, ok := MinBets[k]
	return ok
}

// Params carries the player-supplied inputs a game may need
type Params struct {
	Prediction string  // coinflip heads/tails, dice prediction, rps selection
	SingleDie  bool    // dice variant: one die instead of two
	Cashout    float64 // crash cashout target
}

// Outcome is the settled result of one game round. Payout is the total
// return including the returned stake on a push, never the net profit.
type Outcome struct {
	Won        bool
	Push       bool
	Payout     int64
	Multiplier float64
	Detail     string
}

// ValidateParams checks player-supplied parameters without drawing any
// randomness, so callers can reject bad input before reserving funds.
func ValidateParams(kind Kind, p Params) error {
	switch kind {
	case KindCoinflip:
		switch strings.ToLower(strings.TrimSpace(p.Prediction)) {
		case "heads", "h", "tails", "t":
			return nil
		}
		return entities.NewValidationError("invalid prediction %q: use heads, tails, h or t", p.Prediction)
	case KindDice:
		prediction := strings.ToLower(strings.TrimSpace(p.Prediction))
		if p.SingleDie {
			switch prediction {
			case "high", "hi", "low", "lo":
				return nil
			}
			if n, err := strconv.Atoi(prediction); err == nil && n >= 1 && n <= 6 {
				return nil
			}
			return entities.NewValidationError("invalid prediction %q: use high, low or a number 1-6", p.Prediction)
		}
		switch prediction {
		case "high", "low", "lucky7":
			return nil
		}
		if n, err := strconv.Atoi(prediction); err == nil && n >= 2 && n <= 12 {
			return nil
		}
		return entities.NewValidationError("invalid prediction %q: use high, low, lucky7 or a number 2-12", p.Prediction)
	case KindRPS:
		switch strings.ToLower(strings.TrimSpace(p.Prediction)) {
		case "rock", "paper", "scissors", "r", "p", "s":
			return nil
		}
		return entities.NewValidationError("invalid selection %q: use rock, paper, scissors, r, p or s", p.Prediction)
	case KindCrash:
		if p.Cashout < crashMinCashout || p.Cashout > crashMaxCashout {
			return entities.NewValidationError("cashout multiplier must be between %.1f and %.1f", crashMinCashout, crashMaxCashout)
		}
	}
	return nil
}

// Play dispatches to the generator for the requested game. The bet is
// assumed to be validated and already reserved by the caller.
func Play(kind Kind, bet int64, p Params, rng *rand.Rand) (*Outcome, error) {
	switch kind {
	case KindCoinflip:
		return PlayCoinflip(bet, p.Prediction, rng)
	case KindDice:
		if p.SingleDie {
			return PlaySingleDice(bet, p.Prediction, rng)
		}
		return PlayDice(bet, p.Prediction, rng)
	case KindSlots:
		return PlaySlots(bet, rng)
	case KindBlackjack:
		return PlayBlackjack(bet, rng)
	case KindGamble:
		return PlayGamble(bet, rng)
	case KindRPS:
		return PlayRPS(bet, p.Prediction, rng)
	case KindCrash:
		return PlayCrash(bet, p.Cashout, rng)
	}
	return nil, entities.NewValidationError("unknown game %q", kind)
}
