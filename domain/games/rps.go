package games

import (
	"fmt"
	"math/rand"
	"strings"

	"casino/domain/entities"
)

var rpsChoices = []string{"rock", "paper", "scissors"}

// beats maps each choice to the choice it defeats
var beats = map[string]string{
	"rock":     "scissors",
	"paper":    "rock",
	"scissors": "paper",
}

// PlayRPS plays rock-paper-scissors against a uniformly random opponent.
// A tie returns the stake as the payout without counting as a win or loss.
func PlayRPS(bet int64, selection string, rng *rand.Rand) (*Outcome, error) {
	var choice string
	switch strings.ToLower(strings.TrimSpace(selection)) {
	case "rock", "r":
		choice = "rock"
	case "paper", "p":
		choice = "paper"
	case "scissors", "s":
		choice = "scissors"
	default:
		return nil, entities.NewValidationError("invalid selection %q: use rock, paper, scissors, r, p or s", selection)
	}

	opponent := rpsChoices[rng.Intn(len(rpsChoices))]
	detail := fmt.Sprintf("%s vs %s", choice, opponent)

	switch {
	case choice == opponent:
		return &Outcome{Push: true, Payout: bet, Multiplier: 1, Detail: "tie — " + detail}, nil
	case beats[choice] == opponent:
		return &Outcome{Won: true, Payout: bet * 2, Multiplier: 2, Detail: detail}, nil
	default:
		return &Outcome{Detail: detail}, nil
	}
}
