package games

import (
	"fmt"
	"math"
	"math/rand"

	"casino/domain/entities"
)

const (
	crashMinCashout = 1.1
	crashMaxCashout = 50.0
	crashMaxPoint   = 100.0
	crashShape      = 0.8
)

// CrashPoint maps one uniform sample to a crash multiplier. The exponential
// shape makes low crash points far more likely; the result is capped at 100x.
func CrashPoint(u float64) float64 {
	point := 1.0 + (-math.Log(1-u) * crashShape)
	return math.Min(point, crashMaxPoint)
}

// PlayCrash resolves a crash round: the player wins iff their cashout target
// is at or below the crash point, paying stake times the cashout target.
// The cashout target is validated before any randomness is drawn.
func PlayCrash(bet int64, cashout float64, rng *rand.Rand) (*Outcome, error) {
	if cashout < crashMinCashout || cashout > crashMaxCashout {
		return nil, entities.NewValidationError("cashout multiplier must be between %.1f and %.1f", crashMinCashout, crashMaxCashout)
	}

	point := CrashPoint(rng.Float64())
	detail := fmt.Sprintf("crashed at %.2fx, cashout %.2fx", point, cashout)

	if cashout <= point {
		return &Outcome{
			Won:        true,
			Payout:     int64(float64(bet) * cashout),
			Multiplier: cashout,
			Detail:     detail,
		}, nil
	}
	return &Outcome{Detail: detail}, nil
}
