package utils

import (
	"math"
	"strconv"
	"strings"

	"casino/domain/entities"
)

// ParseBetAmount resolves a raw bet string against the player's current
// balance. Supported forms: literal integers, "all"/"max", "half"/"50%",
// "quarter"/"25%", any "<n>%" from 0-100, "<n>k" (x1,000) and "<n>m"
// (x1,000,000). Anything else is a validation error.
func ParseBetAmount(input string, balance int64) (int64, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return 0, entities.NewValidationError("bet amount is required")
	}

	switch s {
	case "all", "max":
		return balance, nil
	case "half":
		return balance / 2, nil
	case "quarter":
		return balance / 4, nil
	}

	switch {
	case strings.HasSuffix(s, "%"):
		pct, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil || pct < 0 || pct > 100 {
			return 0, entities.NewValidationError("invalid percentage bet %q", input)
		}
		return int64(math.Floor(float64(balance) * pct / 100)), nil
	case strings.HasSuffix(s, "k"):
		n, err := strconv.ParseFloat(strings.TrimSuffix(s, "k"), 64)
		if err != nil {
			return 0, entities.NewValidationError("invalid bet amount %q", input)
		}
		return int64(n * 1_000), nil
	case strings.HasSuffix(s, "m"):
		n, err := strconv.ParseFloat(strings.TrimSuffix(s, "m"), 64)
		if err != nil {
			return 0, entities.NewValidationError("invalid bet amount %q", input)
		}
		return int64(n * 1_000_000), nil
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, entities.NewValidationError("invalid bet amount %q", input)
	}
	return n, nil
}
