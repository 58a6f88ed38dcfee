package utils

import (
	"testing"

	"casino/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBetAmount(t *testing.T) {
	const balance = 12_345

	tests := []struct {
		input    string
		expected int64
	}{
		{"500", 500},
		{"  500  ", 500},
		{"all", balance},
		{"max", balance},
		{"ALL", balance},
		{"half", balance / 2},
		{"quarter", balance / 4},
		{"50%", 6172},
		{"25%", 3086},
		{"100%", balance},
		{"0%", 0},
		{"10%", 1234},
		{"1k", 1_000},
		{"2.5k", 2_500},
		{"1m", 1_000_000},
		{"0.5m", 500_000},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			amount, err := ParseBetAmount(tt.input, balance)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, amount)
		})
	}
}

func TestParseBetAmount_Invalid(t *testing.T) {
	for _, input := range []string{"", "abc", "12x", "101%", "-5%", "%", "k", "m", "1.5.2k"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseBetAmount(input, 1000)
			require.Error(t, err)
			assert.True(t, entities.IsValidation(err))
		})
	}
}

func TestParseBetAmount_NegativeLiteralParses(t *testing.T) {
	// The parser accepts negative literals; the wager service rejects
	// non-positive bets afterwards.
	amount, err := ParseBetAmount("-50", 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(-50), amount)
}
