package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatShortNotation(t *testing.T) {
	tests := []struct {
		value    int64
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1_000, "1.0k"},
		{2_500, "2.5k"},
		{9_999, "10.0k"},
		{10_000, "10k"},
		{50_000, "50k"},
		{999_999, "999k"},
		{1_000_000, "1.00M"},
		{2_340_000, "2.34M"},
		{1_000_000_000, "1.00B"},
		{1_500_000_000_000, "1.50T"},
		{-500, "-500"},
		{-2_500, "-2.5k"},
		{-1_000_000, "-1.00M"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatShortNotation(tt.value))
		})
	}
}

func TestFormatCooldown(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{0, "ready"},
		{-time.Minute, "ready"},
		{45 * time.Second, "45s"},
		{90 * time.Second, "1m"},
		{time.Hour + 30*time.Minute, "1h 30m"},
		{3 * time.Hour, "3h"},
		{26*time.Hour + 10*time.Minute, "1d 2h 10m"},
		{7 * 24 * time.Hour, "7d"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCooldown(tt.d))
		})
	}
}
