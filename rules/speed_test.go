package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpeedForScore(t *testing.T) {
	tests := []struct {
		score int
		speed int
	}{
		{0, InitialSpeed},
		{4, 10},
		{5, 11},
		{9, 11},
		{10, 12},
		{49, 19},
		{50, MaxSpeed},
		{51, MaxSpeed},
		{500, MaxSpeed},
	}
	for _, tc := range tests {
		require.Equal(t, tc.speed, SpeedForScore(tc.score), "score %d", tc.score)
	}
}
