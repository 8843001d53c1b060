package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1.234, 1.23},
		{1.235, 1.24},
		{2.675, 2.68},
		{-1.005, -1.01},
		{33.33333, 33.33},
		{0, 0},
		{115.00000000000001, 115},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Round2(tt.in), "Round2(%v)", tt.in)
	}
}

func TestRound2NonFinite(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.True(t, math.IsInf(Round2(math.Inf(1)), 1))
		assert.True(t, math.IsInf(Round2(math.Inf(-1)), -1))
		assert.True(t, math.IsNaN(Round2(math.NaN())))
	})
}
