// Package money holds the rounding convention shared by every monetary computation.
package money

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round2 rounds to 2 decimal places, half away from zero, on the shortest decimal form of f.
// Infinities and NaN have no decimal form and come back unchanged.
func Round2(f float64) float64 {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return f
	}
	v, _ := decimal.NewFromFloat(f).Round(2).Float64()
	return v
}
