package calculator

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round rounds a full-precision amount to whole currency units, half away
// from zero. NaN and infinities round to 0.
func Round(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(0).IntPart()
}
