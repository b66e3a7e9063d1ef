package calculator

// MarginTier buckets a margin percentage for display.
type MarginTier string

const (
	MarginHigh   MarginTier = "high"
	MarginMedium MarginTier = "medium"
	MarginLow    MarginTier = "low"
)

// SuggestedPrice prices a service so that marginPercent of the sale price is
// gross margin over its break-even cost:
//
//	price = round(hours × rate / (1 − margin/100))
//
// This is margin on price, not markup on cost. A margin of 100 or more has
// no valid price and returns 0; callers treat that as a configuration error.
func SuggestedPrice(hours, bepHourlyRate, marginPercent float64) int64 {
	if marginPercent >= 100 {
		return 0
	}
	baseCost := hours * bepHourlyRate
	return Round(baseCost / (1 - marginPercent/100))
}

// RealizedMargin is the margin percentage a price actually carries over the
// break-even cost of its hours. Zero for a non-positive price.
func RealizedMargin(price int64, hours, bepHourlyRate float64) float64 {
	if price <= 0 {
		return 0
	}
	return (1 - hours*bepHourlyRate/float64(price)) * 100
}

// TierForMargin returns high at 50% and above, medium at 30% and above.
func TierForMargin(marginPercent float64) MarginTier {
	switch {
	case marginPercent >= 50:
		return MarginHigh
	case marginPercent >= 30:
		return MarginMedium
	default:
		return MarginLow
	}
}
