package calculator

import (
	"math"
	"time"

	"github.com/mmynk/agencydesk/internal/models"
)

// daysPerYear averages leap years into the elapsed-years figure.
const daysPerYear = 365.25

// YearsElapsed is the fractional number of years from purchase to now.
// It is negative for purchases dated in the future.
func YearsElapsed(purchase models.Date, now time.Time) float64 {
	days := now.Sub(purchase.Time).Hours() / 24
	return days / daysPerYear
}

// AnnualDepreciation is the straight-line yearly loss of value. Zero for an
// asset without a useful life.
func AnnualDepreciation(a models.Asset) float64 {
	if a.UsefulLife <= 0 {
		return 0
	}
	return float64(a.InitialValue) / float64(a.UsefulLife)
}

// CurrentValue is the book value of the asset at now, depreciated
// continuously to zero over its useful life. The result never leaves
// [0, InitialValue] and is rounded to whole units.
func CurrentValue(a models.Asset, now time.Time) int64 {
	return Round(currentValue(a, YearsElapsed(a.PurchaseDate, now)))
}

func currentValue(a models.Asset, years float64) float64 {
	if a.UsefulLife <= 0 {
		return 0
	}
	if years <= 0 {
		return float64(a.InitialValue)
	}
	if years >= float64(a.UsefulLife) {
		return 0
	}
	return math.Max(0, float64(a.InitialValue)-AnnualDepreciation(a)*years)
}

// MonthlyDepreciation converts the purchase into a recurring monthly fixed
// cost: initial value over useful life in months, rounded.
func MonthlyDepreciation(a models.Asset) int64 {
	if a.UsefulLife <= 0 {
		return 0
	}
	return Round(float64(a.InitialValue) / float64(a.UsefulLife*12))
}
