package calculator

import "github.com/mmynk/agencydesk/internal/models"

// HourlyBreakEvenRate is the hourly rate at which billed capacity exactly
// covers fixed costs. It is 0 when there is no capacity. The result is not
// rounded; round once where it is shown or priced.
func HourlyBreakEvenRate(totalFixedCosts int64, capacityHours float64) float64 {
	if capacityHours <= 0 {
		return 0
	}
	return float64(totalFixedCosts) / capacityHours
}

// CurvePoint is one sample of the break-even chart.
type CurvePoint struct {
	Hours   int64 `json:"hours"`
	Revenue int64 `json:"revenue"`
	Costs   int64 `json:"costs"`
	Fixed   int64 `json:"fixed"`
}

// AveragePricePerHour is the mean of price/hours over services with
// positive hours. Without any such service it falls back to 1.5 times the
// BEP rate.
func AveragePricePerHour(services []models.Service, bepRate float64) float64 {
	var sum float64
	var n int
	for _, s := range services {
		if s.Hours <= 0 {
			continue
		}
		sum += float64(s.Price) / s.Hours
		n++
	}
	if n == 0 {
		return bepRate * 1.5
	}
	return sum / float64(n)
}

// BreakEvenCurve samples revenue against total cost from zero hours to full
// capacity in the given number of steps. Variable costs are spread per hour
// of capacity.
func BreakEvenCurve(totalFixed, totalVariable int64, capacityHours, pricePerHour float64, steps int) []CurvePoint {
	if steps <= 0 || capacityHours <= 0 {
		return nil
	}

	variablePerHour := float64(totalVariable) / capacityHours
	points := make([]CurvePoint, 0, steps+1)
	for i := 0; i <= steps; i++ {
		hours := capacityHours / float64(steps) * float64(i)
		points = append(points, CurvePoint{
			Hours:   Round(hours),
			Revenue: Round(hours * pricePerHour),
			Costs:   Round(float64(totalFixed) + hours*variablePerHour),
			Fixed:   totalFixed,
		})
	}
	return points
}
