package calculator

import "github.com/mmynk/agencydesk/internal/models"

// MonthNames are the short Spanish month labels, January first.
var MonthNames = [12]string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}

// CashFlowMonth is one month of the yearly cash flow series.
type CashFlowMonth struct {
	Month    int    `json:"month"`
	Label    string `json:"label"`
	Income   int64  `json:"income"`
	Expenses int64  `json:"expenses"`
	Profit   int64  `json:"profit"`
}

// CashFlow builds twelve months for year. Income comes from the recorded
// sales (0 when a month has none) and expenses are the monthly ledger total.
func CashFlow(sales []models.MonthlySale, year int, monthlyCosts int64) []CashFlowMonth {
	var income [12]int64
	for _, s := range sales {
		if s.Year == year && s.Month >= 0 && s.Month < 12 {
			income[s.Month] = s.Sales
		}
	}

	months := make([]CashFlowMonth, 12)
	for m := range months {
		months[m] = CashFlowMonth{
			Month:    m,
			Label:    MonthNames[m],
			Income:   income[m],
			Expenses: monthlyCosts,
			Profit:   income[m] - monthlyCosts,
		}
	}
	return months
}

// UpsertMonthlySale replaces the entry for the same year and month or
// appends a new one.
func UpsertMonthlySale(sales []models.MonthlySale, sale models.MonthlySale) []models.MonthlySale {
	for i := range sales {
		if sales[i].Year == sale.Year && sales[i].Month == sale.Month {
			out := append([]models.MonthlySale(nil), sales...)
			out[i] = sale
			return out
		}
	}
	return append(append([]models.MonthlySale(nil), sales...), sale)
}
