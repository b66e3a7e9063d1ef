package state

import (
	"context"

	"github.com/mmynk/agencydesk/internal/calculator"
	"github.com/mmynk/agencydesk/internal/models"
	"github.com/mmynk/agencydesk/internal/storage"
)

// MonthlySales returns the recorded monthly income.
func (s *State) MonthlySales() []models.MonthlySale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.snap.MonthlySales)
}

// RecordMonthlySale sets the income of one month, replacing any earlier
// figure for the same month.
func (s *State) RecordMonthlySale(ctx context.Context, sale models.MonthlySale) (models.MonthlySale, error) {
	if sale.Month < 0 || sale.Month > 11 {
		return models.MonthlySale{}, invalidf("month must be between 0 and 11, got %d", sale.Month)
	}
	if sale.Year <= 0 {
		return models.MonthlySale{}, invalidf("year is required")
	}
	if sale.Sales < 0 {
		return models.MonthlySale{}, invalidf("sales cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.MonthlySales = calculator.UpsertMonthlySale(s.snap.MonthlySales, sale)
	s.commit(ctx, storage.KeyMonthlySales)
	return sale, nil
}

// CashFlow is the twelve-month cash flow of year against today's ledger.
func (s *State) CashFlow(year int) []calculator.CashFlowMonth {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return calculator.CashFlow(s.snap.MonthlySales, year, calculator.TotalCosts(s.snap.Costs))
}

// CurrentYear is the calendar year of the state clock.
func (s *State) CurrentYear() int {
	return s.now().Year()
}
