package state

import (
	"strings"

	"github.com/mmynk/agencydesk/internal/calculator"
	"github.com/mmynk/agencydesk/internal/format"
	"github.com/mmynk/agencydesk/internal/models"
)

// The sanitize functions repair collections read from storage. Each returns
// the cleaned collection and how many records it had to change or drop.

func (s *State) sanitizeCosts(in []models.Cost) ([]models.Cost, int) {
	out := make([]models.Cost, 0, len(in))
	fixed := 0
	for _, c := range in {
		changed := false
		if c.ID == "" {
			c.ID, changed = s.newID(), true
		}
		if c.Amount < 0 {
			c.Amount, changed = 0, true
		}
		if !c.Type.Valid() {
			c.Type, changed = models.ParseCostType(string(c.Type)), true
		}
		if c.Category == "" {
			c.Category, changed = models.DefaultCostCategory, true
		}
		if changed {
			fixed++
		}
		out = append(out, c)
	}
	return out, fixed
}

func (s *State) sanitizeAssets(in []models.Asset) ([]models.Asset, int) {
	out := make([]models.Asset, 0, len(in))
	fixed := 0
	for _, a := range in {
		if a.UsefulLife <= 0 {
			fixed++
			continue
		}
		changed := false
		if a.ID == "" {
			a.ID, changed = s.newID(), true
		}
		if a.InitialValue < 0 {
			a.InitialValue, changed = 0, true
		}
		if changed {
			fixed++
		}
		out = append(out, a)
	}
	return out, fixed
}

func (s *State) sanitizeServices(in []models.Service) ([]models.Service, int) {
	out := make([]models.Service, 0, len(in))
	fixed := 0
	for _, svc := range in {
		changed := false
		if svc.ID == "" {
			svc.ID, changed = s.newID(), true
		}
		if svc.Hours < 0 {
			svc.Hours, changed = 0, true
		}
		if svc.Price < 0 {
			svc.Price, changed = 0, true
		}
		if changed {
			fixed++
		}
		out = append(out, svc)
	}
	return out, fixed
}

func (s *State) sanitizeClients(in []models.Client) ([]models.Client, int) {
	out := make([]models.Client, 0, len(in))
	fixed := 0
	for _, c := range in {
		if strings.TrimSpace(c.Name) == "" {
			fixed++
			continue
		}
		if c.ID == "" {
			c.ID = s.newID()
			fixed++
		}
		out = append(out, c)
	}
	return out, fixed
}

func (s *State) sanitizeQuotes(in []models.Quote) ([]models.Quote, int) {
	out := make([]models.Quote, 0, len(in))
	fixed := 0
	for _, q := range in {
		if q.ID == "" {
			fixed++
			continue
		}
		changed := false
		if !q.Status.Valid() {
			q.Status, changed = models.QuoteStatusDraft, true
		}
		q.Items = clone(q.Items)
		for i := range q.Items {
			item := &q.Items[i]
			if item.ID == "" {
				item.ID, changed = s.newID(), true
			}
			if item.Quantity < 1 {
				item.Quantity, changed = calculator.ClampQuantity(item.Quantity), true
			}
			if item.Price < 0 {
				item.Price, changed = 0, true
			}
		}
		if total := calculator.QuoteTotals(q.Items).Subtotal; total != q.Total {
			q.Total, changed = total, true
		}
		if changed {
			fixed++
		}
		out = append(out, q)
	}
	return out, fixed
}

func sanitizeMonthlySales(in []models.MonthlySale) ([]models.MonthlySale, int) {
	out := make([]models.MonthlySale, 0, len(in))
	fixed := 0
	for _, sale := range in {
		if sale.Month < 0 || sale.Month > 11 {
			fixed++
			continue
		}
		out = calculator.UpsertMonthlySale(out, sale)
	}
	// Duplicated months collapse into one entry.
	fixed += len(in) - fixed - len(out)
	return out, fixed
}

func (s *State) sanitizeTermTemplates(in []models.TermTemplate) ([]models.TermTemplate, int) {
	out := make([]models.TermTemplate, 0, len(in))
	fixed := 0
	for _, t := range in {
		if t.ID == "" {
			t.ID = s.newID()
			fixed++
		}
		out = append(out, t)
	}
	return out, fixed
}

func sanitizeSettings(in models.Settings) (models.Settings, int) {
	fixed := 0
	if in.CapacityHours < 0 {
		in.CapacityHours = 0
		fixed++
	}
	if formatted := format.RUT(in.RUT); formatted != in.RUT {
		in.RUT = formatted
		fixed++
	}
	return in, fixed
}
