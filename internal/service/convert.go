package service

import (
	"fmt"

	"github.com/mmynk/agencydesk/internal/calculator"
	"github.com/mmynk/agencydesk/internal/models"
	"github.com/mmynk/agencydesk/internal/state"
	v1 "github.com/mmynk/agencydesk/pkg/api/v1"
)

// convertAll maps every element of in, never returning nil.
func convertAll[T, U any](in []T, fn func(T) U) []U {
	out := make([]U, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

func parseDate(field, s string) (models.Date, error) {
	d, err := models.ParseDate(s)
	if err != nil {
		return models.Date{}, fmt.Errorf("%w: %s: %v", state.ErrInvalidInput, field, err)
	}
	return d, nil
}

func costToAPI(c models.Cost) v1.Cost {
	return v1.Cost{
		ID:       c.ID,
		Name:     c.Name,
		Amount:   c.Amount,
		Type:     string(c.Type),
		Category: c.Category,
		IsAsset:  c.IsAsset,
		AssetID:  c.AssetID,
	}
}

func costFromAPI(c v1.Cost) models.Cost {
	return models.Cost{
		ID:       c.ID,
		Name:     c.Name,
		Amount:   c.Amount,
		Type:     models.CostType(c.Type),
		Category: c.Category,
		IsAsset:  c.IsAsset,
		AssetID:  c.AssetID,
	}
}

func assetToAPI(a state.AssetView) v1.Asset {
	return v1.Asset{
		ID:                  a.ID,
		Name:                a.Name,
		PurchaseDate:        a.PurchaseDate.String(),
		InitialValue:        a.InitialValue,
		UsefulLife:          a.UsefulLife,
		CurrentValue:        a.CurrentValue,
		AnnualDepreciation:  a.AnnualDepreciation,
		MonthlyDepreciation: a.MonthlyDepreciation,
	}
}

func assetFromAPI(a v1.Asset) (models.Asset, error) {
	purchased, err := parseDate("purchaseDate", a.PurchaseDate)
	if err != nil {
		return models.Asset{}, err
	}
	return models.Asset{
		ID:           a.ID,
		Name:         a.Name,
		PurchaseDate: purchased,
		InitialValue: a.InitialValue,
		UsefulLife:   a.UsefulLife,
	}, nil
}

func serviceToAPI(s models.Service) v1.Service {
	return v1.Service{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Hours:       s.Hours,
		Margin:      s.Margin,
		Price:       s.Price,
	}
}

func serviceFromAPI(s v1.Service) models.Service {
	return models.Service{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Hours:       s.Hours,
		Margin:      s.Margin,
	}
}

func clientToAPI(c models.Client) v1.Client {
	return v1.Client{
		ID:        c.ID,
		Name:      c.Name,
		RUT:       c.RUT,
		Email:     c.Email,
		Phone:     c.Phone,
		City:      c.City,
		Giro:      c.Giro,
		LastTotal: c.LastTotal,
	}
}

func clientFromAPI(c v1.Client) models.Client {
	return models.Client{
		ID:    c.ID,
		Name:  c.Name,
		RUT:   c.RUT,
		Email: c.Email,
		Phone: c.Phone,
		City:  c.City,
		Giro:  c.Giro,
	}
}

func contactFromAPI(c *v1.Contact) models.Client {
	if c == nil {
		return models.Client{}
	}
	return models.Client{Email: c.Email, Phone: c.Phone, City: c.City, Giro: c.Giro}
}

func quoteItemToAPI(it models.QuoteItem) v1.QuoteItem {
	return v1.QuoteItem{
		ID:          it.ID,
		ServiceID:   it.ServiceID,
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
		Quantity:    it.Quantity,
	}
}

func quoteItemFromAPI(it v1.QuoteItem) models.QuoteItem {
	return models.QuoteItem{
		ID:          it.ID,
		ServiceID:   it.ServiceID,
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
		Quantity:    it.Quantity,
	}
}

func quoteToAPI(q models.Quote) v1.Quote {
	return v1.Quote{
		ID:           q.ID,
		ClientID:     q.ClientID,
		ClientName:   q.ClientName,
		ClientRUT:    q.ClientRUT,
		Date:         q.Date.String(),
		ValidUntil:   q.ValidUntil.String(),
		DeliveryDate: q.DeliveryDate.String(),
		Items:        convertAll(q.Items, quoteItemToAPI),
		Total:        q.Total,
		Gross:        calculator.TotalsFromSubtotal(q.Total).Gross,
		Status:       string(q.Status),
		Terms:        q.Terms,
	}
}

func quoteFromAPI(q v1.Quote) (models.Quote, error) {
	date, err := parseDate("date", q.Date)
	if err != nil {
		return models.Quote{}, err
	}
	validUntil, err := parseDate("validUntil", q.ValidUntil)
	if err != nil {
		return models.Quote{}, err
	}
	delivery, err := parseDate("deliveryDate", q.DeliveryDate)
	if err != nil {
		return models.Quote{}, err
	}
	return models.Quote{
		ID:           q.ID,
		ClientID:     q.ClientID,
		ClientName:   q.ClientName,
		ClientRUT:    q.ClientRUT,
		Date:         date,
		ValidUntil:   validUntil,
		DeliveryDate: delivery,
		Items:        convertAll(q.Items, quoteItemFromAPI),
		Status:       models.QuoteStatus(q.Status),
		Terms:        q.Terms,
	}, nil
}

func totalsToAPI(t calculator.Totals) v1.Totals {
	return v1.Totals{Subtotal: t.Subtotal, Tax: t.Tax, Gross: t.Gross}
}

func settingsToAPI(s models.Settings) v1.Settings {
	return v1.Settings{
		CompanyName:   s.CompanyName,
		RUT:           s.RUT,
		Address:       s.Address,
		LogoURL:       s.LogoURL,
		ContactEmail:  s.ContactEmail,
		Phone:         s.Phone,
		CapacityHours: s.CapacityHours,
	}
}

func settingsFromAPI(s v1.Settings) models.Settings {
	return models.Settings{
		CompanyName:   s.CompanyName,
		RUT:           s.RUT,
		Address:       s.Address,
		LogoURL:       s.LogoURL,
		ContactEmail:  s.ContactEmail,
		Phone:         s.Phone,
		CapacityHours: s.CapacityHours,
	}
}

func templateToAPI(t models.TermTemplate) v1.TermTemplate {
	return v1.TermTemplate{ID: t.ID, Name: t.Name, Content: t.Content}
}

func templateFromAPI(t v1.TermTemplate) models.TermTemplate {
	return models.TermTemplate{ID: t.ID, Name: t.Name, Content: t.Content}
}

func saleToAPI(s models.MonthlySale) v1.MonthlySale {
	return v1.MonthlySale{Year: s.Year, Month: s.Month, Sales: s.Sales}
}

func saleFromAPI(s v1.MonthlySale) models.MonthlySale {
	return models.MonthlySale{Year: s.Year, Month: s.Month, Sales: s.Sales}
}

func summaryToAPI(s state.Summary) v1.Summary {
	return v1.Summary{
		TotalCosts:         s.TotalCosts,
		FixedCosts:         s.FixedCosts,
		VariableCosts:      s.VariableCosts,
		FixedCostBase:      s.FixedCostBase,
		CapacityHours:      s.CapacityHours,
		BEPHourlyRate:      s.BEPHourlyRate,
		BEPRounded:         s.BEPRounded,
		AnnualProjection:   s.AnnualProjection,
		AssetBookValue:     s.AssetBookValue,
		DepreciationSource: string(s.Source),
	}
}

func cashFlowMonthToAPI(m calculator.CashFlowMonth) v1.CashFlowMonth {
	return v1.CashFlowMonth{Month: m.Month, Label: m.Label, Income: m.Income, Expenses: m.Expenses, Profit: m.Profit}
}

func curvePointToAPI(p calculator.CurvePoint) v1.CurvePoint {
	return v1.CurvePoint{Hours: p.Hours, Revenue: p.Revenue, Costs: p.Costs, Fixed: p.Fixed}
}
