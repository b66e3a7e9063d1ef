package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/agencydesk/internal/models"
)

// TaxRate is the fixed IVA rate applied to every quote.
var TaxRate = decimal.RequireFromString("0.19")

// Totals are the figures of a quote: net subtotal, IVA and gross total.
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
	Gross    int64 `json:"gross"`
}

// QuoteTotals computes totals from the line items. Quantities below 1 count
// as 1. Tax is computed exactly and rounded once to whole units.
func QuoteTotals(items []models.QuoteItem) Totals {
	var subtotal int64
	for _, item := range items {
		subtotal += item.Price * ClampQuantity(item.Quantity)
	}
	return TotalsFromSubtotal(subtotal)
}

// TotalsFromSubtotal derives IVA and gross total from a net subtotal.
func TotalsFromSubtotal(subtotal int64) Totals {
	tax := decimal.NewFromInt(subtotal).Mul(TaxRate).Round(0).IntPart()
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Gross:    subtotal + tax,
	}
}

// ClampQuantity forces a line quantity to at least 1.
func ClampQuantity(q int64) int64 {
	if q < 1 {
		return 1
	}
	return q
}
