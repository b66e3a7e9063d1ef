// Package document turns a saved quote into a printable document.
package document

import (
	"context"
	"strconv"

	"github.com/mmynk/agencydesk/internal/calculator"
	"github.com/mmynk/agencydesk/internal/format"
	"github.com/mmynk/agencydesk/internal/models"
)

// Line is one printed quote line.
type Line struct {
	Name        string
	Description string
	Quantity    int64
	UnitPrice   int64
	Amount      int64
}

// Party is the issuer or the recipient of a quote.
type Party struct {
	Name    string
	RUT     string
	Giro    string
	Address string
	City    string
	Email   string
	Phone   string
}

// Document is everything printed on a quote, already resolved.
type Document struct {
	Folio      string
	Status     string
	Issued     string
	ValidUntil string
	Delivery   string
	LogoURL    string
	Issuer     Party
	Recipient  Party
	Lines      []Line
	Totals     calculator.Totals
	Terms      string
}

// FromQuote assembles the document for q. client may be nil when the quote
// has no linked client or the client was deleted; the quote's own name and
// RUT are printed then.
func FromQuote(q models.Quote, company models.Settings, client *models.Client) Document {
	doc := Document{
		Folio:      q.ID,
		Status:     string(q.Status),
		Issued:     q.Date.String(),
		ValidUntil: q.ValidUntil.String(),
		Delivery:   q.DeliveryDate.String(),
		LogoURL:    company.LogoURL,
		Issuer: Party{
			Name:    company.CompanyName,
			RUT:     company.RUT,
			Address: company.Address,
			Email:   company.ContactEmail,
			Phone:   company.Phone,
		},
		Recipient: Party{
			Name: q.ClientName,
			RUT:  format.RUT(q.ClientRUT),
		},
		Totals: calculator.QuoteTotals(q.Items),
		Terms:  q.Terms,
	}
	if client != nil {
		if doc.Recipient.Name == "" {
			doc.Recipient.Name = client.Name
		}
		if doc.Recipient.RUT == "" {
			doc.Recipient.RUT = client.RUT
		}
		doc.Recipient.Giro = client.Giro
		doc.Recipient.City = client.City
		doc.Recipient.Email = client.Email
		doc.Recipient.Phone = client.Phone
	}

	doc.Lines = make([]Line, len(q.Items))
	for i, it := range q.Items {
		qty := calculator.ClampQuantity(it.Quantity)
		doc.Lines[i] = Line{
			Name:        it.Name,
			Description: it.Description,
			Quantity:    qty,
			UnitPrice:   it.Price,
			Amount:      it.Price * qty,
		}
	}
	return doc
}

// Filename is the download name of the rendered document.
func (d Document) Filename(ext string) string {
	return d.Folio + ext
}

// Renderer encodes a Document in some output format.
type Renderer interface {
	Render(ctx context.Context, doc Document) ([]byte, error)
	ContentType() string
	Extension() string
}

func quantity(q int64) string {
	return strconv.FormatInt(q, 10)
}

func money(v int64) string {
	return format.CLP(v)
}
