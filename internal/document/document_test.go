package document

import (
	"bytes"
	"context"
	"testing"

	"github.com/mmynk/agencydesk/internal/models"
)

func sampleQuote() models.Quote {
	return models.Quote{
		ID:         "COT-0007",
		ClientID:   "c1",
		ClientName: "Acme SpA",
		ClientRUT:  "761234567",
		Date:       models.NewDate(2024, 3, 10),
		ValidUntil: models.NewDate(2024, 3, 25),
		Items: []models.QuoteItem{
			{Name: "Sitio web", Description: "Landing + blog", Price: 500000, Quantity: 2},
			{Name: "SEO", Price: 100000, Quantity: 0},
		},
		Total:  1100000,
		Status: models.QuoteStatusSent,
		Terms:  "Pago 50% anticipo.\nValores netos.",
	}
}

func TestFromQuote(t *testing.T) {
	company := models.Settings{CompanyName: "Estudio Sur", RUT: "76.000.000-0", ContactEmail: "hola@sur.cl"}

	t.Run("totals and lines", func(t *testing.T) {
		doc := FromQuote(sampleQuote(), company, nil)

		if doc.Totals.Subtotal != 1100000 || doc.Totals.Tax != 209000 || doc.Totals.Gross != 1309000 {
			t.Errorf("totals = %+v", doc.Totals)
		}
		if len(doc.Lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(doc.Lines))
		}
		if l := doc.Lines[1]; l.Quantity != 1 || l.Amount != 100000 {
			t.Errorf("second line = %+v", l)
		}
		if doc.Recipient.RUT != "76.123.456-7" {
			t.Errorf("recipient RUT = %s", doc.Recipient.RUT)
		}
		if doc.Issued != "2024-03-10" || doc.ValidUntil != "2024-03-25" || doc.Delivery != "" {
			t.Errorf("dates = %s / %s / %q", doc.Issued, doc.ValidUntil, doc.Delivery)
		}
	})

	t.Run("client contact fields", func(t *testing.T) {
		client := &models.Client{ID: "c1", Name: "Acme", RUT: "76.123.456-7", Email: "pagos@acme.cl", City: "Temuco", Giro: "Retail"}
		doc := FromQuote(sampleQuote(), company, client)

		if doc.Recipient.Name != "Acme SpA" {
			t.Errorf("the quote snapshot name should win, got %s", doc.Recipient.Name)
		}
		if doc.Recipient.Email != "pagos@acme.cl" || doc.Recipient.City != "Temuco" || doc.Recipient.Giro != "Retail" {
			t.Errorf("recipient = %+v", doc.Recipient)
		}
	})

	if got := FromQuote(sampleQuote(), company, nil).Filename(".pdf"); got != "COT-0007.pdf" {
		t.Errorf("filename = %s", got)
	}
}

func TestPDFRenderer(t *testing.T) {
	r := NewPDFRenderer()
	doc := FromQuote(sampleQuote(), models.Settings{CompanyName: "Estudio Sur"}, nil)

	out, err := r.Render(context.Background(), doc)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output is not a PDF: %q", out[:min(len(out), 8)])
	}
	if r.ContentType() != "application/pdf" {
		t.Errorf("content type = %s", r.ContentType())
	}

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := r.Render(ctx, doc); err == nil {
			t.Error("expected an error for a cancelled context")
		}
	})
}
