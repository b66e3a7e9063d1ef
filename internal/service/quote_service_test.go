package service

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"connectrpc.com/connect"

	v1 "github.com/mmynk/agencydesk/pkg/api/v1"
)

// draftQuote prepares a quote for Acme with two lines worth 1.100.000 net.
func draftQuote(t *testing.T, c *testClients) v1.Quote {
	t.Helper()

	resp, err := c.quotes.NewQuote(context.Background(), connect.NewRequest(&v1.NewQuoteRequest{}))
	if err != nil {
		t.Fatalf("NewQuote failed: %v", err)
	}
	q := resp.Msg.Quote
	q.ClientName = "Acme SpA"
	q.ClientRUT = "76123456-7"
	q.Items = []v1.QuoteItem{
		{Name: "Sitio web", Price: 500000, Quantity: 2},
		{Name: "SEO", Price: 100000, Quantity: 1},
	}
	return q
}

func TestNewQuote(t *testing.T) {
	c := setupTestServer(t)

	resp, err := c.quotes.NewQuote(context.Background(), connect.NewRequest(&v1.NewQuoteRequest{}))
	if err != nil {
		t.Fatalf("NewQuote failed: %v", err)
	}
	q := resp.Msg.Quote
	if q.ID != "COT-0001" {
		t.Errorf("folio: expected COT-0001, got %s", q.ID)
	}
	if q.Status != "Borrador" {
		t.Errorf("status: expected Borrador, got %s", q.Status)
	}
	if q.Date != "2024-03-10" || q.ValidUntil != "2024-03-25" {
		t.Errorf("dates: got %s / %s", q.Date, q.ValidUntil)
	}
}

func TestComputeTotals(t *testing.T) {
	c := setupTestServer(t)

	resp, err := c.quotes.ComputeTotals(context.Background(), connect.NewRequest(&v1.ComputeTotalsRequest{
		Items: []v1.QuoteItem{
			{Name: "Diseño", Price: 333333, Quantity: 1},
			{Name: "Hosting", Price: 10000, Quantity: 0},
		},
	}))
	if err != nil {
		t.Fatalf("ComputeTotals failed: %v", err)
	}
	// 343333 × 0,19 = 65233,27
	want := v1.Totals{Subtotal: 343333, Tax: 65233, Gross: 408566}
	if resp.Msg.Totals != want {
		t.Errorf("totals: expected %+v, got %+v", want, resp.Msg.Totals)
	}
}

func TestSaveQuote(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	saved, err := c.quotes.SaveQuote(ctx, connect.NewRequest(&v1.SaveQuoteRequest{
		Quote:   draftQuote(t, c),
		Contact: &v1.Contact{Email: "pagos@acme.cl", City: "Santiago"},
	}))
	if err != nil {
		t.Fatalf("SaveQuote failed: %v", err)
	}
	q := saved.Msg.Quote

	if q.Total != 1100000 || q.Gross != 1309000 {
		t.Errorf("total/gross: expected 1100000/1309000, got %d/%d", q.Total, q.Gross)
	}
	if want := (v1.Totals{Subtotal: 1100000, Tax: 209000, Gross: 1309000}); saved.Msg.Totals != want {
		t.Errorf("totals: expected %+v, got %+v", want, saved.Msg.Totals)
	}
	if q.ClientRUT != "76.123.456-7" || q.ClientID == "" {
		t.Errorf("client link: rut %s, id %q", q.ClientRUT, q.ClientID)
	}

	// Saving the same folio again replaces it.
	if _, err := c.quotes.SaveQuote(ctx, connect.NewRequest(&v1.SaveQuoteRequest{Quote: q})); err != nil {
		t.Fatalf("second SaveQuote failed: %v", err)
	}

	list, err := c.quotes.ListQuotes(ctx, connect.NewRequest(&v1.ListQuotesRequest{}))
	if err != nil {
		t.Fatalf("ListQuotes failed: %v", err)
	}
	if len(list.Msg.Quotes) != 1 {
		t.Errorf("quotes: expected 1, got %d", len(list.Msg.Quotes))
	}

	clients, err := c.clients.ListClients(ctx, connect.NewRequest(&v1.ListClientsRequest{Query: "acme"}))
	if err != nil {
		t.Fatalf("ListClients failed: %v", err)
	}
	if len(clients.Msg.Clients) != 1 {
		t.Fatalf("clients: expected 1, got %d", len(clients.Msg.Clients))
	}
	client := clients.Msg.Clients[0]
	if client.ID != q.ClientID || client.LastTotal != 1100000 || client.Email != "pagos@acme.cl" {
		t.Errorf("client: %+v", client)
	}

	history, err := c.clients.ListClientQuotes(ctx, connect.NewRequest(&v1.ListClientQuotesRequest{ClientID: client.ID}))
	if err != nil {
		t.Fatalf("ListClientQuotes failed: %v", err)
	}
	if len(history.Msg.Quotes) != 1 || history.Msg.Quotes[0].ID != q.ID {
		t.Errorf("client quotes: %+v", history.Msg.Quotes)
	}
}

func TestSaveQuote_InvalidStatus(t *testing.T) {
	c := setupTestServer(t)

	q := draftQuote(t, c)
	q.Status = "Pagado"
	_, err := c.quotes.SaveQuote(context.Background(), connect.NewRequest(&v1.SaveQuoteRequest{Quote: q}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestSetQuoteStatus(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	saved, err := c.quotes.SaveQuote(ctx, connect.NewRequest(&v1.SaveQuoteRequest{Quote: draftQuote(t, c)}))
	if err != nil {
		t.Fatalf("SaveQuote failed: %v", err)
	}
	folio := saved.Msg.Quote.ID

	for _, status := range []string{"Aprobado", "Borrador", "Rechazado", "Enviado"} {
		resp, err := c.quotes.SetQuoteStatus(ctx, connect.NewRequest(&v1.SetQuoteStatusRequest{QuoteID: folio, Status: status}))
		if err != nil {
			t.Fatalf("SetQuoteStatus(%s) failed: %v", status, err)
		}
		if resp.Msg.Quote.Status != status {
			t.Errorf("status: expected %s, got %s", status, resp.Msg.Quote.Status)
		}
		if resp.Msg.Quote.Total != 1100000 {
			t.Errorf("status change touched the total: %d", resp.Msg.Quote.Total)
		}
	}

	sent, err := c.quotes.ListQuotes(ctx, connect.NewRequest(&v1.ListQuotesRequest{Status: "Enviado"}))
	if err != nil {
		t.Fatalf("ListQuotes failed: %v", err)
	}
	if len(sent.Msg.Quotes) != 1 {
		t.Errorf("sent quotes: expected 1, got %d", len(sent.Msg.Quotes))
	}

	_, err = c.quotes.SetQuoteStatus(ctx, connect.NewRequest(&v1.SetQuoteStatusRequest{QuoteID: "COT-9999", Status: "Enviado"}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestDeleteQuote(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	saved, _ := c.quotes.SaveQuote(ctx, connect.NewRequest(&v1.SaveQuoteRequest{Quote: draftQuote(t, c)}))
	folio := saved.Msg.Quote.ID

	if _, err := c.quotes.DeleteQuote(ctx, connect.NewRequest(&v1.DeleteQuoteRequest{QuoteID: folio})); err != nil {
		t.Fatalf("DeleteQuote failed: %v", err)
	}
	_, err := c.quotes.GetQuote(ctx, connect.NewRequest(&v1.GetQuoteRequest{QuoteID: folio}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestItemFromService(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	c.finance.AddCost(ctx, connect.NewRequest(&v1.AddCostRequest{Cost: v1.Cost{Name: "Sueldos", Amount: 1600000}}))
	svc, err := c.catalog.SaveService(ctx, connect.NewRequest(&v1.SaveServiceRequest{Service: v1.Service{
		Name: "Branding", Description: "Logo y manual", Hours: 10, Margin: 50,
	}}))
	if err != nil {
		t.Fatalf("SaveService failed: %v", err)
	}

	resp, err := c.quotes.ItemFromService(ctx, connect.NewRequest(&v1.ItemFromServiceRequest{ServiceID: svc.Msg.Service.ID, Quantity: 3}))
	if err != nil {
		t.Fatalf("ItemFromService failed: %v", err)
	}
	item := resp.Msg.Item
	if item.Name != "Branding" || item.Price != 200000 || item.Quantity != 3 || item.ServiceID != svc.Msg.Service.ID {
		t.Errorf("item: %+v", item)
	}
}

func TestTermTemplates(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	saved, err := c.quotes.SaveTermTemplate(ctx, connect.NewRequest(&v1.SaveTermTemplateRequest{
		Template: v1.TermTemplate{Name: "Retainer", Content: "Pago mensual anticipado."},
	}))
	if err != nil {
		t.Fatalf("SaveTermTemplate failed: %v", err)
	}

	list, err := c.quotes.ListTermTemplates(ctx, connect.NewRequest(&v1.ListTermTemplatesRequest{}))
	if err != nil {
		t.Fatalf("ListTermTemplates failed: %v", err)
	}
	if len(list.Msg.Templates) != 4 {
		t.Errorf("templates: expected 4, got %d", len(list.Msg.Templates))
	}

	if _, err := c.quotes.DeleteTermTemplate(ctx, connect.NewRequest(&v1.DeleteTermTemplateRequest{TemplateID: saved.Msg.Template.ID})); err != nil {
		t.Fatalf("DeleteTermTemplate failed: %v", err)
	}
	_, err = c.quotes.SaveTermTemplate(ctx, connect.NewRequest(&v1.SaveTermTemplateRequest{Template: v1.TermTemplate{}}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestQuoteDocument(t *testing.T) {
	c := setupTestServer(t)

	saved, err := c.quotes.SaveQuote(context.Background(), connect.NewRequest(&v1.SaveQuoteRequest{Quote: draftQuote(t, c)}))
	if err != nil {
		t.Fatalf("SaveQuote failed: %v", err)
	}

	resp, err := http.Get(c.baseURL + "/quotes/" + saved.Msg.Quote.ID + "/pdf")
	if err != nil {
		t.Fatalf("GET pdf failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: expected 200, got %d (%s)", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type: got %s", ct)
	}
	if !bytes.HasPrefix(body, []byte("%PDF")) {
		t.Error("body is not a PDF")
	}

	missing, err := http.Get(c.baseURL + "/quotes/COT-9999/pdf")
	if err != nil {
		t.Fatalf("GET pdf failed: %v", err)
	}
	missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Errorf("missing quote: expected 404, got %d", missing.StatusCode)
	}
}
