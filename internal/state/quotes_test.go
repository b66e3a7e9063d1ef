package state

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/mmynk/agencydesk/internal/models"
	"github.com/mmynk/agencydesk/internal/storage"
)

func TestNewQuote(t *testing.T) {
	s, _ := newTestState(t)

	q := s.NewQuote()
	if q.ID != "COT-0001" {
		t.Errorf("folio = %s, want COT-0001", q.ID)
	}
	if q.Status != models.QuoteStatusDraft {
		t.Errorf("status = %s, want %s", q.Status, models.QuoteStatusDraft)
	}
	if q.Date.String() != "2024-03-10" || q.ValidUntil.String() != "2024-03-25" {
		t.Errorf("dates = %s / %s", q.Date, q.ValidUntil)
	}
	if q.Terms != DefaultTerms {
		t.Errorf("terms should come from the first template")
	}
	if len(s.Quotes()) != 0 {
		t.Error("NewQuote must not save anything")
	}
}

func TestSaveQuote(t *testing.T) {
	ctx := context.Background()
	s, rec := newTestState(t)

	q := s.NewQuote()
	q.ClientName = "Acme SpA"
	q.ClientRUT = "761234567"
	q.Items = []models.QuoteItem{
		{Name: "Sitio web", Price: 500000, Quantity: 2},
		{Name: "SEO", Price: 100000, Quantity: 0},
	}

	saved, err := s.SaveQuote(ctx, q, models.Client{Email: "hola@acme.cl"})
	if err != nil {
		t.Fatalf("SaveQuote failed: %v", err)
	}

	t.Run("derived fields", func(t *testing.T) {
		if saved.Total != 1100000 {
			t.Errorf("total = %d, want 1100000", saved.Total)
		}
		if saved.ClientRUT != "76.123.456-7" {
			t.Errorf("RUT = %s", saved.ClientRUT)
		}
		if saved.Items[1].Quantity != 1 {
			t.Errorf("quantity not clamped: %d", saved.Items[1].Quantity)
		}
		if saved.Items[0].ID == "" || saved.Items[1].ID == "" {
			t.Errorf("items without IDs: %+v", saved.Items)
		}
	})

	t.Run("client created and linked", func(t *testing.T) {
		clients := s.Clients()
		if len(clients) != 1 {
			t.Fatalf("expected 1 client, got %d", len(clients))
		}
		c := clients[0]
		if c.ID != saved.ClientID {
			t.Errorf("quote ClientID = %s, client ID = %s", saved.ClientID, c.ID)
		}
		if c.Name != "Acme SpA" || c.RUT != "76.123.456-7" || c.Email != "hola@acme.cl" {
			t.Errorf("client = %+v", c)
		}
		if c.LastTotal != saved.Total {
			t.Errorf("lastTotal = %d, want %d", c.LastTotal, saved.Total)
		}
		want := []storage.Key{storage.KeyClients, storage.KeyQuotes}
		if len(rec.keys) != 2 || rec.keys[0] != want[0] || rec.keys[1] != want[1] {
			t.Errorf("observer keys = %v, want %v", rec.keys, want)
		}
	})

	t.Run("saving twice is idempotent", func(t *testing.T) {
		again, err := s.SaveQuote(ctx, saved, models.Client{})
		if err != nil {
			t.Fatalf("SaveQuote failed: %v", err)
		}
		if len(s.Quotes()) != 1 || len(s.Clients()) != 1 {
			t.Errorf("quotes = %d, clients = %d, want 1 and 1", len(s.Quotes()), len(s.Clients()))
		}
		if again.ID != saved.ID || again.ClientID != saved.ClientID {
			t.Errorf("second save changed identity: %+v", again)
		}
		if s.Clients()[0].Email != "hola@acme.cl" {
			t.Error("an empty contact field must not erase the stored one")
		}
	})

	t.Run("editing updates the last total", func(t *testing.T) {
		edited := saved
		edited.Items = edited.Items[:1]
		if _, err := s.SaveQuote(ctx, edited, models.Client{}); err != nil {
			t.Fatalf("SaveQuote failed: %v", err)
		}
		if got := s.Clients()[0].LastTotal; got != 1000000 {
			t.Errorf("lastTotal = %d, want 1000000", got)
		}
		stored, err := s.Quote(saved.ID)
		if err != nil {
			t.Fatalf("Quote failed: %v", err)
		}
		if stored.Total != 1000000 || len(stored.Items) != 1 {
			t.Errorf("stored quote = %+v", stored)
		}
	})

	t.Run("next folio", func(t *testing.T) {
		if got := s.NewQuote().ID; got != "COT-0002" {
			t.Errorf("next folio = %s, want COT-0002", got)
		}
	})
}

func TestSaveQuoteMergesExistingClient(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestState(t)

	existing, err := s.SaveClient(ctx, models.Client{Name: "Nombre Antiguo", RUT: "12345678-5", Phone: "+56 9 1111 1111"})
	if err != nil {
		t.Fatalf("SaveClient failed: %v", err)
	}

	q := s.NewQuote()
	q.ClientName = "Nombre Nuevo"
	q.ClientRUT = "12.345.678-5"
	q.Items = []models.QuoteItem{{Name: "Logo", Price: 250000, Quantity: 1}}

	saved, err := s.SaveQuote(ctx, q, models.Client{City: "Valparaíso"})
	if err != nil {
		t.Fatalf("SaveQuote failed: %v", err)
	}

	clients := s.Clients()
	if len(clients) != 1 {
		t.Fatalf("expected the existing client to be reused, got %d clients", len(clients))
	}
	c := clients[0]
	if c.ID != existing.ID || saved.ClientID != existing.ID {
		t.Errorf("client ID = %s, quote ClientID = %s, want %s", c.ID, saved.ClientID, existing.ID)
	}
	if c.Name != "Nombre Nuevo" || c.City != "Valparaíso" || c.Phone != "+56 9 1111 1111" {
		t.Errorf("merged client = %+v", c)
	}
	if c.LastTotal != 250000 {
		t.Errorf("lastTotal = %d", c.LastTotal)
	}
}

func TestSaveQuoteWithoutRUT(t *testing.T) {
	ctx := context.Background()
	s, rec := newTestState(t)

	q := s.NewQuote()
	q.ClientName = "Particular"
	saved, err := s.SaveQuote(ctx, q, models.Client{})
	if err != nil {
		t.Fatalf("SaveQuote failed: %v", err)
	}
	if saved.ClientID != "" || len(s.Clients()) != 0 {
		t.Errorf("a quote without RUT must not create a client")
	}
	if len(rec.keys) != 1 || rec.keys[0] != storage.KeyQuotes {
		t.Errorf("observer keys = %v", rec.keys)
	}
}

func TestSaveQuoteValidation(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestState(t)

	tests := []struct {
		name  string
		quote models.Quote
	}{
		{name: "unknown status", quote: models.Quote{Status: "Pagado"}},
		{name: "negative price", quote: models.Quote{Items: []models.QuoteItem{{Name: "Descuento", Price: -1000, Quantity: 1}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.SaveQuote(ctx, tt.quote, models.Client{}); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
	if len(s.Quotes()) != 0 {
		t.Error("invalid quotes were saved")
	}
}

func TestSetQuoteStatus(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestState(t)

	q, err := s.SaveQuote(ctx, s.NewQuote(), models.Client{})
	if err != nil {
		t.Fatalf("SaveQuote failed: %v", err)
	}

	// Any status may follow any other, including going back to draft.
	sequence := []models.QuoteStatus{
		models.QuoteStatusApproved,
		models.QuoteStatusDraft,
		models.QuoteStatusRejected,
		models.QuoteStatusSent,
		models.QuoteStatusApproved,
	}
	for _, status := range sequence {
		got, err := s.SetQuoteStatus(ctx, q.ID, status)
		if err != nil {
			t.Fatalf("SetQuoteStatus(%s) failed: %v", status, err)
		}
		if got.Status != status {
			t.Errorf("status = %s, want %s", got.Status, status)
		}
	}

	if _, err := s.SetQuoteStatus(ctx, q.ID, "Pagado"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := s.SetQuoteStatus(ctx, "COT-9999", models.QuoteStatusSent); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClientQuotes(t *testing.T) {
	snap := DefaultSnapshot()
	snap.Clients = []models.Client{{ID: "c1", Name: "Acme", RUT: "76.123.456-7"}}
	snap.Quotes = []models.Quote{
		{ID: "COT-0001", ClientID: "c1"},
		{ID: "COT-0002", ClientRUT: "761234567"},
		{ID: "COT-0003", ClientName: " acme "},
		{ID: "COT-0004", ClientID: "c2", ClientName: "Acme"},
		{ID: "COT-0005", ClientName: "Otro"},
	}
	s := New(snap, Options{Now: func() time.Time { return testNow }, NewID: sequentialIDs()})

	quotes, err := s.ClientQuotes("c1")
	if err != nil {
		t.Fatalf("ClientQuotes failed: %v", err)
	}
	var folios []string
	for _, q := range quotes {
		folios = append(folios, q.ID)
	}
	want := []string{"COT-0001", "COT-0002", "COT-0003"}
	if !reflect.DeepEqual(folios, want) {
		t.Errorf("folios = %v, want %v", folios, want)
	}

	if _, err := s.ClientQuotes("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteClientKeepsQuotes(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestState(t)

	q := s.NewQuote()
	q.ClientName = "Acme SpA"
	q.ClientRUT = "76.123.456-7"
	saved, _ := s.SaveQuote(ctx, q, models.Client{})

	if err := s.DeleteClient(ctx, saved.ClientID); err != nil {
		t.Fatalf("DeleteClient failed: %v", err)
	}
	got, err := s.Quote(saved.ID)
	if err != nil {
		t.Fatalf("quote lost with its client: %v", err)
	}
	if got.ClientName != "Acme SpA" || got.ClientID != saved.ClientID {
		t.Errorf("quote snapshot changed: %+v", got)
	}
}

func TestSaveClient(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestState(t)

	a, err := s.SaveClient(ctx, models.Client{Name: "Acme", RUT: "761234567", LastTotal: 999})
	if err != nil {
		t.Fatalf("SaveClient failed: %v", err)
	}
	if a.RUT != "76.123.456-7" || a.LastTotal != 0 {
		t.Errorf("client = %+v", a)
	}

	if _, err := s.SaveClient(ctx, models.Client{Name: "Copia", RUT: "76.123.456-7"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("duplicate RUT: expected ErrInvalidInput, got %v", err)
	}
	if _, err := s.SaveClient(ctx, models.Client{Name: "  "}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("blank name: expected ErrInvalidInput, got %v", err)
	}

	a.Phone = "+56 2 2222 2222"
	if _, err := s.SaveClient(ctx, a); err != nil {
		t.Errorf("updating a client with its own RUT failed: %v", err)
	}

	t.Run("search", func(t *testing.T) {
		s.SaveClient(ctx, models.Client{Name: "Beta Ltda", RUT: "11.111.111-1"})
		tests := []struct {
			query string
			want  int
		}{
			{"", 2},
			{"acme", 1},
			{"11.111", 1},
			{"2222", 1},
			{"zeta", 0},
		}
		for _, tt := range tests {
			if got := s.SearchClients(tt.query); len(got) != tt.want {
				t.Errorf("SearchClients(%q) = %d results, want %d", tt.query, len(got), tt.want)
			}
		}
	})
}

func TestQuoteItemFromService(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestState(t)
	s.AddCost(ctx, models.Cost{Name: "Sueldos", Amount: 1600000})
	svc, _ := s.SaveService(ctx, models.Service{Name: "Branding", Description: "Logo y manual", Hours: 10, Margin: 50})

	item, err := s.QuoteItemFromService(svc.ID, 0)
	if err != nil {
		t.Fatalf("QuoteItemFromService failed: %v", err)
	}
	if item.ServiceID != svc.ID || item.Name != "Branding" || item.Price != 200000 || item.Quantity != 1 {
		t.Errorf("item = %+v", item)
	}

	if err := s.DeleteService(ctx, svc.ID); err != nil {
		t.Fatalf("DeleteService failed: %v", err)
	}
	if _, err := s.QuoteItemFromService(svc.ID, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
