package state

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mmynk/agencydesk/internal/calculator"
	"github.com/mmynk/agencydesk/internal/format"
	"github.com/mmynk/agencydesk/internal/models"
	"github.com/mmynk/agencydesk/internal/storage"
)

// FolioPrefix starts every generated quote folio.
const FolioPrefix = "COT-"

// nextFolio numbers past the highest numeric folio in quotes.
func nextFolio(quotes []models.Quote) string {
	highest := 0
	for _, q := range quotes {
		n, err := strconv.Atoi(strings.TrimPrefix(q.ID, FolioPrefix))
		if err == nil && strings.HasPrefix(q.ID, FolioPrefix) && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%s%04d", FolioPrefix, highest+1)
}

// NewQuote returns a draft for the builder: the next folio, issued today,
// valid for QuoteValidityDays, with the first term template as terms. The
// draft is not saved.
func (s *State) NewQuote() models.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	terms := DefaultTerms
	if len(s.snap.TermTemplates) > 0 {
		terms = s.snap.TermTemplates[0].Content
	}
	today := s.today()
	return models.Quote{
		ID:         nextFolio(s.snap.Quotes),
		Date:       today,
		ValidUntil: today.AddDays(QuoteValidityDays),
		Items:      []models.QuoteItem{},
		Status:     models.QuoteStatusDraft,
		Terms:      terms,
	}
}

// Quotes returns every saved quote.
func (s *State) Quotes() []models.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneQuotes(s.snap.Quotes)
}

// Quote returns the quote with the given folio.
func (s *State) Quote(id string) (models.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.snap.Quotes, func(q models.Quote) bool { return q.ID == id })
	if i < 0 {
		return models.Quote{}, notFoundf("quote %s", id)
	}
	return cloneQuote(s.snap.Quotes[i]), nil
}

// SaveQuote persists q and updates the client registry.
//
// The total is recomputed from the items first. Then the client with the
// same RUT gets the quote's customer fields merged in and its LastTotal
// overwritten; if no client has that RUT and both name and RUT are present,
// a new client is created. Finally the quote replaces the one with the same
// folio, or is appended. customer carries optional contact fields from the
// builder (email, phone, city, giro) merged into the client record.
func (s *State) SaveQuote(ctx context.Context, q models.Quote, customer models.Client) (models.Quote, error) {
	if q.Status == "" {
		q.Status = models.QuoteStatusDraft
	}
	if !q.Status.Valid() {
		return models.Quote{}, invalidf("unknown quote status %q", q.Status)
	}
	q.ClientName = strings.TrimSpace(q.ClientName)
	q.ClientRUT = format.RUT(q.ClientRUT)
	q.ID = strings.TrimSpace(q.ID)

	q.Items = clone(q.Items)
	for i := range q.Items {
		item := &q.Items[i]
		if item.Price < 0 {
			return models.Quote{}, invalidf("item %q has a negative price", item.Name)
		}
		item.Quantity = calculator.ClampQuantity(item.Quantity)
	}
	q.Total = calculator.QuoteTotals(q.Items).Subtotal

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range q.Items {
		if q.Items[i].ID == "" {
			q.Items[i].ID = s.newID()
		}
	}
	if q.ID == "" {
		q.ID = nextFolio(s.snap.Quotes)
	}
	if q.Date.IsZero() {
		q.Date = s.today()
	}
	if q.ValidUntil.IsZero() {
		q.ValidUntil = q.Date.AddDays(QuoteValidityDays)
	}

	clientsChanged := s.upsertQuoteClient(&q, customer)

	if i := indexOf(s.snap.Quotes, func(x models.Quote) bool { return x.ID == q.ID }); i >= 0 {
		s.snap.Quotes[i] = q
	} else {
		s.snap.Quotes = append(s.snap.Quotes, q)
	}

	if clientsChanged {
		s.commit(ctx, storage.KeyClients)
	}
	s.commit(ctx, storage.KeyQuotes)
	return cloneQuote(q), nil
}

// upsertQuoteClient applies the client side of a quote save and links the
// quote to the client. Callers hold the write lock.
func (s *State) upsertQuoteClient(q *models.Quote, customer models.Client) bool {
	if q.ClientRUT == "" {
		return false
	}

	i := indexOf(s.snap.Clients, func(c models.Client) bool { return c.RUT == q.ClientRUT })
	if i >= 0 {
		c := &s.snap.Clients[i]
		if q.ClientName != "" {
			c.Name = q.ClientName
		}
		mergeContact(c, customer)
		c.LastTotal = q.Total
		q.ClientID = c.ID
		return true
	}

	if q.ClientName == "" {
		return false
	}
	c := models.Client{
		ID:        s.newID(),
		Name:      q.ClientName,
		RUT:       q.ClientRUT,
		LastTotal: q.Total,
	}
	mergeContact(&c, customer)
	s.snap.Clients = append(s.snap.Clients, c)
	q.ClientID = c.ID
	return true
}

func mergeContact(c *models.Client, from models.Client) {
	if v := strings.TrimSpace(from.Email); v != "" {
		c.Email = v
	}
	if v := strings.TrimSpace(from.Phone); v != "" {
		c.Phone = v
	}
	if v := strings.TrimSpace(from.City); v != "" {
		c.City = v
	}
	if v := strings.TrimSpace(from.Giro); v != "" {
		c.Giro = v
	}
}

// SetQuoteStatus sets the status of a saved quote. Every status may follow
// every other; only unknown values are rejected.
func (s *State) SetQuoteStatus(ctx context.Context, id string, status models.QuoteStatus) (models.Quote, error) {
	if !status.Valid() {
		return models.Quote{}, invalidf("unknown quote status %q", status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.snap.Quotes, func(q models.Quote) bool { return q.ID == id })
	if i < 0 {
		return models.Quote{}, notFoundf("quote %s", id)
	}
	s.snap.Quotes[i].Status = status
	s.commit(ctx, storage.KeyQuotes)
	return cloneQuote(s.snap.Quotes[i]), nil
}

// DeleteQuote removes a quote. The client's LastTotal is left as is.
func (s *State) DeleteQuote(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.snap.Quotes, func(q models.Quote) bool { return q.ID == id })
	if i < 0 {
		return notFoundf("quote %s", id)
	}
	s.snap.Quotes = append(s.snap.Quotes[:i:i], s.snap.Quotes[i+1:]...)
	s.commit(ctx, storage.KeyQuotes)
	return nil
}

// QuoteItemFromService copies a catalog service into a new quote line.
func (s *State) QuoteItemFromService(serviceID string, quantity int64) (models.QuoteItem, error) {
	svc, err := s.Service(serviceID)
	if err != nil {
		return models.QuoteItem{}, err
	}
	return models.QuoteItem{
		ID:          s.newID(),
		ServiceID:   svc.ID,
		Name:        svc.Name,
		Description: svc.Description,
		Price:       svc.Price,
		Quantity:    calculator.ClampQuantity(quantity),
	}, nil
}
