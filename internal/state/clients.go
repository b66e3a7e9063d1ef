package state

import (
	"context"
	"strings"

	"github.com/mmynk/agencydesk/internal/format"
	"github.com/mmynk/agencydesk/internal/models"
	"github.com/mmynk/agencydesk/internal/storage"
)

// Clients returns the client registry.
func (s *State) Clients() []models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.snap.Clients)
}

// SearchClients returns clients whose name, RUT or phone contains query,
// ignoring case. An empty query matches everyone.
func (s *State) SearchClients(query string) []models.Client {
	q := strings.ToLower(strings.TrimSpace(query))

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Client{}
	for _, c := range s.snap.Clients {
		if q == "" ||
			strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.RUT), q) ||
			strings.Contains(strings.ToLower(c.Phone), q) {
			out = append(out, c)
		}
	}
	return out
}

// Client returns the client with the given ID.
func (s *State) Client(id string) (models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.snap.Clients, func(c models.Client) bool { return c.ID == id })
	if i < 0 {
		return models.Client{}, notFoundf("client %s", id)
	}
	return s.snap.Clients[i], nil
}

// SaveClient inserts c (without ID) or updates the client with the same ID.
// The RUT is reformatted and must not belong to another client. LastTotal
// is owned by quote saves and is never taken from c.
func (s *State) SaveClient(ctx context.Context, c models.Client) (models.Client, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return models.Client{}, invalidf("client name is required")
	}
	c.RUT = format.RUT(c.RUT)

	s.mu.Lock()
	defer s.mu.Unlock()

	if c.RUT != "" {
		dup := indexOf(s.snap.Clients, func(x models.Client) bool { return x.RUT == c.RUT && x.ID != c.ID })
		if dup >= 0 {
			return models.Client{}, invalidf("RUT %s already belongs to %s", c.RUT, s.snap.Clients[dup].Name)
		}
	}

	if c.ID == "" {
		c.ID = s.newID()
		c.LastTotal = 0
		s.snap.Clients = append(s.snap.Clients, c)
	} else {
		i := indexOf(s.snap.Clients, func(x models.Client) bool { return x.ID == c.ID })
		if i < 0 {
			return models.Client{}, notFoundf("client %s", c.ID)
		}
		c.LastTotal = s.snap.Clients[i].LastTotal
		s.snap.Clients[i] = c
	}
	s.commit(ctx, storage.KeyClients)
	return c, nil
}

// DeleteClient removes a client. Their quotes keep the snapshot fields.
func (s *State) DeleteClient(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.snap.Clients, func(c models.Client) bool { return c.ID == id })
	if i < 0 {
		return notFoundf("client %s", id)
	}
	s.snap.Clients = append(s.snap.Clients[:i:i], s.snap.Clients[i+1:]...)
	s.commit(ctx, storage.KeyClients)
	return nil
}

// ClientQuotes returns the quotes of a client. Quotes are matched by
// ClientID; quotes saved without one fall back to the RUT or name snapshot.
func (s *State) ClientQuotes(id string) ([]models.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.snap.Clients, func(c models.Client) bool { return c.ID == id })
	if i < 0 {
		return nil, notFoundf("client %s", id)
	}
	client := s.snap.Clients[i]

	out := []models.Quote{}
	for _, q := range s.snap.Quotes {
		if quoteBelongsTo(q, client) {
			out = append(out, cloneQuote(q))
		}
	}
	return out, nil
}

func quoteBelongsTo(q models.Quote, c models.Client) bool {
	if q.ClientID != "" {
		return q.ClientID == c.ID
	}
	if q.ClientRUT != "" && c.RUT != "" {
		return format.RUT(q.ClientRUT) == c.RUT
	}
	return q.ClientName != "" && strings.EqualFold(strings.TrimSpace(q.ClientName), c.Name)
}
