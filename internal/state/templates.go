package state

import (
	"context"
	"strings"

	"github.com/mmynk/agencydesk/internal/models"
	"github.com/mmynk/agencydesk/internal/storage"
)

// TermTemplates returns the saved terms templates.
func (s *State) TermTemplates() []models.TermTemplate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.snap.TermTemplates)
}

// SaveTermTemplate inserts t (without ID) or replaces the one with its ID.
func (s *State) SaveTermTemplate(ctx context.Context, t models.TermTemplate) (models.TermTemplate, error) {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return models.TermTemplate{}, invalidf("template name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		t.ID = s.newID()
		s.snap.TermTemplates = append(s.snap.TermTemplates, t)
	} else {
		i := indexOf(s.snap.TermTemplates, func(x models.TermTemplate) bool { return x.ID == t.ID })
		if i < 0 {
			return models.TermTemplate{}, notFoundf("term template %s", t.ID)
		}
		s.snap.TermTemplates[i] = t
	}
	s.commit(ctx, storage.KeyTermTemplates)
	return t, nil
}

// DeleteTermTemplate removes a template. Quotes keep their own terms text.
func (s *State) DeleteTermTemplate(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.snap.TermTemplates, func(x models.TermTemplate) bool { return x.ID == id })
	if i < 0 {
		return notFoundf("term template %s", id)
	}
	s.snap.TermTemplates = append(s.snap.TermTemplates[:i:i], s.snap.TermTemplates[i+1:]...)
	s.commit(ctx, storage.KeyTermTemplates)
	return nil
}
