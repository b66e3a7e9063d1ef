package state

import (
	"context"

	"github.com/mmynk/agencydesk/internal/format"
	"github.com/mmynk/agencydesk/internal/models"
	"github.com/mmynk/agencydesk/internal/storage"
)

// Settings returns the company profile.
func (s *State) Settings() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Settings
}

// UpdateSettings replaces the company profile. The RUT is reformatted.
// Saved service prices are not recomputed when capacity changes.
func (s *State) UpdateSettings(ctx context.Context, settings models.Settings) (models.Settings, error) {
	if settings.CapacityHours < 0 {
		return models.Settings{}, invalidf("capacity hours cannot be negative")
	}
	settings.RUT = format.RUT(settings.RUT)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.Settings = settings
	s.commit(ctx, storage.KeySettings)
	return settings, nil
}
