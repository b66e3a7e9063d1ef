package state

import (
	"context"
	"strings"

	"github.com/mmynk/agencydesk/internal/calculator"
	"github.com/mmynk/agencydesk/internal/models"
	"github.com/mmynk/agencydesk/internal/storage"
)

// PriceQuote is a suggested price with the inputs it was derived from.
type PriceQuote struct {
	Price         int64                 `json:"price"`
	BEPHourlyRate float64               `json:"bepHourlyRate"`
	BaseCost      int64                 `json:"baseCost"`
	Tier          calculator.MarginTier `json:"tier"`
}

// Services returns the service catalog.
func (s *State) Services() []models.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.snap.Services)
}

func validatePricing(hours, margin float64) error {
	if hours < 0 {
		return invalidf("hours cannot be negative")
	}
	if margin < 0 {
		return invalidf("margin cannot be negative")
	}
	if margin >= 100 {
		return invalidf("a margin of %g%% leaves no valid price; it must be below 100", margin)
	}
	return nil
}

// PreviewPrice prices hours at margin against the current BEP rate without
// saving anything.
func (s *State) PreviewPrice(hours, margin float64) (PriceQuote, error) {
	if err := validatePricing(hours, margin); err != nil {
		return PriceQuote{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rate := s.bepRate()
	return PriceQuote{
		Price:         calculator.SuggestedPrice(hours, rate, margin),
		BEPHourlyRate: rate,
		BaseCost:      calculator.Round(hours * rate),
		Tier:          calculator.TierForMargin(margin),
	}, nil
}

// SaveService inserts svc (without ID) or replaces the service with the
// same ID. The price is computed here, once, from the current BEP rate.
func (s *State) SaveService(ctx context.Context, svc models.Service) (models.Service, error) {
	svc.Name = strings.TrimSpace(svc.Name)
	if svc.Name == "" {
		return models.Service{}, invalidf("service name is required")
	}
	if err := validatePricing(svc.Hours, svc.Margin); err != nil {
		return models.Service{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	svc.Price = calculator.SuggestedPrice(svc.Hours, s.bepRate(), svc.Margin)
	if svc.ID == "" {
		svc.ID = s.newID()
		s.snap.Services = append(s.snap.Services, svc)
	} else {
		i := indexOf(s.snap.Services, func(x models.Service) bool { return x.ID == svc.ID })
		if i < 0 {
			return models.Service{}, notFoundf("service %s", svc.ID)
		}
		s.snap.Services[i] = svc
	}
	s.commit(ctx, storage.KeyServices)
	return svc, nil
}

// DeleteService removes a service. Quote items copied from it are kept.
func (s *State) DeleteService(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.snap.Services, func(x models.Service) bool { return x.ID == id })
	if i < 0 {
		return notFoundf("service %s", id)
	}
	s.snap.Services = append(s.snap.Services[:i:i], s.snap.Services[i+1:]...)
	s.commit(ctx, storage.KeyServices)
	return nil
}

// Service returns the service with the given ID.
func (s *State) Service(id string) (models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.snap.Services, func(x models.Service) bool { return x.ID == id })
	if i < 0 {
		return models.Service{}, notFoundf("service %s", id)
	}
	return s.snap.Services[i], nil
}
