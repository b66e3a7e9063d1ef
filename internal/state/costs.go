package state

import (
	"context"
	"strings"

	"github.com/mmynk/agencydesk/internal/calculator"
	"github.com/mmynk/agencydesk/internal/models"
	"github.com/mmynk/agencydesk/internal/storage"
)

// Costs returns the cost ledger in insertion order.
func (s *State) Costs() []models.Cost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.snap.Costs)
}

// AddCost validates c, assigns it an ID and appends it to the ledger.
func (s *State) AddCost(ctx context.Context, c models.Cost) (models.Cost, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return models.Cost{}, invalidf("cost name is required")
	}
	if c.Amount < 0 {
		return models.Cost{}, invalidf("cost amount cannot be negative")
	}
	if c.Type == "" {
		c.Type = models.CostTypeFixed
	}
	if !c.Type.Valid() {
		return models.Cost{}, invalidf("unknown cost type %q", c.Type)
	}
	if strings.TrimSpace(c.Category) == "" {
		c.Category = models.DefaultCostCategory
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.newID()
	s.snap.Costs = append(s.snap.Costs, c)
	s.commit(ctx, storage.KeyCosts)
	return c, nil
}

// DeleteCost removes the ledger line with the given ID.
func (s *State) DeleteCost(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.snap.Costs, func(c models.Cost) bool { return c.ID == id })
	if i < 0 {
		return notFoundf("cost %s", id)
	}
	s.snap.Costs = append(s.snap.Costs[:i:i], s.snap.Costs[i+1:]...)
	s.commit(ctx, storage.KeyCosts)
	return nil
}

// ImportCosts appends every well-formed line of a tab-separated block and
// returns the lines added. Malformed lines are skipped, so the import never
// fails.
func (s *State) ImportCosts(ctx context.Context, text string) []models.Cost {
	parsed := calculator.ParseCostImport(text)
	if len(parsed) == 0 {
		return []models.Cost{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range parsed {
		parsed[i].ID = s.newID()
	}
	s.snap.Costs = append(s.snap.Costs, parsed...)
	s.commit(ctx, storage.KeyCosts)
	return clone(parsed)
}

// Summary is the cost ledger digest shown on the finance dashboard.
type Summary struct {
	TotalCosts       int64                         `json:"totalCosts"`
	FixedCosts       int64                         `json:"fixedCosts"`
	VariableCosts    int64                         `json:"variableCosts"`
	FixedCostBase    int64                         `json:"fixedCostBase"`
	CapacityHours    float64                       `json:"capacityHours"`
	BEPHourlyRate    float64                       `json:"bepHourlyRate"`
	BEPRounded       int64                         `json:"bepRounded"`
	AnnualProjection int64                         `json:"annualProjection"`
	AssetBookValue   int64                         `json:"assetBookValue"`
	Source           calculator.DepreciationSource `json:"depreciationSource"`
}

// Summary derives the ledger totals and the BEP rate.
func (s *State) Summary() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	base := calculator.FixedCostBase(s.source, s.snap.Costs, s.snap.Assets, now)
	rate := calculator.HourlyBreakEvenRate(base, s.snap.Settings.CapacityHours)

	var bookValue int64
	for _, a := range s.snap.Assets {
		bookValue += calculator.CurrentValue(a, now)
	}

	return Summary{
		TotalCosts:       calculator.TotalCosts(s.snap.Costs),
		FixedCosts:       calculator.TotalFixedCosts(s.snap.Costs),
		VariableCosts:    calculator.TotalVariableCosts(s.snap.Costs),
		FixedCostBase:    base,
		CapacityHours:    s.snap.Settings.CapacityHours,
		BEPHourlyRate:    rate,
		BEPRounded:       calculator.Round(rate),
		AnnualProjection: calculator.AnnualProjection(s.snap.Costs),
		AssetBookValue:   bookValue,
		Source:           s.source,
	}
}

// bepRate is the current hourly break-even rate. Callers hold the lock.
func (s *State) bepRate() float64 {
	base := calculator.FixedCostBase(s.source, s.snap.Costs, s.snap.Assets, s.now())
	return calculator.HourlyBreakEvenRate(base, s.snap.Settings.CapacityHours)
}

// BreakEvenCurve samples revenue against costs across capacity.
func (s *State) BreakEvenCurve(steps int) []calculator.CurvePoint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	base := calculator.FixedCostBase(s.source, s.snap.Costs, s.snap.Assets, s.now())
	capacity := s.snap.Settings.CapacityHours
	rate := calculator.HourlyBreakEvenRate(base, capacity)
	price := calculator.AveragePricePerHour(s.snap.Services, rate)
	return calculator.BreakEvenCurve(base, calculator.TotalVariableCosts(s.snap.Costs), capacity, price, steps)
}
