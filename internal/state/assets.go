package state

import (
	"context"
	"strings"

	"github.com/mmynk/agencydesk/internal/calculator"
	"github.com/mmynk/agencydesk/internal/models"
	"github.com/mmynk/agencydesk/internal/storage"
)

// DepreciationCategory is the ledger category of asset-derived lines.
const DepreciationCategory = "Tecnología"

// AssetView is an asset with its derived figures as of now.
type AssetView struct {
	models.Asset
	CurrentValue        int64 `json:"currentValue"`
	AnnualDepreciation  int64 `json:"annualDepreciation"`
	MonthlyDepreciation int64 `json:"monthlyDepreciation"`
}

// Assets returns the registry with current values recomputed.
func (s *State) Assets() []AssetView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	views := make([]AssetView, len(s.snap.Assets))
	for i, a := range s.snap.Assets {
		views[i] = AssetView{
			Asset:               a,
			CurrentValue:        calculator.CurrentValue(a, now),
			AnnualDepreciation:  calculator.Round(calculator.AnnualDepreciation(a)),
			MonthlyDepreciation: calculator.MonthlyDepreciation(a),
		}
	}
	return views
}

func validateAsset(a *models.Asset) error {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return invalidf("asset name is required")
	}
	if a.InitialValue <= 0 {
		return invalidf("asset value must be greater than zero")
	}
	if a.UsefulLife <= 0 {
		return invalidf("asset useful life must be at least one year")
	}
	return nil
}

// SaveAsset inserts a (without ID) or replaces the asset with the same ID.
// A missing purchase date means today.
func (s *State) SaveAsset(ctx context.Context, a models.Asset) (models.Asset, error) {
	if err := validateAsset(&a); err != nil {
		return models.Asset{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if a.PurchaseDate.IsZero() {
		a.PurchaseDate = s.today()
	}
	if a.ID == "" {
		a.ID = s.newID()
		s.snap.Assets = append(s.snap.Assets, a)
	} else {
		i := indexOf(s.snap.Assets, func(x models.Asset) bool { return x.ID == a.ID })
		if i < 0 {
			return models.Asset{}, notFoundf("asset %s", a.ID)
		}
		s.snap.Assets[i] = a
	}
	s.commit(ctx, storage.KeyAssets)
	return a, nil
}

// DeleteAsset removes an asset from the registry. Ledger lines derived
// from it stay.
func (s *State) DeleteAsset(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.snap.Assets, func(a models.Asset) bool { return a.ID == id })
	if i < 0 {
		return notFoundf("asset %s", id)
	}
	s.snap.Assets = append(s.snap.Assets[:i:i], s.snap.Assets[i+1:]...)
	s.commit(ctx, storage.KeyAssets)
	return nil
}

// AddAssetDepreciationCost turns an asset purchase into a recurring fixed
// ledger line worth its monthly depreciation. The asset need not be in the
// registry; when it is, the line keeps its ID. With the registry as the
// depreciation source the ledger line does not reach the BEP, so an asset
// missing from the registry is registered too.
func (s *State) AddAssetDepreciationCost(ctx context.Context, a models.Asset) (models.Cost, error) {
	if err := validateAsset(&a); err != nil {
		return models.Cost{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	keys := []storage.Key{storage.KeyCosts}
	if s.source == calculator.DepreciationFromRegistry {
		registered := a.ID != "" && indexOf(s.snap.Assets, func(x models.Asset) bool { return x.ID == a.ID }) >= 0
		if !registered {
			if a.ID == "" {
				a.ID = s.newID()
			}
			if a.PurchaseDate.IsZero() {
				a.PurchaseDate = s.today()
			}
			s.snap.Assets = append(s.snap.Assets, a)
			keys = append(keys, storage.KeyAssets)
		}
	}

	cost := models.Cost{
		ID:       s.newID(),
		Name:     "Depreciación: " + a.Name,
		Amount:   calculator.MonthlyDepreciation(a),
		Type:     models.CostTypeFixed,
		Category: DepreciationCategory,
		IsAsset:  true,
		AssetID:  a.ID,
	}
	s.snap.Costs = append(s.snap.Costs, cost)
	s.commit(ctx, keys...)
	return cost, nil
}
