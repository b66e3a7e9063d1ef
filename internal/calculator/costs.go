package calculator

import (
	"fmt"
	"time"

	"github.com/mmynk/agencydesk/internal/models"
)

// TotalCosts sums every ledger line regardless of type.
func TotalCosts(costs []models.Cost) int64 {
	var total int64
	for _, c := range costs {
		total += c.Amount
	}
	return total
}

// TotalFixedCosts sums the lines of type Fijo.
func TotalFixedCosts(costs []models.Cost) int64 {
	return totalOfType(costs, models.CostTypeFixed)
}

// TotalVariableCosts sums the lines of type Variable.
func TotalVariableCosts(costs []models.Cost) int64 {
	return totalOfType(costs, models.CostTypeVariable)
}

func totalOfType(costs []models.Cost, t models.CostType) int64 {
	var total int64
	for _, c := range costs {
		if c.Type == t {
			total += c.Amount
		}
	}
	return total
}

// AnnualProjection extrapolates the monthly ledger to twelve months.
func AnnualProjection(costs []models.Cost) int64 {
	return TotalCosts(costs) * 12
}

// DepreciationSource decides where asset depreciation enters the fixed cost
// base. The ledger lines created from an asset purchase and the asset
// registry describe the same purchases, so only one of them may count.
type DepreciationSource string

const (
	// DepreciationFromLedger counts asset-tagged ledger lines like any other
	// fixed cost and treats the registry as informational.
	DepreciationFromLedger DepreciationSource = "ledger"

	// DepreciationFromRegistry ignores asset-tagged ledger lines and adds the
	// monthly depreciation of every registered asset still in service.
	DepreciationFromRegistry DepreciationSource = "registry"
)

// ParseDepreciationSource validates a configured source name.
func ParseDepreciationSource(s string) (DepreciationSource, error) {
	switch DepreciationSource(s) {
	case DepreciationFromLedger, DepreciationFromRegistry:
		return DepreciationSource(s), nil
	}
	return "", fmt.Errorf("unknown depreciation source %q (want %q or %q)", s, DepreciationFromLedger, DepreciationFromRegistry)
}

// FixedCostBase returns the fixed costs that the BEP rate must cover under
// the given depreciation source.
func FixedCostBase(source DepreciationSource, costs []models.Cost, assets []models.Asset, now time.Time) int64 {
	if source != DepreciationFromRegistry {
		return TotalFixedCosts(costs)
	}

	var total int64
	for _, c := range costs {
		if c.Type == models.CostTypeFixed && !c.IsAsset {
			total += c.Amount
		}
	}
	for _, a := range assets {
		if CurrentValue(a, now) > 0 {
			total += MonthlyDepreciation(a)
		}
	}
	return total
}
