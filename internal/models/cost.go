package models

import "strings"

// CostType classifies a ledger line. Only fixed costs feed the BEP rate.
type CostType string

const (
	CostTypeFixed    CostType = "Fijo"
	CostTypeVariable CostType = "Variable"
)

// DefaultCostCategory is used when an imported line has no category.
const DefaultCostCategory = "General"

// ParseCostType maps free text to a CostType. Anything that is not
// "variable" (case-insensitive) is a fixed cost.
func ParseCostType(s string) CostType {
	if strings.EqualFold(strings.TrimSpace(s), string(CostTypeVariable)) {
		return CostTypeVariable
	}
	return CostTypeFixed
}

// Valid reports whether t is one of the known cost types.
func (t CostType) Valid() bool {
	return t == CostTypeFixed || t == CostTypeVariable
}

// Cost is one expense line in the cost ledger.
// Lines are created by manual entry, bulk import or the asset depreciation
// shortcut, and are only ever removed, never edited in place.
type Cost struct {
	// ID is the unique identifier for the line (UUID format).
	ID string `json:"id"`

	Name string `json:"name"`

	// Amount is the monthly amount. Never negative.
	Amount int64 `json:"amount"`

	Type     CostType `json:"type"`
	Category string   `json:"category"`

	// IsAsset marks a line derived from an asset purchase.
	IsAsset bool `json:"isAsset,omitempty"`

	// AssetID links the line to the registry entry it was derived from.
	// Empty for lines created before the registry existed.
	AssetID string `json:"assetId,omitempty"`
}
