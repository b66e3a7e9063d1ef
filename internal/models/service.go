package models

// Service is a catalog entry. Price is computed from hours, margin and the
// BEP rate at save time and is not recomputed when the rate later changes.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`

	// Margin is the gross margin as a percentage of the sale price.
	Margin float64 `json:"margin"`

	Price int64 `json:"price"`
}
