package models

// Asset is a purchased asset depreciated straight-line to zero over its
// useful life. Its current value is derived on every read, never stored.
type Asset struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	PurchaseDate Date   `json:"purchaseDate"`

	// InitialValue is the purchase price.
	InitialValue int64 `json:"initialValue"`

	// UsefulLife is in years and must be positive.
	UsefulLife int `json:"usefulLife"`
}
