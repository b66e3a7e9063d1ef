package models

// Settings is the company profile singleton.
type Settings struct {
	CompanyName  string `json:"companyName"`
	RUT          string `json:"rut"`
	Address      string `json:"address"`
	LogoURL      string `json:"logoUrl"`
	ContactEmail string `json:"contactEmail"`
	Phone        string `json:"phone"`

	// CapacityHours is the monthly billable capacity used by the BEP rate.
	CapacityHours float64 `json:"capacityHours"`
}

// TermTemplate is reusable terms text offered when building a quote.
type TermTemplate struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

// MonthlySale is the income recorded for one month. Month is 0-based
// (0 = January) to match the persisted shape.
type MonthlySale struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Sales int64 `json:"sales"`
}
