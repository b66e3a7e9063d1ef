// Package apiv1 defines the messages of the agencydesk v1 RPC API.
//
// Money is in whole pesos. Dates are "YYYY-MM-DD" strings; an empty date is
// unset. Months are 0-based (0 is January).
package apiv1

// Cost is a cost ledger line.
type Cost struct {
	ID       string `json:"id"`
	Name     string `json:"name" validate:"required,max=200"`
	Amount   int64  `json:"amount" validate:"gte=0"`
	Type     string `json:"type" validate:"omitempty,oneof=Fijo Variable"`
	Category string `json:"category" validate:"max=100"`
	IsAsset  bool   `json:"isAsset,omitempty"`
	AssetID  string `json:"assetId,omitempty"`
}

// Asset is a depreciable purchase. The derived figures are filled in on
// responses and ignored on requests.
type Asset struct {
	ID           string `json:"id"`
	Name         string `json:"name" validate:"required,max=200"`
	PurchaseDate string `json:"purchaseDate" validate:"omitempty,datetime=2006-01-02"`
	InitialValue int64  `json:"initialValue" validate:"gt=0"`
	UsefulLife   int    `json:"usefulLife" validate:"gte=1,lte=100"`

	CurrentValue        int64 `json:"currentValue"`
	AnnualDepreciation  int64 `json:"annualDepreciation"`
	MonthlyDepreciation int64 `json:"monthlyDepreciation"`
}

// Service is a catalog entry. Price is computed by the server.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours" validate:"gte=0"`
	Margin      float64 `json:"margin" validate:"gte=0,lt=100"`
	Price       int64   `json:"price"`

	// Output only. The margin Price carries at today's BEP rate, which
	// drifts from Margin as costs change.
	RealizedMargin float64 `json:"realizedMargin"`
	Tier           string  `json:"tier"`
}

// Client is a customer record. LastTotal is maintained by quote saves.
type Client struct {
	ID        string `json:"id"`
	Name      string `json:"name" validate:"required,max=200"`
	RUT       string `json:"rut"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	Giro      string `json:"giro,omitempty"`
	LastTotal int64  `json:"lastTotal"`
}

// Contact carries optional client fields captured in the quote builder.
type Contact struct {
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
	City  string `json:"city"`
	Giro  string `json:"giro"`
}

// QuoteItem is a quote line.
type QuoteItem struct {
	ID          string `json:"id"`
	ServiceID   string `json:"serviceId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price" validate:"gte=0"`
	Quantity    int64  `json:"quantity"`
}

// Quote is a folio. Total is the net subtotal, recomputed on save.
type Quote struct {
	ID           string      `json:"id"`
	ClientID     string      `json:"clientId"`
	ClientName   string      `json:"clientName"`
	ClientRUT    string      `json:"clientRut"`
	Date         string      `json:"date" validate:"omitempty,datetime=2006-01-02"`
	ValidUntil   string      `json:"validUntil" validate:"omitempty,datetime=2006-01-02"`
	DeliveryDate string      `json:"deliveryDate" validate:"omitempty,datetime=2006-01-02"`
	Items        []QuoteItem `json:"items" validate:"dive"`
	Total        int64       `json:"total"`
	Gross        int64       `json:"gross"`
	Status       string      `json:"status" validate:"omitempty,oneof=Borrador Enviado Aprobado Rechazado"`
	Terms        string      `json:"terms"`
}

// Totals are the net subtotal, the 19% IVA and the gross total.
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
	Gross    int64 `json:"gross"`
}

// Settings is the company profile.
type Settings struct {
	CompanyName   string  `json:"companyName"`
	RUT           string  `json:"rut"`
	Address       string  `json:"address"`
	LogoURL       string  `json:"logoUrl" validate:"omitempty,url"`
	ContactEmail  string  `json:"contactEmail" validate:"omitempty,email"`
	Phone         string  `json:"phone"`
	CapacityHours float64 `json:"capacityHours" validate:"gte=0"`
}

// TermTemplate is a reusable terms text.
type TermTemplate struct {
	ID      string `json:"id"`
	Name    string `json:"name" validate:"required,max=200"`
	Content string `json:"content"`
}

// MonthlySale is the income recorded for one month.
type MonthlySale struct {
	Year  int   `json:"year" validate:"gte=1900,lte=9999"`
	Month int   `json:"month" validate:"gte=0,lte=11"`
	Sales int64 `json:"sales" validate:"gte=0"`
}
