package models

// Client is a customer record. RUT is the identifying field for upserts
// triggered by saving a quote.
type Client struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	RUT   string `json:"rut"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	City  string `json:"city"`

	// Giro is the optional business activity description.
	Giro string `json:"giro,omitempty"`

	// LastTotal is the total of the most recently saved quote for this client.
	LastTotal int64 `json:"lastTotal"`
}
