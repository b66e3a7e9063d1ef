package models

// QuoteStatus is a presentation flag on a quote. Any status may follow any
// other; changing it never touches items or totals.
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "Borrador"
	QuoteStatusSent     QuoteStatus = "Enviado"
	QuoteStatusApproved QuoteStatus = "Aprobado"
	QuoteStatusRejected QuoteStatus = "Rechazado"
)

// QuoteStatuses lists every status in workflow order.
var QuoteStatuses = []QuoteStatus{
	QuoteStatusDraft,
	QuoteStatusSent,
	QuoteStatusApproved,
	QuoteStatusRejected,
}

// Valid reports whether s is a known status.
func (s QuoteStatus) Valid() bool {
	for _, known := range QuoteStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Quote is a folio offered to a client.
type Quote struct {
	// ID is the human-facing folio, e.g. "COT-0042".
	ID string `json:"id"`

	// ClientID references the client record. It may dangle after the client
	// is deleted; the snapshot fields below keep the quote readable.
	ClientID   string `json:"clientId"`
	ClientName string `json:"clientName"`
	ClientRUT  string `json:"clientRut"`

	Date         Date `json:"date"`
	ValidUntil   Date `json:"validUntil"`
	DeliveryDate Date `json:"deliveryDate"`

	Items []QuoteItem `json:"items"`

	// Total is the net subtotal before IVA, recomputed from Items on save.
	Total int64 `json:"total"`

	Status QuoteStatus `json:"status"`
	Terms  string      `json:"terms"`
}

// QuoteItem is one line on a quote. It keeps its own copy of the service
// fields so it survives deletion of the service.
type QuoteItem struct {
	ID          string `json:"id"`
	ServiceID   string `json:"serviceId"`
	Name        string `json:"name"`
	Description string `json:"description"`

	// Price is the unit price, copied from the service and editable after.
	Price    int64 `json:"price"`
	Quantity int64 `json:"quantity"`
}
