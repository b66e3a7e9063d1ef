package apiv1

type NewQuoteRequest struct{}

type NewQuoteResponse struct {
	Quote Quote `json:"quote"`
}

type ComputeTotalsRequest struct {
	Items []QuoteItem `json:"items" validate:"dive"`
}

type ComputeTotalsResponse struct {
	Totals Totals `json:"totals"`
}

// SaveQuoteRequest upserts a quote by folio. Contact fields are merged into
// the client record matched by the quote's RUT.
type SaveQuoteRequest struct {
	Quote   Quote    `json:"quote"`
	Contact *Contact `json:"contact,omitempty"`
}

type SaveQuoteResponse struct {
	Quote  Quote  `json:"quote"`
	Totals Totals `json:"totals"`
}

type GetQuoteRequest struct {
	QuoteID string `json:"quoteId" validate:"required"`
}

type GetQuoteResponse struct {
	Quote  Quote  `json:"quote"`
	Totals Totals `json:"totals"`
}

// ListQuotesRequest optionally filters by status.
type ListQuotesRequest struct {
	Status string `json:"status" validate:"omitempty,oneof=Borrador Enviado Aprobado Rechazado"`
}

type ListQuotesResponse struct {
	Quotes []Quote `json:"quotes"`
}

type SetQuoteStatusRequest struct {
	QuoteID string `json:"quoteId" validate:"required"`
	Status  string `json:"status" validate:"required,oneof=Borrador Enviado Aprobado Rechazado"`
}

type SetQuoteStatusResponse struct {
	Quote Quote `json:"quote"`
}

type DeleteQuoteRequest struct {
	QuoteID string `json:"quoteId" validate:"required"`
}

type DeleteQuoteResponse struct{}

// ItemFromServiceRequest copies a catalog service into a new quote line.
type ItemFromServiceRequest struct {
	ServiceID string `json:"serviceId" validate:"required"`
	Quantity  int64  `json:"quantity"`
}

type ItemFromServiceResponse struct {
	Item QuoteItem `json:"item"`
}

type ListTermTemplatesRequest struct{}

type ListTermTemplatesResponse struct {
	Templates []TermTemplate `json:"templates"`
}

type SaveTermTemplateRequest struct {
	Template TermTemplate `json:"template"`
}

type SaveTermTemplateResponse struct {
	Template TermTemplate `json:"template"`
}

type DeleteTermTemplateRequest struct {
	TemplateID string `json:"templateId" validate:"required"`
}

type DeleteTermTemplateResponse struct{}
