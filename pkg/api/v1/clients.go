package apiv1

// ListClientsRequest filters by a case-insensitive substring of name, RUT
// or phone. An empty query lists everyone.
type ListClientsRequest struct {
	Query string `json:"query"`
}

type ListClientsResponse struct {
	Clients []Client `json:"clients"`
}

type SaveClientRequest struct {
	Client Client `json:"client"`
}

type SaveClientResponse struct {
	Client Client `json:"client"`
}

type DeleteClientRequest struct {
	ClientID string `json:"clientId" validate:"required"`
}

type DeleteClientResponse struct{}

type ListClientQuotesRequest struct {
	ClientID string `json:"clientId" validate:"required"`
}

type ListClientQuotesResponse struct {
	Quotes []Quote `json:"quotes"`
}
