package apiv1

type ListServicesRequest struct{}

type ListServicesResponse struct {
	Services []Service `json:"services"`
}

// PreviewPriceRequest prices hours at a margin on price. Margin must stay
// below 100.
type PreviewPriceRequest struct {
	Hours  float64 `json:"hours" validate:"gte=0"`
	Margin float64 `json:"margin" validate:"gte=0,lt=100"`
}

type PreviewPriceResponse struct {
	Price         int64   `json:"price"`
	BEPHourlyRate float64 `json:"bepHourlyRate"`
	BaseCost      int64   `json:"baseCost"`
	// Tier is "high", "medium" or "low".
	Tier string `json:"tier"`
}

type SaveServiceRequest struct {
	Service Service `json:"service"`
}

type SaveServiceResponse struct {
	Service Service `json:"service"`
}

type DeleteServiceRequest struct {
	ServiceID string `json:"serviceId" validate:"required"`
}

type DeleteServiceResponse struct{}
