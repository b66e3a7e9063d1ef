package apiv1

// Summary digests the cost ledger. FixedCostBase is what the BEP rate
// covers under the configured depreciation source ("ledger" or "registry").
type Summary struct {
	TotalCosts         int64   `json:"totalCosts"`
	FixedCosts         int64   `json:"fixedCosts"`
	VariableCosts      int64   `json:"variableCosts"`
	FixedCostBase      int64   `json:"fixedCostBase"`
	CapacityHours      float64 `json:"capacityHours"`
	BEPHourlyRate      float64 `json:"bepHourlyRate"`
	BEPRounded         int64   `json:"bepRounded"`
	AnnualProjection   int64   `json:"annualProjection"`
	AssetBookValue     int64   `json:"assetBookValue"`
	DepreciationSource string  `json:"depreciationSource"`
}

type GetSummaryRequest struct{}

type GetSummaryResponse struct {
	Summary Summary `json:"summary"`
}

type ListCostsRequest struct{}

type ListCostsResponse struct {
	Costs []Cost `json:"costs"`
}

type AddCostRequest struct {
	Cost Cost `json:"cost"`
}

type AddCostResponse struct {
	Cost Cost `json:"cost"`
}

type DeleteCostRequest struct {
	CostID string `json:"costId" validate:"required"`
}

type DeleteCostResponse struct{}

// ImportCostsRequest carries tab-separated lines: name, amount, type,
// category. Lines that cannot be read are skipped.
type ImportCostsRequest struct {
	Text string `json:"text" validate:"required"`
}

type ImportCostsResponse struct {
	Costs []Cost `json:"costs"`
}

type ListAssetsRequest struct{}

type ListAssetsResponse struct {
	Assets []Asset `json:"assets"`
}

type SaveAssetRequest struct {
	Asset Asset `json:"asset"`
}

type SaveAssetResponse struct {
	Asset Asset `json:"asset"`
}

type DeleteAssetRequest struct {
	AssetID string `json:"assetId" validate:"required"`
}

type DeleteAssetResponse struct{}

// AddAssetDepreciationRequest names a registered asset by ID, or carries an
// unregistered one inline.
type AddAssetDepreciationRequest struct {
	AssetID string `json:"assetId" validate:"required_without=Asset"`
	Asset   *Asset `json:"asset,omitempty" validate:"omitempty"`
}

type AddAssetDepreciationResponse struct {
	Cost Cost `json:"cost"`
}

type RecordMonthlySaleRequest struct {
	Sale MonthlySale `json:"sale"`
}

type RecordMonthlySaleResponse struct {
	Sale MonthlySale `json:"sale"`
}

type CashFlowMonth struct {
	Month    int    `json:"month"`
	Label    string `json:"label"`
	Income   int64  `json:"income"`
	Expenses int64  `json:"expenses"`
	Profit   int64  `json:"profit"`
}

// GetCashFlowRequest defaults Year to the current year.
type GetCashFlowRequest struct {
	Year int `json:"year" validate:"omitempty,gte=1900,lte=9999"`
}

type GetCashFlowResponse struct {
	Year   int             `json:"year"`
	Months []CashFlowMonth `json:"months"`
}

type CurvePoint struct {
	Hours   int64 `json:"hours"`
	Revenue int64 `json:"revenue"`
	Costs   int64 `json:"costs"`
	Fixed   int64 `json:"fixed"`
}

// GetBreakEvenCurveRequest defaults Steps to 10.
type GetBreakEvenCurveRequest struct {
	Steps int `json:"steps" validate:"omitempty,gte=1,lte=200"`
}

type GetBreakEvenCurveResponse struct {
	Points []CurvePoint `json:"points"`
}
