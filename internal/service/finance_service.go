package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/agencydesk/internal/state"
	v1 "github.com/mmynk/agencydesk/pkg/api/v1"
	"github.com/mmynk/agencydesk/pkg/api/v1/apiv1connect"
)

// defaultCurveSteps is the number of intervals of the break-even chart.
const defaultCurveSteps = 10

// FinanceService implements the Connect FinanceService.
type FinanceService struct {
	state *state.State
}

var _ apiv1connect.FinanceServiceHandler = (*FinanceService)(nil)

// NewFinanceService creates a FinanceService over the application state.
func NewFinanceService(st *state.State) *FinanceService {
	return &FinanceService{state: st}
}

// GetSummary returns the ledger totals and the BEP rate.
func (s *FinanceService) GetSummary(ctx context.Context, req *connect.Request[v1.GetSummaryRequest]) (*connect.Response[v1.GetSummaryResponse], error) {
	sum := s.state.Summary()
	slog.Debug("GetSummary successful",
		"fixed_cost_base", sum.FixedCostBase,
		"bep_hourly_rate", sum.BEPRounded,
		"source", sum.Source,
	)
	return connect.NewResponse(&v1.GetSummaryResponse{Summary: summaryToAPI(sum)}), nil
}

// ListCosts returns the ledger.
func (s *FinanceService) ListCosts(ctx context.Context, req *connect.Request[v1.ListCostsRequest]) (*connect.Response[v1.ListCostsResponse], error) {
	costs := s.state.Costs()
	return connect.NewResponse(&v1.ListCostsResponse{Costs: convertAll(costs, costToAPI)}), nil
}

// AddCost appends a ledger line.
func (s *FinanceService) AddCost(ctx context.Context, req *connect.Request[v1.AddCostRequest]) (*connect.Response[v1.AddCostResponse], error) {
	slog.Info("AddCost request received",
		"name", req.Msg.Cost.Name,
		"amount", req.Msg.Cost.Amount,
		"type", req.Msg.Cost.Type,
	)

	cost, err := s.state.AddCost(ctx, costFromAPI(req.Msg.Cost))
	if err != nil {
		slog.Error("AddCost failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Cost added", "cost_id", cost.ID)
	return connect.NewResponse(&v1.AddCostResponse{Cost: costToAPI(cost)}), nil
}

// DeleteCost removes a ledger line.
func (s *FinanceService) DeleteCost(ctx context.Context, req *connect.Request[v1.DeleteCostRequest]) (*connect.Response[v1.DeleteCostResponse], error) {
	if err := s.state.DeleteCost(ctx, req.Msg.CostID); err != nil {
		slog.Error("DeleteCost failed", "cost_id", req.Msg.CostID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Cost deleted", "cost_id", req.Msg.CostID)
	return connect.NewResponse(&v1.DeleteCostResponse{}), nil
}

// ImportCosts appends every readable line of a pasted spreadsheet block.
func (s *FinanceService) ImportCosts(ctx context.Context, req *connect.Request[v1.ImportCostsRequest]) (*connect.Response[v1.ImportCostsResponse], error) {
	added := s.state.ImportCosts(ctx, req.Msg.Text)

	slog.Info("Costs imported", "count", len(added))
	return connect.NewResponse(&v1.ImportCostsResponse{Costs: convertAll(added, costToAPI)}), nil
}

// ListAssets returns the asset registry with current book values.
func (s *FinanceService) ListAssets(ctx context.Context, req *connect.Request[v1.ListAssetsRequest]) (*connect.Response[v1.ListAssetsResponse], error) {
	assets := s.state.Assets()
	return connect.NewResponse(&v1.ListAssetsResponse{Assets: convertAll(assets, assetToAPI)}), nil
}

// SaveAsset inserts or replaces an asset.
func (s *FinanceService) SaveAsset(ctx context.Context, req *connect.Request[v1.SaveAssetRequest]) (*connect.Response[v1.SaveAssetResponse], error) {
	slog.Info("SaveAsset request received",
		"asset_id", req.Msg.Asset.ID,
		"name", req.Msg.Asset.Name,
		"initial_value", req.Msg.Asset.InitialValue,
	)

	asset, err := assetFromAPI(req.Msg.Asset)
	if err != nil {
		return nil, toConnectError(err)
	}
	saved, err := s.state.SaveAsset(ctx, asset)
	if err != nil {
		slog.Error("SaveAsset failed", "error", err)
		return nil, toConnectError(err)
	}

	view, err := s.assetView(saved.ID)
	if err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("Asset saved", "asset_id", saved.ID, "current_value", view.CurrentValue)
	return connect.NewResponse(&v1.SaveAssetResponse{Asset: view}), nil
}

func (s *FinanceService) assetView(id string) (v1.Asset, error) {
	for _, a := range s.state.Assets() {
		if a.ID == id {
			return assetToAPI(a), nil
		}
	}
	return v1.Asset{}, fmt.Errorf("%w: asset %s", state.ErrNotFound, id)
}

// DeleteAsset removes an asset from the registry.
func (s *FinanceService) DeleteAsset(ctx context.Context, req *connect.Request[v1.DeleteAssetRequest]) (*connect.Response[v1.DeleteAssetResponse], error) {
	if err := s.state.DeleteAsset(ctx, req.Msg.AssetID); err != nil {
		slog.Error("DeleteAsset failed", "asset_id", req.Msg.AssetID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Asset deleted", "asset_id", req.Msg.AssetID)
	return connect.NewResponse(&v1.DeleteAssetResponse{}), nil
}

// AddAssetDepreciation adds the monthly depreciation of an asset to the
// ledger as a fixed cost.
func (s *FinanceService) AddAssetDepreciation(ctx context.Context, req *connect.Request[v1.AddAssetDepreciationRequest]) (*connect.Response[v1.AddAssetDepreciationResponse], error) {
	src := req.Msg.Asset
	if req.Msg.AssetID != "" {
		view, err := s.assetView(req.Msg.AssetID)
		if err != nil {
			slog.Error("AddAssetDepreciation failed", "asset_id", req.Msg.AssetID, "error", err)
			return nil, toConnectError(err)
		}
		src = &view
	}
	if src == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("assetId or asset is required"))
	}
	asset, err := assetFromAPI(*src)
	if err != nil {
		return nil, toConnectError(err)
	}

	cost, err := s.state.AddAssetDepreciationCost(ctx, asset)
	if err != nil {
		slog.Error("AddAssetDepreciation failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Asset depreciation added to ledger",
		"asset", asset.Name,
		"cost_id", cost.ID,
		"monthly_amount", cost.Amount,
	)
	return connect.NewResponse(&v1.AddAssetDepreciationResponse{Cost: costToAPI(cost)}), nil
}

// RecordMonthlySale sets the income of one month.
func (s *FinanceService) RecordMonthlySale(ctx context.Context, req *connect.Request[v1.RecordMonthlySaleRequest]) (*connect.Response[v1.RecordMonthlySaleResponse], error) {
	sale, err := s.state.RecordMonthlySale(ctx, saleFromAPI(req.Msg.Sale))
	if err != nil {
		slog.Error("RecordMonthlySale failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Monthly sale recorded", "year", sale.Year, "month", sale.Month, "sales", sale.Sales)
	return connect.NewResponse(&v1.RecordMonthlySaleResponse{Sale: saleToAPI(sale)}), nil
}

// GetCashFlow returns twelve months of income against the current ledger.
func (s *FinanceService) GetCashFlow(ctx context.Context, req *connect.Request[v1.GetCashFlowRequest]) (*connect.Response[v1.GetCashFlowResponse], error) {
	year := req.Msg.Year
	if year == 0 {
		year = s.state.CurrentYear()
	}
	months := s.state.CashFlow(year)
	return connect.NewResponse(&v1.GetCashFlowResponse{
		Year:   year,
		Months: convertAll(months, cashFlowMonthToAPI),
	}), nil
}

// GetBreakEvenCurve samples revenue against costs across capacity.
func (s *FinanceService) GetBreakEvenCurve(ctx context.Context, req *connect.Request[v1.GetBreakEvenCurveRequest]) (*connect.Response[v1.GetBreakEvenCurveResponse], error) {
	steps := req.Msg.Steps
	if steps == 0 {
		steps = defaultCurveSteps
	}
	points := s.state.BreakEvenCurve(steps)
	return connect.NewResponse(&v1.GetBreakEvenCurveResponse{Points: convertAll(points, curvePointToAPI)}), nil
}
