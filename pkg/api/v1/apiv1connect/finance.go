package apiv1connect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	v1 "github.com/mmynk/agencydesk/pkg/api/v1"
)

// FinanceServiceName is the fully-qualified name of the FinanceService.
const FinanceServiceName = "agencydesk.v1.FinanceService"

// Procedure paths, one per RPC.
const (
	FinanceServiceGetSummaryProcedure           = "/agencydesk.v1.FinanceService/GetSummary"
	FinanceServiceListCostsProcedure            = "/agencydesk.v1.FinanceService/ListCosts"
	FinanceServiceAddCostProcedure              = "/agencydesk.v1.FinanceService/AddCost"
	FinanceServiceDeleteCostProcedure           = "/agencydesk.v1.FinanceService/DeleteCost"
	FinanceServiceImportCostsProcedure          = "/agencydesk.v1.FinanceService/ImportCosts"
	FinanceServiceListAssetsProcedure           = "/agencydesk.v1.FinanceService/ListAssets"
	FinanceServiceSaveAssetProcedure            = "/agencydesk.v1.FinanceService/SaveAsset"
	FinanceServiceDeleteAssetProcedure          = "/agencydesk.v1.FinanceService/DeleteAsset"
	FinanceServiceAddAssetDepreciationProcedure = "/agencydesk.v1.FinanceService/AddAssetDepreciation"
	FinanceServiceRecordMonthlySaleProcedure    = "/agencydesk.v1.FinanceService/RecordMonthlySale"
	FinanceServiceGetCashFlowProcedure          = "/agencydesk.v1.FinanceService/GetCashFlow"
	FinanceServiceGetBreakEvenCurveProcedure    = "/agencydesk.v1.FinanceService/GetBreakEvenCurve"
)

// FinanceServiceHandler serves the cost ledger, asset registry, BEP and cash flow.
type FinanceServiceHandler interface {
	GetSummary(context.Context, *connect.Request[v1.GetSummaryRequest]) (*connect.Response[v1.GetSummaryResponse], error)
	ListCosts(context.Context, *connect.Request[v1.ListCostsRequest]) (*connect.Response[v1.ListCostsResponse], error)
	AddCost(context.Context, *connect.Request[v1.AddCostRequest]) (*connect.Response[v1.AddCostResponse], error)
	DeleteCost(context.Context, *connect.Request[v1.DeleteCostRequest]) (*connect.Response[v1.DeleteCostResponse], error)
	ImportCosts(context.Context, *connect.Request[v1.ImportCostsRequest]) (*connect.Response[v1.ImportCostsResponse], error)
	ListAssets(context.Context, *connect.Request[v1.ListAssetsRequest]) (*connect.Response[v1.ListAssetsResponse], error)
	SaveAsset(context.Context, *connect.Request[v1.SaveAssetRequest]) (*connect.Response[v1.SaveAssetResponse], error)
	DeleteAsset(context.Context, *connect.Request[v1.DeleteAssetRequest]) (*connect.Response[v1.DeleteAssetResponse], error)
	AddAssetDepreciation(context.Context, *connect.Request[v1.AddAssetDepreciationRequest]) (*connect.Response[v1.AddAssetDepreciationResponse], error)
	RecordMonthlySale(context.Context, *connect.Request[v1.RecordMonthlySaleRequest]) (*connect.Response[v1.RecordMonthlySaleResponse], error)
	GetCashFlow(context.Context, *connect.Request[v1.GetCashFlowRequest]) (*connect.Response[v1.GetCashFlowResponse], error)
	GetBreakEvenCurve(context.Context, *connect.Request[v1.GetBreakEvenCurveRequest]) (*connect.Response[v1.GetBreakEvenCurveResponse], error)
}

// NewFinanceServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewFinanceServiceHandler(svc FinanceServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	handlers := map[string]http.Handler{
		FinanceServiceGetSummaryProcedure:           connect.NewUnaryHandler(FinanceServiceGetSummaryProcedure, svc.GetSummary, opts...),
		FinanceServiceListCostsProcedure:            connect.NewUnaryHandler(FinanceServiceListCostsProcedure, svc.ListCosts, opts...),
		FinanceServiceAddCostProcedure:              connect.NewUnaryHandler(FinanceServiceAddCostProcedure, svc.AddCost, opts...),
		FinanceServiceDeleteCostProcedure:           connect.NewUnaryHandler(FinanceServiceDeleteCostProcedure, svc.DeleteCost, opts...),
		FinanceServiceImportCostsProcedure:          connect.NewUnaryHandler(FinanceServiceImportCostsProcedure, svc.ImportCosts, opts...),
		FinanceServiceListAssetsProcedure:           connect.NewUnaryHandler(FinanceServiceListAssetsProcedure, svc.ListAssets, opts...),
		FinanceServiceSaveAssetProcedure:            connect.NewUnaryHandler(FinanceServiceSaveAssetProcedure, svc.SaveAsset, opts...),
		FinanceServiceDeleteAssetProcedure:          connect.NewUnaryHandler(FinanceServiceDeleteAssetProcedure, svc.DeleteAsset, opts...),
		FinanceServiceAddAssetDepreciationProcedure: connect.NewUnaryHandler(FinanceServiceAddAssetDepreciationProcedure, svc.AddAssetDepreciation, opts...),
		FinanceServiceRecordMonthlySaleProcedure:    connect.NewUnaryHandler(FinanceServiceRecordMonthlySaleProcedure, svc.RecordMonthlySale, opts...),
		FinanceServiceGetCashFlowProcedure:          connect.NewUnaryHandler(FinanceServiceGetCashFlowProcedure, svc.GetCashFlow, opts...),
		FinanceServiceGetBreakEvenCurveProcedure:    connect.NewUnaryHandler(FinanceServiceGetBreakEvenCurveProcedure, svc.GetBreakEvenCurve, opts...),
	}
	return "/" + FinanceServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

// FinanceServiceClient is a client for the FinanceService.
type FinanceServiceClient interface {
	GetSummary(context.Context, *connect.Request[v1.GetSummaryRequest]) (*connect.Response[v1.GetSummaryResponse], error)
	ListCosts(context.Context, *connect.Request[v1.ListCostsRequest]) (*connect.Response[v1.ListCostsResponse], error)
	AddCost(context.Context, *connect.Request[v1.AddCostRequest]) (*connect.Response[v1.AddCostResponse], error)
	DeleteCost(context.Context, *connect.Request[v1.DeleteCostRequest]) (*connect.Response[v1.DeleteCostResponse], error)
	ImportCosts(context.Context, *connect.Request[v1.ImportCostsRequest]) (*connect.Response[v1.ImportCostsResponse], error)
	ListAssets(context.Context, *connect.Request[v1.ListAssetsRequest]) (*connect.Response[v1.ListAssetsResponse], error)
	SaveAsset(context.Context, *connect.Request[v1.SaveAssetRequest]) (*connect.Response[v1.SaveAssetResponse], error)
	DeleteAsset(context.Context, *connect.Request[v1.DeleteAssetRequest]) (*connect.Response[v1.DeleteAssetResponse], error)
	AddAssetDepreciation(context.Context, *connect.Request[v1.AddAssetDepreciationRequest]) (*connect.Response[v1.AddAssetDepreciationResponse], error)
	RecordMonthlySale(context.Context, *connect.Request[v1.RecordMonthlySaleRequest]) (*connect.Response[v1.RecordMonthlySaleResponse], error)
	GetCashFlow(context.Context, *connect.Request[v1.GetCashFlowRequest]) (*connect.Response[v1.GetCashFlowResponse], error)
	GetBreakEvenCurve(context.Context, *connect.Request[v1.GetBreakEvenCurveRequest]) (*connect.Response[v1.GetBreakEvenCurveResponse], error)
}

// NewFinanceServiceClient constructs a client for the FinanceService. baseURL is the
// server root, e.g. http://localhost:8080.
func NewFinanceServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) FinanceServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &financeServiceClient{
		getSummary:           connect.NewClient[v1.GetSummaryRequest, v1.GetSummaryResponse](httpClient, baseURL+FinanceServiceGetSummaryProcedure, opts...),
		listCosts:            connect.NewClient[v1.ListCostsRequest, v1.ListCostsResponse](httpClient, baseURL+FinanceServiceListCostsProcedure, opts...),
		addCost:              connect.NewClient[v1.AddCostRequest, v1.AddCostResponse](httpClient, baseURL+FinanceServiceAddCostProcedure, opts...),
		deleteCost:           connect.NewClient[v1.DeleteCostRequest, v1.DeleteCostResponse](httpClient, baseURL+FinanceServiceDeleteCostProcedure, opts...),
		importCosts:          connect.NewClient[v1.ImportCostsRequest, v1.ImportCostsResponse](httpClient, baseURL+FinanceServiceImportCostsProcedure, opts...),
		listAssets:           connect.NewClient[v1.ListAssetsRequest, v1.ListAssetsResponse](httpClient, baseURL+FinanceServiceListAssetsProcedure, opts...),
		saveAsset:            connect.NewClient[v1.SaveAssetRequest, v1.SaveAssetResponse](httpClient, baseURL+FinanceServiceSaveAssetProcedure, opts...),
		deleteAsset:          connect.NewClient[v1.DeleteAssetRequest, v1.DeleteAssetResponse](httpClient, baseURL+FinanceServiceDeleteAssetProcedure, opts...),
		addAssetDepreciation: connect.NewClient[v1.AddAssetDepreciationRequest, v1.AddAssetDepreciationResponse](httpClient, baseURL+FinanceServiceAddAssetDepreciationProcedure, opts...),
		recordMonthlySale:    connect.NewClient[v1.RecordMonthlySaleRequest, v1.RecordMonthlySaleResponse](httpClient, baseURL+FinanceServiceRecordMonthlySaleProcedure, opts...),
		getCashFlow:          connect.NewClient[v1.GetCashFlowRequest, v1.GetCashFlowResponse](httpClient, baseURL+FinanceServiceGetCashFlowProcedure, opts...),
		getBreakEvenCurve:    connect.NewClient[v1.GetBreakEvenCurveRequest, v1.GetBreakEvenCurveResponse](httpClient, baseURL+FinanceServiceGetBreakEvenCurveProcedure, opts...),
	}
}

type financeServiceClient struct {
	getSummary           *connect.Client[v1.GetSummaryRequest, v1.GetSummaryResponse]
	listCosts            *connect.Client[v1.ListCostsRequest, v1.ListCostsResponse]
	addCost              *connect.Client[v1.AddCostRequest, v1.AddCostResponse]
	deleteCost           *connect.Client[v1.DeleteCostRequest, v1.DeleteCostResponse]
	importCosts          *connect.Client[v1.ImportCostsRequest, v1.ImportCostsResponse]
	listAssets           *connect.Client[v1.ListAssetsRequest, v1.ListAssetsResponse]
	saveAsset            *connect.Client[v1.SaveAssetRequest, v1.SaveAssetResponse]
	deleteAsset          *connect.Client[v1.DeleteAssetRequest, v1.DeleteAssetResponse]
	addAssetDepreciation *connect.Client[v1.AddAssetDepreciationRequest, v1.AddAssetDepreciationResponse]
	recordMonthlySale    *connect.Client[v1.RecordMonthlySaleRequest, v1.RecordMonthlySaleResponse]
	getCashFlow          *connect.Client[v1.GetCashFlowRequest, v1.GetCashFlowResponse]
	getBreakEvenCurve    *connect.Client[v1.GetBreakEvenCurveRequest, v1.GetBreakEvenCurveResponse]
}

func (c *financeServiceClient) GetSummary(ctx context.Context, req *connect.Request[v1.GetSummaryRequest]) (*connect.Response[v1.GetSummaryResponse], error) {
	return c.getSummary.CallUnary(ctx, req)
}

func (c *financeServiceClient) ListCosts(ctx context.Context, req *connect.Request[v1.ListCostsRequest]) (*connect.Response[v1.ListCostsResponse], error) {
	return c.listCosts.CallUnary(ctx, req)
}

func (c *financeServiceClient) AddCost(ctx context.Context, req *connect.Request[v1.AddCostRequest]) (*connect.Response[v1.AddCostResponse], error) {
	return c.addCost.CallUnary(ctx, req)
}

func (c *financeServiceClient) DeleteCost(ctx context.Context, req *connect.Request[v1.DeleteCostRequest]) (*connect.Response[v1.DeleteCostResponse], error) {
	return c.deleteCost.CallUnary(ctx, req)
}

func (c *financeServiceClient) ImportCosts(ctx context.Context, req *connect.Request[v1.ImportCostsRequest]) (*connect.Response[v1.ImportCostsResponse], error) {
	return c.importCosts.CallUnary(ctx, req)
}

func (c *financeServiceClient) ListAssets(ctx context.Context, req *connect.Request[v1.ListAssetsRequest]) (*connect.Response[v1.ListAssetsResponse], error) {
	return c.listAssets.CallUnary(ctx, req)
}

func (c *financeServiceClient) SaveAsset(ctx context.Context, req *connect.Request[v1.SaveAssetRequest]) (*connect.Response[v1.SaveAssetResponse], error) {
	return c.saveAsset.CallUnary(ctx, req)
}

func (c *financeServiceClient) DeleteAsset(ctx context.Context, req *connect.Request[v1.DeleteAssetRequest]) (*connect.Response[v1.DeleteAssetResponse], error) {
	return c.deleteAsset.CallUnary(ctx, req)
}

func (c *financeServiceClient) AddAssetDepreciation(ctx context.Context, req *connect.Request[v1.AddAssetDepreciationRequest]) (*connect.Response[v1.AddAssetDepreciationResponse], error) {
	return c.addAssetDepreciation.CallUnary(ctx, req)
}

func (c *financeServiceClient) RecordMonthlySale(ctx context.Context, req *connect.Request[v1.RecordMonthlySaleRequest]) (*connect.Response[v1.RecordMonthlySaleResponse], error) {
	return c.recordMonthlySale.CallUnary(ctx, req)
}

func (c *financeServiceClient) GetCashFlow(ctx context.Context, req *connect.Request[v1.GetCashFlowRequest]) (*connect.Response[v1.GetCashFlowResponse], error) {
	return c.getCashFlow.CallUnary(ctx, req)
}

func (c *financeServiceClient) GetBreakEvenCurve(ctx context.Context, req *connect.Request[v1.GetBreakEvenCurveRequest]) (*connect.Response[v1.GetBreakEvenCurveResponse], error) {
	return c.getBreakEvenCurve.CallUnary(ctx, req)
}
