package apiv1connect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	v1 "github.com/mmynk/agencydesk/pkg/api/v1"
)

// CatalogServiceName is the fully-qualified name of the CatalogService.
const CatalogServiceName = "agencydesk.v1.CatalogService"

// Procedure paths, one per RPC.
const (
	CatalogServiceListServicesProcedure  = "/agencydesk.v1.CatalogService/ListServices"
	CatalogServicePreviewPriceProcedure  = "/agencydesk.v1.CatalogService/PreviewPrice"
	CatalogServiceSaveServiceProcedure   = "/agencydesk.v1.CatalogService/SaveService"
	CatalogServiceDeleteServiceProcedure = "/agencydesk.v1.CatalogService/DeleteService"
)

// CatalogServiceHandler serves the service catalog and margin pricing.
type CatalogServiceHandler interface {
	ListServices(context.Context, *connect.Request[v1.ListServicesRequest]) (*connect.Response[v1.ListServicesResponse], error)
	PreviewPrice(context.Context, *connect.Request[v1.PreviewPriceRequest]) (*connect.Response[v1.PreviewPriceResponse], error)
	SaveService(context.Context, *connect.Request[v1.SaveServiceRequest]) (*connect.Response[v1.SaveServiceResponse], error)
	DeleteService(context.Context, *connect.Request[v1.DeleteServiceRequest]) (*connect.Response[v1.DeleteServiceResponse], error)
}

// NewCatalogServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewCatalogServiceHandler(svc CatalogServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	handlers := map[string]http.Handler{
		CatalogServiceListServicesProcedure:  connect.NewUnaryHandler(CatalogServiceListServicesProcedure, svc.ListServices, opts...),
		CatalogServicePreviewPriceProcedure:  connect.NewUnaryHandler(CatalogServicePreviewPriceProcedure, svc.PreviewPrice, opts...),
		CatalogServiceSaveServiceProcedure:   connect.NewUnaryHandler(CatalogServiceSaveServiceProcedure, svc.SaveService, opts...),
		CatalogServiceDeleteServiceProcedure: connect.NewUnaryHandler(CatalogServiceDeleteServiceProcedure, svc.DeleteService, opts...),
	}
	return "/" + CatalogServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

// CatalogServiceClient is a client for the CatalogService.
type CatalogServiceClient interface {
	ListServices(context.Context, *connect.Request[v1.ListServicesRequest]) (*connect.Response[v1.ListServicesResponse], error)
	PreviewPrice(context.Context, *connect.Request[v1.PreviewPriceRequest]) (*connect.Response[v1.PreviewPriceResponse], error)
	SaveService(context.Context, *connect.Request[v1.SaveServiceRequest]) (*connect.Response[v1.SaveServiceResponse], error)
	DeleteService(context.Context, *connect.Request[v1.DeleteServiceRequest]) (*connect.Response[v1.DeleteServiceResponse], error)
}

// NewCatalogServiceClient constructs a client for the CatalogService. baseURL is the
// server root, e.g. http://localhost:8080.
func NewCatalogServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CatalogServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &catalogServiceClient{
		listServices:  connect.NewClient[v1.ListServicesRequest, v1.ListServicesResponse](httpClient, baseURL+CatalogServiceListServicesProcedure, opts...),
		previewPrice:  connect.NewClient[v1.PreviewPriceRequest, v1.PreviewPriceResponse](httpClient, baseURL+CatalogServicePreviewPriceProcedure, opts...),
		saveService:   connect.NewClient[v1.SaveServiceRequest, v1.SaveServiceResponse](httpClient, baseURL+CatalogServiceSaveServiceProcedure, opts...),
		deleteService: connect.NewClient[v1.DeleteServiceRequest, v1.DeleteServiceResponse](httpClient, baseURL+CatalogServiceDeleteServiceProcedure, opts...),
	}
}

type catalogServiceClient struct {
	listServices  *connect.Client[v1.ListServicesRequest, v1.ListServicesResponse]
	previewPrice  *connect.Client[v1.PreviewPriceRequest, v1.PreviewPriceResponse]
	saveService   *connect.Client[v1.SaveServiceRequest, v1.SaveServiceResponse]
	deleteService *connect.Client[v1.DeleteServiceRequest, v1.DeleteServiceResponse]
}

func (c *catalogServiceClient) ListServices(ctx context.Context, req *connect.Request[v1.ListServicesRequest]) (*connect.Response[v1.ListServicesResponse], error) {
	return c.listServices.CallUnary(ctx, req)
}

func (c *catalogServiceClient) PreviewPrice(ctx context.Context, req *connect.Request[v1.PreviewPriceRequest]) (*connect.Response[v1.PreviewPriceResponse], error) {
	return c.previewPrice.CallUnary(ctx, req)
}

func (c *catalogServiceClient) SaveService(ctx context.Context, req *connect.Request[v1.SaveServiceRequest]) (*connect.Response[v1.SaveServiceResponse], error) {
	return c.saveService.CallUnary(ctx, req)
}

func (c *catalogServiceClient) DeleteService(ctx context.Context, req *connect.Request[v1.DeleteServiceRequest]) (*connect.Response[v1.DeleteServiceResponse], error) {
	return c.deleteService.CallUnary(ctx, req)
}
