package apiv1connect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	v1 "github.com/mmynk/agencydesk/pkg/api/v1"
)

// QuoteServiceName is the fully-qualified name of the QuoteService.
const QuoteServiceName = "agencydesk.v1.QuoteService"

// Procedure paths, one per RPC.
const (
	QuoteServiceNewQuoteProcedure           = "/agencydesk.v1.QuoteService/NewQuote"
	QuoteServiceComputeTotalsProcedure      = "/agencydesk.v1.QuoteService/ComputeTotals"
	QuoteServiceSaveQuoteProcedure          = "/agencydesk.v1.QuoteService/SaveQuote"
	QuoteServiceGetQuoteProcedure           = "/agencydesk.v1.QuoteService/GetQuote"
	QuoteServiceListQuotesProcedure         = "/agencydesk.v1.QuoteService/ListQuotes"
	QuoteServiceSetQuoteStatusProcedure     = "/agencydesk.v1.QuoteService/SetQuoteStatus"
	QuoteServiceDeleteQuoteProcedure        = "/agencydesk.v1.QuoteService/DeleteQuote"
	QuoteServiceItemFromServiceProcedure    = "/agencydesk.v1.QuoteService/ItemFromService"
	QuoteServiceListTermTemplatesProcedure  = "/agencydesk.v1.QuoteService/ListTermTemplates"
	QuoteServiceSaveTermTemplateProcedure   = "/agencydesk.v1.QuoteService/SaveTermTemplate"
	QuoteServiceDeleteTermTemplateProcedure = "/agencydesk.v1.QuoteService/DeleteTermTemplate"
)

// QuoteServiceHandler serves the quotes and terms templates.
type QuoteServiceHandler interface {
	NewQuote(context.Context, *connect.Request[v1.NewQuoteRequest]) (*connect.Response[v1.NewQuoteResponse], error)
	ComputeTotals(context.Context, *connect.Request[v1.ComputeTotalsRequest]) (*connect.Response[v1.ComputeTotalsResponse], error)
	SaveQuote(context.Context, *connect.Request[v1.SaveQuoteRequest]) (*connect.Response[v1.SaveQuoteResponse], error)
	GetQuote(context.Context, *connect.Request[v1.GetQuoteRequest]) (*connect.Response[v1.GetQuoteResponse], error)
	ListQuotes(context.Context, *connect.Request[v1.ListQuotesRequest]) (*connect.Response[v1.ListQuotesResponse], error)
	SetQuoteStatus(context.Context, *connect.Request[v1.SetQuoteStatusRequest]) (*connect.Response[v1.SetQuoteStatusResponse], error)
	DeleteQuote(context.Context, *connect.Request[v1.DeleteQuoteRequest]) (*connect.Response[v1.DeleteQuoteResponse], error)
	ItemFromService(context.Context, *connect.Request[v1.ItemFromServiceRequest]) (*connect.Response[v1.ItemFromServiceResponse], error)
	ListTermTemplates(context.Context, *connect.Request[v1.ListTermTemplatesRequest]) (*connect.Response[v1.ListTermTemplatesResponse], error)
	SaveTermTemplate(context.Context, *connect.Request[v1.SaveTermTemplateRequest]) (*connect.Response[v1.SaveTermTemplateResponse], error)
	DeleteTermTemplate(context.Context, *connect.Request[v1.DeleteTermTemplateRequest]) (*connect.Response[v1.DeleteTermTemplateResponse], error)
}

// NewQuoteServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewQuoteServiceHandler(svc QuoteServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	handlers := map[string]http.Handler{
		QuoteServiceNewQuoteProcedure:           connect.NewUnaryHandler(QuoteServiceNewQuoteProcedure, svc.NewQuote, opts...),
		QuoteServiceComputeTotalsProcedure:      connect.NewUnaryHandler(QuoteServiceComputeTotalsProcedure, svc.ComputeTotals, opts...),
		QuoteServiceSaveQuoteProcedure:          connect.NewUnaryHandler(QuoteServiceSaveQuoteProcedure, svc.SaveQuote, opts...),
		QuoteServiceGetQuoteProcedure:           connect.NewUnaryHandler(QuoteServiceGetQuoteProcedure, svc.GetQuote, opts...),
		QuoteServiceListQuotesProcedure:         connect.NewUnaryHandler(QuoteServiceListQuotesProcedure, svc.ListQuotes, opts...),
		QuoteServiceSetQuoteStatusProcedure:     connect.NewUnaryHandler(QuoteServiceSetQuoteStatusProcedure, svc.SetQuoteStatus, opts...),
		QuoteServiceDeleteQuoteProcedure:        connect.NewUnaryHandler(QuoteServiceDeleteQuoteProcedure, svc.DeleteQuote, opts...),
		QuoteServiceItemFromServiceProcedure:    connect.NewUnaryHandler(QuoteServiceItemFromServiceProcedure, svc.ItemFromService, opts...),
		QuoteServiceListTermTemplatesProcedure:  connect.NewUnaryHandler(QuoteServiceListTermTemplatesProcedure, svc.ListTermTemplates, opts...),
		QuoteServiceSaveTermTemplateProcedure:   connect.NewUnaryHandler(QuoteServiceSaveTermTemplateProcedure, svc.SaveTermTemplate, opts...),
		QuoteServiceDeleteTermTemplateProcedure: connect.NewUnaryHandler(QuoteServiceDeleteTermTemplateProcedure, svc.DeleteTermTemplate, opts...),
	}
	return "/" + QuoteServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

// QuoteServiceClient is a client for the QuoteService.
type QuoteServiceClient interface {
	NewQuote(context.Context, *connect.Request[v1.NewQuoteRequest]) (*connect.Response[v1.NewQuoteResponse], error)
	ComputeTotals(context.Context, *connect.Request[v1.ComputeTotalsRequest]) (*connect.Response[v1.ComputeTotalsResponse], error)
	SaveQuote(context.Context, *connect.Request[v1.SaveQuoteRequest]) (*connect.Response[v1.SaveQuoteResponse], error)
	GetQuote(context.Context, *connect.Request[v1.GetQuoteRequest]) (*connect.Response[v1.GetQuoteResponse], error)
	ListQuotes(context.Context, *connect.Request[v1.ListQuotesRequest]) (*connect.Response[v1.ListQuotesResponse], error)
	SetQuoteStatus(context.Context, *connect.Request[v1.SetQuoteStatusRequest]) (*connect.Response[v1.SetQuoteStatusResponse], error)
	DeleteQuote(context.Context, *connect.Request[v1.DeleteQuoteRequest]) (*connect.Response[v1.DeleteQuoteResponse], error)
	ItemFromService(context.Context, *connect.Request[v1.ItemFromServiceRequest]) (*connect.Response[v1.ItemFromServiceResponse], error)
	ListTermTemplates(context.Context, *connect.Request[v1.ListTermTemplatesRequest]) (*connect.Response[v1.ListTermTemplatesResponse], error)
	SaveTermTemplate(context.Context, *connect.Request[v1.SaveTermTemplateRequest]) (*connect.Response[v1.SaveTermTemplateResponse], error)
	DeleteTermTemplate(context.Context, *connect.Request[v1.DeleteTermTemplateRequest]) (*connect.Response[v1.DeleteTermTemplateResponse], error)
}

// NewQuoteServiceClient constructs a client for the QuoteService. baseURL is the
// server root, e.g. http://localhost:8080.
func NewQuoteServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) QuoteServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &quoteServiceClient{
		newQuote:           connect.NewClient[v1.NewQuoteRequest, v1.NewQuoteResponse](httpClient, baseURL+QuoteServiceNewQuoteProcedure, opts...),
		computeTotals:      connect.NewClient[v1.ComputeTotalsRequest, v1.ComputeTotalsResponse](httpClient, baseURL+QuoteServiceComputeTotalsProcedure, opts...),
		saveQuote:          connect.NewClient[v1.SaveQuoteRequest, v1.SaveQuoteResponse](httpClient, baseURL+QuoteServiceSaveQuoteProcedure, opts...),
		getQuote:           connect.NewClient[v1.GetQuoteRequest, v1.GetQuoteResponse](httpClient, baseURL+QuoteServiceGetQuoteProcedure, opts...),
		listQuotes:         connect.NewClient[v1.ListQuotesRequest, v1.ListQuotesResponse](httpClient, baseURL+QuoteServiceListQuotesProcedure, opts...),
		setQuoteStatus:     connect.NewClient[v1.SetQuoteStatusRequest, v1.SetQuoteStatusResponse](httpClient, baseURL+QuoteServiceSetQuoteStatusProcedure, opts...),
		deleteQuote:        connect.NewClient[v1.DeleteQuoteRequest, v1.DeleteQuoteResponse](httpClient, baseURL+QuoteServiceDeleteQuoteProcedure, opts...),
		itemFromService:    connect.NewClient[v1.ItemFromServiceRequest, v1.ItemFromServiceResponse](httpClient, baseURL+QuoteServiceItemFromServiceProcedure, opts...),
		listTermTemplates:  connect.NewClient[v1.ListTermTemplatesRequest, v1.ListTermTemplatesResponse](httpClient, baseURL+QuoteServiceListTermTemplatesProcedure, opts...),
		saveTermTemplate:   connect.NewClient[v1.SaveTermTemplateRequest, v1.SaveTermTemplateResponse](httpClient, baseURL+QuoteServiceSaveTermTemplateProcedure, opts...),
		deleteTermTemplate: connect.NewClient[v1.DeleteTermTemplateRequest, v1.DeleteTermTemplateResponse](httpClient, baseURL+QuoteServiceDeleteTermTemplateProcedure, opts...),
	}
}

type quoteServiceClient struct {
	newQuote           *connect.Client[v1.NewQuoteRequest, v1.NewQuoteResponse]
	computeTotals      *connect.Client[v1.ComputeTotalsRequest, v1.ComputeTotalsResponse]
	saveQuote          *connect.Client[v1.SaveQuoteRequest, v1.SaveQuoteResponse]
	getQuote           *connect.Client[v1.GetQuoteRequest, v1.GetQuoteResponse]
	listQuotes         *connect.Client[v1.ListQuotesRequest, v1.ListQuotesResponse]
	setQuoteStatus     *connect.Client[v1.SetQuoteStatusRequest, v1.SetQuoteStatusResponse]
	deleteQuote        *connect.Client[v1.DeleteQuoteRequest, v1.DeleteQuoteResponse]
	itemFromService    *connect.Client[v1.ItemFromServiceRequest, v1.ItemFromServiceResponse]
	listTermTemplates  *connect.Client[v1.ListTermTemplatesRequest, v1.ListTermTemplatesResponse]
	saveTermTemplate   *connect.Client[v1.SaveTermTemplateRequest, v1.SaveTermTemplateResponse]
	deleteTermTemplate *connect.Client[v1.DeleteTermTemplateRequest, v1.DeleteTermTemplateResponse]
}

func (c *quoteServiceClient) NewQuote(ctx context.Context, req *connect.Request[v1.NewQuoteRequest]) (*connect.Response[v1.NewQuoteResponse], error) {
	return c.newQuote.CallUnary(ctx, req)
}

func (c *quoteServiceClient) ComputeTotals(ctx context.Context, req *connect.Request[v1.ComputeTotalsRequest]) (*connect.Response[v1.ComputeTotalsResponse], error) {
	return c.computeTotals.CallUnary(ctx, req)
}

func (c *quoteServiceClient) SaveQuote(ctx context.Context, req *connect.Request[v1.SaveQuoteRequest]) (*connect.Response[v1.SaveQuoteResponse], error) {
	return c.saveQuote.CallUnary(ctx, req)
}

func (c *quoteServiceClient) GetQuote(ctx context.Context, req *connect.Request[v1.GetQuoteRequest]) (*connect.Response[v1.GetQuoteResponse], error) {
	return c.getQuote.CallUnary(ctx, req)
}

func (c *quoteServiceClient) ListQuotes(ctx context.Context, req *connect.Request[v1.ListQuotesRequest]) (*connect.Response[v1.ListQuotesResponse], error) {
	return c.listQuotes.CallUnary(ctx, req)
}

func (c *quoteServiceClient) SetQuoteStatus(ctx context.Context, req *connect.Request[v1.SetQuoteStatusRequest]) (*connect.Response[v1.SetQuoteStatusResponse], error) {
	return c.setQuoteStatus.CallUnary(ctx, req)
}

func (c *quoteServiceClient) DeleteQuote(ctx context.Context, req *connect.Request[v1.DeleteQuoteRequest]) (*connect.Response[v1.DeleteQuoteResponse], error) {
	return c.deleteQuote.CallUnary(ctx, req)
}

func (c *quoteServiceClient) ItemFromService(ctx context.Context, req *connect.Request[v1.ItemFromServiceRequest]) (*connect.Response[v1.ItemFromServiceResponse], error) {
	return c.itemFromService.CallUnary(ctx, req)
}

func (c *quoteServiceClient) ListTermTemplates(ctx context.Context, req *connect.Request[v1.ListTermTemplatesRequest]) (*connect.Response[v1.ListTermTemplatesResponse], error) {
	return c.listTermTemplates.CallUnary(ctx, req)
}

func (c *quoteServiceClient) SaveTermTemplate(ctx context.Context, req *connect.Request[v1.SaveTermTemplateRequest]) (*connect.Response[v1.SaveTermTemplateResponse], error) {
	return c.saveTermTemplate.CallUnary(ctx, req)
}

func (c *quoteServiceClient) DeleteTermTemplate(ctx context.Context, req *connect.Request[v1.DeleteTermTemplateRequest]) (*connect.Response[v1.DeleteTermTemplateResponse], error) {
	return c.deleteTermTemplate.CallUnary(ctx, req)
}
