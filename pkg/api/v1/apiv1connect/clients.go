package apiv1connect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	v1 "github.com/mmynk/agencydesk/pkg/api/v1"
)

// ClientServiceName is the fully-qualified name of the ClientService.
const ClientServiceName = "agencydesk.v1.ClientService"

// Procedure paths, one per RPC.
const (
	ClientServiceListClientsProcedure      = "/agencydesk.v1.ClientService/ListClients"
	ClientServiceSaveClientProcedure       = "/agencydesk.v1.ClientService/SaveClient"
	ClientServiceDeleteClientProcedure     = "/agencydesk.v1.ClientService/DeleteClient"
	ClientServiceListClientQuotesProcedure = "/agencydesk.v1.ClientService/ListClientQuotes"
)

// ClientServiceHandler serves the client registry.
type ClientServiceHandler interface {
	ListClients(context.Context, *connect.Request[v1.ListClientsRequest]) (*connect.Response[v1.ListClientsResponse], error)
	SaveClient(context.Context, *connect.Request[v1.SaveClientRequest]) (*connect.Response[v1.SaveClientResponse], error)
	DeleteClient(context.Context, *connect.Request[v1.DeleteClientRequest]) (*connect.Response[v1.DeleteClientResponse], error)
	ListClientQuotes(context.Context, *connect.Request[v1.ListClientQuotesRequest]) (*connect.Response[v1.ListClientQuotesResponse], error)
}

// NewClientServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewClientServiceHandler(svc ClientServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	handlers := map[string]http.Handler{
		ClientServiceListClientsProcedure:      connect.NewUnaryHandler(ClientServiceListClientsProcedure, svc.ListClients, opts...),
		ClientServiceSaveClientProcedure:       connect.NewUnaryHandler(ClientServiceSaveClientProcedure, svc.SaveClient, opts...),
		ClientServiceDeleteClientProcedure:     connect.NewUnaryHandler(ClientServiceDeleteClientProcedure, svc.DeleteClient, opts...),
		ClientServiceListClientQuotesProcedure: connect.NewUnaryHandler(ClientServiceListClientQuotesProcedure, svc.ListClientQuotes, opts...),
	}
	return "/" + ClientServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

// ClientServiceClient is a client for the ClientService.
type ClientServiceClient interface {
	ListClients(context.Context, *connect.Request[v1.ListClientsRequest]) (*connect.Response[v1.ListClientsResponse], error)
	SaveClient(context.Context, *connect.Request[v1.SaveClientRequest]) (*connect.Response[v1.SaveClientResponse], error)
	DeleteClient(context.Context, *connect.Request[v1.DeleteClientRequest]) (*connect.Response[v1.DeleteClientResponse], error)
	ListClientQuotes(context.Context, *connect.Request[v1.ListClientQuotesRequest]) (*connect.Response[v1.ListClientQuotesResponse], error)
}

// NewClientServiceClient constructs a client for the ClientService. baseURL is the
// server root, e.g. http://localhost:8080.
func NewClientServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ClientServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &clientServiceClient{
		listClients:      connect.NewClient[v1.ListClientsRequest, v1.ListClientsResponse](httpClient, baseURL+ClientServiceListClientsProcedure, opts...),
		saveClient:       connect.NewClient[v1.SaveClientRequest, v1.SaveClientResponse](httpClient, baseURL+ClientServiceSaveClientProcedure, opts...),
		deleteClient:     connect.NewClient[v1.DeleteClientRequest, v1.DeleteClientResponse](httpClient, baseURL+ClientServiceDeleteClientProcedure, opts...),
		listClientQuotes: connect.NewClient[v1.ListClientQuotesRequest, v1.ListClientQuotesResponse](httpClient, baseURL+ClientServiceListClientQuotesProcedure, opts...),
	}
}

type clientServiceClient struct {
	listClients      *connect.Client[v1.ListClientsRequest, v1.ListClientsResponse]
	saveClient       *connect.Client[v1.SaveClientRequest, v1.SaveClientResponse]
	deleteClient     *connect.Client[v1.DeleteClientRequest, v1.DeleteClientResponse]
	listClientQuotes *connect.Client[v1.ListClientQuotesRequest, v1.ListClientQuotesResponse]
}

func (c *clientServiceClient) ListClients(ctx context.Context, req *connect.Request[v1.ListClientsRequest]) (*connect.Response[v1.ListClientsResponse], error) {
	return c.listClients.CallUnary(ctx, req)
}

func (c *clientServiceClient) SaveClient(ctx context.Context, req *connect.Request[v1.SaveClientRequest]) (*connect.Response[v1.SaveClientResponse], error) {
	return c.saveClient.CallUnary(ctx, req)
}

func (c *clientServiceClient) DeleteClient(ctx context.Context, req *connect.Request[v1.DeleteClientRequest]) (*connect.Response[v1.DeleteClientResponse], error) {
	return c.deleteClient.CallUnary(ctx, req)
}

func (c *clientServiceClient) ListClientQuotes(ctx context.Context, req *connect.Request[v1.ListClientQuotesRequest]) (*connect.Response[v1.ListClientQuotesResponse], error) {
	return c.listClientQuotes.CallUnary(ctx, req)
}
