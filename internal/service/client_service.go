package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/agencydesk/internal/state"
	v1 "github.com/mmynk/agencydesk/pkg/api/v1"
	"github.com/mmynk/agencydesk/pkg/api/v1/apiv1connect"
)

// ClientService implements the Connect ClientService.
type ClientService struct {
	state *state.State
}

var _ apiv1connect.ClientServiceHandler = (*ClientService)(nil)

func NewClientService(st *state.State) *ClientService {
	return &ClientService{state: st}
}

// ListClients searches the registry.
func (s *ClientService) ListClients(ctx context.Context, req *connect.Request[v1.ListClientsRequest]) (*connect.Response[v1.ListClientsResponse], error) {
	clients := s.state.SearchClients(req.Msg.Query)
	slog.Debug("ListClients successful", "query", req.Msg.Query, "count", len(clients))
	return connect.NewResponse(&v1.ListClientsResponse{Clients: convertAll(clients, clientToAPI)}), nil
}

// SaveClient inserts or updates a client.
func (s *ClientService) SaveClient(ctx context.Context, req *connect.Request[v1.SaveClientRequest]) (*connect.Response[v1.SaveClientResponse], error) {
	slog.Info("SaveClient request received", "client_id", req.Msg.Client.ID, "name", req.Msg.Client.Name)

	c, err := s.state.SaveClient(ctx, clientFromAPI(req.Msg.Client))
	if err != nil {
		slog.Error("SaveClient failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Client saved", "client_id", c.ID, "rut", c.RUT)
	return connect.NewResponse(&v1.SaveClientResponse{Client: clientToAPI(c)}), nil
}

// DeleteClient removes a client. Their quotes stay.
func (s *ClientService) DeleteClient(ctx context.Context, req *connect.Request[v1.DeleteClientRequest]) (*connect.Response[v1.DeleteClientResponse], error) {
	if err := s.state.DeleteClient(ctx, req.Msg.ClientID); err != nil {
		slog.Error("DeleteClient failed", "client_id", req.Msg.ClientID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Client deleted", "client_id", req.Msg.ClientID)
	return connect.NewResponse(&v1.DeleteClientResponse{}), nil
}

// ListClientQuotes returns the quote history of a client.
func (s *ClientService) ListClientQuotes(ctx context.Context, req *connect.Request[v1.ListClientQuotesRequest]) (*connect.Response[v1.ListClientQuotesResponse], error) {
	quotes, err := s.state.ClientQuotes(req.Msg.ClientID)
	if err != nil {
		slog.Error("ListClientQuotes failed", "client_id", req.Msg.ClientID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&v1.ListClientQuotesResponse{Quotes: convertAll(quotes, quoteToAPI)}), nil
}
