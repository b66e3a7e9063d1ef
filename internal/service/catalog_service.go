package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/agencydesk/internal/calculator"
	"github.com/mmynk/agencydesk/internal/models"
	"github.com/mmynk/agencydesk/internal/state"
	v1 "github.com/mmynk/agencydesk/pkg/api/v1"
	"github.com/mmynk/agencydesk/pkg/api/v1/apiv1connect"
)

// CatalogService implements the Connect CatalogService.
type CatalogService struct {
	state *state.State
}

var _ apiv1connect.CatalogServiceHandler = (*CatalogService)(nil)

func NewCatalogService(st *state.State) *CatalogService {
	return &CatalogService{state: st}
}

func (s *CatalogService) ListServices(ctx context.Context, req *connect.Request[v1.ListServicesRequest]) (*connect.Response[v1.ListServicesResponse], error) {
	rate := s.state.Summary().BEPHourlyRate
	services := convertAll(s.state.Services(), func(svc models.Service) v1.Service {
		out := serviceToAPI(svc)
		out.RealizedMargin = calculator.RealizedMargin(svc.Price, svc.Hours, rate)
		out.Tier = string(calculator.TierForMargin(out.RealizedMargin))
		return out
	})
	return connect.NewResponse(&v1.ListServicesResponse{Services: services}), nil
}

// PreviewPrice prices a service configuration without saving it.
func (s *CatalogService) PreviewPrice(ctx context.Context, req *connect.Request[v1.PreviewPriceRequest]) (*connect.Response[v1.PreviewPriceResponse], error) {
	p, err := s.state.PreviewPrice(req.Msg.Hours, req.Msg.Margin)
	if err != nil {
		slog.Warn("PreviewPrice rejected", "hours", req.Msg.Hours, "margin", req.Msg.Margin, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&v1.PreviewPriceResponse{
		Price:         p.Price,
		BEPHourlyRate: p.BEPHourlyRate,
		BaseCost:      p.BaseCost,
		Tier:          string(p.Tier),
	}), nil
}

// SaveService inserts or replaces a service, pricing it at the current BEP
// rate.
func (s *CatalogService) SaveService(ctx context.Context, req *connect.Request[v1.SaveServiceRequest]) (*connect.Response[v1.SaveServiceResponse], error) {
	slog.Info("SaveService request received",
		"service_id", req.Msg.Service.ID,
		"name", req.Msg.Service.Name,
		"hours", req.Msg.Service.Hours,
		"margin", req.Msg.Service.Margin,
	)

	svc, err := s.state.SaveService(ctx, serviceFromAPI(req.Msg.Service))
	if err != nil {
		slog.Error("SaveService failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Service saved", "service_id", svc.ID, "price", svc.Price)
	return connect.NewResponse(&v1.SaveServiceResponse{Service: serviceToAPI(svc)}), nil
}

func (s *CatalogService) DeleteService(ctx context.Context, req *connect.Request[v1.DeleteServiceRequest]) (*connect.Response[v1.DeleteServiceResponse], error) {
	if err := s.state.DeleteService(ctx, req.Msg.ServiceID); err != nil {
		slog.Error("DeleteService failed", "service_id", req.Msg.ServiceID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Service deleted", "service_id", req.Msg.ServiceID)
	return connect.NewResponse(&v1.DeleteServiceResponse{}), nil
}
