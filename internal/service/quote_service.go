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

// QuoteService implements the Connect QuoteService, including the terms
// templates the quote builder picks from.
type QuoteService struct {
	state *state.State
}

var _ apiv1connect.QuoteServiceHandler = (*QuoteService)(nil)

// NewQuoteService creates a QuoteService over the application state.
func NewQuoteService(st *state.State) *QuoteService {
	return &QuoteService{state: st}
}

// NewQuote returns an unsaved draft with the next folio.
func (s *QuoteService) NewQuote(ctx context.Context, req *connect.Request[v1.NewQuoteRequest]) (*connect.Response[v1.NewQuoteResponse], error) {
	q := s.state.NewQuote()
	slog.Debug("Draft quote prepared", "folio", q.ID)
	return connect.NewResponse(&v1.NewQuoteResponse{Quote: quoteToAPI(q)}), nil
}

// ComputeTotals prices a set of lines without saving anything.
func (s *QuoteService) ComputeTotals(ctx context.Context, req *connect.Request[v1.ComputeTotalsRequest]) (*connect.Response[v1.ComputeTotalsResponse], error) {
	totals := calculator.QuoteTotals(convertAll(req.Msg.Items, quoteItemFromAPI))
	return connect.NewResponse(&v1.ComputeTotalsResponse{Totals: totalsToAPI(totals)}), nil
}

// SaveQuote upserts a quote by folio and updates the matching client.
func (s *QuoteService) SaveQuote(ctx context.Context, req *connect.Request[v1.SaveQuoteRequest]) (*connect.Response[v1.SaveQuoteResponse], error) {
	slog.Info("SaveQuote request received",
		"folio", req.Msg.Quote.ID,
		"client_rut", req.Msg.Quote.ClientRUT,
		"items_count", len(req.Msg.Quote.Items),
	)

	q, err := quoteFromAPI(req.Msg.Quote)
	if err != nil {
		return nil, toConnectError(err)
	}
	saved, err := s.state.SaveQuote(ctx, q, contactFromAPI(req.Msg.Contact))
	if err != nil {
		slog.Error("SaveQuote failed", "folio", q.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Quote saved",
		"folio", saved.ID,
		"client_id", saved.ClientID,
		"total", saved.Total,
	)
	return connect.NewResponse(&v1.SaveQuoteResponse{
		Quote:  quoteToAPI(saved),
		Totals: totalsToAPI(calculator.QuoteTotals(saved.Items)),
	}), nil
}

// GetQuote returns a quote with its derived totals.
func (s *QuoteService) GetQuote(ctx context.Context, req *connect.Request[v1.GetQuoteRequest]) (*connect.Response[v1.GetQuoteResponse], error) {
	q, err := s.state.Quote(req.Msg.QuoteID)
	if err != nil {
		slog.Error("GetQuote failed", "folio", req.Msg.QuoteID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&v1.GetQuoteResponse{
		Quote:  quoteToAPI(q),
		Totals: totalsToAPI(calculator.QuoteTotals(q.Items)),
	}), nil
}

// ListQuotes returns every quote, optionally only those in one status.
func (s *QuoteService) ListQuotes(ctx context.Context, req *connect.Request[v1.ListQuotesRequest]) (*connect.Response[v1.ListQuotesResponse], error) {
	quotes := s.state.Quotes()
	if req.Msg.Status != "" {
		filtered := quotes[:0]
		for _, q := range quotes {
			if q.Status == models.QuoteStatus(req.Msg.Status) {
				filtered = append(filtered, q)
			}
		}
		quotes = filtered
	}
	return connect.NewResponse(&v1.ListQuotesResponse{Quotes: convertAll(quotes, quoteToAPI)}), nil
}

// SetQuoteStatus moves a quote to any status.
func (s *QuoteService) SetQuoteStatus(ctx context.Context, req *connect.Request[v1.SetQuoteStatusRequest]) (*connect.Response[v1.SetQuoteStatusResponse], error) {
	q, err := s.state.SetQuoteStatus(ctx, req.Msg.QuoteID, models.QuoteStatus(req.Msg.Status))
	if err != nil {
		slog.Error("SetQuoteStatus failed", "folio", req.Msg.QuoteID, "status", req.Msg.Status, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Quote status changed", "folio", q.ID, "status", q.Status)
	return connect.NewResponse(&v1.SetQuoteStatusResponse{Quote: quoteToAPI(q)}), nil
}

func (s *QuoteService) DeleteQuote(ctx context.Context, req *connect.Request[v1.DeleteQuoteRequest]) (*connect.Response[v1.DeleteQuoteResponse], error) {
	if err := s.state.DeleteQuote(ctx, req.Msg.QuoteID); err != nil {
		slog.Error("DeleteQuote failed", "folio", req.Msg.QuoteID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Quote deleted", "folio", req.Msg.QuoteID)
	return connect.NewResponse(&v1.DeleteQuoteResponse{}), nil
}

// ItemFromService copies a catalog service into a quote line.
func (s *QuoteService) ItemFromService(ctx context.Context, req *connect.Request[v1.ItemFromServiceRequest]) (*connect.Response[v1.ItemFromServiceResponse], error) {
	item, err := s.state.QuoteItemFromService(req.Msg.ServiceID, req.Msg.Quantity)
	if err != nil {
		slog.Error("ItemFromService failed", "service_id", req.Msg.ServiceID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&v1.ItemFromServiceResponse{Item: quoteItemToAPI(item)}), nil
}

func (s *QuoteService) ListTermTemplates(ctx context.Context, req *connect.Request[v1.ListTermTemplatesRequest]) (*connect.Response[v1.ListTermTemplatesResponse], error) {
	templates := s.state.TermTemplates()
	return connect.NewResponse(&v1.ListTermTemplatesResponse{Templates: convertAll(templates, templateToAPI)}), nil
}

func (s *QuoteService) SaveTermTemplate(ctx context.Context, req *connect.Request[v1.SaveTermTemplateRequest]) (*connect.Response[v1.SaveTermTemplateResponse], error) {
	t, err := s.state.SaveTermTemplate(ctx, templateFromAPI(req.Msg.Template))
	if err != nil {
		slog.Error("SaveTermTemplate failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Term template saved", "template_id", t.ID, "name", t.Name)
	return connect.NewResponse(&v1.SaveTermTemplateResponse{Template: templateToAPI(t)}), nil
}

func (s *QuoteService) DeleteTermTemplate(ctx context.Context, req *connect.Request[v1.DeleteTermTemplateRequest]) (*connect.Response[v1.DeleteTermTemplateResponse], error) {
	if err := s.state.DeleteTermTemplate(ctx, req.Msg.TemplateID); err != nil {
		slog.Error("DeleteTermTemplate failed", "template_id", req.Msg.TemplateID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Term template deleted", "template_id", req.Msg.TemplateID)
	return connect.NewResponse(&v1.DeleteTermTemplateResponse{}), nil
}
