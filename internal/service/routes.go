package service

import (
	"net/http"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"

	"github.com/mmynk/agencydesk/internal/document"
	"github.com/mmynk/agencydesk/internal/state"
	"github.com/mmynk/agencydesk/internal/storage"
	"github.com/mmynk/agencydesk/pkg/api/v1/apiv1connect"
)

// Mount registers every Connect service and the document export route on r.
// history may be nil when the store keeps no previous versions.
func Mount(r chi.Router, st *state.State, renderer document.Renderer, history storage.Historian, opts ...connect.HandlerOption) {
	mount := func(path string, h http.Handler) { r.Mount(path, h) }

	mount(apiv1connect.NewFinanceServiceHandler(NewFinanceService(st), opts...))
	mount(apiv1connect.NewCatalogServiceHandler(NewCatalogService(st), opts...))
	mount(apiv1connect.NewClientServiceHandler(NewClientService(st), opts...))
	mount(apiv1connect.NewQuoteServiceHandler(NewQuoteService(st), opts...))
	mount(apiv1connect.NewSettingsServiceHandler(NewSettingsService(st, history), opts...))

	r.Method(http.MethodGet, "/quotes/{folio}/pdf", NewQuoteDocumentHandler(st, renderer))
}
