package service

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mmynk/agencydesk/internal/document"
	"github.com/mmynk/agencydesk/internal/models"
	"github.com/mmynk/agencydesk/internal/state"
)

// QuoteDocumentHandler serves GET /quotes/{folio}/pdf.
type QuoteDocumentHandler struct {
	state    *state.State
	renderer document.Renderer
}

func NewQuoteDocumentHandler(st *state.State, renderer document.Renderer) *QuoteDocumentHandler {
	return &QuoteDocumentHandler{state: st, renderer: renderer}
}

func (h *QuoteDocumentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	folio := chi.URLParam(r, "folio")

	q, err := h.state.Quote(folio)
	if errors.Is(err, state.ErrNotFound) {
		http.Error(w, fmt.Sprintf("quote %s not found", folio), http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("Failed to load quote for export", "folio", folio, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var client *models.Client
	if q.ClientID != "" {
		if c, err := h.state.Client(q.ClientID); err == nil {
			client = &c
		}
	}

	doc := document.FromQuote(q, h.state.Settings(), client)
	out, err := h.renderer.Render(r.Context(), doc)
	if err != nil {
		slog.Error("Failed to render quote", "folio", folio, "error", err)
		http.Error(w, "failed to render document", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", h.renderer.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", doc.Filename(h.renderer.Extension())))
	w.Header().Set("Content-Length", strconv.Itoa(len(out)))
	if _, err := w.Write(out); err != nil {
		slog.Warn("Failed to write document", "folio", folio, "error", err)
		return
	}
	slog.Info("Quote exported", "folio", folio, "bytes", len(out))
}
