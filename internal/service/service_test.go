package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"

	"github.com/mmynk/agencydesk/internal/document"
	"github.com/mmynk/agencydesk/internal/middleware"
	"github.com/mmynk/agencydesk/internal/state"
	"github.com/mmynk/agencydesk/internal/storage/sqlite"
	"github.com/mmynk/agencydesk/pkg/api/v1/apiv1connect"
)

var testNow = time.Date(2024, time.March, 10, 15, 0, 0, 0, time.UTC)

type testClients struct {
	finance  apiv1connect.FinanceServiceClient
	catalog  apiv1connect.CatalogServiceClient
	clients  apiv1connect.ClientServiceClient
	quotes   apiv1connect.QuoteServiceClient
	settings apiv1connect.SettingsServiceClient

	baseURL string
	store   *sqlite.SQLiteStore
	dbPath  string
}

// setupTestServer serves every service over a temp SQLite database, the way
// cmd/server wires them.
func setupTestServer(t *testing.T) *testClients {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "agencydesk.db")
	store, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	st := state.Load(context.Background(), store, state.Options{Now: func() time.Time { return testNow }})
	st.Observe(state.NewPersister(store))

	opts := connect.WithInterceptors(middleware.ValidationInterceptor(middleware.NewValidator()))
	r := chi.NewRouter()
	Mount(r, st, document.NewPDFRenderer(), store, opts)

	server := httptest.NewServer(r)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &testClients{
		finance:  apiv1connect.NewFinanceServiceClient(http.DefaultClient, server.URL),
		catalog:  apiv1connect.NewCatalogServiceClient(http.DefaultClient, server.URL),
		clients:  apiv1connect.NewClientServiceClient(http.DefaultClient, server.URL),
		quotes:   apiv1connect.NewQuoteServiceClient(http.DefaultClient, server.URL),
		settings: apiv1connect.NewSettingsServiceClient(http.DefaultClient, server.URL),
		baseURL:  server.URL,
		store:    store,
		dbPath:   dbPath,
	}
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Fatalf("code: expected %s, got %s (%v)", want, got, err)
	}
}
