package apiv1connect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	v1 "github.com/mmynk/agencydesk/pkg/api/v1"
)

// SettingsServiceName is the fully-qualified name of the SettingsService.
const SettingsServiceName = "agencydesk.v1.SettingsService"

// Procedure paths, one per RPC.
const (
	SettingsServiceGetSettingsProcedure    = "/agencydesk.v1.SettingsService/GetSettings"
	SettingsServiceUpdateSettingsProcedure = "/agencydesk.v1.SettingsService/UpdateSettings"
	SettingsServiceExportBackupProcedure   = "/agencydesk.v1.SettingsService/ExportBackup"
	SettingsServiceImportBackupProcedure   = "/agencydesk.v1.SettingsService/ImportBackup"
	SettingsServiceListRevisionsProcedure  = "/agencydesk.v1.SettingsService/ListRevisions"
)

// SettingsServiceHandler serves the company profile and backups.
type SettingsServiceHandler interface {
	GetSettings(context.Context, *connect.Request[v1.GetSettingsRequest]) (*connect.Response[v1.GetSettingsResponse], error)
	UpdateSettings(context.Context, *connect.Request[v1.UpdateSettingsRequest]) (*connect.Response[v1.UpdateSettingsResponse], error)
	ExportBackup(context.Context, *connect.Request[v1.ExportBackupRequest]) (*connect.Response[v1.ExportBackupResponse], error)
	ImportBackup(context.Context, *connect.Request[v1.ImportBackupRequest]) (*connect.Response[v1.ImportBackupResponse], error)
	ListRevisions(context.Context, *connect.Request[v1.ListRevisionsRequest]) (*connect.Response[v1.ListRevisionsResponse], error)
}

// NewSettingsServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewSettingsServiceHandler(svc SettingsServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	handlers := map[string]http.Handler{
		SettingsServiceGetSettingsProcedure:    connect.NewUnaryHandler(SettingsServiceGetSettingsProcedure, svc.GetSettings, opts...),
		SettingsServiceUpdateSettingsProcedure: connect.NewUnaryHandler(SettingsServiceUpdateSettingsProcedure, svc.UpdateSettings, opts...),
		SettingsServiceExportBackupProcedure:   connect.NewUnaryHandler(SettingsServiceExportBackupProcedure, svc.ExportBackup, opts...),
		SettingsServiceImportBackupProcedure:   connect.NewUnaryHandler(SettingsServiceImportBackupProcedure, svc.ImportBackup, opts...),
		SettingsServiceListRevisionsProcedure:  connect.NewUnaryHandler(SettingsServiceListRevisionsProcedure, svc.ListRevisions, opts...),
	}
	return "/" + SettingsServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

// SettingsServiceClient is a client for the SettingsService.
type SettingsServiceClient interface {
	GetSettings(context.Context, *connect.Request[v1.GetSettingsRequest]) (*connect.Response[v1.GetSettingsResponse], error)
	UpdateSettings(context.Context, *connect.Request[v1.UpdateSettingsRequest]) (*connect.Response[v1.UpdateSettingsResponse], error)
	ExportBackup(context.Context, *connect.Request[v1.ExportBackupRequest]) (*connect.Response[v1.ExportBackupResponse], error)
	ImportBackup(context.Context, *connect.Request[v1.ImportBackupRequest]) (*connect.Response[v1.ImportBackupResponse], error)
	ListRevisions(context.Context, *connect.Request[v1.ListRevisionsRequest]) (*connect.Response[v1.ListRevisionsResponse], error)
}

// NewSettingsServiceClient constructs a client for the SettingsService. baseURL is the
// server root, e.g. http://localhost:8080.
func NewSettingsServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SettingsServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &settingsServiceClient{
		getSettings:    connect.NewClient[v1.GetSettingsRequest, v1.GetSettingsResponse](httpClient, baseURL+SettingsServiceGetSettingsProcedure, opts...),
		updateSettings: connect.NewClient[v1.UpdateSettingsRequest, v1.UpdateSettingsResponse](httpClient, baseURL+SettingsServiceUpdateSettingsProcedure, opts...),
		exportBackup:   connect.NewClient[v1.ExportBackupRequest, v1.ExportBackupResponse](httpClient, baseURL+SettingsServiceExportBackupProcedure, opts...),
		importBackup:   connect.NewClient[v1.ImportBackupRequest, v1.ImportBackupResponse](httpClient, baseURL+SettingsServiceImportBackupProcedure, opts...),
		listRevisions:  connect.NewClient[v1.ListRevisionsRequest, v1.ListRevisionsResponse](httpClient, baseURL+SettingsServiceListRevisionsProcedure, opts...),
	}
}

type settingsServiceClient struct {
	getSettings    *connect.Client[v1.GetSettingsRequest, v1.GetSettingsResponse]
	updateSettings *connect.Client[v1.UpdateSettingsRequest, v1.UpdateSettingsResponse]
	exportBackup   *connect.Client[v1.ExportBackupRequest, v1.ExportBackupResponse]
	importBackup   *connect.Client[v1.ImportBackupRequest, v1.ImportBackupResponse]
	listRevisions  *connect.Client[v1.ListRevisionsRequest, v1.ListRevisionsResponse]
}

func (c *settingsServiceClient) GetSettings(ctx context.Context, req *connect.Request[v1.GetSettingsRequest]) (*connect.Response[v1.GetSettingsResponse], error) {
	return c.getSettings.CallUnary(ctx, req)
}

func (c *settingsServiceClient) UpdateSettings(ctx context.Context, req *connect.Request[v1.UpdateSettingsRequest]) (*connect.Response[v1.UpdateSettingsResponse], error) {
	return c.updateSettings.CallUnary(ctx, req)
}

func (c *settingsServiceClient) ExportBackup(ctx context.Context, req *connect.Request[v1.ExportBackupRequest]) (*connect.Response[v1.ExportBackupResponse], error) {
	return c.exportBackup.CallUnary(ctx, req)
}

func (c *settingsServiceClient) ImportBackup(ctx context.Context, req *connect.Request[v1.ImportBackupRequest]) (*connect.Response[v1.ImportBackupResponse], error) {
	return c.importBackup.CallUnary(ctx, req)
}

func (c *settingsServiceClient) ListRevisions(ctx context.Context, req *connect.Request[v1.ListRevisionsRequest]) (*connect.Response[v1.ListRevisionsResponse], error) {
	return c.listRevisions.CallUnary(ctx, req)
}
