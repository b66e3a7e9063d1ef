package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/agencydesk/internal/state"
	"github.com/mmynk/agencydesk/internal/storage"
	v1 "github.com/mmynk/agencydesk/pkg/api/v1"
	"github.com/mmynk/agencydesk/pkg/api/v1/apiv1connect"
)

// SettingsService implements the Connect SettingsService.
type SettingsService struct {
	state   *state.State
	history storage.Historian
}

var _ apiv1connect.SettingsServiceHandler = (*SettingsService)(nil)

// NewSettingsService returns the service. Without a history ListRevisions
// fails with FailedPrecondition.
func NewSettingsService(st *state.State, history storage.Historian) *SettingsService {
	return &SettingsService{state: st, history: history}
}

func (s *SettingsService) GetSettings(ctx context.Context, req *connect.Request[v1.GetSettingsRequest]) (*connect.Response[v1.GetSettingsResponse], error) {
	return connect.NewResponse(&v1.GetSettingsResponse{Settings: settingsToAPI(s.state.Settings())}), nil
}

// UpdateSettings replaces the company profile.
func (s *SettingsService) UpdateSettings(ctx context.Context, req *connect.Request[v1.UpdateSettingsRequest]) (*connect.Response[v1.UpdateSettingsResponse], error) {
	slog.Info("UpdateSettings request received",
		"company", req.Msg.Settings.CompanyName,
		"capacity_hours", req.Msg.Settings.CapacityHours,
	)

	settings, err := s.state.UpdateSettings(ctx, settingsFromAPI(req.Msg.Settings))
	if err != nil {
		slog.Error("UpdateSettings failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Settings updated")
	return connect.NewResponse(&v1.UpdateSettingsResponse{Settings: settingsToAPI(settings)}), nil
}

// ExportBackup returns every collection as stored.
func (s *SettingsService) ExportBackup(ctx context.Context, req *connect.Request[v1.ExportBackupRequest]) (*connect.Response[v1.ExportBackupResponse], error) {
	docs, err := s.state.Export()
	if err != nil {
		slog.Error("ExportBackup failed", "error", err)
		return nil, toConnectError(err)
	}

	collections := make(map[string]json.RawMessage, len(docs))
	for key, data := range docs {
		collections[string(key)] = data
	}

	slog.Info("Backup exported", "collections", len(collections))
	return connect.NewResponse(&v1.ExportBackupResponse{
		Version:     state.SchemaVersion,
		Collections: collections,
	}), nil
}

// ImportBackup restores collections from a backup. Nothing changes unless
// every collection in it is readable.
func (s *SettingsService) ImportBackup(ctx context.Context, req *connect.Request[v1.ImportBackupRequest]) (*connect.Response[v1.ImportBackupResponse], error) {
	slog.Info("ImportBackup request received",
		"version", req.Msg.Version,
		"collections", len(req.Msg.Collections),
	)

	docs := make(map[string][]byte, len(req.Msg.Collections))
	for name, data := range req.Msg.Collections {
		docs[name] = data
	}
	restored, err := s.state.Restore(ctx, docs, req.Msg.Version)
	if err != nil {
		slog.Error("ImportBackup failed", "error", err)
		return nil, toConnectError(err)
	}

	names := make([]string, len(restored))
	for i, key := range restored {
		names[i] = string(key)
	}
	sort.Strings(names)

	slog.Info("Backup restored", "collections", names)
	return connect.NewResponse(&v1.ImportBackupResponse{Restored: names}), nil
}

const defaultRevisionLimit = 10

// ListRevisions returns previous versions of a collection, newest first.
func (s *SettingsService) ListRevisions(ctx context.Context, req *connect.Request[v1.ListRevisionsRequest]) (*connect.Response[v1.ListRevisionsResponse], error) {
	key, ok := state.ResolveKey(req.Msg.Collection)
	if !ok {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown collection %q", req.Msg.Collection))
	}
	if s.history == nil {
		return nil, connect.NewError(connect.CodeFailedPrecondition, errors.New("storage backend keeps no revisions"))
	}

	limit := req.Msg.Limit
	if limit == 0 {
		limit = defaultRevisionLimit
	}
	records, err := s.history.History(ctx, key, limit)
	if err != nil {
		slog.Error("ListRevisions failed", "collection", key, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	revisions := convertAll(records, func(rec storage.Record) v1.Revision {
		return v1.Revision{
			Version:   rec.Version,
			UpdatedAt: rec.UpdatedAt.UTC().Format(time.RFC3339),
			Data:      json.RawMessage(rec.Data),
		}
	})
	return connect.NewResponse(&v1.ListRevisionsResponse{Collection: string(key), Revisions: revisions}), nil
}
