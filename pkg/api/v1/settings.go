package apiv1

import "encoding/json"

type GetSettingsRequest struct{}

type GetSettingsResponse struct {
	Settings Settings `json:"settings"`
}

// UpdateSettingsRequest replaces the profile. Saved service prices keep
// the rate they were computed with.
type UpdateSettingsRequest struct {
	Settings Settings `json:"settings"`
}

type UpdateSettingsResponse struct {
	Settings Settings `json:"settings"`
}

type ExportBackupRequest struct{}

// ExportBackupResponse holds every collection under its storage key.
type ExportBackupResponse struct {
	Version     int                        `json:"version"`
	Collections map[string]json.RawMessage `json:"collections"`
}

// ImportBackupRequest restores collections. Keys may be storage keys
// ("agency:costs") or the web app's local storage names ("liu_costs").
// Version 0 marks a web app export with numeric identifiers.
type ImportBackupRequest struct {
	Version     int                        `json:"version" validate:"gte=0"`
	Collections map[string]json.RawMessage `json:"collections" validate:"required,min=1"`
}

type ImportBackupResponse struct {
	Restored []string `json:"restored"`
}

// ListRevisionsRequest asks for the previous versions of one collection,
// named like an ImportBackup key. Limit defaults to 10.
type ListRevisionsRequest struct {
	Collection string `json:"collection" validate:"required"`
	Limit      int    `json:"limit" validate:"gte=0,lte=20"`
}

// Revision is a previous version of a collection. Passing Data back through
// ImportBackup with the same Version rolls the collection back.
type Revision struct {
	Version   int             `json:"version"`
	UpdatedAt string          `json:"updatedAt"`
	Data      json.RawMessage `json:"data"`
}

type ListRevisionsResponse struct {
	Collection string     `json:"collection"`
	Revisions  []Revision `json:"revisions"`
}
