package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmynk/agencydesk/internal/calculator"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envFrom(nil))
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.Port != 8080 || cfg.Addr() != ":8080" {
		t.Errorf("port = %d", cfg.Port)
	}
	if cfg.LogLevel != "info" || cfg.LogJSON {
		t.Errorf("logging = %s, json %v", cfg.LogLevel, cfg.LogJSON)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("shutdown timeout = %s", cfg.ShutdownTimeout)
	}
	if cfg.Storage.Backend != BackendSQLite || cfg.Storage.DBPath != "./data/agencydesk.db" {
		t.Errorf("storage = %+v", cfg.Storage)
	}
	if cfg.Storage.DynamoTable != "agencydesk_documents" || cfg.Storage.AWSRegion != "us-east-1" {
		t.Errorf("dynamo defaults = %+v", cfg.Storage)
	}
	if cfg.DepreciationSource != calculator.DepreciationFromLedger {
		t.Errorf("depreciation source = %s", cfg.DepreciationSource)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(envFrom(map[string]string{
		"PORT":                "9090",
		"STORAGE_BACKEND":     "dynamodb",
		"DYNAMODB_TABLE":      "docs",
		"DYNAMODB_ENDPOINT":   "http://localhost:8000",
		"AWS_REGION":          "sa-east-1",
		"DEPRECIATION_SOURCE": "registry",
		"SHUTDOWN_TIMEOUT":    "3s",
	}))
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.Port != 9090 || cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("server = %d, %s", cfg.Port, cfg.ShutdownTimeout)
	}
	want := StorageConfig{
		Backend:        BackendDynamoDB,
		DBPath:         "./data/agencydesk.db",
		DynamoTable:    "docs",
		DynamoEndpoint: "http://localhost:8000",
		AWSRegion:      "sa-east-1",
	}
	if cfg.Storage != want {
		t.Errorf("storage = %+v, want %+v", cfg.Storage, want)
	}
	if cfg.DepreciationSource != calculator.DepreciationFromRegistry {
		t.Errorf("depreciation source = %s", cfg.DepreciationSource)
	}
}

func TestFromEnvInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"port not a number", map[string]string{"PORT": "http"}},
		{"port out of range", map[string]string{"PORT": "70000"}},
		{"unknown backend", map[string]string{"STORAGE_BACKEND": "postgres"}},
		{"unknown depreciation source", map[string]string{"DEPRECIATION_SOURCE": "both"}},
		{"bad shutdown timeout", map[string]string{"SHUTDOWN_TIMEOUT": "soon"}},
		{"bad log json flag", map[string]string{"LOG_JSON": "maybe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromEnv(envFrom(tt.env)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=7070\nSTORAGE_BACKEND=memory\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	t.Setenv("STORAGE_BACKEND", "sqlite")
	// godotenv never overrides a variable that is already set. t.Setenv
	// restores PORT afterwards; unsetting it lets the file supply it.
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 7070 {
		t.Errorf("port = %d, want 7070 from .env", cfg.Port)
	}
	if cfg.Storage.Backend != BackendSQLite {
		t.Errorf("backend = %s, the environment should win over .env", cfg.Storage.Backend)
	}
}
