// Package config loads server configuration from the environment.
//
// A .env file in the working directory is read first when present; real
// environment variables win over it.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/mmynk/agencydesk/internal/calculator"
)

// Storage backends.
const (
	BackendSQLite   = "sqlite"
	BackendDynamoDB = "dynamodb"
	BackendMemory   = "memory"
)

// Config is the server configuration.
type Config struct {
	Port            int
	ShutdownTimeout time.Duration
	LogLevel        string
	LogJSON         bool
	Storage         StorageConfig

	// DepreciationSource picks whether asset depreciation reaches the BEP
	// through ledger lines or through the asset registry.
	DepreciationSource calculator.DepreciationSource
}

// StorageConfig selects and configures the document store.
type StorageConfig struct {
	Backend string

	// SQLite
	DBPath string

	// DynamoDB
	DynamoTable        string
	DynamoEndpoint     string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
}

// Load reads .env (if any) and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, applying defaults for unset keys.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	port, err := strconv.Atoi(get("PORT", "8080"))
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT %q", getenv("PORT"))
	}

	shutdown, err := time.ParseDuration(get("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	source, err := calculator.ParseDepreciationSource(get("DEPRECIATION_SOURCE", string(calculator.DepreciationFromLedger)))
	if err != nil {
		return nil, fmt.Errorf("invalid DEPRECIATION_SOURCE: %w", err)
	}

	logJSON, err := strconv.ParseBool(get("LOG_JSON", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_JSON: %w", err)
	}

	cfg := &Config{
		Port:            port,
		ShutdownTimeout: shutdown,
		LogLevel:        get("LOG_LEVEL", "info"),
		LogJSON:         logJSON,
		Storage: StorageConfig{
			Backend:            get("STORAGE_BACKEND", BackendSQLite),
			DBPath:             get("DB_PATH", "./data/agencydesk.db"),
			DynamoTable:        get("DYNAMODB_TABLE", "agencydesk_documents"),
			DynamoEndpoint:     getenv("DYNAMODB_ENDPOINT"),
			AWSRegion:          get("AWS_REGION", "us-east-1"),
			AWSAccessKeyID:     getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretAccessKey: getenv("AWS_SECRET_ACCESS_KEY"),
		},
		DepreciationSource: source,
	}

	switch cfg.Storage.Backend {
	case BackendSQLite, BackendDynamoDB, BackendMemory:
	default:
		return nil, fmt.Errorf("invalid STORAGE_BACKEND %q (want %s, %s or %s)",
			cfg.Storage.Backend, BackendSQLite, BackendDynamoDB, BackendMemory)
	}
	return cfg, nil
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
