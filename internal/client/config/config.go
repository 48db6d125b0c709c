package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the client configuration, loaded from the environment.
type Config struct {
	// APIURL is the backend base URL without the /api/v1 suffix.
	APIURL string `env:"EXPENCE_API_URL, default=http://localhost:5000"`

	// RequestTimeout bounds every HTTP request.
	RequestTimeout time.Duration `env:"EXPENCE_REQUEST_TIMEOUT, default=10s"`

	// DBPath is the bbolt file holding credentials, queue and metadata.
	DBPath string `env:"EXPENCE_DB_PATH, default=expence-client.db"`

	// LedgerPath is the sqlite file holding the local transaction cache.
	LedgerPath string `env:"EXPENCE_LEDGER_PATH, default=expence-ledger.db"`

	// DeviceName is sent with login requests so sessions can be told apart.
	DeviceName string `env:"EXPENCE_DEVICE_NAME"`

	LogLevel string `env:"EXPENCE_LOG_LEVEL, default=info"`

	Sync SyncConfig
}

// SyncConfig bounds the sync engine's retry behavior.
type SyncConfig struct {
	// MaxBatchAttempts caps transport-level retries of one sync call.
	MaxBatchAttempts uint64 `env:"EXPENCE_SYNC_MAX_BATCH_ATTEMPTS, default=3"`

	// MaxItemAttempts caps how often a retryable item is resubmitted across
	// sync calls before it is surfaced as permanently failed.
	MaxItemAttempts int `env:"EXPENCE_SYNC_MAX_ITEM_ATTEMPTS, default=5"`

	// BackoffBase is the initial delay of the exponential backoff.
	BackoffBase time.Duration `env:"EXPENCE_SYNC_BACKOFF_BASE, default=500ms"`
}

// Load reads configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &cfg, nil
}
