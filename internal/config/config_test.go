package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func isolateEnvFile(t *testing.T) {
	t.Helper()
	t.Setenv(envFile, filepath.Join(t.TempDir(), "missing.env"))
}

func TestLoadDefaults(t *testing.T) {
	isolateEnvFile(t)
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Provider != ProviderFixture {
		t.Fatalf("expected default provider %s, got %s", ProviderFixture, cfg.Provider)
	}
	if cfg.Balldontlie.BaseURL != defaultBdlBaseURL {
		t.Fatalf("expected default balldontlie base url %s, got %s", defaultBdlBaseURL, cfg.Balldontlie.BaseURL)
	}
	if cfg.Balldontlie.APIKey != "" {
		t.Fatalf("expected empty balldontlie api key by default, got %s", cfg.Balldontlie.APIKey)
	}
	if cfg.Balldontlie.MinInterval != 0 {
		t.Fatalf("expected throttling off by default, got %s", cfg.Balldontlie.MinInterval)
	}
	if cfg.Backend.BaseURL != defaultBackendBaseURL {
		t.Fatalf("expected default backend url, got %s", cfg.Backend.BaseURL)
	}
	if cfg.Storage.Driver != StorageMemory || cfg.Storage.Path != "" {
		t.Fatalf("expected in-memory storage by default, got %+v", cfg.Storage)
	}
	if cfg.Retry.MaxAttempts != defaultRetryAttempts || cfg.Retry.InitialBackoff != defaultRetryBackoff {
		t.Fatalf("unexpected retry defaults %+v", cfg.Retry)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
	if cfg.TeamsRefresh != defaultTeamsRefresh {
		t.Fatalf("expected hourly teams refresh, got %s", cfg.TeamsRefresh)
	}
}

func TestLoadOverrides(t *testing.T) {
	isolateEnvFile(t)
	t.Setenv(envPort, "5000")
	t.Setenv(envProvider, ProviderBalldontlie)
	t.Setenv(envBdlBaseURL, "http://example.com/api")
	t.Setenv(envBdlAPIKey, "secret-key")
	t.Setenv(envBdlMinGap, "12s")
	t.Setenv(envBackendBaseURL, "http://backend:9000")
	t.Setenv(envBackendTimeout, "3s")
	t.Setenv(envStorageDriver, "SQLite")
	t.Setenv(envRetryAttempts, "5")
	t.Setenv(envLogFormat, "json")
	t.Setenv(envTeamsRefresh, "15m")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Provider != ProviderBalldontlie {
		t.Fatalf("expected provider balldontlie, got %s", cfg.Provider)
	}
	if cfg.Balldontlie.BaseURL != "http://example.com/api" {
		t.Fatalf("expected balldontlie base url override, got %s", cfg.Balldontlie.BaseURL)
	}
	if cfg.Balldontlie.APIKey != "secret-key" {
		t.Fatalf("expected balldontlie api key override, got %s", cfg.Balldontlie.APIKey)
	}
	if cfg.Balldontlie.MinInterval != 12*time.Second {
		t.Fatalf("expected min interval override, got %s", cfg.Balldontlie.MinInterval)
	}
	if cfg.Backend.BaseURL != "http://backend:9000" || cfg.Backend.Timeout != 3*time.Second {
		t.Fatalf("expected backend overrides, got %+v", cfg.Backend)
	}
	if cfg.Storage.Driver != StorageSQLite || cfg.Storage.Path != "data/storage.db" {
		t.Fatalf("expected sqlite storage with default path, got %+v", cfg.Storage)
	}
	if cfg.Retry.MaxAttempts != 5 {
		t.Fatalf("expected 5 retry attempts, got %d", cfg.Retry.MaxAttempts)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected json log format, got %q", cfg.Logging.Format)
	}
	if cfg.TeamsRefresh != 15*time.Minute {
		t.Fatalf("expected teams refresh override, got %s", cfg.TeamsRefresh)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	isolateEnvFile(t)
	t.Setenv(envBackendTimeout, "not-a-duration")

	cfg := Load()

	if cfg.Backend.Timeout != defaultBackendTimeout {
		t.Fatalf("expected default timeout on invalid value, got %s", cfg.Backend.Timeout)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	isolateEnvFile(t)
	t.Setenv(envRetryBackoff, "0s")

	cfg := Load()

	if cfg.Retry.InitialBackoff != defaultRetryBackoff {
		t.Fatalf("expected default backoff on non-positive value, got %s", cfg.Retry.InitialBackoff)
	}
}

func TestLoadReadsDotEnvWithoutOverridingEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	content := "BALLDONTLIE_API_KEY=from-file\nPORT=7000\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv(envFile, path)
	t.Setenv(envPort, "6000")
	if _, ok := os.LookupEnv(envBdlAPIKey); ok {
		t.Skip("BALLDONTLIE_API_KEY already set in environment")
	}
	t.Cleanup(func() { os.Unsetenv(envBdlAPIKey) })

	cfg := Load()

	if cfg.Balldontlie.APIKey != "from-file" {
		t.Fatalf("expected api key from dotenv file, got %q", cfg.Balldontlie.APIKey)
	}
	if cfg.Port != "6000" {
		t.Fatalf("expected environment to win over dotenv, got %s", cfg.Port)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	if loadDotEnv(filepath.Join(t.TempDir(), "nope.env")) {
		t.Fatal("expected missing dotenv file to report false")
	}
	if loadDotEnv("") {
		t.Fatal("expected empty path to report false")
	}
}
