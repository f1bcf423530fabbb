package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

func TestValidateAndAddDefaults(t *testing.T) {
	cnf := Configuration{
		ClientID: "  id  ",
		BaseURL:  "",
	}

	err := cnf.validateAndAddDefaults()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cnf.BaseURL != DEFAULT_BASE_URL {
		t.Errorf("Expected default base URL %s, got %s", DEFAULT_BASE_URL, cnf.BaseURL)
	}
	if cnf.Timeout != DEFAULT_TIMEOUT {
		t.Errorf("Expected default timeout %d, got %d", DEFAULT_TIMEOUT, cnf.Timeout)
	}
	if cnf.LogLevel != DEFAULT_LOG_LEVEL {
		t.Errorf("Expected default log level %s, got %s", DEFAULT_LOG_LEVEL, cnf.LogLevel)
	}
	if cnf.ClientID != "id" {
		t.Errorf("Expected trimmed client id, got '%s'", cnf.ClientID)
	}

	cnf = Configuration{BaseURL: "https://api.test.pezesha.com/"}
	if err := cnf.validateAndAddDefaults(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cnf.BaseURL != "https://api.test.pezesha.com" {
		t.Errorf("Expected trailing slash trimmed, got %s", cnf.BaseURL)
	}

	cnf = Configuration{Timeout: -1}
	if err := cnf.validateAndAddDefaults(); err == nil || err.Error() != "timeout must not be negative" {
		t.Errorf("Expected negative timeout error, got %v", err)
	}

	cnf = Configuration{LogLevel: "chatty"}
	if err := cnf.validateAndAddDefaults(); err == nil {
		t.Errorf("Expected invalid log level error")
	}
}

func TestCredentialsMerge(t *testing.T) {
	fallback := Credentials{ClientID: "env-id", ClientSecret: "env-secret", BaseURL: DEFAULT_BASE_URL, Channel: "env-channel"}

	merged := Credentials{ClientID: "override-id", Channel: "override-channel"}.Merge(fallback)

	if merged.ClientID != "override-id" || merged.Channel != "override-channel" {
		t.Errorf("Expected overrides to win, got %+v", merged)
	}
	if merged.ClientSecret != "env-secret" || merged.BaseURL != DEFAULT_BASE_URL {
		t.Errorf("Expected fallback values for empty fields, got %+v", merged)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "pezesha.json")
	if err != nil {
		t.Fatalf("Unable to create temporary file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	sampleConfig := Configuration{
		ClientID:     "file-id",
		ClientSecret: "file-secret",
		Channel:      "file-channel",
	}
	if err := json.NewEncoder(tmpFile).Encode(sampleConfig); err != nil {
		t.Fatalf("Unable to write to temporary file: %v", err)
	}
	tmpFile.Close()

	// Set an environment variable to override the channel
	t.Setenv("PEZESHA_CHANNEL", "env-channel")

	if err := loadConfigFromFile(tmpFile.Name()); err != nil {
		t.Fatalf("loadConfigFromFile failed: %v", err)
	}

	loadedConfig, err := Fetch()
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if loadedConfig.Channel != "env-channel" {
		t.Errorf("Expected Channel to be 'env-channel', got '%s'", loadedConfig.Channel)
	}
	if loadedConfig.ClientID != "file-id" {
		t.Errorf("Expected ClientID to be 'file-id', got '%s'", loadedConfig.ClientID)
	}
	if loadedConfig.BaseURL != DEFAULT_BASE_URL {
		t.Errorf("Expected BaseURL to default to '%s', got '%s'", DEFAULT_BASE_URL, loadedConfig.BaseURL)
	}
}

func TestInitConfig_EnvOnly(t *testing.T) {
	t.Setenv("PEZESHA_CLIENT_ID", "env-id")
	t.Setenv("PEZESHA_CLIENT_SECRET", "env-secret")
	t.Setenv("PEZESHA_BASE_URL", "https://api.sandbox.pezesha.com")
	t.Setenv("PEZESHA_TIMEOUT", "10")

	if err := InitConfig("does-not-exist.json"); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	loadedConfig, err := Fetch()
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	creds := loadedConfig.Credentials()
	if creds.ClientID != "env-id" || creds.ClientSecret != "env-secret" {
		t.Errorf("Expected env credentials, got %+v", creds)
	}
	if creds.BaseURL != "https://api.sandbox.pezesha.com" {
		t.Errorf("Expected env base URL, got '%s'", creds.BaseURL)
	}
	if loadedConfig.Timeout != 10 {
		t.Errorf("Expected Timeout to be 10, got %d", loadedConfig.Timeout)
	}
}

func TestFetchOrLoad(t *testing.T) {
	ConfigStore = atomic.Value{}
	t.Setenv("PEZESHA_CHANNEL", "lazy-channel")

	loadedConfig, err := FetchOrLoad()
	if err != nil {
		t.Fatalf("FetchOrLoad failed: %v", err)
	}
	if loadedConfig.Channel != "lazy-channel" {
		t.Errorf("Expected Channel to be 'lazy-channel', got '%s'", loadedConfig.Channel)
	}

	// A stored configuration is returned as-is.
	MockConfig(&Configuration{Channel: "stored"})
	loadedConfig, err = FetchOrLoad()
	if err != nil {
		t.Fatalf("FetchOrLoad failed: %v", err)
	}
	if loadedConfig.Channel != "stored" {
		t.Errorf("Expected Channel to be 'stored', got '%s'", loadedConfig.Channel)
	}
}

func TestMockConfig(t *testing.T) {
	MockConfig(&Configuration{Channel: "mock"})

	loadedConfig, err := Fetch()
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if loadedConfig.Channel != "mock" {
		t.Errorf("Expected Channel to be 'mock', got '%s'", loadedConfig.Channel)
	}
}

func TestLoadConfigFromFile_StatError(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "pezesha-parent")
	if err != nil {
		t.Fatalf("Unable to create temporary file: %v", err)
	}
	tmpFile.Close()
	defer os.Remove(tmpFile.Name())

	// A path below a regular file cannot be stat'ed and does not count as missing.
	path := filepath.Join(tmpFile.Name(), "pezesha.json")
	if err := loadConfigFromFile(path); err == nil {
		t.Errorf("Expected an error for %s, got nil", path)
	}
}
