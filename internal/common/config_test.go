package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Logging.Level != "info" {
		t.Errorf("default log level = %q, want info", config.Logging.Level)
	}
	if config.Storage.Badger.Path == "" {
		t.Error("default storage path must be set")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gitealink.toml")
	content := `
[server]
url = "https://git.example.com"

[logging]
level = "debug"

[storage.badger]
path = "/tmp/gitealink-test"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if config.Server.URL != "https://git.example.com" {
		t.Errorf("server url = %q", config.Server.URL)
	}
	if config.Logging.Level != "debug" {
		t.Errorf("log level = %q", config.Logging.Level)
	}
	if config.Storage.Badger.Path != "/tmp/gitealink-test" {
		t.Errorf("storage path = %q", config.Storage.Badger.Path)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("GITEALINK_SERVER_URL", "https://env.example.com")
	t.Setenv("GITEALINK_LOG_LEVEL", "warn")

	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if config.Server.URL != "https://env.example.com" {
		t.Errorf("env override not applied, server url = %q", config.Server.URL)
	}
	if config.Logging.Level != "warn" {
		t.Errorf("env override not applied, log level = %q", config.Logging.Level)
	}
}

func TestLoadConfigRejectsInvalidURL(t *testing.T) {
	t.Setenv("GITEALINK_SERVER_URL", "not a url")

	if _, err := LoadConfig(""); err == nil {
		t.Error("LoadConfig() should reject a malformed server url")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/gitealink.toml"); err == nil {
		t.Error("LoadConfig() should fail on a missing explicit config file")
	}
}
