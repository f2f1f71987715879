package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	path := writeConfig(t, `
environment: test
platform:
  base_url: https://example.test
`)
	_, err := LoadWithEnv(path)
	if err == nil {
		t.Fatalf("expected error for missing api key")
	}
	if !strings.Contains(err.Error(), EnvAPIKey) {
		t.Fatalf("error should name %s, got: %v", EnvAPIKey, err)
	}
}

func TestLoadAPIKeyFromEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "test-key")
	path := writeConfig(t, `
environment: test
platform:
  base_url: https://example.test
`)
	cfg, err := LoadWithEnv(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Platform.APIKey != "test-key" {
		t.Fatalf("api key not taken from env")
	}
}

func TestDefaults(t *testing.T) {
	t.Setenv(EnvAPIKey, "test-key")
	path := writeConfig(t, `
environment: test
platform:
  base_url: https://example.test
`)
	cfg, err := LoadWithEnv(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Platform.ProjectName != "taxi_demand_pravachan" {
		t.Fatalf("unexpected project name %q", cfg.Platform.ProjectName)
	}
	if cfg.FeatureStore.FeatureViewName != "time_series_daily_feature_view" {
		t.Fatalf("unexpected feature view %q", cfg.FeatureStore.FeatureViewName)
	}
	if cfg.FeatureStore.FeatureViewVersion != 1 {
		t.Fatalf("unexpected feature view version %d", cfg.FeatureStore.FeatureViewVersion)
	}
	if cfg.FeatureStore.NFeatures != 12 {
		t.Fatalf("unexpected n_features %d", cfg.FeatureStore.NFeatures)
	}
	if cfg.Model.Name != "lightgbm_model_stock_prices" || cfg.Model.Version != 2 {
		t.Fatalf("unexpected model %s v%d", cfg.Model.Name, cfg.Model.Version)
	}
	if cfg.Model.ArtifactFile != "lgb_model.pkl" {
		t.Fatalf("unexpected artifact file %q", cfg.Model.ArtifactFile)
	}
	if cfg.Backend.Type != "none" {
		t.Fatalf("unexpected backend %q", cfg.Backend.Type)
	}
}

func TestValidateBackend(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"none", func(c *Config) { c.Backend.Type = "none" }, false},
		{"unknown", func(c *Config) { c.Backend.Type = "postgres" }, true},
		{"kafka without brokers", func(c *Config) { c.Backend.Type = "kafka" }, true},
		{"kafka with brokers", func(c *Config) {
			c.Backend.Type = "kafka"
			c.Kafka.Brokers = []string{"localhost:9092"}
		}, false},
		{"clickhouse without host", func(c *Config) { c.Backend.Type = "clickhouse" }, true},
		{"clickhouse with host", func(c *Config) {
			c.Backend.Type = "clickhouse"
			c.ClickHouse.Host = "localhost"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{Environment: "test"}
			c.Platform.APIKey = "k"
			c.Platform.BaseURL = "https://example.test"
			c.applyDefaults()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestModelVersionOverride(t *testing.T) {
	t.Setenv(EnvAPIKey, "test-key")
	t.Setenv("MODEL_VERSION", "5")
	path := writeConfig(t, `
environment: test
platform:
  base_url: https://example.test
`)
	cfg, err := LoadWithEnv(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model.Version != 5 {
		t.Fatalf("expected version 5, got %d", cfg.Model.Version)
	}
}
