package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Platform struct {
		ProjectName string        `yaml:"project_name"`
		APIKey      string        `yaml:"api_key"`
		BaseURL     string        `yaml:"base_url"`
		Timeout     time.Duration `yaml:"timeout"`
	} `yaml:"platform"`
	FeatureStore struct {
		FeatureGroupName    string `yaml:"feature_group_name"`
		FeatureGroupVersion int    `yaml:"feature_group_version"`
		FeatureViewName     string `yaml:"feature_view_name"`
		FeatureViewVersion  int    `yaml:"feature_view_version"`
		NFeatures           int    `yaml:"n_features"`
	} `yaml:"feature_store"`
	Model struct {
		Name         string `yaml:"name"`
		Version      int    `yaml:"version"`
		ArtifactFile string `yaml:"artifact_file"`
	} `yaml:"model"`
	Backend struct {
		Type         string        `yaml:"type"`
		BatchSize    int           `yaml:"batch_size"`
		BatchTimeout time.Duration `yaml:"batch_timeout"`
	} `yaml:"backend"`
	Kafka struct {
		Brokers      []string `yaml:"brokers"`
		Topic        string   `yaml:"topic"`
		RequiredAcks int      `yaml:"required_acks"`
		Compression  string   `yaml:"compression"`
		Producer     struct {
			MaxAttempts  int           `yaml:"max_attempts"`
			Linger       time.Duration `yaml:"linger"`
			BatchBytes   int           `yaml:"batch_bytes"`
			BatchSize    int           `yaml:"batch_size"`
			WriteTimeout time.Duration `yaml:"write_timeout"`
			ReadTimeout  time.Duration `yaml:"read_timeout"`
			Async        bool          `yaml:"async"`
		} `yaml:"producer"`
	} `yaml:"kafka"`
	ClickHouse struct {
		Host             string        `yaml:"host"`
		Port             int           `yaml:"port"`
		Database         string        `yaml:"database"`
		Table            string        `yaml:"table"`
		User             string        `yaml:"user"`
		Password         string        `yaml:"password"`
		UseHTTP          bool          `yaml:"use_http"`
		AsyncInsert      bool          `yaml:"async_insert"`
		WaitForAsync     bool          `yaml:"wait_for_async_insert"`
		DialTimeout      time.Duration `yaml:"dial_timeout"`
		ReadTimeout      time.Duration `yaml:"read_timeout"`
		WriteTimeout     time.Duration `yaml:"write_timeout"`
		MaxExecutionTime time.Duration `yaml:"max_execution_time"`
	} `yaml:"clickhouse"`
	Cache struct {
		TTL   time.Duration `yaml:"ttl"`
		Redis struct {
			Enabled  bool   `yaml:"enabled"`
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
}

// EnvAPIKey is the environment variable holding the platform credential.
// Missing credential (env and YAML both empty) is a fatal configuration error.
const EnvAPIKey = "HOPSWORKS_API_KEY"

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
// An .env file in the working directory is loaded first, best effort.
func LoadWithEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	// Override with environment variables
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.Platform.APIKey = v
	}
	if v := os.Getenv("HOPSWORKS_PROJECT"); v != "" {
		c.Platform.ProjectName = v
	}
	if v := os.Getenv("HOPSWORKS_HOST"); v != "" {
		c.Platform.BaseURL = v
	}
	if v := os.Getenv("BACKEND"); v != "" {
		c.Backend.Type = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Kafka.Topic = v
	}
	if v := os.Getenv("MODEL_VERSION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Model.Version = n
		}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// applyDefaults fills the identifiers the model was trained against.
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = 15 * time.Second
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = 30 * time.Second
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Platform.ProjectName == "" {
		c.Platform.ProjectName = "taxi_demand_pravachan"
	}
	if c.Platform.Timeout <= 0 {
		c.Platform.Timeout = 30 * time.Second
	}
	if c.FeatureStore.FeatureGroupName == "" {
		c.FeatureStore.FeatureGroupName = "time_series_daily_feature_group"
	}
	if c.FeatureStore.FeatureGroupVersion == 0 {
		c.FeatureStore.FeatureGroupVersion = 3
	}
	if c.FeatureStore.FeatureViewName == "" {
		c.FeatureStore.FeatureViewName = "time_series_daily_feature_view"
	}
	if c.FeatureStore.FeatureViewVersion == 0 {
		c.FeatureStore.FeatureViewVersion = 1
	}
	if c.FeatureStore.NFeatures == 0 {
		c.FeatureStore.NFeatures = 12
	}
	if c.Model.Name == "" {
		c.Model.Name = "lightgbm_model_stock_prices"
	}
	if c.Model.Version == 0 {
		c.Model.Version = 2
	}
	if c.Model.ArtifactFile == "" {
		c.Model.ArtifactFile = "lgb_model.pkl"
	}
	if c.Backend.Type == "" {
		c.Backend.Type = "none"
	}
	if c.ClickHouse.Table == "" {
		c.ClickHouse.Table = "predictions"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Platform.APIKey == "" {
		return fmt.Errorf("platform.api_key is required: set %s (an .env file at the project root works)", EnvAPIKey)
	}
	if c.Platform.ProjectName == "" {
		return fmt.Errorf("platform.project_name is required")
	}
	if c.Platform.BaseURL == "" {
		return fmt.Errorf("platform.base_url is required")
	}
	switch c.Backend.Type {
	case "kafka", "clickhouse", "none":
	default:
		return fmt.Errorf("backend.type must be 'kafka', 'clickhouse' or 'none', got '%s'", c.Backend.Type)
	}
	if c.Backend.Type == "kafka" && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers cannot be empty with backend.type=kafka")
	}
	if c.Backend.Type == "clickhouse" && c.ClickHouse.Host == "" {
		return fmt.Errorf("clickhouse.host is required with backend.type=clickhouse")
	}
	if c.FeatureStore.NFeatures <= 0 {
		return fmt.Errorf("feature_store.n_features must be positive")
	}
	return nil
}
