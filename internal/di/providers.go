package di

import (
	"context"
	"fmt"
	"time"

	"PriceCast/internal/domain/repository"
	internalrepo "PriceCast/internal/repository"
	"PriceCast/internal/service/hopsworks"
	"PriceCast/internal/usecase"
	pkgch "PriceCast/pkg/clickhouse"
	"PriceCast/pkg/config"
	pkgkafka "PriceCast/pkg/kafka"
	applogger "PriceCast/pkg/logger"
	"PriceCast/pkg/metrics"
	"PriceCast/pkg/server"
)

// ProvideLogger creates the structured logger. Production gets JSON output,
// everything else gets console output.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	format := "console"
	if cfg.Environment == "production" {
		format = "json"
	}
	return applogger.New(&applogger.Config{Level: "info", Format: format, Output: "stdout"})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvidePlatform creates the feature platform client.
func ProvidePlatform(cfg *config.Config, l *applogger.Logger) repository.Platform {
	return hopsworks.New(
		cfg.Platform.BaseURL,
		cfg.Platform.ProjectName,
		cfg.Platform.APIKey,
		cfg.Platform.Timeout,
		l,
	)
}

// ProvideClickHouseClient creates a ClickHouse client when the ClickHouse
// backend is selected. Returns nil otherwise.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	if cfg.Backend.Type != "clickhouse" {
		return nil, nil
	}

	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithAsyncInsert(cfg.ClickHouse.AsyncInsert, cfg.ClickHouse.WaitForAsync),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	// Initialize schema
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db := cfg.ClickHouse.Database
	if err := client.InitSchema(ctx, []string{
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", db),
		fmt.Sprintf(
			"CREATE TABLE IF NOT EXISTS %s.%s (run_at DateTime, dt Date, model_name String, model_version UInt32, predicted_price Int64) ENGINE=MergeTree ORDER BY (model_name, dt, run_at)",
			db, cfg.ClickHouse.Table,
		),
	}); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}

	return client, nil
}

// ProvideResultSink creates the prediction sink for the configured backend.
// Returns nil for backend "none"; the pipeline then only returns predictions.
func ProvideResultSink(cfg *config.Config, chClient *pkgch.Client, l *applogger.Logger) (repository.ResultSink, error) {
	switch cfg.Backend.Type {
	case "kafka":
		producer, err := pkgkafka.NewProducer(
			pkgkafka.WithBrokers(cfg.Kafka.Brokers),
			pkgkafka.WithCompression(cfg.Kafka.Compression),
			pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
			pkgkafka.WithBatchSize(cfg.Kafka.Producer.BatchSize),
			pkgkafka.WithBatchBytes(cfg.Kafka.Producer.BatchBytes),
			pkgkafka.WithBatchTimeout(cfg.Kafka.Producer.Linger),
			pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
			pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
			pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
			pkgkafka.WithHashByKey(true),
		)
		if err != nil {
			return nil, fmt.Errorf("kafka producer: %w", err)
		}
		return internalrepo.NewKafkaPredictionPublisher(producer, cfg.Kafka.Topic), nil

	case "clickhouse":
		table := cfg.ClickHouse.Database + "." + cfg.ClickHouse.Table
		store := internalrepo.NewClickHousePredictionStore(chClient.DB(), table)
		if s, ok := store.(*internalrepo.ClickHousePredictionStore); ok {
			s.SetLogger(l)
		}
		return store, nil

	default:
		return nil, nil
	}
}

// ProvideBatchLoader creates the feature batch loader.
func ProvideBatchLoader(platform repository.Platform, m repository.Metrics, cfg *config.Config) *usecase.BatchLoader {
	return usecase.NewBatchLoader(
		platform,
		cfg.FeatureStore.FeatureViewName,
		cfg.FeatureStore.FeatureViewVersion,
		m,
	)
}

// ProvideModelLoader creates the model registry loader.
func ProvideModelLoader(platform repository.Platform, m repository.Metrics, cfg *config.Config) *usecase.ModelLoader {
	return usecase.NewModelLoader(
		platform,
		cfg.Model.Name,
		cfg.Model.Version,
		cfg.Model.ArtifactFile,
		m,
	)
}

// ProvidePipeline creates the batch inference pipeline.
func ProvidePipeline(
	batch *usecase.BatchLoader,
	model *usecase.ModelLoader,
	sink repository.ResultSink,
	m repository.Metrics,
	l *applogger.Logger,
	cfg *config.Config,
) *usecase.Pipeline {
	return usecase.NewPipeline(
		batch,
		model,
		cfg.FeatureStore.NFeatures,
		cfg.Model.Name,
		cfg.Model.Version,
		sink,
		m,
		l,
	)
}

// ProvideApp creates the application.
func ProvideApp(
	cfg *config.Config,
	pipeline *usecase.Pipeline,
	sink repository.ResultSink,
	chClient *pkgch.Client,
	l *applogger.Logger,
) *server.App {
	return server.New(cfg, pipeline, sink, chClient, l)
}
