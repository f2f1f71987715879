package repository

import (
	"context"

	"PriceCast/internal/domain/models"
)

// Platform authenticates against the remote feature/model platform.
// Callers request a fresh session per invocation; sessions are not cached.
type Platform interface {
	Login(ctx context.Context) (Session, error)
}

// Session is an authenticated handle to the platform.
type Session interface {
	FeatureStore() FeatureStore
	ModelRegistry() ModelRegistry
}

// ModelRegistry is a versioned store of serialized model artifacts.
type ModelRegistry interface {
	GetModel(ctx context.Context, name string, version int) (ModelHandle, error)
}

// ModelHandle points at one registered model version.
type ModelHandle interface {
	// Download fetches the model's artifact directory to local storage and
	// returns its path.
	Download(ctx context.Context) (string, error)
}

// Predictor is a deserialized model object able to score feature matrices.
type Predictor interface {
	Predict(features [][]float64) ([]float64, error)
}

// ResultSink receives finished prediction records (Kafka, ClickHouse, ...).
type ResultSink interface {
	StoreBatch(ctx context.Context, records []models.PredictionRecord) error
	Close() error
}

type Metrics interface {
	RecordRowsFetched(view string, n int)
	RecordPredictions(model string, n int)
	RecordError(stage string)
	RecordStageLatency(stage string, seconds float64)
}
