package repository

import (
	"context"
	"time"

	"PriceCast/internal/domain/models"
)

// FeatureView is a named, versioned logical query over the feature store
// yielding a tabular batch of model-ready features.
type FeatureView interface {
	// GetBatchData returns feature rows between start and end timestamps.
	GetBatchData(ctx context.Context, start, end time.Time) (*models.FeatureBatch, error)
}

// FeatureStore is the project-scoped feature-store namespace of a session.
type FeatureStore interface {
	GetFeatureView(ctx context.Context, name string, version int) (FeatureView, error)
}
