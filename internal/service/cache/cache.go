package cache

import (
	"time"

	"PriceCast/internal/domain/models"
)

// PredictionsCache holds the most recently computed predictions response so
// repeated reads within the TTL do not re-run the whole inference pipeline.
// The pipeline itself never caches; only the serving layer does.
type PredictionsCache interface {
	GetLatest() (resp *models.PredictionsResponse, ok bool, err error)
	SetLatest(resp *models.PredictionsResponse, ttl time.Duration) error
}
