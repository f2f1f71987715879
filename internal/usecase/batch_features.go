package usecase

import (
	"context"
	"fmt"
	"time"

	"PriceCast/internal/domain/models"
	drepo "PriceCast/internal/domain/repository"
	"PriceCast/pkg/util"
)

const (
	// lookbackDays is the rolling feature window: two years of daily rows.
	lookbackDays = 730

	// materializationLag shifts both window bounds one day back. Features for
	// day D become queryable a day later, so requesting [start-1d, end-1d]
	// keeps prediction alignment with the training pipeline. Changing this
	// changes prediction alignment; confirm with the pipeline owners first.
	materializationLag = 24 * time.Hour
)

// BatchLoader fetches the rolling feature batch for inference. A fresh session
// is derived on every call; nothing is cached between invocations.
type BatchLoader struct {
	platform    drepo.Platform
	viewName    string
	viewVersion int
	metrics     drepo.Metrics
	now         func() time.Time
}

// NewBatchLoader creates a feature batch loader for the configured view.
func NewBatchLoader(platform drepo.Platform, viewName string, viewVersion int, metrics drepo.Metrics) *BatchLoader {
	return &BatchLoader{
		platform:    platform,
		viewName:    viewName,
		viewVersion: viewVersion,
		metrics:     metrics,
		now:         time.Now,
	}
}

// WithClock overrides the wall clock, for tests.
func (l *BatchLoader) WithClock(now func() time.Time) *BatchLoader {
	l.now = now
	return l
}

// LoadBatchOfFeatures resolves the feature view and fetches the shifted
// two-year window ending today, sorted ascending by datetime. Platform errors
// propagate unmodified; there is no retry.
func (l *BatchLoader) LoadBatchOfFeatures(ctx context.Context) (*models.FeatureBatch, error) {
	t0 := l.now()

	session, err := l.platform.Login(ctx)
	if err != nil {
		if l.metrics != nil {
			l.metrics.RecordError("login")
		}
		return nil, fmt.Errorf("load features: %w", err)
	}

	view, err := session.FeatureStore().GetFeatureView(ctx, l.viewName, l.viewVersion)
	if err != nil {
		if l.metrics != nil {
			l.metrics.RecordError("feature_view")
		}
		return nil, fmt.Errorf("load features: %w", err)
	}

	start, end := util.LookbackWindow(l.now(), lookbackDays, materializationLag)
	batch, err := view.GetBatchData(ctx, start, end)
	if err != nil {
		if l.metrics != nil {
			l.metrics.RecordError("batch_data")
		}
		return nil, fmt.Errorf("load features: %w", err)
	}

	batch.SortByDatetime()

	if l.metrics != nil {
		l.metrics.RecordRowsFetched(l.viewName, batch.Len())
		l.metrics.RecordStageLatency("load_features", time.Since(t0).Seconds())
	}
	return batch, nil
}

// Window exposes the exact date range the next LoadBatchOfFeatures call will
// request, for logging and verification.
func (l *BatchLoader) Window() (start, end time.Time) {
	return util.LookbackWindow(l.now(), lookbackDays, materializationLag)
}
