package usecase

import (
	"context"
	"fmt"
	"time"

	"PriceCast/internal/domain/models"
	drepo "PriceCast/internal/domain/repository"
	"PriceCast/internal/services/features"
	applogger "PriceCast/pkg/logger"
)

// Pipeline composes the full batch inference run: load features, load model,
// transform, predict, and hand results to the configured sink. Strictly
// sequential; every failure surfaces immediately to the caller.
type Pipeline struct {
	batch        *BatchLoader
	model        *ModelLoader
	nFeatures    int
	modelName    string
	modelVersion int
	sink         drepo.ResultSink
	metrics      drepo.Metrics
	l            *applogger.Logger
	now          func() time.Time
}

// NewPipeline creates the inference pipeline. sink may be nil (backend "none").
func NewPipeline(
	batch *BatchLoader,
	model *ModelLoader,
	nFeatures int,
	modelName string,
	modelVersion int,
	sink drepo.ResultSink,
	metrics drepo.Metrics,
	l *applogger.Logger,
) *Pipeline {
	return &Pipeline{
		batch:        batch,
		model:        model,
		nFeatures:    nFeatures,
		modelName:    modelName,
		modelVersion: modelVersion,
		sink:         sink,
		metrics:      metrics,
		l:            l,
		now:          time.Now,
	}
}

// WithClock overrides the wall clock, for tests.
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.now = now
	p.batch.WithClock(now)
	return p
}

// Run executes one batch inference pass and returns the prediction frame.
func (p *Pipeline) Run(ctx context.Context) (*models.PredictionFrame, error) {
	t0 := p.now()

	batch, err := p.batch.LoadBatchOfFeatures(ctx)
	if err != nil {
		return nil, err
	}
	if p.l != nil {
		p.l.Info("feature batch loaded", applogger.Int("rows", batch.Len()))
	}

	// Complete the daily calendar, fill gaps, and recompute the derived
	// indicator columns the way the training pipeline prepared its data.
	if batch.Len() > 0 {
		batch = features.AddMissingDays(batch, batch.Rows[0].Datetime, batch.Rows[batch.Len()-1].Datetime)
		features.InterpolateBackfillFrontfill(batch)
		features.AddIndicators(batch)
	}

	model, err := p.model.LoadModel(ctx)
	if err != nil {
		return nil, err
	}
	if p.l != nil {
		p.l.Info("model loaded",
			applogger.String("model", p.modelName),
			applogger.Int("version", p.modelVersion),
		)
	}

	windows, err := features.TransformIntoWindows(batch, p.nFeatures, 1)
	if err != nil {
		if p.metrics != nil {
			p.metrics.RecordError("transform")
		}
		return nil, err
	}

	frame, err := Predict(model, windows.Features)
	if err != nil {
		if p.metrics != nil {
			p.metrics.RecordError("predict")
		}
		return nil, err
	}

	if p.metrics != nil {
		p.metrics.RecordPredictions(p.modelName, frame.Len())
	}

	if p.sink != nil {
		records := p.buildRecords(windows, frame)
		if err := p.sink.StoreBatch(ctx, records); err != nil {
			if p.metrics != nil {
				p.metrics.RecordError("sink")
			}
			return nil, fmt.Errorf("store predictions: %w", err)
		}
	}

	if p.metrics != nil {
		p.metrics.RecordStageLatency("pipeline", time.Since(t0).Seconds())
	}
	if p.l != nil {
		p.l.Info("pipeline run complete",
			applogger.Int("predictions", frame.Len()),
			applogger.Duration("duration_ms", time.Since(t0)),
		)
	}
	return frame, nil
}

func (p *Pipeline) buildRecords(w *features.Windows, frame *models.PredictionFrame) []models.PredictionRecord {
	runAt := p.now()
	records := make([]models.PredictionRecord, frame.Len())
	for i := range frame.Values {
		records[i] = models.PredictionRecord{
			RunAt:          runAt,
			Datetime:       w.Times[i],
			ModelName:      p.modelName,
			ModelVersion:   p.modelVersion,
			PredictedPrice: frame.Values[i],
		}
	}
	return records
}
