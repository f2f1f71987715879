package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	rowsFetched  *prometheus.CounterVec
	predictions  *prometheus.CounterVec
	errorsTotal  *prometheus.CounterVec
	stageLatency *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		rowsFetched: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricecast_feature_rows_fetched_total",
				Help: "Total feature rows fetched from the feature view",
			},
			[]string{"view"},
		),
		predictions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricecast_predictions_total",
				Help: "Total predictions produced",
			},
			[]string{"model"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricecast_pipeline_errors_total",
				Help: "Total pipeline errors by stage",
			},
			[]string{"stage"},
		),
		stageLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pricecast_stage_duration_seconds",
				Help:    "Duration of pipeline stages in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"stage"},
		),
	}
}

// RecordRowsFetched records rows returned by a feature view fetch.
func (r *Recorder) RecordRowsFetched(view string, n int) {
	r.rowsFetched.WithLabelValues(view).Add(float64(n))
}

// RecordPredictions records produced predictions.
func (r *Recorder) RecordPredictions(model string, n int) {
	r.predictions.WithLabelValues(model).Add(float64(n))
}

// RecordError records a pipeline error for a stage.
func (r *Recorder) RecordError(stage string) {
	r.errorsTotal.WithLabelValues(stage).Inc()
}

// RecordStageLatency records pipeline stage latency in seconds.
func (r *Recorder) RecordStageLatency(stage string, seconds float64) {
	r.stageLatency.WithLabelValues(stage).Observe(seconds)
}
