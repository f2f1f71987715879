package usecase

import (
	"context"
	"testing"
	"time"

	"PriceCast/internal/domain/models"
	drepo "PriceCast/internal/domain/repository"
)

func pipelineFixture(sink drepo.ResultSink, out []float64) (*Pipeline, *stubPredictor) {
	rows := make([]models.FeatureRow, 7)
	for i := range rows {
		v := float64(i + 1)
		rows[i] = models.FeatureRow{
			Datetime:        time.Date(2024, 8, 1+i, 0, 0, 0, 0, time.UTC),
			OpenPrice:       v,
			HighPrice:       v,
			LowPrice:        v,
			ClosePrice:      v,
			Volume:          v,
			VWAvgPrice:      v,
			NumTransactions: v,
		}
	}
	p := &stubPlatform{
		batch:    &models.FeatureBatch{Rows: rows},
		modelDir: "/tmp/models/x",
	}

	predictor := &stubPredictor{out: out}
	batch := NewBatchLoader(p, "view", 1, nil)
	model := NewModelLoader(p, "model", 2, "lgb_model.pkl", nil).
		WithDecode(func(string) (drepo.Predictor, error) { return predictor, nil })

	pipe := NewPipeline(batch, model, 2, "model", 2, sink, nil, nil).
		WithClock(fixedClock(time.Date(2024, 8, 10, 12, 0, 0, 0, time.UTC)))
	return pipe, predictor
}

func TestPipelineRun(t *testing.T) {
	pipe, predictor := pipelineFixture(nil, []float64{100.2, 200.7, 300.5})

	frame, err := pipe.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if frame.Column != models.PredictedPricesColumn {
		t.Fatalf("unexpected column %q", frame.Column)
	}
	for i, want := range []int64{100, 201, 300} {
		if frame.Values[i] != want {
			t.Fatalf("value %d: got %d, want %d", i, frame.Values[i], want)
		}
	}
	if predictor.rows != 3 {
		t.Fatalf("expected 3 feature windows, got %d", predictor.rows)
	}
}

func TestPipelineStoresRecords(t *testing.T) {
	sink := &captureSink{}
	pipe, _ := pipelineFixture(sink, []float64{100.2, 200.7, 300.5})

	if _, err := pipe.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sink.records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(sink.records))
	}

	runAt := time.Date(2024, 8, 10, 12, 0, 0, 0, time.UTC)
	for i, want := range []int64{100, 201, 300} {
		r := sink.records[i]
		if r.PredictedPrice != want {
			t.Fatalf("record %d: got price %d, want %d", i, r.PredictedPrice, want)
		}
		if r.ModelName != "model" || r.ModelVersion != 2 {
			t.Fatalf("record %d: unexpected model %s v%d", i, r.ModelName, r.ModelVersion)
		}
		if !r.RunAt.Equal(runAt) {
			t.Fatalf("record %d: unexpected run_at %v", i, r.RunAt)
		}
	}

	// Targets align with the row right after each window.
	if !sink.records[0].Datetime.Equal(time.Date(2024, 8, 4, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected first record time %v", sink.records[0].Datetime)
	}
}

func TestPipelineShortBatch(t *testing.T) {
	rows := make([]models.FeatureRow, 3)
	for i := range rows {
		rows[i] = models.FeatureRow{
			Datetime:   time.Date(2024, 8, 1+i, 0, 0, 0, 0, time.UTC),
			ClosePrice: float64(i + 1),
			Volume:     1,
		}
	}
	p := &stubPlatform{
		batch:    &models.FeatureBatch{Rows: rows},
		modelDir: "/tmp/models/x",
	}

	predictor := &stubPredictor{}
	batch := NewBatchLoader(p, "view", 1, nil)
	model := NewModelLoader(p, "model", 2, "lgb_model.pkl", nil).
		WithDecode(func(string) (drepo.Predictor, error) { return predictor, nil })
	sink := &captureSink{}
	pipe := NewPipeline(batch, model, 12, "model", 2, sink, nil, nil)

	frame, err := pipe.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if frame.Len() != 0 {
		t.Fatalf("expected empty frame, got %d rows", frame.Len())
	}
	if len(sink.records) != 0 {
		t.Fatalf("expected no records, got %d", len(sink.records))
	}
}
