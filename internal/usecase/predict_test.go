package usecase

import (
	"testing"

	"PriceCast/internal/domain/models"
)

func TestPredictRoundsToEven(t *testing.T) {
	model := &stubPredictor{out: []float64{10.4, 10.5, 10.6}}

	frame, err := Predict(model, [][]float64{{1}, {2}, {3}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if frame.Column != models.PredictedPricesColumn {
		t.Fatalf("unexpected column %q", frame.Column)
	}
	if frame.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", frame.Len())
	}
	for i, want := range []int64{10, 10, 11} {
		if frame.Values[i] != want {
			t.Fatalf("value %d: got %d, want %d", i, frame.Values[i], want)
		}
	}
}

func TestPredictNegativeTies(t *testing.T) {
	model := &stubPredictor{out: []float64{-0.5, -1.5, 2.5}}

	frame, err := Predict(model, [][]float64{{1}, {2}, {3}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, want := range []int64{0, -2, 2} {
		if frame.Values[i] != want {
			t.Fatalf("value %d: got %d, want %d", i, frame.Values[i], want)
		}
	}
}
