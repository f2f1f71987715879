package features

import (
	"testing"
	"time"

	"PriceCast/internal/domain/models"
)

func dailyBatch(n int) *models.FeatureBatch {
	rows := make([]models.FeatureRow, n)
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
			SMA5:            v,
			SMA20:           v,
			EMA5:            v,
			EMA20:           v,
			Vol5:            v,
			DailyReturn:     v,
			PriceDiff:       v,
			VolumeSMA5:      v,
			VolumeChange:    v,
		}
	}
	return &models.FeatureBatch{Rows: rows}
}

func TestTransformIntoWindows(t *testing.T) {
	w, err := TransformIntoWindows(dailyBatch(7), 2, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(w.Features) != 3 {
		t.Fatalf("expected 3 windows, got %d", len(w.Features))
	}
	wantLen := 3 * columnsPerRow
	for i, vec := range w.Features {
		if len(vec) != wantLen {
			t.Fatalf("window %d: got %d features, want %d", i, len(vec), wantLen)
		}
	}

	// Targets are the close price of the row right after each window.
	for i, want := range []float64{4, 5, 6} {
		if w.Targets[i] != want {
			t.Fatalf("target %d: got %v, want %v", i, w.Targets[i], want)
		}
	}
	if !w.Times[0].Equal(time.Date(2024, 8, 4, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected first target time %v", w.Times[0])
	}
}

func TestTransformWindowValues(t *testing.T) {
	w, err := TransformIntoWindows(dailyBatch(7), 2, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// First window flattens rows 1..3, each value repeated across all columns.
	if len(w.Features[0]) != 3*columnsPerRow {
		t.Fatalf("unexpected window length %d", len(w.Features[0]))
	}
	for i, v := range w.Features[0] {
		want := float64(i/columnsPerRow + 1)
		if v != want {
			t.Fatalf("feature %d: got %v, want %v", i, v, want)
		}
	}
}

func TestTransformShortBatch(t *testing.T) {
	w, err := TransformIntoWindows(dailyBatch(3), 12, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(w.Features) != 0 || len(w.Targets) != 0 || len(w.Times) != 0 {
		t.Fatalf("expected zero windows, got %d", len(w.Features))
	}
}

func TestTransformEmptyBatch(t *testing.T) {
	w, err := TransformIntoWindows(&models.FeatureBatch{}, 12, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(w.Features) != 0 {
		t.Fatalf("expected zero windows, got %d", len(w.Features))
	}
}

func TestTransformInvalidParams(t *testing.T) {
	if _, err := TransformIntoWindows(dailyBatch(7), 0, 1); err == nil {
		t.Fatalf("expected error for nPrevious=0")
	}
	if _, err := TransformIntoWindows(dailyBatch(7), 2, 0); err == nil {
		t.Fatalf("expected error for stepSize=0")
	}
}
