package features

import (
	"math"
	"testing"
	"time"

	"PriceCast/internal/domain/models"
)

func TestAddMissingDays(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2024, 8, day, 0, 0, 0, 0, time.UTC) }
	b := &models.FeatureBatch{Rows: []models.FeatureRow{
		{Datetime: d(1), ClosePrice: 1},
		{Datetime: d(4), ClosePrice: 4},
	}}

	out := AddMissingDays(b, d(1), d(4))
	if out.Len() != 4 {
		t.Fatalf("expected 4 rows, got %d", out.Len())
	}
	if !out.IsSortedByDatetime() {
		t.Fatalf("result not sorted")
	}
	if !math.IsNaN(out.Rows[1].ClosePrice) || !math.IsNaN(out.Rows[2].ClosePrice) {
		t.Fatalf("inserted rows should be NaN")
	}
	if out.Rows[3].ClosePrice != 4 {
		t.Fatalf("existing row altered: %v", out.Rows[3].ClosePrice)
	}
}

func TestInterpolateLinear(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2024, 8, day, 0, 0, 0, 0, time.UTC) }
	nan := math.NaN()
	b := &models.FeatureBatch{Rows: []models.FeatureRow{
		{Datetime: d(1), ClosePrice: 1, OpenPrice: 1, HighPrice: 1, LowPrice: 1, Volume: 1, VWAvgPrice: 1, NumTransactions: 1},
		{Datetime: d(2), ClosePrice: nan, OpenPrice: nan, HighPrice: nan, LowPrice: nan, Volume: nan, VWAvgPrice: nan, NumTransactions: nan},
		{Datetime: d(3), ClosePrice: 3, OpenPrice: 3, HighPrice: 3, LowPrice: 3, Volume: 3, VWAvgPrice: 3, NumTransactions: 3},
	}}

	InterpolateBackfillFrontfill(b)
	if b.Rows[1].ClosePrice != 2 {
		t.Fatalf("expected linear fill 2, got %v", b.Rows[1].ClosePrice)
	}
}

func TestInterpolateEdgeGaps(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2024, 8, day, 0, 0, 0, 0, time.UTC) }
	nan := math.NaN()
	b := &models.FeatureBatch{Rows: []models.FeatureRow{
		{Datetime: d(1), ClosePrice: nan},
		{Datetime: d(2), ClosePrice: 5},
		{Datetime: d(3), ClosePrice: nan},
	}}

	InterpolateBackfillFrontfill(b)
	if b.Rows[0].ClosePrice != 5 {
		t.Fatalf("leading gap should backfill, got %v", b.Rows[0].ClosePrice)
	}
	if b.Rows[2].ClosePrice != 5 {
		t.Fatalf("trailing gap should forward fill, got %v", b.Rows[2].ClosePrice)
	}
}
