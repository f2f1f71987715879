package features

import (
	"math"
	"testing"
	"time"

	"PriceCast/internal/domain/models"
)

func TestRollingMean(t *testing.T) {
	got := rollingMean([]float64{1, 2, 3, 4, 5, 6}, 5)
	for i := 0; i < 4; i++ {
		if !math.IsNaN(got[i]) {
			t.Fatalf("index %d should be NaN, got %v", i, got[i])
		}
	}
	if got[4] != 3 || got[5] != 4 {
		t.Fatalf("unexpected means %v %v", got[4], got[5])
	}
}

func TestRollingStd(t *testing.T) {
	got := rollingStd([]float64{7, 7, 7, 7, 7}, 5)
	if got[4] != 0 {
		t.Fatalf("constant series should have zero std, got %v", got[4])
	}
	// Sample std of 1..5 is sqrt(2.5).
	got = rollingStd([]float64{1, 2, 3, 4, 5}, 5)
	if math.Abs(got[4]-math.Sqrt(2.5)) > 1e-12 {
		t.Fatalf("unexpected std %v", got[4])
	}
}

func TestExpMovingAverage(t *testing.T) {
	got := expMovingAverage([]float64{1, 2}, 5)
	if got[0] != 1 {
		t.Fatalf("seed should be first value, got %v", got[0])
	}
	// alpha = 1/3: 1/3*2 + 2/3*1 = 4/3
	if math.Abs(got[1]-4.0/3.0) > 1e-12 {
		t.Fatalf("unexpected ema %v", got[1])
	}
}

func TestPctChangeAndDiff(t *testing.T) {
	pct := pctChange([]float64{2, 3})
	if !math.IsNaN(pct[0]) || pct[1] != 0.5 {
		t.Fatalf("unexpected pct change %v", pct)
	}
	d := diff([]float64{2, 3})
	if !math.IsNaN(d[0]) || d[1] != 1 {
		t.Fatalf("unexpected diff %v", d)
	}
}

func TestAddIndicators(t *testing.T) {
	rows := make([]models.FeatureRow, 6)
	for i := range rows {
		v := float64(i + 1)
		rows[i] = models.FeatureRow{
			Datetime:   time.Date(2024, 8, 1+i, 0, 0, 0, 0, time.UTC),
			ClosePrice: v,
			Volume:     v,
		}
	}
	b := &models.FeatureBatch{Rows: rows}

	AddIndicators(b)

	if b.Rows[4].SMA5 != 3 || b.Rows[5].SMA5 != 4 {
		t.Fatalf("unexpected sma5 %v %v", b.Rows[4].SMA5, b.Rows[5].SMA5)
	}
	// Leading rows without a full window get backfilled, never NaN.
	if math.IsNaN(b.Rows[0].SMA5) || b.Rows[0].SMA5 != 3 {
		t.Fatalf("leading sma5 should backfill to 3, got %v", b.Rows[0].SMA5)
	}
	if b.Rows[1].DailyReturn != 1 {
		t.Fatalf("unexpected daily return %v", b.Rows[1].DailyReturn)
	}
	if b.Rows[5].PriceDiff != 1 {
		t.Fatalf("unexpected price diff %v", b.Rows[5].PriceDiff)
	}
	if b.Rows[5].VolumeSMA5 != 4 {
		t.Fatalf("unexpected volume sma %v", b.Rows[5].VolumeSMA5)
	}
	for i, r := range b.Rows {
		if math.IsNaN(r.EMA5) || math.IsNaN(r.Vol5) || math.IsNaN(r.VolumeChange) {
			t.Fatalf("row %d still has NaN indicators", i)
		}
	}
}
