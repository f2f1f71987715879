package features

import (
	"math"
	"time"

	"PriceCast/internal/domain/models"
)

// AddMissingDays completes the daily calendar between start and end, inserting
// NaN-valued rows for dates absent from the batch. The result is sorted
// ascending by datetime.
func AddMissingDays(batch *models.FeatureBatch, start, end time.Time) *models.FeatureBatch {
	existing := make(map[time.Time]struct{}, batch.Len())
	out := &models.FeatureBatch{Rows: append([]models.FeatureRow(nil), batch.Rows...)}
	for _, r := range batch.Rows {
		existing[dateKey(r.Datetime)] = struct{}{}
	}

	nan := math.NaN()
	for d := dateKey(start); !d.After(dateKey(end)); d = d.AddDate(0, 0, 1) {
		if _, ok := existing[d]; ok {
			continue
		}
		out.Rows = append(out.Rows, models.FeatureRow{
			Datetime:        d,
			OpenPrice:       nan,
			HighPrice:       nan,
			LowPrice:        nan,
			ClosePrice:      nan,
			Volume:          nan,
			VWAvgPrice:      nan,
			NumTransactions: nan,
			SMA5:            nan,
			SMA20:           nan,
			EMA5:            nan,
			EMA20:           nan,
			Vol5:            nan,
			DailyReturn:     nan,
			PriceDiff:       nan,
			VolumeSMA5:      nan,
			VolumeChange:    nan,
		})
	}
	out.SortByDatetime()
	return out
}

// InterpolateBackfillFrontfill fills NaN gaps per column: linear interpolation
// between known neighbors, then forward fill, then backward fill for leading
// gaps.
func InterpolateBackfillFrontfill(batch *models.FeatureBatch) {
	cols := []func(*models.FeatureRow) *float64{
		func(r *models.FeatureRow) *float64 { return &r.OpenPrice },
		func(r *models.FeatureRow) *float64 { return &r.HighPrice },
		func(r *models.FeatureRow) *float64 { return &r.LowPrice },
		func(r *models.FeatureRow) *float64 { return &r.ClosePrice },
		func(r *models.FeatureRow) *float64 { return &r.Volume },
		func(r *models.FeatureRow) *float64 { return &r.VWAvgPrice },
		func(r *models.FeatureRow) *float64 { return &r.NumTransactions },
		func(r *models.FeatureRow) *float64 { return &r.SMA5 },
		func(r *models.FeatureRow) *float64 { return &r.SMA20 },
		func(r *models.FeatureRow) *float64 { return &r.EMA5 },
		func(r *models.FeatureRow) *float64 { return &r.EMA20 },
		func(r *models.FeatureRow) *float64 { return &r.Vol5 },
		func(r *models.FeatureRow) *float64 { return &r.DailyReturn },
		func(r *models.FeatureRow) *float64 { return &r.PriceDiff },
		func(r *models.FeatureRow) *float64 { return &r.VolumeSMA5 },
		func(r *models.FeatureRow) *float64 { return &r.VolumeChange },
	}

	for _, col := range cols {
		vals := make([]float64, batch.Len())
		for i := range batch.Rows {
			vals[i] = *col(&batch.Rows[i])
		}
		interpolateColumn(vals)
		for i := range batch.Rows {
			*col(&batch.Rows[i]) = vals[i]
		}
	}
}

func interpolateColumn(vals []float64) {
	n := len(vals)

	// linear interpolation between known neighbors
	for i := 0; i < n; i++ {
		if !math.IsNaN(vals[i]) {
			continue
		}
		lo := i - 1
		hi := i
		for hi < n && math.IsNaN(vals[hi]) {
			hi++
		}
		if lo >= 0 && hi < n {
			span := float64(hi - lo)
			for j := lo + 1; j < hi; j++ {
				frac := float64(j-lo) / span
				vals[j] = vals[lo] + (vals[hi]-vals[lo])*frac
			}
			i = hi
		}
	}

	// forward fill
	for i := 1; i < n; i++ {
		if math.IsNaN(vals[i]) && !math.IsNaN(vals[i-1]) {
			vals[i] = vals[i-1]
		}
	}

	// backward fill for leading gaps
	for i := n - 2; i >= 0; i-- {
		if math.IsNaN(vals[i]) && !math.IsNaN(vals[i+1]) {
			vals[i] = vals[i+1]
		}
	}
}

func dateKey(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
