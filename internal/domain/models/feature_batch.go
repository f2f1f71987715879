package models

import (
	"sort"
	"time"
)

// FeatureRow is one daily time point of the feature view: the raw aggregate
// bar plus the derived indicator columns the model was trained on. Indicators
// are recomputed from the raw columns during data prep.
type FeatureRow struct {
	Datetime        time.Time
	OpenPrice       float64
	HighPrice       float64
	LowPrice        float64
	ClosePrice      float64
	Volume          float64
	VWAvgPrice      float64
	NumTransactions float64

	SMA5         float64
	SMA20        float64
	EMA5         float64
	EMA20        float64
	Vol5         float64
	DailyReturn  float64
	PriceDiff    float64
	VolumeSMA5   float64
	VolumeChange float64
}

// FeatureBatch is a tabular batch of feature rows. Downstream consumers assume
// chronological order, so rows must be sorted ascending by Datetime before use.
type FeatureBatch struct {
	Rows []FeatureRow
}

// SortByDatetime orders rows ascending by the datetime column. Sorting an
// already-sorted batch is a no-op.
func (b *FeatureBatch) SortByDatetime() {
	sort.SliceStable(b.Rows, func(i, j int) bool {
		return b.Rows[i].Datetime.Before(b.Rows[j].Datetime)
	})
}

// IsSortedByDatetime reports whether rows are non-decreasing by datetime.
func (b *FeatureBatch) IsSortedByDatetime() bool {
	for i := 1; i < len(b.Rows); i++ {
		if b.Rows[i].Datetime.Before(b.Rows[i-1].Datetime) {
			return false
		}
	}
	return true
}

// Len returns the row count.
func (b *FeatureBatch) Len() int { return len(b.Rows) }

// ClosePrices extracts the close-price column in row order.
func (b *FeatureBatch) ClosePrices() []float64 {
	out := make([]float64, len(b.Rows))
	for i, r := range b.Rows {
		out[i] = r.ClosePrice
	}
	return out
}
