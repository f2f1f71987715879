package features

import (
	"math"

	"PriceCast/internal/domain/models"
)

// AddIndicators computes the derived indicator columns from the raw close
// price and volume series: simple and exponential moving averages, rolling
// volatility, daily return, price difference, and volume statistics. Rows
// without a full rolling window come out NaN; a final interpolation pass
// fills them so every row is usable as model input.
func AddIndicators(batch *models.FeatureBatch) {
	n := batch.Len()
	if n == 0 {
		return
	}

	closes := batch.ClosePrices()
	volumes := make([]float64, n)
	for i, r := range batch.Rows {
		volumes[i] = r.Volume
	}

	sma5 := rollingMean(closes, 5)
	sma20 := rollingMean(closes, 20)
	ema5 := expMovingAverage(closes, 5)
	ema20 := expMovingAverage(closes, 20)
	vol5 := rollingStd(closes, 5)
	dailyReturn := pctChange(closes)
	priceDiff := diff(closes)
	volumeSMA5 := rollingMean(volumes, 5)
	volumeChange := pctChange(volumes)

	for i := range batch.Rows {
		r := &batch.Rows[i]
		r.SMA5 = sma5[i]
		r.SMA20 = sma20[i]
		r.EMA5 = ema5[i]
		r.EMA20 = ema20[i]
		r.Vol5 = vol5[i]
		r.DailyReturn = dailyReturn[i]
		r.PriceDiff = priceDiff[i]
		r.VolumeSMA5 = volumeSMA5[i]
		r.VolumeChange = volumeChange[i]
	}

	InterpolateBackfillFrontfill(batch)
}

// rollingMean averages the trailing `window` values. Rows before the first
// full window are NaN.
func rollingMean(vals []float64, window int) []float64 {
	out := make([]float64, len(vals))
	var sum float64
	for i, v := range vals {
		sum += v
		if i >= window {
			sum -= vals[i-window]
		}
		if i < window-1 {
			out[i] = math.NaN()
			continue
		}
		out[i] = sum / float64(window)
	}
	return out
}

// rollingStd is the trailing sample standard deviation over `window` values.
func rollingStd(vals []float64, window int) []float64 {
	out := make([]float64, len(vals))
	for i := range vals {
		if i < window-1 {
			out[i] = math.NaN()
			continue
		}
		w := vals[i-window+1 : i+1]
		var mean float64
		for _, v := range w {
			mean += v
		}
		mean /= float64(window)
		var ss float64
		for _, v := range w {
			d := v - mean
			ss += d * d
		}
		out[i] = math.Sqrt(ss / float64(window-1))
	}
	return out
}

// expMovingAverage seeds with the first value and applies
// alpha = 2/(span+1) recursively.
func expMovingAverage(vals []float64, span int) []float64 {
	out := make([]float64, len(vals))
	if len(vals) == 0 {
		return out
	}
	alpha := 2.0 / float64(span+1)
	out[0] = vals[0]
	for i := 1; i < len(vals); i++ {
		out[i] = alpha*vals[i] + (1-alpha)*out[i-1]
	}
	return out
}

// pctChange is the relative change from the previous value; NaN for the first
// row.
func pctChange(vals []float64) []float64 {
	out := make([]float64, len(vals))
	for i := range vals {
		if i == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = (vals[i] - vals[i-1]) / vals[i-1]
	}
	return out
}

// diff is the absolute change from the previous value; NaN for the first row.
func diff(vals []float64) []float64 {
	out := make([]float64, len(vals))
	for i := range vals {
		if i == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = vals[i] - vals[i-1]
	}
	return out
}
