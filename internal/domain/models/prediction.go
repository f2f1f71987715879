package models

import "time"

// PredictedPricesColumn is the name of the single output column.
const PredictedPricesColumn = "predicted_prices"

// PredictionFrame holds rounded point predictions, one per input feature
// window. Ephemeral: returned to the caller and not retained.
type PredictionFrame struct {
	Column string
	Values []int64
}

// Len returns the row count.
func (f *PredictionFrame) Len() int { return len(f.Values) }

// PredictionRecord is a prediction annotated for sinks (Kafka, ClickHouse).
type PredictionRecord struct {
	RunAt          time.Time
	Datetime       time.Time
	ModelName      string
	ModelVersion   int
	PredictedPrice int64
}
