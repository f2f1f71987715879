package usecase

import (
	"fmt"
	"math"

	"PriceCast/internal/domain/models"
	drepo "PriceCast/internal/domain/repository"
)

// Predict scores the prepared feature matrix and rounds every output to the
// nearest integer (ties to even), one row per input vector. Prediction errors
// propagate unmodified; no schema validation happens here.
func Predict(model drepo.Predictor, features [][]float64) (*models.PredictionFrame, error) {
	raw, err := model.Predict(features)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}

	values := make([]int64, len(raw))
	for i, v := range raw {
		values[i] = int64(math.RoundToEven(v))
	}
	return &models.PredictionFrame{
		Column: models.PredictedPricesColumn,
		Values: values,
	}, nil
}
