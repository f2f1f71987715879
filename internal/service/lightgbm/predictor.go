package lightgbm

import (
	"fmt"

	drepo "PriceCast/internal/domain/repository"

	"github.com/dmitryikh/leaves"
)

// Predictor wraps a deserialized LightGBM ensemble. Owned by the caller that
// loaded it; fully re-loaded on every pipeline invocation, never cached.
type Predictor struct {
	ensemble *leaves.Ensemble
}

// LoadFromFile deserializes a LightGBM model artifact from disk.
func LoadFromFile(path string) (drepo.Predictor, error) {
	ens, err := leaves.LGEnsembleFromFile(path, false)
	if err != nil {
		return nil, fmt.Errorf("load lightgbm model %s: %w", path, err)
	}
	return &Predictor{ensemble: ens}, nil
}

// Predict scores one feature vector per row, single-output regression.
func (p *Predictor) Predict(features [][]float64) ([]float64, error) {
	out := make([]float64, len(features))
	for i, vec := range features {
		out[i] = p.ensemble.PredictSingle(vec, 0)
	}
	return out, nil
}
