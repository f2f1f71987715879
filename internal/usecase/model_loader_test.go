package usecase

import (
	"context"
	"path/filepath"
	"testing"

	"PriceCast/internal/domain/models"
	drepo "PriceCast/internal/domain/repository"
)

func TestModelLoaderArtifactPath(t *testing.T) {
	for _, dir := range []string{"/tmp/models/a", "/var/run/models/b"} {
		p := &stubPlatform{batch: &models.FeatureBatch{}, modelDir: dir}

		var gotPath string
		loader := NewModelLoader(p, "lightgbm_model_stock_prices", 2, "lgb_model.pkl", nil).
			WithDecode(func(path string) (drepo.Predictor, error) {
				gotPath = path
				return &stubPredictor{}, nil
			})

		if _, err := loader.LoadModel(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := filepath.Join(dir, "lgb_model.pkl")
		if gotPath != want {
			t.Fatalf("decode path: got %q, want %q", gotPath, want)
		}
		if p.gotModel != "lightgbm_model_stock_prices" {
			t.Fatalf("requested model %q", p.gotModel)
		}
	}
}
