package usecase

import (
	"context"
	"time"

	"PriceCast/internal/domain/models"
	drepo "PriceCast/internal/domain/repository"
)

// stubPlatform wires a fixed feature batch and model directory behind the
// platform interfaces.
type stubPlatform struct {
	batch    *models.FeatureBatch
	modelDir string

	gotStart time.Time
	gotEnd   time.Time
	gotView  string
	gotModel string
}

func (p *stubPlatform) Login(ctx context.Context) (drepo.Session, error) {
	return &stubSession{p: p}, nil
}

type stubSession struct{ p *stubPlatform }

func (s *stubSession) FeatureStore() drepo.FeatureStore   { return &stubFeatureStore{p: s.p} }
func (s *stubSession) ModelRegistry() drepo.ModelRegistry { return &stubRegistry{p: s.p} }

type stubFeatureStore struct{ p *stubPlatform }

func (s *stubFeatureStore) GetFeatureView(ctx context.Context, name string, version int) (drepo.FeatureView, error) {
	s.p.gotView = name
	return &stubFeatureView{p: s.p}, nil
}

type stubFeatureView struct{ p *stubPlatform }

func (v *stubFeatureView) GetBatchData(ctx context.Context, start, end time.Time) (*models.FeatureBatch, error) {
	v.p.gotStart = start
	v.p.gotEnd = end
	rows := append([]models.FeatureRow(nil), v.p.batch.Rows...)
	return &models.FeatureBatch{Rows: rows}, nil
}

type stubRegistry struct{ p *stubPlatform }

func (r *stubRegistry) GetModel(ctx context.Context, name string, version int) (drepo.ModelHandle, error) {
	r.p.gotModel = name
	return &stubModelHandle{dir: r.p.modelDir}, nil
}

type stubModelHandle struct{ dir string }

func (h *stubModelHandle) Download(ctx context.Context) (string, error) {
	return h.dir, nil
}

// stubPredictor returns a fixed output regardless of input.
type stubPredictor struct {
	out  []float64
	rows int
}

func (m *stubPredictor) Predict(features [][]float64) ([]float64, error) {
	m.rows = len(features)
	return m.out, nil
}

// captureSink records everything stored.
type captureSink struct {
	records []models.PredictionRecord
	closed  bool
}

func (s *captureSink) StoreBatch(ctx context.Context, records []models.PredictionRecord) error {
	s.records = append(s.records, records...)
	return nil
}

func (s *captureSink) Close() error {
	s.closed = true
	return nil
}
