package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	drepo "PriceCast/internal/domain/repository"
	"PriceCast/internal/service/lightgbm"
)

// DecodeFunc deserializes a model artifact from a local path.
type DecodeFunc func(path string) (drepo.Predictor, error)

// ModelLoader resolves the configured model through the registry, downloads
// its artifact directory and deserializes the predictor. The model is fully
// re-loaded on every call; there is no cache.
type ModelLoader struct {
	platform     drepo.Platform
	name         string
	version      int
	artifactFile string
	decode       DecodeFunc
	metrics      drepo.Metrics
}

// NewModelLoader creates a model loader for the configured name and version.
// artifactFile is the fixed file name inside the downloaded directory.
func NewModelLoader(platform drepo.Platform, name string, version int, artifactFile string, metrics drepo.Metrics) *ModelLoader {
	return &ModelLoader{
		platform:     platform,
		name:         name,
		version:      version,
		artifactFile: artifactFile,
		decode:       lightgbm.LoadFromFile,
		metrics:      metrics,
	}
}

// WithDecode overrides artifact deserialization, for tests.
func (m *ModelLoader) WithDecode(decode DecodeFunc) *ModelLoader {
	m.decode = decode
	return m
}

// LoadModel returns the deserialized predictor. Download and deserialization
// failures propagate unmodified.
func (m *ModelLoader) LoadModel(ctx context.Context) (drepo.Predictor, error) {
	t0 := time.Now()

	session, err := m.platform.Login(ctx)
	if err != nil {
		if m.metrics != nil {
			m.metrics.RecordError("login")
		}
		return nil, fmt.Errorf("load model: %w", err)
	}

	handle, err := session.ModelRegistry().GetModel(ctx, m.name, m.version)
	if err != nil {
		if m.metrics != nil {
			m.metrics.RecordError("model_resolve")
		}
		return nil, fmt.Errorf("load model: %w", err)
	}

	dir, err := handle.Download(ctx)
	if err != nil {
		if m.metrics != nil {
			m.metrics.RecordError("model_download")
		}
		return nil, fmt.Errorf("load model: %w", err)
	}

	predictor, err := m.decode(filepath.Join(dir, m.artifactFile))
	if err != nil {
		if m.metrics != nil {
			m.metrics.RecordError("model_decode")
		}
		return nil, fmt.Errorf("load model: %w", err)
	}

	if m.metrics != nil {
		m.metrics.RecordStageLatency("load_model", time.Since(t0).Seconds())
	}
	return predictor, nil
}
