package hopsworks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	drepo "PriceCast/internal/domain/repository"
	xhttp "PriceCast/pkg/http"
	applogger "PriceCast/pkg/logger"
)

// modelRegistry resolves versioned model artifacts through the session.
type modelRegistry struct {
	session *session
}

type modelDTO struct {
	Name    string   `json:"name"`
	Version int      `json:"version"`
	Files   []string `json:"files"`
}

func (r *modelRegistry) GetModel(ctx context.Context, name string, version int) (drepo.ModelHandle, error) {
	var dto modelDTO
	url := r.session.projectURL("/modelregistry/models/%s/version/%d", name, version)
	if err := r.session.client.http.SendAndParse(ctx, &xhttp.RequestOptions{Method: xhttp.MethodGet, URL: url}, &dto); err != nil {
		return nil, fmt.Errorf("get model %s v%d: %w", name, version, err)
	}
	return &modelHandle{session: r.session, name: dto.Name, version: dto.Version, files: dto.Files}, nil
}

// modelHandle points at one registered model version.
type modelHandle struct {
	session *session
	name    string
	version int
	files   []string
}

// Download fetches every artifact file of the model version into a fresh local
// directory and returns its path. The directory location is owned by the
// client, not the caller.
func (m *modelHandle) Download(ctx context.Context) (string, error) {
	t0 := time.Now()
	dir, err := os.MkdirTemp("", fmt.Sprintf("%s_%d_", m.name, m.version))
	if err != nil {
		return "", fmt.Errorf("model download dir: %w", err)
	}

	for _, f := range m.files {
		url := m.session.projectURL("/modelregistry/models/%s/version/%d/artifact/%s", m.name, m.version, f)
		if err := m.session.client.http.DownloadToFile(ctx, url, filepath.Join(dir, f)); err != nil {
			return "", fmt.Errorf("model artifact %s: %w", f, err)
		}
	}

	if l := m.session.client.l; l != nil {
		l.Info("model artifacts downloaded",
			applogger.String("model", m.name),
			applogger.Int("version", m.version),
			applogger.Int("files", len(m.files)),
			applogger.String("dir", dir),
			applogger.Duration("duration_ms", time.Since(t0)),
		)
	}
	return dir, nil
}
