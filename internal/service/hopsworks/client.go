package hopsworks

import (
	"context"
	"fmt"
	"time"

	drepo "PriceCast/internal/domain/repository"
	xhttp "PriceCast/pkg/http"
	applogger "PriceCast/pkg/logger"
)

// Client implements the Platform capability against the Hopsworks REST API.
// Every Login call authenticates from scratch; sessions are not cached or
// pooled, matching the per-invocation lifetime the pipeline expects.
type Client struct {
	baseURL string
	project string
	http    *xhttp.Client
	l       *applogger.Logger
}

// New creates a new platform client authenticating with the given API key.
func New(baseURL, project, apiKey string, timeout time.Duration, l *applogger.Logger) drepo.Platform {
	return &Client{
		baseURL: baseURL,
		project: project,
		http: xhttp.NewClient(
			xhttp.WithTimeout(timeout),
			xhttp.WithAPIKey("Authorization", "ApiKey "+apiKey),
		),
		l: l,
	}
}

type projectDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Login resolves the configured project and returns an authenticated session.
// Credential and network failures propagate to the caller; no retry.
func (c *Client) Login(ctx context.Context) (drepo.Session, error) {
	var projects []projectDTO
	url := fmt.Sprintf("%s/hopsworks-api/api/project", c.baseURL)
	if err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{Method: xhttp.MethodGet, URL: url}, &projects); err != nil {
		return nil, fmt.Errorf("hopsworks login: %w", err)
	}

	for _, p := range projects {
		if p.Name == c.project {
			if c.l != nil {
				c.l.Info("hopsworks login ok",
					applogger.String("project", p.Name),
					applogger.Int("project_id", p.ID),
				)
			}
			return &session{client: c, projectID: p.ID}, nil
		}
	}
	return nil, fmt.Errorf("hopsworks login: project %q not found", c.project)
}

// session is an authenticated handle scoped to one project.
type session struct {
	client    *Client
	projectID int
}

func (s *session) FeatureStore() drepo.FeatureStore {
	return &featureStore{session: s}
}

func (s *session) ModelRegistry() drepo.ModelRegistry {
	return &modelRegistry{session: s}
}

func (s *session) projectURL(format string, args ...interface{}) string {
	return fmt.Sprintf("%s/hopsworks-api/api/project/%d%s",
		s.client.baseURL, s.projectID, fmt.Sprintf(format, args...))
}
