package api

import (
	"time"

	"PriceCast/internal/domain/models"
	icache "PriceCast/internal/service/cache"
	"PriceCast/internal/usecase"
	xhttp "PriceCast/pkg/http"
	xlogger "PriceCast/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PredictionsHandler serves the latest batch predictions over HTTP.
type PredictionsHandler struct {
	logger       *xlogger.Logger
	pipeline     *usecase.Pipeline
	cache        icache.PredictionsCache
	cacheTTL     time.Duration
	modelName    string
	modelVersion int
	now          func() time.Time
}

func NewPredictionsHandler(
	logger *xlogger.Logger,
	pipeline *usecase.Pipeline,
	cache icache.PredictionsCache,
	cacheTTL time.Duration,
	modelName string,
	modelVersion int,
) *PredictionsHandler {
	return &PredictionsHandler{
		logger:       logger,
		pipeline:     pipeline,
		cache:        cache,
		cacheTTL:     cacheTTL,
		modelName:    modelName,
		modelVersion: modelVersion,
		now:          time.Now,
	}
}

func (h *PredictionsHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/predictions", h.Predictions)
}

func (h *PredictionsHandler) Predictions(c echo.Context) error {
	req := &models.PredictionsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	if !req.Fresh && h.cache != nil {
		if cached, ok, err := h.cache.GetLatest(); err == nil && ok {
			return xhttp.SuccessResponse(c, cached)
		}
	}

	frame, err := h.pipeline.Run(c.Request().Context())
	if err != nil {
		h.logger.Error("pipeline run error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.UpstreamError(err))
	}

	resp := &models.PredictionsResponse{
		Date:         h.now().UTC().Format("2006-01-02"),
		ModelName:    h.modelName,
		ModelVersion: h.modelVersion,
		Column:       frame.Column,
		Rows:         frame.Len(),
		Predictions:  frame.Values,
	}

	if h.cache != nil {
		if err := h.cache.SetLatest(resp, h.cacheTTL); err != nil && h.logger != nil {
			h.logger.Warn("predictions cache write error", xlogger.Error(err))
		}
	}

	return xhttp.SuccessResponse(c, resp)
}
