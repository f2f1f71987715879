package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	drepo "PriceCast/internal/domain/repository"
	"PriceCast/internal/handler/api"
	icache "PriceCast/internal/service/cache"
	"PriceCast/internal/usecase"
	pkgch "PriceCast/pkg/clickhouse"
	"PriceCast/pkg/config"
	xhttp "PriceCast/pkg/http"
	applogger "PriceCast/pkg/logger"
)

// App encapsulates the application lifecycle: a one-shot batch run by default,
// or an HTTP server exposing predictions when serve mode is requested.
type App struct {
	cfg        *config.Config
	pipeline   *usecase.Pipeline
	sink       drepo.ResultSink
	chClient   *pkgch.Client
	logger     *applogger.Logger
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	pipeline *usecase.Pipeline,
	sink drepo.ResultSink,
	chClient *pkgch.Client,
	logger *applogger.Logger,
) *App {
	return &App{
		cfg:      cfg,
		pipeline: pipeline,
		sink:     sink,
		chClient: chClient,
		logger:   logger,
	}
}

// RunOnce executes a single batch inference pass and prints the result frame.
func (a *App) RunOnce(ctx context.Context) error {
	frame, err := a.pipeline.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%d rows)\n", frame.Column, frame.Len())
	for _, v := range frame.Values {
		fmt.Println(v)
	}
	return a.shutdown(ctx)
}

// Serve starts the HTTP server and blocks until interrupted.
func (a *App) Serve(ctx context.Context) error {
	var predCache icache.PredictionsCache
	if a.cfg.Cache.Redis.Enabled {
		predCache = icache.NewRedisCache(icache.RedisConfig{
			Addr:     a.cfg.Cache.Redis.Addr,
			Password: a.cfg.Cache.Redis.Password,
			DB:       a.cfg.Cache.Redis.DB,
		})
	} else if a.cfg.Cache.TTL > 0 {
		predCache = icache.NewMemoryCache()
	}

	handler := api.NewPredictionsHandler(
		a.logger,
		a.pipeline,
		predCache,
		a.cfg.Cache.TTL,
		a.cfg.Model.Name,
		a.cfg.Model.Version,
	)

	metricsPath := a.cfg.Metrics.Path
	if !a.cfg.Metrics.Enabled {
		metricsPath = ""
	}
	a.httpServer = xhttp.NewServer(handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(metricsPath),
		xhttp.WithLogger(a.logger),
	)

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown gracefully releases resources.
func (a *App) shutdown(ctx context.Context) error {
	if a.httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := a.httpServer.Stop(shutdownCtx); err != nil {
			a.logger.Error("http shutdown error", applogger.Error(err))
		}
	}

	if a.sink != nil {
		if err := a.sink.Close(); err != nil {
			a.logger.Warn("sink close error", applogger.Error(err))
		}
	}

	if a.chClient != nil {
		if err := a.chClient.Close(); err != nil {
			a.logger.Warn("clickhouse close error", applogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}
