package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/yanqian/daily-look/internal/domain/dailylook"
	"github.com/yanqian/daily-look/internal/infra/config"
)

// DailyRunner runs one delivery pass over every active subscriber.
type DailyRunner interface {
	RunDaily(ctx context.Context) (dailylook.RunSummary, error)
}

// App encapsulates the HTTP server lifecycle and the one-shot delivery mode.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	server *http.Server
	runner DailyRunner
}

// NewApp is used by Wire to build the runnable app.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server, runner DailyRunner) *App {
	return &App{cfg: cfg, logger: logger.With("component", "bootstrap"), server: server, runner: runner}
}

// Run starts the HTTP server and blocks until shutdown.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("http server starting", "address", a.cfg.HTTP.Address)
		if err := a.server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		a.logger.Info("shutdown signal received")
		return a.server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// RunOnce performs a single daily delivery run without serving HTTP.
// Scheduled jobs use it instead of calling the admin endpoint.
func (a *App) RunOnce(ctx context.Context) (dailylook.RunSummary, error) {
	a.logger.Info("one-shot delivery run starting")
	summary, err := a.runner.RunDaily(ctx)
	if err != nil {
		return dailylook.RunSummary{}, err
	}
	if summary.Failed > 0 {
		a.logger.Warn("delivery run finished with failures", "run_id", summary.RunID, "failed", summary.Failed)
	}
	return summary, nil
}
