package bootstrap

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/daily-look/internal/domain/dailylook"
	"github.com/yanqian/daily-look/internal/infra/config"
)

func TestRunOnceDelegatesToRunner(t *testing.T) {
	runner := &stubRunner{summary: dailylook.RunSummary{RunID: "run-1", Subscribers: 2, Delivered: 1, Failed: 1}}
	app := NewApp(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)), &http.Server{}, runner)

	summary, err := app.RunOnce(context.Background())
	require.NoError(t, err)
	require.Equal(t, "run-1", summary.RunID)
	require.Equal(t, 1, runner.calls)

	runner.err = errors.New("db down")
	_, err = app.RunOnce(context.Background())
	require.Error(t, err)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	cfg := &config.Config{HTTP: config.HTTPConfig{Address: "127.0.0.1:0"}}
	server := &http.Server{Addr: cfg.HTTP.Address, Handler: http.NotFoundHandler()}
	app := NewApp(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), server, &stubRunner{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, app.Run(ctx))
}

type stubRunner struct {
	summary dailylook.RunSummary
	err     error
	calls   int
}

func (s *stubRunner) RunDaily(ctx context.Context) (dailylook.RunSummary, error) {
	s.calls++
	return s.summary, s.err
}
