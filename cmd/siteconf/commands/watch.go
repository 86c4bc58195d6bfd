package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	ferrors "git.home.luguber.info/inful/siteconf/internal/foundation/errors"
	"git.home.luguber.info/inful/siteconf/internal/logfields"
	"git.home.luguber.info/inful/siteconf/internal/metrics"
	"git.home.luguber.info/inful/siteconf/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	MetricsAddr string        `name:"metrics-addr" help:"Serve Prometheus metrics on this address (e.g. :9464)"`
	Debounce    time.Duration `help:"Quiet period before re-validating" default:"500ms"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return w.watch(ctx, g, root)
}

func (w *WatchCmd) watch(ctx context.Context, g *Global, root *CLI) error {
	reg := prom.NewRegistry()
	r := root.newRunner(metrics.NewPrometheusRecorder(reg))

	if w.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.HTTPHandler(reg))
		srv := &http.Server{Addr: w.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("Metrics server failed", logfields.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		slog.Info("Serving metrics", slog.String("addr", w.MetricsAddr))
	}

	check := func() {
		if _, err := r.run(); err != nil {
			slog.Error("Configuration invalid", logfields.Error(err))
			_, _ = fmt.Fprintf(g.out(), "invalid: %v\n", err)
			return
		}
		_, _ = fmt.Fprintln(g.out(), "ok")
	}
	check()

	watcher, err := watch.NewConfigWatcher(root.Config, w.Debounce, check)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryRuntime, "failed to create watcher").WithPath(root.Config).Build()
	}
	if err := watcher.Start(ctx); err != nil {
		_ = watcher.Stop()
		return ferrors.WrapError(err, ferrors.CategoryRuntime, "failed to start watcher").WithPath(root.Config).Build()
	}

	<-ctx.Done()
	slog.Info("Stopping watch")
	return watcher.Stop()
}
