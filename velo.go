// Package velo assembles the framework: it loads configuration, builds
// the application object and wraps the router with the pre-router
// middleware chain and the graceful server.
package velo

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/velotic/velo/config"
	"github.com/velotic/velo/core"
	"github.com/velotic/velo/core/prerouter"
	"github.com/velotic/velo/router"
	"github.com/velotic/velo/server"
)

// New creates a new App instance and Server with the provided options.
// cfgPath points to a TOML configuration file; an empty path uses the
// built-in defaults.
func New(cfgPath string, opts ...core.Option) (*core.App, *server.Server, error) {
	var cfg *config.Config
	var err error
	if cfgPath == "" {
		cfg = config.NewDefaultConfig()
	} else {
		cfg, err = config.Load(cfgPath)
		if err != nil {
			slog.Error("failed to load initial config", "path", cfgPath, "error", err)
			return nil, nil, err
		}
	}

	configProvider := config.NewProvider(cfg)

	// User options run after the defaults so they can override them.
	allOpts := []core.Option{core.WithConfigProvider(configProvider)}
	allOpts = append(allOpts, opts...)

	app, err := core.NewApp(allOpts...)
	if err != nil {
		slog.Error("failed to initialize core app", "error", err)
		return nil, nil, err
	}

	// Each app gets its own metric registry so multiple instances in
	// one process do not collide on registration.
	registry := prometheus.NewRegistry()

	if err := route(cfg, app, registry); err != nil {
		app.Logger().Error("failed to register built-in routes", "error", err)
		return nil, nil, err
	}

	srv := server.NewServer(configProvider, rootHandler(cfg, app, registry), app, app.Logger())
	return app, srv, nil
}

// rootHandler wraps the router with the pre-router middleware chain.
// The chain runs before any route matching.
func rootHandler(cfg *config.Config, app *core.App, registry *prometheus.Registry) http.Handler {
	var mws []func(http.Handler) http.Handler

	if cfg.Metrics.Activated {
		metrics := prerouter.NewMetrics(prerouter.MetricsOpts{Registry: registry})
		mws = append(mws, metrics.Execute)
	}
	if cfg.Log.Request.Activated {
		mws = append(mws, prerouter.NewRequestLog(app).Execute)
	}
	if cfg.BlockIp.Activated {
		mws = append(mws, prerouter.NewBlockIp(app).Execute)
	}
	if cfg.Limits.MaxRequestBody > 0 {
		mws = append(mws, prerouter.NewLimitRequestBody(app).Execute)
	}
	mws = append(mws, app.Recoverer)

	return router.NewChain(app.Router()).WithMiddleware(mws...).Handler()
}
