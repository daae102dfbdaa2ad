package velo

import (
	"log/slog"
	"os"

	phuslog "github.com/phuslu/log"

	"github.com/velotic/velo/cache/ristretto"
	"github.com/velotic/velo/core"
	"github.com/velotic/velo/router/httprouter"
	"github.com/velotic/velo/router/servemux"
)

// WithRouterServeMux wires the net/http ServeMux router backend.
// Patterns use Go 1.22 "{name}" syntax.
func WithRouterServeMux() core.Option {
	return core.WithRouter(servemux.New())
}

// WithRouterHttprouter wires the julienschmidt/httprouter backend.
// Patterns use ":name" and "*name" syntax.
func WithRouterHttprouter() core.Option {
	return core.WithRouter(httprouter.New())
}

// WithCacheRistretto wires a ristretto-backed app cache.
func WithCacheRistretto() (core.Option, error) {
	c, err := ristretto.New[any]()
	if err != nil {
		return nil, err
	}
	return core.WithCache(c), nil
}

// DefaultLoggerOptions returns handler options at the given level with
// the time attribute removed.
func DefaultLoggerOptions(level slog.Leveler) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}
}

// WithPhusLogger configures slog with phuslu/log's JSON handler. Nil
// opts derive the handler level from the configuration, so the config
// provider option must run first; New guarantees that order.
func WithPhusLogger(opts *slog.HandlerOptions) core.Option {
	return func(a *core.App) {
		logger := slog.New(phuslog.SlogNewJSONHandler(os.Stderr, resolveLoggerOptions(a, opts)))
		core.WithLogger(logger)(a)
	}
}

// WithTextLogger configures slog with the standard library's text
// handler. Nil opts derive the handler level from the configuration.
func WithTextLogger(opts *slog.HandlerOptions) core.Option {
	return func(a *core.App) {
		logger := slog.New(slog.NewTextHandler(os.Stdout, resolveLoggerOptions(a, opts)))
		core.WithLogger(logger)(a)
	}
}

// resolveLoggerOptions maps the configured log level (app.debug forces
// DEBUG) into handler options. Without a config provider the level
// falls back to INFO.
func resolveLoggerOptions(a *core.App, opts *slog.HandlerOptions) *slog.HandlerOptions {
	if opts != nil {
		return opts
	}

	level := slog.Leveler(slog.LevelInfo)
	if p := a.ConfigProvider(); p != nil {
		cfg := p.Get()
		if cfg.App.Debug {
			level = slog.LevelDebug
		} else {
			level = cfg.Log.Level.Level
		}
	}
	return DefaultLoggerOptions(level)
}
