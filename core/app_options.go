package core

import (
	"log/slog"

	"github.com/velotic/velo/cache"
	"github.com/velotic/velo/config"
	"github.com/velotic/velo/router"
)

type Option func(*App)

// WithRouter sets the router implementation.
func WithRouter(r router.Router) Option {
	return func(a *App) {
		a.router = r
	}
}

// WithLogger sets the logger implementation.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

// WithCache sets the cache implementation.
func WithCache(c cache.Cache[string, any]) Option {
	return func(a *App) {
		a.cache = c
	}
}

// WithConfigProvider sets the application's configuration provider.
func WithConfigProvider(p *config.Provider) Option {
	return func(a *App) {
		a.configProvider = p
	}
}

// WithValidator sets the validator implementation.
func WithValidator(v Validator) Option {
	return func(a *App) {
		a.validator = v
	}
}
