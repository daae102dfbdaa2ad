package core

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/velotic/velo/cache"
	"github.com/velotic/velo/config"
	"github.com/velotic/velo/router"
)

// App is the application wide context. Heavy shared objects (router,
// cache, config provider) live here, and all built-in handlers and
// middleware have App as receiver.
//
// The route table on App is the source of truth for the generated
// schema and the route listing endpoint. The router only dispatches.
type App struct {
	router         router.Router
	logger         *slog.Logger
	configProvider *config.Provider
	cache          cache.Cache[string, any]
	validator      Validator
	blockList      *BlockList

	mu        sync.RWMutex
	routes    []*router.Route
	routeKeys map[string]struct{}
	routeRev  uint64

	startupHooks  []HookFunc
	shutdownHooks []HookFunc

	errorHandlers []errorHandlerEntry
}

// NewApp creates an App from the given options. A router and a config
// provider are required; logger and validator fall back to defaults.
func NewApp(opts ...Option) (*App, error) {
	a := &App{
		routeKeys: make(map[string]struct{}),
		blockList: NewBlockList(),
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.router == nil {
		return nil, fmt.Errorf("router is required but was not provided (use WithRouter)")
	}
	if a.configProvider == nil {
		return nil, fmt.Errorf("config provider is required but was not provided (use WithConfigProvider)")
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	if a.validator == nil {
		a.validator = NewValidator()
	}

	return a, nil
}

// Router returns the application's router instance.
func (a *App) Router() router.Router {
	return a.router
}

func (a *App) SetRouter(r router.Router) {
	a.router = r
}

func (a *App) Logger() *slog.Logger {
	return a.logger
}

func (a *App) SetLogger(l *slog.Logger) {
	a.logger = l
}

func (a *App) Cache() cache.Cache[string, any] {
	return a.cache
}

func (a *App) SetCache(c cache.Cache[string, any]) {
	a.cache = c
}

// Config returns the current configuration snapshot.
func (a *App) Config() *config.Config {
	return a.configProvider.Get()
}

func (a *App) ConfigProvider() *config.Provider {
	return a.configProvider
}

func (a *App) SetConfigProvider(provider *config.Provider) {
	a.configProvider = provider
}

// Validator returns the validator instance.
func (a *App) Validator() Validator {
	return a.validator
}

// SetValidator sets the validator implementation.
func (a *App) SetValidator(v Validator) {
	a.validator = v
}

// BlockList returns the in-memory IP blocklist shared with the
// pre-router middleware.
func (a *App) BlockList() *BlockList {
	return a.blockList
}
