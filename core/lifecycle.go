package core

import (
	"context"
	"errors"
	"fmt"
)

// HookFunc is a startup or shutdown hook. Hooks receive a context that
// is cancelled when the surrounding phase times out.
type HookFunc func(ctx context.Context) error

// OnStartup registers hooks to run before the server starts accepting
// requests, in registration order.
func (a *App) OnStartup(hooks ...HookFunc) {
	a.startupHooks = append(a.startupHooks, hooks...)
}

// OnShutdown registers hooks to run during graceful shutdown, in
// registration order.
func (a *App) OnShutdown(hooks ...HookFunc) {
	a.shutdownHooks = append(a.shutdownHooks, hooks...)
}

// Startup runs the startup hooks in order and aborts on the first
// failure. A failed startup leaves earlier hooks applied; the caller is
// expected to run Shutdown for cleanup.
func (a *App) Startup(ctx context.Context) error {
	for i, hook := range a.startupHooks {
		if err := hook(ctx); err != nil {
			return fmt.Errorf("startup hook %d failed: %w", i, err)
		}
	}
	return nil
}

// Shutdown runs every shutdown hook regardless of individual failures
// and returns the joined errors.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error
	for i, hook := range a.shutdownHooks {
		if err := hook(ctx); err != nil {
			a.logger.Error("shutdown hook failed", "hook", i, "err", err)
			errs = append(errs, fmt.Errorf("shutdown hook %d failed: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
