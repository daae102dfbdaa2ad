package core

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors the built-in error handlers key on. Applications may
// register handlers for their own sentinels through SetErrorHandler.
var (
	ErrInternal = errors.New("internal server error")
	ErrNotFound = errors.New("resource not found")
)

// ErrorHandler renders an error into a response. Handlers own the full
// response; nothing is written before or after them.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

type errorHandlerEntry struct {
	target  error
	handler ErrorHandler
}

// SetErrorHandler registers a handler for errors matching the target
// via errors.Is. Handlers are consulted in registration order. Not safe
// to call while the server is running; register handlers during setup.
func (a *App) SetErrorHandler(target error, handler ErrorHandler) {
	if target == nil || handler == nil {
		panic("error handler registration requires a target and a handler")
	}
	a.errorHandlers = append(a.errorHandlers, errorHandlerEntry{target: target, handler: handler})
}

// HandleError dispatches an error to the first matching registered
// handler, falling back to a generic JSON 500. With app.debug set the
// fallback body carries the error text instead of the generic message.
func (a *App) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	for _, entry := range a.errorHandlers {
		if errors.Is(err, entry.target) {
			entry.handler(w, r, err)
			return
		}
	}

	if errors.Is(err, ErrNotFound) {
		writeJsonError(w, errorNotFound)
		return
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		writeJsonError(w, errorRequestBodyTooLarge)
		return
	}

	a.logger.Error("unhandled request error", "err", err, "path", r.URL.Path)
	if a.Config().App.Debug {
		WriteJsonWithData(w, *NewJsonWithData(http.StatusInternalServerError, CodeErrorInternal, err.Error(), nil))
		return
	}
	writeJsonError(w, errorInternal)
}

// Recoverer converts handler panics into the error handler surface
// instead of letting the connection die.
func (a *App) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				a.logger.Error("panic recovered", "panic", rec, "method", r.Method, "path", r.URL.Path)
				a.HandleError(w, r, fmt.Errorf("%w: %v", ErrInternal, rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
