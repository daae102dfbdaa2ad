package core

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/velotic/velo/router"
)

var (
	ErrNilRoute        = errors.New("route is nil")
	ErrDuplicateRoute  = errors.New("route already registered")
	ErrBadRouterPrefix = errors.New("prefix must be empty or start with '/' and not end with '/'")
)

// AddRoute registers a route on the route table and on the underlying
// router. Methods default to GET when the route names none. Registering
// the same method and path twice is an error.
func (a *App) AddRoute(rt *router.Route) error {
	if rt == nil {
		return ErrNilRoute
	}
	if err := rt.Validate(); err != nil {
		return err
	}
	rt.Methods = normalizeMethods(rt.Methods)

	a.mu.Lock()
	defer a.mu.Unlock()

	for _, method := range rt.Methods {
		if _, dup := a.routeKeys[method+" "+rt.Path]; dup {
			return fmt.Errorf("%w: %s %s", ErrDuplicateRoute, method, rt.Path)
		}
	}

	for _, method := range rt.Methods {
		a.routeKeys[method+" "+rt.Path] = struct{}{}
		a.router.Handle(method, rt.Path, rt.Handler)
	}

	a.routes = append(a.routes, rt)
	a.routeRev++
	return nil
}

func (a *App) Get(path string, h func(http.ResponseWriter, *http.Request)) error {
	return a.handleMethod(http.MethodGet, path, h)
}

func (a *App) Post(path string, h func(http.ResponseWriter, *http.Request)) error {
	return a.handleMethod(http.MethodPost, path, h)
}

func (a *App) Put(path string, h func(http.ResponseWriter, *http.Request)) error {
	return a.handleMethod(http.MethodPut, path, h)
}

func (a *App) Patch(path string, h func(http.ResponseWriter, *http.Request)) error {
	return a.handleMethod(http.MethodPatch, path, h)
}

func (a *App) Delete(path string, h func(http.ResponseWriter, *http.Request)) error {
	return a.handleMethod(http.MethodDelete, path, h)
}

func (a *App) Head(path string, h func(http.ResponseWriter, *http.Request)) error {
	return a.handleMethod(http.MethodHead, path, h)
}

func (a *App) Options(path string, h func(http.ResponseWriter, *http.Request)) error {
	return a.handleMethod(http.MethodOptions, path, h)
}

func (a *App) handleMethod(method, path string, h func(http.ResponseWriter, *http.Request)) error {
	return a.AddRoute(router.NewRoute(path).WithMethods(method).WithHandlerFunc(h))
}

// IncludeRouter mounts a route group under a prefix: every group route
// is re-rooted at prefix+path and registered through AddRoute. Group
// tags and middleware are applied by the group itself.
func (a *App) IncludeRouter(g *router.Group, prefix string) error {
	if err := validatePrefix(prefix); err != nil {
		return err
	}
	for _, rt := range g.Routes() {
		rt.Path = prefix + rt.Path
		if err := a.AddRoute(rt); err != nil {
			return fmt.Errorf("including group %q: %w", g.Prefix(), err)
		}
	}
	return nil
}

// Routes returns a snapshot of the registered route table.
func (a *App) Routes() []*router.Route {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]*router.Route, len(a.routes))
	copy(out, a.routes)
	return out
}

// routeRevision increments on every table mutation. The schema cache
// keys on it, so stale documents age out instead of being served.
func (a *App) routeRevision() uint64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.routeRev
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return nil
	}
	if !strings.HasPrefix(prefix, "/") || strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("%w: %q", ErrBadRouterPrefix, prefix)
	}
	return nil
}

func normalizeMethods(methods []string) []string {
	if len(methods) == 0 {
		return []string{http.MethodGet}
	}
	seen := make(map[string]struct{}, len(methods))
	out := make([]string, 0, len(methods))
	for _, m := range methods {
		m = strings.ToUpper(strings.TrimSpace(m))
		if m == "" {
			continue
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	if len(out) == 0 {
		return []string{http.MethodGet}
	}
	return out
}
