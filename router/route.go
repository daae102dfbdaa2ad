package router

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrRouteNoPath     = errors.New("route path is empty")
	ErrRoutePathFormat = errors.New("route path must start with '/'")
	ErrRouteNoHandler  = errors.New("route has no handler")
)

// Route describes a single registered endpoint: where it is mounted, how
// it is dispatched, and the metadata used for the route listing and the
// generated schema.
type Route struct {
	Methods     []string
	Path        string
	Handler     http.Handler
	Name        string
	Summary     string
	Description string
	Tags        []string
	Deprecated  bool

	// Hidden routes are dispatched normally but excluded from the
	// generated schema.
	Hidden bool
}

// NewRoute creates a route for the given path. Methods default to GET
// when none are set before registration.
func NewRoute(path string) *Route {
	return &Route{Path: path}
}

func (r *Route) WithHandler(h http.Handler) *Route {
	r.Handler = h
	return r
}

func (r *Route) WithHandlerFunc(h func(http.ResponseWriter, *http.Request)) *Route {
	r.Handler = http.HandlerFunc(h)
	return r
}

// WithMethods sets the HTTP methods the route accepts. Methods are
// upper-cased on registration, not here.
func (r *Route) WithMethods(methods ...string) *Route {
	r.Methods = methods
	return r
}

func (r *Route) WithName(name string) *Route {
	r.Name = name
	return r
}

func (r *Route) WithSummary(summary string) *Route {
	r.Summary = summary
	return r
}

func (r *Route) WithDescription(description string) *Route {
	r.Description = description
	return r
}

func (r *Route) WithTags(tags ...string) *Route {
	r.Tags = append(r.Tags, tags...)
	return r
}

// MarkDeprecated flags the route as deprecated in the generated schema.
func (r *Route) MarkDeprecated() *Route {
	r.Deprecated = true
	return r
}

// Hide excludes the route from the generated schema while keeping it
// dispatchable.
func (r *Route) Hide() *Route {
	r.Hidden = true
	return r
}

// Validate checks the route is registrable.
func (r *Route) Validate() error {
	if r.Path == "" {
		return ErrRouteNoPath
	}
	if !strings.HasPrefix(r.Path, "/") {
		return fmt.Errorf("%w: %q", ErrRoutePathFormat, r.Path)
	}
	if r.Handler == nil {
		return fmt.Errorf("%w: %q", ErrRouteNoHandler, r.Path)
	}
	return nil
}

// Clone returns a deep copy. Used when mounting groups so the caller's
// route values stay untouched.
func (r *Route) Clone() *Route {
	c := *r
	c.Methods = append([]string(nil), r.Methods...)
	c.Tags = append([]string(nil), r.Tags...)
	return &c
}
