package router

import "net/http"

// Group collects routes that share a path prefix, tags and middleware.
// A group does not dispatch anything itself; the application mounts it,
// at which point every collected route is re-rooted and registered.
type Group struct {
	prefix      string
	tags        []string
	middlewares []func(http.Handler) http.Handler
	routes      []*Route
}

// NewGroup creates a group. The prefix must be empty or start with "/"
// and not end with "/"; this is enforced at mount time.
func NewGroup(prefix string) *Group {
	return &Group{prefix: prefix}
}

func (g *Group) Prefix() string {
	return g.prefix
}

// WithTags adds tags applied to every route in the group on mount.
func (g *Group) WithTags(tags ...string) *Group {
	g.tags = append(g.tags, tags...)
	return g
}

// WithMiddleware adds middleware wrapped around every route handler in
// the group on mount, with Chain ordering semantics.
func (g *Group) WithMiddleware(middlewares ...func(http.Handler) http.Handler) *Group {
	g.middlewares = append(g.middlewares, middlewares...)
	return g
}

// Add collects a route. The route is not registered until the group is
// mounted on an application.
func (g *Group) Add(routes ...*Route) *Group {
	g.routes = append(g.routes, routes...)
	return g
}

func (g *Group) Get(path string, h func(http.ResponseWriter, *http.Request)) *Group {
	return g.Add(NewRoute(path).WithMethods(http.MethodGet).WithHandlerFunc(h))
}

func (g *Group) Post(path string, h func(http.ResponseWriter, *http.Request)) *Group {
	return g.Add(NewRoute(path).WithMethods(http.MethodPost).WithHandlerFunc(h))
}

func (g *Group) Put(path string, h func(http.ResponseWriter, *http.Request)) *Group {
	return g.Add(NewRoute(path).WithMethods(http.MethodPut).WithHandlerFunc(h))
}

func (g *Group) Delete(path string, h func(http.ResponseWriter, *http.Request)) *Group {
	return g.Add(NewRoute(path).WithMethods(http.MethodDelete).WithHandlerFunc(h))
}

// Include merges another group into this one. The sub group's routes are
// re-rooted under its own prefix and inherit its tags and middleware, so
// nesting composes the same way mounting does.
func (g *Group) Include(sub *Group) *Group {
	for _, rt := range sub.Routes() {
		g.routes = append(g.routes, rt)
	}
	return g
}

// Routes returns the collected routes with the group prefix, tags and
// middleware applied. Each returned route is a copy.
func (g *Group) Routes() []*Route {
	out := make([]*Route, 0, len(g.routes))
	for _, rt := range g.routes {
		c := rt.Clone()
		c.Path = g.prefix + c.Path
		c.Tags = append(append([]string(nil), g.tags...), c.Tags...)
		if len(g.middlewares) > 0 && c.Handler != nil {
			c.Handler = NewChain(c.Handler).WithMiddleware(g.middlewares...).Handler()
		}
		out = append(out, c)
	}
	return out
}
