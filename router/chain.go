package router

import (
	"net/http"
)

// Chain wraps a base handler with middleware and observers.
type Chain struct {
	handler     http.Handler
	middlewares []func(http.Handler) http.Handler
	observers   []http.Handler
}

// NewChain creates a chain around the base handler.
func NewChain(h http.Handler) *Chain {
	if h == nil {
		panic("chain handler cannot be nil")
	}
	return &Chain{
		handler:     h,
		middlewares: make([]func(http.Handler) http.Handler, 0),
		observers:   make([]http.Handler, 0),
	}
}

// WithMiddleware adds one or more middlewares to the chain.
// Middlewares execute in the order they are given, left to right:
//
//	.WithMiddleware(mw1, mw2, mw3)
//
// runs mw1 first, then mw2, then mw3, then the handler. These are the
// same semantics as Alice (github.com/justinas/alice): the first
// middleware in the chain is the outermost handler, which matches the
// natural reading order of the code.
func (c *Chain) WithMiddleware(middlewares ...func(http.Handler) http.Handler) *Chain {
	for _, mw := range middlewares {
		c.middlewares = append([]func(http.Handler) http.Handler{mw}, c.middlewares...)
	}
	return c
}

// WithObservers adds handlers that run after the handler and middleware
// chain, typically for logging or metrics side effects. Observers run
// even when middleware short-circuits, and must not write to the
// response since headers may already have been sent.
func (c *Chain) WithObservers(observers ...http.Handler) *Chain {
	c.observers = append(c.observers, observers...)
	return c
}

// Handler returns the final handler with all middlewares and observers
// applied.
func (c *Chain) Handler() http.Handler {
	handler := c.handler

	for _, mw := range c.middlewares {
		handler = mw(handler)
	}

	if len(c.observers) == 0 {
		return handler
	}

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		handler.ServeHTTP(w, req)

		for _, obs := range c.observers {
			obs.ServeHTTP(w, req)
		}
	})
}
