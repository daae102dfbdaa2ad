package router

import "net/http"

// Router is the dispatch delegate of the framework. Implementations own
// path matching and parameter extraction; route metadata (names, tags,
// documentation) lives in the application's route table, not here.
type Router interface {
	http.Handler

	// Handle registers a handler for the given HTTP method and path
	// pattern. The pattern syntax is backend specific (":id" for
	// httprouter, "{id}" for ServeMux).
	Handle(method, path string, handler http.Handler)

	// Param returns the value of the named path parameter for a request
	// dispatched through this router, or "" if absent.
	Param(req *http.Request, key string) string
}
