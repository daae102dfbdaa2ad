package httprouter

import (
	"net/http"

	jshttprouter "github.com/julienschmidt/httprouter"

	"github.com/velotic/velo/router"
)

// Router implements router.Router on top of julienschmidt/httprouter.
// Path parameters use the ":name" syntax, catch-alls "*name".
type Router struct {
	rt *jshttprouter.Router
}

func New() router.Router {
	return &Router{rt: jshttprouter.New()}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.rt.ServeHTTP(w, req)
}

func (r *Router) Handle(method, path string, handler http.Handler) {
	if method == "" {
		method = http.MethodGet
	}
	r.rt.Handler(method, path, handler)
}

func (r *Router) Param(req *http.Request, key string) string {
	ps := jshttprouter.ParamsFromContext(req.Context())
	return ps.ByName(key)
}
