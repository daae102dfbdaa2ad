package servemux

import (
	"net/http"

	"github.com/velotic/velo/router"
)

// ServeMuxRouter implements router.Router using net/http ServeMux.
// Path parameters use the Go 1.22 "{name}" pattern syntax.
type ServeMuxRouter struct {
	*http.ServeMux
}

func New() router.Router {
	return &ServeMuxRouter{ServeMux: http.NewServeMux()}
}

func (s *ServeMuxRouter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.ServeMux.ServeHTTP(w, r)
}

func (s *ServeMuxRouter) Handle(method, path string, handler http.Handler) {
	if method == "" {
		s.ServeMux.Handle(path, handler)
		return
	}
	s.ServeMux.Handle(method+" "+path, handler)
}

func (s *ServeMuxRouter) Param(req *http.Request, key string) string {
	return req.PathValue(key)
}
