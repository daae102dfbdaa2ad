package prerouter

import (
	"net/http"

	"github.com/velotic/velo/core"
)

// LimitRequestBody caps request body size before handlers ever read it.
type LimitRequestBody struct {
	app *core.App
}

func NewLimitRequestBody(app *core.App) *LimitRequestBody {
	return &LimitRequestBody{app: app}
}

// Execute wraps the next handler. Handlers reading past the cap get an
// error from the body reader; http.MaxBytesReader also closes the
// connection on overflow.
func (l *LimitRequestBody) Execute(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		max := l.app.Config().Limits.MaxRequestBody
		if max > 0 && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, max)
		}
		next.ServeHTTP(w, r)
	})
}
