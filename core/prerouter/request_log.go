package prerouter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/velotic/velo/core"
)

const logMessage = "http_request"

// cutStr limits string length by adding an ellipsis when needed.
func cutStr(str string, max int) string {
	if len(str) > max {
		return str[:max] + "..."
	}
	return str
}

// RequestLog is middleware that logs HTTP request details.
type RequestLog struct {
	app *core.App
}

func NewRequestLog(app *core.App) *RequestLog {
	return &RequestLog{app: app}
}

// Execute wraps the next handler with request logging. Field lengths
// are capped by the configured limits so hostile headers cannot bloat
// the log stream.
func (l *RequestLog) Execute(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cfg := l.app.Config()
		if !cfg.Log.Request.Activated {
			next.ServeHTTP(w, r)
			return
		}

		rec := newResponseRecorder(w)
		start := time.Now()
		next.ServeHTTP(rec, r)

		limits := cfg.Log.Request.Limits
		l.app.Logger().LogAttrs(r.Context(), slog.LevelInfo, logMessage,
			slog.String("type", "request"),
			slog.String("method", r.Method),
			slog.String("uri", cutStr(r.URL.RequestURI(), limits.URILength)),
			slog.Int("status", rec.status),
			slog.Int64("bytes", rec.written),
			slog.Duration("duration", time.Since(start)),
			slog.String("remote_ip", cutStr(l.app.ClientIP(r), limits.RemoteIPLength)),
			slog.String("user_agent", cutStr(r.UserAgent(), limits.UserAgentLength)),
			slog.String("referer", cutStr(r.Referer(), limits.RefererLength)),
		)
	})
}
