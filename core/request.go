package core

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP extracts the client IP address from the request, honoring
// the configured proxy header when present.
func (a *App) ClientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}

	if header := a.Config().Server.ClientIpProxyHeader; header != "" {
		if forwarded := r.Header.Get(header); forwarded != "" {
			// first IP in the list is the originating client
			parts := strings.Split(forwarded, ",")
			ip = strings.TrimSpace(parts[0])
		}
	}
	return ip
}

// Param returns the named path parameter, delegating to the router
// backend.
func (a *App) Param(r *http.Request, key string) string {
	return a.router.Param(r, key)
}
