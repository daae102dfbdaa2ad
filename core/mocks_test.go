package core

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/velotic/velo/config"
)

// mockRouter records registrations and dispatches on exact
// method+path matches.
type mockRouter struct {
	handled map[string]http.Handler
}

func newMockRouter() *mockRouter {
	return &mockRouter{handled: make(map[string]http.Handler)}
}

func (m *mockRouter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h, ok := m.handled[r.Method+" "+r.URL.Path]; ok {
		h.ServeHTTP(w, r)
		return
	}
	w.WriteHeader(http.StatusNotFound)
}

func (m *mockRouter) Handle(method, path string, handler http.Handler) {
	m.handled[method+" "+path] = handler
}

func (m *mockRouter) Param(req *http.Request, key string) string {
	return req.PathValue(key)
}

// mockCache is a trivial map-backed cache without eviction.
type mockCache struct {
	entries map[string]any
}

func newMockCache() *mockCache {
	return &mockCache{entries: make(map[string]any)}
}

func (c *mockCache) Get(key string) (any, bool) {
	v, ok := c.entries[key]
	return v, ok
}

func (c *mockCache) Set(key string, value any, cost int64) bool {
	c.entries[key] = value
	return true
}

func (c *mockCache) SetWithTTL(key string, value any, cost int64, ttl time.Duration) bool {
	c.entries[key] = value
	return true
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(
		WithRouter(newMockRouter()),
		WithConfigProvider(config.NewProvider(config.NewDefaultConfig())),
		WithLogger(testLogger()),
		WithCache(newMockCache()),
	)
	if err != nil {
		t.Fatalf("failed to create test app: %v", err)
	}
	return app
}
