package prerouter

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/velotic/velo/config"
	"github.com/velotic/velo/core"
)

func TestBlockIpDeactivatedPassesThrough(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.BlockIp.Activated = false
	app := newTestApp(t, cfg, nil)

	app.BlockList().Add("192.0.2.100")

	called := false
	handler := NewBlockIp(app).Execute(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "192.0.2.100:12345"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if !called {
		t.Error("next handler was not called with the middleware deactivated")
	}
}

func TestBlockIpRejectsBlockedIP(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.BlockIp.Activated = true
	app := newTestApp(t, cfg, nil)

	blockedIP := "192.0.2.100"
	app.BlockList().Add(blockedIP)

	handler := NewBlockIp(app).Execute(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler was called for a blocked IP")
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = blockedIP + ":12345"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusTooManyRequests {
		t.Errorf("expected status %d, got %d", http.StatusTooManyRequests, rr.Code)
	}
	var body struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("rejection is not JSON: %v", err)
	}
	if body.Code != core.CodeErrorTooManyRequests {
		t.Errorf("expected code %s, got %s", core.CodeErrorTooManyRequests, body.Code)
	}
}

func TestBlockIpAllowsUnblockedIP(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.BlockIp.Activated = true
	app := newTestApp(t, cfg, nil)

	called := false
	handler := NewBlockIp(app).Execute(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "198.51.100.7:4711"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if !called {
		t.Error("next handler was not called for an unblocked IP")
	}
	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
}

// A single client dominating a full window beyond the sketch threshold
// ends up on the blocklist and gets rejected afterwards.
func TestBlockIpBlocksFloodingClient(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.BlockIp.Activated = true
	cfg.BlockIp.K = 2
	cfg.BlockIp.WindowSize = 2
	cfg.BlockIp.TickSize = 5
	app := newTestApp(t, cfg, nil)

	handler := NewBlockIp(app).Execute(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	floodIP := "203.0.113.9"
	// window capacity is WindowSize*TickSize = 10 observations; one
	// client sending all of them is far past the 80% threshold.
	blocked := false
	for i := 0; i < 30; i++ {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = floodIP + ":9999"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code == http.StatusTooManyRequests {
			blocked = true
			break
		}
	}

	if !blocked {
		t.Error("flooding client was never rejected")
	}
	if !app.BlockList().Contains(floodIP) {
		t.Error("flooding client was not added to the blocklist")
	}
}
