package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	velo "github.com/velotic/velo"
	"github.com/velotic/velo/core"
)

func newDemoApp(t *testing.T) *core.App {
	t.Helper()
	app, _, err := velo.New("",
		velo.WithRouterServeMux(),
		core.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := registerRoutes(app); err != nil {
		t.Fatalf("failed to register demo routes: %v", err)
	}
	return app
}

func TestCreateItem(t *testing.T) {
	app := newDemoApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/items/", strings.NewReader(`{"name":"widget"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	app.Router().ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var body struct {
		Code string `json:"code"`
		Data struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body.Data.Name != "widget" {
		t.Errorf("expected created item echoed back, got %+v", body)
	}
}

func TestCreateItemRejectsWrongContentType(t *testing.T) {
	app := newDemoApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/items/", strings.NewReader("name=widget"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	app.Router().ServeHTTP(rr, req)

	if rr.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415, got %d", rr.Code)
	}
	var body struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body.Code != core.CodeErrorInvalidContentType {
		t.Errorf("expected code %s, got %s", core.CodeErrorInvalidContentType, body.Code)
	}
}

func TestListItems(t *testing.T) {
	app := newDemoApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items/", nil)
	rr := httptest.NewRecorder()
	app.Router().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}
