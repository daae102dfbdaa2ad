package core

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/velotic/velo/router"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestAddRouteDefaultsToGet(t *testing.T) {
	app := newTestApp(t)

	rt := router.NewRoute("/items").WithHandlerFunc(okHandler)
	if err := app.AddRoute(rt); err != nil {
		t.Fatalf("AddRoute failed: %v", err)
	}

	if len(rt.Methods) != 1 || rt.Methods[0] != http.MethodGet {
		t.Errorf("expected methods [GET], got %v", rt.Methods)
	}

	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected registered handler to answer, got %d", rec.Code)
	}
}

func TestAddRouteNormalizesMethods(t *testing.T) {
	app := newTestApp(t)

	rt := router.NewRoute("/items").
		WithMethods("get", "POST", "get").
		WithHandlerFunc(okHandler)
	if err := app.AddRoute(rt); err != nil {
		t.Fatalf("AddRoute failed: %v", err)
	}

	if len(rt.Methods) != 2 || rt.Methods[0] != "GET" || rt.Methods[1] != "POST" {
		t.Errorf("expected methods [GET POST], got %v", rt.Methods)
	}
}

func TestAddRouteRejectsNilAndInvalid(t *testing.T) {
	app := newTestApp(t)

	if err := app.AddRoute(nil); !errors.Is(err, ErrNilRoute) {
		t.Errorf("expected ErrNilRoute, got %v", err)
	}
	if err := app.AddRoute(router.NewRoute("/nohandler")); !errors.Is(err, router.ErrRouteNoHandler) {
		t.Errorf("expected ErrRouteNoHandler, got %v", err)
	}
	if err := app.AddRoute(router.NewRoute("relative").WithHandlerFunc(okHandler)); !errors.Is(err, router.ErrRoutePathFormat) {
		t.Errorf("expected ErrRoutePathFormat, got %v", err)
	}
}

func TestAddRouteRejectsDuplicates(t *testing.T) {
	app := newTestApp(t)

	if err := app.Get("/items", okHandler); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	err := app.Get("/items", okHandler)
	if !errors.Is(err, ErrDuplicateRoute) {
		t.Errorf("expected ErrDuplicateRoute, got %v", err)
	}

	// same path, different method is fine
	if err := app.Post("/items", okHandler); err != nil {
		t.Errorf("POST on same path must register, got %v", err)
	}
}

func TestVerbHelpers(t *testing.T) {
	app := newTestApp(t)

	helpers := map[string]func(string, func(http.ResponseWriter, *http.Request)) error{
		http.MethodGet:     app.Get,
		http.MethodPost:    app.Post,
		http.MethodPut:     app.Put,
		http.MethodPatch:   app.Patch,
		http.MethodDelete:  app.Delete,
		http.MethodHead:    app.Head,
		http.MethodOptions: app.Options,
	}

	for method, helper := range helpers {
		if err := helper("/verb", okHandler); err != nil {
			t.Fatalf("%s registration failed: %v", method, err)
		}
	}

	routes := app.Routes()
	if len(routes) != len(helpers) {
		t.Fatalf("expected %d routes, got %d", len(helpers), len(routes))
	}
	for _, rt := range routes {
		if len(rt.Methods) != 1 {
			t.Errorf("expected single method per helper route, got %v", rt.Methods)
		}
	}
}

func TestIncludeRouter(t *testing.T) {
	app := newTestApp(t)

	group := router.NewGroup("/items").
		WithTags("items").
		Get("/list", okHandler)

	if err := app.IncludeRouter(group, "/api/v1"); err != nil {
		t.Fatalf("IncludeRouter failed: %v", err)
	}

	routes := app.Routes()
	if len(routes) != 1 {
		t.Fatalf("expected 1 route, got %d", len(routes))
	}
	if routes[0].Path != "/api/v1/items/list" {
		t.Errorf("expected path /api/v1/items/list, got %s", routes[0].Path)
	}
	if len(routes[0].Tags) != 1 || routes[0].Tags[0] != "items" {
		t.Errorf("expected group tags, got %v", routes[0].Tags)
	}

	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/items/list", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected mounted route to dispatch, got %d", rec.Code)
	}
}

func TestIncludeRouterPrefixValidation(t *testing.T) {
	app := newTestApp(t)
	group := router.NewGroup("").Get("/x", okHandler)

	for _, prefix := range []string{"api", "/api/"} {
		if err := app.IncludeRouter(group, prefix); !errors.Is(err, ErrBadRouterPrefix) {
			t.Errorf("prefix %q: expected ErrBadRouterPrefix, got %v", prefix, err)
		}
	}

	if err := app.IncludeRouter(group, ""); err != nil {
		t.Errorf("empty prefix must be allowed, got %v", err)
	}
}

func TestRoutesReturnsSnapshot(t *testing.T) {
	app := newTestApp(t)
	if err := app.Get("/a", okHandler); err != nil {
		t.Fatal(err)
	}

	snapshot := app.Routes()
	if err := app.Get("/b", okHandler); err != nil {
		t.Fatal(err)
	}

	if len(snapshot) != 1 {
		t.Errorf("snapshot must not grow with later registrations, got %d", len(snapshot))
	}
	if len(app.Routes()) != 2 {
		t.Errorf("expected 2 routes after second registration")
	}
}
