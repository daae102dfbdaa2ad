package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"net/http"
	"os"

	velo "github.com/velotic/velo"
	"github.com/velotic/velo/core"
	"github.com/velotic/velo/router"
)

func main() {
	cfgPath := flag.String("config", "", "path to TOML config file (empty uses defaults)")
	flag.Parse()

	cacheOpt, err := velo.WithCacheRistretto()
	if err != nil {
		slog.Error("failed to create cache", "error", err)
		os.Exit(1)
	}

	app, srv, err := velo.New(*cfgPath,
		velo.WithRouterServeMux(),
		velo.WithPhusLogger(nil),
		cacheOpt,
	)
	if err != nil {
		os.Exit(1)
	}

	if err := registerRoutes(app); err != nil {
		app.Logger().Error("failed to register routes", "error", err)
		os.Exit(1)
	}

	app.OnStartup(func(ctx context.Context) error {
		app.Logger().Info("demo app starting")
		return nil
	})
	app.OnShutdown(func(ctx context.Context) error {
		app.Logger().Info("demo app shutting down")
		return nil
	})

	if err := srv.Run(); err != nil {
		os.Exit(1)
	}
}

func registerRoutes(app *core.App) error {
	if err := app.Get("/hello/{name}", func(w http.ResponseWriter, r *http.Request) {
		greeting := map[string]string{"hello": app.Param(r, "name")}
		resp := core.NewJsonWithData(http.StatusOK, "ok_greeting", "Greeting", greeting)
		core.WriteJsonWithData(w, *resp)
	}); err != nil {
		return err
	}

	items := router.NewGroup("/items").
		WithTags("items").
		Add(router.NewRoute("/").
			WithMethods(http.MethodGet).
			WithHandlerFunc(listItems).
			WithName("list_items").
			WithSummary("List all items")).
		Add(router.NewRoute("/{id}").
			WithMethods(http.MethodGet).
			WithHandlerFunc(getItem(app)).
			WithName("get_item").
			WithSummary("Fetch one item")).
		Add(router.NewRoute("/").
			WithMethods(http.MethodPost).
			WithHandlerFunc(createItem(app)).
			WithName("create_item").
			WithSummary("Create an item"))

	if err := app.IncludeRouter(items, "/api/v1"); err != nil {
		return err
	}

	// admin surface requires a valid bearer token
	admin := router.NewChain(http.HandlerFunc(adminStatus)).
		WithMiddleware(app.RequireAuth).
		Handler()
	return app.AddRoute(router.NewRoute("/admin/status").
		WithHandler(admin).
		WithName("admin_status").
		WithTags("admin"))
}

func listItems(w http.ResponseWriter, r *http.Request) {
	items := []map[string]string{
		{"id": "1", "name": "first"},
		{"id": "2", "name": "second"},
	}
	resp := core.NewJsonWithData(http.StatusOK, "ok_items_list", "List of items", items)
	core.WriteJsonWithData(w, *resp)
}

func getItem(app *core.App) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		item := map[string]string{"id": app.Param(r, "id")}
		resp := core.NewJsonWithData(http.StatusOK, "ok_item", "Item", item)
		core.WriteJsonWithData(w, *resp)
	}
}

func createItem(app *core.App) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if err, resp := app.Validator().ContentType(r, "application/json"); err != nil {
			core.WriteJsonResponse(w, resp)
			return
		}

		var item struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			app.HandleError(w, r, err)
			return
		}

		resp := core.NewJsonWithData(http.StatusCreated, "ok_item_created", "Item created", item)
		core.WriteJsonWithData(w, *resp)
	}
}

func adminStatus(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{"claims": core.Claims(r)}
	resp := core.NewJsonWithData(http.StatusOK, "ok_admin_status", "Admin status", status)
	core.WriteJsonWithData(w, *resp)
}
