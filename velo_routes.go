package velo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/velotic/velo/config"
	"github.com/velotic/velo/core"
	r "github.com/velotic/velo/router"
)

// route registers the built-in endpoints. Paths come from the
// configuration; an empty path disables the endpoint. Built-ins are
// hidden from the generated schema.
func route(cfg *config.Config, app *core.App, registry *prometheus.Registry) error {
	if p := cfg.Endpoints.Favicon; p != "" {
		err := app.AddRoute(r.NewRoute(p).WithHandlerFunc(core.FaviconHandler).WithName("favicon").Hide())
		if err != nil {
			return err
		}
	}

	if p := cfg.Endpoints.Health; p != "" {
		err := app.AddRoute(r.NewRoute(p).WithHandlerFunc(app.HealthHandler).WithName("health").Hide())
		if err != nil {
			return err
		}
	}

	if p := cfg.Endpoints.Routes; p != "" {
		err := app.AddRoute(r.NewRoute(p).WithHandlerFunc(app.ListRoutesHandler).WithName("list_routes").Hide())
		if err != nil {
			return err
		}
	}

	if p := cfg.Endpoints.OpenAPI; p != "" {
		err := app.AddRoute(r.NewRoute(p).WithHandlerFunc(app.OpenAPIHandler).WithName("openapi_schema").Hide())
		if err != nil {
			return err
		}
	}

	if p := cfg.Endpoints.Metrics; p != "" && cfg.Metrics.Activated {
		h := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
		err := app.AddRoute(r.NewRoute(p).WithHandler(h).WithName("metrics").Hide())
		if err != nil {
			return err
		}
	}

	return nil
}
