package core

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/velotic/velo/openapi"
)

const openapiCacheTTL = 5 * time.Minute

// OpenAPI generates the OpenAPI document for the current route table.
// The serialized document is cached keyed on the route table revision,
// so mutations are reflected on the next call and stale entries age out
// through the TTL.
func (a *App) OpenAPI() ([]byte, error) {
	rev := a.routeRevision()
	key := fmt.Sprintf("openapi:%d", rev)

	if a.cache != nil {
		if cached, found := a.cache.Get(key); found {
			if body, ok := cached.([]byte); ok {
				return body, nil
			}
		}
	}

	cfg := a.Config()
	doc := openapi.Generate(openapi.Info{
		Title:       cfg.App.Title,
		Version:     cfg.App.Version,
		Description: cfg.App.Description,
	}, a.Routes())

	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshaling openapi document: %w", err)
	}

	if a.cache != nil {
		a.cache.SetWithTTL(key, body, int64(len(body)), openapiCacheTTL)
	}
	return body, nil
}

// OpenAPIHandler serves the generated schema as JSON.
func (a *App) OpenAPIHandler(w http.ResponseWriter, r *http.Request) {
	body, err := a.OpenAPI()
	if err != nil {
		a.logger.Error("openapi generation failed", "err", err)
		writeJsonError(w, errorSchemaGeneration)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	_, _ = w.Write(body)
}
