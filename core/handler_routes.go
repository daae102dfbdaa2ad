package core

import (
	"net/http"
)

// RouteInfo is the wire shape of one route table entry.
type RouteInfo struct {
	Methods    []string `json:"methods"`
	Path       string   `json:"path"`
	Name       string   `json:"name,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Deprecated bool     `json:"deprecated,omitempty"`
}

// ListRoutesHandler exposes the route table for debugging and service
// discovery.
func (a *App) ListRoutesHandler(w http.ResponseWriter, r *http.Request) {
	routes := a.Routes()
	infos := make([]RouteInfo, 0, len(routes))
	for _, rt := range routes {
		infos = append(infos, RouteInfo{
			Methods:    rt.Methods,
			Path:       rt.Path,
			Name:       rt.Name,
			Summary:    rt.Summary,
			Tags:       rt.Tags,
			Deprecated: rt.Deprecated,
		})
	}

	response := NewJsonWithData(
		http.StatusOK,
		CodeOkRoutesList,
		"List of registered routes",
		infos,
	)
	WriteJsonWithData(w, *response)
}
