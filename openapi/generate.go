package openapi

import (
	"net/http"
	"sort"
	"strings"

	"github.com/velotic/velo/router"
)

// Generate builds the document for the given routes. An empty route
// table yields the minimal document: version, info and empty paths.
func Generate(info Info, routes []*router.Route) *Document {
	doc := &Document{
		OpenAPI: Version,
		Info:    info,
		Paths:   make(map[string]PathItem),
	}

	tagSet := make(map[string]struct{})

	for _, rt := range routes {
		if rt.Hidden {
			continue
		}
		path := NormalizePath(rt.Path)
		item, ok := doc.Paths[path]
		if !ok {
			item = make(PathItem)
			doc.Paths[path] = item
		}

		methods := rt.Methods
		if len(methods) == 0 {
			methods = []string{http.MethodGet}
		}

		for _, method := range methods {
			op := &Operation{
				OperationID: operationID(rt, method),
				Summary:     rt.Summary,
				Description: rt.Description,
				Tags:        rt.Tags,
				Deprecated:  rt.Deprecated,
				Parameters:  pathParameters(path),
				Responses: map[string]Response{
					"200": {Description: "Successful Response"},
				},
			}
			item[strings.ToLower(method)] = op

			for _, tag := range rt.Tags {
				tagSet[tag] = struct{}{}
			}
		}
	}

	if len(tagSet) > 0 {
		names := make([]string, 0, len(tagSet))
		for name := range tagSet {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			doc.Tags = append(doc.Tags, Tag{Name: name})
		}
	}

	return doc
}

// NormalizePath rewrites backend specific parameter syntax into OpenAPI
// template form: "/items/:id" and "/files/*path" become "/items/{id}"
// and "/files/{path}". ServeMux "{id}" segments pass through unchanged.
func NormalizePath(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if len(seg) > 1 && (seg[0] == ':' || seg[0] == '*') {
			segments[i] = "{" + seg[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}

// pathParameters derives the required path parameters from a normalized
// path template.
func pathParameters(path string) []Parameter {
	var params []Parameter
	for _, seg := range strings.Split(path, "/") {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") && len(seg) > 2 {
			name := seg[1 : len(seg)-1]
			// ServeMux catch-all segments are written "{name...}"
			name = strings.TrimSuffix(name, "...")
			params = append(params, Parameter{
				Name:     name,
				In:       "path",
				Required: true,
				Schema:   Schema{Type: "string"},
			})
		}
	}
	return params
}

// operationID returns the route name, or derives a stable id from the
// method and path when the route is unnamed.
func operationID(rt *router.Route, method string) string {
	if rt.Name != "" {
		// Names stay unique across methods sharing a route.
		if len(rt.Methods) > 1 {
			return rt.Name + "_" + strings.ToLower(method)
		}
		return rt.Name
	}

	var b strings.Builder
	b.WriteString(strings.ToLower(method))
	for _, r := range NormalizePath(rt.Path) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			if !strings.HasSuffix(b.String(), "_") {
				b.WriteByte('_')
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
