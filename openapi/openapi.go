// Package openapi generates an OpenAPI 3.1 document from the
// application's route table. Only the surface derivable from route
// metadata is emitted: paths, operations, path parameters and tags.
package openapi

// Version is the OpenAPI specification version of generated documents.
const Version = "3.1.0"

type Info struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
}

type Schema struct {
	Type string `json:"type"`
}

type Parameter struct {
	Name     string `json:"name"`
	In       string `json:"in"`
	Required bool   `json:"required"`
	Schema   Schema `json:"schema"`
}

type Response struct {
	Description string `json:"description"`
}

type Operation struct {
	OperationID string              `json:"operationId,omitempty"`
	Summary     string              `json:"summary,omitempty"`
	Description string              `json:"description,omitempty"`
	Tags        []string            `json:"tags,omitempty"`
	Deprecated  bool                `json:"deprecated,omitempty"`
	Parameters  []Parameter         `json:"parameters,omitempty"`
	Responses   map[string]Response `json:"responses"`
}

// PathItem maps lowercased HTTP methods to operations.
type PathItem map[string]*Operation

type Tag struct {
	Name string `json:"name"`
}

type Document struct {
	OpenAPI string              `json:"openapi"`
	Info    Info                `json:"info"`
	Paths   map[string]PathItem `json:"paths"`
	Tags    []Tag               `json:"tags,omitempty"`
}
