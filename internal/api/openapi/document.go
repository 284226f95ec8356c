// Package openapi builds the OpenAPI 3.0 document the API publishes about
// itself, and renders it as JSON or YAML.
//
// The document is assembled from the same route table the router mounts, so
// it cannot drift from the handlers that are actually served.
package openapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"
)

// Version is the OpenAPI specification version the document declares.
const Version = "3.0.0"

// defaultResponse is declared for operations that list no responses.
const defaultResponse = "Unexpected error"

// Operation is the documentation declared alongside a route.
type Operation struct {
	Tags        []string
	Summary     string
	OperationID string

	// Body is a value of the JSON request body type, or nil for operations
	// without a body.
	Body interface{}

	// Responses maps status codes to their descriptions.
	Responses map[string]string
}

// Document wraps the OpenAPI root object.
type Document struct {
	*openapi3.T
}

// New creates an empty document.
func New(title, version string) *Document {
	return &Document{T: &openapi3.T{
		OpenAPI: Version,
		Info:    &openapi3.Info{Title: title, Version: version},
		Paths:   openapi3.NewPaths(),
	}}
}

var pathParamPattern = regexp.MustCompile(`\{([^}/:]+)(?::[^}]*)?\}`)

// AddOperation registers op under method and path. Path parameters written in
// the router's {name} form are declared as required strings, and tags are
// collected into the document's tag list.
func (d *Document) AddOperation(method, path string, op Operation) error {
	method = strings.ToUpper(method)
	path = pathParamPattern.ReplaceAllString(path, "{$1}")

	switch method {
	case http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete:
	default:
		return fmt.Errorf("%s %s: unsupported method", method, path)
	}

	if item := d.Paths.Value(path); item != nil && item.GetOperation(method) != nil {
		return fmt.Errorf("%s %s: operation already registered", method, path)
	}

	operation, err := buildOperation(path, op)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	d.T.AddOperation(path, method, operation)

	for _, tag := range op.Tags {
		d.addTag(tag)
	}
	return nil
}

func buildOperation(path string, op Operation) (*openapi3.Operation, error) {
	operation := openapi3.NewOperation()
	operation.Tags = op.Tags
	operation.Summary = op.Summary
	operation.OperationID = op.OperationID

	for _, m := range pathParamPattern.FindAllStringSubmatch(path, -1) {
		operation.AddParameter(openapi3.NewPathParameter(m[1]).WithSchema(openapi3.NewStringSchema()))
	}

	if op.Body != nil {
		schema, err := SchemaOf(op.Body)
		if err != nil {
			return nil, err
		}
		operation.RequestBody = &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchemaRef(schema),
		}
	}

	responses := op.Responses
	if len(responses) == 0 {
		responses = map[string]string{"default": defaultResponse}
	}
	operation.Responses = openapi3.NewResponsesWithCapacity(len(responses))
	for code, description := range responses {
		operation.Responses.Set(code, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().WithDescription(description),
		})
	}

	return operation, nil
}

func (d *Document) addTag(name string) {
	if d.Tags.Get(name) != nil {
		return
	}
	d.Tags = append(d.Tags, &openapi3.Tag{Name: name})
	sort.Slice(d.Tags, func(i, j int) bool { return d.Tags[i].Name < d.Tags[j].Name })
}

// JSON renders the document as indented JSON.
func (d *Document) JSON() ([]byte, error) {
	return json.MarshalIndent(d.T, "", "  ")
}

// YAML renders the document as YAML.
func (d *Document) YAML() ([]byte, error) {
	return yaml.Marshal(d.T)
}
