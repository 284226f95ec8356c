package openapi

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// SchemaOf derives a schema from the Go type of v. Properties are named by
// their json tags, and a field whose validate tag contains "required" is
// listed as required.
func SchemaOf(v interface{}) (*openapi3.SchemaRef, error) {
	components := openapi3.Schemas{}

	ref, err := openapi3gen.NewSchemaRefForValue(v, components,
		openapi3gen.SchemaCustomizer(requiredFromValidateTags))
	if err != nil {
		return nil, fmt.Errorf("failed to generate schema for %T: %w", v, err)
	}
	if len(components) > 0 {
		return nil, fmt.Errorf("failed to generate schema for %T: recursive types are not supported", v)
	}
	return ref, nil
}

// requiredFromValidateTags marks the properties of struct schemas whose
// fields carry validate:"required".
func requiredFromValidateTags(_ string, t reflect.Type, _ reflect.StructTag, schema *openapi3.Schema) error {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		if _, ok := schema.Properties[name]; !ok {
			continue
		}

		rules := strings.Split(f.Tag.Get("validate"), ",")
		if slices.Contains(rules, "required") && !slices.Contains(schema.Required, name) {
			schema.Required = append(schema.Required, name)
		}
	}
	return nil
}
