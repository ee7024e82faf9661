package model

import (
	"errors"
	"slices"

	"github.com/getkin/kin-openapi/openapi3"
)

// FromOpenAPI builds a strict MapSubject from an OpenAPI object schema.
//
// Property titles become labels, the schema's required list marks required
// attributes, and properties missing from values fall back to the schema
// default and then the example.
func FromOpenAPI(objectName string, schema *openapi3.Schema, values map[string]any, opts ...Option) (*MapSubject, error) {
	if schema == nil {
		return nil, errors.New("model: openapi schema is nil")
	}
	if schema.Type != nil && !schema.Type.Is(openapi3.TypeObject) {
		return nil, errors.New("model: openapi schema must describe an object")
	}

	merged := make(map[string]any, len(schema.Properties))
	labels := make(map[string]string)
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			merged[name] = nil
			continue
		}
		property := ref.Value
		if property.Title != "" {
			labels[name] = property.Title
		}
		switch {
		case property.Default != nil:
			merged[name] = property.Default
		case property.Example != nil:
			merged[name] = property.Example
		default:
			merged[name] = nil
		}
	}
	for name, value := range values {
		merged[name] = value
	}

	base := []Option{
		WithRequired(schema.Required...),
		WithLabels(labels),
		Strict(true),
	}
	if schema.Title != "" {
		base = append(base, WithHumanName(schema.Title))
	}
	return NewMapSubject(objectName, merged, append(base, opts...)...), nil
}
