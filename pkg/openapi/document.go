package openapi

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/getkin/kin-openapi/openapi3"
)

// ErrSchemaNotFound is returned when a schema or operation is not defined.
var ErrSchemaNotFound = errors.New("openapi: schema not found")

var requestMediaTypes = []string{
	"application/x-www-form-urlencoded",
	"multipart/form-data",
	"application/json",
}

// Document is a parsed OpenAPI document and its origin.
type Document struct {
	source Source
	doc    *openapi3.T
}

// NewDocument parses raw. Component-only documents are accepted.
func NewDocument(ctx context.Context, src Source, raw []byte) (*Document, error) {
	if src == nil {
		return nil, errors.New("openapi: source is required")
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi: raw document is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load %s: %w", src.Location(), err)
	}
	return &Document{source: src, doc: doc}, nil
}

// Source returns the origin of the document.
func (d *Document) Source() Source { return d.source }

// Schemas lists the component schema names in sorted order.
func (d *Document) Schemas() []string {
	if d.doc.Components == nil {
		return nil
	}
	names := make([]string, 0, len(d.doc.Components.Schemas))
	for name := range d.doc.Components.Schemas {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Schema returns the component schema called name.
func (d *Document) Schema(name string) (*openapi3.Schema, error) {
	if d.doc.Components != nil {
		if ref := d.doc.Components.Schemas[name]; ref != nil && ref.Value != nil {
			return ref.Value, nil
		}
	}
	return nil, fmt.Errorf("%w: component %q in %s", ErrSchemaNotFound, name, d.source.Location())
}

// RequestSchema returns the request body schema of the operation with
// operationID. Form media types win over JSON.
func (d *Document) RequestSchema(operationID string) (*openapi3.Schema, error) {
	if d.doc.Paths != nil {
		for _, item := range d.doc.Paths.Map() {
			for _, operation := range item.Operations() {
				if operation.OperationID != operationID {
					continue
				}
				if schema := requestBodySchema(operation.RequestBody); schema != nil {
					return schema, nil
				}
			}
		}
	}
	return nil, fmt.Errorf("%w: operation %q in %s", ErrSchemaNotFound, operationID, d.source.Location())
}

func requestBodySchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range requestMediaTypes {
		if mt := content.Get(mediaType); mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}
