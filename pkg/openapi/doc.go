// Package openapi loads OpenAPI documents and exposes their object schemas
// as form subjects. Documents come from files, an fs.FS or, when enabled,
// HTTP; schemas are looked up by component name or by the request body of an
// operation.
package openapi
