// Package model describes the objects whose attributes are rendered by the
// form builder.
//
// A Subject answers the questions the builder asks about a field: what the
// object is called, what value an attribute holds, whether validation marks it
// as required and which action a submit button performs. Subjects can be built
// from tagged structs (Reflect), plain maps (NewMapSubject) or OpenAPI object
// schemas (FromOpenAPI).
package model
