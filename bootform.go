// Package bootform renders Bootstrap 5 form markup from Go values.
//
// The builder lives in pkg/bootstrap; this package wires it together with
// YAML definitions (pkg/config), translations (pkg/i18n) and the pongo2
// layout templates embedded in the module:
//
//	def, _ := config.LoadDefinition(os.DirFS("."), "user.yaml")
//	html, err := bootform.RenderDefinition(ctx, def, bootform.WithConfig(cfg))
package bootform

import (
	"fmt"

	"github.com/goliatone/go-bootform/pkg/bootstrap"
	"github.com/goliatone/go-bootform/pkg/model"
)

// Builder aliases the form builder so simple callers only import the root
// package.
type Builder = bootstrap.Builder

// Options aliases per-call builder options.
type Options = bootstrap.Options

// New returns a builder for subject.
func New(subject model.Subject, opts ...bootstrap.Option) *Builder {
	return bootstrap.New(subject, opts...)
}

// Reflect returns a builder for a struct record. Attribute names, required
// flags and labels come from the form, validate and label struct tags.
func Reflect(record any, opts ...bootstrap.Option) (*Builder, error) {
	subject, err := model.Reflect(record)
	if err != nil {
		return nil, fmt.Errorf("bootform: %w", err)
	}
	return bootstrap.New(subject, opts...), nil
}
