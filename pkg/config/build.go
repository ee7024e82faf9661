package config

import (
	"fmt"
	"html/template"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-bootform/pkg/bootstrap"
	"github.com/goliatone/go-bootform/pkg/i18n"
	"github.com/goliatone/go-bootform/pkg/model"
)

// Subject builds the map-backed subject described by the definition.
// Fields without a value render empty.
func (d Definition) Subject() *model.MapSubject {
	return model.NewMapSubject(d.Object, d.Values, d.modelOptions(nil)...)
}

// SchemaSubject builds a strict subject from an OpenAPI object schema. The
// definition's values, labels, required list and errors are layered on top
// of what the schema declares.
func (d Definition) SchemaSubject(schema *openapi3.Schema) (*model.MapSubject, error) {
	var properties []string
	if schema != nil {
		for name := range schema.Properties {
			properties = append(properties, name)
		}
	}
	subject, err := model.FromOpenAPI(d.Object, schema, d.Values, d.modelOptions(properties)...)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", d.Source, err)
	}
	return subject, nil
}

// SchemaLocation returns the schema document location. Relative paths are
// resolved against the directory of the definition file.
func (d Definition) SchemaLocation() string {
	if d.Schema == nil {
		return ""
	}
	location := strings.TrimSpace(d.Schema.Document)
	if location == "" || strings.Contains(location, "://") || path.IsAbs(location) || filepath.IsAbs(location) {
		return location
	}
	if d.Source == "" {
		return location
	}
	return path.Join(path.Dir(filepath.ToSlash(d.Source)), location)
}

// ErrorMapping resolves the keys of the errors payload against the
// attributes the definition knows about.
func (d Definition) ErrorMapping(extra ...string) model.ErrorMapping {
	return model.MapErrors(d.Object, append(d.attributes(), extra...), d.Errors)
}

// FormErrors returns the messages that do not belong to an attribute.
func (d Definition) FormErrors() []string {
	return d.ErrorMapping().Form
}

func (d Definition) attributes() []string {
	names := d.Fields()
	names = append(names, d.Required...)
	for name := range d.Values {
		names = append(names, name)
	}
	for name := range d.Labels {
		names = append(names, name)
	}
	return names
}

func (d Definition) modelOptions(extra []string) []model.Option {
	opts := []model.Option{
		model.WithRequired(d.Required...),
		model.WithLabels(d.Labels),
		model.WithErrors(d.ErrorMapping(extra...).Fields),
	}
	if d.HumanName != "" {
		opts = append(opts, model.WithHumanName(d.HumanName))
	}
	if d.Action != "" {
		opts = append(opts, model.WithAction(model.Action(d.Action)))
	}
	return opts
}

// BuilderOptions converts the configuration into builder options. The
// definition layout, when set, wins over the configured one.
func (c Config) BuilderOptions(def Definition) []bootstrap.Option {
	layout := c.Layout
	if def.Layout != "" {
		layout = def.Layout
	}
	opts := []bootstrap.Option{
		bootstrap.WithLayout(bootstrap.ParseLayout(layout)),
		bootstrap.WithLabelCol(c.LabelCol),
		bootstrap.WithControlCol(c.ControlCol),
		bootstrap.WithLocale(c.Locale),
	}
	if len(c.Classes) > 0 {
		opts = append(opts, bootstrap.WithClassTokens(c.Classes))
	}
	if c.Sanitize {
		opts = append(opts, bootstrap.WithContentPolicy(bootstrap.DefaultContentPolicy()))
	}
	return opts
}

// LoadTranslations builds a catalog from the *.po files of the configured
// translations directory. It returns nil when no directory is configured.
func (c Config) LoadTranslations() (*i18n.Catalog, error) {
	if c.Translations == "" {
		return nil, nil
	}
	catalog := i18n.NewCatalog(i18n.WithDefaultLocale(c.DefaultLocale))
	if err := catalog.LoadFS(os.DirFS(c.Translations), "*.po"); err != nil {
		return nil, fmt.Errorf("config: load translations from %s: %w", c.Translations, err)
	}
	return catalog, nil
}

// BuilderOptions returns the per-call options of the control, including
// its label.
func (c Control) BuilderOptions() bootstrap.Options {
	opts := make(bootstrap.Options, len(c.Options)+1)
	for key, value := range c.Options {
		opts[key] = value
	}
	if c.Label != "" && (c.Kind == KindStatic || c.Kind == KindCustom) {
		opts[bootstrap.OptLabel] = c.text(c.Label)
	}
	return opts
}

// LabelValue returns the button label, trusted when HTML is set.
func (c Control) LabelValue() any {
	if c.Label == "" {
		return nil
	}
	return c.text(c.Label)
}

// Block returns the content block of the control, or nil without content.
func (c Control) Block() bootstrap.Block {
	if c.Content == "" {
		return nil
	}
	content := c.text(c.Content)
	return func() any { return content }
}

func (c Control) text(value string) any {
	if c.HTML {
		return template.HTML(value)
	}
	return value
}
