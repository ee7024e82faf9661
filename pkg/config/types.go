package config

import "strings"

// Control kinds accepted in a definition.
const (
	KindStatic  = "static"
	KindCustom  = "custom"
	KindSubmit  = "submit"
	KindPrimary = "primary"
	KindButton  = "button"
)

// Config holds builder defaults shared by every rendered form.
type Config struct {
	Layout        string            `json:"layout" yaml:"layout"`
	LabelCol      string            `json:"labelCol" yaml:"labelCol"`
	ControlCol    string            `json:"controlCol" yaml:"controlCol"`
	Locale        string            `json:"locale" yaml:"locale"`
	DefaultLocale string            `json:"defaultLocale" yaml:"defaultLocale"`
	Translations  string            `json:"translations" yaml:"translations"`
	Classes       map[string]string `json:"classes" yaml:"classes"`
	// Sanitize filters trusted content through the default policy.
	Sanitize bool      `json:"sanitize" yaml:"sanitize"`
	Log      LogConfig `json:"log" yaml:"log"`
}

// LogConfig selects the logger level and format.
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// Definition describes one form: the subject it renders and its controls.
type Definition struct {
	Object    string              `json:"object" yaml:"object"`
	HumanName string              `json:"humanName" yaml:"humanName"`
	Action    string              `json:"action" yaml:"action"`
	Layout    string              `json:"layout" yaml:"layout"`
	Values    map[string]any      `json:"values" yaml:"values"`
	Required  []string            `json:"required" yaml:"required"`
	Labels    map[string]string   `json:"labels" yaml:"labels"`
	Errors    map[string][]string `json:"errors" yaml:"errors"`
	Form      FormConfig          `json:"form" yaml:"form"`
	Controls  []Control           `json:"controls" yaml:"controls"`
	// Schema binds the subject to an OpenAPI object schema.
	Schema *SchemaRef `json:"schema,omitempty" yaml:"schema,omitempty"`
	Source string     `json:"-" yaml:"-"`
}

// SchemaRef points at an OpenAPI schema, either a component by name or the
// request body of an operation.
type SchemaRef struct {
	Document  string `json:"document" yaml:"document"`
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	Operation string `json:"operation,omitempty" yaml:"operation,omitempty"`
}

// FormConfig carries the attributes of the wrapping <form> element.
type FormConfig struct {
	Action string `json:"action" yaml:"action"`
	Method string `json:"method" yaml:"method"`
	ID     string `json:"id" yaml:"id"`
	Class  string `json:"class" yaml:"class"`
}

// Control is a single rendered row or button.
type Control struct {
	Kind  string `json:"kind" yaml:"kind"`
	Field string `json:"field,omitempty" yaml:"field,omitempty"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	// Content is the body of custom controls and buttons.
	Content string `json:"content,omitempty" yaml:"content,omitempty"`
	// HTML marks Label and Content as trusted markup.
	HTML    bool           `json:"html,omitempty" yaml:"html,omitempty"`
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
}

// Fields returns the distinct fields referenced by static and custom
// controls, in definition order.
func (d Definition) Fields() []string {
	seen := make(map[string]struct{}, len(d.Controls))
	var out []string
	for _, control := range d.Controls {
		if control.Kind != KindStatic && control.Kind != KindCustom {
			continue
		}
		field := strings.TrimSpace(control.Field)
		if field == "" {
			continue
		}
		if _, ok := seen[field]; ok {
			continue
		}
		seen[field] = struct{}{}
		out = append(out, field)
	}
	return out
}

// MissingValues returns the fields of static controls that have no value in
// the definition.
func (d Definition) MissingValues() []string {
	var out []string
	for _, field := range d.Fields() {
		if _, ok := d.Values[field]; ok {
			continue
		}
		if !d.hasStatic(field) {
			continue
		}
		out = append(out, field)
	}
	return out
}

func (d Definition) hasStatic(field string) bool {
	for _, control := range d.Controls {
		if control.Kind == KindStatic && strings.TrimSpace(control.Field) == field {
			if _, explicit := control.Options["value"]; explicit {
				return false
			}
			return true
		}
	}
	return false
}
