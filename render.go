package bootform

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-bootform/pkg/bootstrap"
	"github.com/goliatone/go-bootform/pkg/config"
	"github.com/goliatone/go-bootform/pkg/i18n"
	"github.com/goliatone/go-bootform/pkg/logging"
	"github.com/goliatone/go-bootform/pkg/model"
	"github.com/goliatone/go-bootform/pkg/openapi"
	tmpl "github.com/goliatone/go-bootform/pkg/render/template"
	"github.com/goliatone/go-bootform/pkg/render/template/gotemplate"
)

// DefaultBootstrapCSS is linked by the document template.
const DefaultBootstrapCSS = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css"

// Theme partial keys that replace the embedded templates.
const (
	PartialForm     = "bootform.form"
	PartialDocument = "bootform.document"
)

// ErrNoControls is returned when a definition has nothing to render.
var ErrNoControls = errors.New("bootform: definition has no controls")

// RenderOption configures RenderDefinition.
type RenderOption func(*renderConfig)

type renderConfig struct {
	config       config.Config
	translator   i18n.Translator
	logger       *slog.Logger
	engine       tmpl.TemplateRenderer
	templateDir  string
	document     bool
	title        string
	bootstrapCSS string
	theme        *theme.RendererConfig
	schemas      *openapi.Loader
	builderOpts  []bootstrap.Option
}

// WithConfig applies builder defaults loaded from a config file.
func WithConfig(cfg config.Config) RenderOption {
	return func(rc *renderConfig) {
		rc.config = cfg
	}
}

// WithTranslator sets the translator used for labels and button values.
func WithTranslator(t i18n.Translator) RenderOption {
	return func(rc *renderConfig) {
		rc.translator = t
	}
}

// WithLogger sets the logger passed to the builder.
func WithLogger(logger *slog.Logger) RenderOption {
	return func(rc *renderConfig) {
		if logger != nil {
			rc.logger = logger
		}
	}
}

// WithEngine replaces the template engine used for the layouts.
func WithEngine(engine tmpl.TemplateRenderer) RenderOption {
	return func(rc *renderConfig) {
		rc.engine = engine
	}
}

// WithTemplateDir loads layouts from dir before falling back to the
// embedded ones.
func WithTemplateDir(dir string) RenderOption {
	return func(rc *renderConfig) {
		rc.templateDir = strings.TrimSpace(dir)
	}
}

// WithDocument wraps the form in a standalone HTML document.
func WithDocument(title string) RenderOption {
	return func(rc *renderConfig) {
		rc.document = true
		rc.title = title
	}
}

// WithBootstrapCSS overrides the stylesheet linked by the document layout.
func WithBootstrapCSS(href string) RenderOption {
	return func(rc *renderConfig) {
		if href = strings.TrimSpace(href); href != "" {
			rc.bootstrapCSS = href
		}
	}
}

// WithTheme applies a resolved theme: class tokens reach the builder, CSS
// variables reach the document and partials may replace the layouts.
func WithTheme(cfg *theme.RendererConfig) RenderOption {
	return func(rc *renderConfig) {
		rc.theme = cfg
	}
}

// WithSchemaLoader sets the loader used for definitions bound to an OpenAPI
// schema. The default reads documents from disk.
func WithSchemaLoader(loader *openapi.Loader) RenderOption {
	return func(rc *renderConfig) {
		rc.schemas = loader
	}
}

// WithBuilderOptions appends raw builder options, applied last.
func WithBuilderOptions(opts ...bootstrap.Option) RenderOption {
	return func(rc *renderConfig) {
		rc.builderOpts = append(rc.builderOpts, opts...)
	}
}

// RenderDefinition renders every control of def and wraps them in the form
// layout.
func RenderDefinition(ctx context.Context, def config.Definition, opts ...RenderOption) ([]byte, error) {
	rc := renderConfig{
		logger:       logging.Nop(),
		bootstrapCSS: DefaultBootstrapCSS,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&rc)
		}
	}

	if len(def.Controls) == 0 {
		return nil, ErrNoControls
	}
	subject, err := rc.subject(ctx, def)
	if err != nil {
		return nil, err
	}
	builder := rc.builder(subject, def)
	controls, err := RenderControls(ctx, builder, def.Controls)
	if err != nil {
		return nil, err
	}

	engine, err := rc.templateEngine()
	if err != nil {
		return nil, err
	}

	out, err := engine.RenderTemplate(rc.partial(PartialForm, TemplateForm), map[string]any{
		"form":     formAttributes(def.Form),
		"controls": controls,
		"errors":   builder.ErrorSummary(formErrors(def, subject)),
		"object":   def.Object,
	})
	if err != nil {
		return nil, fmt.Errorf("bootform: render form: %w", err)
	}

	if rc.document {
		title := rc.title
		if title == "" {
			title = builder.ModelName()
		}
		out, err = engine.RenderTemplate(rc.partial(PartialDocument, TemplateDocument), map[string]any{
			"content":       out,
			"title":         title,
			"locale":        builder.Locale(),
			"bootstrap_css": rc.bootstrapCSS,
			"stylesheet":    Stylesheet(),
			"theme_style":   rc.themeStyle(),
		})
		if err != nil {
			return nil, fmt.Errorf("bootform: render document: %w", err)
		}
	}

	rc.logger.Debug("form rendered", "object", def.Object, "controls", len(controls), "document", rc.document)
	return []byte(out), nil
}

// RenderControls renders controls in order through b. It stops at the first
// failing control or when ctx is done.
func RenderControls(ctx context.Context, b *bootstrap.Builder, controls []config.Control) ([]template.HTML, error) {
	out := make([]template.HTML, 0, len(controls))
	for idx, control := range controls {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rendered, err := renderControl(b, control)
		if err != nil {
			return nil, fmt.Errorf("bootform: control %d (%s %q): %w", idx, control.Kind, control.Field, err)
		}
		out = append(out, rendered)
	}
	return out, nil
}

func renderControl(b *bootstrap.Builder, control config.Control) (template.HTML, error) {
	opts := control.BuilderOptions()
	switch control.Kind {
	case config.KindStatic:
		return b.StaticControl(control.Field, opts)
	case config.KindCustom:
		return b.CustomControl(control.Field, opts, control.Block())
	case config.KindSubmit:
		return b.Submit(control.Label, opts), nil
	case config.KindPrimary:
		return b.Primary(control.LabelValue(), opts, control.Block()), nil
	case config.KindButton:
		return b.Button(control.LabelValue(), opts, control.Block()), nil
	default:
		return "", fmt.Errorf("unknown control kind %q", control.Kind)
	}
}

// subject returns the definition subject, loading the OpenAPI schema when
// the definition is bound to one.
func (rc renderConfig) subject(ctx context.Context, def config.Definition) (model.Subject, error) {
	if def.Schema == nil {
		return def.Subject(), nil
	}
	loader := rc.schemas
	if loader == nil {
		loader = openapi.NewLoader()
	}
	doc, err := loader.LoadLocation(ctx, def.SchemaLocation())
	if err != nil {
		return nil, fmt.Errorf("bootform: %w", err)
	}

	var schema *openapi3.Schema
	if def.Schema.Operation != "" {
		schema, err = doc.RequestSchema(def.Schema.Operation)
	} else {
		schema, err = doc.Schema(def.Schema.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("bootform: %w", err)
	}
	return def.SchemaSubject(schema)
}

func (rc renderConfig) builder(subject model.Subject, def config.Definition) *bootstrap.Builder {
	opts := rc.config.BuilderOptions(def)
	opts = append(opts,
		bootstrap.WithLogger(rc.logger),
		bootstrap.WithTranslator(rc.translator),
	)
	if rc.theme != nil {
		opts = append(opts, bootstrap.WithTheme(rc.theme))
	}
	opts = append(opts, rc.builderOpts...)
	return bootstrap.New(subject, opts...)
}

func (rc renderConfig) templateEngine() (tmpl.TemplateRenderer, error) {
	if rc.engine != nil {
		return rc.engine, nil
	}
	opts := []gotemplate.Option{gotemplate.WithFS(EmbeddedTemplates())}
	if rc.templateDir != "" {
		opts = append(opts, gotemplate.WithBaseDir(rc.templateDir))
	}
	engine, err := gotemplate.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("bootform: template engine: %w", err)
	}
	return engine, nil
}

func (rc renderConfig) partial(key, fallback string) string {
	if rc.theme == nil {
		return fallback
	}
	if name := strings.TrimSpace(rc.theme.Partials[key]); name != "" {
		return name
	}
	return fallback
}

func (rc renderConfig) themeStyle() string {
	if rc.theme == nil {
		return ""
	}
	return bootstrap.CSSVarsStyle(rc.theme.CSSVars)
}

// formErrors returns the payload messages that match no attribute of subject.
func formErrors(def config.Definition, subject model.Subject) []string {
	var attributes []string
	if lister, ok := subject.(interface{ Attributes() []string }); ok {
		attributes = lister.Attributes()
	}
	return def.ErrorMapping(attributes...).Form
}

func formAttributes(form config.FormConfig) map[string]string {
	method := strings.ToLower(strings.TrimSpace(form.Method))
	if method == "" {
		method = "post"
	}
	return map[string]string{
		"accept-charset": "UTF-8",
		"action":         form.Action,
		"class":          form.Class,
		"id":             form.ID,
		"method":         method,
	}
}
