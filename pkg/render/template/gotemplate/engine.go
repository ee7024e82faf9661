package gotemplate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"reflect"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-bootform/pkg/html"
	"github.com/goliatone/go-bootform/pkg/render/template"
)

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	baseDir    string
	templates  fs.FS
	extension  string
	templateFn map[string]any
	globalData map[string]any
	preHooks   []gotemplatepkg.PreHook
	postHooks  []gotemplatepkg.PostHook
}

// WithBaseDir loads templates from a directory on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from an fs.FS. When combined with WithBaseDir the
// directory is searched first.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithExtension overrides the ".tpl" extension appended to template names.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// WithTemplateFunc registers helpers available to every template. Values of
// type pongo2.FilterFunction become filters; other functions become globals.
func WithTemplateFunc(funcs map[string]any) Option {
	return func(cfg *config) {
		if len(funcs) == 0 {
			return
		}
		if cfg.templateFn == nil {
			cfg.templateFn = make(map[string]any, len(funcs))
		}
		for name, fn := range funcs {
			cfg.templateFn[strings.TrimSpace(name)] = fn
		}
	}
}

// WithGlobalData seeds context values available to every template.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globalData == nil {
			cfg.globalData = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globalData[strings.TrimSpace(key)] = value
		}
	}
}

// WithPreHook registers a hook that runs before a template executes. It may
// replace the data, the template name or the inline template content.
func WithPreHook(hook gotemplatepkg.PreHook) Option {
	return func(cfg *config) {
		if hook != nil {
			cfg.preHooks = append(cfg.preHooks, hook)
		}
	}
}

// WithPostHook registers a hook that receives the rendered output and
// returns the final markup.
func WithPostHook(hook gotemplatepkg.PostHook) Option {
	return func(cfg *config) {
		if hook != nil {
			cfg.postHooks = append(cfg.postHooks, hook)
		}
	}
}

// Engine implements template.TemplateRenderer with a pongo2 template set.
// Compiled templates are cached by path.
type Engine struct {
	mu sync.RWMutex

	templateSet *pongo2.TemplateSet
	templates   map[string]*pongo2.Template
	tplExt      string
	hooks       *gotemplatepkg.HookManager
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New builds an Engine. At least one of WithBaseDir or WithFS is required.
func New(options ...Option) (*Engine, error) {
	cfg := &config{
		extension: ".tpl",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	if cfg.baseDir == "" && cfg.templates == nil {
		return nil, errors.New("gotemplate: need to provide either base dir or fs.FS")
	}

	var loaders []pongo2.TemplateLoader
	if cfg.baseDir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("gotemplate: create local loader: %w", err)
		}
		loaders = append(loaders, loader)
	}
	if cfg.templates != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.templates))
	}

	engine := &Engine{
		templateSet: pongo2.NewSet("bootform", loaders...),
		templates:   make(map[string]*pongo2.Template),
		tplExt:      cfg.extension,
		hooks:       gotemplatepkg.NewHooksManager(),
	}
	for _, hook := range cfg.preHooks {
		engine.hooks.AddPreHook(hook)
	}
	for _, hook := range cfg.postHooks {
		engine.hooks.AddPostHook(hook)
	}
	registerDefaultFilters()

	if err := engine.GlobalContext(cfg.globalData); err != nil {
		return nil, fmt.Errorf("gotemplate: apply global data: %w", err)
	}
	for name, fn := range cfg.templateFn {
		if err := engine.registerTemplateFunc(name, fn); err != nil {
			return nil, fmt.Errorf("gotemplate: register template func %q: %w", name, err)
		}
	}

	return engine, nil
}

// Render treats name as inline template content when it contains template
// tags, and as a template path otherwise.
func (e *Engine) Render(name string, data any, out ...io.Writer) (string, error) {
	if isTemplateContent(name) {
		return e.RenderString(name, data, out...)
	}
	return e.RenderTemplate(name, data, out...)
}

// RenderTemplate renders the named template, appending the configured
// extension when missing.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.templateSet == nil {
		return "", errors.New("gotemplate: engine is nil")
	}
	hctx := &gotemplatepkg.HookContext{
		TemplateName: name,
		Data:         data,
		Metadata:     map[string]any{"ext": e.tplExt},
	}
	if err := e.runPreHooks(hctx); err != nil {
		return "", err
	}

	templatePath := hctx.TemplateName
	if !strings.HasSuffix(templatePath, e.tplExt) {
		templatePath += e.tplExt
	}

	tmpl, err := e.getTemplate(templatePath)
	if err != nil {
		return "", err
	}
	rendered, err := e.execute(tmpl, hctx.Data)
	if err != nil {
		return "", fmt.Errorf("gotemplate: execute template %q: %w", templatePath, err)
	}
	if rendered, err = e.runPostHooks(hctx, rendered); err != nil {
		return "", err
	}
	return rendered, writeAll(rendered, out)
}

// RenderString compiles and renders inline template content.
func (e *Engine) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.templateSet == nil {
		return "", errors.New("gotemplate: engine is nil")
	}

	hctx := &gotemplatepkg.HookContext{
		Template: templateContent,
		Data:     data,
		Metadata: map[string]any{},
	}
	if err := e.runPreHooks(hctx); err != nil {
		return "", err
	}

	tmpl, err := e.templateSet.FromString(hctx.Template)
	if err != nil {
		return "", fmt.Errorf("gotemplate: parse template string: %w", err)
	}
	rendered, err := e.execute(tmpl, hctx.Data)
	if err != nil {
		return "", fmt.Errorf("gotemplate: execute template string: %w", err)
	}
	if rendered, err = e.runPostHooks(hctx, rendered); err != nil {
		return "", err
	}
	return rendered, writeAll(rendered, out)
}

// RegisterPreHook adds a hook run before every render.
func (e *Engine) RegisterPreHook(hook gotemplatepkg.PreHook) {
	if hook != nil {
		e.hooks.AddPreHook(hook)
	}
}

// RegisterPostHook adds a hook run after every render.
func (e *Engine) RegisterPostHook(hook gotemplatepkg.PostHook) {
	if hook != nil {
		e.hooks.AddPostHook(hook)
	}
}

func (e *Engine) runPreHooks(hctx *gotemplatepkg.HookContext) error {
	hctx.IsPreHook = true
	for _, hook := range e.hooks.PreHooks() {
		if err := hook(hctx); err != nil {
			return fmt.Errorf("gotemplate: pre hook: %w", err)
		}
	}
	hctx.IsPreHook = false
	return nil
}

func (e *Engine) runPostHooks(hctx *gotemplatepkg.HookContext, rendered string) (string, error) {
	for _, hook := range e.hooks.PostHooks() {
		hctx.Output = rendered
		out, err := hook(hctx)
		if err != nil {
			return "", fmt.Errorf("gotemplate: post hook: %w", err)
		}
		rendered = out
	}
	return rendered, nil
}

// RegisterFilter registers a filter. pongo2 filters are process wide, so a
// name can only be registered once.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	if strings.TrimSpace(name) == "" || fn == nil {
		return errors.New("gotemplate: filter name and function required")
	}

	filter := func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var paramVal any
		if param != nil {
			paramVal = param.Interface()
		}
		result, err := fn(in.Interface(), paramVal)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(result), nil
	}

	if pongo2.FilterExists(name) {
		return fmt.Errorf("gotemplate: filter %q already exists", name)
	}
	return pongo2.RegisterFilter(name, filter)
}

// GlobalContext merges data into the context shared by every template.
func (e *Engine) GlobalContext(data any) error {
	if e == nil || e.templateSet == nil {
		return errors.New("gotemplate: engine is nil")
	}
	if data == nil {
		return nil
	}

	globalCtx, err := convertToContext(data)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.templateSet.Globals == nil {
		e.templateSet.Globals = make(pongo2.Context)
	}
	e.templateSet.Globals.Update(globalCtx)
	return nil
}

func (e *Engine) execute(tmpl *pongo2.Template, data any) (string, error) {
	viewContext, err := convertToContext(data)
	if err != nil {
		return "", fmt.Errorf("convert data: %w", err)
	}

	var buf bytes.Buffer
	e.mu.RLock()
	err = tmpl.ExecuteWriter(viewContext, &buf)
	e.mu.RUnlock()
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeAll(rendered string, out []io.Writer) error {
	for _, w := range out {
		if w == nil {
			continue
		}
		if _, err := io.WriteString(w, rendered); err != nil {
			return fmt.Errorf("gotemplate: write output: %w", err)
		}
	}
	return nil
}

func (e *Engine) registerTemplateFunc(name string, fn any) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || fn == nil {
		return nil
	}

	if filter, ok := fn.(pongo2.FilterFunction); ok {
		if pongo2.FilterExists(trimmed) {
			return nil
		}
		return pongo2.RegisterFilter(trimmed, filter)
	}
	if !isCallable(fn) {
		return fmt.Errorf("value of type %T is not a function", fn)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.templateSet.Globals == nil {
		e.templateSet.Globals = make(pongo2.Context)
	}
	e.templateSet.Globals[trimmed] = fn
	return nil
}

func (e *Engine) getTemplate(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.templates[path]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.templates[path]; ok {
		return tmpl, nil
	}

	tmpl, err := e.templateSet.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: load template %q: %w", path, err)
	}

	e.templates[path] = tmpl
	return tmpl, nil
}

func isTemplateContent(s string) bool {
	return strings.Contains(s, "{{") || strings.Contains(s, "{%")
}

func isCallable(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.IsValid() && rv.Kind() == reflect.Func
}

// convertToContext accepts maps directly. Other values are flattened through
// their JSON form so templates address fields by their JSON names.
func convertToContext(data any) (pongo2.Context, error) {
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		return convertMap(map[string]any(v)), nil
	case map[string]any:
		return convertMap(v), nil
	default:
		m, err := jsonToMap(v)
		if err != nil {
			return nil, err
		}
		return convertMap(m), nil
	}
}

// convertMap copies nested maps so template globals cannot be mutated
// through caller data. Leaf values, including functions and markup, pass
// through unchanged.
func convertMap(in map[string]any) pongo2.Context {
	out := make(pongo2.Context, len(in))
	for key, value := range in {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		out[key] = convertValue(value)
	}
	return out
}

func convertValue(value any) any {
	switch v := value.(type) {
	case pongo2.Context:
		return map[string]any(convertMap(map[string]any(v)))
	case map[string]any:
		return map[string]any(convertMap(v))
	case []any:
		out := make([]any, 0, len(v))
		for _, item := range v {
			out = append(out, convertValue(item))
		}
		return out
	default:
		return value
	}
}

func jsonToMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func registerDefaultFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
	if !pongo2.FilterExists("merge_classes") {
		_ = pongo2.RegisterFilter("merge_classes", filterMergeClasses)
	}
	if !pongo2.FilterExists("attrs") {
		_ = pongo2.RegisterFilter("attrs", filterAttrs)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterMergeClasses appends the parameter classes to the input list without
// duplicates: {{ "btn btn-primary"|merge_classes:"btn w-100" }}.
func filterMergeClasses(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	extra := ""
	if param != nil && !param.IsNil() {
		extra = param.String()
	}
	return pongo2.AsValue(html.MergeClasses(in.String(), extra)), nil
}

// filterAttrs renders a map as sorted, escaped HTML attributes with a
// leading space. Empty values are skipped.
func filterAttrs(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	attrs := html.Attrs{}
	switch values := in.Interface().(type) {
	case map[string]string:
		for key, value := range values {
			if value != "" {
				attrs.Set(key, value)
			}
		}
	case map[string]any:
		for key, value := range values {
			if value == nil {
				continue
			}
			if text := fmt.Sprint(value); text != "" {
				attrs.Set(key, text)
			}
		}
	case nil:
	default:
		return nil, &pongo2.Error{
			Sender:    "filter:attrs",
			OrigError: fmt.Errorf("expected a map, got %T", values),
		}
	}
	return pongo2.AsSafeValue(attrs.String()), nil
}
