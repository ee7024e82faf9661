package bootstrap

import (
	"html/template"
	"strings"

	"github.com/goliatone/go-bootform/pkg/html"
	"github.com/goliatone/go-bootform/pkg/model"
)

// fieldContext is the per-call state shared by the label, wrapper and
// control generators.
type fieldContext struct {
	field        string
	id           string
	layout       Layout
	labelCol     string
	controlCol   string
	wrapperClass string
	required     bool
	errors       []string
	help         *html.Node
}

func (b *Builder) newFieldContext(field string, opts Options) fieldContext {
	ctx := fieldContext{
		field:      field,
		id:         FieldID(b.subject.ObjectName(), field),
		layout:     b.layout,
		labelCol:   b.classes.LabelCol,
		controlCol: b.classes.ControlCol,
	}
	if id := opts.takeString(OptID); id != "" {
		ctx.id = id
	}
	if layout := opts.takeString(OptLayout); layout != "" {
		ctx.layout = ParseLayout(layout)
	}
	if col := opts.takeString(OptLabelCol); col != "" {
		ctx.labelCol = col
	}
	if col := opts.takeString(OptControlCol); col != "" {
		ctx.controlCol = col
	}
	ctx.wrapperClass = opts.takeString(OptWrapperClass)
	if help, ok := opts.take(OptHelp); ok {
		if content := b.content(help); content != nil {
			ctx.help = html.Element("small", html.Attrs{"class": b.classes.Help}, content)
		}
	}
	if field != "" {
		ctx.required = b.subject.Required(field)
		ctx.errors = b.fieldErrors(field)
	}
	return ctx
}

// label builds the label element, or nil when no text resolves.
func (b *Builder) label(ctx fieldContext, opts Options) *html.Node {
	text, hasLabel := opts.take(OptLabel)
	skip := opts.takeBool(OptSkipLabel)
	hide := opts.takeBool(OptHideLabel)
	extra := opts.takeString(OptLabelClass)
	if skip {
		return nil
	}

	var content *html.Node
	if hasLabel {
		content = b.labelOverride(text)
		if content == nil && !emptyString(text) {
			return nil
		}
	}
	if content == nil {
		if ctx.field == "" {
			return nil
		}
		content = html.Text(b.LabelText(ctx.field))
	}

	classes := []string{}
	switch ctx.layout {
	case LayoutHorizontal:
		classes = append(classes, b.classes.Label, b.classes.HorizontalLabel, ctx.labelCol)
	case LayoutInline:
		classes = append(classes, b.classes.HiddenLabel)
	default:
		classes = append(classes, b.classes.Label)
	}
	classes = append(classes, extra)
	if hide {
		classes = append(classes, b.classes.HiddenLabel)
	}
	if ctx.required {
		classes = append(classes, b.classes.RequiredLabel)
	}

	attrs := html.Attrs{}
	if ctx.id != "" {
		attrs.Set("for", ctx.id)
	}
	attrs.AddClass(classes...)
	return html.Element("label", attrs, content)
}

// labelOverride converts an explicit label option. A false or nil label
// disables the label; an empty string falls back to the derived text.
func (b *Builder) labelOverride(value any) *html.Node {
	switch typed := value.(type) {
	case nil, bool:
		return nil
	case template.HTML:
		if strings.TrimSpace(string(typed)) == "" {
			return nil
		}
		return b.content(typed)
	default:
		text, ok := stringify(typed)
		if !ok || strings.TrimSpace(text) == "" {
			return nil
		}
		return html.Text(text)
	}
}

func emptyString(value any) bool {
	text, ok := value.(string)
	return ok && strings.TrimSpace(text) == ""
}

// LabelText resolves the display label of field: a literal label carried by
// the subject, then the translations helpers.label.<object>.<field> and
// attributes.<object>.<field>, then the humanised field name.
func (b *Builder) LabelText(field string) string {
	if labeler, ok := b.subject.(model.AttributeLabeler); ok {
		if label, found := labeler.AttributeLabel(field); found {
			return label
		}
	}
	object := b.subject.ObjectName()
	keys := []string{
		"helpers.label." + object + "." + field,
		"attributes." + object + "." + field,
	}
	if object == "" {
		keys = []string{"attributes." + field}
	}
	return b.translate(keys, model.Humanize(field))
}

func (b *Builder) fieldErrors(field string) []string {
	source, ok := b.subject.(model.ErrorSource)
	if !ok {
		return nil
	}
	return model.NormalizeMessages(source.AttributeErrors(field))
}
