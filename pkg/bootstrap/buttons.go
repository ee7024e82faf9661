package bootstrap

import (
	"html/template"
	"strings"

	"github.com/goliatone/go-bootform/pkg/html"
	"github.com/goliatone/go-bootform/pkg/model"
)

var submitDefaults = map[model.Action]string{
	model.ActionCreate: "Create %s",
	model.ActionUpdate: "Update %s",
	model.ActionSubmit: "Save %s",
}

// Submit renders <input type="submit"> with the secondary button classes.
// An empty label uses SubmitLabel.
func (b *Builder) Submit(label string, opts Options) template.HTML {
	return b.SubmitNode(label, opts).HTML()
}

// SubmitNode is Submit returning the markup tree.
func (b *Builder) SubmitNode(label string, opts Options) *html.Node {
	opts = opts.Clone()
	opts.take(OptRenderAsButton)
	class := b.buttonClass(b.classes.Button, opts)
	return b.submitInput(label, class, opts)
}

// Primary renders a primary submit input, or a <button> when the
// render_as_button option is set or block is not nil.
func (b *Builder) Primary(label any, opts Options, block Block) template.HTML {
	return b.PrimaryNode(label, opts, block).HTML()
}

// PrimaryNode is Primary returning the markup tree.
func (b *Builder) PrimaryNode(label any, opts Options, block Block) *html.Node {
	opts = opts.Clone()
	asButton := opts.takeBool(OptRenderAsButton)
	class := b.buttonClass(b.classes.PrimaryButton, opts)
	if asButton || block != nil {
		return b.buttonElement(label, class, opts, block)
	}
	text, _ := stringify(label)
	return b.submitInput(text, class, opts)
}

// Button always renders a <button> element. Its content is the block
// output, else label, else SubmitLabel.
func (b *Builder) Button(label any, opts Options, block Block) template.HTML {
	return b.ButtonNode(label, opts, block).HTML()
}

// ButtonNode is Button returning the markup tree.
func (b *Builder) ButtonNode(label any, opts Options, block Block) *html.Node {
	opts = opts.Clone()
	opts.take(OptRenderAsButton)
	class := b.buttonClass(b.classes.Button, opts)
	return b.buttonElement(label, class, opts, block)
}

// SubmitLabel derives the default button text from the subject action and
// model name ("Create User", "Update User", "Save User"). Translations are
// looked up under helpers.submit.<object>.<action> and helpers.submit.<action>.
func (b *Builder) SubmitLabel() string {
	action := b.subject.Action()
	fallback, ok := submitDefaults[action]
	if !ok {
		action = model.ActionCreate
		fallback = submitDefaults[action]
	}
	keys := []string{"helpers.submit." + string(action)}
	if object := b.subject.ObjectName(); object != "" {
		keys = append([]string{"helpers.submit." + object + "." + string(action)}, keys...)
	}
	return strings.TrimSpace(b.translate(keys, fallback, b.ModelName()))
}

// ModelName returns the display name of the subject, translated under
// models.<object> when a translation exists.
func (b *Builder) ModelName() string {
	object := b.subject.ObjectName()
	human := strings.TrimSpace(b.subject.HumanName())
	if human == "" {
		human = model.Humanize(object)
	}
	if object == "" {
		return human
	}
	return b.translate([]string{"models." + object}, human)
}

// buttonClass returns the explicit class option when given, otherwise the
// default classes followed by extra_class.
func (b *Builder) buttonClass(defaults string, opts Options) string {
	extra := opts.takeString(OptExtraClass)
	if opts.Has(OptClass) {
		return html.MergeClasses(opts.takeString(OptClass))
	}
	return html.MergeClasses(defaults, extra)
}

func (b *Builder) submitInput(label, class string, opts Options) *html.Node {
	if strings.TrimSpace(label) == "" {
		label = b.SubmitLabel()
	}
	attrs := html.Attrs{
		"name":  "commit",
		"type":  "submit",
		"value": label,
	}
	attrs.AddClass(class)
	passThrough(attrs, opts)
	return html.VoidElement("input", attrs)
}

func (b *Builder) buttonElement(label any, class string, opts Options, block Block) *html.Node {
	content := b.render(block)
	if content == nil && !blank(label) {
		content = b.content(label)
	}
	if content == nil {
		content = html.Text(b.SubmitLabel())
	}
	attrs := html.Attrs{
		"name": "button",
		"type": "submit",
	}
	attrs.AddClass(class)
	passThrough(attrs, opts)
	return html.Element("button", attrs, content)
}

func blank(value any) bool {
	text, ok := stringify(value)
	return !ok || strings.TrimSpace(text) == ""
}
