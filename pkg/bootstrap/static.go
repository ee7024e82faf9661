package bootstrap

import (
	"fmt"
	"html/template"

	"github.com/goliatone/go-bootform/pkg/html"
)

// StaticControl renders field as a read-only plaintext input inside the
// layout wrapper. An empty field renders the placeholder id and name, and
// needs a label option to show a label.
func (b *Builder) StaticControl(field string, opts Options) (template.HTML, error) {
	node, err := b.StaticControlNode(field, opts)
	if err != nil {
		return "", err
	}
	return node.HTML(), nil
}

// StaticControlNode is StaticControl returning the markup tree.
func (b *Builder) StaticControlNode(field string, opts Options) (*html.Node, error) {
	opts = opts.Clone()
	ctx := b.newFieldContext(field, opts)
	label := b.label(ctx, opts)

	value, explicit := opts.take(OptValue)
	if !explicit {
		modelValue, err := b.subject.Value(field)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: static control: %w", err)
		}
		value = modelValue
	}

	controlClass := opts.takeString(OptControlClass)
	baseClass := b.classes.Plaintext
	if opts.Has(OptClass) {
		baseClass = opts.takeString(OptClass)
	}
	opts.take(OptExtraClass)
	opts.take(OptRenderAsButton)

	attrs := html.Attrs{
		"readonly": "readonly",
		"type":     "text",
	}
	if ctx.id != "" {
		attrs.Set("id", ctx.id)
	}
	if name := FieldName(b.subject.ObjectName(), field); name != "" {
		attrs.Set("name", name)
	}
	invalid := ""
	if len(ctx.errors) > 0 {
		invalid = b.classes.Invalid
	}
	attrs.AddClass(controlClass, baseClass, invalid)
	if text, ok := stringify(value); ok {
		attrs.Set("value", text)
	}
	if ctx.required {
		attrs.Set("aria-required", "true")
		attrs.Set("required", "required")
	}
	passThrough(attrs, opts)

	return b.formGroup(ctx, label, html.VoidElement("input", attrs), ""), nil
}

// CustomControl renders the block output inside the layout wrapper in place
// of an input. The block content is not wrapped in any element of its own,
// so attribute options have nowhere to go and are dropped.
func (b *Builder) CustomControl(field string, opts Options, block Block) (template.HTML, error) {
	node, err := b.CustomControlNode(field, opts, block)
	if err != nil {
		return "", err
	}
	return node.HTML(), nil
}

// CustomControlNode is CustomControl returning the markup tree.
func (b *Builder) CustomControlNode(field string, opts Options, block Block) (*html.Node, error) {
	opts = opts.Clone()
	ctx := b.newFieldContext(field, opts)
	label := b.label(ctx, opts)
	if field != "" {
		if _, err := b.subject.Value(field); err != nil {
			return nil, fmt.Errorf("bootstrap: custom control: %w", err)
		}
	}
	return b.formGroup(ctx, label, b.render(block), "d-block"), nil
}

// passThrough copies the remaining options onto attrs. A false or nil
// option removes a default attribute of the same name.
func passThrough(attrs html.Attrs, opts Options) {
	for key, value := range opts {
		if key == "" {
			continue
		}
		text, ok := attributeValue(key, value)
		if !ok {
			delete(attrs, key)
			continue
		}
		attrs.Set(key, text)
	}
}
