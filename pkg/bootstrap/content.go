package bootstrap

import (
	"html/template"

	"github.com/goliatone/go-bootform/pkg/html"
)

// Block produces caller supplied content for custom controls and buttons.
// template.HTML and *html.Node results are trusted; any other value is
// escaped.
type Block func() any

func (b *Builder) render(block Block) *html.Node {
	if block == nil {
		return nil
	}
	return b.content(block())
}

func (b *Builder) content(value any) *html.Node {
	switch typed := value.(type) {
	case nil:
		return nil
	case *html.Node:
		return typed
	case template.HTML:
		if b.policy != nil {
			return html.Raw(template.HTML(b.policy.Sanitize(string(typed))))
		}
		return html.Raw(typed)
	default:
		text, ok := stringify(typed)
		if !ok {
			return nil
		}
		return html.Text(text)
	}
}
