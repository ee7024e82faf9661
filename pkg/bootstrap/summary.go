package bootstrap

import (
	"html/template"

	"github.com/goliatone/go-bootform/pkg/html"
	"github.com/goliatone/go-bootform/pkg/model"
)

// ErrorSummary renders form-level messages as a danger alert: one message
// as text, several as a list. It renders nothing without messages.
func (b *Builder) ErrorSummary(messages []string) template.HTML {
	node := b.ErrorSummaryNode(messages)
	if node == nil {
		return ""
	}
	return node.HTML()
}

// ErrorSummaryNode is ErrorSummary returning the markup tree.
func (b *Builder) ErrorSummaryNode(messages []string) *html.Node {
	messages = model.NormalizeMessages(messages)
	if len(messages) == 0 {
		return nil
	}
	attrs := html.Attrs{"class": html.MergeClasses(b.classes.Alert), "role": "alert"}
	if len(messages) == 1 {
		return html.Element("div", attrs, html.Text(messages[0]))
	}
	items := make([]*html.Node, 0, len(messages))
	for _, message := range messages {
		items = append(items, html.Element("li", nil, html.Text(message)))
	}
	return html.Element("div", attrs, html.Element("ul", html.Attrs{"class": "mb-0"}, items...))
}
