package bootstrap

import (
	"strings"

	"github.com/goliatone/go-bootform/pkg/html"
)

// formGroup wraps label and control according to the layout. Feedback and
// help follow the control inside the control column.
func (b *Builder) formGroup(ctx fieldContext, label *html.Node, control *html.Node, feedbackClass string) *html.Node {
	body := []*html.Node{control}
	if len(ctx.errors) > 0 {
		body = append(body, html.Element("div",
			html.Attrs{"class": html.MergeClasses(b.classes.Feedback, feedbackClass)},
			html.Text(strings.Join(ctx.errors, ", ")),
		))
	}
	body = append(body, ctx.help)

	switch ctx.layout {
	case LayoutHorizontal:
		column := html.MergeClasses(ctx.controlCol)
		if label == nil {
			column = html.MergeClasses(ctx.controlCol, offsetClasses(ctx.labelCol))
		}
		return html.Element("div", b.wrapperAttrs(ctx, b.classes.HorizontalGroup),
			label,
			html.Element("div", html.Attrs{"class": column}, body...),
		)
	case LayoutInline:
		return html.Element("div", b.wrapperAttrs(ctx, b.classes.InlineGroup),
			append([]*html.Node{label}, body...)...,
		)
	default:
		return html.Element("div", b.wrapperAttrs(ctx, b.classes.Group),
			append([]*html.Node{label}, body...)...,
		)
	}
}

func (b *Builder) wrapperAttrs(ctx fieldContext, fallback string) html.Attrs {
	class := fallback
	if ctx.wrapperClass != "" {
		class = ctx.wrapperClass
	}
	attrs := html.Attrs{}
	attrs.AddClass(class)
	return attrs
}
