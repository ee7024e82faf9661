package html

import (
	"bytes"
	"html/template"
	"io"
	"strings"
)

// Type identifies the kind of a Node.
type Type int

const (
	// TypeElement is a tag with attributes and children.
	TypeElement Type = iota
	// TypeText is escaped character data.
	TypeText
	// TypeRaw is trusted markup written verbatim.
	TypeRaw
	// TypeFragment groups children without a wrapping tag.
	TypeFragment
)

// Node is a single markup node.
type Node struct {
	Type     Type
	Tag      string
	Attrs    Attrs
	Content  string
	Children []*Node
	// Void marks elements without a closing tag (input, br, ...).
	Void bool
}

// Element builds a tag node with the supplied children.
func Element(tag string, attrs Attrs, children ...*Node) *Node {
	return &Node{
		Type:     TypeElement,
		Tag:      tag,
		Attrs:    attrs,
		Children: compact(children),
	}
}

// VoidElement builds a tag node that is written without a closing tag.
func VoidElement(tag string, attrs Attrs) *Node {
	return &Node{
		Type:  TypeElement,
		Tag:   tag,
		Attrs: attrs,
		Void:  true,
	}
}

// Text builds an escaped text node.
func Text(text string) *Node {
	return &Node{Type: TypeText, Content: text}
}

// Raw builds a node whose content is written without escaping.
func Raw(markup template.HTML) *Node {
	return &Node{Type: TypeRaw, Content: string(markup)}
}

// Fragment groups nodes without a wrapping element.
func Fragment(children ...*Node) *Node {
	return &Node{Type: TypeFragment, Children: compact(children)}
}

// Append adds children to the node, skipping nil entries.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, compact(children)...)
	return n
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) string {
	if n == nil || n.Attrs == nil {
		return ""
	}
	return n.Attrs[name]
}

// SetAttr sets an attribute, allocating the attribute map when needed.
func (n *Node) SetAttr(name, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = Attrs{}
	}
	n.Attrs[name] = value
	return n
}

// AddClass merges classes into the node's class attribute.
func (n *Node) AddClass(classes ...string) *Node {
	if n.Attrs == nil {
		n.Attrs = Attrs{}
	}
	n.Attrs.AddClass(classes...)
	return n
}

// String serialises the node.
func (n *Node) String() string {
	var buf bytes.Buffer
	n.write(&buf)
	return buf.String()
}

// HTML serialises the node as trusted template content.
func (n *Node) HTML() template.HTML {
	return template.HTML(n.String())
}

// WriteTo serialises the node into w.
func (n *Node) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	n.write(&buf)
	return buf.WriteTo(w)
}

func (n *Node) write(buf *bytes.Buffer) {
	if n == nil {
		return
	}
	switch n.Type {
	case TypeText:
		buf.WriteString(escape(n.Content))
	case TypeRaw:
		buf.WriteString(n.Content)
	case TypeFragment:
		for _, child := range n.Children {
			child.write(buf)
		}
	default:
		buf.WriteByte('<')
		buf.WriteString(n.Tag)
		n.Attrs.write(buf)
		if n.Void {
			buf.WriteString(" />")
			return
		}
		buf.WriteByte('>')
		for _, child := range n.Children {
			child.write(buf)
		}
		buf.WriteString("</")
		buf.WriteString(n.Tag)
		buf.WriteByte('>')
	}
}

func compact(nodes []*Node) []*Node {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]*Node, 0, len(nodes))
	for _, node := range nodes {
		if node != nil {
			out = append(out, node)
		}
	}
	return out
}

// Join serialises a list of nodes back to back.
func Join(nodes ...*Node) template.HTML {
	var builder strings.Builder
	for _, node := range nodes {
		builder.WriteString(node.String())
	}
	return template.HTML(builder.String())
}
