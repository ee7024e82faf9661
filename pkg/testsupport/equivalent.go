package testsupport

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element is the normalised form of a markup node used for comparisons.
// Attributes are sorted by name and whitespace-only text is dropped.
type Element struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []Element
}

// Attr is a single normalised attribute.
type Attr struct {
	Name  string
	Value string
}

// NormalizeHTML parses a markup fragment into comparable elements.
func NormalizeHTML(markup string) ([]Element, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, fmt.Errorf("testsupport: parse fragment: %w", err)
	}
	return normalizeNodes(nodes), nil
}

// AssertEquivalentHTML fails the test when want and got differ after
// normalisation. Attribute order and insignificant whitespace are ignored;
// class order is not.
func AssertEquivalentHTML(t *testing.T, want, got string) {
	t.Helper()

	wantTree, err := NormalizeHTML(want)
	if err != nil {
		t.Fatalf("normalize expected markup: %v", err)
	}
	gotTree, err := NormalizeHTML(got)
	if err != nil {
		t.Fatalf("normalize rendered markup: %v", err)
	}
	if diff := cmp.Diff(wantTree, gotTree); diff != "" {
		t.Fatalf("markup mismatch (-want +got):\n%s\nrendered: %s", diff, got)
	}
}

func normalizeNodes(nodes []*html.Node) []Element {
	var out []Element
	for _, node := range nodes {
		switch node.Type {
		case html.TextNode:
			text := strings.Join(strings.Fields(node.Data), " ")
			if text == "" {
				continue
			}
			out = append(out, Element{Text: text})
		case html.ElementNode:
			out = append(out, normalizeElement(node))
		}
	}
	return out
}

func normalizeElement(node *html.Node) Element {
	el := Element{Tag: node.Data}
	for _, attr := range node.Attr {
		el.Attrs = append(el.Attrs, Attr{Name: attr.Key, Value: attr.Val})
	}
	slices.SortFunc(el.Attrs, func(a, b Attr) int {
		return strings.Compare(a.Name, b.Name)
	})

	var children []*html.Node
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		children = append(children, child)
	}
	el.Children = normalizeNodes(children)
	return el
}
