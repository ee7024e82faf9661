package bootstrap

import (
	"html/template"
	"testing"

	"github.com/goliatone/go-bootform/pkg/model"
	"github.com/goliatone/go-bootform/pkg/testsupport"
)

const htmlLabel = template.HTML("<span>I'm HTML!</span> Submit Form")

func TestButtons(t *testing.T) {
	b := newBuilder(t)

	tests := []struct {
		name   string
		render func() template.HTML
		want   string
	}{
		{
			name: "regular button uses proper css classes",
			render: func() template.HTML {
				return b.Button(template.HTML("<span>I'm HTML!</span> in a button!"), Options{"extra": "extra arg"}, nil)
			},
			want: `<button class="btn btn-secondary" extra="extra arg" name="button" type="submit"><span>I'm HTML!</span> in a button!</button>`,
		},
		{
			name: "regular button can have extra css classes",
			render: func() template.HTML {
				return b.Button(template.HTML("<span>I'm HTML!</span> in a button!"), Options{"extra_class": "test-button"}, nil)
			},
			want: `<button class="btn btn-secondary test-button" name="button" type="submit"><span>I'm HTML!</span> in a button!</button>`,
		},
		{
			name:   "submit defaults to action name",
			render: func() template.HTML { return b.Submit("", nil) },
			want:   `<input class="btn btn-secondary" name="commit" type="submit" value="Create User" />`,
		},
		{
			name:   "submit uses default classes",
			render: func() template.HTML { return b.Submit("Submit Form", nil) },
			want:   `<input class="btn btn-secondary" name="commit" type="submit" value="Submit Form" />`,
		},
		{
			name:   "submit can have extra css classes",
			render: func() template.HTML { return b.Submit("Submit Form", Options{"extra_class": "test-button"}) },
			want:   `<input class="btn btn-secondary test-button" name="commit" type="submit" value="Submit Form" />`,
		},
		{
			name:   "submit classes can be replaced",
			render: func() template.HTML { return b.Submit("Submit Form", Options{"class": "btn btn-primary"}) },
			want:   `<input class="btn btn-primary" name="commit" type="submit" value="Submit Form" />`,
		},
		{
			name:   "primary uses proper css classes",
			render: func() template.HTML { return b.Primary("Submit Form", Options{"extra": "extra arg"}, nil) },
			want:   `<input class="btn btn-primary" extra="extra arg" name="commit" type="submit" value="Submit Form" />`,
		},
		{
			name:   "primary can have extra css classes",
			render: func() template.HTML { return b.Primary("Submit Form", Options{"extra_class": "test-button"}, nil) },
			want:   `<input class="btn btn-primary test-button" name="commit" type="submit" value="Submit Form" />`,
		},
		{
			name:   "primary can render as button",
			render: func() template.HTML { return b.Primary(htmlLabel, Options{"render_as_button": true}, nil) },
			want:   `<button class="btn btn-primary" name="button" type="submit"><span>I'm HTML!</span> Submit Form</button>`,
		},
		{
			name: "primary with content block renders as button",
			render: func() template.HTML {
				return b.Primary(nil, nil, func() any { return htmlLabel })
			},
			want: `<button class="btn btn-primary" name="button" type="submit"><span>I'm HTML!</span> Submit Form</button>`,
		},
		{
			name:   "primary classes can be replaced",
			render: func() template.HTML { return b.Primary("Submit Form", Options{"class": "btn btn-primary disabled"}, nil) },
			want:   `<input class="btn btn-primary disabled" name="commit" type="submit" value="Submit Form" />`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.render()
			testsupport.AssertEquivalentHTML(t, tc.want, string(got))
		})
	}
}

func TestSubmitExactMarkup(t *testing.T) {
	b := newBuilder(t)

	got := b.Submit("", Options{"extra_class": "btn-secondary test-button"})
	want := `<input class="btn btn-secondary test-button" name="commit" type="submit" value="Create User" />`
	if string(got) != want {
		t.Fatalf("unexpected markup:\nwant %s\ngot  %s", want, got)
	}
}

func TestSubmitLabelFollowsAction(t *testing.T) {
	tests := []struct {
		name    string
		subject model.Subject
		want    string
	}{
		{name: "create", subject: model.NewMapSubject("user", nil), want: "Create User"},
		{name: "update", subject: model.NewMapSubject("user", nil, model.WithAction(model.ActionUpdate)), want: "Update User"},
		{name: "submit", subject: model.Anonymous("search"), want: "Save Search"},
		{name: "human name", subject: model.NewMapSubject("admin_user", nil), want: "Create Admin user"},
		{name: "no object", subject: nil, want: "Save"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := New(tc.subject).SubmitLabel(); got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestBlockAlwaysRendersButton(t *testing.T) {
	b := newBuilder(t)

	for _, node := range []string{
		b.PrimaryNode("ignored", nil, text("Go")).Tag,
		b.ButtonNode(nil, nil, text("Go")).Tag,
		b.ButtonNode(nil, Options{"render_as_button": false}, text("Go")).Tag,
	} {
		if node != "button" {
			t.Fatalf("expected button element, got %s", node)
		}
	}
}

func TestButtonContentFallbacks(t *testing.T) {
	b := newBuilder(t)

	tests := []struct {
		name  string
		label any
		block Block
		want  string
	}{
		{name: "block wins", label: "Label", block: text("Block"), want: "Block"},
		{name: "label", label: "Label", want: "Label"},
		{name: "escaped label", label: "<b>", want: "&lt;b&gt;"},
		{name: "derived", label: "", want: "Create User"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			want := `<button class="btn btn-secondary" name="button" type="submit">` + tc.want + `</button>`
			if got := b.Button(tc.label, nil, tc.block); string(got) != want {
				t.Fatalf("want %s, got %s", want, got)
			}
		})
	}
}

func TestButtonOverrides(t *testing.T) {
	b := newBuilder(t)

	got := b.Button("Reset", Options{"type": "reset", "name": "clear", "disabled": true, "class": ""}, nil)
	want := `<button disabled="disabled" name="clear" type="reset">Reset</button>`
	if string(got) != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}
