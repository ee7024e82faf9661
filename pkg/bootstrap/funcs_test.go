package bootstrap

import (
	"bytes"
	"html/template"
	"strings"
	"testing"

	"github.com/goliatone/go-bootform/pkg/testsupport"
)

func TestFuncMap(t *testing.T) {
	b := newHorizontalBuilder(t)

	tmpl, err := template.New("form").Funcs(FuncMap(b)).Parse(
		`{{ static_control "email" "control_class" "lead" }}` +
			`{{ custom_control "comments" .Preview "label" "Preview" }}` +
			`{{ submit "" "extra_class" "w-100" }}` +
			`{{ primary "Go" "render_as_button" true }}` +
			`<span data-id="{{ field_id "email" }}" data-name="{{ field_name "email" }}">{{ submit_label }}</span>`,
	)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, map[string]any{"Preview": template.HTML("<em>preview</em>")}); err != nil {
		t.Fatalf("execute: %v", err)
	}

	want := `<div class="mb-3 row">
		<label class="form-label col-form-label col-sm-2 required" for="user_email">Email</label>
		<div class="col-sm-10">
			<input aria-required="true" class="lead form-control-plaintext" id="user_email" name="user[email]" readonly="readonly" required="required" type="text" value="steve@example.com"/>
		</div>
	</div>
	<div class="mb-3 row">
		<label class="form-label col-form-label col-sm-2" for="user_comments">Preview</label>
		<div class="col-sm-10"><em>preview</em></div>
	</div>
	<input class="btn btn-secondary w-100" name="commit" type="submit" value="Create User"/>
	<button class="btn btn-primary" name="button" type="submit">Go</button>
	<span data-id="user_email" data-name="user[email]">Create User</span>`
	testsupport.AssertEquivalentHTML(t, want, out.String())
}

func TestFuncMapRejectsOddOptions(t *testing.T) {
	b := newBuilder(t)

	tmpl := template.Must(template.New("form").Funcs(FuncMap(b)).Parse(`{{ static_control "email" "id" }}`))
	err := tmpl.Execute(&bytes.Buffer{}, nil)
	if err == nil || !strings.Contains(err.Error(), "key/value pairs") {
		t.Fatalf("expected pairs error, got %v", err)
	}
}

func TestTemplateFuncs(t *testing.T) {
	b := newBuilder(t)
	funcs := TemplateFuncs(b)

	static, ok := funcs["static_control"].(func(string, ...any) string)
	if !ok {
		t.Fatalf("static_control has unexpected type %T", funcs["static_control"])
	}
	if got := static("email", "id", "primary_email"); !strings.Contains(got, `id="primary_email"`) {
		t.Fatalf("unexpected static markup: %s", got)
	}
	if got := static("nickname"); got != "" {
		t.Fatalf("expected empty output for unknown attribute, got %s", got)
	}

	submit := funcs["submit"].(func(string, ...any) string)
	if got := submit("Send", 1, 2); got != "" {
		t.Fatalf("expected empty output for invalid options, got %s", got)
	}
	if got := submit("Send"); got != `<input class="btn btn-secondary" name="commit" type="submit" value="Send" />` {
		t.Fatalf("unexpected submit markup: %s", got)
	}
}

func TestPairs(t *testing.T) {
	opts, err := Pairs("label", "Email", "disabled", true)
	if err != nil {
		t.Fatalf("pairs: %v", err)
	}
	if opts["label"] != "Email" || opts["disabled"] != true {
		t.Fatalf("unexpected options %v", opts)
	}
	if _, err := Pairs("label"); err == nil {
		t.Fatalf("expected error for odd arguments")
	}
	if _, err := Pairs(1, "x"); err == nil {
		t.Fatalf("expected error for non-string key")
	}
}
