package config

import (
	"html/template"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-bootform/pkg/bootstrap"
	"github.com/goliatone/go-bootform/pkg/model"
)

const userDefinition = `
object: user
action: update
layout: horizontal
values:
  email: steve@example.com
  age: 42
required: [email]
labels:
  email: Work email
errors:
  email: ["is taken"]
form:
  action: /users/1
  method: post
controls:
  - kind: static
    field: email
    options:
      control_class: lead
  - kind: static
    field: nickname
  - kind: Custom
    field: avatar
    label: Picture
    content: <img src="/a.png">
    html: true
  - kind: primary
    label: Save
`

func TestParseDefinition(t *testing.T) {
	def, err := ParseDefinition([]byte(userDefinition), "user.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if def.Object != "user" || def.Action != "update" || def.Layout != "horizontal" || def.Source != "user.yaml" {
		t.Fatalf("unexpected header %+v", def)
	}
	if got := def.Controls[2].Kind; got != KindCustom {
		t.Fatalf("kind not normalised: %s", got)
	}
	if diff := cmp.Diff([]string{"email", "nickname", "avatar"}, def.Fields()); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"nickname"}, def.MissingValues()); diff != "" {
		t.Fatalf("missing values mismatch (-want +got):\n%s", diff)
	}
	if def.Form.Action != "/users/1" || def.Form.Method != "post" {
		t.Fatalf("unexpected form config %+v", def.Form)
	}
}

func TestParseDefinitionJSON(t *testing.T) {
	def, err := ParseDefinition([]byte(`{"object":"search","action":"submit","controls":[{"kind":"submit"}]}`), "search.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if def.Object != "search" || len(def.Controls) != 1 || def.Controls[0].Kind != KindSubmit {
		t.Fatalf("unexpected definition %+v", def)
	}
}

func TestParseDefinitionErrors(t *testing.T) {
	tests := map[string]string{
		"empty":          "  ",
		"unknown kind":   "object: user\ncontrols:\n  - kind: slider\n",
		"missing kind":   "object: user\ncontrols:\n  - field: email\n",
		"unknown action": "object: user\naction: destroy\n",
		"invalid yaml":   "object: [user\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseDefinition([]byte(doc), name+".yaml"); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestDefinitionSubject(t *testing.T) {
	def, err := ParseDefinition([]byte(userDefinition), "user.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	subject := def.Subject()

	if subject.ObjectName() != "user" || subject.Action() != model.ActionUpdate {
		t.Fatalf("unexpected subject %s/%s", subject.ObjectName(), subject.Action())
	}
	if !subject.Required("email") {
		t.Fatalf("expected email required")
	}
	if value, _ := subject.Value("age"); value != 42 {
		t.Fatalf("unexpected age %#v", value)
	}
	if value, err := subject.Value("nickname"); err != nil || value != nil {
		t.Fatalf("expected empty nickname, got %v, %v", value, err)
	}
	if label, ok := subject.AttributeLabel("email"); !ok || label != "Work email" {
		t.Fatalf("unexpected label %q", label)
	}
	if got := subject.AttributeErrors("email"); len(got) != 1 || got[0] != "is taken" {
		t.Fatalf("unexpected errors %v", got)
	}
}

func TestControlConversions(t *testing.T) {
	def, err := ParseDefinition([]byte(userDefinition), "user.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	static := def.Controls[0].BuilderOptions()
	if static["control_class"] != "lead" {
		t.Fatalf("unexpected static options %v", static)
	}

	custom := def.Controls[2]
	if got := custom.BuilderOptions()[bootstrap.OptLabel]; got != template.HTML("Picture") {
		t.Fatalf("expected trusted label, got %#v", got)
	}
	if got := custom.Block()(); got != template.HTML(`<img src="/a.png">`) {
		t.Fatalf("expected trusted content, got %#v", got)
	}

	primary := def.Controls[3]
	if _, ok := primary.BuilderOptions()[bootstrap.OptLabel]; ok {
		t.Fatalf("button labels are not options")
	}
	if primary.LabelValue() != "Save" || primary.Block() != nil {
		t.Fatalf("unexpected primary conversion")
	}
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
layout: Horizontal
labelCol: col-md-3
controlCol: col-md-9
locale: es
classes:
  button: btn btn-dark
sanitize: true
log:
  level: debug
  format: json
`), "bootform.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Layout != "horizontal" || cfg.Log.Level != "debug" || !cfg.Sanitize {
		t.Fatalf("unexpected config %+v", cfg)
	}

	b := bootstrap.New(model.NewMapSubject("user", nil), cfg.BuilderOptions(Definition{})...)
	if b.Layout() != bootstrap.LayoutHorizontal || b.Locale() != "es" {
		t.Fatalf("unexpected builder %s %s", b.Layout(), b.Locale())
	}
	if classes := b.Classes(); classes.Button != "btn btn-dark" || classes.LabelCol != "col-md-3" {
		t.Fatalf("unexpected classes %+v", classes)
	}

	b = bootstrap.New(nil, cfg.BuilderOptions(Definition{Layout: "inline"})...)
	if b.Layout() != bootstrap.LayoutInline {
		t.Fatalf("definition layout should win, got %s", b.Layout())
	}
}

func TestLoadDefinitionsFS(t *testing.T) {
	fsys := fstest.MapFS{
		"forms/user.yaml":   {Data: []byte(userDefinition)},
		"forms/search.json": {Data: []byte(`{"object":"search","controls":[{"kind":"submit"}]}`)},
		"forms/notes.txt":   {Data: []byte("ignored")},
	}

	defs, err := LoadDefinitionsFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"search", "user"}, Objects(defs)); diff != "" {
		t.Fatalf("objects mismatch (-want +got):\n%s", diff)
	}

	fsys["forms/copy.yml"] = &fstest.MapFile{Data: []byte(userDefinition)}
	if _, err := LoadDefinitionsFS(fsys); err == nil || !strings.Contains(err.Error(), "duplicate object") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestLoadTranslations(t *testing.T) {
	dir := t.TempDir()
	po := "msgid \"\"\nmsgstr \"\"\n\"Language: es\\n\"\n\nmsgid \"models.user\"\nmsgstr \"Usuario\"\n"
	if err := os.WriteFile(filepath.Join(dir, "es.po"), []byte(po), 0o644); err != nil {
		t.Fatalf("write po: %v", err)
	}

	catalog, err := Config{Translations: dir}.LoadTranslations()
	if err != nil {
		t.Fatalf("load translations: %v", err)
	}
	if msg, err := catalog.Translate("es", "models.user"); err != nil || msg != "Usuario" {
		t.Fatalf("translate: %q, %v", msg, err)
	}

	if catalog, err := (Config{}).LoadTranslations(); catalog != nil || err != nil {
		t.Fatalf("expected nil catalog without directory")
	}
}

func TestDefinitionSchema(t *testing.T) {
	def, err := ParseDefinition([]byte(`
object: user
values:
  email: ada@example.com
labels:
  role: Access level
schema:
  document: ../api/users.yaml
  name: User
controls:
  - kind: static
    field: email
`), "forms/user.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := def.SchemaLocation(); got != "api/users.yaml" {
		t.Fatalf("unexpected schema location %q", got)
	}

	schema := openapi3.NewObjectSchema().
		WithProperty("email", openapi3.NewStringSchema()).
		WithProperty("role", openapi3.NewStringSchema().WithDefault("member"))
	schema.Required = []string{"email"}

	subject, err := def.SchemaSubject(schema)
	if err != nil {
		t.Fatalf("schema subject: %v", err)
	}
	if !subject.Required("email") {
		t.Fatal("expected email required from schema")
	}
	if value, _ := subject.Value("role"); value != "member" {
		t.Fatalf("expected schema default, got %#v", value)
	}
	if label, ok := subject.AttributeLabel("role"); !ok || label != "Access level" {
		t.Fatalf("unexpected label %q", label)
	}
	if _, err := subject.Value("nickname"); err == nil {
		t.Fatal("expected unknown attribute error")
	}

	absolute := Definition{Source: "forms/user.yaml", Schema: &SchemaRef{Document: "https://example.com/api.yaml"}}
	if got := absolute.SchemaLocation(); got != "https://example.com/api.yaml" {
		t.Fatalf("url location rewritten: %q", got)
	}
}

func TestDefinitionSchemaErrors(t *testing.T) {
	cases := map[string]string{
		"missing document":   "object: user\nschema:\n  name: User\n",
		"name and operation": "object: user\nschema:\n  document: api.yaml\n  name: User\n  operation: createUser\n",
		"neither":            "object: user\nschema:\n  document: api.yaml\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseDefinition([]byte(doc), "user.yaml"); err == nil {
				t.Fatal("expected schema error")
			}
		})
	}
}

func TestDefinitionErrorMapping(t *testing.T) {
	def := Definition{
		Object: "user",
		Values: map[string]any{"email": "ada@example.com"},
		Errors: map[string][]string{
			"user[email]": {"is taken"},
			"base":        {"Account is locked"},
			"nickname":    {"is reserved"},
		},
		Controls: []Control{{Kind: KindStatic, Field: "email"}},
	}

	if got := def.Subject().AttributeErrors("email"); len(got) != 1 || got[0] != "is taken" {
		t.Fatalf("unexpected email errors %v", got)
	}
	form := def.FormErrors()
	slices.Sort(form)
	if diff := cmp.Diff([]string{"Account is locked", "is reserved"}, form); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}
	if got := def.ErrorMapping("nickname").Fields["nickname"]; len(got) != 1 {
		t.Fatalf("expected nickname to map once known, got %v", got)
	}
}
