package template_test

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	gotpl "github.com/goliatone/go-template"

	"github.com/goliatone/go-bootform/pkg/bootstrap"
	"github.com/goliatone/go-bootform/pkg/model"
	"github.com/goliatone/go-bootform/pkg/render/template/gotemplate"
	"github.com/goliatone/go-bootform/pkg/testsupport"
)

//go:embed testdata/templates/*.tpl
var embeddedTemplates embed.FS

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	golden := filepath.Join("testdata", "hello.golden")
	testsupport.AssertGolden(t, golden, result)
	testsupport.AssertGolden(t, golden, written)
}

func TestGoTemplateEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-global", nil, w)
	})

	golden := filepath.Join("testdata", "use-global.golden")
	testsupport.AssertGolden(t, golden, result)
	testsupport.AssertGolden(t, golden, written)
}

func TestGoTemplateEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"}, w)
	})

	golden := filepath.Join("testdata", "use-filter.golden")
	testsupport.AssertGolden(t, golden, result)
	testsupport.AssertGolden(t, golden, written)
}

func TestGoTemplateEngine_BuilderHelpers(t *testing.T) {
	subject := model.NewMapSubject("user", map[string]any{"email": "steve@example.com"}, model.WithRequired("email"))
	builder := bootstrap.New(subject, bootstrap.WithLayout(bootstrap.LayoutHorizontal))
	engine := newEngine(t, gotemplate.WithTemplateFunc(bootstrap.TemplateFuncs(builder)))

	result, err := engine.RenderTemplate("controls", map[string]any{
		"form":    map[string]any{"action": "/users", "method": "post"},
		"preview": template.HTML(`<img alt="avatar" src="/a.png">`),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := `<form action="/users" method="post">
		<div class="mb-3 row">
			<label class="form-label col-form-label col-sm-2 required" for="user_email">Email</label>
			<div class="col-sm-10">
				<input aria-required="true" class="lead form-control-plaintext" id="user_email" name="user[email]" readonly="readonly" required="required" type="text" value="steve@example.com"/>
			</div>
		</div>
		<div class="mb-3 row">
			<label class="form-label col-form-label col-sm-2" for="user_avatar">Picture</label>
			<div class="col-sm-10"><img alt="avatar" src="/a.png"></div>
		</div>
		<div class="actions"><input class="btn btn-secondary" name="commit" type="submit" value="Create User"/></div>
	</form>`
	testsupport.AssertEquivalentHTML(t, want, result)
}

func TestGoTemplateEngine_RenderString(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.Render(`<a class="{{ "btn btn-primary"|merge_classes:"btn w-100" }}"{{ extra|attrs }}>{{ label|trim }}</a>`, map[string]any{
		"extra": map[string]string{"href": "/next?a=1&b=2", "title": ""},
		"label": "  Next <step>  ",
	})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	want := `<a class="btn btn-primary w-100" href="/next?a=1&amp;b=2">Next &lt;step&gt;</a>`
	if result != want {
		t.Fatalf("render string mismatch\nwant: %q\n got: %q", want, result)
	}
}

func TestGoTemplateEngine_Hooks(t *testing.T) {
	var seen []string
	engine := newEngine(t,
		gotemplate.WithPreHook(func(ctx *gotpl.HookContext) error {
			seen = append(seen, ctx.TemplateName)
			ctx.Data = map[string]any{"name": "Grace"}
			return nil
		}),
		gotemplate.WithPostHook(func(ctx *gotpl.HookContext) (string, error) {
			return fmt.Sprintf("<p data-ext=%q>%s</p>", ctx.Metadata["ext"], strings.TrimSpace(ctx.Output)), nil
		}),
	)

	result, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if want := `<p data-ext=".tpl">Hello Grace!</p>`; result != want {
		t.Fatalf("hook output mismatch\nwant: %q\n got: %q", want, result)
	}
	if len(seen) != 1 || seen[0] != "hello" {
		t.Fatalf("pre hook saw %v", seen)
	}

	engine.RegisterPreHook(func(*gotpl.HookContext) error {
		return fmt.Errorf("blocked")
	})
	if _, err := engine.RenderString("{{ name }}", nil); err == nil || !strings.Contains(err.Error(), "blocked") {
		t.Fatalf("expected pre hook error, got %v", err)
	}
}

func TestGoTemplateEngine_Errors(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without template source")
	}
	if _, err := gotemplate.New(
		gotemplate.WithFS(embeddedTemplates),
		gotemplate.WithTemplateFunc(map[string]any{"broken": 42}),
	); err == nil {
		t.Fatalf("expected error for non-function helper")
	}

	engine := newEngine(t)
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
	if _, err := engine.RenderString("{{ unclosed", nil); err == nil {
		t.Fatalf("expected parse error")
	}
}

func newEngine(t *testing.T, opts ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()

	templatesFS, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}

	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(templatesFS)}, opts...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
