package bootstrap

import (
	"errors"
	"testing"

	theme "github.com/goliatone/go-theme"
)

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []string
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, name+"/"+variant)
	return s.selection, s.err
}

func acmeManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand":            "#123456",
			"bootform.button":  "btn btn-outline-secondary",
			"bootform.primary": "btn btn-success",
		},
		Templates: map[string]string{
			"forms.layout": "themes/acme/form.tpl",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files: map[string]string{
				"stylesheet": "theme.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"brand":              "#654321",
					"bootform.label_col": "col-sm-3",
				},
				Templates: map[string]string{
					"forms.layout": "themes/acme/dark/form.tpl",
				},
				Assets: theme.Assets{
					Files: map[string]string{
						"vendor": "vendor.dark.js",
					},
				},
			},
		},
	}
}

func TestResolveTheme(t *testing.T) {
	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme:    "acme",
		Variant:  "dark",
		Manifest: acmeManifest(),
	}}

	cfg, err := ResolveTheme(selector, "acme", "dark")
	if err != nil {
		t.Fatalf("resolve theme: %v", err)
	}
	if len(selector.calls) != 1 || selector.calls[0] != "acme/dark" {
		t.Fatalf("unexpected selector calls %v", selector.calls)
	}
	if cfg.Theme != "acme" || cfg.Variant != "dark" {
		t.Fatalf("unexpected theme %s/%s", cfg.Theme, cfg.Variant)
	}
	if cfg.Tokens["brand"] != "#654321" {
		t.Fatalf("variant token not applied, got %s", cfg.Tokens["brand"])
	}
	if cfg.CSSVars["--brand"] != "#654321" {
		t.Fatalf("css var not derived, got %v", cfg.CSSVars)
	}
	if _, ok := cfg.CSSVars["--bootform-button"]; ok {
		t.Fatalf("class tokens must not become css vars: %v", cfg.CSSVars)
	}
	if cfg.Partials["forms.layout"] != "themes/acme/dark/form.tpl" {
		t.Fatalf("variant template not applied, got %s", cfg.Partials["forms.layout"])
	}
	if got := cfg.AssetURL("vendor"); got != "/assets/themes/acme/vendor.dark.js" {
		t.Fatalf("unexpected vendor url %s", got)
	}
	if got := cfg.AssetURL("stylesheet"); got != "/assets/themes/acme/theme.css" {
		t.Fatalf("unexpected stylesheet url %s", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("expected empty url, got %s", got)
	}
	if got := CSSVarsStyle(cfg.CSSVars); got != ":root {\n--brand: #654321;\n}" {
		t.Fatalf("unexpected style %q", got)
	}
}

func TestResolveThemeErrors(t *testing.T) {
	boom := errors.New("boom")
	if _, err := ResolveTheme(&stubThemeSelector{err: boom}, "acme", ""); !errors.Is(err, boom) {
		t.Fatalf("expected selector error, got %v", err)
	}
	if _, err := ResolveTheme(&stubThemeSelector{}, "acme", ""); !errors.Is(err, ErrNoThemeSelection) {
		t.Fatalf("expected ErrNoThemeSelection, got %v", err)
	}
	if _, err := ResolveTheme(nil, "acme", ""); err == nil {
		t.Fatalf("expected error for nil selector")
	}
}

func TestWithThemeAppliesClassTokens(t *testing.T) {
	cfg := ThemeConfig(&theme.Selection{Theme: "acme", Variant: "dark", Manifest: acmeManifest()})
	b := newHorizontalBuilder(t, WithTheme(cfg))

	if got := b.Submit("Go", nil); string(got) != `<input class="btn btn-outline-secondary" name="commit" type="submit" value="Go" />` {
		t.Fatalf("button token not applied: %s", got)
	}
	if got := b.Primary("Go", nil, nil); string(got) != `<input class="btn btn-success" name="commit" type="submit" value="Go" />` {
		t.Fatalf("primary token not applied: %s", got)
	}
	node, err := b.StaticControlNode("email", nil)
	if err != nil {
		t.Fatalf("static control: %v", err)
	}
	if got := node.Children[0].Attr("class"); got != "form-label col-form-label col-sm-3 required" {
		t.Fatalf("label column token not applied: %s", got)
	}
}
